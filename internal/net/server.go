package net

import (
	"context"
	"net/http"
	"path"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"github.com/riptide/server/internal/config"
	"go.uber.org/zap"
)

// Server upgrades websocket connections into Sessions and serves the static
// client assets. New/dead sessions are communicated to the game loop via
// channels.
type Server struct {
	cfg      config.NetworkConfig
	upgrader websocket.Upgrader
	httpSrv  *http.Server

	nextID   atomic.Uint64
	newConns chan *Session
	deadCh   chan uint64

	clientDir string
	log       *zap.Logger
}

func NewServer(cfg config.NetworkConfig, clientDir string, log *zap.Logger) *Server {
	s := &Server{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// The game server is its own origin; the client is served from
			// the same listener.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		newConns:  make(chan *Session, 64),
		deadCh:    make(chan uint64, 64),
		clientDir: clientDir,
		log:       log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/", s.handleStatic)
	s.httpSrv = &http.Server{
		Addr:    cfg.BindAddress,
		Handler: mux,
	}
	return s
}

// ListenAndServe blocks serving HTTP until Shutdown.
func (s *Server) ListenAndServe() error {
	err := s.httpSrv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops accepting connections and drains the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// Addr returns the configured bind address.
func (s *Server) Addr() string { return s.cfg.BindAddress }

// NewSessions returns the channel of newly connected sessions.
func (s *Server) NewSessions() <-chan *Session { return s.newConns }

// DeadSessions returns the channel of dead session IDs.
func (s *Server) DeadSessions() <-chan uint64 { return s.deadCh }

func (s *Server) notifyDead(sessionID uint64) {
	select {
	case s.deadCh <- sessionID:
	default:
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	id := s.nextID.Add(1)
	sess := NewSession(conn, id,
		s.cfg.InQueueSize, s.cfg.OutQueueSize,
		s.cfg.WriteTimeout, s.cfg.PongTimeout, s.cfg.MaxMessageBytes,
		s.notifyDead, s.log)
	sess.Start()

	s.log.Info("player connected",
		zap.Uint64("session", id), zap.String("ip", sess.IP))

	select {
	case s.newConns <- sess:
	default:
		s.log.Warn("connection queue full, rejecting session")
		sess.Close()
	}
}

// handleStatic is the path-normalized file responder for client assets,
// defaulting to the index document at /.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	p := path.Clean("/" + r.URL.Path)
	if p == "/" {
		p = "/index.html"
	}
	http.ServeFile(w, r, path.Join(s.clientDir, p))
}
