package net

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/riptide/server/internal/net/proto"
	"go.uber.org/zap"
)

const pingInterval = 30 * time.Second

// Session represents one websocket connection. Network I/O runs in
// dedicated goroutines; game state is touched only by the game loop, which
// consumes decoded commands from In.
type Session struct {
	ID   uint64
	conn *websocket.Conn

	// In carries commands decoded on the read goroutine. The game loop
	// drains it at the input phase.
	In chan proto.Command

	out chan []byte

	IP string

	writeTimeout time.Duration
	pongTimeout  time.Duration
	maxMessage   int64

	closeCh   chan struct{}
	closeOnce sync.Once
	closed    atomic.Bool

	onDead func(id uint64)

	log *zap.Logger
}

func NewSession(conn *websocket.Conn, id uint64, cfgIn, cfgOut int, writeTimeout, pongTimeout time.Duration, maxMessage int64, onDead func(uint64), log *zap.Logger) *Session {
	return &Session{
		ID:           id,
		conn:         conn,
		In:           make(chan proto.Command, cfgIn),
		out:          make(chan []byte, cfgOut),
		IP:           conn.RemoteAddr().String(),
		writeTimeout: writeTimeout,
		pongTimeout:  pongTimeout,
		maxMessage:   maxMessage,
		closeCh:      make(chan struct{}),
		onDead:       onDead,
		log:          log.With(zap.Uint64("session", id)),
	}
}

// Start launches the reader and writer goroutines.
func (s *Session) Start() {
	go s.readLoop()
	go s.writeLoop()
}

// Send marshals and queues one outbound message. Non-blocking: a full
// queue means the client cannot keep up, so the session is dropped
// (backpressure disconnect).
func (s *Session) Send(msg any) {
	if s.closed.Load() {
		return
	}
	data, err := json.Marshal(msg)
	if err != nil {
		s.log.Error("marshal outbound message", zap.Error(err))
		return
	}
	select {
	case s.out <- data:
	default:
		s.log.Warn("outbound queue full, dropping session")
		s.Close()
	}
}

// Close tears the connection down once and reports the session dead.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		close(s.closeCh)
		s.conn.Close()
		if s.onDead != nil {
			s.onDead(s.ID)
		}
	})
}

// IsClosed reports whether Close has run.
func (s *Session) IsClosed() bool { return s.closed.Load() }

func (s *Session) readLoop() {
	defer s.Close()

	s.conn.SetReadLimit(s.maxMessage)
	s.conn.SetReadDeadline(time.Now().Add(s.pongTimeout))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(s.pongTimeout))
		return nil
	})

	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Debug("read error", zap.Error(err))
			}
			return
		}
		cmd, err := proto.Decode(raw)
		if err != nil {
			// Protocol errors are dropped without side effects.
			s.log.Debug("dropping malformed command", zap.Error(err))
			continue
		}
		select {
		case s.In <- cmd:
		default:
			// Command queue full: shed the oldest behavior by dropping the
			// new command rather than blocking the reader.
			s.log.Debug("inbound queue full, dropping command")
		}
	}
}

func (s *Session) writeLoop() {
	ping := time.NewTicker(pingInterval)
	defer ping.Stop()
	defer s.Close()

	for {
		select {
		case data := <-s.out:
			s.conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
			if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ping.C:
			s.conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-s.closeCh:
			return
		}
	}
}
