package system

import (
	"time"

	"github.com/riptide/server/internal/core/system"
	"github.com/riptide/server/internal/handler"
	gamenet "github.com/riptide/server/internal/net"
)

// InputSystem bridges the network edge into the simulation. It runs first
// each step: new connections become players, dead connections are torn down,
// finished persistence callbacks are applied, and each live session's
// command queue is drained through the dispatcher.
type InputSystem struct {
	deps     *handler.Deps
	server   *gamenet.Server
	sessions map[uint64]*gamenet.Session
}

func NewInputSystem(deps *handler.Deps, server *gamenet.Server) *InputSystem {
	return &InputSystem{
		deps:     deps,
		server:   server,
		sessions: make(map[uint64]*gamenet.Session),
	}
}

func (s *InputSystem) Phase() system.Phase { return system.PhaseInput }

func (s *InputSystem) Update(dt time.Duration) {
	for {
		select {
		case sess := <-s.server.NewSessions():
			s.sessions[sess.ID] = sess
			handler.JoinPlayer(s.deps, sess.ID, sess)
			continue
		case id := <-s.server.DeadSessions():
			delete(s.sessions, id)
			handler.LeavePlayer(s.deps, id)
			continue
		default:
		}
		break
	}

	s.deps.Gateway.Drain()

	budget := s.deps.Config.Network.MaxCmdsPerTick
	for id, sess := range s.sessions {
		// Reap sessions whose dead notification was dropped on a full queue.
		if sess.IsClosed() {
			delete(s.sessions, id)
			handler.LeavePlayer(s.deps, id)
			continue
		}
		p := s.deps.World.Player(id)
		if p == nil {
			continue
		}
	drain:
		for n := 0; n < budget; n++ {
			select {
			case cmd := <-sess.In:
				handler.Dispatch(s.deps, p, cmd)
			default:
				break drain
			}
		}
	}
}
