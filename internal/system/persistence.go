package system

import (
	"time"

	"github.com/riptide/server/internal/core/system"
	"github.com/riptide/server/internal/handler"
	"github.com/riptide/server/internal/world"
)

// PersistenceSystem autosaves dirty named players at a fixed interval. Saves
// are fire-and-forget value copies, so the loop never waits on the database.
type PersistenceSystem struct {
	deps     *handler.Deps
	interval time.Duration
	nextAt   time.Time
}

func NewPersistenceSystem(deps *handler.Deps) *PersistenceSystem {
	return &PersistenceSystem{
		deps:     deps,
		interval: deps.Config.Database.SaveInterval,
	}
}

func (s *PersistenceSystem) Phase() system.Phase { return system.PhasePersist }

func (s *PersistenceSystem) Update(dt time.Duration) {
	if !s.deps.Gateway.Enabled() {
		return
	}
	now := s.deps.World.Now()
	if now.Before(s.nextAt) {
		return
	}
	s.nextAt = now.Add(s.interval)

	s.deps.World.AllPlayers(func(p *world.Player) {
		if !p.Dirty || p.Name == "" {
			return
		}
		p.Dirty = false
		s.deps.Gateway.SaveAsync(handler.RecordFor(p))
	})
}
