package system

import (
	"time"

	"github.com/riptide/server/internal/core/system"
	"github.com/riptide/server/internal/handler"
	"github.com/riptide/server/internal/world"
)

// DropSystem removes ground drops whose pickup window expired.
type DropSystem struct {
	deps *handler.Deps
}

func NewDropSystem(deps *handler.Deps) *DropSystem {
	return &DropSystem{deps: deps}
}

func (s *DropSystem) Phase() system.Phase { return system.PhasePostUpdate }

func (s *DropSystem) Update(dt time.Duration) {
	s.deps.World.ExpireDrops(s.deps.World.Now())
}

// RespawnSystem completes death countdowns: players return to their respawn
// point fully healed, mobs reset to spawn defaults once their delay lapses.
type RespawnSystem struct {
	deps *handler.Deps
}

func NewRespawnSystem(deps *handler.Deps) *RespawnSystem {
	return &RespawnSystem{deps: deps}
}

func (s *RespawnSystem) Phase() system.Phase { return system.PhasePostUpdate }

func (s *RespawnSystem) Update(dt time.Duration) {
	now := s.deps.World.Now()

	s.deps.World.AllPlayers(func(p *world.Player) {
		if !p.IsDead() || now.Before(p.RespawnAt) {
			return
		}
		s.deps.World.CancelEffectsOwnedBy(p.ID)
		p.RespawnAt = time.Time{}
		p.HP = p.MaxHP
		p.InvulnUntil = now.Add(world.InvulnDuration)
		handler.TransferPlayer(s.deps, p, p.RespawnZone, p.RespawnX, p.RespawnY)
	})

	for _, m := range s.deps.World.Mobs() {
		if m.Dead && !now.Before(m.RespawnAt) {
			m.ResetToSpawn()
		}
	}
}
