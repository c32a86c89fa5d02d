package system

import (
	"time"

	"github.com/riptide/server/internal/core/system"
	"github.com/riptide/server/internal/handler"
	"github.com/riptide/server/internal/world"
)

// AreaEffectSystem expires finished whirlpools and applies the pull to mobs
// inside live ones. The pull ramps linearly from the edge toward the center
// and runs as its own slide-move step so walls still apply.
type AreaEffectSystem struct {
	deps *handler.Deps
}

func NewAreaEffectSystem(deps *handler.Deps) *AreaEffectSystem {
	return &AreaEffectSystem{deps: deps}
}

func (s *AreaEffectSystem) Phase() system.Phase { return system.PhaseUpdate }

func (s *AreaEffectSystem) Update(dt time.Duration) {
	now := s.deps.World.Now()
	s.deps.World.ExpireEffects(now)

	sec := dt.Seconds()
	for _, ef := range s.deps.World.Effects() {
		z := s.deps.World.Zone(ef.ZoneID)
		if z == nil {
			continue
		}
		for _, m := range s.deps.World.MobsInZone(ef.ZoneID) {
			if m.Dead {
				continue
			}
			dx, dy := ef.X-m.X, ef.Y-m.Y
			d := dist(m.X, m.Y, ef.X, ef.Y)
			if d > ef.Radius || d == 0 {
				continue
			}
			pull := (world.WhirlpoolPullBase + world.WhirlpoolPullGain*(1-d/ef.Radius)) * sec
			m.X, m.Y, _, _ = z.SlideMove(m.X, m.Y, dx/d*pull, dy/d*pull, m.Radius, 0)
		}
	}
}
