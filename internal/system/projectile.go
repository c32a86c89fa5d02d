package system

import (
	"time"

	"github.com/riptide/server/internal/core/system"
	"github.com/riptide/server/internal/handler"
	"github.com/riptide/server/internal/world"
)

// ProjectileSystem advances projectiles and resolves their collisions: walls
// first (point test at the projectile center), then the first overlapping
// mob in registration order.
type ProjectileSystem struct {
	deps *handler.Deps
}

func NewProjectileSystem(deps *handler.Deps) *ProjectileSystem {
	return &ProjectileSystem{deps: deps}
}

func (s *ProjectileSystem) Phase() system.Phase { return system.PhaseUpdate }

func (s *ProjectileSystem) Update(dt time.Duration) {
	now := s.deps.World.Now()
	sec := dt.Seconds()
	s.deps.World.RemoveProjectilesWhere(func(pr *world.Projectile) bool {
		if !now.Before(pr.ExpiresAt) {
			return true
		}
		pr.X += pr.VX * sec
		pr.Y += pr.VY * sec

		z := s.deps.World.Zone(pr.ZoneID)
		if z == nil || z.TileBlocking(pr.X, pr.Y) {
			return true
		}

		for _, m := range s.deps.World.MobsInZone(pr.ZoneID) {
			if m.Dead {
				continue
			}
			dx, dy := m.X-pr.X, m.Y-pr.Y
			rr := pr.Radius + m.Radius
			if dx*dx+dy*dy > rr*rr {
				continue
			}
			if owner := s.deps.World.Player(pr.OwnerID); owner != nil {
				handler.HitMob(s.deps, owner, m, pr.Damage)
			}
			if pr.TriggersArea {
				handler.TriggerPrimedArea(s.deps, pr.OwnerID, pr.ZoneID, pr.X, pr.Y)
			}
			return true
		}
		return false
	})
}
