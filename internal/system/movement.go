package system

import (
	"math"
	"time"

	"github.com/riptide/server/internal/core/system"
	"github.com/riptide/server/internal/handler"
	"github.com/riptide/server/internal/world"
)

// MovementSystem applies held input to player positions with the foot-circle
// slide move, then collects any drops the player walks over.
type MovementSystem struct {
	deps *handler.Deps
}

func NewMovementSystem(deps *handler.Deps) *MovementSystem {
	return &MovementSystem{deps: deps}
}

func (s *MovementSystem) Phase() system.Phase { return system.PhaseUpdate }

func (s *MovementSystem) Update(dt time.Duration) {
	step := world.PlayerSpeed * dt.Seconds()
	s.deps.World.AllPlayers(func(p *world.Player) {
		if p.IsDead() {
			return
		}
		z := s.deps.World.Zone(p.ZoneID)
		if z == nil {
			return
		}
		dx, dy := inputVector(p.Input)
		if dx != 0 || dy != 0 {
			p.X, p.Y, _, _ = z.SlideMove(p.X, p.Y, dx*step, dy*step,
				world.FootRadius, world.FootOffsetY)
		}
		s.pickupNearby(p)
	})
}

func inputVector(in world.InputState) (float64, float64) {
	dx, dy := 0.0, 0.0
	if in.Left {
		dx -= 1
	}
	if in.Right {
		dx += 1
	}
	if in.Up {
		dy -= 1
	}
	if in.Down {
		dy += 1
	}
	if dx != 0 && dy != 0 {
		inv := 1 / math.Sqrt2
		dx *= inv
		dy *= inv
	}
	return dx, dy
}

func (s *MovementSystem) pickupNearby(p *world.Player) {
	for _, drop := range s.deps.World.DropsInZone(p.ZoneID) {
		ddx, ddy := drop.X-p.X, drop.Y-p.Y
		if ddx*ddx+ddy*ddy <= world.DropPickupRange*world.DropPickupRange {
			handler.PickupDrop(s.deps, p, drop)
		}
	}
}
