package handler

import (
	"math"

	"github.com/riptide/server/internal/net/proto"
	"github.com/riptide/server/internal/world"
)

// HandleInput records the latest held movement flags. Facing follows the
// movement direction except while an attack animation plays, so swings keep
// pointing where they were aimed.
func HandleInput(d *Deps, p *world.Player, c proto.Input) {
	p.Input = world.InputState{Up: c.Up, Down: c.Down, Left: c.Left, Right: c.Right}

	if d.World.Now().Before(p.AttackAnimUntil) {
		return
	}
	dx, dy := 0.0, 0.0
	if c.Left {
		dx -= 1
	}
	if c.Right {
		dx += 1
	}
	if c.Up {
		dy -= 1
	}
	if c.Down {
		dy += 1
	}
	if dx == 0 && dy == 0 {
		return
	}
	length := math.Hypot(dx, dy)
	p.FacingX = dx / length
	p.FacingY = dy / length
}
