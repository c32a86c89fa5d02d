package handler

import (
	"math"

	"github.com/riptide/server/internal/config"
	"github.com/riptide/server/internal/core/event"
	"github.com/riptide/server/internal/data"
	"github.com/riptide/server/internal/net/proto"
	"github.com/riptide/server/internal/persist"
	"github.com/riptide/server/internal/scripting"
	"github.com/riptide/server/internal/world"
	"go.uber.org/zap"
)

// Deps holds shared dependencies injected into all command handlers and the
// simulation systems that reuse them.
type Deps struct {
	Config    *config.Config
	Log       *zap.Logger
	World     *world.State
	Items     *data.ItemTable
	Mobs      *data.MobTable
	Npcs      *data.NpcTable
	Scripting *scripting.Engine
	Gateway   *persist.Gateway
	Bus       *event.Bus
}

// BroadcastZone sends one message to every player currently in a zone.
func (d *Deps) BroadcastZone(zoneID int, msg any) {
	for _, p := range d.World.PlayersInZone(zoneID) {
		p.Send(msg)
	}
}

// QuestDef resolves a quest id against the NPC table.
func (d *Deps) QuestDef(id string) *data.QuestDef {
	for _, n := range d.Npcs.All() {
		if n.Quest != nil && n.Quest.ID == id {
			return n.Quest
		}
	}
	return nil
}

// aimDir resolves an Aim payload into a unit direction for the player:
// explicit direction when supplied, otherwise toward the aim point, falling
// back to current facing for degenerate input.
func aimDir(p *world.Player, a proto.Aim) (float64, float64) {
	dx, dy := a.DirX, a.DirY
	if !a.HasDir() {
		dx = a.X - p.X
		dy = a.Y - p.Y
	}
	length := math.Hypot(dx, dy)
	if length == 0 {
		return p.FacingX, p.FacingY
	}
	return dx / length, dy / length
}
