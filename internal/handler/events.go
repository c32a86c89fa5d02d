package handler

import (
	"github.com/riptide/server/internal/core/event"
	"go.uber.org/zap"
)

// WireEvents registers the cross-cutting reactions to simulation events.
// Quest progress is the main customer: kill credit flows through the bus so
// combat resolution never needs to know about quests.
func WireEvents(d *Deps) {
	event.Subscribe(d.Bus, func(ev event.MobKilledEvent) {
		p := d.World.Player(ev.PlayerID)
		if p == nil {
			return
		}
		for _, n := range d.Npcs.All() {
			q := n.Quest
			if q == nil || q.MobType != ev.MobType {
				continue
			}
			prog, ok := p.Quests[q.ID]
			if !ok || prog.Stage != 1 || prog.Kills >= q.Required {
				continue
			}
			prog.Kills++
			p.Dirty = true
		}
	})

	event.Subscribe(d.Bus, func(ev event.LevelUpEvent) {
		d.Log.Info("level up",
			zap.Uint64("player", ev.PlayerID),
			zap.Int("level", ev.Level))
	})
}
