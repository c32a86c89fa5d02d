package handler

import (
	"fmt"
	"math"

	"github.com/riptide/server/internal/net/proto"
	"github.com/riptide/server/internal/scripting"
	"github.com/riptide/server/internal/world"
)

// InteractRange is how close a player must stand to talk to an NPC.
const InteractRange = 3 * world.TileSize

// HandleInteract runs one talk round with an NPC: advances the NPC's quest
// state machine where applicable, then sends a dialogue line. Text comes
// from the NPC script when one is loaded, with built-in fallbacks.
func HandleInteract(d *Deps, p *world.Player, c proto.Interact) {
	if p.IsDead() {
		return
	}
	npc := d.World.Npc(c.NpcID)
	if npc == nil || npc.ZoneID != p.ZoneID {
		return
	}
	if math.Hypot(npc.X-p.X, npc.Y-p.Y) > InteractRange {
		return
	}

	// Dialogue reflects the stage at the moment of the talk, so the line
	// that accompanies a transition ("take the quest", "here is your
	// reward") is the one this interaction earned.
	var (
		quest = d.QuestDef(npc.Quest)
		stage = 0
		kills = 0
	)
	if quest != nil {
		q := p.Quest(quest.ID)
		stage, kills = q.Stage, q.Kills
		switch {
		case q.Stage == 0:
			q.Stage = 1
			q.Kills = 0
			p.Dirty = true
		case q.Stage == 1 && q.Kills >= quest.Required:
			q.Stage = 2
			p.Gold += quest.RewardGold
			if quest.RewardItem != "" && quest.RewardQty > 0 {
				left := p.AddItem(d.Items, quest.RewardItem, quest.RewardQty)
				if left > 0 {
					SpawnDrop(d, p.ZoneID, p.X, p.Y, quest.RewardItem, left)
				}
			}
			p.Dirty = true
		}
	}

	text := "Hello there."
	if quest != nil {
		text = questLine(quest.Required, stage, kills)
	}
	if d.Scripting != nil {
		ctx := scripting.TalkContext{
			NpcKey:     npc.Key,
			NpcName:    npc.Name,
			PlayerName: p.Name,
			QuestStage: stage,
			Kills:      kills,
		}
		if quest != nil {
			ctx.Required = quest.Required
		}
		if line, ok := d.Scripting.NpcTalk(ctx); ok {
			text = line
		}
	}

	p.Send(proto.Dialogue{Type: "dialogue", NpcID: npc.ID, Name: npc.Name, Text: text})
}

// questLine is the scriptless dialogue, keyed by the pre-transition stage.
func questLine(required, stage, kills int) string {
	switch {
	case stage == 0:
		return fmt.Sprintf("I could use a hand with %d of them.", required)
	case stage == 1 && kills >= required:
		return "Well done, that takes care of them. Here is your reward."
	case stage == 1:
		return fmt.Sprintf("Still %d to go.", required-kills)
	default:
		return "Thanks again for your help."
	}
}
