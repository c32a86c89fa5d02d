package handler

import (
	"testing"

	"github.com/riptide/server/internal/data"
	"github.com/riptide/server/internal/net/proto"
	"github.com/riptide/server/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questNpc(d *Deps, x, y float64) *world.NPC {
	quest := &data.QuestDef{
		ID: "crab_cull", MobType: "crab", Required: 2,
		RewardGold: 40, RewardItem: "spear", RewardQty: 1,
	}
	d.Npcs = data.NewNpcTable([]data.NpcDef{{
		Key: "harbormaster", Name: "Eno", Sprite: "npc",
		ZoneID: 1, X: x, Y: y, Quest: quest,
	}})
	npc := &world.NPC{
		ID: d.World.NextID(), ZoneID: 1, X: x, Y: y,
		Key: "harbormaster", Name: "Eno", Sprite: "npc", Quest: "crab_cull",
	}
	d.World.AddNpc(npc)
	return npc
}

func dialogue(rec *recorder) *proto.Dialogue {
	msg := rec.lastOf(func(m any) bool { _, ok := m.(proto.Dialogue); return ok })
	if msg == nil {
		return nil
	}
	dl := msg.(proto.Dialogue)
	return &dl
}

func TestInteractStartsQuest(t *testing.T) {
	d := newTestDeps()
	p, rec := addPlayer(d, 1)
	npc := questNpc(d, p.X+40, p.Y)

	HandleInteract(d, p, proto.Interact{NpcID: npc.ID})

	require.NotNil(t, dialogue(rec))
	q := p.Quests["crab_cull"]
	require.NotNil(t, q)
	assert.Equal(t, 1, q.Stage)
	assert.Zero(t, q.Kills)
}

func TestInteractPaysRewardOnce(t *testing.T) {
	d := newTestDeps()
	p, _ := addPlayer(d, 1)
	npc := questNpc(d, p.X+40, p.Y)
	p.Quest("crab_cull").Stage = 1
	p.Quest("crab_cull").Kills = 2

	HandleInteract(d, p, proto.Interact{NpcID: npc.ID})

	assert.Equal(t, 2, p.Quests["crab_cull"].Stage)
	assert.Equal(t, 40, p.Gold)
	assert.Equal(t, wslot("spear", 1), p.Inv[0])

	// Talking again must not pay twice.
	HandleInteract(d, p, proto.Interact{NpcID: npc.ID})
	assert.Equal(t, 40, p.Gold)
	assert.True(t, p.Inv[1].Empty())
}

func TestInteractRewardOverflowDropsAtFeet(t *testing.T) {
	d := newTestDeps()
	p, _ := addPlayer(d, 1)
	npc := questNpc(d, p.X+40, p.Y)
	p.Quest("crab_cull").Stage = 1
	p.Quest("crab_cull").Kills = 2
	for i := range p.Inv {
		p.Inv[i] = wslot("flask", 1)
	}

	HandleInteract(d, p, proto.Interact{NpcID: npc.ID})

	assert.Equal(t, 2, p.Quests["crab_cull"].Stage)
	drops := d.World.DropsInZone(1)
	require.Len(t, drops, 1)
	assert.Equal(t, "spear", drops[0].ItemID)
}

func TestInteractRequiresProximity(t *testing.T) {
	d := newTestDeps()
	p, rec := addPlayer(d, 1)
	npc := questNpc(d, p.X+InteractRange+50, p.Y)

	HandleInteract(d, p, proto.Interact{NpcID: npc.ID})
	assert.Nil(t, dialogue(rec))
	assert.Empty(t, p.Quests)
}

func TestQuestKillCreditFlowsThroughEvents(t *testing.T) {
	d := newTestDeps()
	p, _ := addPlayer(d, 1)
	npc := questNpc(d, p.X+40, p.Y)
	WireEvents(d)
	HandleInteract(d, p, proto.Interact{NpcID: npc.ID})

	m := addMob(d, "crab", p.X+20, p.Y)
	m.HP = 1
	HitMob(d, p, m, p.Attack)

	// Kill credit is delivered on the next step's dispatch.
	assert.Zero(t, p.Quests["crab_cull"].Kills)
	d.Bus.SwapBuffers()
	d.Bus.DispatchAll()
	assert.Equal(t, 1, p.Quests["crab_cull"].Kills)

	// Wrong mob type earns nothing.
	j := addMob(d, "jelly", p.X+20, p.Y)
	j.HP = 1
	HitMob(d, p, j, p.Attack)
	d.Bus.SwapBuffers()
	d.Bus.DispatchAll()
	assert.Equal(t, 1, p.Quests["crab_cull"].Kills)
}
