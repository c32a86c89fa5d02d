package system

import (
	"testing"
	"time"

	"github.com/riptide/server/internal/handler"
	"github.com/riptide/server/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhirlpoolPullsMobsInward(t *testing.T) {
	d := newTestDeps()
	p, _ := addPlayer(d, 1, 160, 160)
	m := addMob(d, "crab", 220, 160)      // 60 px out, inside the 90 px radius
	outside := addMob(d, "crab", 160, 60) // 100 px out
	sys := NewAreaEffectSystem(d)

	handler.SpawnWhirlpool(d, p, 160, 160)
	before := m.X
	outsideY := outside.Y
	tick(d, sys)

	assert.Less(t, m.X, before, "pulled toward the center")
	assert.Equal(t, outsideY, outside.Y, "mobs beyond the radius are untouched")
}

func TestWhirlpoolPullRampsTowardCenter(t *testing.T) {
	d := newTestDeps()
	p, _ := addPlayer(d, 1, 160, 160)
	nearEdge := addMob(d, "crab", 240, 160)
	nearCenter := addMob(d, "crab", 180, 160)
	sys := NewAreaEffectSystem(d)

	handler.SpawnWhirlpool(d, p, 160, 160)
	edgeBefore, centerBefore := nearEdge.X, nearCenter.X
	tick(d, sys)

	edgePull := edgeBefore - nearEdge.X
	centerPull := centerBefore - nearCenter.X
	assert.Greater(t, centerPull, edgePull, "pull strengthens toward the center")
}

func TestWhirlpoolExpires(t *testing.T) {
	d := newTestDeps()
	p, _ := addPlayer(d, 1, 160, 160)
	sys := NewAreaEffectSystem(d)

	handler.SpawnWhirlpool(d, p, 160, 160)
	require.Len(t, d.World.Effects(), 1)

	d.World.SetNow(d.World.Now().Add(world.WhirlpoolDuration + time.Second))
	tick(d, sys)
	assert.Empty(t, d.World.Effects())
}

func TestDisconnectRemovesOwnedEffect(t *testing.T) {
	d := newTestDeps()
	p, _ := addPlayer(d, 1, 160, 160)
	handler.SpawnWhirlpool(d, p, 160, 160)
	require.Len(t, d.World.Effects(), 1)

	handler.LeavePlayer(d, p.ID)
	assert.Empty(t, d.World.Effects(), "leaving cancels the owned effect")
}
