package handler

import (
	"testing"
	"time"

	"github.com/riptide/server/internal/net/proto"
	"github.com/riptide/server/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinPlayerSendsWelcome(t *testing.T) {
	d := newTestDeps()
	rec := &recorder{}

	p := JoinPlayer(d, 7, rec)

	require.Len(t, rec.msgs, 1)
	w, ok := rec.msgs[0].(proto.Welcome)
	require.True(t, ok)
	assert.Equal(t, "welcome", w.Type)
	assert.Equal(t, uint64(7), w.ID)
	assert.Equal(t, 1, w.ZoneID)
	assert.Equal(t, world.TileSize, w.TileSize)
	assert.Len(t, w.WeaponList, 3)
	assert.NotEmpty(t, w.GroundGrid)

	assert.Same(t, p, d.World.Player(7))
	assert.Equal(t, 1, p.RespawnZone)
}

func TestLeavePlayerCancelsOwnedState(t *testing.T) {
	d := newTestDeps()
	p, _ := addPlayer(d, 1)
	SpawnWhirlpool(d, p, p.X, p.Y)
	d.World.ScheduleStab(world.PendingStab{CasterID: p.ID, ZoneID: 1,
		Due: d.World.Now().Add(world.DoubleStabDelay)})

	LeavePlayer(d, p.ID)

	assert.Nil(t, d.World.Player(p.ID))
	assert.Empty(t, d.World.Effects(), "owned effect gone immediately")
	assert.Empty(t, d.World.DueStabs(d.World.Now().Add(time.Hour)))
}
