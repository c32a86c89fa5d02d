package handler

import (
	"testing"
	"time"

	"github.com/riptide/server/internal/data"
	"github.com/riptide/server/internal/net/proto"
	"github.com/riptide/server/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linkZones adds a portal pair between the test zones: zone 1 tile (4,4)
// and zone 2 tile (2,2).
func linkZones(d *Deps) {
	z1 := d.World.Zone(1)
	z1.Portals = append(z1.Portals, data.PortalDef{X: 4, Y: 4, DestZone: 2})
	z2 := d.World.Zone(2)
	z2.Portals = append(z2.Portals, data.PortalDef{X: 2, Y: 2, DestZone: 1})
}

func standOnPortal(p *world.Player) {
	// Foot tile is (x/tile, (y+offset)/tile); center of tile (4,4).
	p.X = 4.5 * world.TileSize
	p.Y = 4.5*world.TileSize - world.FootOffsetY
}

func TestPortalTransfersAndArmsCooldown(t *testing.T) {
	d := newTestDeps()
	linkZones(d)
	p, _ := addPlayer(d, 1)
	standOnPortal(p)

	HandlePortal(d, p, proto.Portal{})

	assert.Equal(t, 2, p.ZoneID)
	assert.True(t, p.PortalReadyAt.After(d.World.Now()))
	// Landed near the return portal, inside bounds.
	z2 := d.World.Zone(2)
	assert.LessOrEqual(t, p.X, z2.PixelWidth()-world.PlayerRadius)
	assert.LessOrEqual(t, p.Y, z2.PixelHeight()-world.PlayerRadius)

	// Immediate re-use is blocked by the cooldown.
	p.X = 2.5 * world.TileSize
	p.Y = 2.5*world.TileSize - world.FootOffsetY
	HandlePortal(d, p, proto.Portal{})
	assert.Equal(t, 2, p.ZoneID, "anti ping-pong cooldown holds")
}

func TestPortalRequiresPortalTile(t *testing.T) {
	d := newTestDeps()
	linkZones(d)
	p, _ := addPlayer(d, 1)
	// Player stands mid-zone, not on the portal tile.

	HandlePortal(d, p, proto.Portal{})
	assert.Equal(t, 1, p.ZoneID)
}

func TestTransferCancelsOwnedEffectsAndStabs(t *testing.T) {
	d := newTestDeps()
	linkZones(d)
	p, _ := addPlayer(d, 1)
	SpawnWhirlpool(d, p, p.X, p.Y)
	d.World.ScheduleStab(world.PendingStab{CasterID: p.ID, ZoneID: 1,
		Due: d.World.Now().Add(world.DoubleStabDelay), DirX: 1})
	p.Skill1Primed = true
	require.Len(t, d.World.Effects(), 1)

	TransferPlayer(d, p, 2, 100, 100)

	assert.Empty(t, d.World.Effects())
	assert.Empty(t, d.World.DueStabs(d.World.Now().Add(time.Hour)))
	assert.False(t, p.Skill1Primed)
	assert.Equal(t, 2, p.ZoneID)
}
