package handler

import (
	"testing"

	"github.com/riptide/server/internal/data"
	"github.com/riptide/server/internal/net/proto"
	"github.com/riptide/server/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func editAck(rec *recorder) proto.EditAck {
	msg := rec.lastOf(func(m any) bool { _, ok := m.(proto.EditAck); return ok })
	if msg == nil {
		return proto.EditAck{}
	}
	return msg.(proto.EditAck)
}

func TestEditTileAppliesAndBroadcasts(t *testing.T) {
	d := newTestDeps()
	p, rec := addPlayer(d, 1)
	_, otherRec := addPlayer(d, 2)

	HandleEditTile(d, p, proto.EditTile{Layer: "ground", X: 2, Y: 2, Tile: 8})

	assert.True(t, editAck(rec).OK)
	assert.Equal(t, 8, d.World.Zone(1).Ground[2][2])

	patch := otherRec.lastOf(func(m any) bool { _, ok := m.(proto.MapPatch); return ok })
	require.NotNil(t, patch, "everyone in the zone gets the patch")
	assert.Equal(t, proto.MapPatch{Type: "mapPatch", Layer: "ground", X: 2, Y: 2, Tile: 8},
		patch.(proto.MapPatch))
}

func TestEditTileValidation(t *testing.T) {
	d := newTestDeps()
	z := d.World.Zone(1)
	z.Portals = append(z.Portals, data.PortalDef{X: 3, Y: 3, DestZone: 2})
	p, rec := addPlayer(d, 1)

	cases := []proto.EditTile{
		{Layer: "ground", X: -1, Y: 2, Tile: 1},                  // out of bounds
		{Layer: "ground", X: 2, Y: 99, Tile: 1},                  // out of bounds
		{Layer: "roof", X: 2, Y: 2, Tile: 1},                     // unknown layer
		{Layer: "ground", X: 2, Y: 2, Tile: world.MaxTileID + 1}, // bad tile id
		{Layer: "ground", X: 2, Y: 2, Tile: -1},                  // bad tile id
		{Layer: "ground", X: 3, Y: 3, Tile: 1},                   // portal tile protected
		{Layer: "deco", X: 3, Y: 3, Tile: 1},                     // protected on deco too
	}
	for _, c := range cases {
		rec.reset()
		HandleEditTile(d, p, c)
		assert.False(t, editAck(rec).OK, "%+v", c)
	}
	assert.Zero(t, z.Ground[2][2], "rejected edits leave the grid alone")
}
