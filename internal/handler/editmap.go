package handler

import (
	"github.com/riptide/server/internal/net/proto"
	"github.com/riptide/server/internal/world"
)

// HandleEditTile applies a live map edit to the player's current zone.
// Portal tiles are protected on both layers so an edit can never wall off or
// repaint a doorway. Everyone in the zone receives the patch.
func HandleEditTile(d *Deps, p *world.Player, c proto.EditTile) {
	z := d.World.Zone(p.ZoneID)
	if z == nil {
		return
	}
	ok := z.InBounds(c.X, c.Y) &&
		c.Tile >= 0 && c.Tile <= world.MaxTileID &&
		(c.Layer == "ground" || c.Layer == "deco") &&
		z.PortalAt(c.X, c.Y) == nil
	if !ok {
		p.Send(proto.EditAck{Type: "editAck", OK: false})
		return
	}

	switch c.Layer {
	case "ground":
		z.Ground[c.Y][c.X] = c.Tile
	case "deco":
		z.Deco[c.Y][c.X] = c.Tile
	}
	p.Send(proto.EditAck{Type: "editAck", OK: true})
	d.BroadcastZone(p.ZoneID, proto.MapPatch{
		Type:  "mapPatch",
		Layer: c.Layer,
		X:     c.X,
		Y:     c.Y,
		Tile:  c.Tile,
	})
}
