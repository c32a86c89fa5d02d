package handler

import (
	"github.com/riptide/server/internal/net/proto"
	"github.com/riptide/server/internal/world"
	"go.uber.org/zap"
)

// JoinPlayer creates a fresh player in the configured start zone and sends
// the welcome bundle. Character data arrives later, once the client claims
// a name.
func JoinPlayer(d *Deps, id uint64, conn proto.Sender) *world.Player {
	zoneID := d.Config.Server.StartZone
	z := d.World.Zone(zoneID)
	x, y := z.Clamp(z.PixelWidth()/2, z.PixelHeight()/2, world.PlayerRadius)

	p := world.NewPlayer(id, conn, zoneID, x, y)
	p.RespawnZone = zoneID
	p.RespawnX, p.RespawnY = x, y
	d.World.AddPlayer(p)

	p.Send(proto.Welcome{
		Type:         "welcome",
		ID:           id,
		ZoneID:       zoneID,
		GroundGrid:   z.Ground,
		DecoGrid:     z.Deco,
		Portals:      PortalViews(z),
		TileSize:     world.TileSize,
		ZoneWidth:    z.Width,
		ZoneHeight:   z.Height,
		PlayerRadius: world.PlayerRadius,
		PortalTileID: world.PortalTileID,
		WeaponList:   weaponViews(d),
	})
	d.Log.Info("player joined", zap.Uint64("id", id), zap.Int("zone", zoneID))
	return p
}

// LeavePlayer tears a player down on disconnect: owned effects and the
// pending second stab are invalidated immediately, the character is saved in
// the background, and the record leaves the store before the save lands.
func LeavePlayer(d *Deps, id uint64) {
	p := d.World.Player(id)
	if p == nil {
		return
	}
	d.World.CancelEffectsOwnedBy(id)
	d.World.DropStabsFor(id)
	if p.Name != "" && d.Gateway.Enabled() {
		d.Gateway.SaveAsync(RecordFor(p))
	}
	d.World.RemovePlayer(id)
	d.Log.Info("player left", zap.Uint64("id", id), zap.String("name", p.Name))
}

// PortalViews converts a zone's portal list to the wire shape.
func PortalViews(z *world.Zone) []proto.PortalView {
	out := make([]proto.PortalView, len(z.Portals))
	for i, portal := range z.Portals {
		out[i] = proto.PortalView{X: portal.X, Y: portal.Y, DestZone: portal.DestZone}
	}
	return out
}

func weaponViews(d *Deps) []proto.WeaponView {
	var out []proto.WeaponView
	for _, w := range d.Items.Weapons() {
		out = append(out, proto.WeaponView{
			ID:        w.ID,
			Name:      w.Name,
			Class:     w.WeaponClass,
			SpeedMult: w.SpeedMult,
		})
	}
	return out
}
