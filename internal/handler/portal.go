package handler

import (
	"github.com/riptide/server/internal/net/proto"
	"github.com/riptide/server/internal/world"
	"go.uber.org/zap"
)

// HandlePortal checks the player's foot tile against the zone's portal list
// and transfers on a match. A short cooldown stops instant ping-pong between
// the paired portals.
func HandlePortal(d *Deps, p *world.Player, _ proto.Portal) {
	if p.IsDead() {
		return
	}
	now := d.World.Now()
	if now.Before(p.PortalReadyAt) {
		return
	}
	z := d.World.Zone(p.ZoneID)
	if z == nil {
		return
	}
	tx, ty := p.FootTile()
	portal := z.PortalAt(tx, ty)
	if portal == nil {
		return
	}
	dest := d.World.Zone(portal.DestZone)
	if dest == nil {
		d.Log.Warn("portal to missing zone",
			zap.Int("from", p.ZoneID), zap.Int("dest", portal.DestZone))
		return
	}

	// Land just below the return portal so the player is not standing on it.
	x := dest.PixelWidth() / 2
	y := dest.PixelHeight() / 2
	if back := dest.PortalTo(p.ZoneID); back != nil {
		x = (float64(back.X) + 0.5) * world.TileSize
		y = (float64(back.Y)+0.5)*world.TileSize + world.TileSize
	}
	p.PortalReadyAt = now.Add(world.PortalCooldown)
	TransferPlayer(d, p, portal.DestZone, x, y)
}

// TransferPlayer moves a player to another zone, cancelling anything that
// must not cross a zone boundary: owned area effects and the pending second
// stab.
func TransferPlayer(d *Deps, p *world.Player, zoneID int, x, y float64) {
	dest := d.World.Zone(zoneID)
	if dest == nil {
		return
	}
	d.World.CancelEffectsOwnedBy(p.ID)
	d.World.DropStabsFor(p.ID)
	p.Skill1Primed = false
	p.ZoneID = zoneID
	p.X, p.Y = dest.Clamp(x, y, world.PlayerRadius)
	p.Dirty = true
}
