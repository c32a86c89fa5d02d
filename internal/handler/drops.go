package handler

import (
	"github.com/riptide/server/internal/data"
	"github.com/riptide/server/internal/net/proto"
	"github.com/riptide/server/internal/world"
)

// PickupDrop gives a ground drop to a player walking over it. Coins convert
// straight to gold; items go to the bag, and whatever does not fit stays on
// the ground for the next pass.
func PickupDrop(d *Deps, p *world.Player, drop *world.Drop) {
	if drop.ItemID == data.CoinItemID {
		p.Gold += drop.Qty
		p.Dirty = true
		d.World.RemoveDrop(drop.ID)
		p.Send(proto.Loot{Type: "loot", ItemID: drop.ItemID, Qty: drop.Qty})
		return
	}
	left := p.AddItem(d.Items, drop.ItemID, drop.Qty)
	taken := drop.Qty - left
	if taken <= 0 {
		return
	}
	if left == 0 {
		d.World.RemoveDrop(drop.ID)
	} else {
		drop.Qty = left
	}
	p.Dirty = true
	p.Send(proto.Loot{Type: "loot", ItemID: drop.ItemID, Qty: taken})
}
