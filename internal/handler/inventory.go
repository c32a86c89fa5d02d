package handler

import (
	"github.com/riptide/server/internal/data"
	"github.com/riptide/server/internal/net/proto"
	"github.com/riptide/server/internal/world"
)

// HandleInvClick applies the click action for an inventory slot: equippable
// items are equipped (swapping any current occupant of the equip slot back
// into the bag), consumables are used.
func HandleInvClick(d *Deps, p *world.Player, c proto.InvClick) {
	if p.IsDead() {
		return
	}
	if c.Slot < 0 || c.Slot >= world.InventorySize {
		return
	}
	s := p.Inv[c.Slot]
	if s.Empty() {
		return
	}
	def := d.Items.Get(s.ItemID)
	if def == nil {
		return
	}
	switch {
	case def.Slot != "":
		equipFromSlot(d, p, c.Slot, def)
	case def.Effect != "":
		consumeFromSlot(d, p, c.Slot, def)
	}
}

// HandleUseItem consumes a usable item in a slot without the equip path.
func HandleUseItem(d *Deps, p *world.Player, c proto.UseItem) {
	if p.IsDead() {
		return
	}
	if c.Slot < 0 || c.Slot >= world.InventorySize {
		return
	}
	s := p.Inv[c.Slot]
	if s.Empty() {
		return
	}
	def := d.Items.Get(s.ItemID)
	if def == nil || def.Effect == "" {
		return
	}
	consumeFromSlot(d, p, c.Slot, def)
}

// HandleUnequip moves an equipped item back into the first free bag slot.
// With a full bag the command is a no-op.
func HandleUnequip(d *Deps, p *world.Player, c proto.Unequip) {
	if p.IsDead() {
		return
	}
	cur := p.Equip.Get(c.Slot)
	if cur == "" {
		return
	}
	free := p.FreeSlot()
	if free < 0 {
		return
	}
	p.Equip.Set(c.Slot, "")
	p.Inv[free] = world.Slot{ItemID: cur, Qty: 1}
	p.Dirty = true
}

// equipFromSlot swaps the clicked item into its equip slot. When something is
// already equipped there, a free bag slot must exist to receive it; the
// clicked slot still holds the incoming item during that check, so a full
// bag fails the swap.
func equipFromSlot(d *Deps, p *world.Player, slot int, def *data.ItemDef) {
	prev := p.Equip.Get(def.Slot)
	if prev != "" && p.FreeSlot() < 0 {
		return
	}
	p.Inv[slot] = world.Slot{}
	p.Equip.Set(def.Slot, def.ID)
	if prev != "" {
		free := p.FreeSlot()
		p.Inv[free] = world.Slot{ItemID: prev, Qty: 1}
	}
	p.Dirty = true
}

func consumeFromSlot(d *Deps, p *world.Player, slot int, def *data.ItemDef) {
	switch def.Effect {
	case data.EffectHeal:
		if p.HP >= p.MaxHP {
			return
		}
		p.HP += def.EffectAmount
		if p.HP > p.MaxHP {
			p.HP = p.MaxHP
		}
	default:
		return
	}
	p.RemoveAt(slot, 1)
	p.Dirty = true
}
