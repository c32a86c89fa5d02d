package world

import "github.com/riptide/server/internal/data"

// Slot is one inventory cell. Empty when ItemID is "".
type Slot struct {
	ItemID string
	Qty    int
}

// Empty reports whether the slot holds nothing.
func (s Slot) Empty() bool { return s.ItemID == "" }

// FreeSlot returns the index of the first empty inventory slot, or -1.
func (p *Player) FreeSlot() int {
	for i := range p.Inv {
		if p.Inv[i].Empty() {
			return i
		}
	}
	return -1
}

// AddItem deposits qty of an item, topping up existing stacks before
// opening new slots, never exceeding the item's max stack. Returns the
// remainder that did not fit.
func (p *Player) AddItem(items *data.ItemTable, itemID string, qty int) int {
	def := items.Get(itemID)
	if def == nil || qty <= 0 {
		return qty
	}
	for i := range p.Inv {
		if qty == 0 {
			break
		}
		if p.Inv[i].ItemID != itemID || p.Inv[i].Qty >= def.MaxStack {
			continue
		}
		room := def.MaxStack - p.Inv[i].Qty
		take := min(room, qty)
		p.Inv[i].Qty += take
		qty -= take
	}
	for i := range p.Inv {
		if qty == 0 {
			break
		}
		if !p.Inv[i].Empty() {
			continue
		}
		take := min(def.MaxStack, qty)
		p.Inv[i] = Slot{ItemID: itemID, Qty: take}
		qty -= take
	}
	return qty
}

// RemoveAt takes count items out of a slot, clearing it when drained.
func (p *Player) RemoveAt(slot, count int) {
	if slot < 0 || slot >= len(p.Inv) {
		return
	}
	p.Inv[slot].Qty -= count
	if p.Inv[slot].Qty <= 0 {
		p.Inv[slot] = Slot{}
	}
}
