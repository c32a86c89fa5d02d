package handler

import (
	"regexp"

	"github.com/riptide/server/internal/net/proto"
	"github.com/riptide/server/internal/persist"
	"github.com/riptide/server/internal/world"
	"go.uber.org/zap"
)

var namePattern = regexp.MustCompile(`^[A-Za-z]{2,16}$`)

// HandleSetName validates the requested name, claims it for the session and
// kicks off an asynchronous character load keyed by that name. The loaded
// record is applied on the simulation goroutine, so it revalidates that the
// player is still connected and still owns the name before hydrating.
func HandleSetName(d *Deps, p *world.Player, c proto.SetName) {
	if !namePattern.MatchString(c.Name) {
		p.Send(proto.NameResult{Type: "nameRejected", Reason: "badName"})
		return
	}
	if other := d.World.PlayerByName(c.Name); other != nil && other.ID != p.ID {
		p.Send(proto.NameResult{Type: "nameRejected", Reason: "taken"})
		return
	}

	p.Name = c.Name
	p.Dirty = true
	p.Send(proto.NameResult{Type: "nameAccepted", Name: c.Name})

	if !d.Gateway.Enabled() {
		return
	}
	id := p.ID
	name := c.Name
	d.Gateway.LoadAsync(name, func(rec *persist.PlayerRecord) {
		if rec == nil {
			return
		}
		cur := d.World.Player(id)
		if cur == nil || cur.Name != name {
			return
		}
		applyRecord(d, cur, rec)
	})
}

// applyRecord hydrates a connected player from a stored character record.
// Stored positions may reference zones removed since the save, in which case
// the player keeps the default spawn.
func applyRecord(d *Deps, p *world.Player, rec *persist.PlayerRecord) {
	p.Level = rec.Level
	p.XP = rec.XP
	p.XPNext = rec.XPNext
	p.Attack = rec.Attack
	p.MaxHP = rec.MaxHP
	p.HP = rec.HP
	if p.HP <= 0 || p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
	p.Gold = rec.Gold

	if z := d.World.Zone(rec.ZoneID); z != nil {
		p.ZoneID = rec.ZoneID
		p.X, p.Y = z.Clamp(rec.X, rec.Y, world.PlayerRadius)
	}

	p.Equip = world.Equipment{}
	for _, slot := range []struct {
		name string
		id   string
	}{
		{"weapon", rec.Equipment.Weapon},
		{"armor", rec.Equipment.Armor},
		{"hat", rec.Equipment.Hat},
		{"accessory", rec.Equipment.Accessory},
	} {
		if slot.id == "" {
			continue
		}
		if d.Items.Get(slot.id) == nil {
			d.Log.Warn("dropping unknown equipped item from save",
				zap.String("player", p.Name), zap.String("item", slot.id))
			continue
		}
		p.Equip.Set(slot.name, slot.id)
	}

	p.Inv = [world.InventorySize]world.Slot{}
	for i, s := range rec.Inventory {
		if i >= world.InventorySize {
			break
		}
		if s.ItemID == "" || s.Qty <= 0 {
			continue
		}
		if d.Items.Get(s.ItemID) == nil {
			d.Log.Warn("dropping unknown inventory item from save",
				zap.String("player", p.Name), zap.String("item", s.ItemID))
			continue
		}
		p.Inv[i] = world.Slot{ItemID: s.ItemID, Qty: s.Qty}
	}

	p.Quests = make(map[string]*world.QuestProgress, len(rec.Quests))
	for id, q := range rec.Quests {
		p.Quests[id] = &world.QuestProgress{Stage: q.Stage, Kills: q.Kills}
	}

	p.Dirty = true
	d.Log.Info("character hydrated",
		zap.Uint64("id", p.ID),
		zap.String("name", p.Name),
		zap.Int("level", p.Level))
}

// RecordFor converts live player state into a storable character record.
func RecordFor(p *world.Player) persist.PlayerRecord {
	rec := persist.PlayerRecord{
		Name:   p.Name,
		Level:  p.Level,
		XP:     p.XP,
		XPNext: p.XPNext,
		Attack: p.Attack,
		HP:     p.HP,
		MaxHP:  p.MaxHP,
		ZoneID: p.ZoneID,
		X:      p.X,
		Y:      p.Y,
		Gold:   p.Gold,
		Equipment: persist.EquipmentDoc{
			Weapon:    p.Equip.Get("weapon"),
			Armor:     p.Equip.Get("armor"),
			Hat:       p.Equip.Get("hat"),
			Accessory: p.Equip.Get("accessory"),
		},
		Quests: make(map[string]persist.QuestDoc, len(p.Quests)),
	}
	rec.Inventory = make([]persist.SlotDoc, world.InventorySize)
	for i, s := range p.Inv {
		rec.Inventory[i] = persist.SlotDoc{ItemID: s.ItemID, Qty: s.Qty}
	}
	for id, q := range p.Quests {
		rec.Quests[id] = persist.QuestDoc{Stage: q.Stage, Kills: q.Kills}
	}
	return rec
}
