package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Equip slots. An item with an empty Slot is not equippable.
const (
	SlotWeapon    = "weapon"
	SlotArmor     = "armor"
	SlotHat       = "hat"
	SlotAccessory = "accessory"
)

// Weapon classes drive the attack shape and the skill gates.
const (
	WeaponArc  = "arc"  // three-circle forward sweep
	WeaponPoke = "poke" // single offset circle; gates the double stab skill
	WeaponWand = "wand" // projectile; gates the whirlpool skill
)

// Consume effect tags. Item behavior is a closed enum interpreted by the
// command processor, never a callback attached to the record.
const (
	EffectHeal = "heal"
)

// CoinItemID is the currency pseudo-item used by drops and gold pickups.
const CoinItemID = "coins"

// ItemDef is one entry of the static item catalog.
type ItemDef struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	MaxStack     int     `yaml:"max_stack"`
	Slot         string  `yaml:"slot,omitempty"`
	WeaponClass  string  `yaml:"weapon_class,omitempty"`
	SpeedMult    float64 `yaml:"speed_mult,omitempty"`
	Effect       string  `yaml:"effect,omitempty"`
	EffectAmount int     `yaml:"effect_amount,omitempty"`
	Sprite       string  `yaml:"sprite,omitempty"`
}

type itemListFile struct {
	Items []ItemDef `yaml:"items"`
}

// ItemTable holds the item catalog indexed by item ID.
type ItemTable struct {
	items map[string]*ItemDef
	order []string
}

// LoadItemTable loads the item catalog from a YAML file.
func LoadItemTable(path string) (*ItemTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read item list: %w", err)
	}
	var f itemListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse item list: %w", err)
	}
	t := &ItemTable{items: make(map[string]*ItemDef, len(f.Items))}
	for i := range f.Items {
		it := &f.Items[i]
		if it.MaxStack <= 0 {
			it.MaxStack = 1
		}
		if it.Slot == SlotWeapon && it.SpeedMult <= 0 {
			it.SpeedMult = 1.0
		}
		t.items[it.ID] = it
		t.order = append(t.order, it.ID)
	}
	return t, nil
}

// NewItemTable builds a table from in-memory defs. Test constructor.
func NewItemTable(defs []ItemDef) *ItemTable {
	t := &ItemTable{items: make(map[string]*ItemDef, len(defs))}
	for i := range defs {
		it := &defs[i]
		if it.MaxStack <= 0 {
			it.MaxStack = 1
		}
		if it.Slot == SlotWeapon && it.SpeedMult <= 0 {
			it.SpeedMult = 1.0
		}
		t.items[it.ID] = it
		t.order = append(t.order, it.ID)
	}
	return t
}

// Get returns an item definition by ID, or nil if not found.
func (t *ItemTable) Get(id string) *ItemDef {
	return t.items[id]
}

// Weapons returns all weapon definitions in catalog order.
func (t *ItemTable) Weapons() []*ItemDef {
	var out []*ItemDef
	for _, id := range t.order {
		if it := t.items[id]; it.Slot == SlotWeapon {
			out = append(out, it)
		}
	}
	return out
}

// Count returns the catalog size.
func (t *ItemTable) Count() int {
	return len(t.items)
}
