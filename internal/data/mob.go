package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LootEntry is a single independently-rolled drop from a mob type.
// Chance is in [0,1]. Qty is fixed when Min==Max (or Max==0), otherwise a
// uniform roll in [Min,Max].
type LootEntry struct {
	ItemID string  `yaml:"item_id"`
	Chance float64 `yaml:"chance"`
	Min    int     `yaml:"min"`
	Max    int     `yaml:"max"`
}

// MobTemplate holds static stats and behavior defaults for a mob type.
type MobTemplate struct {
	Type            string      `yaml:"type"`
	Name            string      `yaml:"name"`
	Sprite          string      `yaml:"sprite"`
	HP              int         `yaml:"hp"`
	ContactDamage   int         `yaml:"contact_damage"`
	XPReward        int         `yaml:"xp_reward"`
	Level           int         `yaml:"level"`
	Radius          float64     `yaml:"radius"`
	Speed           float64     `yaml:"speed"`       // wander, units/s
	ChaseSpeed      float64     `yaml:"chase_speed"` // chase, units/s
	BaseAggroRange  float64     `yaml:"aggro_range"`
	HitAggroRange   float64     `yaml:"hit_aggro_range"`
	PassiveUntilHit bool        `yaml:"passive_until_hit"`
	Loot            []LootEntry `yaml:"loot"`
}

// MobSpawnEntry places Count mobs of a type in a zone.
type MobSpawnEntry struct {
	Type   string  `yaml:"type"`
	ZoneID int     `yaml:"zone_id"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Count  int     `yaml:"count"`
	Spread float64 `yaml:"spread"` // max random offset per axis
}

type mobListFile struct {
	Mobs   []MobTemplate   `yaml:"mobs"`
	Spawns []MobSpawnEntry `yaml:"spawns"`
}

// MobTable holds mob templates indexed by type tag, plus the spawn list.
type MobTable struct {
	templates map[string]*MobTemplate
	spawns    []MobSpawnEntry
}

// LoadMobTable loads mob templates and spawn placements from a YAML file.
func LoadMobTable(path string) (*MobTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mob list: %w", err)
	}
	var f mobListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse mob list: %w", err)
	}
	t := &MobTable{templates: make(map[string]*MobTemplate, len(f.Mobs)), spawns: f.Spawns}
	for i := range f.Mobs {
		m := &f.Mobs[i]
		if m.ChaseSpeed <= 0 {
			m.ChaseSpeed = m.Speed
		}
		if m.HitAggroRange < m.BaseAggroRange {
			m.HitAggroRange = m.BaseAggroRange
		}
		t.templates[m.Type] = m
	}
	for _, sp := range f.Spawns {
		if t.templates[sp.Type] == nil {
			return nil, fmt.Errorf("spawn references unknown mob type %q", sp.Type)
		}
	}
	return t, nil
}

// NewMobTable builds a table from in-memory templates. Test constructor.
func NewMobTable(templates []MobTemplate) *MobTable {
	t := &MobTable{templates: make(map[string]*MobTemplate, len(templates))}
	for i := range templates {
		m := &templates[i]
		if m.ChaseSpeed <= 0 {
			m.ChaseSpeed = m.Speed
		}
		if m.HitAggroRange < m.BaseAggroRange {
			m.HitAggroRange = m.BaseAggroRange
		}
		t.templates[m.Type] = m
	}
	return t
}

// Get returns a mob template by type tag, or nil if not found.
func (t *MobTable) Get(typeTag string) *MobTemplate {
	return t.templates[typeTag]
}

// Spawns returns the spawn list.
func (t *MobTable) Spawns() []MobSpawnEntry {
	return t.spawns
}

// Count returns the number of mob templates.
func (t *MobTable) Count() int {
	return len(t.templates)
}
