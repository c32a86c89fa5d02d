package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// QuestDef is a kill-counter quest attached to an NPC. Stage machine:
// 0 not started → 1 in progress → 2 rewarded. Completion is derived from
// the kill count, not stored as a separate stage.
type QuestDef struct {
	ID         string `yaml:"id"`
	MobType    string `yaml:"mob_type"`
	Required   int    `yaml:"required"`
	RewardGold int    `yaml:"reward_gold"`
	RewardItem string `yaml:"reward_item,omitempty"`
	RewardQty  int    `yaml:"reward_qty,omitempty"`
}

// NpcDef is a static NPC placement. Key selects the Lua dialogue script.
type NpcDef struct {
	Key    string    `yaml:"key"`
	Name   string    `yaml:"name"`
	Sprite string    `yaml:"sprite"`
	ZoneID int       `yaml:"zone_id"`
	X      float64   `yaml:"x"`
	Y      float64   `yaml:"y"`
	Quest  *QuestDef `yaml:"quest,omitempty"`
}

type npcListFile struct {
	Npcs []NpcDef `yaml:"npcs"`
}

// NpcTable holds NPC definitions in file order.
type NpcTable struct {
	npcs []NpcDef
}

// LoadNpcTable loads NPC placements from a YAML file.
func LoadNpcTable(path string) (*NpcTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read npc list: %w", err)
	}
	var f npcListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse npc list: %w", err)
	}
	for _, n := range f.Npcs {
		if n.Quest != nil && n.Quest.Required <= 0 {
			return nil, fmt.Errorf("npc %q quest %q: required must be positive", n.Key, n.Quest.ID)
		}
	}
	return &NpcTable{npcs: f.Npcs}, nil
}

// NewNpcTable builds a table from in-memory defs. Test constructor.
func NewNpcTable(npcs []NpcDef) *NpcTable {
	return &NpcTable{npcs: npcs}
}

// All returns NPC definitions in file order.
func (t *NpcTable) All() []NpcDef {
	return t.npcs
}

// Count returns the number of NPC definitions.
func (t *NpcTable) Count() int {
	return len(t.npcs)
}
