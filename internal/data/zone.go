package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PortalDef is a tile-indexed doorway in a zone leading to another zone.
type PortalDef struct {
	X        int `yaml:"x"`
	Y        int `yaml:"y"`
	DestZone int `yaml:"dest_zone"`
}

// ZoneDef holds static geometry for one zone loaded from YAML. Grids are
// rectangular width×height, row-major; deco value 0 means empty.
type ZoneDef struct {
	ID      int         `yaml:"zone_id"`
	Name    string      `yaml:"name"`
	Width   int         `yaml:"width"`
	Height  int         `yaml:"height"`
	Ground  [][]int     `yaml:"ground"`
	Deco    [][]int     `yaml:"deco"`
	Portals []PortalDef `yaml:"portals"`
}

type zoneListFile struct {
	Zones []ZoneDef `yaml:"zones"`
}

// ZoneTable holds all zone definitions indexed by zone ID.
type ZoneTable struct {
	zones map[int]*ZoneDef
	order []int
}

// LoadZoneTable loads zone geometry from a YAML file.
func LoadZoneTable(path string) (*ZoneTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read zone list: %w", err)
	}
	var f zoneListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse zone list: %w", err)
	}
	t := &ZoneTable{zones: make(map[int]*ZoneDef, len(f.Zones))}
	for i := range f.Zones {
		z := &f.Zones[i]
		if err := validateZone(z); err != nil {
			return nil, fmt.Errorf("zone %d: %w", z.ID, err)
		}
		t.zones[z.ID] = z
		t.order = append(t.order, z.ID)
	}
	return t, nil
}

func validateZone(z *ZoneDef) error {
	if z.Width <= 0 || z.Height <= 0 {
		return fmt.Errorf("bad dimensions %dx%d", z.Width, z.Height)
	}
	if len(z.Ground) != z.Height {
		return fmt.Errorf("ground grid has %d rows, want %d", len(z.Ground), z.Height)
	}
	if len(z.Deco) != z.Height {
		return fmt.Errorf("deco grid has %d rows, want %d", len(z.Deco), z.Height)
	}
	for y := 0; y < z.Height; y++ {
		if len(z.Ground[y]) != z.Width {
			return fmt.Errorf("ground row %d has %d cells, want %d", y, len(z.Ground[y]), z.Width)
		}
		if len(z.Deco[y]) != z.Width {
			return fmt.Errorf("deco row %d has %d cells, want %d", y, len(z.Deco[y]), z.Width)
		}
	}
	for _, p := range z.Portals {
		if p.X < 0 || p.X >= z.Width || p.Y < 0 || p.Y >= z.Height {
			return fmt.Errorf("portal at (%d,%d) out of bounds", p.X, p.Y)
		}
	}
	return nil
}

// Get returns a zone definition by ID, or nil if not found.
func (t *ZoneTable) Get(id int) *ZoneDef {
	return t.zones[id]
}

// IDs returns zone IDs in file order.
func (t *ZoneTable) IDs() []int {
	return t.order
}

// Count returns the number of loaded zones.
func (t *ZoneTable) Count() int {
	return len(t.zones)
}
