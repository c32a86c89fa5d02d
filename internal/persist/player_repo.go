package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// PlayerRecord is the durable shape of a player, keyed by display name.
// Equipment, inventory and quest progress are stored as JSONB documents.
type PlayerRecord struct {
	Name      string
	Level     int
	XP        int
	XPNext    int
	Attack    int
	HP        int
	MaxHP     int
	ZoneID    int
	X         float64
	Y         float64
	Gold      int
	Equipment EquipmentDoc
	Inventory []SlotDoc
	Quests    map[string]QuestDoc
	UpdatedAt time.Time
}

type EquipmentDoc struct {
	Weapon    string `json:"weapon,omitempty"`
	Armor     string `json:"armor,omitempty"`
	Hat       string `json:"hat,omitempty"`
	Accessory string `json:"accessory,omitempty"`
}

type SlotDoc struct {
	ItemID string `json:"itemId,omitempty"`
	Qty    int    `json:"qty,omitempty"`
}

type QuestDoc struct {
	Stage int `json:"stage"`
	Kills int `json:"kills"`
}

// PlayerRepo reads and writes player rows.
type PlayerRepo struct {
	db *DB
}

func NewPlayerRepo(db *DB) *PlayerRepo {
	return &PlayerRepo{db: db}
}

// Load fetches a player by name. Returns (nil, nil) when no row exists.
func (r *PlayerRepo) Load(ctx context.Context, name string) (*PlayerRecord, error) {
	var (
		rec       PlayerRecord
		equipJSON []byte
		invJSON   []byte
		questJSON []byte
	)
	err := r.db.Pool.QueryRow(ctx,
		`SELECT name, level, xp, xp_next, attack, hp, max_hp,
		        zone_id, x, y, gold, equipment, inventory, quests, updated_at
		 FROM players WHERE name = $1`, name,
	).Scan(
		&rec.Name, &rec.Level, &rec.XP, &rec.XPNext, &rec.Attack, &rec.HP, &rec.MaxHP,
		&rec.ZoneID, &rec.X, &rec.Y, &rec.Gold, &equipJSON, &invJSON, &questJSON, &rec.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load player %s: %w", name, err)
	}
	if err := json.Unmarshal(equipJSON, &rec.Equipment); err != nil {
		return nil, fmt.Errorf("decode equipment for %s: %w", name, err)
	}
	if err := json.Unmarshal(invJSON, &rec.Inventory); err != nil {
		return nil, fmt.Errorf("decode inventory for %s: %w", name, err)
	}
	if err := json.Unmarshal(questJSON, &rec.Quests); err != nil {
		return nil, fmt.Errorf("decode quests for %s: %w", name, err)
	}
	return &rec, nil
}

// Save upserts a player row.
func (r *PlayerRepo) Save(ctx context.Context, rec *PlayerRecord) error {
	equipJSON, err := json.Marshal(rec.Equipment)
	if err != nil {
		return fmt.Errorf("encode equipment for %s: %w", rec.Name, err)
	}
	invJSON, err := json.Marshal(rec.Inventory)
	if err != nil {
		return fmt.Errorf("encode inventory for %s: %w", rec.Name, err)
	}
	questJSON, err := json.Marshal(rec.Quests)
	if err != nil {
		return fmt.Errorf("encode quests for %s: %w", rec.Name, err)
	}
	_, err = r.db.Pool.Exec(ctx,
		`INSERT INTO players (name, level, xp, xp_next, attack, hp, max_hp,
		                      zone_id, x, y, gold, equipment, inventory, quests, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,now())
		 ON CONFLICT (name) DO UPDATE SET
		     level = EXCLUDED.level, xp = EXCLUDED.xp, xp_next = EXCLUDED.xp_next,
		     attack = EXCLUDED.attack, hp = EXCLUDED.hp, max_hp = EXCLUDED.max_hp,
		     zone_id = EXCLUDED.zone_id, x = EXCLUDED.x, y = EXCLUDED.y,
		     gold = EXCLUDED.gold, equipment = EXCLUDED.equipment,
		     inventory = EXCLUDED.inventory, quests = EXCLUDED.quests,
		     updated_at = now()`,
		rec.Name, rec.Level, rec.XP, rec.XPNext, rec.Attack, rec.HP, rec.MaxHP,
		rec.ZoneID, rec.X, rec.Y, rec.Gold, equipJSON, invJSON, questJSON,
	)
	if err != nil {
		return fmt.Errorf("save player %s: %w", rec.Name, err)
	}
	return nil
}
