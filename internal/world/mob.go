package world

import (
	"time"

	"github.com/riptide/server/internal/data"
)

// Mob is one live monster instance.
type Mob struct {
	ID     int64
	ZoneID int
	Type   string
	Sprite string
	Name   string

	X, Y   float64
	Radius float64

	HP            int
	MaxHP         int
	ContactDamage int
	XPReward      int
	Level         int

	Speed           float64
	ChaseSpeed      float64
	BaseAggroRange  float64
	HitAggroRange   float64
	PassiveUntilHit bool
	Loot            []data.LootEntry

	// Wander state: current unit direction (may be zero = standing still)
	// and when to re-roll it.
	WanderX, WanderY float64
	WanderUntil      time.Time

	AttackReadyAt time.Time

	// Aggro. AggroTargetID/AggroUntil are the single canonical mechanism;
	// every hit routes through them.
	LastHitBy     uint64
	AggroTargetID uint64
	AggroUntil    time.Time

	// Anti-stuck: time spent unable to move while chasing, and the active
	// perpendicular nudge.
	StuckFor   time.Duration
	NudgeUntil time.Time
	NudgeSign  float64

	Dead        bool
	CorpseUntil time.Time
	RespawnAt   time.Time

	SpawnX, SpawnY float64
}

// NewMob instantiates a template at a spawn point.
func NewMob(id int64, tmpl *data.MobTemplate, zoneID int, x, y float64) *Mob {
	return &Mob{
		ID:              id,
		ZoneID:          zoneID,
		Type:            tmpl.Type,
		Sprite:          tmpl.Sprite,
		Name:            tmpl.Name,
		X:               x,
		Y:               y,
		Radius:          tmpl.Radius,
		HP:              tmpl.HP,
		MaxHP:           tmpl.HP,
		ContactDamage:   tmpl.ContactDamage,
		XPReward:        tmpl.XPReward,
		Level:           tmpl.Level,
		Speed:           tmpl.Speed,
		ChaseSpeed:      tmpl.ChaseSpeed,
		BaseAggroRange:  tmpl.BaseAggroRange,
		HitAggroRange:   tmpl.HitAggroRange,
		PassiveUntilHit: tmpl.PassiveUntilHit,
		Loot:            tmpl.Loot,
		SpawnX:          x,
		SpawnY:          y,
	}
}

// Provoked reports whether the mob is inside its provocation window.
func (m *Mob) Provoked(now time.Time) bool {
	return now.Before(m.AggroUntil)
}

// ActiveAggroRange is the provoked "hit" range while provoked, else the
// smaller base range.
func (m *Mob) ActiveAggroRange(now time.Time) float64 {
	if m.Provoked(now) {
		return m.HitAggroRange
	}
	return m.BaseAggroRange
}

// Visible reports whether the mob appears in snapshots: alive, or a corpse
// still inside its visibility window.
func (m *Mob) Visible(now time.Time) bool {
	if !m.Dead {
		return true
	}
	return now.Before(m.CorpseUntil)
}

// ResetToSpawn restores spawn defaults after a respawn countdown.
func (m *Mob) ResetToSpawn() {
	m.X = m.SpawnX
	m.Y = m.SpawnY
	m.HP = m.MaxHP
	m.Dead = false
	m.CorpseUntil = time.Time{}
	m.RespawnAt = time.Time{}
	m.LastHitBy = 0
	m.AggroTargetID = 0
	m.AggroUntil = time.Time{}
	m.StuckFor = 0
	m.NudgeUntil = time.Time{}
	m.WanderX, m.WanderY = 0, 0
	m.WanderUntil = time.Time{}
}
