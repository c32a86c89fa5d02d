package world

import "time"

// NPC is a static interactable character. Never moves, never despawns.
type NPC struct {
	ID     int64
	ZoneID int
	X, Y   float64
	Key    string // dialogue script key
	Name   string
	Sprite string
	Quest  string // quest id offered by this NPC, "" = none
}

// Drop is a loot pickup on the ground. ItemID may be the coin pseudo-item.
type Drop struct {
	ID        int64
	ZoneID    int
	X, Y      float64
	ItemID    string
	Qty       int
	ExpiresAt time.Time
}

// Projectile is a live wand shot.
type Projectile struct {
	ID      int64
	ZoneID  int
	OwnerID uint64
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Damage  int
	Sprite  string
	// TriggersArea spawns the owner's whirlpool at the impact point when the
	// shot was fired primed.
	TriggersArea bool
	ExpiresAt    time.Time
}

// AreaEffect is an active whirlpool field.
type AreaEffect struct {
	ID       int64
	ZoneID   int
	X, Y     float64
	Radius   float64
	CasterID uint64
	Start    time.Time
	End      time.Time
}

// PendingStab is the scheduled second hit of the double stab skill,
// consumed by the tick loop at its due time. Caster existence and zone are
// re-validated at consumption.
type PendingStab struct {
	CasterID uint64
	ZoneID   int
	Due      time.Time
	DirX     float64
	DirY     float64
}
