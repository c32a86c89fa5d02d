package event

// MobKilledEvent fires when a mob's hp reaches zero with a credited killer.
type MobKilledEvent struct {
	PlayerID uint64
	MobType  string
	ZoneID   int
}

// LevelUpEvent fires once per xp award that crossed at least one threshold,
// after all level-ups from that award are applied.
type LevelUpEvent struct {
	PlayerID uint64
	Level    int
}

// PlayerDiedEvent fires when a player's hp reaches zero.
type PlayerDiedEvent struct {
	PlayerID uint64
	ZoneID   int
}
