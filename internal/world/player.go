package world

import (
	"time"

	"github.com/riptide/server/internal/net/proto"
)

// InputState holds the movement keys currently pressed by the client.
type InputState struct {
	Up, Down, Left, Right bool
}

// Equipment maps each equip slot to an item id, empty string = bare.
type Equipment struct {
	Weapon    string
	Armor     string
	Hat       string
	Accessory string
}

// Get returns the item id equipped in a named slot.
func (e *Equipment) Get(slot string) string {
	switch slot {
	case "weapon":
		return e.Weapon
	case "armor":
		return e.Armor
	case "hat":
		return e.Hat
	case "accessory":
		return e.Accessory
	}
	return ""
}

// Set stores an item id into a named slot. Unknown slots are ignored.
func (e *Equipment) Set(slot, itemID string) {
	switch slot {
	case "weapon":
		e.Weapon = itemID
	case "armor":
		e.Armor = itemID
	case "hat":
		e.Hat = itemID
	case "accessory":
		e.Accessory = itemID
	}
}

// QuestProgress tracks one kill-counter quest for a player.
// Stage 0 = not started, 1 = in progress, 2 = rewarded. "Completed" is
// derived: stage 1 with Kills >= the quest's requirement.
type QuestProgress struct {
	Stage int
	Kills int
}

// Player is the in-world record for one connection. Accessed only from the
// game loop goroutine — no locks.
type Player struct {
	ID   uint64 // session id, stable for the connection's lifetime
	Conn proto.Sender
	Name string

	ZoneID  int
	X, Y    float64 // sprite center
	Input   InputState
	FacingX float64
	FacingY float64

	Level  int
	XP     int
	XPNext int
	Attack int
	HP     int
	MaxHP  int
	Gold   int

	Equip Equipment
	Inv   [InventorySize]Slot

	Quests map[string]*QuestProgress

	// Absolute "valid until"/"ready at" timestamps; correct across variable
	// tick timing.
	AttackAnimUntil time.Time
	AttackReadyAt   time.Time
	InvulnUntil     time.Time
	Skill1ReadyAt   time.Time
	Skill1Primed    bool
	Skill2ReadyAt   time.Time
	PortalReadyAt   time.Time

	RespawnAt   time.Time // zero = alive
	RespawnZone int
	RespawnX    float64
	RespawnY    float64

	// Dirty marks persisted state as changed since the last save.
	Dirty bool
}

// NewPlayer builds a fresh level-1 player at the given spawn.
func NewPlayer(id uint64, conn proto.Sender, zoneID int, x, y float64) *Player {
	return &Player{
		ID:          id,
		Conn:        conn,
		ZoneID:      zoneID,
		X:           x,
		Y:           y,
		FacingX:     0,
		FacingY:     1,
		Level:       1,
		XPNext:      XPToNext(1),
		Attack:      PlayerAttack,
		HP:          PlayerMaxHP,
		MaxHP:       PlayerMaxHP,
		Quests:      make(map[string]*QuestProgress),
		RespawnZone: zoneID,
		RespawnX:    x,
		RespawnY:    y,
	}
}

// IsDead reports whether the player is waiting out a respawn countdown.
func (p *Player) IsDead() bool { return !p.RespawnAt.IsZero() }

// FootTile returns the tile under the player's foot circle.
func (p *Player) FootTile() (int, int) {
	return int((p.X) / TileSize), int((p.Y + FootOffsetY) / TileSize)
}

// Send delivers a message to the player's connection if one is attached.
func (p *Player) Send(msg any) {
	if p.Conn != nil {
		p.Conn.Send(msg)
	}
}

// Quest returns the progress record for a quest id, creating it on demand.
func (p *Player) Quest(id string) *QuestProgress {
	q, ok := p.Quests[id]
	if !ok {
		q = &QuestProgress{}
		p.Quests[id] = q
	}
	return q
}
