package proto

// Sender delivers one outbound message to a single connection. Implemented
// by net.Session; tests substitute a recorder.
type Sender interface {
	Send(msg any)
}

// Welcome is sent once per connection, immediately after the upgrade.
type Welcome struct {
	Type         string       `json:"type"` // "welcome"
	ID           uint64       `json:"id"`
	ZoneID       int          `json:"zoneId"`
	GroundGrid   [][]int      `json:"groundGrid"`
	DecoGrid     [][]int      `json:"decoGrid"`
	Portals      []PortalView `json:"portals"`
	TileSize     int          `json:"tileSize"`
	ZoneWidth    int          `json:"zoneWidth"`
	ZoneHeight   int          `json:"zoneHeight"`
	PlayerRadius float64      `json:"playerRadius"`
	PortalTileID int          `json:"portalTileId"`
	WeaponList   []WeaponView `json:"weaponList"`
}

type PortalView struct {
	X        int `json:"x"`
	Y        int `json:"y"`
	DestZone int `json:"destZone"`
}

type WeaponView struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Class     string  `json:"class"`
	SpeedMult float64 `json:"speedMult"`
}

// Snapshot is the zone-scoped world view, broadcast at the snapshot cadence.
// Inventory and skill timers are for the recipient only.
type Snapshot struct {
	Type        string           `json:"type"` // "snapshot"
	ZoneID      int              `json:"zoneId"`
	GroundGrid  [][]int          `json:"groundGrid"`
	DecoGrid    [][]int          `json:"decoGrid"`
	Portals     []PortalView     `json:"portals"`
	AreaEffects []AreaEffectView `json:"activeAreaEffects"`
	Self        SelfView         `json:"selfSkillTimers"`
	Players     []PlayerView     `json:"players"`
	Npcs        []NpcView        `json:"npcs"`
	Mobs        []MobView        `json:"mobs"`
	Drops       []DropView       `json:"drops"`
	Projectiles []ProjectileView `json:"projectiles"`
}

type SelfView struct {
	Inventory     []SlotView `json:"inventory"`
	Equipment     EquipView  `json:"equipment"`
	Skill1ReadyIn float64    `json:"skill1ReadyIn"` // seconds, 0 = ready
	Skill2ReadyIn float64    `json:"skill2ReadyIn"`
	Skill1Primed  bool       `json:"skill1Primed"`
	AttackReadyIn float64    `json:"attackReadyIn"`
	RespawnIn     float64    `json:"respawnIn"` // 0 = alive
	XP            int        `json:"xp"`
	XPNext        int        `json:"xpNext"`
	Gold          int        `json:"gold"`
}

type SlotView struct {
	ItemID string `json:"itemId,omitempty"`
	Qty    int    `json:"qty,omitempty"`
}

type EquipView struct {
	Weapon    string `json:"weapon,omitempty"`
	Armor     string `json:"armor,omitempty"`
	Hat       string `json:"hat,omitempty"`
	Accessory string `json:"accessory,omitempty"`
}

type PlayerView struct {
	ID        uint64  `json:"id"`
	Name      string  `json:"name"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	FacingX   float64 `json:"facingX"`
	FacingY   float64 `json:"facingY"`
	Level     int     `json:"level"`
	HP        int     `json:"hp"`
	MaxHP     int     `json:"maxHp"`
	Weapon    string  `json:"weapon,omitempty"`
	Armor     string  `json:"armor,omitempty"`
	Hat       string  `json:"hat,omitempty"`
	Dead      bool    `json:"dead,omitempty"`
	Attacking bool    `json:"attacking,omitempty"`
}

type NpcView struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Sprite string  `json:"sprite"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

type MobView struct {
	ID     int64   `json:"id"`
	Type   string  `json:"type"`
	Sprite string  `json:"sprite"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	HP     int     `json:"hp"`
	MaxHP  int     `json:"maxHp"`
	Dead   bool    `json:"dead,omitempty"` // corpse window
}

type DropView struct {
	ID     int64   `json:"id"`
	ItemID string  `json:"itemId"`
	Qty    int     `json:"qty"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

type ProjectileView struct {
	ID     int64   `json:"id"`
	Sprite string  `json:"sprite"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	VX     float64 `json:"vx"`
	VY     float64 `json:"vy"`
}

type AreaEffectView struct {
	ID       int64   `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Radius   float64 `json:"radius"`
	CasterID uint64  `json:"casterId"`
	EndsIn   float64 `json:"endsIn"` // seconds
}

// --- Event messages ---

type Hit struct {
	Type     string  `json:"type"` // "hit"
	TargetID int64   `json:"targetId"`
	SourceID uint64  `json:"sourceId"`
	Damage   int     `json:"damage"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

type Loot struct {
	Type   string `json:"type"` // "loot"
	ItemID string `json:"itemId"`
	Qty    int    `json:"qty"`
}

type Dialogue struct {
	Type  string `json:"type"` // "dialogue"
	NpcID int64  `json:"npcId"`
	Name  string `json:"name"`
	Text  string `json:"text"`
}

type LevelUp struct {
	Type   string `json:"type"` // "levelup"
	Level  int    `json:"level"`
	MaxHP  int    `json:"maxHp"`
	Attack int    `json:"attack"`
	XPNext int    `json:"xpNext"`
}

type Dead struct {
	Type      string  `json:"type"` // "dead"
	RespawnIn float64 `json:"respawnIn"`
}

type NameResult struct {
	Type   string `json:"type"` // "nameAccepted" | "nameRejected"
	Name   string `json:"name,omitempty"`
	Reason string `json:"reason,omitempty"`
}

type SkillResult struct {
	Type   string `json:"type"` // "skill1Armed"|"skill1Accepted"|"skill1Rejected"|"skill2Accepted"|"skill2Rejected"
	Reason string `json:"reason,omitempty"`
}

type EditAck struct {
	Type string `json:"type"` // "editAck"
	OK   bool   `json:"ok"`
}

type MapPatch struct {
	Type  string `json:"type"` // "mapPatch"
	Layer string `json:"layer"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Tile  int    `json:"tile"`
}
