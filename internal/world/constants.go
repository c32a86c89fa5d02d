package world

import "time"

// Tile geometry. SheetColumns is the tilesheet width used by the row-parity
// blocking rule: even tilesheet rows are walls, odd rows are walkable (and
// odd deco rows are canopy drawn above entities).
const (
	TileSize     = 32
	SheetColumns = 8
	SheetRows    = 8
	MaxTileID    = SheetColumns*SheetRows - 1

	// PortalTileID is the ground tile clients draw on portal cells. It sits
	// on a walkable sheet row.
	PortalTileID = 6
)

// Player body tuning. Collision uses a small "foot" circle below the sprite
// center so overhanging sprite art does not collide.
const (
	PlayerRadius  = 14.0
	FootRadius    = 9.0
	FootOffsetY   = 10.0
	PlayerSpeed   = 150.0 // units/s
	PlayerMaxHP   = 100
	PlayerAttack  = 10
	InventorySize = 12
)

// Progression per level-up.
const (
	HPPerLevel     = 10
	AttackPerLevel = 2
)

// Combat timing.
const (
	AttackBaseCooldown = time.Second
	AttackAnimDuration = 250 * time.Millisecond
	InvulnDuration     = 500 * time.Millisecond
	PlayerRespawnDelay = 3 * time.Second
	PortalCooldown     = 1500 * time.Millisecond
)

// Melee shapes.
const (
	ArcForwardOffset = 26.0
	ArcSideOffset    = 18.0
	ArcHitRadius     = 16.0
	PokeOffset       = 34.0
	PokeHitRadius    = 13.0
)

// Projectiles (wand shots).
const (
	ProjectileSpeed  = 420.0
	ProjectileRange  = 7 * TileSize
	ProjectileRadius = 6.0
)

// Skill 1: whirlpool.
const (
	WhirlpoolRadius   = 90.0
	WhirlpoolDuration = 3500 * time.Millisecond
	WhirlpoolCooldown = 8 * time.Second
	WhirlpoolPullBase = 65.0 // units/s at the rim
	WhirlpoolPullGain = 55.0 // extra units/s ramping toward the center
)

// Skill 2: double stab.
const (
	DoubleStabCooldown = 5 * time.Second
	DoubleStabDelay    = 180 * time.Millisecond
	DoubleStabAngle    = 0.35 // radians off facing, hit 1 left, hit 2 right
)

// Mob behavior.
const (
	MobWanderMin      = 700 * time.Millisecond
	MobWanderMax      = 1900 * time.Millisecond
	MobContactRange   = 6.0 // added to radii for contact attacks
	MobAttackCooldown = time.Second
	MobKnockback      = 12.0
	MobStuckThreshold = 350 * time.Millisecond
	MobNudgeDuration  = 260 * time.Millisecond
	MobAggroDuration  = 5 * time.Second
	MobCorpseDuration = 2 * time.Second
	MobRespawnDelay   = 8 * time.Second
)

// Drops.
const (
	DropTTL         = 60 * time.Second
	CoinDropMin     = 3
	CoinDropMax     = 9
	DropPickupRange = 24.0
)
