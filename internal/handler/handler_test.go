package handler

import (
	"time"

	"github.com/riptide/server/internal/config"
	"github.com/riptide/server/internal/core/event"
	"github.com/riptide/server/internal/data"
	"github.com/riptide/server/internal/world"
	"go.uber.org/zap"
)

// recorder captures outbound messages for assertions.
type recorder struct {
	msgs []any
}

func (r *recorder) Send(msg any) { r.msgs = append(r.msgs, msg) }

func (r *recorder) reset() { r.msgs = nil }

// lastOf returns the most recent message matching the predicate, or nil.
func (r *recorder) lastOf(match func(any) bool) any {
	for i := len(r.msgs) - 1; i >= 0; i-- {
		if match(r.msgs[i]) {
			return r.msgs[i]
		}
	}
	return nil
}

// testZone builds an open 10x8 zone with a wall border.
func testZone(id int) *world.Zone {
	const w, h = 10, 8
	def := &data.ZoneDef{ID: id, Name: "test", Width: w, Height: h,
		Ground: make([][]int, h), Deco: make([][]int, h)}
	for y := 0; y < h; y++ {
		def.Ground[y] = make([]int, w)
		def.Deco[y] = make([]int, w)
		for x := 0; x < w; x++ {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				def.Ground[y][x] = 8
			}
		}
	}
	return world.NewZone(def)
}

func testItemDefs() []data.ItemDef {
	return []data.ItemDef{
		{ID: data.CoinItemID, Name: "Coins", MaxStack: 9999},
		{ID: "sword", Name: "Sword", MaxStack: 1, Slot: data.SlotWeapon,
			WeaponClass: data.WeaponArc, SpeedMult: 1.0},
		{ID: "spear", Name: "Spear", MaxStack: 1, Slot: data.SlotWeapon,
			WeaponClass: data.WeaponPoke, SpeedMult: 1.0},
		{ID: "wand", Name: "Wand", MaxStack: 1, Slot: data.SlotWeapon,
			WeaponClass: data.WeaponWand, SpeedMult: 1.0},
		{ID: "hat", Name: "Hat", MaxStack: 1, Slot: data.SlotHat},
		{ID: "flask", Name: "Flask", MaxStack: 10,
			Effect: data.EffectHeal, EffectAmount: 30},
	}
}

func testMobDefs() []data.MobTemplate {
	return []data.MobTemplate{
		{Type: "crab", Name: "Crab", HP: 30, ContactDamage: 5, XPReward: 12,
			Level: 1, Radius: 12, Speed: 40, ChaseSpeed: 90,
			BaseAggroRange: 140, HitAggroRange: 320},
		{Type: "jelly", Name: "Jelly", HP: 20, ContactDamage: 8, XPReward: 10,
			Level: 1, Radius: 11, Speed: 30, ChaseSpeed: 70,
			BaseAggroRange: 120, HitAggroRange: 300, PassiveUntilHit: true},
	}
}

// newTestDeps builds an in-memory world with zones 1 and 2 and no database.
func newTestDeps() *Deps {
	ws := world.NewState()
	ws.SetNow(time.Unix(1000, 0))
	ws.AddZone(testZone(1))
	ws.AddZone(testZone(2))

	return &Deps{
		Config:  config.Defaults(),
		Log:     zap.NewNop(),
		World:   ws,
		Items:   data.NewItemTable(testItemDefs()),
		Mobs:    data.NewMobTable(testMobDefs()),
		Npcs:    data.NewNpcTable(nil),
		Gateway: nil,
		Bus:     event.NewBus(),
	}
}

// addPlayer joins a player mid-zone with a recorder connection.
func addPlayer(d *Deps, id uint64) (*world.Player, *recorder) {
	rec := &recorder{}
	z := d.World.Zone(1)
	p := world.NewPlayer(id, rec, 1, z.PixelWidth()/2, z.PixelHeight()/2)
	d.World.AddPlayer(p)
	return p, rec
}

// addMob places a mob by template type at a point in zone 1.
func addMob(d *Deps, typ string, x, y float64) *world.Mob {
	m := world.NewMob(d.World.NextID(), d.Mobs.Get(typ), 1, x, y)
	d.World.AddMob(m)
	return m
}

func wslot(id string, qty int) world.Slot { return world.Slot{ItemID: id, Qty: qty} }

// advance moves the simulated clock forward.
func advance(d *Deps, by time.Duration) time.Time {
	now := d.World.Now().Add(by)
	d.World.SetNow(now)
	return now
}
