package system

import (
	"time"

	"github.com/riptide/server/internal/config"
	"github.com/riptide/server/internal/core/event"
	"github.com/riptide/server/internal/data"
	"github.com/riptide/server/internal/handler"
	"github.com/riptide/server/internal/world"
	"go.uber.org/zap"
)

const stepDT = time.Second / 30

type recorder struct {
	msgs []any
}

func (r *recorder) Send(msg any) { r.msgs = append(r.msgs, msg) }

func (r *recorder) countOf(match func(any) bool) int {
	n := 0
	for _, m := range r.msgs {
		if match(m) {
			n++
		}
	}
	return n
}

func openZone(id int) *world.Zone {
	const w, h = 12, 10
	def := &data.ZoneDef{ID: id, Name: "arena", Width: w, Height: h,
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

func newTestDeps() *handler.Deps {
	ws := world.NewState()
	ws.SetNow(time.Unix(1000, 0))
	ws.AddZone(openZone(1))
	ws.AddZone(openZone(2))

	return &handler.Deps{
		Config: config.Defaults(),
		Log:    zap.NewNop(),
		World:  ws,
		Items: data.NewItemTable([]data.ItemDef{
			{ID: data.CoinItemID, Name: "Coins", MaxStack: 9999},
			{ID: "wand", Name: "Wand", MaxStack: 1, Slot: data.SlotWeapon,
				WeaponClass: data.WeaponWand, SpeedMult: 1.0},
			{ID: "flask", Name: "Flask", MaxStack: 10,
				Effect: data.EffectHeal, EffectAmount: 30},
		}),
		Mobs: data.NewMobTable([]data.MobTemplate{
			{Type: "crab", Name: "Crab", HP: 30, ContactDamage: 5, XPReward: 12,
				Level: 1, Radius: 12, Speed: 40, ChaseSpeed: 90,
				BaseAggroRange: 140, HitAggroRange: 320},
			{Type: "jelly", Name: "Jelly", HP: 20, ContactDamage: 8, XPReward: 10,
				Level: 1, Radius: 11, Speed: 30, ChaseSpeed: 70,
				BaseAggroRange: 120, HitAggroRange: 300, PassiveUntilHit: true},
		}),
		Npcs: data.NewNpcTable(nil),
		Bus:  event.NewBus(),
	}
}

func addPlayer(d *handler.Deps, id uint64, x, y float64) (*world.Player, *recorder) {
	rec := &recorder{}
	p := world.NewPlayer(id, rec, 1, x, y)
	d.World.AddPlayer(p)
	return p, rec
}

func addMob(d *handler.Deps, typ string, x, y float64) *world.Mob {
	m := world.NewMob(d.World.NextID(), d.Mobs.Get(typ), 1, x, y)
	d.World.AddMob(m)
	return m
}

// tick advances the simulated clock one fixed step and runs the given
// systems in order.
func tick(d *handler.Deps, systems ...interface{ Update(time.Duration) }) {
	d.World.SetNow(d.World.Now().Add(stepDT))
	for _, s := range systems {
		s.Update(stepDT)
	}
}
