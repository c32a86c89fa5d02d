package handler

import (
	"math"
	"math/rand"

	"github.com/riptide/server/internal/core/event"
	"github.com/riptide/server/internal/data"
	"github.com/riptide/server/internal/net/proto"
	"github.com/riptide/server/internal/world"
	"go.uber.org/zap"
)

// MobsInCircle returns living mobs in the zone overlapping a hit circle, in
// registration order.
func MobsInCircle(d *Deps, zoneID int, cx, cy, r float64) []*world.Mob {
	var hit []*world.Mob
	for _, m := range d.World.MobsInZone(zoneID) {
		if m.Dead {
			continue
		}
		if circlesOverlap(cx, cy, r, m.X, m.Y, m.Radius) {
			hit = append(hit, m)
		}
	}
	return hit
}

func circlesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	dx, dy := x2-x1, y2-y1
	rr := r1 + r2
	return dx*dx+dy*dy <= rr*rr
}

// HitMob applies damage from a player to a mob, locks the mob's aggro onto
// the attacker and broadcasts the hit. Kills are resolved immediately.
func HitMob(d *Deps, attacker *world.Player, m *world.Mob, dmg int) {
	if m.Dead {
		return
	}
	now := d.World.Now()
	m.HP -= dmg
	m.LastHitBy = attacker.ID
	m.AggroTargetID = attacker.ID
	m.AggroUntil = now.Add(world.MobAggroDuration)

	d.BroadcastZone(m.ZoneID, proto.Hit{
		Type:     "hit",
		TargetID: m.ID,
		SourceID: attacker.ID,
		Damage:   dmg,
		X:        m.X,
		Y:        m.Y,
	})

	if m.HP <= 0 {
		KillMob(d, attacker, m)
	}
}

// KillMob resolves a mob death: experience and levels for the killer, coin
// and loot drops, and the corpse/respawn timers. The mob stays visible as a
// corpse for a short window, then hides until respawn.
func KillMob(d *Deps, killer *world.Player, m *world.Mob) {
	now := d.World.Now()
	m.HP = 0
	m.Dead = true
	m.CorpseUntil = now.Add(world.MobCorpseDuration)
	m.RespawnAt = now.Add(world.MobRespawnDelay)
	m.AggroTargetID = 0

	if killer != nil {
		gained := killer.AwardXP(m.XPReward)
		if gained > 0 {
			killer.Send(proto.LevelUp{
				Type:   "levelup",
				Level:  killer.Level,
				MaxHP:  killer.MaxHP,
				Attack: killer.Attack,
				XPNext: killer.XPNext,
			})
			event.Emit(d.Bus, event.LevelUpEvent{PlayerID: killer.ID, Level: killer.Level})
		}
		event.Emit(d.Bus, event.MobKilledEvent{
			PlayerID: killer.ID,
			MobType:  m.Type,
			ZoneID:   m.ZoneID,
		})
	}

	level := m.Level
	if level < 1 {
		level = 1
	}
	coins := (world.CoinDropMin + rand.Intn(world.CoinDropMax-world.CoinDropMin+1)) * level
	SpawnDrop(d, m.ZoneID, m.X, m.Y, data.CoinItemID, coins)

	for _, entry := range m.Loot {
		if rand.Float64() >= entry.Chance {
			continue
		}
		qty := entry.Min
		if entry.Max > entry.Min {
			qty += rand.Intn(entry.Max - entry.Min + 1)
		}
		if qty <= 0 {
			continue
		}
		SpawnDrop(d, m.ZoneID, m.X, m.Y, entry.ItemID, qty)
	}

	d.Log.Debug("mob killed",
		zap.Int64("mob", m.ID),
		zap.String("type", m.Type),
		zap.Uint64("killer", killerID(killer)))
}

func killerID(p *world.Player) uint64 {
	if p == nil {
		return 0
	}
	return p.ID
}

// SpawnDrop places a ground drop with a slight scatter so stacked kills stay
// readable.
func SpawnDrop(d *Deps, zoneID int, x, y float64, itemID string, qty int) {
	z := d.World.Zone(zoneID)
	if z == nil {
		return
	}
	ang := rand.Float64() * 2 * math.Pi
	dist := rand.Float64() * 12
	dx, dy := x+math.Cos(ang)*dist, y+math.Sin(ang)*dist
	dx, dy = z.Clamp(dx, dy, 4)
	d.World.AddDrop(&world.Drop{
		ID:        d.World.NextID(),
		ZoneID:    zoneID,
		X:         dx,
		Y:         dy,
		ItemID:    itemID,
		Qty:       qty,
		ExpiresAt: d.World.Now().Add(world.DropTTL),
	})
}

// SpawnWhirlpool creates the pulling area effect at a point in the caster's
// zone. Callers enforce the one-active-per-caster rule.
func SpawnWhirlpool(d *Deps, caster *world.Player, x, y float64) {
	now := d.World.Now()
	d.World.AddEffect(&world.AreaEffect{
		ID:       d.World.NextID(),
		ZoneID:   caster.ZoneID,
		X:        x,
		Y:        y,
		Radius:   world.WhirlpoolRadius,
		CasterID: caster.ID,
		Start:    now,
		End:      now.Add(world.WhirlpoolDuration),
	})
}

// KillPlayer puts a player into the death state and schedules the respawn at
// the zone's entry point.
func KillPlayer(d *Deps, p *world.Player) {
	if p.IsDead() {
		return
	}
	now := d.World.Now()
	p.HP = 0
	p.Input = world.InputState{}
	p.Skill1Primed = false
	p.RespawnAt = now.Add(world.PlayerRespawnDelay)
	d.World.DropStabsFor(p.ID)
	p.Send(proto.Dead{
		Type:      "dead",
		RespawnIn: world.PlayerRespawnDelay.Seconds(),
	})
	event.Emit(d.Bus, event.PlayerDiedEvent{PlayerID: p.ID, ZoneID: p.ZoneID})
	p.Dirty = true
}
