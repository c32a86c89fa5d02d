package system

import (
	"time"

	"github.com/riptide/server/internal/core/system"
	"github.com/riptide/server/internal/handler"
	"github.com/riptide/server/internal/net/proto"
	"github.com/riptide/server/internal/world"
)

// SnapshotSystem broadcasts the zone-scoped world view on its own cadence,
// lower than the simulation rate. It only reads state.
type SnapshotSystem struct {
	deps     *handler.Deps
	interval time.Duration
	nextAt   time.Time
}

func NewSnapshotSystem(deps *handler.Deps) *SnapshotSystem {
	return &SnapshotSystem{
		deps:     deps,
		interval: time.Second / time.Duration(deps.Config.Simulation.SnapshotPerSecond),
	}
}

func (s *SnapshotSystem) Phase() system.Phase { return system.PhaseOutput }

func (s *SnapshotSystem) Update(dt time.Duration) {
	now := s.deps.World.Now()
	if now.Before(s.nextAt) {
		return
	}
	s.nextAt = now.Add(s.interval)

	// Shared per-zone views built once, self view per recipient.
	zoneSnaps := make(map[int]*proto.Snapshot)
	s.deps.World.AllPlayers(func(p *world.Player) {
		base, ok := zoneSnaps[p.ZoneID]
		if !ok {
			base = s.buildZone(p.ZoneID, now)
			zoneSnaps[p.ZoneID] = base
		}
		if base == nil {
			return
		}
		snap := *base
		snap.Self = selfView(p, now)
		p.Send(snap)
	})
}

func (s *SnapshotSystem) buildZone(zoneID int, now time.Time) *proto.Snapshot {
	z := s.deps.World.Zone(zoneID)
	if z == nil {
		return nil
	}
	snap := &proto.Snapshot{
		Type:       "snapshot",
		ZoneID:     zoneID,
		GroundGrid: z.Ground,
		DecoGrid:   z.Deco,
		Portals:    handler.PortalViews(z),
	}

	s.deps.World.AllPlayers(func(p *world.Player) {
		if p.ZoneID != zoneID {
			return
		}
		snap.Players = append(snap.Players, proto.PlayerView{
			ID:        p.ID,
			Name:      p.Name,
			X:         p.X,
			Y:         p.Y,
			FacingX:   p.FacingX,
			FacingY:   p.FacingY,
			Level:     p.Level,
			HP:        p.HP,
			MaxHP:     p.MaxHP,
			Weapon:    p.Equip.Get("weapon"),
			Armor:     p.Equip.Get("armor"),
			Hat:       p.Equip.Get("hat"),
			Dead:      p.IsDead(),
			Attacking: now.Before(p.AttackAnimUntil),
		})
	})

	for _, n := range s.deps.World.NpcsInZone(zoneID) {
		snap.Npcs = append(snap.Npcs, proto.NpcView{
			ID: n.ID, Name: n.Name, Sprite: n.Sprite, X: n.X, Y: n.Y,
		})
	}
	for _, m := range s.deps.World.MobsInZone(zoneID) {
		if !m.Visible(now) {
			continue
		}
		snap.Mobs = append(snap.Mobs, proto.MobView{
			ID: m.ID, Type: m.Type, Sprite: m.Sprite,
			X: m.X, Y: m.Y, HP: m.HP, MaxHP: m.MaxHP, Dead: m.Dead,
		})
	}
	for _, drop := range s.deps.World.DropsInZone(zoneID) {
		snap.Drops = append(snap.Drops, proto.DropView{
			ID: drop.ID, ItemID: drop.ItemID, Qty: drop.Qty, X: drop.X, Y: drop.Y,
		})
	}
	for _, pr := range s.deps.World.ProjectilesInZone(zoneID) {
		snap.Projectiles = append(snap.Projectiles, proto.ProjectileView{
			ID: pr.ID, Sprite: pr.Sprite, X: pr.X, Y: pr.Y, VX: pr.VX, VY: pr.VY,
		})
	}
	for _, ef := range s.deps.World.EffectsInZone(zoneID) {
		snap.AreaEffects = append(snap.AreaEffects, proto.AreaEffectView{
			ID: ef.ID, X: ef.X, Y: ef.Y, Radius: ef.Radius,
			CasterID: ef.CasterID, EndsIn: secondsUntil(ef.End, now),
		})
	}
	return snap
}

func selfView(p *world.Player, now time.Time) proto.SelfView {
	sv := proto.SelfView{
		Equipment: proto.EquipView{
			Weapon:    p.Equip.Get("weapon"),
			Armor:     p.Equip.Get("armor"),
			Hat:       p.Equip.Get("hat"),
			Accessory: p.Equip.Get("accessory"),
		},
		Skill1ReadyIn: secondsUntil(p.Skill1ReadyAt, now),
		Skill2ReadyIn: secondsUntil(p.Skill2ReadyAt, now),
		Skill1Primed:  p.Skill1Primed,
		AttackReadyIn: secondsUntil(p.AttackReadyAt, now),
		RespawnIn:     secondsUntil(p.RespawnAt, now),
		XP:            p.XP,
		XPNext:        p.XPNext,
		Gold:          p.Gold,
	}
	sv.Inventory = make([]proto.SlotView, len(p.Inv))
	for i, slot := range p.Inv {
		sv.Inventory[i] = proto.SlotView{ItemID: slot.ItemID, Qty: slot.Qty}
	}
	return sv
}

func secondsUntil(t time.Time, now time.Time) float64 {
	if t.IsZero() || !now.Before(t) {
		return 0
	}
	return t.Sub(now).Seconds()
}
