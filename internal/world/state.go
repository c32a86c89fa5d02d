package world

import (
	"time"
)

// State owns every entity store. Single-goroutine access only (game loop);
// the cooperative scheduling model is the sole concurrency mechanism.
type State struct {
	now time.Time

	zones map[int]*Zone

	players map[uint64]*Player

	mobs    map[int64]*Mob
	mobList []*Mob // registration order, used by projectile collision

	npcs    map[int64]*NPC
	npcList []*NPC

	drops    map[int64]*Drop
	dropList []*Drop

	projectiles []*Projectile

	effects []*AreaEffect

	pendingStabs []PendingStab

	nextID int64
}

func NewState() *State {
	return &State{
		zones:   make(map[int]*Zone),
		players: make(map[uint64]*Player),
		mobs:    make(map[int64]*Mob),
		npcs:    make(map[int64]*NPC),
		drops:   make(map[int64]*Drop),
	}
}

// Now returns the current simulation timestamp, set once per fixed step.
func (s *State) Now() time.Time { return s.now }

// SetNow advances the simulation clock. Called by the loop before each step
// and by tests directly.
func (s *State) SetNow(t time.Time) { s.now = t }

// NextID hands out entity ids for mobs, npcs, drops, projectiles, effects.
func (s *State) NextID() int64 {
	s.nextID++
	return s.nextID
}

// --- Zones ---

func (s *State) AddZone(z *Zone) { s.zones[z.ID] = z }

func (s *State) Zone(id int) *Zone { return s.zones[id] }

func (s *State) ZoneCount() int { return len(s.zones) }

// --- Players ---

func (s *State) AddPlayer(p *Player) { s.players[p.ID] = p }

func (s *State) RemovePlayer(id uint64) *Player {
	p, ok := s.players[id]
	if !ok {
		return nil
	}
	delete(s.players, id)
	return p
}

func (s *State) Player(id uint64) *Player { return s.players[id] }

// PlayerByName returns the in-world player with the given display name.
func (s *State) PlayerByName(name string) *Player {
	for _, p := range s.players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func (s *State) AllPlayers(fn func(*Player)) {
	for _, p := range s.players {
		fn(p)
	}
}

// PlayersInZone collects players currently in a zone.
func (s *State) PlayersInZone(zoneID int) []*Player {
	var out []*Player
	for _, p := range s.players {
		if p.ZoneID == zoneID {
			out = append(out, p)
		}
	}
	return out
}

func (s *State) PlayerCount() int { return len(s.players) }

// --- Mobs ---

func (s *State) AddMob(m *Mob) {
	s.mobs[m.ID] = m
	s.mobList = append(s.mobList, m)
}

func (s *State) Mob(id int64) *Mob { return s.mobs[id] }

// Mobs returns all mobs in registration order.
func (s *State) Mobs() []*Mob { return s.mobList }

// MobsInZone returns the zone's mobs in registration order.
func (s *State) MobsInZone(zoneID int) []*Mob {
	var out []*Mob
	for _, m := range s.mobList {
		if m.ZoneID == zoneID {
			out = append(out, m)
		}
	}
	return out
}

// --- NPCs ---

func (s *State) AddNpc(n *NPC) {
	s.npcs[n.ID] = n
	s.npcList = append(s.npcList, n)
}

func (s *State) Npc(id int64) *NPC { return s.npcs[id] }

func (s *State) NpcsInZone(zoneID int) []*NPC {
	var out []*NPC
	for _, n := range s.npcList {
		if n.ZoneID == zoneID {
			out = append(out, n)
		}
	}
	return out
}

func (s *State) NpcCount() int { return len(s.npcs) }

// --- Drops ---

func (s *State) AddDrop(d *Drop) {
	s.drops[d.ID] = d
	s.dropList = append(s.dropList, d)
}

func (s *State) RemoveDrop(id int64) *Drop {
	d, ok := s.drops[id]
	if !ok {
		return nil
	}
	delete(s.drops, id)
	for i, e := range s.dropList {
		if e.ID == id {
			s.dropList[i] = s.dropList[len(s.dropList)-1]
			s.dropList = s.dropList[:len(s.dropList)-1]
			break
		}
	}
	return d
}

func (s *State) Drops() []*Drop { return s.dropList }

func (s *State) DropsInZone(zoneID int) []*Drop {
	var out []*Drop
	for _, d := range s.dropList {
		if d.ZoneID == zoneID {
			out = append(out, d)
		}
	}
	return out
}

// ExpireDrops removes drops past their expiry and returns them.
func (s *State) ExpireDrops(now time.Time) []*Drop {
	var expired []*Drop
	for _, d := range s.dropList {
		if !now.Before(d.ExpiresAt) {
			expired = append(expired, d)
		}
	}
	for _, d := range expired {
		s.RemoveDrop(d.ID)
	}
	return expired
}

// --- Projectiles ---

func (s *State) AddProjectile(pr *Projectile) {
	s.projectiles = append(s.projectiles, pr)
}

func (s *State) Projectiles() []*Projectile { return s.projectiles }

// RemoveProjectilesWhere drops every projectile the predicate matches.
func (s *State) RemoveProjectilesWhere(match func(*Projectile) bool) {
	kept := s.projectiles[:0]
	for _, pr := range s.projectiles {
		if !match(pr) {
			kept = append(kept, pr)
		}
	}
	for i := len(kept); i < len(s.projectiles); i++ {
		s.projectiles[i] = nil
	}
	s.projectiles = kept
}

func (s *State) ProjectilesInZone(zoneID int) []*Projectile {
	var out []*Projectile
	for _, pr := range s.projectiles {
		if pr.ZoneID == zoneID {
			out = append(out, pr)
		}
	}
	return out
}

// --- Area effects ---

func (s *State) AddEffect(e *AreaEffect) {
	s.effects = append(s.effects, e)
}

func (s *State) Effects() []*AreaEffect { return s.effects }

func (s *State) EffectsInZone(zoneID int) []*AreaEffect {
	var out []*AreaEffect
	for _, e := range s.effects {
		if e.ZoneID == zoneID {
			out = append(out, e)
		}
	}
	return out
}

// EffectOwnedBy returns the caster's active effect, or nil. At most one
// effect per caster exists at a time.
func (s *State) EffectOwnedBy(casterID uint64) *AreaEffect {
	for _, e := range s.effects {
		if e.CasterID == casterID {
			return e
		}
	}
	return nil
}

// CancelEffectsOwnedBy removes every effect owned by the caster. Invoked on
// disconnect, zone change, and respawn.
func (s *State) CancelEffectsOwnedBy(casterID uint64) {
	s.removeEffectsWhere(func(e *AreaEffect) bool { return e.CasterID == casterID })
}

// ExpireEffects removes effects whose end time has passed.
func (s *State) ExpireEffects(now time.Time) {
	s.removeEffectsWhere(func(e *AreaEffect) bool { return !now.Before(e.End) })
}

func (s *State) removeEffectsWhere(match func(*AreaEffect) bool) {
	kept := s.effects[:0]
	for _, e := range s.effects {
		if !match(e) {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(s.effects); i++ {
		s.effects[i] = nil
	}
	s.effects = kept
}

// --- Scheduled skill hits ---

// ScheduleStab queues the delayed second hit of the double stab.
func (s *State) ScheduleStab(ps PendingStab) {
	s.pendingStabs = append(s.pendingStabs, ps)
}

// DueStabs pops every pending stab whose due time has arrived.
func (s *State) DueStabs(now time.Time) []PendingStab {
	var due []PendingStab
	kept := s.pendingStabs[:0]
	for _, ps := range s.pendingStabs {
		if !now.Before(ps.Due) {
			due = append(due, ps)
		} else {
			kept = append(kept, ps)
		}
	}
	s.pendingStabs = kept
	return due
}

// DropStabsFor discards pending stabs for a caster (disconnect).
func (s *State) DropStabsFor(casterID uint64) {
	kept := s.pendingStabs[:0]
	for _, ps := range s.pendingStabs {
		if ps.CasterID != casterID {
			kept = append(kept, ps)
		}
	}
	s.pendingStabs = kept
}
