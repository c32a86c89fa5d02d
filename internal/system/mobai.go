package system

import (
	"math"
	"math/rand"
	"time"

	"github.com/riptide/server/internal/core/system"
	"github.com/riptide/server/internal/handler"
	"github.com/riptide/server/internal/net/proto"
	"github.com/riptide/server/internal/world"
)

// MobAISystem drives the mob state machine each step: target selection,
// chase/wander movement with corner-hug sliding and an anti-stuck nudge,
// and contact attacks.
type MobAISystem struct {
	deps *handler.Deps
}

func NewMobAISystem(deps *handler.Deps) *MobAISystem {
	return &MobAISystem{deps: deps}
}

func (s *MobAISystem) Phase() system.Phase { return system.PhaseUpdate }

func (s *MobAISystem) Update(dt time.Duration) {
	now := s.deps.World.Now()
	for _, m := range s.deps.World.Mobs() {
		if m.Dead {
			continue
		}
		z := s.deps.World.Zone(m.ZoneID)
		if z == nil {
			continue
		}
		target := s.selectTarget(m, now)
		if target != nil {
			s.chase(z, m, target, now, dt)
		} else {
			m.StuckFor = 0
			s.wander(z, m, now, dt)
		}
	}
}

// selectTarget applies the aggro rules. Passive-until-hit mobs only ever
// chase their locked attacker, and only while provoked; everything else
// takes the nearest living player inside the active range.
func (s *MobAISystem) selectTarget(m *world.Mob, now time.Time) *world.Player {
	rng := m.ActiveAggroRange(now)

	if m.PassiveUntilHit {
		if !m.Provoked(now) || m.AggroTargetID == 0 {
			return nil
		}
		p := s.deps.World.Player(m.AggroTargetID)
		if p == nil || p.IsDead() || p.ZoneID != m.ZoneID {
			return nil
		}
		if dist(m.X, m.Y, p.X, p.Y) > rng {
			return nil
		}
		return p
	}

	// Provocation only widens the range here; the pick is always the
	// nearest living player inside it.
	var (
		best     *world.Player
		bestDist = rng
	)
	s.deps.World.AllPlayers(func(p *world.Player) {
		if p.ZoneID != m.ZoneID || p.IsDead() {
			return
		}
		if d := dist(m.X, m.Y, p.X, p.Y); d <= bestDist {
			best = p
			bestDist = d
		}
	})
	return best
}

func (s *MobAISystem) chase(z *world.Zone, m *world.Mob, target *world.Player, now time.Time, dt time.Duration) {
	dx, dy := target.X-m.X, target.Y-m.Y
	d := math.Hypot(dx, dy)

	// Close enough: contact attack instead of movement.
	if d <= m.Radius+world.PlayerRadius+world.MobContactRange {
		m.StuckFor = 0
		s.contactAttack(m, target, now)
		return
	}

	ux, uy := dx/d, dy/d
	if now.Before(m.NudgeUntil) {
		nx, ny := -uy*m.NudgeSign, ux*m.NudgeSign
		ux, uy = norm(ux+nx, uy+ny)
	}

	step := m.ChaseSpeed * dt.Seconds()
	moved := s.slideToward(z, m, ux, uy, step, target)
	if moved {
		m.StuckFor = 0
		return
	}
	m.StuckFor += dt
	if m.StuckFor > world.MobStuckThreshold && !now.Before(m.NudgeUntil) {
		m.NudgeUntil = now.Add(world.MobNudgeDuration)
		m.NudgeSign = 1
		if rand.Intn(2) == 0 {
			m.NudgeSign = -1
		}
		m.StuckFor = 0
	}
}

// slideToward moves along (ux,uy), falling back to the two perpendicular
// corner-hug directions when fully blocked. With a target the fallback that
// shrinks the distance wins; wandering mobs take either.
func (s *MobAISystem) slideToward(z *world.Zone, m *world.Mob, ux, uy, step float64, target *world.Player) bool {
	nx, ny, mx, my := z.SlideMove(m.X, m.Y, ux*step, uy*step, m.Radius, 0)
	if mx || my {
		m.X, m.Y = nx, ny
		return true
	}

	perps := [2][2]float64{{-uy, ux}, {uy, -ux}}
	if target != nil {
		d0 := dist(nx+perps[0][0]*step, ny+perps[0][1]*step, target.X, target.Y)
		d1 := dist(nx+perps[1][0]*step, ny+perps[1][1]*step, target.X, target.Y)
		if d1 < d0 {
			perps[0], perps[1] = perps[1], perps[0]
		}
	}
	for _, perp := range perps {
		nx, ny, mx, my = z.SlideMove(m.X, m.Y, perp[0]*step, perp[1]*step, m.Radius, 0)
		if mx || my {
			m.X, m.Y = nx, ny
			return true
		}
	}
	return false
}

func (s *MobAISystem) contactAttack(m *world.Mob, target *world.Player, now time.Time) {
	if now.Before(m.AttackReadyAt) || now.Before(target.InvulnUntil) {
		return
	}
	m.AttackReadyAt = now.Add(world.MobAttackCooldown)
	target.InvulnUntil = now.Add(world.InvulnDuration)
	target.HP -= m.ContactDamage
	target.Dirty = true

	// Knock the player straight back from the mob.
	kx, ky := norm(target.X-m.X, target.Y-m.Y)
	if z := s.deps.World.Zone(target.ZoneID); z != nil {
		target.X, target.Y, _, _ = z.SlideMove(target.X, target.Y,
			kx*world.MobKnockback, ky*world.MobKnockback,
			world.FootRadius, world.FootOffsetY)
	}

	s.deps.BroadcastZone(m.ZoneID, proto.Hit{
		Type:     "hit",
		TargetID: int64(target.ID),
		SourceID: 0,
		Damage:   m.ContactDamage,
		X:        target.X,
		Y:        target.Y,
	})
	if target.HP <= 0 {
		handler.KillPlayer(s.deps, target)
	}
}

func (s *MobAISystem) wander(z *world.Zone, m *world.Mob, now time.Time, dt time.Duration) {
	if !now.Before(m.WanderUntil) {
		span := world.MobWanderMax - world.MobWanderMin
		m.WanderUntil = now.Add(world.MobWanderMin + time.Duration(rand.Int63n(int64(span))))
		// Standing still is a valid roll.
		if rand.Float64() < 0.25 {
			m.WanderX, m.WanderY = 0, 0
		} else {
			ang := rand.Float64() * 2 * math.Pi
			m.WanderX, m.WanderY = math.Cos(ang), math.Sin(ang)
		}
	}
	if m.WanderX == 0 && m.WanderY == 0 {
		return
	}
	step := m.Speed * dt.Seconds()
	s.slideToward(z, m, m.WanderX, m.WanderY, step, nil)
}

func dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

func norm(dx, dy float64) (float64, float64) {
	d := math.Hypot(dx, dy)
	if d == 0 {
		return 0, 0
	}
	return dx / d, dy / d
}
