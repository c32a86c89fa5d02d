package handler

import (
	"math"
	"math/rand"

	"github.com/riptide/server/internal/data"
	"github.com/riptide/server/internal/net/proto"
	"github.com/riptide/server/internal/world"
)

func rejectSkill(p *world.Player, msgType, reason string) {
	p.Send(proto.SkillResult{Type: msgType, Reason: reason})
}

// HandleSkill1Arm primes the next wand shot to carry the area effect. The
// primed flag costs nothing to set; the cooldown only starts when an effect
// actually spawns.
func HandleSkill1Arm(d *Deps, p *world.Player, _ proto.Skill1Arm) {
	if p.IsDead() {
		return
	}
	w := equippedWeapon(d, p)
	if w == nil || w.WeaponClass != data.WeaponWand {
		rejectSkill(p, "skill1Rejected", "weapon")
		return
	}
	now := d.World.Now()
	if now.Before(p.Skill1ReadyAt) {
		rejectSkill(p, "skill1Rejected", "cooldown")
		return
	}
	if d.World.EffectOwnedBy(p.ID) != nil {
		rejectSkill(p, "skill1Rejected", "active")
		return
	}
	p.Skill1Primed = true
	p.Send(proto.SkillResult{Type: "skill1Armed"})
}

// HandleSkill1Cast places the area effect directly at a target point. The
// cooldown runs from cast acceptance, not from effect expiry.
func HandleSkill1Cast(d *Deps, p *world.Player, c proto.Skill1Cast) {
	if p.IsDead() {
		return
	}
	w := equippedWeapon(d, p)
	if w == nil || w.WeaponClass != data.WeaponWand {
		rejectSkill(p, "skill1Rejected", "weapon")
		return
	}
	now := d.World.Now()
	if now.Before(p.Skill1ReadyAt) {
		rejectSkill(p, "skill1Rejected", "cooldown")
		return
	}
	if d.World.EffectOwnedBy(p.ID) != nil {
		rejectSkill(p, "skill1Rejected", "active")
		return
	}
	z := d.World.Zone(p.ZoneID)
	if z == nil {
		return
	}
	x, y := z.Clamp(c.X, c.Y, 1)
	p.Skill1Primed = false
	p.Skill1ReadyAt = now.Add(world.WhirlpoolCooldown)
	SpawnWhirlpool(d, p, x, y)
	p.Send(proto.SkillResult{Type: "skill1Accepted"})
}

// TriggerPrimedArea spawns the area effect when a primed wand bolt connects.
// Called from projectile collision; the caster may be gone or busy by then,
// so every gate is rechecked here.
func TriggerPrimedArea(d *Deps, casterID uint64, zoneID int, x, y float64) {
	p := d.World.Player(casterID)
	if p == nil || p.ZoneID != zoneID || p.IsDead() {
		return
	}
	if d.World.EffectOwnedBy(p.ID) != nil {
		return
	}
	p.Skill1ReadyAt = d.World.Now().Add(world.WhirlpoolCooldown)
	SpawnWhirlpool(d, p, x, y)
	p.Send(proto.SkillResult{Type: "skill1Accepted"})
}

// HandleSkill2DoubleStab performs the first of two poke hits immediately and
// schedules the second a fixed delay later. Each hit's direction juts a
// small angle to one side of the aim.
func HandleSkill2DoubleStab(d *Deps, p *world.Player, c proto.Skill2DoubleStab) {
	if p.IsDead() {
		return
	}
	w := equippedWeapon(d, p)
	if w == nil || w.WeaponClass != data.WeaponPoke {
		rejectSkill(p, "skill2Rejected", "weapon")
		return
	}
	now := d.World.Now()
	if now.Before(p.Skill2ReadyAt) {
		rejectSkill(p, "skill2Rejected", "cooldown")
		return
	}
	p.Skill2ReadyAt = now.Add(world.DoubleStabCooldown)

	dx, dy := aimDir(p, c.Aim)
	p.FacingX, p.FacingY = dx, dy
	p.AttackAnimUntil = now.Add(world.AttackAnimDuration)

	sign := 1.0
	if rand.Intn(2) == 0 {
		sign = -1.0
	}
	fx, fy := rotate(dx, dy, sign*world.DoubleStabAngle)
	pokeHit(d, p, fx, fy)

	sx, sy := rotate(dx, dy, -sign*world.DoubleStabAngle)
	d.World.ScheduleStab(world.PendingStab{
		CasterID: p.ID,
		ZoneID:   p.ZoneID,
		Due:      now.Add(world.DoubleStabDelay),
		DirX:     sx,
		DirY:     sy,
	})
	p.Send(proto.SkillResult{Type: "skill2Accepted"})
}

// ConsumeStab lands the delayed second stab. The caster must still exist, be
// alive and be in the zone where the skill started; otherwise it fizzles.
func ConsumeStab(d *Deps, ps world.PendingStab) {
	p := d.World.Player(ps.CasterID)
	if p == nil || p.ZoneID != ps.ZoneID || p.IsDead() {
		return
	}
	p.FacingX, p.FacingY = ps.DirX, ps.DirY
	p.AttackAnimUntil = d.World.Now().Add(world.AttackAnimDuration)
	pokeHit(d, p, ps.DirX, ps.DirY)
}

func rotate(dx, dy, angle float64) (float64, float64) {
	sin, cos := math.Sin(angle), math.Cos(angle)
	return dx*cos - dy*sin, dx*sin + dy*cos
}
