package handler

import (
	"time"

	"github.com/riptide/server/internal/data"
	"github.com/riptide/server/internal/net/proto"
	"github.com/riptide/server/internal/world"
)

// HandleAttack resolves a basic weapon attack. The hit shape depends on the
// equipped weapon class; the shared cadence is one attack per second scaled
// by the weapon's speed multiplier.
func HandleAttack(d *Deps, p *world.Player, c proto.Attack) {
	if p.IsDead() {
		return
	}
	now := d.World.Now()
	if now.Before(p.AttackReadyAt) {
		return
	}
	w := equippedWeapon(d, p)
	if w == nil {
		return
	}

	dx, dy := aimDir(p, c.Aim)
	p.FacingX, p.FacingY = dx, dy
	p.AttackReadyAt = now.Add(time.Duration(float64(world.AttackBaseCooldown) / w.SpeedMult))
	p.AttackAnimUntil = now.Add(world.AttackAnimDuration)

	switch w.WeaponClass {
	case data.WeaponArc:
		arcSweep(d, p, dx, dy)
	case data.WeaponPoke:
		pokeHit(d, p, dx, dy)
	case data.WeaponWand:
		fireProjectile(d, p, dx, dy, w)
	}
}

func equippedWeapon(d *Deps, p *world.Player) *data.ItemDef {
	id := p.Equip.Get("weapon")
	if id == "" {
		return nil
	}
	w := d.Items.Get(id)
	if w == nil || w.Slot != data.SlotWeapon {
		return nil
	}
	return w
}

// arcSweep tests three overlapping circles pushed forward along the aim
// direction: one centered, two offset to either side. A mob caught by more
// than one circle is hit once.
func arcSweep(d *Deps, p *world.Player, dx, dy float64) {
	px, py := -dy, dx
	fx := p.X + dx*world.ArcForwardOffset
	fy := p.Y + dy*world.ArcForwardOffset
	centers := [3][2]float64{
		{fx, fy},
		{fx + px*world.ArcSideOffset, fy + py*world.ArcSideOffset},
		{fx - px*world.ArcSideOffset, fy - py*world.ArcSideOffset},
	}
	seen := make(map[int64]bool)
	for _, c := range centers {
		for _, m := range MobsInCircle(d, p.ZoneID, c[0], c[1], world.ArcHitRadius) {
			if seen[m.ID] {
				continue
			}
			seen[m.ID] = true
			HitMob(d, p, m, p.Attack)
		}
	}
}

// pokeHit tests a single forward circle along an explicit direction. The
// double stab skill reuses it with rotated directions.
func pokeHit(d *Deps, p *world.Player, dx, dy float64) {
	cx := p.X + dx*world.PokeOffset
	cy := p.Y + dy*world.PokeOffset
	for _, m := range MobsInCircle(d, p.ZoneID, cx, cy, world.PokeHitRadius) {
		HitMob(d, p, m, p.Attack)
	}
}

// fireProjectile spawns a wand bolt. An armed area skill rides on the shot:
// the primed flag is consumed now and the effect spawns where the bolt
// connects with a mob.
func fireProjectile(d *Deps, p *world.Player, dx, dy float64, w *data.ItemDef) {
	triggers := p.Skill1Primed
	p.Skill1Primed = false
	rangeSec := world.ProjectileRange / world.ProjectileSpeed
	lifetime := time.Duration(rangeSec * float64(time.Second))
	d.World.AddProjectile(&world.Projectile{
		ID:           d.World.NextID(),
		ZoneID:       p.ZoneID,
		OwnerID:      p.ID,
		X:            p.X + dx*world.PlayerRadius,
		Y:            p.Y + dy*world.PlayerRadius,
		VX:           dx * world.ProjectileSpeed,
		VY:           dy * world.ProjectileSpeed,
		Radius:       world.ProjectileRadius,
		Damage:       p.Attack,
		Sprite:       w.Sprite,
		TriggersArea: triggers,
		ExpiresAt:    d.World.Now().Add(lifetime),
	})
}
