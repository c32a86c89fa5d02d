package handler

import (
	"testing"
	"time"

	"github.com/riptide/server/internal/net/proto"
	"github.com/riptide/server/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttackRequiresWeapon(t *testing.T) {
	d := newTestDeps()
	p, _ := addPlayer(d, 1)
	m := addMob(d, "crab", p.X+world.ArcForwardOffset, p.Y)

	HandleAttack(d, p, proto.Attack{Aim: proto.Aim{DirX: 1}})
	assert.Equal(t, m.MaxHP, m.HP, "bare hands deal nothing")
}

func TestArcAttackHitsAndRespectsCooldown(t *testing.T) {
	d := newTestDeps()
	p, _ := addPlayer(d, 1)
	p.Equip.Set("weapon", "sword")
	m := addMob(d, "crab", p.X+world.ArcForwardOffset, p.Y)

	HandleAttack(d, p, proto.Attack{Aim: proto.Aim{DirX: 1}})
	require.Equal(t, m.MaxHP-p.Attack, m.HP)
	assert.Equal(t, p.ID, m.AggroTargetID, "hit locks aggro onto the attacker")
	assert.True(t, m.AggroUntil.After(d.World.Now()))

	// Second swing inside the cooldown window is a no-op.
	HandleAttack(d, p, proto.Attack{Aim: proto.Aim{DirX: 1}})
	assert.Equal(t, m.MaxHP-p.Attack, m.HP)

	advance(d, world.AttackBaseCooldown+time.Millisecond)
	HandleAttack(d, p, proto.Attack{Aim: proto.Aim{DirX: 1}})
	assert.Equal(t, m.MaxHP-2*p.Attack, m.HP)
}

func TestArcAttackHitsEachMobOnce(t *testing.T) {
	d := newTestDeps()
	p, _ := addPlayer(d, 1)
	p.Equip.Set("weapon", "sword")
	// Centered so every one of the three sweep circles overlaps it.
	m := addMob(d, "crab", p.X+world.ArcForwardOffset, p.Y)

	HandleAttack(d, p, proto.Attack{Aim: proto.Aim{DirX: 1}})
	assert.Equal(t, m.MaxHP-p.Attack, m.HP, "single application despite overlap")
}

func TestAttackAimedAtPoint(t *testing.T) {
	d := newTestDeps()
	p, _ := addPlayer(d, 1)
	p.Equip.Set("weapon", "sword")
	m := addMob(d, "crab", p.X, p.Y-world.ArcForwardOffset)

	HandleAttack(d, p, proto.Attack{Aim: proto.Aim{X: p.X, Y: p.Y - 100}})
	assert.Equal(t, m.MaxHP-p.Attack, m.HP)
	assert.InDelta(t, -1.0, p.FacingY, 1e-9, "facing follows the aim")
}

func TestWandAttackSpawnsProjectile(t *testing.T) {
	d := newTestDeps()
	p, _ := addPlayer(d, 1)
	p.Equip.Set("weapon", "wand")

	HandleAttack(d, p, proto.Attack{Aim: proto.Aim{DirX: 1}})

	prs := d.World.Projectiles()
	require.Len(t, prs, 1)
	pr := prs[0]
	assert.Equal(t, p.ID, pr.OwnerID)
	assert.Equal(t, world.ProjectileSpeed, pr.VX)
	assert.Zero(t, pr.VY)
	assert.False(t, pr.TriggersArea, "unprimed shot carries no area effect")
	rangeSec := world.ProjectileRange / world.ProjectileSpeed
	wantLife := time.Duration(rangeSec * float64(time.Second))
	assert.Equal(t, d.World.Now().Add(wantLife), pr.ExpiresAt)
}

func TestDeadPlayerCannotAttack(t *testing.T) {
	d := newTestDeps()
	p, _ := addPlayer(d, 1)
	p.Equip.Set("weapon", "sword")
	p.RespawnAt = d.World.Now().Add(world.PlayerRespawnDelay)
	m := addMob(d, "crab", p.X+world.ArcForwardOffset, p.Y)

	HandleAttack(d, p, proto.Attack{Aim: proto.Aim{DirX: 1}})
	assert.Equal(t, m.MaxHP, m.HP)
}

func TestKillMobAwardsXPAndDropsCoins(t *testing.T) {
	d := newTestDeps()
	p, rec := addPlayer(d, 1)
	m := addMob(d, "crab", p.X+20, p.Y)
	m.HP = 1

	HitMob(d, p, m, p.Attack)

	assert.True(t, m.Dead)
	assert.Equal(t, 12, p.XP)
	assert.Equal(t, d.World.Now().Add(world.MobCorpseDuration), m.CorpseUntil)
	assert.Equal(t, d.World.Now().Add(world.MobRespawnDelay), m.RespawnAt)

	drops := d.World.DropsInZone(1)
	require.Len(t, drops, 1, "crab has no loot table, coins only")
	coins := drops[0]
	assert.GreaterOrEqual(t, coins.Qty, world.CoinDropMin*m.Level)
	assert.LessOrEqual(t, coins.Qty, world.CoinDropMax*m.Level)

	hit := rec.lastOf(func(m any) bool { _, ok := m.(proto.Hit); return ok })
	require.NotNil(t, hit, "zone sees the hit event")
}

func TestLevelUpNotificationSummarizesFinalState(t *testing.T) {
	d := newTestDeps()
	p, rec := addPlayer(d, 1)
	m := addMob(d, "crab", p.X+20, p.Y)
	m.XPReward = 200 // crosses three thresholds in one award
	m.HP = 1

	HitMob(d, p, m, p.Attack)

	var ups []proto.LevelUp
	for _, msg := range rec.msgs {
		if up, ok := msg.(proto.LevelUp); ok {
			ups = append(ups, up)
		}
	}
	require.Len(t, ups, 1, "one notification for the whole award")
	assert.Equal(t, 4, ups[0].Level)
	assert.Equal(t, p.MaxHP, ups[0].MaxHP)
	assert.Equal(t, p.Attack, ups[0].Attack)
}
