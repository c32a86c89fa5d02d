package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXPToNext(t *testing.T) {
	assert.Equal(t, 20, XPToNext(1))
	assert.Equal(t, 51, XPToNext(2))
}

func TestAwardXPSingleLevelUp(t *testing.T) {
	p := NewPlayer(1, nil, 1, 100, 100)
	require.Equal(t, 1, p.Level)
	require.Equal(t, 20, p.XPNext)

	gained := p.AwardXP(45)

	assert.Equal(t, 1, gained, "exactly one level crossed")
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 25, p.XP)
	assert.Equal(t, 51, p.XPNext)
	assert.Equal(t, 110, p.MaxHP)
	assert.Equal(t, 12, p.Attack)
	assert.Equal(t, 110, p.HP, "level up fully heals")
}

func TestAwardXPIsDeterministic(t *testing.T) {
	a := NewPlayer(1, nil, 1, 0, 0)
	b := NewPlayer(2, nil, 1, 0, 0)
	a.AwardXP(45)
	b.AwardXP(45)
	assert.Equal(t, a.Level, b.Level)
	assert.Equal(t, a.XP, b.XP)
	assert.Equal(t, a.XPNext, b.XPNext)
	assert.Equal(t, a.MaxHP, b.MaxHP)
	assert.Equal(t, a.Attack, b.Attack)
}

func TestAwardXPMultipleLevels(t *testing.T) {
	p := NewPlayer(1, nil, 1, 0, 0)
	gained := p.AwardXP(200) // crosses thresholds 20, 51 and 88

	assert.Equal(t, 3, gained)
	assert.Equal(t, 4, p.Level)
	assert.Equal(t, 200-20-51-XPToNext(3), p.XP)
	assert.Equal(t, XPToNext(4), p.XPNext)
	assert.Equal(t, PlayerMaxHP+3*HPPerLevel, p.MaxHP)
	assert.Equal(t, PlayerAttack+3*AttackPerLevel, p.Attack)
}
