package world

import "math"

// XPToNext returns the xp threshold to clear the given level.
func XPToNext(level int) int {
	return int(math.Round(20 * math.Pow(float64(level), 1.35)))
}

// AwardXP adds xp to the player and applies every level-up the total now
// covers: each crossing subtracts the threshold, bumps level, maxHp and
// attack, and fully heals. Returns the number of levels gained so the
// caller can emit a single notification for the whole award.
func (p *Player) AwardXP(amount int) int {
	p.XP += amount
	levels := 0
	for p.XP >= p.XPNext {
		p.XP -= p.XPNext
		p.Level++
		p.XPNext = XPToNext(p.Level)
		p.MaxHP += HPPerLevel
		p.Attack += AttackPerLevel
		p.HP = p.MaxHP
		levels++
	}
	if levels > 0 || amount != 0 {
		p.Dirty = true
	}
	return levels
}
