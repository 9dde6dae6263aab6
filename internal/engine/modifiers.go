package engine

import (
	"math"

	"github.com/Noty-chan/rogue-prison/internal/content"
	"github.com/Noty-chan/rogue-prison/internal/game"
)

// --- Modifier helpers --------------------------------------------------

// roundHalfEven rounds the way the damage tables were balanced: ties go to
// the even neighbour.
func roundHalfEven(x float64) int {
	return int(math.RoundToEven(x))
}

// CritChance is the player's crit chance with crit buffs, clamped to [0,1].
func CritChance(p *game.Player) float64 {
	c := p.Crit +
		0.10*float64(p.BuffCount(game.BuffCritPlus10)) +
		0.15*float64(p.BuffCount(game.BuffCritPlus15)) +
		0.25*float64(p.BuffCount(game.BuffCritGodmode))
	return math.Max(0, math.Min(1, c))
}

// CritMultiplier is x2, plus one per crit_godmode stack.
func CritMultiplier(p *game.Player) float64 {
	return 2 + float64(p.BuffCount(game.BuffCritGodmode))
}

// CardCost is the card's cost minus its combat discount, never negative.
func CardCost(def *content.CardDef, ci *game.CardInstance) int {
	return max(0, def.Cost-ci.CostMod)
}

// mitigate applies weak and freeze on the attacker and vulnerable on the
// defender.
func mitigate(att, def *game.Combatant, base int) int {
	d := float64(base)
	if att.Status(game.StatusWeak) > 0 {
		d *= 0.75
	}
	if att.Status(game.StatusFreeze) > 0 {
		d *= 0.75
	}
	if def.Status(game.StatusVulnerable) > 0 {
		d *= 1.25
	}
	return max(0, roundHalfEven(d))
}

// ActForFloor maps floors 1-4, 5-8 and 9-10 to acts 1, 2 and 3.
func ActForFloor(floor int) int {
	switch {
	case floor <= 4:
		return 1
	case floor <= 8:
		return 2
	default:
		return 3
	}
}

func IsBossFloor(floor int) bool {
	return floor == 4 || floor == 8 || floor == 10
}

// MaxEnemyTier is the strongest normal enemy tier allowed on a floor.
func MaxEnemyTier(floor, loop int) int {
	switch {
	case loop > 0 || floor >= 7:
		return 3
	case floor >= 3:
		return 2
	default:
		return 1
	}
}

// EnemyScale grows with difficulty, floor, act and endless loops.
func EnemyScale(run *game.Run) float64 {
	return 1.0 +
		0.06*float64(run.Difficulty) +
		0.03*float64(run.Floor-1) +
		0.12*float64(run.Act-1) +
		0.10*float64(run.Loop)
}
