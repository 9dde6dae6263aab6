package engine

import (
	"github.com/Noty-chan/rogue-prison/internal/content"
	"github.com/Noty-chan/rogue-prison/internal/game"
	"github.com/Noty-chan/rogue-prison/internal/rng"
)

// moveAvailable checks a move's hp threshold, phase guard and requirements
// against the enemy's current state.
func moveAvailable(e *game.Enemy, m content.Move) bool {
	hp := e.HPFraction()
	if m.Threshold != nil && hp > *m.Threshold {
		return false
	}
	if m.SetPhase != "" && e.PhaseTag == m.SetPhase {
		return false
	}
	r := m.Requires
	if r.PhaseIs != "" && e.PhaseTag != r.PhaseIs {
		return false
	}
	if r.PhaseNot != "" && e.PhaseTag == r.PhaseNot {
		return false
	}
	if r.HPBelow != nil && hp >= *r.HPBelow {
		return false
	}
	return true
}

// ChooseIntent rolls the enemy's next move and telegraphs it. When no move
// passes its guards every move is eligible. Repeating the last move is
// half as likely.
func ChooseIntent(e *game.Enemy, def *content.EnemyDef, src rng.Source) {
	if def == nil || len(def.Moves) == 0 {
		return
	}
	avail := make([]content.Move, 0, len(def.Moves))
	for _, m := range def.Moves {
		if moveAvailable(e, m) {
			avail = append(avail, m)
		}
	}
	if len(avail) == 0 {
		avail = def.Moves
	}
	weights := make([]int, len(avail))
	for i, m := range avail {
		w := m.Weight
		if e.LastMove != "" && m.ID == e.LastMove {
			w = max(1, w/2)
		}
		weights[i] = w
	}
	pick := avail[rng.PickWeighted(src, weights)]
	e.NextMove = pick.ID
	e.Intent = content.Summarize(pick)
}

func (cc *combatContext) chooseIntent(e *game.Enemy) {
	def, ok := cc.cat.Enemy(e.DefID)
	if !ok {
		e.Intent, e.NextMove = nil, ""
		return
	}
	ChooseIntent(e, def, cc.src)
}
