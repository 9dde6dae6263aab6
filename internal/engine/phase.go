package engine

import (
	"context"
	"errors"

	"github.com/looplab/fsm"

	"github.com/Noty-chan/rogue-prison/internal/game"
	"github.com/Noty-chan/rogue-prison/internal/logging"
)

// Phase machine events.
const (
	evEndTurn   = "end_turn"
	evSkipTurn  = "skip_turn"
	evEnemyDone = "enemy_done"
	evWin       = "win"
	evLose      = "lose"
)

// newPhaseMachine rebuilds the turn machine from the persisted phase. Every
// transition is written straight back to the combat.
func newPhaseMachine(c *game.Combat) *fsm.FSM {
	player, enemy := string(game.PhasePlayer), string(game.PhaseEnemy)
	initial := string(c.Phase)
	if initial == "" {
		initial = player
	}
	return fsm.NewFSM(
		initial,
		fsm.Events{
			{Name: evEndTurn, Src: []string{player}, Dst: enemy},
			{Name: evSkipTurn, Src: []string{player}, Dst: enemy},
			{Name: evEnemyDone, Src: []string{enemy}, Dst: player},
			{Name: evWin, Src: []string{player, enemy}, Dst: string(game.PhaseWon)},
			{Name: evLose, Src: []string{player, enemy}, Dst: string(game.PhaseLost)},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				c.Phase = game.Phase(e.Dst)
			},
		},
	)
}

func (cc *combatContext) fire(event string) {
	err := cc.machine.Event(context.Background(), event)
	var noop fsm.NoTransitionError
	if err != nil && !errors.As(err, &noop) {
		logging.Warn("illegal combat transition", logging.Fields{
			"event": event,
			"phase": cc.machine.Current(),
			"error": err.Error(),
		})
	}
}
