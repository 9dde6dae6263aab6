package engine

import (
	"github.com/looplab/fsm"

	"github.com/Noty-chan/rogue-prison/internal/content"
	"github.com/Noty-chan/rogue-prison/internal/game"
	"github.com/Noty-chan/rogue-prison/internal/rng"
)

// --- Combat context -----------------------------------------------------
type combatContext struct {
	run *game.Run
	c   *game.Combat
	cat *content.Catalog
	src rng.Source

	machine *fsm.FSM
	outcome Outcome
}

func newCombatContext(run *game.Run, cat *content.Catalog, src rng.Source) *combatContext {
	cc := &combatContext{run: run, c: run.Combat, cat: cat, src: src, outcome: Ongoing}
	cc.machine = newPhaseMachine(cc.c)
	return cc
}

// over reports whether this context already won or lost the combat.
func (cc *combatContext) over() bool { return cc.outcome != Ongoing }

func (cc *combatContext) add(format string, args ...any) { cc.c.Logf(format, args...) }

func (cc *combatContext) player() *game.Player { return cc.c.Player }

func (cc *combatContext) isPlayer(x *game.Combatant) bool {
	return x == &cc.c.Player.Combatant
}

// enemyOf maps a ledger back to its enemy, or nil for the player.
func (cc *combatContext) enemyOf(x *game.Combatant) *game.Enemy {
	for _, e := range cc.c.Enemies {
		if &e.Combatant == x {
			return e
		}
	}
	return nil
}

func (cc *combatContext) cardDef(ci *game.CardInstance) *content.CardDef {
	def, err := cc.cat.CardFor(ci)
	if err != nil {
		return nil
	}
	return def
}

func (cc *combatContext) statusName(s game.Status) string {
	return cc.cat.StatusInfo(s).Name
}

func (cc *combatContext) buffName(b game.Buff) string {
	return cc.cat.BuffInfo(b).Name
}
