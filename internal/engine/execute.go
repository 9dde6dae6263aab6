package engine

import (
	"github.com/Noty-chan/rogue-prison/internal/content"
	"github.com/Noty-chan/rogue-prison/internal/game"
)

// playCard validates the play before touching any state, then pays for the
// card, resolves it and moves it to its destination zone.
func (cc *combatContext) playCard(uid string, target *int) error {
	c, p := cc.c, cc.player()
	if c.Phase != game.PhasePlayer {
		return rejection(MsgNotYourTurn)
	}
	if c.Pending != nil {
		return rejection(MsgPendingChoice)
	}
	i := c.HandIndex(uid)
	if i < 0 {
		return rejection(MsgCardNotInHand)
	}
	ci := c.Hand[i]
	def := cc.cardDef(ci)
	if def == nil {
		return rejection(MsgUnknownCard)
	}
	if def.IsCurse() {
		return rejection(MsgCurseUnplayable)
	}
	cost := CardCost(def, ci)
	if p.Mana < cost {
		return rejection(MsgNoMana)
	}
	var tgt *game.Enemy
	if def.Target.NeedsEnemy() {
		if target == nil {
			return rejection(MsgNeedTarget)
		}
		tgt = c.EnemyAt(*target)
		if tgt == nil || !tgt.Alive() {
			return rejection(MsgBadTarget)
		}
	}

	p.Mana -= cost
	c.RemoveFromHand(uid)
	bounce := p.BuffCount(game.BuffBounceNext) > 0
	if bounce {
		p.ConsumeBuff(game.BuffBounceNext, 1)
	}

	cc.resolveCard(&cardPlay{ci: ci, def: def, target: tgt}, 0)
	// Playing an attack card is the player's attack action.
	if def.Type == content.TypeAttack {
		cc.tickBleed(&p.Combatant)
	}

	ci.Charge = 0
	switch {
	case def.ExhaustsOnPlay():
		c.Exhaust = append(c.Exhaust, ci)
		cc.add("%s is exhausted.", def.DisplayName())
	case bounce:
		c.Hand = append(c.Hand, ci)
		cc.add("%s bounces back to your hand.", def.DisplayName())
	default:
		c.Discard = append(c.Discard, ci)
	}
	cc.settle()
	return nil
}
