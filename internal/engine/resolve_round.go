package engine

import (
	"github.com/Noty-chan/rogue-prison/internal/content"
	"github.com/Noty-chan/rogue-prison/internal/game"
	"github.com/Noty-chan/rogue-prison/internal/rng"
)

// overheatMult scales the next attack of an overheated enemy.
const overheatMult = 1.5

// endPlayerTurn runs the end-of-turn upkeep, the enemy turn and the start
// of the next player turn. Skipped player turns hand control straight back
// to the enemies.
func (cc *combatContext) endPlayerTurn() {
	cc.applyCursePenalties()
	cc.endOfTurnBuffs()
	cc.tickBurn(&cc.player().Combatant)
	if cc.settle() {
		return
	}
	cc.discardHand()
	cc.fire(evEndTurn)

	for {
		cc.enemyTurn()
		if cc.over() {
			return
		}
		if !cc.startPlayerTurn() {
			return
		}
	}
}

// applyCursePenalties fires every curse held in hand.
func (cc *combatContext) applyCursePenalties() {
	p := cc.player()
	for _, ci := range append([]*game.CardInstance(nil), cc.c.Hand...) {
		def := cc.cardDef(ci)
		if def == nil || !def.IsCurse() || def.Curse == nil {
			continue
		}
		pen := def.Curse
		if pen.LoseHP > 0 {
			p.LoseHP(pen.LoseHP)
			cc.add("%s: -%d HP.", def.Name, pen.LoseHP)
		}
		if pen.Status != "" && pen.Stacks > 0 {
			p.AddStatus(pen.Status, pen.Stacks)
			cc.add("%s: %s +%d.", def.Name, cc.statusName(pen.Status), pen.Stacks)
		}
		if pen.DrawPenalty > 0 {
			cc.c.DrawPenalty += pen.DrawPenalty
		}
	}
}

// endOfTurnBuffs spreads the player's aura buffs onto living enemies.
func (cc *combatContext) endOfTurnBuffs() {
	p := cc.player()
	spread := func(s game.Status, n int, label string) {
		if n <= 0 {
			return
		}
		for _, e := range cc.c.Living() {
			e.AddStatus(s, n)
		}
		cc.add("%s: %s +%d to all enemies.", label, cc.statusName(s), n)
	}
	if n := 2*p.BuffCount(game.BuffEclipse) + 3*p.BuffCount(game.BuffEclipsePlus); n > 0 {
		spread(game.StatusPoison, n, cc.buffName(game.BuffEclipse))
		spread(game.StatusBurn, n, cc.buffName(game.BuffEclipse))
	}
	spread(game.StatusBurn, p.BuffCount(game.BuffPhoenixHeart)+2*p.BuffCount(game.BuffPhoenixHeartPlus), cc.buffName(game.BuffPhoenixHeart))
	spread(game.StatusPoison, 2*p.BuffCount(game.BuffVenomRain)+3*p.BuffCount(game.BuffVenomRainPlus), cc.buffName(game.BuffVenomRain))
}

// discardHand discards everything except cards that stay in hand, which
// gain charge instead. Cards drawn by discard hooks stay in hand.
func (cc *combatContext) discardHand() {
	for _, ci := range append([]*game.CardInstance(nil), cc.c.Hand...) {
		def := cc.cardDef(ci)
		if def != nil && def.StaysInHand {
			ci.Charge += def.ChargePerTurn
			continue
		}
		cc.c.RemoveFromHand(ci.UID)
		cc.discard(ci)
	}
}

// enemyTurn ticks enemy poison, then lets every living enemy act in order.
func (cc *combatContext) enemyTurn() {
	c, p := cc.c, cc.player()
	for _, e := range c.Enemies {
		if e.Alive() {
			cc.tickPoison(&e.Combatant)
		}
	}
	if c.AllEnemiesDead() {
		cc.win()
		return
	}

	for _, e := range c.Enemies {
		if !e.Alive() {
			continue
		}
		if e.Status(game.StatusStun) > 0 {
			e.DecayStatus(game.StatusStun, 1)
			cc.add("%s is stunned.", e.Name)
			cc.chooseIntent(e)
			continue
		}
		if e.Status(game.StatusFreeze) > 0 && rng.Chance(cc.src, freezeSkipChance) {
			e.DecayStatus(game.StatusFreeze, 1)
			cc.add("%s is frozen and skips the turn.", e.Name)
			cc.chooseIntent(e)
			continue
		}

		m, ok := cc.move(e, e.NextMove)
		if !ok {
			cc.chooseIntent(e)
			m, ok = cc.move(e, e.NextMove)
		}
		if ok {
			e.LastMove = m.ID
			cc.execMove(e, m)
		} else {
			cc.add("%s does something strange.", e.Name)
		}

		if !p.Alive() {
			cc.lose()
			return
		}
		if !e.Alive() {
			if c.AllEnemiesDead() {
				cc.win()
				return
			}
			continue
		}
		cc.tickBurn(&e.Combatant)
		if !e.Alive() {
			if c.AllEnemiesDead() {
				cc.win()
				return
			}
			continue
		}
		cc.chooseIntent(e)
	}
	if c.AllEnemiesDead() {
		cc.win()
		return
	}

	for _, e := range c.Enemies {
		e.Block = 0
	}
	cc.fire(evEnemyDone)
}

// execMove performs one enemy move against the player.
func (cc *combatContext) execMove(e *game.Enemy, m content.Move) {
	p := cc.player()
	switch a := m.Action.(type) {
	case content.Attack:
		cc.enemyAttack(e, m, a.Damage)
		cc.tickBleed(&e.Combatant)

	case content.AttackApply:
		cc.enemyAttack(e, m, a.Damage)
		if n := e.WithBonus(a.Status, a.Stacks); p.AddStatus(a.Status, n) {
			cc.add("%s: %s +%d.", e.Name, cc.statusName(a.Status), n)
		}
		cc.tickBleed(&e.Combatant)

	case content.Inflict:
		n := e.WithBonus(a.Status, a.Stacks)
		p.AddStatus(a.Status, n)
		cc.add("%s - %s: %s +%d.", e.Name, m.Name, cc.statusName(a.Status), n)

	case content.InflictAll:
		n := e.WithBonus(a.Status, a.Stacks)
		p.AddStatus(a.Status, n)
		cc.add("%s - %s: %s +%d.", e.Name, m.Name, cc.statusName(a.Status), n)

	case content.Fortify:
		e.Block += a.Block
		cc.add("%s - %s: +%d Block.", e.Name, m.Name, a.Block)

	case content.Mend:
		healed := e.Heal(a.Amount)
		cc.add("%s - %s: +%d HP.", e.Name, m.Name, healed)

	case content.PhaseShift:
		e.PhaseTag = a.Phase
		e.Block += a.Block
		if a.Buff != "" {
			e.AddBuff(a.Buff, 1)
		}
		if a.DmgMult != 0 {
			e.DmgMult = a.DmgMult
		}
		if a.Boost != nil {
			e.BoostStatus(a.Boost.Status, a.Boost.Bonus)
		}
		cc.add("%s - %s: the fight changes.", e.Name, m.Name)

	case content.CounterPrep:
		e.Block += a.Block
		e.Counter = &game.Counter{Name: m.Name, Damage: a.Damage, Status: a.Status, Stacks: a.Stacks}
		cc.add("%s - %s: readies a counter.", e.Name, m.Name)

	case content.SelfDebuff:
		e.Overheat = true
		e.Block = 0
		cc.add("%s - %s: it overheats.", e.Name, m.Name)

	default:
		cc.add("%s does something strange.", e.Name)
	}
}

func (cc *combatContext) enemyAttack(e *game.Enemy, m content.Move, dmg int) {
	if e.Overheat {
		e.Overheat = false
		dmg = roundHalfEven(float64(dmg) * overheatMult)
	}
	cc.dealDamage(&e.Combatant, &cc.player().Combatant, dmg, false, e.Name+" - "+m.Name)
}
