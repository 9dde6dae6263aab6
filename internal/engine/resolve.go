package engine

import (
	"github.com/Noty-chan/rogue-prison/internal/content"
	"github.com/Noty-chan/rogue-prison/internal/game"
)

// cardPlay is the source of an effect list: the played instance, its
// definition and the enemy it was aimed at (nil when untargeted).
type cardPlay struct {
	ci     *game.CardInstance
	def    *content.CardDef
	target *game.Enemy
}

// resolveCard runs the card's top-level effects starting at index from.
// A top-level choose_one suspends the whole card before anything else
// runs. It reports whether a pending choice now blocks the combat.
func (cc *combatContext) resolveCard(cp *cardPlay, from int) bool {
	effects := cp.def.Effects
	if from == 0 {
		if co, ok := content.FirstChooseOne(effects); ok {
			labels := make([]string, 0, len(co.Options))
			for _, o := range co.Options {
				labels = append(labels, o.Label)
			}
			cc.install(cp, &game.Pending{Type: game.PendingChooseOne, Options: labels, Resume: len(effects)})
			cc.add("Choose an effect for %s.", cp.def.Name)
			return true
		}
	}
	for i := from; i < len(effects); i++ {
		if cc.apply(cp, effects[i]) {
			cc.c.Pending.Resume = i + 1
			return true
		}
	}
	return false
}

// applyList runs a nested list. A pending choice inside it abandons the
// rest of the list.
func (cc *combatContext) applyList(cp *cardPlay, list []content.Effect) bool {
	for _, e := range list {
		if cc.apply(cp, e) {
			return true
		}
	}
	return false
}

func (cc *combatContext) install(cp *cardPlay, pd *game.Pending) {
	pd.Source = game.PendingSource{UID: cp.ci.UID, CardID: cp.def.ID, Upgraded: cp.def.Upgraded}
	if cp.target != nil {
		if i := cc.targetIndex(cp.target); i >= 0 {
			pd.Target = intPtr(i)
		}
	}
	cc.c.Pending = pd
}

// apply executes one effect and reports whether it installed a pending
// choice.
func (cc *combatContext) apply(cp *cardPlay, eff content.Effect) bool {
	p := cc.player()
	name := cp.def.Name
	switch e := eff.(type) {
	case content.Damage:
		if cp.target == nil {
			return false
		}
		base := e.Amount.Base
		if e.Amount.PlusCharge {
			base += cp.ci.Charge
		}
		_, crit := cc.dealDamage(&p.Combatant, &cp.target.Combatant, base, !e.NoCrit, name)
		if crit && len(e.OnCrit) > 0 && cc.applyList(cp, e.OnCrit) {
			return true
		}
		if burn := p.BuffCount(game.BuffBurnOnHit) + 2*p.BuffCount(game.BuffBurnOnHit2); burn > 0 {
			cp.target.AddStatus(game.StatusBurn, burn)
		}
		if echo := p.BuffCount(game.BuffEchoAttackHalf); echo > 0 {
			p.ClearBuff(game.BuffEchoAttackHalf)
			half := max(0, base) / 2
			for i := 0; i < echo; i++ {
				cc.dealDamage(&p.Combatant, &cp.target.Combatant, half, false, name+" (echo)")
			}
		}
		return false

	case content.AOEDamage:
		for _, en := range cc.c.Enemies {
			if !en.Alive() {
				continue
			}
			dmg := e.Amount
			for _, s := range e.BonusIf {
				if en.Status(s) > 0 {
					dmg += e.Bonus
					break
				}
			}
			cc.dealDamage(&p.Combatant, &en.Combatant, dmg, true, name)
		}

	case content.GainBlock:
		p.Block += e.Amount
		cc.add("%s: +%d Block.", name, e.Amount)

	case content.ApplyStatus:
		switch e.To {
		case content.ToEnemy:
			if cp.target != nil {
				cp.target.AddStatus(e.Status, e.Stacks)
			}
		case content.ToAllEnemies:
			for _, en := range cc.c.Living() {
				en.AddStatus(e.Status, e.Stacks)
			}
		case content.ToSelf:
			p.AddStatus(e.Status, e.Stacks)
		}
		cc.add("%s: %s +%d.", name, cc.statusName(e.Status), e.Stacks)

	case content.Draw:
		cc.draw(e.N)
		cc.add("%s: draw %d.", name, e.N)

	case content.GainMana:
		p.Mana += e.N
		cc.add("%s: +%d mana.", name, e.N)

	case content.GainMaxMana:
		p.ManaMax += e.N
		p.Mana += e.N
		cc.add("%s: +%d max mana this combat.", name, e.N)

	case content.Heal:
		p.Heal(e.Amount)
		cc.add("%s: +%d HP.", name, e.Amount)

	case content.LoseHP:
		p.LoseHP(e.Amount)
		cc.add("%s: -%d HP.", name, e.Amount)

	case content.HealPerEnemy:
		amt := e.Amount * cc.livingCount()
		p.Heal(amt)
		cc.add("%s: +%d HP.", name, amt)

	case content.DiscardChoose:
		if len(cc.c.Hand) == 0 {
			cc.add("%s: nothing to discard.", name)
			return false
		}
		cc.install(cp, &game.Pending{Type: game.PendingDiscardChoose, N: e.N})
		cc.add("Choose %d card(s) to discard.", min(e.N, len(cc.c.Hand)))
		return true

	case content.DiscardRandom:
		cc.discardRandom(e.N)
		cc.add("%s: discarded %d at random.", name, e.N)

	case content.TakeFromDiscard:
		if len(cc.c.Discard) == 0 {
			cc.add("%s: the discard pile is empty.", name)
			return false
		}
		cc.install(cp, &game.Pending{Type: game.PendingTakeFromDiscard, N: e.N, ReduceCost: e.ReduceCost})
		cc.add("Choose %d card(s) from the discard pile.", min(e.N, len(cc.c.Discard)))
		return true

	case content.AddBuff:
		p.AddBuff(e.Buff, 1)
		cc.add("%s: %s.", name, cc.buffName(e.Buff))
		switch e.Buff {
		case game.BuffBattery:
			p.ManaMax += 2
			p.Mana += 2
		case game.BuffBatteryPlus:
			p.ManaMax += 3
			p.Mana += 3
		}

	case content.IfHandHasTag:
		if cc.handHasTag(e.Tag) {
			return cc.applyList(cp, e.Then)
		}

	case content.IfEnemyHPBelow:
		if cp.target != nil && cp.target.MaxHP > 0 && cp.target.HPFraction() < e.Pct {
			return cc.applyList(cp, e.Then)
		}

	case content.DetonateDoTs:
		if cp.target == nil {
			return false
		}
		total := 0
		for _, s := range e.Statuses {
			total += cp.target.Status(s)
			cp.target.SetStatus(s, 0)
		}
		if dmg := roundHalfEven(float64(total) * e.Mult); dmg > 0 {
			cc.dealDamage(&p.Combatant, &cp.target.Combatant, dmg, false, name)
		}

	case content.ChooseOne:
		// Only a top-level choose_one can suspend a card.
		cc.add("%s: nested choice ignored.", name)

	case content.Combo:
		return cc.applyList(cp, e.Steps)
	}
	return false
}
