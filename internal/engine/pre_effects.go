package engine

import (
	"github.com/Noty-chan/rogue-prison/internal/game"
	"github.com/Noty-chan/rogue-prison/internal/rng"
)

// freezeSkipChance is the chance that a frozen combatant loses its turn.
const freezeSkipChance = 0.30

// startPlayerTurn runs the start-of-turn upkeep. It reports whether the
// turn was skipped by stun or freeze, in which case the enemies act again.
func (cc *combatContext) startPlayerTurn() (skipped bool) {
	c, p := cc.c, cc.player()
	c.Turn++
	p.ClearBuff(game.BuffReflectHalf1Turn)
	p.ClearBuff(game.BuffReflectFull1Turn)
	p.Block = 0

	cc.tickPoison(&p.Combatant)
	if !p.Alive() {
		cc.lose()
		return false
	}

	if p.Status(game.StatusStun) > 0 {
		p.DecayStatus(game.StatusStun, 1)
		cc.add("You are stunned and lose the turn.")
		cc.fire(evSkipTurn)
		return true
	}
	if p.Status(game.StatusFreeze) > 0 && rng.Chance(cc.src, freezeSkipChance) {
		p.DecayStatus(game.StatusFreeze, 1)
		cc.add("You are frozen solid and lose the turn.")
		cc.fire(evSkipTurn)
		return true
	}

	p.Mana = p.ManaMax
	if bonus := p.BuffCount(game.BuffBattery) + p.BuffCount(game.BuffBatteryPlus); bonus > 0 {
		p.Mana += bonus
		cc.add("Battery: +%d mana.", bonus)
	}
	cc.regenerate()

	if ward := 2*p.BuffCount(game.BuffWardSmall) + 3*p.BuffCount(game.BuffWardMedium); ward > 0 {
		p.Block += ward
		cc.add("Ward: +%d Block.", ward)
	}

	penalty := c.DrawPenalty
	c.DrawPenalty = 0
	if penalty > 0 {
		cc.add("A curse clouds your mind: draw %d fewer.", penalty)
	}
	cc.draw(max(0, game.HandCap-len(c.Hand)-penalty))

	if !p.Alive() {
		cc.lose()
		return false
	}
	for _, e := range c.Living() {
		if e.Intent == nil {
			cc.chooseIntent(e)
		}
	}
	return false
}

// regenerate applies the heal-over-time buffs.
func (cc *combatContext) regenerate() {
	p := cc.player()
	heal := 2*p.BuffCount(game.BuffRegenSmall) +
		3*p.BuffCount(game.BuffRegenMedium) +
		4*p.BuffCount(game.BuffRegenGuard) +
		5*p.BuffCount(game.BuffRegenGuardPlus) +
		6*p.BuffCount(game.BuffPhoenixHeart) +
		7*p.BuffCount(game.BuffPhoenixHeartPlus)
	block := 2*p.BuffCount(game.BuffRegenGuard) + 3*p.BuffCount(game.BuffRegenGuardPlus)
	if heal > 0 {
		cc.add("Regeneration: +%d HP.", p.Heal(heal))
	}
	if block > 0 {
		p.Block += block
		cc.add("Guarded regeneration: +%d Block.", block)
	}
}
