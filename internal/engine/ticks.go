package engine

import "github.com/Noty-chan/rogue-prison/internal/game"

// tickPoison deals poison damage ignoring block, then decays it by one.
// While the player holds a venom buff no poison decays, on either side.
func (cc *combatContext) tickPoison(x *game.Combatant) {
	s := x.Status(game.StatusPoison)
	if s <= 0 {
		return
	}
	x.LoseHP(s)
	cc.add("%s: poison deals %d.", x.Name, s)
	p := cc.player()
	if p.HasBuff(game.BuffPoisonNoDecay) || p.HasBuff(game.BuffVenomRain) || p.HasBuff(game.BuffVenomRainPlus) {
		return
	}
	x.DecayStatus(game.StatusPoison, 1)
}

// tickBurn deals burn damage ignoring block. burn_boost adds its stacks to
// enemy burn and halves the decay rate.
func (cc *combatContext) tickBurn(x *game.Combatant) {
	s := x.Status(game.StatusBurn)
	if s <= 0 {
		return
	}
	e := cc.enemyOf(x)
	boost := 0
	if e != nil {
		boost = cc.player().BuffCount(game.BuffBurnBoost)
	}
	x.LoseHP(s + boost)
	cc.add("%s: burn deals %d.", x.Name, s+boost)
	if boost > 0 {
		if !e.BurnHeld {
			e.BurnHeld = true
			return
		}
		e.BurnHeld = false
	}
	x.DecayStatus(game.StatusBurn, 1)
}

// tickBleed fires after the bearer attacks.
func (cc *combatContext) tickBleed(x *game.Combatant) {
	s := x.Status(game.StatusBleed)
	if s <= 0 {
		return
	}
	x.LoseHP(s)
	x.DecayStatus(game.StatusBleed, 1)
	cc.add("%s: bleed deals %d.", x.Name, s)
}
