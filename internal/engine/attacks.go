package engine

import (
	"math"

	"github.com/Noty-chan/rogue-prison/internal/game"
)

const (
	arcaneChargeMult  = 1.15
	overdriveBase     = 1.10
	overdrivePerStack = 0.05
	overdrivePierce   = 0.25
)

// dealDamage runs one hit through the full pipeline: crit, attacker
// multipliers, weak/freeze/vulnerable, block, thorns, reflect and counter.
// It returns the hp actually lost by the defender.
func (cc *combatContext) dealDamage(att, def *game.Combatant, base int, allowCrit bool, source string) (taken int, crit bool) {
	dmg := base
	if allowCrit && cc.isPlayer(att) {
		p := cc.player()
		if cc.src.Float64() < CritChance(p) {
			crit = true
			dmg = roundHalfEven(float64(dmg) * CritMultiplier(p))
		}
	}

	if e := cc.enemyOf(att); e != nil {
		if m := e.Multiplier(); m != 1 {
			dmg = roundHalfEven(float64(dmg) * m)
		}
	}
	if att.BuffCount(game.BuffArcaneCharge) > 0 {
		dmg = roundHalfEven(float64(dmg) * arcaneChargeMult)
		att.ConsumeBuff(game.BuffArcaneCharge, 1)
	}
	pierce := 0.0
	if n := att.BuffCount(game.BuffArcaneOverdrive); n > 0 {
		dmg = roundHalfEven(float64(dmg) * (overdriveBase + overdrivePerStack*float64(n)))
		pierce = overdrivePierce
	}

	incoming := mitigate(att, def, dmg)

	block := def.Block
	effBlock := int(math.Floor(float64(block) * (1 - pierce)))
	taken = max(0, incoming-effBlock)
	def.Block = max(0, block-incoming)
	def.LoseHP(taken)

	if th := def.Status(game.StatusThorns); th > 0 && taken > 0 && att != def {
		att.LoseHP(th)
		cc.add("Thorns: %d damage back.", th)
	}

	if cc.isPlayer(def) && incoming > 0 {
		half := def.BuffCount(game.BuffReflectHalf1Turn)
		full := def.BuffCount(game.BuffReflectFull1Turn)
		if half > 0 || full > 0 {
			mult := 0.5 * float64(half)
			if full > 0 {
				mult = 1
			}
			if r := int(math.Floor(float64(incoming) * mult)); r > 0 && att != def {
				att.LoseHP(r)
				cc.add("Mirror ward reflects %d damage.", r)
			}
		}
	}

	if source != "" {
		if crit {
			cc.add("%s: %d (CRIT!)", source, incoming)
		} else {
			cc.add("%s: %d", source, incoming)
		}
	}

	if cc.isPlayer(att) {
		if e := cc.enemyOf(def); e != nil && e.Counter != nil {
			ctr := e.Counter
			e.Counter = nil
			if e.Alive() {
				if ctr.Damage > 0 {
					cc.dealDamage(def, att, ctr.Damage, false, e.Name+" - "+ctr.Name)
				}
				if ctr.Status != "" && ctr.Stacks > 0 {
					att.AddStatus(ctr.Status, ctr.Stacks)
				}
				cc.add("%s strikes back: %s.", e.Name, ctr.Name)
			}
		}
	}
	return taken, crit
}
