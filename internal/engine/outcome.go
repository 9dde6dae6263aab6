package engine

import (
	"github.com/Noty-chan/rogue-prison/internal/game"
	"github.com/Noty-chan/rogue-prison/internal/loot"
)

// Outcome is the combat result after an action.
type Outcome string

const (
	Ongoing Outcome = "ongoing"
	Won     Outcome = "won"
	Lost    Outcome = "lost"
)

// Base reward size before twist and relic bonuses.
const rewardCards = 3

// win closes the combat: hp carries back to the run, gold is paid and the
// card reward is rolled.
func (cc *combatContext) win() {
	if cc.over() {
		return
	}
	cc.fire(evWin)
	cc.outcome = Won
	run := cc.run
	run.HP = cc.player().HP

	gold := loot.CombatGold(ActForFloor(run.Floor), cc.src)
	k := rewardCards
	if tw := run.Twist; tw != nil {
		if tw.ExtraReward {
			k++
		}
		gold += tw.BonusGold
	}
	for _, id := range run.Relics {
		if rel, ok := cc.cat.Relic(id); ok {
			k += rel.RewardCards
			gold += rel.BonusGold
		}
	}
	cc.add("Victory! +%d gold.", gold)
	cards := loot.CardChoices(run, cc.cat, cc.src, k)
	run.Gold += gold
	run.Reward = &game.Reward{Cards: cards, Gold: gold}
	run.Combat = nil
}

func (cc *combatContext) lose() {
	if cc.over() {
		return
	}
	cc.fire(evLose)
	cc.outcome = Lost
	cc.add("You have fallen.")
	cc.run.HP = 0
	cc.run.Combat = nil
}

// settle ends the combat if either side is out of hp. A simultaneous wipe
// counts as a win.
func (cc *combatContext) settle() bool {
	switch {
	case cc.over():
		return true
	case cc.c.AllEnemiesDead():
		cc.win()
		return true
	case !cc.player().Alive():
		cc.lose()
		return true
	}
	return false
}
