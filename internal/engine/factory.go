package engine

import (
	"github.com/Noty-chan/rogue-prison/internal/content"
	"github.com/Noty-chan/rogue-prison/internal/game"
	"github.com/Noty-chan/rogue-prison/internal/rng"
)

// Encounter roll thresholds.
const (
	eliteSoloChance = 0.70
	eliteEscortMult = 0.85
	singleChance    = 0.45
	pairChance      = 0.75
	minEnemyHP      = 10
)

// StartCombat builds a fresh combat for the room and attaches it to the
// run. Boss floors always produce the act boss.
func StartCombat(run *game.Run, cat *content.Catalog, src rng.Source, room game.RoomType) *game.Combat {
	if IsBossFloor(run.Floor) {
		room = game.RoomBoss
	}
	scale := EnemyScale(run)
	var enemies []*game.Enemy
	switch room {
	case game.RoomBoss:
		enemies = append(enemies, newEnemy(cat.Boss(run.Act), scale))
	case game.RoomElite:
		if rng.Chance(src, eliteSoloChance) {
			enemies = append(enemies, newEnemy(rng.Pick(src, cat.Elites()), scale))
		} else {
			enemies = append(enemies,
				newEnemy(rng.Pick(src, cat.Elites()), scale*eliteEscortMult),
				newEnemy(rng.Pick(src, cat.Enemies()), scale*eliteEscortMult),
			)
		}
	default:
		n := 3
		if rng.Chance(src, singleChance) {
			n = 1
		} else if rng.Chance(src, pairChance) {
			n = 2
		}
		pool := cat.EnemyPool(MaxEnemyTier(run.Floor, run.Loop))
		for i := 0; i < n; i++ {
			enemies = append(enemies, newEnemy(rng.Pick(src, pool), scale))
		}
	}

	c := &game.Combat{
		Turn:  1,
		Phase: game.PhasePlayer,
		Player: &game.Player{
			Combatant: game.Combatant{Name: "You", HP: run.HP, MaxHP: run.MaxHP},
			Mana:      game.BaseMana,
			ManaMax:   game.BaseMana,
			Crit:      game.BaseCrit,
		},
		Enemies: enemies,
		Hand:    []*game.CardInstance{},
		Discard: []*game.CardInstance{},
		Exhaust: []*game.CardInstance{},
		Log:     []string{},
	}
	for _, ci := range run.Deck {
		c.Draw = append(c.Draw, ci.CombatCopy())
	}
	src.Shuffle(len(c.Draw), func(i, j int) { c.Draw[i], c.Draw[j] = c.Draw[j], c.Draw[i] })
	run.Combat = c

	cc := newCombatContext(run, cat, src)
	cc.applyRelics()
	for _, e := range enemies {
		cc.chooseIntent(e)
	}
	cc.draw(game.CombatDraw)
	cc.applyTwist()
	cc.add("Floor %d, act %d. Fight!", run.Floor, run.Act)
	return c
}

func newEnemy(def *content.EnemyDef, scale float64) *game.Enemy {
	hp := max(minEnemyHP, roundHalfEven(float64(def.MaxHP)*scale))
	return &game.Enemy{
		Combatant: game.Combatant{
			Name:       def.Name,
			HP:         hp,
			MaxHP:      hp,
			Statuses:   map[game.Status]int{},
			Buffs:      map[game.Buff]int{},
			Immunities: append([]game.Status(nil), def.Immune...),
		},
		DefID:    def.ID,
		Tier:     def.Tier,
		PhaseTag: def.Phase,
	}
}

func (cc *combatContext) applyRelics() {
	p := cc.player()
	for _, id := range cc.run.Relics {
		rel, ok := cc.cat.Relic(id)
		if !ok {
			continue
		}
		cs := rel.CombatStart
		p.ManaMax += cs.ManaMax
		p.Mana += cs.Mana
		p.Heal(cs.Heal)
		for _, g := range cs.Buffs {
			p.AddBuff(g.Buff, g.Stacks)
		}
		if cs.Log != "" {
			cc.add("%s", cs.Log)
		}
	}
}

func (cc *combatContext) applyTwist() {
	tw := cc.run.Twist
	if tw == nil {
		return
	}
	p := cc.player()
	if tw.PoisonOnStart > 0 {
		p.AddStatus(game.StatusPoison, tw.PoisonOnStart)
		for _, e := range cc.c.Enemies {
			e.AddStatus(game.StatusPoison, tw.PoisonOnStart)
		}
		cc.add("%s: everyone starts poisoned.", tw.Name)
	}
	if tw.StartReflect {
		p.AddBuff(game.BuffReflectHalf1Turn, 1)
		cc.add("%s: a mirror ward shields you this turn.", tw.Name)
	}
}
