package engine

import (
	"github.com/Noty-chan/rogue-prison/internal/game"
	"github.com/Noty-chan/rogue-prison/internal/rng"
)

// draw moves up to n cards to the hand, stopping at the hand cap. An empty
// draw pile is refilled by shuffling the discard pile.
func (cc *combatContext) draw(n int) int {
	c := cc.c
	drawn := 0
	for i := 0; i < n; i++ {
		if len(c.Hand) >= game.HandCap {
			break
		}
		if len(c.Draw) == 0 {
			if len(c.Discard) == 0 {
				break
			}
			c.Draw, c.Discard = c.Discard, nil
			cc.src.Shuffle(len(c.Draw), func(i, j int) { c.Draw[i], c.Draw[j] = c.Draw[j], c.Draw[i] })
			cc.add("Discard pile shuffled into the draw pile.")
		}
		last := len(c.Draw) - 1
		c.Hand = append(c.Hand, c.Draw[last])
		c.Draw = c.Draw[:last]
		drawn++
	}
	return drawn
}

// discard sends a card that already left the hand to the discard pile and
// fires the on-discard buffs.
func (cc *combatContext) discard(ci *game.CardInstance) {
	ci.Charge = 0
	cc.c.Discard = append(cc.c.Discard, ci)
	cc.triggerOnDiscard()
}

func (cc *combatContext) discardRandom(n int) {
	for i := 0; i < n && len(cc.c.Hand) > 0; i++ {
		ci := rng.Pick(cc.src, cc.c.Hand)
		cc.c.RemoveFromHand(ci.UID)
		cc.discard(ci)
	}
}

func (cc *combatContext) triggerOnDiscard() {
	p := cc.player()
	if n := p.BuffCount(game.BuffManaOnDiscard); n > 0 {
		p.Mana += n
		cc.add("Discard: +%d mana.", n)
	}
	if n := p.BuffCount(game.BuffManaBlockOnDiscard); n > 0 {
		p.Mana += n
		p.Block += n
		cc.add("Discard: +%d mana, +%d Block.", n, n)
	}
	if n := p.BuffCount(game.BuffDrawOnDiscard); n > 0 {
		cc.draw(n)
		cc.add("Discard: draw %d.", n)
	}
	if n := p.BuffCount(game.BuffDrawBlockOnDiscard); n > 0 {
		cc.draw(n)
		p.Block += n
		cc.add("Discard: draw %d, +%d Block.", n, n)
	}
}
