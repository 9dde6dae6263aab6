package engine

import (
	"github.com/Noty-chan/rogue-prison/internal/content"
	"github.com/Noty-chan/rogue-prison/internal/game"
)

// handHasTag reports whether any card in hand carries the tag.
func (cc *combatContext) handHasTag(tag string) bool {
	for _, ci := range cc.c.Hand {
		if def := cc.cardDef(ci); def != nil && def.HasTag(tag) {
			return true
		}
	}
	return false
}

func (cc *combatContext) livingCount() int {
	return len(cc.c.Living())
}

// targetIndex returns the index of an enemy, or -1.
func (cc *combatContext) targetIndex(e *game.Enemy) int {
	for i, x := range cc.c.Enemies {
		if x == e {
			return i
		}
	}
	return -1
}

func (cc *combatContext) move(e *game.Enemy, id string) (content.Move, bool) {
	def, ok := cc.cat.Enemy(e.DefID)
	if !ok {
		return content.Move{}, false
	}
	return def.Move(id)
}

func intPtr(v int) *int { return &v }
