package engine

import (
	"github.com/Noty-chan/rogue-prison/internal/content"
	"github.com/Noty-chan/rogue-prison/internal/game"
)

// Answer is the player's response to a pending choice. Discard and take
// choices use CardUIDs (CardUID is accepted for single picks); choose_one
// uses OptionIndex.
type Answer struct {
	CardUIDs    []string `json:"card_uids,omitempty"`
	CardUID     string   `json:"card_uid,omitempty"`
	OptionIndex *int     `json:"option_index,omitempty"`
}

func (a Answer) uids() []string {
	if len(a.CardUIDs) > 0 {
		return a.CardUIDs
	}
	if a.CardUID != "" {
		return []string{a.CardUID}
	}
	return nil
}

// pickValid reports whether uids names exactly want distinct cards of zone.
func pickValid(uids []string, want int, zone []*game.CardInstance) bool {
	if len(uids) != want {
		return false
	}
	seen := make(map[string]bool, len(uids))
	for _, uid := range uids {
		if seen[uid] {
			return false
		}
		seen[uid] = true
		found := false
		for _, ci := range zone {
			if ci.UID == uid {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// resolvePending answers the pending choice and resumes the suspended card.
func (cc *combatContext) resolvePending(a Answer) error {
	c := cc.c
	pd := c.Pending
	if pd == nil {
		return rejection(MsgNoPending)
	}
	def, ok := cc.cat.Card(pd.Source.CardID, pd.Source.Upgraded)
	if !ok {
		return rejection(MsgUnknownCard)
	}
	cp := &cardPlay{
		ci:  &game.CardInstance{UID: pd.Source.UID, ID: def.ID, Upgraded: def.Upgraded},
		def: def,
	}
	if pd.Target != nil {
		if e := c.EnemyAt(*pd.Target); e != nil && e.Alive() {
			cp.target = e
		}
	}

	switch pd.Type {
	case game.PendingDiscardChoose:
		uids := a.uids()
		if !pickValid(uids, min(pd.N, len(c.Hand)), c.Hand) {
			return rejection(MsgBadSelection)
		}
		c.Pending = nil
		for _, uid := range uids {
			ci := c.RemoveFromHand(uid)
			cc.add("Discarded %s.", cc.cardName(ci))
			cc.discard(ci)
		}

	case game.PendingTakeFromDiscard:
		uids := a.uids()
		if !pickValid(uids, min(pd.N, len(c.Discard)), c.Discard) {
			return rejection(MsgBadSelection)
		}
		c.Pending = nil
		for _, uid := range uids {
			ci := c.RemoveFromDiscard(uid)
			ci.CostMod += pd.ReduceCost
			c.Hand = append(c.Hand, ci)
			cc.add("Took %s back into your hand.", cc.cardName(ci))
		}

	case game.PendingChooseOne:
		co, ok := content.FirstChooseOne(def.Effects)
		if !ok || a.OptionIndex == nil || *a.OptionIndex < 0 || *a.OptionIndex >= len(co.Options) {
			return rejection(MsgBadSelection)
		}
		opt := co.Options[*a.OptionIndex]
		c.Pending = nil
		cc.add("Chosen: %s.", opt.Label)
		cp.target = nil
		if cc.applyList(cp, opt.Effects) {
			c.Pending.Resume = len(def.Effects)
		}
		cc.settle()
		return nil

	default:
		return rejection(MsgBadSelection)
	}

	if pd.Resume > 0 && pd.Resume < len(def.Effects) {
		cc.resolveCard(cp, pd.Resume)
	}
	cc.settle()
	return nil
}

func (cc *combatContext) cardName(ci *game.CardInstance) string {
	if def := cc.cardDef(ci); def != nil {
		return def.DisplayName()
	}
	return ci.ID
}
