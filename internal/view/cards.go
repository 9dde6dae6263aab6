package view

import (
	"github.com/Noty-chan/rogue-prison/internal/content"
	"github.com/Noty-chan/rogue-prison/internal/engine"
	"github.com/Noty-chan/rogue-prison/internal/game"
)

// Card is the client shape of a card definition, optionally bound to an
// owned instance.
type Card struct {
	UID           string                `json:"uid,omitempty"`
	ID            string                `json:"id"`
	Upgraded      bool                  `json:"up"`
	Name          string                `json:"name"`
	Rarity        content.Rarity        `json:"rarity"`
	Type          content.CardType      `json:"type"`
	Cost          int                   `json:"cost"`
	Desc          string                `json:"desc"`
	Target        content.TargetMode    `json:"target"`
	Tags          []string              `json:"tags"`
	Exhaust       bool                  `json:"exhaust"`
	StaysInHand   bool                  `json:"stays_in_hand"`
	ChargePerTurn int                   `json:"charge_per_turn"`
	Curse         *content.CursePenalty `json:"curse,omitempty"`
}

// HandCard adds the in-combat numbers the client shows on a card in hand.
type HandCard struct {
	Card
	EffCost    int  `json:"eff_cost"`
	Charge     int  `json:"charge"`
	DmgPreview *int `json:"dmg_preview"`
}

func cardOf(def *content.CardDef) Card {
	tags := def.Tags
	if tags == nil {
		tags = []string{}
	}
	return Card{
		ID:            def.ID,
		Upgraded:      def.Upgraded,
		Name:          def.DisplayName(),
		Rarity:        def.Rarity,
		Type:          def.Type,
		Cost:          def.Cost,
		Desc:          def.Desc,
		Target:        def.Target,
		Tags:          tags,
		Exhaust:       def.Exhaust,
		StaysInHand:   def.StaysInHand,
		ChargePerTurn: def.ChargePerTurn,
		Curse:         def.Curse,
	}
}

// instanceCard resolves an owned card. Unknown ids project as a bare stub
// so one stale card never hides the rest of the deck.
func instanceCard(cat *content.Catalog, ci *game.CardInstance) (Card, *content.CardDef) {
	def, ok := cat.Card(ci.ID, ci.Upgraded)
	if !ok {
		return Card{UID: ci.UID, ID: ci.ID, Upgraded: ci.Upgraded, Name: ci.ID, Tags: []string{}}, nil
	}
	v := cardOf(def)
	v.UID = ci.UID
	return v, def
}

func cards(cat *content.Catalog, list []*game.CardInstance) []Card {
	out := make([]Card, 0, len(list))
	for _, ci := range list {
		v, _ := instanceCard(cat, ci)
		out = append(out, v)
	}
	return out
}

func handCard(cat *content.Catalog, ci *game.CardInstance) HandCard {
	v, def := instanceCard(cat, ci)
	hc := HandCard{Card: v, Charge: ci.Charge}
	if def != nil {
		hc.EffCost = engine.CardCost(def, ci)
		hc.DmgPreview = PreviewDamage(def, ci)
	}
	return hc
}

// PreviewDamage sums the flat top-level damage of an attack or skill,
// charge included. It ignores crits, statuses and nested effects, and
// returns nil when there is nothing to show.
func PreviewDamage(def *content.CardDef, ci *game.CardInstance) *int {
	if def.Type != content.TypeAttack && def.Type != content.TypeSkill {
		return nil
	}
	total := 0
	for _, eff := range def.Effects {
		switch e := eff.(type) {
		case content.Damage:
			total += e.Amount.Base
			if e.Amount.PlusCharge {
				total += ci.Charge
			}
		case content.AOEDamage:
			total += e.Amount
		}
	}
	if total <= 0 {
		return nil
	}
	return &total
}
