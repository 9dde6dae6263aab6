package view

import (
	"fmt"

	"github.com/Noty-chan/rogue-prison/internal/content"
	"github.com/Noty-chan/rogue-prison/internal/game"
)

// Summary is the small content digest sent with every state.
type Summary struct {
	Rarities  []content.Rarity             `json:"rarities"`
	CardTypes []content.CardType           `json:"card_types"`
	Statuses  map[game.Status]content.Info `json:"statuses"`
	Buffs     map[game.Buff]content.Info   `json:"buffs"`
	Curses    map[string]content.Info      `json:"curses"`
	Relics    map[string]content.Info      `json:"relics"`
	CritBase  float64                      `json:"crit_base"`
}

var cardTypes = []content.CardType{
	content.TypeAttack, content.TypeDefense, content.TypeSkill, content.TypeUpgrade, content.TypeCurse,
}

func summarize(cat *content.Catalog) Summary {
	s := Summary{
		Rarities:  content.Rarities,
		CardTypes: cardTypes,
		Statuses:  make(map[game.Status]content.Info, len(game.Statuses)),
		Buffs:     map[game.Buff]content.Info{},
		Curses:    map[string]content.Info{},
		Relics:    map[string]content.Info{},
		CritBase:  game.BaseCrit,
	}
	for _, st := range game.Statuses {
		s.Statuses[st] = cat.StatusInfo(st)
	}
	for _, b := range cat.BuffIDs() {
		s.Buffs[b] = cat.BuffInfo(b)
	}
	for _, id := range cat.Curses() {
		if def, ok := cat.Card(id, false); ok {
			s.Curses[id] = content.Info{Name: def.Name, Desc: def.Desc}
		}
	}
	for _, r := range cat.Relics() {
		s.Relics[r.ID] = content.Info{Name: r.Name, Desc: r.Desc}
	}
	return s
}

// CodexEntry pairs a card with its upgraded form. Curses have no upgrade
// and repeat the base.
type CodexEntry struct {
	Base Card `json:"base"`
	Up   Card `json:"up"`
}

type CodexDoc struct {
	Cards     []CodexEntry                 `json:"cards"`
	Rarities  []content.Rarity             `json:"rarities"`
	CardTypes []content.CardType           `json:"card_types"`
	Statuses  map[game.Status]content.Info `json:"statuses"`
	Buffs     map[game.Buff]content.Info   `json:"buffs"`
	Relics    []content.RelicDef           `json:"relics"`
}

// Codex lists every card, both forms, with the rest of the reference
// content.
func Codex(cat *content.Catalog) *CodexDoc {
	sum := summarize(cat)
	doc := &CodexDoc{
		Rarities:  sum.Rarities,
		CardTypes: sum.CardTypes,
		Statuses:  sum.Statuses,
		Buffs:     sum.Buffs,
		Relics:    cat.Relics(),
	}
	for _, id := range cat.CardIDs() {
		base, ok := cat.Card(id, false)
		if !ok {
			continue
		}
		if base.IsCurse() {
			doc.Cards = append(doc.Cards, CodexEntry{Base: cardOf(base), Up: cardOf(base)})
			continue
		}
		up, _ := cat.Card(id, true)
		doc.Cards = append(doc.Cards, CodexEntry{Base: cardOf(base), Up: cardOf(up)})
	}
	return doc
}

var roomLabels = map[game.RoomType]string{
	game.RoomFight:    "FIGHT",
	game.RoomElite:    "ELITE",
	game.RoomEvent:    "EVENT",
	game.RoomShop:     "SHOP",
	game.RoomCampfire: "CAMPFIRE",
	game.RoomChest:    "CHEST",
}

var roomHints = map[game.RoomType]string{
	game.RoomFight:    "The smell of metal and magic.",
	game.RoomElite:    "Heavy footsteps. Laughter like a creaking hinge.",
	game.RoomEvent:    "Chance in a prison is always somebody's work.",
	game.RoomShop:     "Everything is for sale here except freedom.",
	game.RoomCampfire: "A fire without smoke. And without questions.",
	game.RoomChest:    "Click. Dust. Possibly teeth.",
	game.RoomBoss:     "A huge door. Behind it, the accounting of pain.",
}

// RoomLabel returns the map caption and flavour line of a room type.
func RoomLabel(rt game.RoomType, act int) (string, string) {
	label, ok := roomLabels[rt]
	if rt == game.RoomBoss {
		label, ok = fmt.Sprintf("BOSS OF ACT %d", act), true
	}
	if !ok {
		label = string(rt)
	}
	hint, ok := roomHints[rt]
	if !ok {
		hint = "..."
	}
	return label, hint
}
