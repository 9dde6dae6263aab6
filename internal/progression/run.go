package progression

import (
	"github.com/Noty-chan/rogue-prison/internal/engine"
	"github.com/Noty-chan/rogue-prison/internal/game"
	"github.com/Noty-chan/rogue-prison/internal/rng"
)

// StarterDeck is the ten-card opening deck.
var StarterDeck = []string{
	"ARCANE_JAB", "ARCANE_JAB",
	"GUARD_SIGIL", "GUARD_SIGIL",
	"SPARK_SHOT", "SIDESTEP_GLYPH", "FOCUS", "MANA_DRIP", "RUNE_SLASH", "CHAIN_PULL",
}

// Inherited cards replace these starters, one each.
var inheritReplaces = []string{"SPARK_SHOT", "SIDESTEP_GLYPH", "MANA_DRIP"}

const (
	StarterRelic   = "STARTER_SEAL"
	inheritSlots   = 3
	inheritOptions = 5
	padCard        = "ARCANE_JAB"
)

// newRunOrInherit offers the inheritance screen when a previous deck is on
// record and starts a fresh run otherwise.
func (s *step) newRunOrInherit() error {
	if len(s.st.Meta.LastDeck) > 0 {
		s.startInherit()
		return nil
	}
	s.newRun(nil)
	return nil
}

func (s *step) newRun(keep []game.DeckEntry) {
	st := s.st
	run := &game.Run{
		ID:         game.NewUID("run"),
		Seed:       s.d.seed(),
		StartedAt:  s.now,
		Difficulty: st.Settings.Difficulty,
		Floor:      1,
		Act:        1,
		Gold:       game.StartGold,
		HP:         game.StartHP,
		MaxHP:      game.StartHP,
		Relics:     []string{StarterRelic},
	}
	for _, id := range StarterDeck {
		run.AddCard(id, false)
	}
	if len(keep) > 0 {
		inheritInto(run, keep)
	}
	st.Run = run
	st.Inherit = nil
	run.PathMap = BuildPathMap(s.rng())
	run.RoomChoices = RoomChoices(run)
	st.Screen = game.ScreenMap
	s.toast("A new run begins. The prison is waiting.")
}

// inheritInto swaps up to three weak starters for the inherited cards and
// keeps the deck at its starting size.
func inheritInto(run *game.Run, keep []game.DeckEntry) {
	removed := 0
	for _, id := range inheritReplaces {
		for _, ci := range run.Deck {
			if ci.ID == id {
				run.RemoveCard(ci.UID)
				removed++
				break
			}
		}
	}
	for i, e := range keep {
		if i == inheritSlots {
			break
		}
		run.AddCard(e.ID, e.Upgraded)
	}
	for len(run.Deck) < game.DeckSize {
		run.AddCard(padCard, false)
	}
	if len(run.Deck) > game.DeckSize {
		run.Deck = run.Deck[:game.DeckSize]
	}
}

// startInherit offers three slots of five cards sampled from the last deck.
// The offer is seeded from the clock so it does not depend on any run.
func (s *step) startInherit() {
	st := s.st
	src := rng.New(s.now, 0)
	in := &game.Inherit{}
	for slot := 0; slot < inheritSlots; slot++ {
		in.Slots = append(in.Slots, game.InheritSlot{
			Slot:    slot,
			Options: rng.Sample(src, st.Meta.LastDeck, inheritOptions),
		})
	}
	st.Run = nil
	st.Inherit = in
	st.Screen = game.ScreenInherit
	s.toast("Choose your inheritance: one card per slot.")
}

func (s *step) inheritPick(slot, idx int) error {
	in := s.st.Inherit
	if in == nil {
		return rejection(MsgNotHere)
	}
	if slot < 0 || slot >= len(in.Slots) {
		return rejection(MsgBadSlot)
	}
	opts := in.Slots[slot].Options
	if idx < 0 || idx >= len(opts) {
		return rejection(MsgUnknownOption)
	}
	picked := opts[idx]
	in.Slots[slot].Picked = &picked
	if !in.Complete() {
		return nil
	}
	keep := make([]game.DeckEntry, 0, len(in.Slots))
	for _, sl := range in.Slots {
		keep = append(keep, *sl.Picked)
	}
	s.newRun(keep)
	s.toast("Inheritance chosen. Welcome back.")
	return nil
}

// continueRun puts the player back on the screen that matches the run's
// current sub-state, repairing the map of older saves on the way.
func (s *step) continueRun() error {
	st := s.st
	run := st.Run
	if run == nil {
		if st.Inherit != nil {
			st.Screen = game.ScreenInherit
			return nil
		}
		st.Screen = game.ScreenMenu
		s.toast("No active run found.")
		return nil
	}
	if run.PathMap == nil {
		run.PathMap = BuildPathMap(rng.New(run.Seed^legacyMapSalt, 0))
	}
	run.Act = engine.ActForFloor(run.Floor)
	if !choicesOnMap(run) || (st.Screen == game.ScreenMap && len(run.RoomChoices) == 0) {
		run.RoomChoices = RoomChoices(run)
	}

	switch st.Screen {
	case game.ScreenVictory, game.ScreenDefeat, game.ScreenInherit:
		return nil
	}
	switch {
	case run.Combat != nil:
		st.Screen = game.ScreenCombat
	case run.Reward != nil:
		st.Screen = game.ScreenReward
	case run.EventPick != nil:
		st.Screen = game.ScreenEventPick
	case run.Event != "":
		st.Screen = game.ScreenEvent
	case run.ShopRemove != nil:
		st.Screen = game.ScreenShopRemove
	case run.Shop != nil:
		st.Screen = game.ScreenShop
	case run.CampfireUp != nil:
		st.Screen = game.ScreenCampfireUp
	case run.ActEnd != nil:
		st.Screen = game.ScreenActEnd
	case st.Screen == game.ScreenCampfire:
	default:
		st.Screen = game.ScreenMap
	}
	return nil
}

func choicesOnMap(run *game.Run) bool {
	for _, ch := range run.RoomChoices {
		if run.PathMap.Node(ch.ID) == nil {
			return false
		}
	}
	return true
}
