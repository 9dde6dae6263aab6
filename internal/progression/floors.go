package progression

import (
	"github.com/Noty-chan/rogue-prison/internal/engine"
	"github.com/Noty-chan/rogue-prison/internal/game"
	"github.com/Noty-chan/rogue-prison/internal/rng"
)

const endlessHeal = 20

// completeFloor closes the current room. Boss floors open the act-end
// screen; every other floor advances to the map.
func (s *step) completeFloor() {
	run := s.st.Run
	run.Twist = nil
	run.Room = nil
	if engine.IsBossFloor(run.Floor) {
		src := s.rng()
		run.ActEnd = &game.ActEnd{
			DupChoices: game.Refs(rng.Sample(src, run.Deck, pickChoices)),
			RemChoices: game.Refs(rng.Sample(src, run.Deck, pickChoices)),
		}
		s.st.Screen = game.ScreenActEnd
		return
	}
	s.advanceFloor()
}

func (s *step) advanceFloor() {
	run := s.st.Run
	run.Floor++
	run.Act = engine.ActForFloor(run.Floor)
	run.RoomChoices = RoomChoices(run)
	s.st.Screen = game.ScreenMap
}

func (s *step) pickReward(cardID string) error {
	run, err := s.run()
	if err != nil {
		return err
	}
	rw := run.Reward
	if rw == nil {
		return rejection(MsgNotHere)
	}
	if cardID != "" {
		if !contains(rw.Cards, cardID) {
			return rejection(MsgNotOnOffer)
		}
		run.AddCard(cardID, false)
		s.toast("%s added to your deck.", s.cardName(cardID))
	} else {
		s.toast("Reward skipped.")
	}
	run.Reward = nil
	s.completeFloor()
	return nil
}

// actEnd takes one duplicate and one removal, in either order. Clearing the
// last floor wins the run but keeps it for the endless loop.
func (s *step) actEnd(kind, uid string) error {
	run, err := s.run()
	if err != nil {
		return err
	}
	ae := run.ActEnd
	if ae == nil {
		return rejection(MsgNotHere)
	}
	switch kind {
	case "dup":
		if ae.DupDone || !game.ContainsRef(ae.DupChoices, uid) {
			return rejection(MsgNotOnOffer)
		}
		src := run.FindCard(uid)
		if src == nil {
			return rejection(MsgNotOnOffer)
		}
		run.AddCard(src.ID, src.Upgraded)
		ae.DupDone = true
		s.toast("%s duplicated.", s.cardName(src.ID))
	case "rem":
		if ae.RemDone || !game.ContainsRef(ae.RemChoices, uid) {
			return rejection(MsgNotOnOffer)
		}
		run.RemoveCard(uid)
		ae.RemDone = true
		s.toast("Card removed.")
	default:
		return rejection(MsgUnknownOption)
	}
	if !ae.DupDone || !ae.RemDone {
		return nil
	}
	run.ActEnd = nil
	if run.Floor >= game.FloorCount {
		s.st.Finish(game.ResultVictory, s.now)
		s.st.Screen = game.ScreenVictory
		s.toast("Victory. The prison pretends it is not surprised.")
		return nil
	}
	s.advanceFloor()
	return nil
}

func (s *step) continueEndless() error {
	run, err := s.run()
	if err != nil {
		return err
	}
	if s.st.Screen != game.ScreenVictory {
		return rejection(MsgNotHere)
	}
	run.Loop++
	run.Floor = 1
	run.Act = 1
	run.HP = min(run.MaxHP, run.HP+endlessHeal)
	run.Visited = nil
	run.CurrentNode = ""
	run.PathMap = BuildPathMap(s.rng())
	run.RoomChoices = RoomChoices(run)
	s.st.Screen = game.ScreenMap
	s.toast("Loop %d: the same floors, a deeper dark.", run.Loop)
	return nil
}
