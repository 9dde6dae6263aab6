package progression

import (
	"github.com/Noty-chan/rogue-prison/internal/engine"
	"github.com/Noty-chan/rogue-prison/internal/game"
)

func (s *step) session() (*engine.Session, error) {
	run, err := s.run()
	if err != nil {
		return nil, err
	}
	if run.Combat == nil {
		return nil, rejection(engine.MsgNoCombat)
	}
	return engine.NewSession(run, s.cat, s.rng())
}

func (s *step) playCard(uid string, target *int) error {
	sess, err := s.session()
	if err != nil {
		return err
	}
	out, err := sess.PlayCard(uid, target)
	if err != nil {
		return err
	}
	s.afterCombat(out)
	return nil
}

func (s *step) endTurn() error {
	sess, err := s.session()
	if err != nil {
		return err
	}
	out, err := sess.EndTurn()
	if err != nil {
		return err
	}
	s.afterCombat(out)
	return nil
}

func (s *step) resolvePending(a engine.Answer) error {
	sess, err := s.session()
	if err != nil {
		return err
	}
	out, err := sess.ResolvePending(a)
	if err != nil {
		return err
	}
	s.afterCombat(out)
	return nil
}

// afterCombat moves to the reward screen on a win. A loss ends the run and
// records the deck for inheritance.
func (s *step) afterCombat(out engine.Outcome) {
	switch out {
	case engine.Won:
		s.st.Screen = game.ScreenReward
		s.toast("Victory! +%d gold.", s.st.Run.Reward.Gold)
	case engine.Lost:
		s.st.Finish(game.ResultDefeat, s.now)
		s.st.Run = nil
		s.st.Screen = game.ScreenDefeat
		s.toast("You have fallen. The prison keeps your deck on file.")
	}
}
