package engine

import (
	"github.com/Noty-chan/rogue-prison/internal/content"
	"github.com/Noty-chan/rogue-prison/internal/game"
	"github.com/Noty-chan/rogue-prison/internal/rng"
)

// Session drives one combat. Build a new session for every action: the
// phase machine is rebuilt from the persisted combat each time.
type Session struct {
	cc *combatContext
}

// NewSession wraps the run's current combat. It is rejected when no combat
// is in progress.
func NewSession(run *game.Run, cat *content.Catalog, src rng.Source) (*Session, error) {
	if run == nil || run.Combat == nil || run.Combat.Player == nil {
		return nil, rejection(MsgNoCombat)
	}
	if run.Combat.Phase.Terminal() {
		return nil, rejection(MsgNoCombat)
	}
	return &Session{cc: newCombatContext(run, cat, src)}, nil
}

// PlayCard plays a card from hand. target indexes the combat's enemies and
// is required for enemy-targeted cards.
func (s *Session) PlayCard(uid string, target *int) (Outcome, error) {
	if err := s.cc.playCard(uid, target); err != nil {
		return Ongoing, err
	}
	return s.cc.outcome, nil
}

// EndTurn hands the turn to the enemies and returns when the player can act
// again or the combat is over.
func (s *Session) EndTurn() (Outcome, error) {
	c := s.cc.c
	if c.Phase != game.PhasePlayer {
		return Ongoing, rejection(MsgNotYourTurn)
	}
	if c.Pending != nil {
		return Ongoing, rejection(MsgPendingChoice)
	}
	s.cc.endPlayerTurn()
	return s.cc.outcome, nil
}

// ResolvePending answers the current pending choice.
func (s *Session) ResolvePending(a Answer) (Outcome, error) {
	if err := s.cc.resolvePending(a); err != nil {
		return Ongoing, err
	}
	return s.cc.outcome, nil
}

// Combat returns the live combat, or nil once it has ended.
func (s *Session) Combat() *game.Combat { return s.cc.run.Combat }
