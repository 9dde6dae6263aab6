package engine

import "errors"

// Rejection is returned for actions that are invalid in the current state.
// A rejected action has not mutated anything.
type Rejection struct {
	Reason string
}

func (r *Rejection) Error() string { return r.Reason }

func rejection(msg string) error { return &Rejection{Reason: msg} }

// IsRejected reports whether err is (or wraps) a Rejection.
func IsRejected(err error) bool {
	var r *Rejection
	return errors.As(err, &r)
}

// Reasons surfaced to the player as toasts.
const (
	MsgNoCombat        = "No combat in progress."
	MsgNotYourTurn     = "It is not your turn."
	MsgPendingChoice   = "Resolve the pending choice first."
	MsgNoPending       = "Nothing to choose right now."
	MsgCardNotInHand   = "That card is not in your hand."
	MsgUnknownCard     = "Unknown card."
	MsgCurseUnplayable = "Curses cannot be played. Wait them out or remove them."
	MsgNoMana          = "Not enough mana."
	MsgNeedTarget      = "This card needs a target."
	MsgBadTarget       = "That target is not available."
	MsgBadSelection    = "Invalid selection."
)
