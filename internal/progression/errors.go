package progression

import "github.com/Noty-chan/rogue-prison/internal/engine"

// Rejections share the engine's type so callers need a single check.
func rejection(msg string) error { return &engine.Rejection{Reason: msg} }

// IsRejected reports whether err is an invalid-action rejection from this
// package or the combat engine.
func IsRejected(err error) bool { return engine.IsRejected(err) }

const (
	MsgUnknownAction  = "Unknown action."
	MsgNoRun          = "No active run."
	MsgNotHere        = "That is not available right now."
	MsgUnknownRoom    = "That room is not reachable from here."
	MsgNotOnOffer     = "That card is not on offer."
	MsgNotEnoughGold  = "Not enough gold."
	MsgUnknownOption  = "Unknown option."
	MsgBadSlot        = "Invalid inheritance slot."
	MsgBadDifficulty  = "Difficulty must be between 0 and 5."
	MsgNothingUpgrade = "No card can be upgraded."
)
