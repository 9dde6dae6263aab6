package content

import "github.com/Noty-chan/rogue-prison/internal/game"

// Requirements gate a move on the enemy's phase tag and health.
type Requirements struct {
	PhaseIs  string
	PhaseNot string
	HPBelow  *float64
}

type Move struct {
	ID         string
	Name       string
	Weight     int
	Threshold  *float64
	SetPhase   string
	Requires   Requirements
	IntentDesc string
	Action     Action
}

// Action is what a move does when executed. Like Effect, the set is closed.
type Action interface {
	action()
}

type StatusBoost struct {
	Status game.Status
	Bonus  int
}

type (
	Attack      struct{ Damage int }
	AttackApply struct {
		Damage int
		Status game.Status
		Stacks int
	}
	Inflict struct {
		Status game.Status
		Stacks int
	}
	InflictAll struct {
		Status game.Status
		Stacks int
	}
	Fortify    struct{ Block int }
	Mend       struct{ Amount int }
	PhaseShift struct {
		Phase   string
		Block   int
		Buff    game.Buff
		DmgMult float64
		Boost   *StatusBoost
	}
	CounterPrep struct {
		Block  int
		Damage int
		Status game.Status
		Stacks int
	}
	SelfDebuff struct{ Desc string }
	// Stall is the fallback for move types the decoder did not recognise.
	Stall struct{}
)

func (Attack) action()      {}
func (AttackApply) action() {}
func (Inflict) action()     {}
func (InflictAll) action()  {}
func (Fortify) action()     {}
func (Mend) action()        {}
func (PhaseShift) action()  {}
func (CounterPrep) action() {}
func (SelfDebuff) action()  {}
func (Stall) action()       {}

// Summarize builds the telegraphed intent for a move.
func Summarize(m Move) *game.Intent {
	in := &game.Intent{Name: m.Name}
	switch a := m.Action.(type) {
	case Attack:
		in.Kind, in.Damage = "attack", a.Damage
	case AttackApply:
		in.Kind, in.Damage, in.Status, in.Stacks = "attack_apply", a.Damage, a.Status, a.Stacks
	case Inflict:
		in.Kind, in.Status, in.Stacks = "apply", a.Status, a.Stacks
	case InflictAll:
		in.Kind, in.Status, in.Stacks = "apply_all", a.Status, a.Stacks
	case Fortify:
		in.Kind, in.Block = "block", a.Block
	case Mend:
		in.Kind, in.Heal = "heal", a.Amount
	case PhaseShift:
		in.Kind, in.Phase, in.Block = "phase", a.Phase, a.Block
		in.Desc = m.IntentDesc
		if in.Desc == "" {
			in.Desc = "Phase shift"
		}
	case CounterPrep:
		in.Kind, in.Damage, in.Status, in.Stacks, in.Block = "counter", a.Damage, a.Status, a.Stacks, a.Block
		in.Desc = m.IntentDesc
	case SelfDebuff:
		in.Kind, in.Desc = "weird", a.Desc
	default:
		in.Kind = "weird"
	}
	return in
}
