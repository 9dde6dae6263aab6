package content

import "github.com/Noty-chan/rogue-prison/internal/game"

// Effect is one card operation. The set of implementations is closed; the
// engine dispatches on it with a type switch.
type Effect interface {
	effect()
}

// Amount is a flat value, optionally increased by the card's charge.
type Amount struct {
	Base       int
	PlusCharge bool
}

// StatusTarget says who receives an ApplyStatus.
type StatusTarget string

const (
	ToEnemy      StatusTarget = "enemy"
	ToAllEnemies StatusTarget = "all_enemies"
	ToSelf       StatusTarget = "self"
)

type (
	Damage struct {
		Amount Amount
		NoCrit bool
		OnCrit []Effect
	}
	AOEDamage struct {
		Amount  int
		BonusIf []game.Status
		Bonus   int
	}
	GainBlock struct{ Amount int }
	ApplyStatus struct {
		Status game.Status
		Stacks int
		To     StatusTarget
	}
	Draw         struct{ N int }
	GainMana     struct{ N int }
	GainMaxMana  struct{ N int }
	Heal         struct{ Amount int }
	LoseHP       struct{ Amount int }
	HealPerEnemy struct{ Amount int }
	// DiscardChoose, TakeFromDiscard and ChooseOne need player input.
	DiscardChoose   struct{ N int }
	DiscardRandom   struct{ N int }
	TakeFromDiscard struct {
		N          int
		ReduceCost int
	}
	AddBuff      struct{ Buff game.Buff }
	IfHandHasTag struct {
		Tag  string
		Then []Effect
	}
	IfEnemyHPBelow struct {
		Pct  float64
		Then []Effect
	}
	DetonateDoTs struct {
		Statuses []game.Status
		Mult     float64
	}
	ChooseOne struct{ Options []Option }
	Combo     struct{ Steps []Effect }
)

type Option struct {
	Label   string
	Effects []Effect
}

func (Damage) effect()          {}
func (AOEDamage) effect()       {}
func (GainBlock) effect()       {}
func (ApplyStatus) effect()     {}
func (Draw) effect()            {}
func (GainMana) effect()        {}
func (GainMaxMana) effect()     {}
func (Heal) effect()            {}
func (LoseHP) effect()          {}
func (HealPerEnemy) effect()    {}
func (DiscardChoose) effect()   {}
func (DiscardRandom) effect()   {}
func (TakeFromDiscard) effect() {}
func (AddBuff) effect()         {}
func (IfHandHasTag) effect()    {}
func (IfEnemyHPBelow) effect()  {}
func (DetonateDoTs) effect()    {}
func (ChooseOne) effect()       {}
func (Combo) effect()           {}

// FirstChooseOne returns the first top-level choose_one of a card, if any.
func FirstChooseOne(effects []Effect) (ChooseOne, bool) {
	for _, e := range effects {
		if c, ok := e.(ChooseOne); ok {
			return c, true
		}
	}
	return ChooseOne{}, false
}
