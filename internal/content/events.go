package content

type EventDef struct {
	ID      string
	Name    string
	Desc    string
	Options []EventOption
}

type EventOption struct {
	ID     string
	Label  string
	Effect EventEffect
}

// Option returns the option with the given id.
func (e *EventDef) Option(id string) (EventOption, bool) {
	for _, o := range e.Options {
		if o.ID == id {
			return o, true
		}
	}
	return EventOption{}, false
}

// EventEffect is an out-of-combat event outcome.
type EventEffect interface {
	eventEffect()
}

type (
	Noop      struct{}
	GainCard  struct {
		Rarity Rarity
		N      int
	}
	GainRelic   struct{}
	GainCurse   struct{}
	RemoveCard  struct{ N int }
	UpgradeCard struct{ N int }
	PayHP       struct{ Amount int }
	Rest        struct{ Amount int }
	GainGold    struct{ Amount int }
	GainMaxHP   struct{ Amount int }
	EventCombo  struct{ Steps []EventEffect }
)

func (Noop) eventEffect()        {}
func (GainCard) eventEffect()    {}
func (GainRelic) eventEffect()   {}
func (GainCurse) eventEffect()   {}
func (RemoveCard) eventEffect()  {}
func (UpgradeCard) eventEffect() {}
func (PayHP) eventEffect()       {}
func (Rest) eventEffect()        {}
func (GainGold) eventEffect()    {}
func (GainMaxHP) eventEffect()   {}
func (EventCombo) eventEffect()  {}
