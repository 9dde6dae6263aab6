// Package progression applies player actions to the persisted game state:
// run setup and inheritance, the floor map, non-combat rooms, rewards, act
// ends and the endless loop. Combat actions are forwarded to the engine.
package progression

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Noty-chan/rogue-prison/internal/content"
	"github.com/Noty-chan/rogue-prison/internal/engine"
	"github.com/Noty-chan/rogue-prison/internal/game"
	"github.com/Noty-chan/rogue-prison/internal/rng"
)

// Action types accepted by Dispatch.
const (
	ActionNewRun          = "NEW_RUN"
	ActionInheritPick     = "INHERIT_PICK"
	ActionContinue        = "CONTINUE"
	ActionChooseRoom      = "CHOOSE_ROOM"
	ActionPlayCard        = "PLAY_CARD"
	ActionEndTurn         = "END_TURN"
	ActionResolvePending  = "RESOLVE_PENDING"
	ActionPickReward      = "PICK_REWARD"
	ActionEventOption     = "EVENT_OPT"
	ActionEventPick       = "EVENT_PICK"
	ActionShopBuy         = "SHOP_BUY"
	ActionShopRemove      = "SHOP_REMOVE"
	ActionShopLeave       = "SHOP_LEAVE"
	ActionCampfire        = "CAMPFIRE"
	ActionCampfireUpgrade = "CAMPFIRE_UP"
	ActionActEnd          = "ACT_END"
	ActionContinueEndless = "CONTINUE_ENDLESS"
	ActionSetDifficulty   = "SET_DIFFICULTY"
)

const MaxDifficulty = 5

// Action is one player input. Only the fields of its type are read.
type Action struct {
	Type       string        `json:"type"`
	Slot       int           `json:"slot,omitempty"`
	Idx        *int          `json:"idx,omitempty"`
	RoomID     string        `json:"room_id,omitempty"`
	UID        string        `json:"uid,omitempty"`
	Target     *int          `json:"target,omitempty"`
	Payload    engine.Answer `json:"payload"`
	CardID     string        `json:"card_id,omitempty"`
	OptID      string        `json:"opt_id,omitempty"`
	What       string        `json:"what,omitempty"`
	Choice     string        `json:"choice,omitempty"`
	Kind       string        `json:"kind,omitempty"`
	Difficulty int           `json:"difficulty,omitempty"`
}

// Dispatcher applies actions against a catalog.
type Dispatcher struct {
	cat        *content.Catalog
	now        func() time.Time
	seed       func() int64
	difficulty int
}

type Option func(*Dispatcher)

// WithClock replaces the wall clock used for timestamps and inheritance.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

// WithSeeder replaces the source of new run seeds.
func WithSeeder(seed func() int64) Option {
	return func(d *Dispatcher) { d.seed = seed }
}

// WithDefaultDifficulty sets the difficulty of states made by NewState.
// Values outside 0..MaxDifficulty are ignored.
func WithDefaultDifficulty(n int) Option {
	return func(d *Dispatcher) {
		if n >= 0 && n <= MaxDifficulty {
			d.difficulty = n
		}
	}
}

func NewDispatcher(cat *content.Catalog, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		cat:        cat,
		now:        time.Now,
		seed:       func() int64 { return 1 + rand.Int64N(2_000_000_000) },
		difficulty: 1,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

func (d *Dispatcher) Catalog() *content.Catalog { return d.cat }

// Now reads the dispatcher's clock.
func (d *Dispatcher) Now() time.Time { return d.now() }

// NewState returns a fresh menu state stamped with the dispatcher's clock.
func (d *Dispatcher) NewState() *game.State {
	st := game.DefaultState(d.now().Unix())
	st.Settings.Difficulty = d.difficulty
	return st
}

// Dispatch applies one action. A rejected action leaves the state as it
// was, apart from the toast that explains the rejection, and is returned
// as an error for which IsRejected holds.
func (d *Dispatcher) Dispatch(st *game.State, a Action) error {
	st.UI.Toast = ""
	run := st.Run
	var ctr int64
	if run != nil {
		ctr = run.RNGCounter
	}
	s := &step{d: d, cat: d.cat, st: st, now: d.now().Unix()}
	if err := s.apply(a); err != nil {
		if run != nil {
			run.RNGCounter = ctr
		}
		if IsRejected(err) {
			st.UI.Toast = err.Error()
		}
		return err
	}
	st.UpdatedAt = s.now
	st.Meta.LastSeenAt = s.now
	return nil
}

// step is the working context of a single action.
type step struct {
	d   *Dispatcher
	cat *content.Catalog
	st  *game.State
	now int64

	src    rng.Source
	srcRun *game.Run
}

// rng returns the action's stream, advancing the run counter the first
// time it is needed.
func (s *step) rng() rng.Source {
	run := s.st.Run
	if s.src == nil || s.srcRun != run {
		s.src = rng.Next(run.Seed, &run.RNGCounter)
		s.srcRun = run
	}
	return s.src
}

func (s *step) toast(format string, args ...any) {
	s.st.UI.Toast = fmt.Sprintf(format, args...)
}

func (s *step) run() (*game.Run, error) {
	if s.st.Run == nil {
		return nil, rejection(MsgNoRun)
	}
	return s.st.Run, nil
}

func (s *step) apply(a Action) error {
	switch a.Type {
	case ActionNewRun:
		return s.newRunOrInherit()
	case ActionInheritPick:
		idx := 0
		if a.Idx != nil {
			idx = *a.Idx
		}
		return s.inheritPick(a.Slot, idx)
	case ActionContinue:
		return s.continueRun()
	case ActionChooseRoom:
		return s.chooseRoom(a.RoomID)
	case ActionPlayCard:
		return s.playCard(a.UID, a.Target)
	case ActionEndTurn:
		return s.endTurn()
	case ActionResolvePending:
		return s.resolvePending(a.Payload)
	case ActionPickReward:
		return s.pickReward(a.CardID)
	case ActionEventOption:
		return s.eventOption(a.OptID)
	case ActionEventPick:
		return s.eventPick(a.UID)
	case ActionShopBuy:
		return s.shopBuy(a.What, a.Idx)
	case ActionShopRemove:
		return s.shopRemove(a.UID)
	case ActionShopLeave:
		return s.shopLeave()
	case ActionCampfire:
		return s.campfire(a.Choice)
	case ActionCampfireUpgrade:
		return s.campfireUpgrade(a.UID)
	case ActionActEnd:
		return s.actEnd(a.Kind, a.UID)
	case ActionContinueEndless:
		return s.continueEndless()
	case ActionSetDifficulty:
		if a.Difficulty < 0 || a.Difficulty > MaxDifficulty {
			return rejection(MsgBadDifficulty)
		}
		s.st.Settings.Difficulty = a.Difficulty
		s.toast("Difficulty set to %d.", a.Difficulty)
		return nil
	default:
		return rejection(MsgUnknownAction)
	}
}
