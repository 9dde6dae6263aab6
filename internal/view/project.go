// Package view projects the persisted game state into the document the
// client renders. Nothing here mutates the state.
package view

import (
	"math"

	"github.com/Noty-chan/rogue-prison/internal/content"
	"github.com/Noty-chan/rogue-prison/internal/engine"
	"github.com/Noty-chan/rogue-prison/internal/game"
)

// discardTail is how many discard pile cards the combat view carries.
const discardTail = 18

type Document struct {
	Version   int           `json:"version"`
	UpdatedAt int64         `json:"updated_at"`
	Screen    game.Screen   `json:"screen"`
	Settings  game.Settings `json:"settings"`
	Meta      game.Meta     `json:"meta"`
	Run       *Run          `json:"run"`
	Inherit   *game.Inherit `json:"inherit,omitempty"`
	UI        game.UI       `json:"ui"`
	Content   Summary       `json:"content_summary"`
}

// Run embeds the persisted run and adds resolved views next to it. The
// outer RoomChoices shadows the embedded one in the JSON output.
type Run struct {
	*game.Run
	RoomChoices []Room             `json:"room_choices"`
	DeckView    []Card             `json:"deck_view"`
	RelicsView  []content.RelicDef `json:"relics_view"`
	CombatView  *Combat            `json:"combat_view"`
	EventView   *Event             `json:"event_view,omitempty"`
	TwistView   *game.Twist        `json:"twist_view,omitempty"`
}

type Room struct {
	game.RoomChoice
	Label string `json:"label"`
	Hint  string `json:"hint"`
}

type Event struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Desc    string        `json:"desc"`
	Options []EventOption `json:"options"`
}

type EventOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type PlayerView struct {
	HP       int                 `json:"hp"`
	MaxHP    int                 `json:"max_hp"`
	Block    int                 `json:"block"`
	Mana     int                 `json:"mana"`
	ManaMax  int                 `json:"mana_max"`
	Statuses map[game.Status]int `json:"statuses"`
	Buffs    map[game.Buff]int   `json:"buffs"`
	Crit     float64             `json:"crit"`
}

type EnemyView struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	HP       int                 `json:"hp"`
	MaxHP    int                 `json:"max_hp"`
	Block    int                 `json:"block"`
	Phase    string              `json:"phase,omitempty"`
	Statuses map[game.Status]int `json:"statuses"`
	Intent   *game.Intent        `json:"intent"`
}

type Combat struct {
	Turn             int           `json:"turn"`
	Phase            game.Phase    `json:"phase"`
	Player           PlayerView    `json:"player"`
	Enemies          []EnemyView   `json:"enemies"`
	Hand             []HandCard    `json:"hand"`
	DrawCount        int           `json:"draw_count"`
	DiscardCount     int           `json:"discard_count"`
	DiscardPileCards []Card        `json:"discard_pile_cards"`
	ExhaustCount     int           `json:"exhaust_count"`
	Pending          *game.Pending `json:"pending"`
	Log              []string      `json:"log"`
}

// Project builds the client document for a state.
func Project(st *game.State, cat *content.Catalog) *Document {
	doc := &Document{
		Version:   st.Version,
		UpdatedAt: st.UpdatedAt,
		Screen:    st.Screen,
		Settings:  st.Settings,
		Meta:      st.Meta,
		Inherit:   st.Inherit,
		UI:        st.UI,
		Content:   summarize(cat),
	}
	if st.Run != nil {
		doc.Run = projectRun(st.Run, cat)
	}
	return doc
}

func projectRun(run *game.Run, cat *content.Catalog) *Run {
	v := &Run{
		Run:         run,
		RoomChoices: make([]Room, 0, len(run.RoomChoices)),
		DeckView:    cards(cat, run.Deck),
		RelicsView:  []content.RelicDef{},
		TwistView:   run.Twist,
	}
	act := engine.ActForFloor(run.Floor)
	for _, ch := range run.RoomChoices {
		label, hint := RoomLabel(ch.Type, act)
		v.RoomChoices = append(v.RoomChoices, Room{RoomChoice: ch, Label: label, Hint: hint})
	}
	for _, id := range run.Relics {
		if rel, ok := cat.Relic(id); ok {
			v.RelicsView = append(v.RelicsView, rel)
		}
	}
	if run.Combat != nil {
		v.CombatView = projectCombat(run.Combat, cat)
	}
	if ev, ok := cat.Event(run.Event); ok {
		e := &Event{ID: ev.ID, Name: ev.Name, Desc: ev.Desc}
		for _, o := range ev.Options {
			e.Options = append(e.Options, EventOption{ID: o.ID, Label: o.Label})
		}
		v.EventView = e
	}
	return v
}

func projectCombat(c *game.Combat, cat *content.Catalog) *Combat {
	v := &Combat{
		Turn:         c.Turn,
		Phase:        c.Phase,
		Hand:         make([]HandCard, 0, len(c.Hand)),
		DrawCount:    len(c.Draw),
		DiscardCount: len(c.Discard),
		ExhaustCount: len(c.Exhaust),
		Pending:      c.Pending,
		Log:          c.Log,
	}
	for _, ci := range c.Hand {
		v.Hand = append(v.Hand, handCard(cat, ci))
	}
	tail := c.Discard
	if len(tail) > discardTail {
		tail = tail[len(tail)-discardTail:]
	}
	v.DiscardPileCards = cards(cat, tail)

	if p := c.Player; p != nil {
		v.Player = PlayerView{
			HP:       p.HP,
			MaxHP:    p.MaxHP,
			Block:    p.Block,
			Mana:     p.Mana,
			ManaMax:  p.ManaMax,
			Statuses: p.Statuses,
			Buffs:    p.Buffs,
			Crit:     math.Round(engine.CritChance(p)*1000) / 1000,
		}
	}
	v.Enemies = make([]EnemyView, 0, len(c.Enemies))
	for _, e := range c.Enemies {
		v.Enemies = append(v.Enemies, EnemyView{
			ID:       e.DefID,
			Name:     e.Name,
			HP:       e.HP,
			MaxHP:    e.MaxHP,
			Block:    e.Block,
			Phase:    e.PhaseTag,
			Statuses: e.Statuses,
			Intent:   e.Intent,
		})
	}
	return v
}
