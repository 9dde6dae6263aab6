package game

// SaveVersion is bumped whenever the persisted document layout changes.
// Saves with a different version are discarded on load.
const SaveVersion = 1

type Settings struct {
	Difficulty int `json:"difficulty"`
}

// RunSummary is the final record of a finished run.
type RunSummary struct {
	RunID      string `json:"run_id"`
	Result     string `json:"result"`
	Floor      int    `json:"floor"`
	Act        int    `json:"act"`
	Loop       int    `json:"loop"`
	Difficulty int    `json:"difficulty"`
	DeckSize   int    `json:"deck_size"`
	Gold       int    `json:"gold"`
	At         int64  `json:"at"`
}

type Meta struct {
	LastDeck   []DeckEntry `json:"last_deck"`
	LastResult string      `json:"last_result,omitempty"`
	LastRun    *RunSummary `json:"last_run,omitempty"`
	LastSeenAt int64       `json:"last_seen_at"`
}

type InheritSlot struct {
	Slot    int         `json:"slot"`
	Options []DeckEntry `json:"options"`
	Picked  *DeckEntry  `json:"picked"`
}

type Inherit struct {
	Slots []InheritSlot `json:"slots"`
}

// Complete reports whether every slot has a pick.
func (in *Inherit) Complete() bool {
	for _, s := range in.Slots {
		if s.Picked == nil {
			return false
		}
	}
	return true
}

type UI struct {
	Toast string `json:"toast"`
}

// State is the whole persisted document of one save slot.
type State struct {
	Version   int      `json:"version"`
	UpdatedAt int64    `json:"updated_at"`
	Screen    Screen   `json:"screen"`
	Settings  Settings `json:"settings"`
	Meta      Meta     `json:"meta"`
	Run       *Run     `json:"run"`
	Inherit   *Inherit `json:"inherit,omitempty"`
	UI        UI       `json:"ui"`
}

func DefaultState(now int64) *State {
	return &State{
		Version:   SaveVersion,
		UpdatedAt: now,
		Screen:    ScreenMenu,
		Settings:  Settings{Difficulty: 1},
		Meta:      Meta{LastDeck: []DeckEntry{}, LastSeenAt: now},
	}
}

// Finish records the end of the current run in the meta block.
func (s *State) Finish(result string, now int64) {
	r := s.Run
	s.Meta.LastDeck = r.Snapshot()
	s.Meta.LastResult = result
	s.Meta.LastRun = &RunSummary{
		RunID:      r.ID,
		Result:     result,
		Floor:      r.Floor,
		Act:        r.Act,
		Loop:       r.Loop,
		Difficulty: r.Difficulty,
		DeckSize:   len(r.Deck),
		Gold:       r.Gold,
		At:         now,
	}
}
