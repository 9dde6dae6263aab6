package game

const (
	StartHP    = 70
	StartGold  = 60
	FloorCount = 10
	LaneCount  = 5
	DeckSize   = 10
)

// CardRef identifies a deck card on pick screens.
type CardRef struct {
	UID      string `json:"uid"`
	ID       string `json:"id"`
	Upgraded bool   `json:"up"`
}

// DeckEntry is a uid-less deck snapshot entry.
type DeckEntry struct {
	ID       string `json:"id"`
	Upgraded bool   `json:"up"`
}

type Pity struct {
	Rare      int `json:"rare"`
	Legendary int `json:"legendary"`
}

type MapNode struct {
	ID    string   `json:"id"`
	Type  RoomType `json:"type"`
	Floor int      `json:"floor"`
	Lane  int      `json:"lane"`
	Prev  []string `json:"prev"`
	Next  []string `json:"next"`
}

type PathMap struct {
	Floors [][]*MapNode `json:"floors"`
	Lanes  int          `json:"lanes"`
}

// Node returns the node with the given id, or nil.
func (p *PathMap) Node(id string) *MapNode {
	if p == nil {
		return nil
	}
	for _, layer := range p.Floors {
		for _, n := range layer {
			if n.ID == id {
				return n
			}
		}
	}
	return nil
}

type RoomChoice struct {
	ID    string   `json:"id"`
	Type  RoomType `json:"type"`
	Floor int      `json:"floor"`
	Lane  int      `json:"lane"`
}

// Twist is a per-room modifier rolled on entry.
type Twist struct {
	ID            string  `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	Desc          string  `json:"desc" yaml:"desc"`
	PoisonOnStart int     `json:"poison_on_start,omitempty" yaml:"poison_on_start"`
	HPPing        int     `json:"hp_ping,omitempty" yaml:"hp_ping"`
	StartReflect  bool    `json:"start_reflect,omitempty" yaml:"start_reflect"`
	ExtraReward   bool    `json:"extra_reward,omitempty" yaml:"extra_reward"`
	ShopDiscount  float64 `json:"shop_discount,omitempty" yaml:"shop_discount"`
	BonusGold     int     `json:"bonus_gold,omitempty" yaml:"bonus_gold"`
}

type Reward struct {
	Cards []string `json:"cards"`
	Gold  int      `json:"gold_gained"`
}

type ShopOffer struct {
	CardID string `json:"card_id"`
	Price  int    `json:"price"`
}

type Shop struct {
	Offers      []ShopOffer `json:"offers"`
	RemovePrice int         `json:"remove_price"`
}

// DeckPick is a "choose one of these deck cards" screen.
type DeckPick struct {
	Kind    string    `json:"kind,omitempty"`
	Choices []CardRef `json:"choices"`
	N       int       `json:"n,omitempty"`
	Price   int       `json:"price,omitempty"`
}

type ActEnd struct {
	DupChoices []CardRef `json:"dup_choices"`
	RemChoices []CardRef `json:"rem_choices"`
	DupDone    bool      `json:"dup_done"`
	RemDone    bool      `json:"rem_done"`
}

type Run struct {
	ID          string          `json:"id"`
	Seed        int64           `json:"seed"`
	RNGCounter  int64           `json:"rng_ctr"`
	StartedAt   int64           `json:"started_at"`
	Difficulty  int             `json:"difficulty"`
	Loop        int             `json:"loop"`
	Floor       int             `json:"floor"`
	Act         int             `json:"act"`
	Gold        int             `json:"gold"`
	HP          int             `json:"hp"`
	MaxHP       int             `json:"max_hp"`
	Pity        Pity            `json:"rarity_pity"`
	Deck        []*CardInstance `json:"deck"`
	Relics      []string        `json:"relics"`
	Combat      *Combat         `json:"combat"`
	Room        *RoomChoice     `json:"room"`
	RoomChoices []RoomChoice    `json:"room_choices"`
	Reward      *Reward         `json:"reward"`
	Shop        *Shop           `json:"shop"`
	ShopRemove  *DeckPick       `json:"shop_remove,omitempty"`
	Event       string          `json:"event,omitempty"`
	EventPick   *DeckPick       `json:"event_pick,omitempty"`
	CampfireUp  *DeckPick       `json:"campfire_up,omitempty"`
	ActEnd      *ActEnd         `json:"act_end"`
	PathMap     *PathMap        `json:"path_map"`
	Visited     []string        `json:"visited_nodes"`
	CurrentNode string          `json:"current_node,omitempty"`
	Twist       *Twist          `json:"room_twist,omitempty"`
}

func (r *Run) HasRelic(id string) bool {
	for _, rid := range r.Relics {
		if rid == id {
			return true
		}
	}
	return false
}

func (r *Run) GrantRelic(id string) {
	if !r.HasRelic(id) {
		r.Relics = append(r.Relics, id)
	}
}

func (r *Run) AddCard(id string, upgraded bool) *CardInstance {
	ci := NewCardInstance(id, upgraded)
	r.Deck = append(r.Deck, ci)
	return ci
}

func (r *Run) FindCard(uid string) *CardInstance {
	for _, ci := range r.Deck {
		if ci.UID == uid {
			return ci
		}
	}
	return nil
}

func (r *Run) RemoveCard(uid string) bool {
	for i, ci := range r.Deck {
		if ci.UID == uid {
			r.Deck = append(r.Deck[:i], r.Deck[i+1:]...)
			return true
		}
	}
	return false
}

// Snapshot captures the deck for inheritance.
func (r *Run) Snapshot() []DeckEntry {
	out := make([]DeckEntry, 0, len(r.Deck))
	for _, ci := range r.Deck {
		out = append(out, DeckEntry{ID: ci.ID, Upgraded: ci.Upgraded})
	}
	return out
}

// Refs converts deck instances to pick-screen references.
func Refs(cards []*CardInstance) []CardRef {
	out := make([]CardRef, 0, len(cards))
	for _, ci := range cards {
		out = append(out, ci.Ref())
	}
	return out
}

// ContainsRef reports whether uid is one of the offered choices.
func ContainsRef(refs []CardRef, uid string) bool {
	for _, r := range refs {
		if r.UID == uid {
			return true
		}
	}
	return false
}
