package content

import "github.com/Noty-chan/rogue-prison/internal/game"

type Rarity string

const (
	Common    Rarity = "common"
	Uncommon  Rarity = "uncommon"
	Rare      Rarity = "rare"
	Legendary Rarity = "legendary"
)

// Rarities is ordered from most to least frequent.
var Rarities = []Rarity{Common, Uncommon, Rare, Legendary}

type CardType string

const (
	TypeAttack  CardType = "attack"
	TypeDefense CardType = "defense"
	TypeSkill   CardType = "skill"
	TypeUpgrade CardType = "upgrade"
	TypeCurse   CardType = "curse"
)

type TargetMode string

const (
	TargetEnemy      TargetMode = "enemy"
	TargetSelf       TargetMode = "self"
	TargetAllEnemies TargetMode = "all_enemies"
	TargetNone       TargetMode = "none"
	TargetAny        TargetMode = "any"
)

// NeedsEnemy reports whether the card must be played on a living enemy.
func (t TargetMode) NeedsEnemy() bool { return t == TargetEnemy || t == TargetAny }

// CursePenalty fires at the end of every turn the curse is held in hand.
type CursePenalty struct {
	LoseHP      int         `yaml:"lose_hp" json:"lose_hp,omitempty"`
	Status      game.Status `yaml:"status" json:"status,omitempty"`
	Stacks      int         `yaml:"stacks" json:"stacks,omitempty"`
	DrawPenalty int         `yaml:"next_draw_penalty" json:"next_draw_penalty,omitempty"`
}

// CardDef is an immutable card definition with any upgrade already applied.
type CardDef struct {
	ID            string
	Name          string
	Rarity        Rarity
	Type          CardType
	Cost          int
	Target        TargetMode
	Desc          string
	Effects       []Effect
	Tags          []string
	Exhaust       bool
	StaysInHand   bool
	ChargePerTurn int
	Upgraded      bool
	Curse         *CursePenalty
}

func (c *CardDef) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ExhaustsOnPlay reports whether playing the card removes it for the rest
// of the combat. Upgrade cards always exhaust.
func (c *CardDef) ExhaustsOnPlay() bool {
	return c.Exhaust || c.Type == TypeUpgrade
}

func (c *CardDef) IsCurse() bool { return c.Type == TypeCurse }

// DisplayName appends "+" to upgraded cards.
func (c *CardDef) DisplayName() string {
	if c.Upgraded {
		return c.Name + "+"
	}
	return c.Name
}

type EnemyKind string

const (
	KindNormal EnemyKind = "normal"
	KindElite  EnemyKind = "elite"
	KindBoss   EnemyKind = "boss"
)

type EnemyDef struct {
	ID     string
	Name   string
	MaxHP  int
	Tier   int
	Kind   EnemyKind
	Phase  string
	Tags   []string
	Immune []game.Status
	Moves  []Move
}

// Move returns the move with the given id.
func (e *EnemyDef) Move(id string) (Move, bool) {
	for _, m := range e.Moves {
		if m.ID == id {
			return m, true
		}
	}
	return Move{}, false
}

type BuffGrant struct {
	Buff   game.Buff `yaml:"buff" json:"buff"`
	Stacks int       `yaml:"stacks" json:"stacks"`
}

// RelicStart is applied to the player when a combat begins.
type RelicStart struct {
	ManaMax int         `yaml:"mana_max" json:"mana_max,omitempty"`
	Mana    int         `yaml:"mana" json:"mana,omitempty"`
	Heal    int         `yaml:"heal" json:"heal,omitempty"`
	Buffs   []BuffGrant `yaml:"buffs" json:"buffs,omitempty"`
	Log     string      `yaml:"log" json:"log,omitempty"`
}

type RelicDef struct {
	ID          string     `yaml:"id" json:"id"`
	Name        string     `yaml:"name" json:"name"`
	Desc        string     `yaml:"desc" json:"desc"`
	CombatStart RelicStart `yaml:"combat_start" json:"combat_start"`
	RewardCards int        `yaml:"reward_cards" json:"reward_cards,omitempty"`
	BonusGold   int        `yaml:"bonus_gold" json:"bonus_gold,omitempty"`
	ChestCurse  bool       `yaml:"chest_curse" json:"chest_curse,omitempty"`
}

// Info is a name/description pair for statuses and buffs.
type Info struct {
	Name string `yaml:"name" json:"name"`
	Desc string `yaml:"desc" json:"desc"`
}
