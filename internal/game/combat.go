package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	HandCap    = 6
	LogCap     = 80
	BaseCrit   = 0.15
	BaseMana   = 3
	CombatDraw = 6
)

// CardInstance is one owned copy of a card. It lives in exactly one zone.
type CardInstance struct {
	UID      string `json:"uid"`
	ID       string `json:"id"`
	Upgraded bool   `json:"up"`
	Charge   int    `json:"charge,omitempty"`
	CostMod  int    `json:"cost_mod,omitempty"`
}

func NewCardInstance(id string, upgraded bool) *CardInstance {
	return &CardInstance{UID: NewUID("card"), ID: id, Upgraded: upgraded}
}

// NewUID returns a short prefixed identifier.
func NewUID(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "_" + raw[:10]
}

// Ref returns the persisted reference used on pick screens.
func (c *CardInstance) Ref() CardRef {
	return CardRef{UID: c.UID, ID: c.ID, Upgraded: c.Upgraded}
}

// CombatCopy clones the instance for the combat zones, keeping its uid.
func (c *CardInstance) CombatCopy() *CardInstance {
	return &CardInstance{UID: c.UID, ID: c.ID, Upgraded: c.Upgraded}
}

type Player struct {
	Combatant
	Mana    int     `json:"mana"`
	ManaMax int     `json:"mana_max"`
	Crit    float64 `json:"crit"`
}

// Counter is a retaliation armed by a counter_prep move.
type Counter struct {
	Name   string `json:"name"`
	Damage int    `json:"dmg"`
	Status Status `json:"status,omitempty"`
	Stacks int    `json:"stacks,omitempty"`
}

// Intent is the telegraphed summary of an enemy's next move.
type Intent struct {
	Kind   string `json:"type"`
	Name   string `json:"name"`
	Damage int    `json:"dmg,omitempty"`
	Status Status `json:"status,omitempty"`
	Stacks int    `json:"stacks,omitempty"`
	Block  int    `json:"block,omitempty"`
	Heal   int    `json:"heal,omitempty"`
	Phase  string `json:"phase,omitempty"`
	Desc   string `json:"desc,omitempty"`
}

// Enemy moves are not embedded; they are looked up by DefID.
type Enemy struct {
	Combatant
	DefID       string         `json:"id"`
	Tier        int            `json:"tier"`
	PhaseTag    string         `json:"phase"`
	DmgMult     float64        `json:"dmg_mult,omitempty"`
	StatusBonus map[Status]int `json:"status_bonus,omitempty"`
	Counter     *Counter       `json:"counter_ready,omitempty"`
	Overheat    bool           `json:"overheat,omitempty"`
	BurnHeld    bool           `json:"burn_held,omitempty"`
	Intent      *Intent        `json:"intent"`
	NextMove    string         `json:"next_move,omitempty"`
	LastMove    string         `json:"last_move,omitempty"`
}

// Multiplier returns the phase damage multiplier, defaulting to 1.
func (e *Enemy) Multiplier() float64 {
	if e.DmgMult == 0 {
		return 1
	}
	return e.DmgMult
}

// WithBonus adds the enemy's per-status bonus to a move's stacks.
func (e *Enemy) WithBonus(s Status, stacks int) int {
	v := stacks + e.StatusBonus[s]
	if v < 0 {
		return 0
	}
	return v
}

func (e *Enemy) BoostStatus(s Status, bonus int) {
	if e.StatusBonus == nil {
		e.StatusBonus = map[Status]int{}
	}
	e.StatusBonus[s] += bonus
}

// PendingSource identifies the card whose effects are suspended.
type PendingSource struct {
	UID      string `json:"uid"`
	CardID   string `json:"card_id"`
	Upgraded bool   `json:"up"`
}

// Pending blocks card play and end turn until the player answers it.
type Pending struct {
	Type       PendingType   `json:"type"`
	N          int           `json:"n,omitempty"`
	ReduceCost int           `json:"reduce_cost,omitempty"`
	Options    []string      `json:"options,omitempty"`
	Source     PendingSource `json:"source"`
	Target     *int          `json:"target,omitempty"`
	Resume     int           `json:"resume"`
}

type Combat struct {
	Turn        int             `json:"turn"`
	Phase       Phase           `json:"phase"`
	Player      *Player         `json:"player"`
	Enemies     []*Enemy        `json:"enemies"`
	Draw        []*CardInstance `json:"draw_pile"`
	Hand        []*CardInstance `json:"hand"`
	Discard     []*CardInstance `json:"discard_pile"`
	Exhaust     []*CardInstance `json:"exhaust_pile"`
	Pending     *Pending        `json:"pending"`
	Log         []string        `json:"log"`
	DrawPenalty int             `json:"curse_draw_penalty,omitempty"`
}

// Logf appends a line and keeps only the most recent LogCap entries.
func (c *Combat) Logf(format string, args ...any) {
	c.Log = append(c.Log, fmt.Sprintf(format, args...))
	if n := len(c.Log); n > LogCap {
		c.Log = append([]string(nil), c.Log[n-LogCap:]...)
	}
}

func (c *Combat) HandIndex(uid string) int {
	for i, ci := range c.Hand {
		if ci.UID == uid {
			return i
		}
	}
	return -1
}

func (c *Combat) RemoveFromHand(uid string) *CardInstance {
	i := c.HandIndex(uid)
	if i < 0 {
		return nil
	}
	ci := c.Hand[i]
	c.Hand = append(c.Hand[:i], c.Hand[i+1:]...)
	return ci
}

func (c *Combat) RemoveFromDiscard(uid string) *CardInstance {
	for i, ci := range c.Discard {
		if ci.UID == uid {
			c.Discard = append(c.Discard[:i], c.Discard[i+1:]...)
			return ci
		}
	}
	return nil
}

func (c *Combat) EnemyAt(i int) *Enemy {
	if i < 0 || i >= len(c.Enemies) {
		return nil
	}
	return c.Enemies[i]
}

func (c *Combat) Living() []*Enemy {
	out := make([]*Enemy, 0, len(c.Enemies))
	for _, e := range c.Enemies {
		if e.Alive() {
			out = append(out, e)
		}
	}
	return out
}

func (c *Combat) AllEnemiesDead() bool {
	for _, e := range c.Enemies {
		if e.Alive() {
			return false
		}
	}
	return true
}

// CardCount is the number of instances across all four zones.
func (c *Combat) CardCount() int {
	return len(c.Draw) + len(c.Hand) + len(c.Discard) + len(c.Exhaust)
}
