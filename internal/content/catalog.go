package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/Noty-chan/rogue-prison/internal/game"
)

//go:embed catalog.yaml
var embedded []byte

// RarityCounts is the required size of each reward pool.
var RarityCounts = map[Rarity]int{Common: 24, Uncommon: 18, Rare: 12, Legendary: 6}

var ErrUnknownCard = errors.New("unknown card")

type cardPair struct {
	base, up *CardDef
}

// Catalog is the immutable, validated game content.
type Catalog struct {
	cards    map[string]cardPair
	order    []string
	byRarity map[Rarity][]string
	curses   []string

	relics     []RelicDef
	relicIndex map[string]int

	enemies    []*EnemyDef
	elites     []*EnemyDef
	bosses     []*EnemyDef
	enemyIndex map[string]*EnemyDef

	events     []*EventDef
	eventIndex map[string]*EventDef

	twists   []game.Twist
	statuses map[game.Status]Info
	buffs    map[game.Buff]Info
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Load(embedded)
}

// LoadFile reads a catalog from disk. An empty path selects the embedded one.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	cat, err := Load(b)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return cat, nil
}

// Load decodes and validates a YAML catalog.
func Load(data []byte) (*Catalog, error) {
	var spec fileSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("invalid catalog yaml: %w", err)
	}
	c := &Catalog{
		cards:      map[string]cardPair{},
		byRarity:   map[Rarity][]string{},
		relicIndex: map[string]int{},
		enemyIndex: map[string]*EnemyDef{},
		eventIndex: map[string]*EventDef{},
		twists:     spec.Twists,
		statuses:   map[game.Status]Info{},
		buffs:      map[game.Buff]Info{},
	}
	for k, v := range spec.Statuses {
		s := game.Status(k)
		if !s.Valid() {
			return nil, fmt.Errorf("statuses: unknown status %q", k)
		}
		c.statuses[s] = v
	}
	for k, v := range spec.Buffs {
		b := game.Buff(k)
		if !b.Valid() {
			return nil, fmt.Errorf("buffs: unknown buff %q", k)
		}
		c.buffs[b] = v
	}
	if err := c.addCards(spec.Cards, false); err != nil {
		return nil, err
	}
	if err := c.addCards(spec.Curses, true); err != nil {
		return nil, err
	}
	for r, want := range RarityCounts {
		if got := len(c.byRarity[r]); got != want {
			return nil, fmt.Errorf("rarity %s: want %d cards, got %d", r, want, got)
		}
	}
	if len(c.curses) == 0 {
		return nil, errors.New("catalog has no curses")
	}
	for i, r := range spec.Relics {
		if _, dup := c.relicIndex[r.ID]; dup {
			return nil, fmt.Errorf("duplicate relic %s", r.ID)
		}
		for _, g := range r.CombatStart.Buffs {
			if !g.Buff.Valid() {
				return nil, fmt.Errorf("relic %s: unknown buff %q", r.ID, g.Buff)
			}
		}
		c.relicIndex[r.ID] = i
		c.relics = append(c.relics, r)
	}
	groups := []struct {
		specs []enemySpec
		kind  EnemyKind
		dst   *[]*EnemyDef
	}{
		{spec.Enemies, KindNormal, &c.enemies},
		{spec.Elites, KindElite, &c.elites},
		{spec.Bosses, KindBoss, &c.bosses},
	}
	for _, g := range groups {
		for _, es := range g.specs {
			def, err := decodeEnemy(es, g.kind)
			if err != nil {
				return nil, err
			}
			if _, dup := c.enemyIndex[def.ID]; dup {
				return nil, fmt.Errorf("duplicate enemy %s", def.ID)
			}
			c.enemyIndex[def.ID] = def
			*g.dst = append(*g.dst, def)
		}
	}
	if len(c.enemies) == 0 || len(c.elites) == 0 || len(c.bosses) < 3 {
		return nil, fmt.Errorf("catalog needs enemies, elites and one boss per act (got %d/%d/%d)",
			len(c.enemies), len(c.elites), len(c.bosses))
	}
	for _, es := range spec.Events {
		ev, err := decodeEvent(es)
		if err != nil {
			return nil, err
		}
		c.events = append(c.events, ev)
		c.eventIndex[ev.ID] = ev
	}
	if len(c.events) == 0 {
		return nil, errors.New("catalog has no events")
	}
	return c, nil
}

func (c *Catalog) addCards(specs []cardSpec, curses bool) error {
	for _, s := range specs {
		if _, dup := c.cards[s.ID]; dup {
			return fmt.Errorf("duplicate card %s", s.ID)
		}
		base, err := decodeCard(s, false)
		if err != nil {
			return err
		}
		up, err := decodeCard(s, true)
		if err != nil {
			return err
		}
		if curses != base.IsCurse() {
			return fmt.Errorf("card %s: curse list and type disagree", s.ID)
		}
		c.cards[s.ID] = cardPair{base: base, up: up}
		c.order = append(c.order, s.ID)
		if curses {
			c.curses = append(c.curses, s.ID)
			continue
		}
		if !validRarity(base.Rarity) {
			return fmt.Errorf("card %s: unknown rarity %q", s.ID, s.Rarity)
		}
		c.byRarity[base.Rarity] = append(c.byRarity[base.Rarity], s.ID)
	}
	return nil
}

// Card returns the definition with the upgrade applied when requested.
func (c *Catalog) Card(id string, upgraded bool) (*CardDef, bool) {
	p, ok := c.cards[id]
	if !ok {
		return nil, false
	}
	if upgraded {
		return p.up, true
	}
	return p.base, true
}

// CardFor resolves a card instance.
func (c *Catalog) CardFor(ci *game.CardInstance) (*CardDef, error) {
	def, ok := c.Card(ci.ID, ci.Upgraded)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCard, ci.ID)
	}
	return def, nil
}

// CardIDs lists every card and curse id in catalog order.
func (c *Catalog) CardIDs() []string { return c.order }

func (c *Catalog) CardsOfRarity(r Rarity) []string { return c.byRarity[r] }

func (c *Catalog) Curses() []string { return c.curses }

func (c *Catalog) Relics() []RelicDef { return c.relics }

func (c *Catalog) Relic(id string) (RelicDef, bool) {
	i, ok := c.relicIndex[id]
	if !ok {
		return RelicDef{}, false
	}
	return c.relics[i], true
}

func (c *Catalog) Enemy(id string) (*EnemyDef, bool) {
	e, ok := c.enemyIndex[id]
	return e, ok
}

// EnemyPool returns normal enemies at or below the tier.
func (c *Catalog) EnemyPool(maxTier int) []*EnemyDef {
	var out []*EnemyDef
	for _, e := range c.enemies {
		if e.Tier <= maxTier {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return c.enemies
	}
	return out
}

func (c *Catalog) Enemies() []*EnemyDef { return c.enemies }

func (c *Catalog) Elites() []*EnemyDef { return c.elites }

// Boss returns the boss of an act, clamped to the known bosses.
func (c *Catalog) Boss(act int) *EnemyDef {
	i := act - 1
	if i < 0 {
		i = 0
	}
	if i >= len(c.bosses) {
		i = len(c.bosses) - 1
	}
	return c.bosses[i]
}

func (c *Catalog) Bosses() []*EnemyDef { return c.bosses }

func (c *Catalog) Events() []*EventDef { return c.events }

func (c *Catalog) Event(id string) (*EventDef, bool) {
	e, ok := c.eventIndex[id]
	return e, ok
}

func (c *Catalog) Twists() []game.Twist { return c.twists }

func (c *Catalog) StatusInfo(s game.Status) Info {
	if i, ok := c.statuses[s]; ok {
		return i
	}
	return Info{Name: string(s)}
}

func (c *Catalog) BuffInfo(b game.Buff) Info {
	if i, ok := c.buffs[b]; ok {
		return i
	}
	return Info{Name: string(b)}
}

// BuffIDs returns the described buffs sorted by id.
func (c *Catalog) BuffIDs() []game.Buff {
	out := make([]game.Buff, 0, len(c.buffs))
	for b := range c.buffs {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
