package game

// Combatant is the shared hp/block/status/buff ledger of the player and
// every enemy.
type Combatant struct {
	Name       string         `json:"name"`
	HP         int            `json:"hp"`
	MaxHP      int            `json:"max_hp"`
	Block      int            `json:"block"`
	Statuses   map[Status]int `json:"statuses"`
	Buffs      map[Buff]int   `json:"buffs"`
	Immunities []Status       `json:"immunities,omitempty"`
}

func (c *Combatant) Alive() bool { return c.HP > 0 }

// HPFraction returns hp/max_hp, treating a zero max as full health.
func (c *Combatant) HPFraction() float64 {
	if c.MaxHP <= 0 {
		return 1
	}
	return float64(c.HP) / float64(c.MaxHP)
}

func (c *Combatant) Status(s Status) int {
	return c.Statuses[s]
}

func (c *Combatant) Immune(s Status) bool {
	for _, im := range c.Immunities {
		if im == s {
			return true
		}
	}
	return false
}

// AddStatus adds stacks unless the amount is non-positive or the bearer is
// immune. It reports whether anything was applied.
func (c *Combatant) AddStatus(s Status, stacks int) bool {
	if stacks <= 0 || c.Immune(s) {
		return false
	}
	if c.Statuses == nil {
		c.Statuses = map[Status]int{}
	}
	c.Statuses[s] += stacks
	return true
}

// SetStatus overwrites the stack count; zero or less removes the key.
func (c *Combatant) SetStatus(s Status, stacks int) {
	if stacks <= 0 {
		delete(c.Statuses, s)
		return
	}
	if c.Statuses == nil {
		c.Statuses = map[Status]int{}
	}
	c.Statuses[s] = stacks
}

func (c *Combatant) DecayStatus(s Status, by int) {
	c.SetStatus(s, c.Status(s)-by)
}

func (c *Combatant) BuffCount(b Buff) int {
	return c.Buffs[b]
}

func (c *Combatant) HasBuff(b Buff) bool {
	_, ok := c.Buffs[b]
	return ok
}

func (c *Combatant) AddBuff(b Buff, stacks int) {
	if stacks <= 0 {
		return
	}
	if c.Buffs == nil {
		c.Buffs = map[Buff]int{}
	}
	c.Buffs[b] += stacks
}

// ConsumeBuff removes up to n stacks and returns what remains. The key is
// dropped once exhausted.
func (c *Combatant) ConsumeBuff(b Buff, n int) int {
	cur := c.Buffs[b]
	if n <= 0 {
		return cur
	}
	if cur <= n {
		delete(c.Buffs, b)
		return 0
	}
	c.Buffs[b] = cur - n
	return c.Buffs[b]
}

func (c *Combatant) ClearBuff(b Buff) {
	delete(c.Buffs, b)
}

// Heal raises hp up to max and returns the amount actually restored.
func (c *Combatant) Heal(n int) int {
	if n <= 0 {
		return 0
	}
	before := c.HP
	c.HP += n
	if c.HP > c.MaxHP {
		c.HP = c.MaxHP
	}
	return c.HP - before
}

// LoseHP bypasses block and clamps at zero.
func (c *Combatant) LoseHP(n int) int {
	if n <= 0 {
		return 0
	}
	before := c.HP
	c.HP -= n
	if c.HP < 0 {
		c.HP = 0
	}
	return before - c.HP
}
