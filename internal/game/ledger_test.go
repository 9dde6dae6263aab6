package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddStatusIgnoresNonPositiveAndImmune(t *testing.T) {
	c := &Combatant{Immunities: []Status{StatusFreeze}}
	assert.False(t, c.AddStatus(StatusPoison, 0))
	assert.False(t, c.AddStatus(StatusPoison, -2))
	assert.False(t, c.AddStatus(StatusFreeze, 3))
	assert.True(t, c.AddStatus(StatusPoison, 2))
	assert.True(t, c.AddStatus(StatusPoison, 1))
	assert.Equal(t, 3, c.Status(StatusPoison))
	assert.Equal(t, 0, c.Status(StatusFreeze))
}

func TestSetStatusRemovesKeyAtZero(t *testing.T) {
	c := &Combatant{}
	c.SetStatus(StatusBurn, 2)
	c.DecayStatus(StatusBurn, 1)
	assert.Equal(t, 1, c.Status(StatusBurn))
	c.DecayStatus(StatusBurn, 5)
	_, ok := c.Statuses[StatusBurn]
	assert.False(t, ok)
}

func TestConsumeBuffDropsExhausted(t *testing.T) {
	c := &Combatant{}
	c.AddBuff(BuffArcaneCharge, 2)
	assert.Equal(t, 1, c.ConsumeBuff(BuffArcaneCharge, 1))
	assert.Equal(t, 0, c.ConsumeBuff(BuffArcaneCharge, 1))
	assert.False(t, c.HasBuff(BuffArcaneCharge))
	assert.Equal(t, 0, c.ConsumeBuff(BuffBattery, 1))
}

func TestHealAndLoseHPClamp(t *testing.T) {
	c := &Combatant{HP: 8, MaxHP: 10}
	assert.Equal(t, 2, c.Heal(5))
	assert.Equal(t, 10, c.HP)
	assert.Equal(t, 10, c.LoseHP(15))
	assert.Equal(t, 0, c.HP)
	assert.False(t, c.Alive())
}

func TestEnemyStatusBonusNeverNegative(t *testing.T) {
	e := &Enemy{}
	assert.Equal(t, 2, e.WithBonus(StatusFreeze, 2))
	e.BoostStatus(StatusFreeze, 1)
	assert.Equal(t, 3, e.WithBonus(StatusFreeze, 2))
	e.BoostStatus(StatusPoison, -5)
	assert.Equal(t, 0, e.WithBonus(StatusPoison, 2))
	assert.Equal(t, 1.0, e.Multiplier())
}

func TestCombatLogIsCapped(t *testing.T) {
	c := &Combat{}
	for i := 0; i < LogCap+15; i++ {
		c.Logf("line %d", i)
	}
	require.Len(t, c.Log, LogCap)
	assert.Equal(t, "line 15", c.Log[0])
}

func TestRemoveFromHandKeepsOrder(t *testing.T) {
	a, b, d := NewCardInstance("A", false), NewCardInstance("B", false), NewCardInstance("C", true)
	c := &Combat{Hand: []*CardInstance{a, b, d}}
	got := c.RemoveFromHand(b.UID)
	require.NotNil(t, got)
	assert.Equal(t, []*CardInstance{a, d}, c.Hand)
	assert.Nil(t, c.RemoveFromHand("missing"))
	assert.True(t, strings.HasPrefix(a.UID, "card_"))
}

func TestFinishSnapshotsDeck(t *testing.T) {
	s := DefaultState(100)
	s.Run = &Run{ID: "run_x", Floor: 4, Act: 1, Deck: []*CardInstance{NewCardInstance("FOCUS", true)}}
	s.Finish(ResultDefeat, 200)
	assert.Equal(t, []DeckEntry{{ID: "FOCUS", Upgraded: true}}, s.Meta.LastDeck)
	require.NotNil(t, s.Meta.LastRun)
	assert.Equal(t, "run_x", s.Meta.LastRun.RunID)
	assert.Equal(t, int64(200), s.Meta.LastRun.At)
}
