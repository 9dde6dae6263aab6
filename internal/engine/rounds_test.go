package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Noty-chan/rogue-prison/internal/content"
	"github.com/Noty-chan/rogue-prison/internal/game"
	"github.com/Noty-chan/rogue-prison/internal/rng"
)

func TestTakeFromDiscardReducesCost(t *testing.T) {
	run, cat := fixture(t, "INFINITE_LOOP")
	c := run.Combat
	jab := game.NewCardInstance("ARCANE_JAB", false)
	c.Discard = append(c.Discard, jab)
	s := newTestSession(t, run, cat, &rng.Sequence{Floats: []float64{0.99}})

	_, err := s.PlayCard(uidOf(c, "INFINITE_LOOP"), nil)
	require.NoError(t, err)
	require.NotNil(t, c.Pending)
	assert.Equal(t, game.PendingTakeFromDiscard, c.Pending.Type)

	_, err = s.ResolvePending(Answer{CardUID: jab.UID})
	require.NoError(t, err)
	require.NotEqual(t, -1, c.HandIndex(jab.UID))
	assert.Equal(t, 1, jab.CostMod)
	def, ok := cat.Card("ARCANE_JAB", false)
	require.True(t, ok)
	assert.Equal(t, 0, CardCost(def, jab))

	_, err = s.PlayCard(jab.UID, intPtr(0))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Player.Mana)
	assert.Equal(t, 34, c.Enemies[0].HP)
}

func TestBounceReturnsCardToHand(t *testing.T) {
	run, cat := fixture(t, "ARCANE_JAB")
	c := run.Combat
	c.Player.AddBuff(game.BuffBounceNext, 1)
	s := newTestSession(t, run, cat, &rng.Sequence{Floats: []float64{0.99, 0.99}})
	jab := c.Hand[0].UID

	_, err := s.PlayCard(jab, intPtr(0))
	require.NoError(t, err)
	assert.NotEqual(t, -1, c.HandIndex(jab))
	assert.Empty(t, c.Discard)
	assert.Equal(t, 0, c.Player.BuffCount(game.BuffBounceNext))

	_, err = s.PlayCard(jab, intPtr(0))
	require.NoError(t, err)
	assert.Equal(t, -1, c.HandIndex(jab))
	assert.Len(t, c.Discard, 1)
	assert.Equal(t, 28, c.Enemies[0].HP)
}

func TestCursePenaltiesCarryIntoNextTurn(t *testing.T) {
	run, cat := fixture(t, "CURSE_SHACKLE_RUST", "CURSE_DREAD", "CURSE_FOG", "CURSE_TOXIN")
	c := run.Combat
	for i := 0; i < 3; i++ {
		c.Draw = append(c.Draw, game.NewCardInstance("ARCANE_JAB", false))
	}
	cc := newCombatContext(run, cat, &rng.Sequence{})

	cc.applyCursePenalties()
	p := c.Player
	assert.Equal(t, 48, p.HP)
	assert.Equal(t, 1, p.Status(game.StatusWeak))
	assert.Equal(t, 2, p.Status(game.StatusPoison))
	assert.Equal(t, 1, c.DrawPenalty)

	skipped := cc.startPlayerTurn()
	require.False(t, skipped)
	// Poison ticks before the draw; fog costs one of the two open slots.
	assert.Equal(t, 46, p.HP)
	assert.Equal(t, 1, p.Status(game.StatusPoison))
	assert.Len(t, c.Hand, 5)
	assert.Len(t, c.Draw, 2)
	assert.Equal(t, 0, c.DrawPenalty)
}

func TestEndOfTurnAuras(t *testing.T) {
	cases := []struct {
		buff       game.Buff
		wantPoison int
		wantBurn   int
	}{
		{buff: game.BuffEclipse, wantPoison: 2, wantBurn: 2},
		{buff: game.BuffEclipsePlus, wantPoison: 3, wantBurn: 3},
		{buff: game.BuffPhoenixHeart, wantBurn: 1},
		{buff: game.BuffPhoenixHeartPlus, wantBurn: 2},
		{buff: game.BuffVenomRain, wantPoison: 2},
		{buff: game.BuffVenomRainPlus, wantPoison: 3},
	}
	for _, tc := range cases {
		t.Run(string(tc.buff), func(t *testing.T) {
			run, cat := fixture(t)
			run.Combat.Player.AddBuff(tc.buff, 1)
			cc := newCombatContext(run, cat, &rng.Sequence{})

			cc.endOfTurnBuffs()
			e := run.Combat.Enemies[0]
			assert.Equal(t, tc.wantPoison, e.Status(game.StatusPoison))
			assert.Equal(t, tc.wantBurn, e.Status(game.StatusBurn))
		})
	}
}

func TestPoisonNoDecayCoversThePlayer(t *testing.T) {
	cases := []struct {
		name string
		buff game.Buff
		want int
	}{
		{name: "no buff", want: 2},
		{name: "poison no decay", buff: game.BuffPoisonNoDecay, want: 3},
		{name: "venom rain", buff: game.BuffVenomRain, want: 3},
		{name: "venom rain plus", buff: game.BuffVenomRainPlus, want: 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			run, cat := fixture(t)
			p := run.Combat.Player
			p.SetStatus(game.StatusPoison, 3)
			if tc.buff != "" {
				p.AddBuff(tc.buff, 1)
			}
			cc := newCombatContext(run, cat, &rng.Sequence{})

			cc.tickPoison(&p.Combatant)
			assert.Equal(t, 47, p.HP)
			assert.Equal(t, tc.want, p.Status(game.StatusPoison))
		})
	}
}

func TestPhaseShiftBoostsLaterMoves(t *testing.T) {
	run, cat := fixture(t)
	c := run.Combat
	e := c.Enemies[0]
	cc := newCombatContext(run, cat, &rng.Sequence{})

	cc.execMove(e, content.Move{ID: "AUDIT", Name: "Audit", Action: content.PhaseShift{
		Phase:   "audit",
		Block:   10,
		DmgMult: 1.2,
		Boost:   &content.StatusBoost{Status: game.StatusPoison, Bonus: 2},
	}})
	assert.Equal(t, "audit", e.PhaseTag)
	assert.Equal(t, 10, e.Block)
	assert.InDelta(t, 1.2, e.DmgMult, 1e-9)
	assert.Equal(t, 2, e.StatusBonus[game.StatusPoison])

	cc.execMove(e, content.Move{ID: "SPIT", Name: "Spit", Action: content.Inflict{Status: game.StatusPoison, Stacks: 2}})
	assert.Equal(t, 4, c.Player.Status(game.StatusPoison))

	cc.execMove(e, content.Move{ID: "BITE", Name: "Bite", Action: content.Attack{Damage: 10}})
	assert.Equal(t, 38, c.Player.HP)
}

func TestCounterPrepStrikesBackOnce(t *testing.T) {
	run, cat := fixture(t, "ARCANE_JAB", "ARCANE_JAB")
	c := run.Combat
	e := c.Enemies[0]
	cc := newCombatContext(run, cat, &rng.Sequence{})
	cc.execMove(e, content.Move{ID: "WARD", Name: "Ward", Action: content.CounterPrep{
		Block: 10, Damage: 4, Status: game.StatusWeak, Stacks: 1,
	}})
	require.NotNil(t, e.Counter)
	assert.Equal(t, 10, e.Block)

	s := newTestSession(t, run, cat, &rng.Sequence{Floats: []float64{0.99, 0.99}})
	_, err := s.PlayCard(c.Hand[0].UID, intPtr(0))
	require.NoError(t, err)
	assert.Nil(t, e.Counter)
	assert.Equal(t, 46, c.Player.HP)
	assert.Equal(t, 1, c.Player.Status(game.StatusWeak))
	assert.Equal(t, 4, e.Block)

	// Weak jab for 4 only strips the remaining block.
	_, err = s.PlayCard(c.Hand[0].UID, intPtr(0))
	require.NoError(t, err)
	assert.Equal(t, 46, c.Player.HP)
	assert.Equal(t, 0, e.Block)
	assert.Equal(t, 40, e.HP)
}
