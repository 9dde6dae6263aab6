package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Noty-chan/rogue-prison/internal/content"
	"github.com/Noty-chan/rogue-prison/internal/game"
	"github.com/Noty-chan/rogue-prison/internal/rng"
)

var starterIDs = []string{
	"ARCANE_JAB", "ARCANE_JAB", "GUARD_SIGIL", "GUARD_SIGIL", "SPARK_SHOT",
	"SIDESTEP_GLYPH", "FOCUS", "MANA_DRIP", "RUNE_SLASH", "CHAIN_PULL",
}

func testCatalog(t *testing.T) *content.Catalog {
	t.Helper()
	cat, err := content.Default()
	require.NoError(t, err)
	return cat
}

// fixture builds a one-rat combat with the given hand and an empty draw pile.
func fixture(t *testing.T, hand ...string) (*game.Run, *content.Catalog) {
	t.Helper()
	cat := testCatalog(t)
	def, ok := cat.Enemy("RAT_MAGE")
	require.True(t, ok)
	e := newEnemy(def, 1)
	e.HP, e.MaxHP = 40, 40
	ChooseIntent(e, def, &rng.Sequence{})

	c := &game.Combat{
		Turn:  1,
		Phase: game.PhasePlayer,
		Player: &game.Player{
			Combatant: game.Combatant{Name: "You", HP: 50, MaxHP: 50},
			Mana:      3,
			ManaMax:   3,
		},
		Enemies: []*game.Enemy{e},
	}
	for _, id := range hand {
		c.Hand = append(c.Hand, game.NewCardInstance(id, false))
	}
	run := &game.Run{ID: "run_test", Seed: 7, Floor: 1, Act: 1, HP: 50, MaxHP: 50, Combat: c}
	return run, cat
}

func newTestSession(t *testing.T, run *game.Run, cat *content.Catalog, src rng.Source) *Session {
	t.Helper()
	s, err := NewSession(run, cat, src)
	require.NoError(t, err)
	return s
}

func snapshot(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func uidOf(c *game.Combat, id string) string {
	for _, ci := range c.Hand {
		if ci.ID == id {
			return ci.UID
		}
	}
	return ""
}

func TestPlayCardDealsDamageAndDiscards(t *testing.T) {
	run, cat := fixture(t, "ARCANE_JAB", "GUARD_SIGIL")
	c := run.Combat
	s := newTestSession(t, run, cat, &rng.Sequence{Floats: []float64{0.99}})

	out, err := s.PlayCard(uidOf(c, "ARCANE_JAB"), intPtr(0))
	require.NoError(t, err)
	assert.Equal(t, Ongoing, out)
	assert.Equal(t, 34, c.Enemies[0].HP)
	assert.Equal(t, 2, c.Player.Mana)
	require.Len(t, c.Discard, 1)
	assert.Equal(t, "ARCANE_JAB", c.Discard[0].ID)
	assert.Equal(t, 2, c.CardCount())
}

func TestCritUsesTheStream(t *testing.T) {
	for _, tc := range []struct {
		roll float64
		hp   int
	}{
		{roll: 0.10, hp: 28},
		{roll: 0.20, hp: 34},
	} {
		run, cat := fixture(t, "ARCANE_JAB")
		run.Combat.Player.Crit = game.BaseCrit
		s := newTestSession(t, run, cat, &rng.Sequence{Floats: []float64{tc.roll}})
		_, err := s.PlayCard(run.Combat.Hand[0].UID, intPtr(0))
		require.NoError(t, err)
		assert.Equal(t, tc.hp, run.Combat.Enemies[0].HP, "roll %v", tc.roll)
	}
}

func TestRejectedPlaysDoNotMutate(t *testing.T) {
	cases := []struct {
		name   string
		hand   []string
		setup  func(c *game.Combat)
		card   string
		target *int
		want   string
	}{
		{name: "not enough mana", hand: []string{"ARCANE_JAB"}, setup: func(c *game.Combat) { c.Player.Mana = 0 }, card: "ARCANE_JAB", target: intPtr(0), want: MsgNoMana},
		{name: "missing target", hand: []string{"ARCANE_JAB"}, card: "ARCANE_JAB", want: MsgNeedTarget},
		{name: "dead target", hand: []string{"ARCANE_JAB"}, setup: func(c *game.Combat) { c.Enemies = append(c.Enemies, &game.Enemy{Combatant: game.Combatant{Name: "Corpse"}}) }, card: "ARCANE_JAB", target: intPtr(1), want: MsgBadTarget},
		{name: "curse", hand: []string{"CURSE_DREAD"}, card: "CURSE_DREAD", want: MsgCurseUnplayable},
		{name: "not in hand", hand: []string{"GUARD_SIGIL"}, card: "ARCANE_JAB", want: MsgCardNotInHand},
		{name: "enemy phase", hand: []string{"GUARD_SIGIL"}, setup: func(c *game.Combat) { c.Phase = game.PhaseEnemy }, card: "GUARD_SIGIL", want: MsgNotYourTurn},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			run, cat := fixture(t, tc.hand...)
			if tc.setup != nil {
				tc.setup(run.Combat)
			}
			before := snapshot(t, run)
			s := newTestSession(t, run, cat, &rng.Sequence{})
			_, err := s.PlayCard(uidOf(run.Combat, tc.card), tc.target)
			require.Error(t, err)
			assert.True(t, IsRejected(err))
			assert.Equal(t, tc.want, err.Error())
			assert.Equal(t, before, snapshot(t, run))
		})
	}
}

func TestBlockAbsorbsHit(t *testing.T) {
	run, cat := fixture(t)
	p := run.Combat.Player
	p.Block = 10
	cc := newCombatContext(run, cat, &rng.Sequence{})

	taken, _ := cc.dealDamage(&run.Combat.Enemies[0].Combatant, &p.Combatant, 8, false, "Rat Mage - Bite")
	assert.Equal(t, 0, taken)
	assert.Equal(t, 50, p.HP)
	assert.Equal(t, 2, p.Block)
}

func TestScavengeWaitsForDiscardThenGainsMana(t *testing.T) {
	run, cat := fixture(t, "SCAVENGE", "ARCANE_JAB", "GUARD_SIGIL")
	c := run.Combat
	s := newTestSession(t, run, cat, &rng.Sequence{})

	_, err := s.PlayCard(uidOf(c, "SCAVENGE"), nil)
	require.NoError(t, err)
	require.NotNil(t, c.Pending)
	assert.Equal(t, game.PendingDiscardChoose, c.Pending.Type)
	assert.Equal(t, 2, c.Player.Mana)

	_, err = s.PlayCard(uidOf(c, "GUARD_SIGIL"), nil)
	assert.Equal(t, MsgPendingChoice, err.Error())
	_, err = s.EndTurn()
	assert.Equal(t, MsgPendingChoice, err.Error())

	_, err = s.ResolvePending(Answer{CardUIDs: []string{uidOf(c, "ARCANE_JAB"), uidOf(c, "GUARD_SIGIL")}})
	assert.Equal(t, MsgBadSelection, err.Error())

	jab := uidOf(c, "ARCANE_JAB")
	_, err = s.ResolvePending(Answer{CardUID: jab})
	require.NoError(t, err)
	assert.Nil(t, c.Pending)
	assert.Equal(t, 4, c.Player.Mana)
	assert.Equal(t, -1, c.HandIndex(jab))
	assert.Len(t, c.Discard, 2)
}

func TestDiscardEngineFiresOnDiscard(t *testing.T) {
	run, cat := fixture(t, "DISCARD_ENGINE", "SCAVENGE", "SPARK_SHOT")
	c := run.Combat
	s := newTestSession(t, run, cat, &rng.Sequence{})

	_, err := s.PlayCard(uidOf(c, "DISCARD_ENGINE"), nil)
	require.NoError(t, err)
	require.Len(t, c.Exhaust, 1)
	assert.Equal(t, 1, c.Player.BuffCount(game.BuffManaOnDiscard))

	_, err = s.PlayCard(uidOf(c, "SCAVENGE"), nil)
	require.NoError(t, err)
	_, err = s.ResolvePending(Answer{CardUID: uidOf(c, "SPARK_SHOT")})
	require.NoError(t, err)
	// 3 - 1 - 1, +1 from the hook, +2 from Scavenge.
	assert.Equal(t, 4, c.Player.Mana)
}

func TestChooseOneRunsPickedOption(t *testing.T) {
	run, cat := fixture(t, "WARDENS_KEY")
	c := run.Combat
	s := newTestSession(t, run, cat, &rng.Sequence{})

	_, err := s.PlayCard(c.Hand[0].UID, nil)
	require.NoError(t, err)
	require.NotNil(t, c.Pending)
	assert.Equal(t, game.PendingChooseOne, c.Pending.Type)
	assert.Len(t, c.Pending.Options, 3)

	_, err = s.ResolvePending(Answer{OptionIndex: intPtr(5)})
	assert.True(t, IsRejected(err))

	_, err = s.ResolvePending(Answer{OptionIndex: intPtr(2)})
	require.NoError(t, err)
	assert.Nil(t, c.Pending)
	assert.Equal(t, 10, c.Player.Block)
}

func TestStunSkipsTheTurn(t *testing.T) {
	run, cat := fixture(t, "GUARD_SIGIL")
	c := run.Combat
	c.Player.SetStatus(game.StatusStun, 1)
	s := newTestSession(t, run, cat, &rng.Sequence{})

	out, err := s.EndTurn()
	require.NoError(t, err)
	assert.Equal(t, Ongoing, out)
	assert.Equal(t, 3, c.Turn)
	assert.Equal(t, game.PhasePlayer, c.Phase)
	assert.Equal(t, 0, c.Player.Status(game.StatusStun))
	assert.Less(t, c.Player.HP, 50)
}

func TestFreezeSkipIsARoll(t *testing.T) {
	for _, tc := range []struct {
		roll   float64
		turn   int
		frozen int
	}{
		{roll: 0.0, turn: 3, frozen: 0},
		{roll: 0.99, turn: 2, frozen: 1},
	} {
		run, cat := fixture(t)
		c := run.Combat
		c.Player.SetStatus(game.StatusFreeze, 1)
		s := newTestSession(t, run, cat, &rng.Sequence{Floats: []float64{tc.roll}})

		_, err := s.EndTurn()
		require.NoError(t, err)
		assert.Equal(t, tc.turn, c.Turn, "roll %v", tc.roll)
		assert.Equal(t, tc.frozen, c.Player.Status(game.StatusFreeze), "roll %v", tc.roll)
	}
}

func TestEnemyPoisonDecays(t *testing.T) {
	run, cat := fixture(t)
	e := run.Combat.Enemies[0]
	e.SetStatus(game.StatusPoison, 3)
	s := newTestSession(t, run, cat, &rng.Sequence{})

	_, err := s.EndTurn()
	require.NoError(t, err)
	assert.Equal(t, 37, e.HP)
	assert.Equal(t, 2, e.Status(game.StatusPoison))
}

func TestBurnBoostHoldsEveryOtherTick(t *testing.T) {
	run, cat := fixture(t)
	c := run.Combat
	c.Player.AddBuff(game.BuffBurnBoost, 1)
	e := c.Enemies[0]
	e.SetStatus(game.StatusBurn, 3)
	cc := newCombatContext(run, cat, &rng.Sequence{})

	cc.tickBurn(&e.Combatant)
	assert.Equal(t, 36, e.HP)
	assert.Equal(t, 3, e.Status(game.StatusBurn))
	cc.tickBurn(&e.Combatant)
	assert.Equal(t, 32, e.HP)
	assert.Equal(t, 2, e.Status(game.StatusBurn))
}

func TestStaysInHandGainsCharge(t *testing.T) {
	run, cat := fixture(t, "COIL_OF_POWER", "GUARD_SIGIL")
	c := run.Combat
	coil := uidOf(c, "COIL_OF_POWER")
	s := newTestSession(t, run, cat, &rng.Sequence{Floats: []float64{0.99}})

	_, err := s.EndTurn()
	require.NoError(t, err)
	i := c.HandIndex(coil)
	require.GreaterOrEqual(t, i, 0)
	assert.Equal(t, 2, c.Hand[i].Charge)

	s = newTestSession(t, run, cat, &rng.Sequence{Floats: []float64{0.99}})
	hp := c.Enemies[0].HP
	_, err = s.PlayCard(coil, intPtr(0))
	require.NoError(t, err)
	assert.Equal(t, hp-6, c.Enemies[0].HP)
}

func TestWinIsTerminal(t *testing.T) {
	run, cat := fixture(t, "ARCANE_JAB")
	run.Combat.Enemies[0].HP = 3
	s := newTestSession(t, run, cat, &rng.Sequence{Floats: []float64{0.99}})

	out, err := s.PlayCard(run.Combat.Hand[0].UID, intPtr(0))
	require.NoError(t, err)
	assert.Equal(t, Won, out)
	assert.Nil(t, run.Combat)
	require.NotNil(t, run.Reward)
	assert.Len(t, run.Reward.Cards, 3)
	assert.Equal(t, 18, run.Reward.Gold)
	assert.Equal(t, 18, run.Gold)
	assert.Equal(t, 50, run.HP)

	_, err = NewSession(run, cat, &rng.Sequence{})
	assert.True(t, IsRejected(err))
}

func TestLossIsTerminal(t *testing.T) {
	run, cat := fixture(t)
	run.Combat.Player.HP = 2
	run.Combat.Player.SetStatus(game.StatusBurn, 5)
	s := newTestSession(t, run, cat, &rng.Sequence{})

	out, err := s.EndTurn()
	require.NoError(t, err)
	assert.Equal(t, Lost, out)
	assert.Nil(t, run.Combat)
	assert.Equal(t, 0, run.HP)
}

func TestChooseIntentFailsOpen(t *testing.T) {
	half := 0.5
	def := &content.EnemyDef{ID: "X", Moves: []content.Move{
		{ID: "LATE", Weight: 1, Threshold: &half, Action: content.Attack{Damage: 9}},
		{ID: "VOID", Weight: 1, Requires: content.Requirements{PhaseIs: "void"}, Action: content.Fortify{Block: 5}},
	}}
	e := &game.Enemy{Combatant: game.Combatant{HP: 10, MaxHP: 10}}
	ChooseIntent(e, def, &rng.Sequence{Floats: []float64{0}})
	assert.Equal(t, "LATE", e.NextMove)
	require.NotNil(t, e.Intent)
	assert.Equal(t, "attack", e.Intent.Kind)

	e.HP = 4
	e.PhaseTag = "void"
	e.LastMove = "LATE"
	def.Moves[0].Weight = 4
	// LATE drops to weight 2 after repeating; a roll of 2.5 of 3 lands on VOID.
	ChooseIntent(e, def, &rng.Sequence{Floats: []float64{2.5 / 3}})
	assert.Equal(t, "VOID", e.NextMove)
}

func TestStartCombatDealsOpeningHand(t *testing.T) {
	cat := testCatalog(t)
	run := &game.Run{ID: "run_x", Seed: 99, Floor: 1, Act: 1, HP: 70, MaxHP: 70, Relics: []string{"STARTER_SEAL"}}
	for _, id := range starterIDs {
		run.AddCard(id, false)
	}

	c := StartCombat(run, cat, rng.New(run.Seed, 0), game.RoomFight)
	require.Same(t, c, run.Combat)
	assert.Len(t, c.Hand, game.CombatDraw)
	assert.Equal(t, len(starterIDs), c.CardCount())
	assert.Equal(t, 4, c.Player.ManaMax)
	assert.Equal(t, game.PhasePlayer, c.Phase)
	require.NotEmpty(t, c.Enemies)
	for _, e := range c.Enemies {
		assert.NotNil(t, e.Intent)
		assert.GreaterOrEqual(t, e.HP, minEnemyHP)
	}
}

func TestBossFloorOverridesRoom(t *testing.T) {
	cat := testCatalog(t)
	run := &game.Run{ID: "run_b", Seed: 5, Floor: 4, Act: 1, HP: 70, MaxHP: 70}
	run.AddCard("ARCANE_JAB", false)

	c := StartCombat(run, cat, rng.New(run.Seed, 0), game.RoomFight)
	require.Len(t, c.Enemies, 1)
	assert.Equal(t, cat.Boss(1).ID, c.Enemies[0].DefID)
}

// Plays whole combats with real streams and checks that cards are never
// created or lost and mana never goes negative.
func TestCombatConservesCards(t *testing.T) {
	cat := testCatalog(t)
	for seed := int64(1); seed <= 5; seed++ {
		run := &game.Run{ID: "run_p", Seed: seed, Floor: 3, Act: 1, HP: 70, MaxHP: 70, Relics: []string{"STARTER_SEAL"}}
		for _, id := range starterIDs {
			run.AddCard(id, false)
		}
		StartCombat(run, cat, rng.Next(run.Seed, &run.RNGCounter), game.RoomFight)

		for step := 0; step < 200 && run.Combat != nil; step++ {
			c := run.Combat
			s := newTestSession(t, run, cat, rng.Next(run.Seed, &run.RNGCounter))
			var err error
			switch {
			case c.Pending != nil:
				_, err = s.ResolvePending(firstAnswer(c))
			default:
				uid, target := firstPlayable(cat, c)
				if uid == "" {
					_, err = s.EndTurn()
				} else {
					_, err = s.PlayCard(uid, target)
				}
			}
			require.NoError(t, err, "seed %d step %d", seed, step)
			if run.Combat != nil {
				require.Equal(t, len(starterIDs), run.Combat.CardCount(), "seed %d step %d", seed, step)
				require.GreaterOrEqual(t, run.Combat.Player.Mana, 0)
			}
		}
	}
}

func firstAnswer(c *game.Combat) Answer {
	pd := c.Pending
	var zone []*game.CardInstance
	switch pd.Type {
	case game.PendingChooseOne:
		return Answer{OptionIndex: intPtr(0)}
	case game.PendingDiscardChoose:
		zone = c.Hand
	default:
		zone = c.Discard
	}
	var uids []string
	for _, ci := range zone[:min(pd.N, len(zone))] {
		uids = append(uids, ci.UID)
	}
	return Answer{CardUIDs: uids}
}

func firstPlayable(cat *content.Catalog, c *game.Combat) (string, *int) {
	var target *int
	for i, e := range c.Enemies {
		if e.Alive() {
			target = intPtr(i)
			break
		}
	}
	for _, ci := range c.Hand {
		def, err := cat.CardFor(ci)
		if err != nil || def.IsCurse() || CardCost(def, ci) > c.Player.Mana {
			continue
		}
		return ci.UID, target
	}
	return "", nil
}
