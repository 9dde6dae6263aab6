package content

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Noty-chan/rogue-prison/internal/game"
)

func TestDefaultCatalogLoads(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)
	for r, want := range RarityCounts {
		assert.Len(t, cat.CardsOfRarity(r), want, "rarity %s", r)
	}
	assert.NotEmpty(t, cat.Curses())
	assert.Len(t, cat.Bosses(), 3)
	assert.NotEmpty(t, cat.Elites())
	assert.NotEmpty(t, cat.Events())
	assert.NotEmpty(t, cat.Twists())
	_, ok := cat.Relic("STARTER_SEAL")
	assert.True(t, ok)
	for _, s := range game.Statuses {
		assert.NotEqual(t, string(s), cat.StatusInfo(s).Name, "status %s lacks a description", s)
	}
}

func TestStarterCardsExist(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)
	for _, id := range []string{"ARCANE_JAB", "GUARD_SIGIL", "SPARK_SHOT", "SIDESTEP_GLYPH", "MANA_DRIP"} {
		_, ok := cat.Card(id, false)
		assert.True(t, ok, id)
	}
}

func TestUpgradeOverridesChargeAndCost(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	coil, _ := cat.Card("COIL_OF_POWER", false)
	coilUp, _ := cat.Card("COIL_OF_POWER", true)
	assert.Equal(t, 2, coil.ChargePerTurn)
	assert.Equal(t, 3, coilUp.ChargePerTurn)
	assert.Equal(t, "Coil of Power+", coilUp.DisplayName())
	dmg, ok := coilUp.Effects[0].(Damage)
	require.True(t, ok)
	assert.Equal(t, Amount{Base: 5, PlusCharge: true}, dmg.Amount)

	// Cost-only upgrades keep the base effects.
	shard, _ := cat.Card("MIRROR_SHARD", false)
	shardUp, _ := cat.Card("MIRROR_SHARD", true)
	assert.Equal(t, 1, shard.Cost)
	assert.Equal(t, 0, shardUp.Cost)
	assert.Equal(t, shard.Effects, shardUp.Effects)
}

func TestUpgradeCardsAlwaysExhaust(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)
	for _, id := range cat.CardIDs() {
		def, _ := cat.Card(id, false)
		if def.Type == TypeUpgrade {
			assert.True(t, def.ExhaustsOnPlay(), id)
		}
	}
}

func TestEnemyPoolByTier(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)
	for _, e := range cat.EnemyPool(1) {
		assert.Equal(t, 1, e.Tier, e.ID)
	}
	assert.Len(t, cat.EnemyPool(3), len(cat.Enemies()))
	assert.Equal(t, cat.EnemyPool(0), cat.Enemies())

	wraith, ok := cat.Enemy("ICE_WRAITH")
	require.True(t, ok)
	assert.Equal(t, []game.Status{game.StatusFreeze}, wraith.Immune)
	assert.Equal(t, "base", wraith.Phase)
}

func TestBossClampsAct(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "BOSS_INQUISITOR", cat.Boss(0).ID)
	assert.Equal(t, "BOSS_WARDEN", cat.Boss(2).ID)
	assert.Equal(t, "BOSS_VOID_JUDGE", cat.Boss(9).ID)

	m, ok := cat.Boss(3).Move("ASCEND")
	require.True(t, ok)
	ps, ok := m.Action.(PhaseShift)
	require.True(t, ok)
	assert.Equal(t, "void", ps.Phase)
	require.NotNil(t, ps.Boost)
	assert.Equal(t, game.StatusPoison, ps.Boost.Status)
}

const miniCatalog = `
cards:
%s
curses:
  - {id: C, name: C, type: curse, curse: {lose_hp: 1}}
enemies:
  - {id: E, name: E, max_hp: 10, moves: [{id: M, type: attack, dmg: 1}]}
elites:
  - {id: L, name: L, max_hp: 10, moves: [{id: M, type: attack, dmg: 1}]}
bosses:
  - {id: B1, name: B, max_hp: 10, moves: [{id: M, type: attack, dmg: 1}]}
  - {id: B2, name: B, max_hp: 10, moves: [{id: M, type: mystery}]}
  - {id: B3, name: B, max_hp: 10, moves: [{id: M, type: attack, dmg: 1}]}
events:
  - {id: V, name: V, options: [{id: A, label: A, effect: {op: teleport}}]}
`

func miniCards(extra string) string {
	out := ""
	n := 0
	for r, count := range RarityCounts {
		for i := 0; i < count; i++ {
			n++
			out += "  - {id: K" + string(rune('A'+n/26)) + string(rune('A'+n%26)) +
				", name: K, rarity: " + string(r) + ", type: skill, cost: 1, target: none" + extra + "}\n"
		}
	}
	return out
}

func load(t *testing.T, extra string) (*Catalog, error) {
	t.Helper()
	return Load([]byte(fmt.Sprintf(miniCatalog, miniCards(extra))))
}

func TestUnknownOpsDegradeGracefully(t *testing.T) {
	cat, err := load(t, ", effects: [{op: summon_dragon}, {op: draw, n: 2}]")
	require.NoError(t, err)

	def, _ := cat.Card("KAB", false)
	require.Len(t, def.Effects, 1)
	assert.Equal(t, Draw{N: 2}, def.Effects[0])

	b2, _ := cat.Enemy("B2")
	assert.Equal(t, Stall{}, b2.Moves[0].Action)
	assert.Equal(t, 1, b2.Moves[0].Weight)

	ev, _ := cat.Event("V")
	opt, ok := ev.Option("A")
	require.True(t, ok)
	assert.Equal(t, Noop{}, opt.Effect)
}

func TestUnknownStatusIsAnError(t *testing.T) {
	_, err := load(t, ", effects: [{op: apply, status: confusion, stacks: 1}]")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "confusion")
}

func TestWrongRarityCountIsAnError(t *testing.T) {
	body := fmt.Sprintf(miniCatalog, miniCards("")+"  - {id: EXTRA, name: X, rarity: rare, type: skill, cost: 1}\n")
	_, err := Load([]byte(body))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rarity rare")
}

func TestAmountAcceptsScalarOrMapping(t *testing.T) {
	cat, err := load(t, ", effects: [{op: damage, amount: 4}, {op: damage, amount: {base: 2, plus_charge: true}}]")
	require.NoError(t, err)
	def, _ := cat.Card("KAB", false)
	require.Len(t, def.Effects, 2)
	assert.Equal(t, Amount{Base: 4}, def.Effects[0].(Damage).Amount)
	assert.Equal(t, Amount{Base: 2, PlusCharge: true}, def.Effects[1].(Damage).Amount)
}

func TestSummarizeIntent(t *testing.T) {
	in := Summarize(Move{Name: "Spit", Action: AttackApply{Damage: 4, Status: game.StatusPoison, Stacks: 2}})
	assert.Equal(t, "attack_apply", in.Kind)
	assert.Equal(t, 4, in.Damage)
	assert.Equal(t, game.StatusPoison, in.Status)

	in = Summarize(Move{Name: "Shift", Action: PhaseShift{Phase: "phase2"}})
	assert.Equal(t, "phase", in.Kind)
	assert.Equal(t, "Phase shift", in.Desc)
}
