package loot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Noty-chan/rogue-prison/internal/content"
	"github.com/Noty-chan/rogue-prison/internal/game"
	"github.com/Noty-chan/rogue-prison/internal/rng"
)

func TestWeightsScaleWithFloorAndPity(t *testing.T) {
	assert.Equal(t, []int{65, 25, 12, 2}, Weights(1, game.Pity{}))
	assert.Equal(t, []int{65, 30, 18, 4}, Weights(10, game.Pity{}))
	assert.Equal(t, []int{65, 25, 37, 14}, Weights(1, game.Pity{Rare: 4, Legendary: 7}))
}

func TestRollRarityResetsPityOnHit(t *testing.T) {
	pity := game.Pity{Rare: 2, Legendary: 5}
	// Floor 1 weights total 104; 0.0 lands on common.
	r := RollRarity(&pity, 1, &rng.Sequence{Floats: []float64{0}})
	assert.Equal(t, content.Common, r)
	assert.Equal(t, game.Pity{Rare: 3, Legendary: 6}, pity)

	// Both counters now trip their pity: weights 65/25/37/14, 0.99*141 lands on legendary.
	r = RollRarity(&pity, 1, &rng.Sequence{Floats: []float64{0.99}})
	assert.Equal(t, content.Legendary, r)
	assert.Equal(t, 4, pity.Rare)
	assert.Equal(t, 0, pity.Legendary)
}

func TestCardChoicesNeverAllCommon(t *testing.T) {
	cat, err := content.Default()
	require.NoError(t, err)
	run := &game.Run{Floor: 1}
	ids := CardChoices(run, cat, &rng.Sequence{Floats: []float64{0}}, 3)
	require.Len(t, ids, 3)
	first := cat.CardsOfRarity(content.Common)[0]
	assert.Equal(t, first, ids[0])
	assert.Equal(t, first, ids[1])
	last, _ := cat.Card(ids[2], false)
	assert.Equal(t, content.Uncommon, last.Rarity)
	assert.Equal(t, 3, run.Pity.Rare)
}

func TestCardChoicesIsDeterministic(t *testing.T) {
	cat, err := content.Default()
	require.NoError(t, err)
	a := CardChoices(&game.Run{Floor: 5}, cat, rng.New(42, 7), 3)
	b := CardChoices(&game.Run{Floor: 5}, cat, rng.New(42, 7), 3)
	assert.Equal(t, a, b)
}

func TestPrice(t *testing.T) {
	assert.Equal(t, 40, Price(content.Common, 1))
	assert.Equal(t, 32, Price(content.Common, 0.8))
	assert.Equal(t, 112, Price(content.Legendary, 0.8))
	assert.Equal(t, 10, Price(content.Common, 0.1))
	// 65*0.5 = 32.5 rounds half to even.
	assert.Equal(t, 32, Price(content.Uncommon, 0.5))
}

func TestGoldRanges(t *testing.T) {
	assert.Equal(t, 18, CombatGold(1, &rng.Sequence{}))
	assert.Equal(t, 30+7, CombatGold(3, &rng.Sequence{Ints: []int{7}}))
	assert.Equal(t, 35+25, ChestGold(&rng.Sequence{Ints: []int{25}}))
}

func TestRandomRelicSkipsOwned(t *testing.T) {
	cat, err := content.Default()
	require.NoError(t, err)
	var owned []string
	for _, r := range cat.Relics()[1:] {
		owned = append(owned, r.ID)
	}
	id, ok := RandomRelic(cat, owned, rng.New(1, 1))
	require.True(t, ok)
	assert.Equal(t, cat.Relics()[0].ID, id)

	_, ok = RandomRelic(cat, append(owned, id), rng.New(1, 1))
	assert.False(t, ok)
}
