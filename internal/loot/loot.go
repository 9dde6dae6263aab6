// Package loot rolls card rarities, reward choices, prices and gold.
package loot

import (
	"math"

	"github.com/Noty-chan/rogue-prison/internal/content"
	"github.com/Noty-chan/rogue-prison/internal/game"
	"github.com/Noty-chan/rogue-prison/internal/rng"
)

// BaseWeights are the rarity weights before floor scaling and pity.
var BaseWeights = map[content.Rarity]int{
	content.Common:    65,
	content.Uncommon:  25,
	content.Rare:      9,
	content.Legendary: 1,
}

const (
	rarePityAt      = 4
	rarePityBonus   = 25
	legendPityAt    = 7
	legendPityBonus = 12

	minPrice = 10
)

// Prices of a shop card by rarity before any discount.
var Prices = map[content.Rarity]int{
	content.Common:    40,
	content.Uncommon:  65,
	content.Rare:      95,
	content.Legendary: 140,
}

// Weights returns the rarity weights for a floor and pity state, ordered
// like content.Rarities.
func Weights(floor int, pity game.Pity) []int {
	w := make([]int, len(content.Rarities))
	for i, r := range content.Rarities {
		w[i] = BaseWeights[r]
		switch r {
		case content.Uncommon:
			w[i] += max(0, floor/2)
		case content.Rare:
			w[i] += max(3, floor-1)
			if pity.Rare >= rarePityAt {
				w[i] += rarePityBonus
			}
		case content.Legendary:
			w[i] += max(1, floor/3)
			if pity.Legendary >= legendPityAt {
				w[i] += legendPityBonus
			}
		}
	}
	return w
}

// RollRarity advances both pity counters, draws a rarity and resets the
// counter of whatever was hit.
func RollRarity(pity *game.Pity, floor int, src rng.Source) content.Rarity {
	pity.Rare++
	pity.Legendary++
	r := content.Rarities[rng.PickWeighted(src, Weights(floor, *pity))]
	switch r {
	case content.Rare:
		pity.Rare = 0
	case content.Legendary:
		pity.Legendary = 0
	}
	return r
}

// CardChoices rolls k card ids for a reward or shop slot. A roll of all
// commons is upgraded so the last pick is uncommon.
func CardChoices(run *game.Run, cat *content.Catalog, src rng.Source, k int) []string {
	if k <= 0 {
		return nil
	}
	rarities := make([]content.Rarity, k)
	allCommon := true
	for i := range rarities {
		rarities[i] = RollRarity(&run.Pity, run.Floor, src)
		if rarities[i] != content.Common {
			allCommon = false
		}
	}
	if allCommon {
		rarities[k-1] = content.Uncommon
	}
	ids := make([]string, 0, k)
	for _, r := range rarities {
		ids = append(ids, rng.Pick(src, cat.CardsOfRarity(r)))
	}
	return ids
}

// RandomCards draws k ids with replacement. An empty rarity draws from every
// reward card.
func RandomCards(cat *content.Catalog, src rng.Source, rarity content.Rarity, k int) []string {
	var pool []string
	if rarity == "" {
		for _, r := range content.Rarities {
			pool = append(pool, cat.CardsOfRarity(r)...)
		}
	} else {
		pool = cat.CardsOfRarity(rarity)
	}
	if len(pool) == 0 {
		return nil
	}
	out := make([]string, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, rng.Pick(src, pool))
	}
	return out
}

// Price is the shop price after discount, never below 10.
func Price(r content.Rarity, discount float64) int {
	p := Prices[r]
	if p == 0 {
		p = Prices[content.Legendary]
	}
	return max(minPrice, int(math.RoundToEven(float64(p)*discount)))
}

// CombatGold is the base gold for winning a combat in the given act.
func CombatGold(act int, src rng.Source) int {
	return 18 + 6*(act-1) + rng.Between(src, 0, 10)
}

// ChestGold is the gold found in a chest.
func ChestGold(src rng.Source) int {
	return 35 + rng.Between(src, 0, 25)
}

// RandomRelic picks a relic the run does not own yet.
func RandomRelic(cat *content.Catalog, owned []string, src rng.Source) (string, bool) {
	var pool []string
	for _, r := range cat.Relics() {
		if !contains(owned, r.ID) {
			pool = append(pool, r.ID)
		}
	}
	if len(pool) == 0 {
		return "", false
	}
	return rng.Pick(src, pool), true
}

// RandomCurse picks any curse.
func RandomCurse(cat *content.Catalog, src rng.Source) string {
	return rng.Pick(src, cat.Curses())
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
