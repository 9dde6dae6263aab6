package progression

import (
	"sort"

	"github.com/Noty-chan/rogue-prison/internal/engine"
	"github.com/Noty-chan/rogue-prison/internal/game"
	"github.com/Noty-chan/rogue-prison/internal/rng"
)

// legacyMapSalt seeds maps rebuilt for saves that predate path maps.
const legacyMapSalt = 0xC0FFEE

const (
	minNodes       = 3
	maxNodes       = 4
	branchChance   = 0.55
	nearestTargets = 3
)

var roomOrder = []game.RoomType{
	game.RoomFight, game.RoomElite, game.RoomEvent,
	game.RoomShop, game.RoomCampfire, game.RoomChest,
}

// roomWeights returns the weights of roomOrder for an act. Elites get more
// common as the acts go on.
func roomWeights(act int) []int {
	return []int{42, 10 + 5*(act-1), 18, 8, 12, 10}
}

// BuildPathMap lays out the ten floors. Normal floors hold three or four
// nodes on distinct lanes; boss floors hold one. Every node links to one or
// two of the three nearest nodes above it and every node has an entrance.
func BuildPathMap(src rng.Source) *game.PathMap {
	lanes := make([]int, game.LaneCount)
	for i := range lanes {
		lanes[i] = i
	}
	pm := &game.PathMap{Lanes: game.LaneCount}
	var prev []*game.MapNode
	for floor := 1; floor <= game.FloorCount; floor++ {
		act := engine.ActForFloor(floor)
		boss := engine.IsBossFloor(floor)
		count := 1
		if !boss {
			count = rng.Between(src, minNodes, maxNodes)
		}
		positions := rng.Sample(src, lanes, count)
		sort.Ints(positions)

		layer := make([]*game.MapNode, 0, len(positions))
		for _, lane := range positions {
			rt := game.RoomBoss
			if !boss {
				rt = roomOrder[rng.PickWeighted(src, roomWeights(act))]
			}
			layer = append(layer, &game.MapNode{
				ID:    game.NewUID("node"),
				Type:  rt,
				Floor: floor,
				Lane:  lane,
				Prev:  []string{},
				Next:  []string{},
			})
		}
		if len(prev) > 0 {
			connect(src, prev, layer)
		}
		pm.Floors = append(pm.Floors, layer)
		prev = layer
	}
	return pm
}

func connect(src rng.Source, prev, layer []*game.MapNode) {
	for _, p := range prev {
		pool := append([]*game.MapNode(nil), layer...)
		sort.SliceStable(pool, func(i, j int) bool {
			return laneGap(pool[i], p) < laneGap(pool[j], p)
		})
		n := 1
		if len(pool) > 1 && rng.Chance(src, branchChance) {
			n = 2
		}
		for _, t := range rng.Sample(src, pool[:min(len(pool), nearestTargets)], n) {
			link(p, t)
		}
	}
	for _, t := range layer {
		if len(t.Prev) > 0 {
			continue
		}
		anchor := prev[0]
		for _, p := range prev[1:] {
			if laneGap(p, t) < laneGap(anchor, t) {
				anchor = p
			}
		}
		link(anchor, t)
	}
}

func link(from, to *game.MapNode) {
	from.Next = append(from.Next, to.ID)
	to.Prev = append(to.Prev, from.ID)
}

func laneGap(a, b *game.MapNode) int {
	d := a.Lane - b.Lane
	if d < 0 {
		return -d
	}
	return d
}

// RoomChoices lists the nodes of the run's floor reachable from the node
// it last entered.
func RoomChoices(run *game.Run) []game.RoomChoice {
	out := []game.RoomChoice{}
	if run.PathMap == nil {
		return out
	}
	i := run.Floor - 1
	if i < 0 || i >= len(run.PathMap.Floors) {
		return out
	}
	for _, n := range run.PathMap.Floors[i] {
		if run.Floor > 1 && run.CurrentNode != "" && !contains(n.Prev, run.CurrentNode) {
			continue
		}
		out = append(out, game.RoomChoice{ID: n.ID, Type: n.Type, Floor: n.Floor, Lane: n.Lane})
	}
	return out
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
