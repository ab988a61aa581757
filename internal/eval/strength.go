package eval

import (
	"sort"

	"github.com/RobGibbens/CardGames-sub012/internal/cards"
)

// tierMultiplier separates hand-type tiers in the strength encoding. The
// positional sum over five ranks is bounded by 14 * 101010101 < 1.5e9,
// so 1e10 guarantees no overlap between tiers.
const tierMultiplier = int64(10_000_000_000)

var positionWeights = [5]int64{100_000_000, 1_000_000, 10_000, 100, 1}

// Strength converts five cards plus their classified type into a single
// comparable value: strictly increasing across tiers under the scheme,
// and within a tier strictly increasing with the poker-significant rank
// ordering (grouped by multiplicity descending, then rank descending).
// For a wheel straight the ace counts as rank 1. Incomplete hands have
// strength 0.
func Strength(cs []cards.Card, t HandType, scheme RankingScheme) int64 {
	if t == Incomplete || len(cs) != 5 {
		return 0
	}

	ranks := significantRanks(cs, t)
	sum := int64(0)
	for i, r := range ranks {
		sum += int64(r) * positionWeights[i]
	}
	return int64(scheme.Tier(t))*tierMultiplier + sum
}

// significantRanks orders the hand's ranks by descending multiplicity,
// then descending rank, expanding groups to five entries. Wheel straights
// demote the ace to 1 so 5-4-3-2-A sorts below 6-5-4-3-2.
func significantRanks(cs []cards.Card, t HandType) []int {
	if (t == Straight || t == StraightFlush) && isWheel(cs) {
		return []int{5, 4, 3, 2, 1}
	}

	counts := make(map[cards.Rank]int, 5)
	for _, c := range cs {
		counts[c.Rank]++
	}

	distinct := make([]cards.Rank, 0, len(counts))
	for r := range counts {
		distinct = append(distinct, r)
	}
	sort.Slice(distinct, func(i, j int) bool {
		if counts[distinct[i]] != counts[distinct[j]] {
			return counts[distinct[i]] > counts[distinct[j]]
		}
		return distinct[i] > distinct[j]
	})

	ranks := make([]int, 0, 5)
	for _, r := range distinct {
		for n := 0; n < counts[r]; n++ {
			ranks = append(ranks, int(r))
		}
	}
	return ranks
}

func isWheel(cs []cards.Card) bool {
	var hasAce, hasFive bool
	for _, c := range cs {
		switch c.Rank {
		case cards.Ace:
			hasAce = true
		case cards.Five:
			hasFive = true
		}
	}
	return hasAce && hasFive
}
