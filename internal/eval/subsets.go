package eval

import (
	"github.com/RobGibbens/CardGames-sub012/internal/cards"
)

// Combinations lazily yields the index combinations of k elements out of
// n in lexicographic order. It allocates once, is restartable via Reset,
// and reuses the returned slice between calls. Both the best-subset
// selector and the odds enumerator iterate with it instead of
// materializing the combination space.
type Combinations struct {
	n, k    int
	idx     []int
	started bool
}

// NewCombinations returns an iterator over k-of-n index combinations.
func NewCombinations(n, k int) *Combinations {
	return &Combinations{n: n, k: k, idx: make([]int, k)}
}

// Reset restarts the iteration.
func (g *Combinations) Reset() {
	g.started = false
}

// Next returns the next combination, or false when exhausted. The
// returned slice is reused between calls; copy it to retain it.
func (g *Combinations) Next() ([]int, bool) {
	if g.k > g.n {
		return nil, false
	}
	if !g.started {
		for i := range g.idx {
			g.idx[i] = i
		}
		g.started = true
		return g.idx, true
	}

	// Advance the rightmost index that can still move.
	for i := g.k - 1; i >= 0; i-- {
		if g.idx[i] < g.n-g.k+i {
			g.idx[i]++
			for j := i + 1; j < g.k; j++ {
				g.idx[j] = g.idx[j-1] + 1
			}
			return g.idx, true
		}
	}
	return nil, false
}

// BestFive enumerates every five-card subset of the hand (21 for the
// seven-card variants, more when bonus cards grew the hand), optimizes
// each subset's wild cards, and returns the strongest result under the
// scheme. Subsets are visited in a fixed lexicographic order and only a
// strictly stronger subset replaces the incumbent, so selection is
// deterministic for identical input ordering. Hands of exactly five
// cards go straight to the optimizer; smaller hands are Incomplete.
func BestFive(hand, wilds []cards.Card, scheme RankingScheme) (Assignment, error) {
	if len(hand) <= 5 {
		return BestWildAssignment(hand, wilds, scheme)
	}

	subset := make([]cards.Card, 5)
	best := Assignment{Strength: -1, HandType: Incomplete}

	gen := NewCombinations(len(hand), 5)
	for idx, ok := gen.Next(); ok; idx, ok = gen.Next() {
		for i, j := range idx {
			subset[i] = hand[j]
		}
		a, err := BestWildAssignment(subset, wilds, scheme)
		if err != nil {
			return Assignment{}, err
		}
		if a.Strength > best.Strength {
			best = a
		}
	}
	return best, nil
}
