package eval

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/RobGibbens/CardGames-sub012/internal/cards"
)

// Evaluation is the fully evaluated view of a hand: its classified type,
// its comparable strength, the optimizer's evaluated best five cards,
// and the physical cards that were treated as wild.
type Evaluation struct {
	HandType HandType
	Strength int64
	Best     []cards.Card
	Wilds    []cards.Card
}

// Evaluator is the evaluation front door used by the simulation and odds
// layers. It memoizes results in an LRU cache keyed by the canonical
// serialization of (hand, wilds, scheme); simulated deals repeat hands
// constantly, and evaluation with wilds is the expensive path. The cache
// is safe for concurrent use.
type Evaluator struct {
	cache *lru.Cache[string, Evaluation]
}

// DefaultCacheSize bounds the evaluator's memo. Big enough to cover the
// hot set of a large simulation without holding the whole deal space.
const DefaultCacheSize = 1 << 16

// NewEvaluator returns an evaluator with the given cache size; size <= 0
// uses DefaultCacheSize.
func NewEvaluator(size int) (*Evaluator, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, Evaluation](size)
	if err != nil {
		return nil, err
	}
	return &Evaluator{cache: cache}, nil
}

// Evaluate reduces the hand to its best five cards (optimizing wild
// substitutions) and returns the complete evaluation. Wild determination
// is the caller's job: wilds must be recomputed per deal, never carried
// across games.
func (e *Evaluator) Evaluate(hand, wilds []cards.Card, scheme RankingScheme) (Evaluation, error) {
	key := cards.Format(hand) + "|" + cards.Format(wilds) + "|" + scheme.Name()
	if ev, ok := e.cache.Get(key); ok {
		return ev, nil
	}

	a, err := BestFive(hand, wilds, scheme)
	if err != nil {
		return Evaluation{}, err
	}

	ev := Evaluation{
		HandType: a.HandType,
		Strength: a.Strength,
		Best:     a.Best,
		Wilds:    append([]cards.Card(nil), wilds...),
	}
	e.cache.Add(key, ev)
	return ev, nil
}
