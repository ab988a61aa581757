package sim

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"go.uber.org/zap"

	"github.com/RobGibbens/CardGames-sub012/internal/cards"
	"github.com/RobGibbens/CardGames-sub012/internal/eval"
	"github.com/RobGibbens/CardGames-sub012/internal/variant"
)

// enumerationLimit caps the draw-combination space that gets enumerated
// exhaustively; larger spaces fall back to sampling. C(47,4) ≈ 178k
// enumerates, a fully unknown hand (C(52,5) ≈ 2.6M) samples.
const enumerationLimit = 1_000_000

// Odds methods reported in OddsResult.
const (
	MethodEnumeration = "enumeration"
	MethodSimulation  = "simulation"
)

// OddsConfig describes an odds calculation for one hero hand.
type OddsConfig struct {
	// Variant supplies the wild rule and ranking scheme; nil means
	// five-card draw. Odds are computed over a five-card hero hand.
	Variant variant.Variant

	// Hero is the hero's known cards, 0 to 5 of them.
	Hero []cards.Card

	// DeadCards are excluded from every draw.
	DeadCards []cards.Card

	// SampleSize is the iteration count when simulating; <= 0 uses
	// DefaultSampleSize.
	SampleSize int

	// Seed makes a sampled calculation reproducible; 0 derives one.
	Seed int64

	// Logger receives debug-level progress events; nil means no logging.
	Logger *zap.Logger
}

// DefaultSampleSize is the simulation sample count when none is given.
const DefaultSampleSize = 100_000

// OddsEntry is one row of the distribution: a hand category, its display
// label, and the probability the hero's completed hand lands in it.
type OddsEntry struct {
	HandType    eval.HandType
	Label       string
	Probability float64
}

// OddsResult is the probability distribution over final hand categories
// for the hero hand, ordered best tier first. Probabilities sum to 1
// (up to floating-point rounding) unless Partial is set.
type OddsResult struct {
	Entries []OddsEntry
	Method  string
	Samples int
	Partial bool
}

// Probability returns the probability for a category.
func (r *OddsResult) Probability(t eval.HandType) float64 {
	for _, e := range r.Entries {
		if e.HandType == t {
			return e.Probability
		}
	}
	return 0
}

// Odds computes, for each hand category, the probability that the hero's
// hand ends there once its missing cards are drawn at random from the
// undealt remainder. Small draw spaces are enumerated exhaustively;
// larger ones are sampled. Both paths converge to the same distribution.
func Odds(ctx context.Context, cfg OddsConfig) (*OddsResult, error) {
	v := cfg.Variant
	if v == nil {
		v = variant.FiveCardDraw{}
	}
	if len(cfg.Hero) > 5 {
		return nil, fmt.Errorf("%w: hero has %d cards, want at most 5", eval.ErrInvalidHandSize, len(cfg.Hero))
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = randomSeed()
	}

	dealer := cards.NewDealer(rand.New(rand.NewSource(seed)))
	for _, c := range cfg.Hero {
		if err := dealer.DealSpecific(c); err != nil {
			return nil, err
		}
	}
	for _, c := range cfg.DeadCards {
		if err := dealer.DealSpecific(c); err != nil {
			return nil, err
		}
	}

	evaluator, err := eval.NewEvaluator(0)
	if err != nil {
		return nil, err
	}

	missing := 5 - len(cfg.Hero)
	available := dealer.Available()
	if len(available) < missing {
		return nil, fmt.Errorf("%w: completing the hand needs %d cards, %d remain",
			cards.ErrDeckExhausted, missing, len(available))
	}

	var counts [eval.FiveOfAKind + 1]uint64
	var samples int
	var partial bool
	method := MethodEnumeration

	if binomial(len(available), missing) <= enumerationLimit {
		samples, partial, err = enumerateOdds(ctx, cfg.Hero, available, missing, v, evaluator, &counts)
	} else {
		method = MethodSimulation
		samples, partial, err = sampleOdds(ctx, cfg, dealer, missing, v, evaluator, &counts)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("odds calculation finished",
		zap.String("variant", v.Spec().ID),
		zap.String("method", method),
		zap.Int("samples", samples),
		zap.Bool("partial", partial),
	)

	return &OddsResult{
		Entries: oddsEntries(&counts, samples, v.Ranking()),
		Method:  method,
		Samples: samples,
		Partial: partial,
	}, nil
}

// enumerateOdds classifies every possible completion of the hero hand.
func enumerateOdds(ctx context.Context, hero, available []cards.Card, missing int, v variant.Variant, evaluator *eval.Evaluator, counts *[eval.FiveOfAKind + 1]uint64) (int, bool, error) {
	rule := v.WildRule()
	scheme := v.Ranking()

	hand := make([]cards.Card, 5)
	copy(hand, hero)

	total := 0
	gen := eval.NewCombinations(len(available), missing)
	for idx, ok := gen.Next(); ok; idx, ok = gen.Next() {
		if total%4096 == 0 && ctx.Err() != nil {
			return total, true, nil
		}
		for i, j := range idx {
			hand[len(hero)+i] = available[j]
		}

		var wilds []cards.Card
		if rule != nil {
			wilds = rule.Wild(hand, variant.DealContext{})
		}
		ev, err := evaluator.Evaluate(hand, wilds, scheme)
		if err != nil {
			return total, false, err
		}
		counts[ev.HandType]++
		total++
	}
	return total, false, nil
}

// sampleOdds estimates the distribution by repeated random completion.
func sampleOdds(ctx context.Context, cfg OddsConfig, dealer *cards.Dealer, missing int, v variant.Variant, evaluator *eval.Evaluator, counts *[eval.FiveOfAKind + 1]uint64) (int, bool, error) {
	rule := v.WildRule()
	scheme := v.Ranking()

	sampleSize := cfg.SampleSize
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}

	hand := make([]cards.Card, 0, 5)
	for it := 0; it < sampleSize; it++ {
		if ctx.Err() != nil {
			return it, true, nil
		}

		dealer.Shuffle()
		for _, c := range cfg.Hero {
			if err := dealer.DealSpecific(c); err != nil {
				return it, false, err
			}
		}
		for _, c := range cfg.DeadCards {
			if err := dealer.DealSpecific(c); err != nil {
				return it, false, err
			}
		}

		drawn, err := dealer.DealCards(missing)
		if err != nil {
			return it, false, err
		}
		hand = append(append(hand[:0], cfg.Hero...), drawn...)

		var wilds []cards.Card
		if rule != nil {
			wilds = rule.Wild(hand, variant.DealContext{})
		}
		ev, err := evaluator.Evaluate(hand, wilds, scheme)
		if err != nil {
			return it, false, err
		}
		counts[ev.HandType]++
	}
	return sampleSize, false, nil
}

// oddsEntries builds the ordered distribution, best tier first, covering
// every real hand category.
func oddsEntries(counts *[eval.FiveOfAKind + 1]uint64, total int, scheme eval.RankingScheme) []OddsEntry {
	entries := make([]OddsEntry, 0, eval.NumHandTypes)
	for t := eval.HighCard; t <= eval.FiveOfAKind; t++ {
		p := 0.0
		if total > 0 {
			p = float64(counts[t]) / float64(total)
		}
		entries = append(entries, OddsEntry{HandType: t, Label: t.String(), Probability: p})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return scheme.Tier(entries[i].HandType) > scheme.Tier(entries[j].HandType)
	})
	return entries
}

// binomial returns C(n, k), saturating once past the enumeration limit.
func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	result := 1
	for i := 1; i <= k; i++ {
		result = result * (n - k + i) / i
		if result > enumerationLimit*64 {
			return result
		}
	}
	return result
}
