package eval

// RankingScheme maps hand types to ordinal strength tiers. Distinct
// schemes exist because wild-card variants order tiers differently than
// standard poker.
type RankingScheme struct {
	name  string
	tiers map[HandType]int
}

func newScheme(name string, ascending []HandType) RankingScheme {
	tiers := make(map[HandType]int, len(ascending))
	for i, t := range ascending {
		tiers[t] = i
	}
	return RankingScheme{name: name, tiers: tiers}
}

// Name identifies the scheme; used in cache keys and logs.
func (s RankingScheme) Name() string {
	return s.name
}

// Tier returns the ordinal tier of a hand type under this scheme.
// Incomplete is always below every real category.
func (s RankingScheme) Tier(t HandType) int {
	tier, ok := s.tiers[t]
	if !ok {
		return -1
	}
	return tier
}

var (
	// FiveOfAKindHigh is the default scheme for wild-card variants:
	// five of a kind is a distinct tier above a straight flush.
	FiveOfAKindHigh = newScheme("five-of-a-kind-high", []HandType{
		HighCard, OnePair, TwoPair, ThreeOfAKind, Straight,
		Flush, FullHouse, FourOfAKind, StraightFlush, FiveOfAKind,
	})

	// StraightFlushHigh keeps the straight flush as the top tier, a house
	// rule some tables prefer even with wilds in play.
	StraightFlushHigh = newScheme("straight-flush-high", []HandType{
		HighCard, OnePair, TwoPair, ThreeOfAKind, Straight,
		Flush, FullHouse, FourOfAKind, FiveOfAKind, StraightFlush,
	})
)
