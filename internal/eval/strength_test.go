package eval

import (
	"math/rand"
	"testing"

	oracle "github.com/paulhankin/poker"

	"github.com/RobGibbens/CardGames-sub012/internal/cards"
)

// strengthOf classifies and scores a textual hand under a scheme.
func strengthOf(t *testing.T, hand string, scheme RankingScheme) int64 {
	t.Helper()
	cs := mustParse(t, hand)
	ht, err := Classify(cs)
	if err != nil {
		t.Fatalf("Classify(%q) failed: %v", hand, err)
	}
	return Strength(cs, ht, scheme)
}

func TestStrengthTierMonotonicity(t *testing.T) {
	// Weakest representative of each tier must still beat the strongest
	// representative of the tier below.
	ascending := []string{
		"7h 5d 4c 3s 2h", // worst high card
		"2h 2d 5c 4s 3h", // worst pair
		"3h 3d 2c 2s 4h", // worst two pair
		"2h 2d 2c 4s 3h", // worst trips
		"Ah 5d 4c 3s 2h", // worst straight (wheel)
		"7h 5h 4h 3h 2h", // worst flush
		"2h 2d 2c 3s 3h", // worst full house
		"2h 2d 2c 2s 3h", // worst quads
		"5h 4h 3h 2h Ah", // worst straight flush (wheel)
	}
	best := []string{
		"Ah Kd Qc Js 9h", // best high card
		"Ah Ad Kc Qs Jh", // best pair
		"Ah Ad Kc Ks Qh", // best two pair
		"Ah Ad Ac Ks Qh", // best trips
		"Ah Kd Qc Js Th", // best straight
		"Ah Kh Qh Jh 9h", // best flush
		"Ah Ad Ac Ks Kh", // best full house
		"Ah Ad Ac As Kh", // best quads
		"Ah Kh Qh Jh Th", // royal flush
	}

	for i := 1; i < len(ascending); i++ {
		weak := strengthOf(t, ascending[i], FiveOfAKindHigh)
		strongBelow := strengthOf(t, best[i-1], FiveOfAKindHigh)
		if weak <= strongBelow {
			t.Errorf("tier floor %q (%d) does not beat tier ceiling %q (%d)",
				ascending[i], weak, best[i-1], strongBelow)
		}
	}
}

func TestStrengthFiveOfAKindSchemes(t *testing.T) {
	fiveAces := []cards.Card{
		{Rank: cards.Ace, Suit: cards.Hearts},
		{Rank: cards.Ace, Suit: cards.Spades},
		{Rank: cards.Ace, Suit: cards.Clubs},
		{Rank: cards.Ace, Suit: cards.Diamonds},
		{Rank: cards.Ace, Suit: cards.Hearts},
	}
	royal := mustParse(t, "Ah Kh Qh Jh Th")

	fiveStrength := Strength(fiveAces, FiveOfAKind, FiveOfAKindHigh)
	royalStrength := Strength(royal, StraightFlush, FiveOfAKindHigh)
	if fiveStrength <= royalStrength {
		t.Error("five of a kind should outrank a royal flush under FiveOfAKindHigh")
	}

	fiveStrength = Strength(fiveAces, FiveOfAKind, StraightFlushHigh)
	royalStrength = Strength(royal, StraightFlush, StraightFlushHigh)
	if royalStrength <= fiveStrength {
		t.Error("royal flush should outrank five of a kind under StraightFlushHigh")
	}
}

func TestStrengthWheelAceLow(t *testing.T) {
	wheel := strengthOf(t, "Ah 5d 4c 3s 2h", FiveOfAKindHigh)
	sixHigh := strengthOf(t, "6h 5d 4c 3s 2d", FiveOfAKindHigh)
	if wheel >= sixHigh {
		t.Error("wheel straight must rank below a six-high straight")
	}

	wheelFlush := strengthOf(t, "5h 4h 3h 2h Ah", FiveOfAKindHigh)
	sixFlush := strengthOf(t, "6s 5s 4s 3s 2s", FiveOfAKindHigh)
	if wheelFlush >= sixFlush {
		t.Error("wheel straight flush must rank below a six-high straight flush")
	}
}

func TestStrengthKickers(t *testing.T) {
	// Same pair, better kicker.
	a := strengthOf(t, "Ah Ad Kc 5s 2h", FiveOfAKindHigh)
	b := strengthOf(t, "Ah Ad Qc Js Th", FiveOfAKindHigh)
	if a <= b {
		t.Error("AAK52 should beat AAQJT")
	}

	// Pair rank dominates kickers.
	c := strengthOf(t, "Kh Kd Ac Qs Jh", FiveOfAKindHigh)
	d := strengthOf(t, "Ah Ad 4c 3s 2h", FiveOfAKindHigh)
	if c >= d {
		t.Error("pair of aces should beat pair of kings regardless of kickers")
	}

	// Equal hands, different suits: identical strength.
	e := strengthOf(t, "Ah Kd 9c 5s 2h", FiveOfAKindHigh)
	f := strengthOf(t, "As Kc 9d 5h 2c", FiveOfAKindHigh)
	if e != f {
		t.Error("suit must not influence strength")
	}
}

// TestStrengthAgainstOracle verifies that the engine's ordering of
// natural five-card hands agrees with an independent published
// evaluator on random hand pairs.
func TestStrengthAgainstOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(17))

	for i := 0; i < 5000; i++ {
		a := randomDistinctHand(rng)
		b := randomDistinctHand(rng)

		mine := compareStrength(t, a, b)
		theirs := compareOracle(t, a, b)
		if mine != theirs {
			t.Fatalf("ordering disagreement on %v vs %v: engine %d, oracle %d",
				cards.Format(a), cards.Format(b), mine, theirs)
		}
	}
}

func compareStrength(t *testing.T, a, b []cards.Card) int {
	t.Helper()
	ta, err := Classify(a)
	if err != nil {
		t.Fatal(err)
	}
	tb, err := Classify(b)
	if err != nil {
		t.Fatal(err)
	}
	sa := Strength(a, ta, FiveOfAKindHigh)
	sb := Strength(b, tb, FiveOfAKindHigh)
	switch {
	case sa > sb:
		return 1
	case sa < sb:
		return -1
	default:
		return 0
	}
}

func compareOracle(t *testing.T, a, b []cards.Card) int {
	t.Helper()
	sa := oracleEval(t, a)
	sb := oracleEval(t, b)
	switch {
	case sa > sb:
		return 1
	case sa < sb:
		return -1
	default:
		return 0
	}
}

func oracleEval(t *testing.T, hand []cards.Card) int16 {
	t.Helper()
	var oc [5]oracle.Card
	for i, c := range hand {
		r := int(c.Rank)
		if c.Rank == cards.Ace {
			r = 1
		}
		var s oracle.Suit
		switch c.Suit {
		case cards.Clubs:
			s = oracle.Club
		case cards.Diamonds:
			s = oracle.Diamond
		case cards.Hearts:
			s = oracle.Heart
		case cards.Spades:
			s = oracle.Spade
		}
		card, err := oracle.MakeCard(s, oracle.Rank(r))
		if err != nil {
			t.Fatalf("oracle rejected %v: %v", c, err)
		}
		oc[i] = card
	}
	return oracle.Eval5(&oc)
}

func TestStrengthIncomplete(t *testing.T) {
	if s := Strength(mustParse(t, "Ah Kd"), Incomplete, FiveOfAKindHigh); s != 0 {
		t.Errorf("incomplete hand strength = %d, want 0", s)
	}
}
