// Package eval classifies five-card poker hands, converts them to
// totally-ordered strength values, searches wild-card substitutions, and
// selects the best five-card subset of larger hands.
package eval

import (
	"fmt"
	"sort"

	"github.com/RobGibbens/CardGames-sub012/internal/cards"
)

// HandType is one of the ranked hand categories, plus the Incomplete
// sentinel for hands with fewer than five cards.
type HandType int

// Hand categories in standard ascending order.
const (
	Incomplete HandType = iota
	HighCard
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	FiveOfAKind
)

// NumHandTypes is the count of real categories (Incomplete excluded).
const NumHandTypes = 10

// String returns the player-facing label for the hand type.
func (h HandType) String() string {
	switch h {
	case Incomplete:
		return "Incomplete"
	case HighCard:
		return "High card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	case FiveOfAKind:
		return "Five of a kind"
	default:
		return "Unknown"
	}
}

// Classify maps exactly five cards to their hand category by rank-group
// decomposition. Fewer than five cards yields Incomplete; more than five
// fails with ErrInvalidHandSize (callers reduce larger hands first).
func Classify(cs []cards.Card) (HandType, error) {
	if len(cs) < 5 {
		return Incomplete, nil
	}
	if len(cs) > 5 {
		return Incomplete, fmt.Errorf("%w: classify wants 5 cards, got %d", ErrInvalidHandSize, len(cs))
	}

	counts := make(map[cards.Rank]int, 5)
	for _, c := range cs {
		counts[c.Rank]++
	}

	switch len(counts) {
	case 1:
		return FiveOfAKind, nil

	case 5:
		straight := isStraight(cs)
		flush := isFlush(cs)
		switch {
		case straight && flush:
			return StraightFlush, nil
		case straight:
			return Straight, nil
		case flush:
			return Flush, nil
		default:
			return HighCard, nil
		}

	case 4:
		return OnePair, nil

	case 3:
		// Group sizes partition as {3,1,1} or {2,2,1}; the second-largest
		// group disambiguates trips from two pair.
		if secondLargestGroup(counts) == 1 {
			return ThreeOfAKind, nil
		}
		return TwoPair, nil

	case 2:
		// Sizes are {4,1} or {3,2}.
		if largestGroup(counts) == 4 {
			return FourOfAKind, nil
		}
		return FullHouse, nil
	}

	return Incomplete, fmt.Errorf("%w: unreachable rank grouping", ErrInvalidHandSize)
}

// isStraight reports whether five distinct-rank cards form a straight,
// including the ace-low wheel A-2-3-4-5.
func isStraight(cs []cards.Card) bool {
	min, max := cs[0].Rank, cs[0].Rank
	wheel := map[cards.Rank]bool{cards.Ace: false, cards.Five: false, cards.Four: false, cards.Three: false, cards.Two: false}
	wheelHits := 0
	for _, c := range cs {
		if c.Rank < min {
			min = c.Rank
		}
		if c.Rank > max {
			max = c.Rank
		}
		if hit, ok := wheel[c.Rank]; ok && !hit {
			wheel[c.Rank] = true
			wheelHits++
		}
	}
	return max-min == 4 || wheelHits == 5
}

func isFlush(cs []cards.Card) bool {
	for _, c := range cs[1:] {
		if c.Suit != cs[0].Suit {
			return false
		}
	}
	return true
}

func largestGroup(counts map[cards.Rank]int) int {
	max := 0
	for _, n := range counts {
		if n > max {
			max = n
		}
	}
	return max
}

func secondLargestGroup(counts map[cards.Rank]int) int {
	sizes := make([]int, 0, len(counts))
	for _, n := range counts {
		sizes = append(sizes, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	if len(sizes) < 2 {
		return 0
	}
	return sizes[1]
}
