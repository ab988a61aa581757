package eval

import (
	"fmt"

	"github.com/RobGibbens/CardGames-sub012/internal/cards"
)

// Assignment is the result of optimizing a hand's wild cards: the
// concrete cards each wild was assigned (in original hand order), plus
// the resulting classification and strength.
type Assignment struct {
	Best     []cards.Card
	HandType HandType
	Strength int64
}

// BestWildAssignment searches all substitutions of (rank, suit) for each
// wild card in a five-card hand and returns the one maximizing strength
// under the scheme. Candidates are enumerated in a fixed canonical order
// and only a strictly stronger result replaces the incumbent, so ties
// resolve deterministically. A hand with no wilds classifies directly.
func BestWildAssignment(hand, wilds []cards.Card, scheme RankingScheme) (Assignment, error) {
	if len(hand) < 5 {
		return Assignment{Best: append([]cards.Card(nil), hand...), HandType: Incomplete}, nil
	}
	if len(hand) > 5 {
		return Assignment{}, fmt.Errorf("%w: optimizer wants 5 cards, got %d", ErrInvalidHandSize, len(hand))
	}

	slots := wildSlots(hand, wilds)
	if len(slots) == 0 {
		t, err := Classify(hand)
		if err != nil {
			return Assignment{}, err
		}
		return Assignment{
			Best:     append([]cards.Card(nil), hand...),
			HandType: t,
			Strength: Strength(hand, t, scheme),
		}, nil
	}

	work := append([]cards.Card(nil), hand...)
	best := Assignment{Strength: -1}

	// Wild cards are interchangeable, so candidate indices are enforced
	// non-decreasing across slots to skip permutations of the same
	// substitution multiset.
	var search func(slot, from int)
	search = func(slot, from int) {
		if slot == len(slots) {
			t, err := Classify(work)
			if err != nil {
				return
			}
			if s := Strength(work, t, scheme); s > best.Strength {
				best = Assignment{
					Best:     append([]cards.Card(nil), work...),
					HandType: t,
					Strength: s,
				}
			}
			return
		}
		for ci := from; ci < len(allCards); ci++ {
			work[slots[slot]] = allCards[ci]
			search(slot+1, ci)
		}
	}
	search(0, 0)

	return best, nil
}

// HasNaturalPair reports whether the hand holds at least two non-wild
// cards of the given rank. Variant bonus predicates query this against
// the original hand, independent of any wild substitution.
func HasNaturalPair(hand, wilds []cards.Card, rank cards.Rank) bool {
	wildSet := make(map[cards.Card]bool, len(wilds))
	for _, w := range wilds {
		wildSet[w] = true
	}

	n := 0
	for _, c := range hand {
		if c.Rank == rank && !wildSet[c] {
			n++
		}
	}
	return n >= 2
}

// wildSlots returns the positions in hand occupied by wild cards.
func wildSlots(hand, wilds []cards.Card) []int {
	wildSet := make(map[cards.Card]bool, len(wilds))
	for _, w := range wilds {
		wildSet[w] = true
	}

	var slots []int
	for i, c := range hand {
		if wildSet[c] {
			slots = append(slots, i)
		}
	}
	return slots
}

// allCards is the canonical candidate ordering for wild substitution:
// ascending rank, then clubs, diamonds, hearts, spades.
var allCards = func() []cards.Card {
	cs := make([]cards.Card, 0, cards.DeckSize)
	for r := cards.Two; r <= cards.Ace; r++ {
		for s := cards.Clubs; s <= cards.Spades; s++ {
			cs = append(cs, cards.Card{Rank: r, Suit: s})
		}
	}
	return cs
}()
