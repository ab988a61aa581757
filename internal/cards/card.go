// Package cards provides the immutable card model, the textual card
// notation, and the deck/dealer primitives the evaluation and simulation
// layers are built on.
package cards

import (
	"fmt"
	"sort"
	"strings"
)

// Suit is one of the four card suits.
type Suit int

// Suits in ascending display order: clubs, diamonds, hearts, spades.
const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the lowercase single-character suit code used by the
// textual notation ("c", "d", "h", "s").
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

// Rank is a card rank with ace high (Two=2 .. Ace=14).
type Rank int

// Ranks in ascending order. Ace is always 14 here; the strength
// calculator demotes it to 1 for wheel straights.
const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// String returns the single-character rank code ("2".."9", "T", "J", "Q",
// "K", "A").
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Nine:
		return fmt.Sprintf("%d", int(r))
	case r == Ten:
		return "T"
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// Card is an immutable (rank, suit) value. Two cards are equal iff both
// rank and suit match, so Card is usable as a map key.
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns the two-character token for the card, e.g. "Ah" or "Td".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Compare orders cards by rank, then by suit (clubs low, spades high).
// It returns -1, 0, or 1.
func Compare(a, b Card) int {
	if a.Rank != b.Rank {
		if a.Rank < b.Rank {
			return -1
		}
		return 1
	}
	if a.Suit != b.Suit {
		if a.Suit < b.Suit {
			return -1
		}
		return 1
	}
	return 0
}

// SortDescending sorts cards in place by descending rank, then by the
// stable suit order spades, hearts, diamonds, clubs.
func SortDescending(cs []Card) {
	sort.SliceStable(cs, func(i, j int) bool {
		return Compare(cs[i], cs[j]) > 0
	})
}

// ParseCard parses a two-character token "<rank><suit>" where rank is one
// of 23456789TJQKA and suit is a lowercase h, d, c, or s. The format is
// case-sensitive.
func ParseCard(token string) (Card, error) {
	if len(token) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrMalformedCardToken, token)
	}

	var rank Rank
	switch token[0] {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		rank = Rank(token[0] - '0')
	case 'T':
		rank = Ten
	case 'J':
		rank = Jack
	case 'Q':
		rank = Queen
	case 'K':
		rank = King
	case 'A':
		rank = Ace
	default:
		return Card{}, fmt.Errorf("%w: %q: bad rank %q", ErrMalformedCardToken, token, token[0])
	}

	var suit Suit
	switch token[1] {
	case 'c':
		suit = Clubs
	case 'd':
		suit = Diamonds
	case 'h':
		suit = Hearts
	case 's':
		suit = Spades
	default:
		return Card{}, fmt.Errorf("%w: %q: bad suit %q", ErrMalformedCardToken, token, token[1])
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a whitespace-separated list of card tokens, e.g.
// "Ah Kd 2c". It returns nil for an empty input.
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, nil
	}

	cs := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	return cs, nil
}

// Format serializes cards as space-separated tokens ordered by descending
// rank then suit (spades first), so equal hands always serialize
// identically. The input slice is not modified.
func Format(cs []Card) string {
	sorted := make([]Card, len(cs))
	copy(sorted, cs)
	SortDescending(sorted)

	tokens := make([]string, len(sorted))
	for i, c := range sorted {
		tokens[i] = c.String()
	}
	return strings.Join(tokens, " ")
}
