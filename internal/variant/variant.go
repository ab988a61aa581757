// Package variant defines the game variants the engine can simulate:
// their hand shape, wild-card rule, ranking scheme, and bonus-card rule.
// Variants register themselves in a package registry keyed by ID.
package variant

import (
	"github.com/RobGibbens/CardGames-sub012/internal/cards"
	"github.com/RobGibbens/CardGames-sub012/internal/eval"
)

// Spec describes a variant's fixed shape.
type Spec struct {
	ID       string
	Name     string
	HandSize int
	// Cards dealt at positions [FaceUpStart, FaceUpEnd) are face up and
	// enter the cross-player deal context in chronological order.
	FaceUpStart int
	FaceUpEnd   int
}

// FaceUp reports whether the card at the given hand position is dealt
// face up.
func (s Spec) FaceUp(position int) bool {
	return position >= s.FaceUpStart && position < s.FaceUpEnd
}

// DealContext carries the minimal deal-order state order-dependent wild
// rules need: the chronological sequence of all players' face-up cards.
// It is always an explicit parameter, never ambient state.
type DealContext struct {
	FaceUp []cards.Card
}

// WildRule maps a hand (plus deal context) to the subset of its cards
// that are wild. Implementations must be pure: no mutation of the hand,
// empty result when nothing matches.
type WildRule interface {
	Name() string
	Wild(hand []cards.Card, ctx DealContext) []cards.Card
}

// Variant is a playable game variant.
type Variant interface {
	Spec() Spec
	// WildRule returns nil for variants without wilds.
	WildRule() WildRule
	Ranking() eval.RankingScheme
	// BonusRank returns the rank that grants an extra dealt card, if the
	// variant has one (e.g. fours in Baseball).
	BonusRank() (cards.Rank, bool)
}
