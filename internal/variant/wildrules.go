package variant

import (
	"strings"

	"github.com/RobGibbens/CardGames-sub012/internal/cards"
)

// StaticRankRule marks any card of a fixed rank set wild, independent of
// hand context (Baseball's threes and nines, deuces wild).
type StaticRankRule struct {
	Ranks []cards.Rank
}

// Name identifies the rule for logs and tests.
func (r StaticRankRule) Name() string {
	tokens := make([]string, len(r.Ranks))
	for i, rank := range r.Ranks {
		tokens[i] = rank.String()
	}
	return "wild-" + strings.Join(tokens, "-")
}

// Wild returns the cards whose rank is in the rule's set.
func (r StaticRankRule) Wild(hand []cards.Card, _ DealContext) []cards.Card {
	wilds := []cards.Card{}
	for _, c := range hand {
		for _, rank := range r.Ranks {
			if c.Rank == rank {
				wilds = append(wilds, c)
				break
			}
		}
	}
	return wilds
}

// FollowTheQueenRule makes queens always wild. Additionally, the rank of
// the card dealt face up immediately after the most recent face-up queen
// is wild — replaced, not accumulated, each time a later queen appears.
// A queen as the final face-up card leaves no extra wild rank.
type FollowTheQueenRule struct{}

// Name identifies the rule.
func (FollowTheQueenRule) Name() string {
	return "follow-the-queen"
}

// Wild returns the queens in the hand plus any cards of the current
// following rank, derived from the face-up deal sequence.
func (FollowTheQueenRule) Wild(hand []cards.Card, ctx DealContext) []cards.Card {
	following, active := followingRank(ctx.FaceUp)

	wilds := []cards.Card{}
	for _, c := range hand {
		if c.Rank == cards.Queen || (active && c.Rank == following) {
			wilds = append(wilds, c)
		}
	}
	return wilds
}

// followingRank finds the rank dealt directly after the last face-up
// queen in the sequence.
func followingRank(faceUp []cards.Card) (cards.Rank, bool) {
	for i := len(faceUp) - 1; i >= 0; i-- {
		if faceUp[i].Rank != cards.Queen {
			continue
		}
		if i == len(faceUp)-1 {
			return 0, false
		}
		return faceUp[i+1].Rank, true
	}
	return 0, false
}

// GatedRankRule activates a low-card wild set only when a companion rank
// is present in the same hand (e.g. little ones are wild only alongside
// a king).
type GatedRankRule struct {
	WildRanks []cards.Rank
	Companion cards.Rank
}

// Name identifies the rule.
func (r GatedRankRule) Name() string {
	return "wild-with-" + r.Companion.String()
}

// Wild returns the low wild cards when the companion rank is present,
// and the empty set otherwise.
func (r GatedRankRule) Wild(hand []cards.Card, _ DealContext) []cards.Card {
	present := false
	for _, c := range hand {
		if c.Rank == r.Companion {
			present = true
			break
		}
	}
	if !present {
		return []cards.Card{}
	}
	return StaticRankRule{Ranks: r.WildRanks}.Wild(hand, DealContext{})
}
