package variant

import (
	"github.com/RobGibbens/CardGames-sub012/internal/cards"
	"github.com/RobGibbens/CardGames-sub012/internal/eval"
)

// FiveCardDraw is straight five-card poker: no wilds, no face-up cards.
type FiveCardDraw struct{}

// Spec returns the variant's shape.
func (FiveCardDraw) Spec() Spec {
	return Spec{ID: "five_card_draw", Name: "Five-Card Draw", HandSize: 5}
}

// WildRule returns nil; the variant has no wilds.
func (FiveCardDraw) WildRule() WildRule { return nil }

// Ranking keeps the straight flush as the top tier.
func (FiveCardDraw) Ranking() eval.RankingScheme { return eval.StraightFlushHigh }

// BonusRank returns no bonus rank.
func (FiveCardDraw) BonusRank() (cards.Rank, bool) { return 0, false }

// DeucesWild is five-card poker with every two wild.
type DeucesWild struct{}

// Spec returns the variant's shape.
func (DeucesWild) Spec() Spec {
	return Spec{ID: "deuces_wild", Name: "Deuces Wild", HandSize: 5}
}

// WildRule marks all twos wild.
func (DeucesWild) WildRule() WildRule {
	return StaticRankRule{Ranks: []cards.Rank{cards.Two}}
}

// Ranking puts five of a kind above a straight flush.
func (DeucesWild) Ranking() eval.RankingScheme { return eval.FiveOfAKindHigh }

// BonusRank returns no bonus rank.
func (DeucesWild) BonusRank() (cards.Rank, bool) { return 0, false }

// SevenCardStud deals seven cards — two down, four up, one down — and
// plays the best five.
type SevenCardStud struct{}

// Spec returns the variant's shape: positions 2-5 are face up.
func (SevenCardStud) Spec() Spec {
	return Spec{ID: "seven_card_stud", Name: "Seven-Card Stud", HandSize: 7, FaceUpStart: 2, FaceUpEnd: 6}
}

// WildRule returns nil; standard stud has no wilds.
func (SevenCardStud) WildRule() WildRule { return nil }

// Ranking keeps the straight flush as the top tier.
func (SevenCardStud) Ranking() eval.RankingScheme { return eval.StraightFlushHigh }

// BonusRank returns no bonus rank.
func (SevenCardStud) BonusRank() (cards.Rank, bool) { return 0, false }

// Baseball is seven-card stud where threes and nines are wild and a
// dealt four grants an extra card (chaining while fours keep coming).
type Baseball struct{}

// Spec returns the variant's shape.
func (Baseball) Spec() Spec {
	return Spec{ID: "baseball", Name: "Baseball", HandSize: 7, FaceUpStart: 2, FaceUpEnd: 6}
}

// WildRule marks threes and nines wild.
func (Baseball) WildRule() WildRule {
	return StaticRankRule{Ranks: []cards.Rank{cards.Three, cards.Nine}}
}

// Ranking puts five of a kind above a straight flush.
func (Baseball) Ranking() eval.RankingScheme { return eval.FiveOfAKindHigh }

// BonusRank returns four: dealing one grants an extra card.
func (Baseball) BonusRank() (cards.Rank, bool) { return cards.Four, true }

// FollowTheQueen is seven-card stud with the order-dependent queen rule.
type FollowTheQueen struct{}

// Spec returns the variant's shape.
func (FollowTheQueen) Spec() Spec {
	return Spec{ID: "follow_the_queen", Name: "Follow the Queen", HandSize: 7, FaceUpStart: 2, FaceUpEnd: 6}
}

// WildRule returns the order-dependent queen rule.
func (FollowTheQueen) WildRule() WildRule { return FollowTheQueenRule{} }

// Ranking puts five of a kind above a straight flush.
func (FollowTheQueen) Ranking() eval.RankingScheme { return eval.FiveOfAKindHigh }

// BonusRank returns no bonus rank.
func (FollowTheQueen) BonusRank() (cards.Rank, bool) { return 0, false }

// KingsAndLittleOnes is seven-card stud where twos and threes are wild
// only when the hand also holds a king.
type KingsAndLittleOnes struct{}

// Spec returns the variant's shape.
func (KingsAndLittleOnes) Spec() Spec {
	return Spec{ID: "kings_and_little_ones", Name: "Kings and Little Ones", HandSize: 7, FaceUpStart: 2, FaceUpEnd: 6}
}

// WildRule gates the low wilds on a king being present.
func (KingsAndLittleOnes) WildRule() WildRule {
	return GatedRankRule{WildRanks: []cards.Rank{cards.Two, cards.Three}, Companion: cards.King}
}

// Ranking puts five of a kind above a straight flush.
func (KingsAndLittleOnes) Ranking() eval.RankingScheme { return eval.FiveOfAKindHigh }

// BonusRank returns no bonus rank.
func (KingsAndLittleOnes) BonusRank() (cards.Rank, bool) { return 0, false }
