package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RobGibbens/CardGames-sub012/internal/cards"
)

func parse(t *testing.T, s string) []cards.Card {
	t.Helper()
	cs, err := cards.ParseCards(s)
	if err != nil {
		t.Fatalf("ParseCards(%q) failed: %v", s, err)
	}
	return cs
}

func TestStaticRankRuleBaseball(t *testing.T) {
	a := assert.New(t)
	rule := Baseball{}.WildRule()

	hand := parse(t, "3h Kd 9c 5s 2h")
	wilds := rule.Wild(hand, DealContext{})
	a.Equal("9c 3h", cards.Format(wilds), "exactly the three and the nine are wild")

	none := rule.Wild(parse(t, "Ah Kd Qc 5s 2h"), DealContext{})
	a.Empty(none)
}

func TestStaticRankRulePure(t *testing.T) {
	a := assert.New(t)
	rule := StaticRankRule{Ranks: []cards.Rank{cards.Three}}

	hand := parse(t, "3h Kd 9c")
	before := cards.Format(hand)
	rule.Wild(hand, DealContext{})
	a.Equal(before, cards.Format(hand), "rule must not mutate the hand")
}

func TestFollowTheQueenLastQueenWins(t *testing.T) {
	a := assert.New(t)
	rule := FollowTheQueenRule{}

	// Face-up sequence Qh, 7d, Qs, Kc: the rank following the *last*
	// queen is king, and the earlier 7 is no longer wild.
	ctx := DealContext{FaceUp: parse(t, "Qh 7d Qs Kc")}

	hand := parse(t, "Kd 7h Qc 5s 2h")
	wilds := rule.Wild(hand, ctx)
	a.Equal("Kd Qc", cards.Format(wilds), "kings and queens wild, sevens not")
}

func TestFollowTheQueenQueenLast(t *testing.T) {
	a := assert.New(t)
	rule := FollowTheQueenRule{}

	// A queen as the final face-up card leaves no following wild rank.
	ctx := DealContext{FaceUp: parse(t, "7d Kc Qs")}

	hand := parse(t, "Kd 7h Qc 5s 2h")
	wilds := rule.Wild(hand, ctx)
	a.Equal("Qc", cards.Format(wilds), "only queens wild")
}

func TestFollowTheQueenNoQueens(t *testing.T) {
	a := assert.New(t)
	rule := FollowTheQueenRule{}

	ctx := DealContext{FaceUp: parse(t, "7d Kc 2s")}
	wilds := rule.Wild(parse(t, "Kd 7h 5s 2h 9c"), ctx)
	a.Empty(wilds, "no queens dealt face up means only queens in hand would be wild")
}

func TestGatedRankRule(t *testing.T) {
	a := assert.New(t)
	rule := KingsAndLittleOnes{}.WildRule()

	withKing := parse(t, "Kd 3h 2c 9s Ah")
	wilds := rule.Wild(withKing, DealContext{})
	a.Equal("3h 2c", cards.Format(wilds), "little ones wild alongside a king")

	withoutKing := parse(t, "Qd 3h 2c 9s Ah")
	a.Empty(rule.Wild(withoutKing, DealContext{}), "no king, no wilds")
}

func TestWildRuleEmptyHand(t *testing.T) {
	a := assert.New(t)
	require.NotNil(t, Baseball{}.WildRule())

	a.Empty(Baseball{}.WildRule().Wild(nil, DealContext{}))
	a.Empty(FollowTheQueenRule{}.Wild(nil, DealContext{}))
}
