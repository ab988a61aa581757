package eval

import (
	"testing"

	"github.com/RobGibbens/CardGames-sub012/internal/cards"
)

func TestCombinationsCount(t *testing.T) {
	tests := []struct {
		n, k, want int
	}{
		{7, 5, 21},
		{5, 5, 1},
		{8, 5, 56},
		{4, 5, 0},
		{52, 1, 52},
	}

	for _, tc := range tests {
		gen := NewCombinations(tc.n, tc.k)
		count := 0
		for _, ok := gen.Next(); ok; _, ok = gen.Next() {
			count++
		}
		if count != tc.want {
			t.Errorf("C(%d,%d) yielded %d combinations, want %d", tc.n, tc.k, count, tc.want)
		}
	}
}

func TestCombinationsReset(t *testing.T) {
	gen := NewCombinations(6, 5)
	first, ok := gen.Next()
	if !ok {
		t.Fatal("no first combination")
	}
	want := append([]int(nil), first...)

	for _, ok := gen.Next(); ok; _, ok = gen.Next() {
	}

	gen.Reset()
	again, ok := gen.Next()
	if !ok {
		t.Fatal("no combination after reset")
	}
	for i := range want {
		if again[i] != want[i] {
			t.Fatalf("reset changed first combination: %v vs %v", again, want)
		}
	}
}

func TestBestFiveFindsFlushInSeven(t *testing.T) {
	hand := mustParse(t, "Ah Jh 9h 5h 2h Kd Kc")

	got, err := BestFive(hand, nil, FiveOfAKindHigh)
	if err != nil {
		t.Fatalf("BestFive failed: %v", err)
	}
	if got.HandType != Flush {
		t.Errorf("BestFive = %v, want Flush", got.HandType)
	}
}

func TestBestFiveFindsRoyalInSeven(t *testing.T) {
	hand := mustParse(t, "2c Ah Kh 7d Qh Jh Th")

	got, err := BestFive(hand, nil, FiveOfAKindHigh)
	if err != nil {
		t.Fatalf("BestFive failed: %v", err)
	}
	if got.HandType != StraightFlush {
		t.Errorf("BestFive = %v, want StraightFlush", got.HandType)
	}
	found := false
	for _, c := range got.Best {
		if c.Rank == cards.Ace {
			found = true
		}
	}
	if !found {
		t.Errorf("royal flush missing ace: %s", cards.Format(got.Best))
	}
}

func TestBestFiveWithWilds(t *testing.T) {
	// Seven-card baseball hand: two wild nines plus three kings make
	// five of a kind.
	hand := mustParse(t, "Kh Kd Kc 9h 9d 4c 2s")
	wilds := wildsByRank(hand, cards.Nine)

	got, err := BestFive(hand, wilds, FiveOfAKindHigh)
	if err != nil {
		t.Fatalf("BestFive failed: %v", err)
	}
	if got.HandType != FiveOfAKind {
		t.Errorf("BestFive = %v, want FiveOfAKind", got.HandType)
	}
}

func TestBestFiveDeterministic(t *testing.T) {
	hand := mustParse(t, "Ah Ad Kh Kd Qc Js 9h")

	first, err := BestFive(hand, nil, FiveOfAKindHigh)
	if err != nil {
		t.Fatalf("BestFive failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := BestFive(hand, nil, FiveOfAKindHigh)
		if err != nil {
			t.Fatalf("BestFive failed: %v", err)
		}
		if cards.Format(again.Best) != cards.Format(first.Best) || again.Strength != first.Strength {
			t.Fatalf("selection not deterministic: %s vs %s", cards.Format(again.Best), cards.Format(first.Best))
		}
	}
}

func TestBestFiveIncomplete(t *testing.T) {
	got, err := BestFive(mustParse(t, "Ah Kd 2c"), nil, FiveOfAKindHigh)
	if err != nil {
		t.Fatalf("BestFive failed: %v", err)
	}
	if got.HandType != Incomplete {
		t.Errorf("BestFive on 3 cards = %v, want Incomplete", got.HandType)
	}
}
