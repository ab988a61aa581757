package cards

import "fmt"

// DeckSize is the number of cards in the canonical deck.
const DeckSize = 52

// Rand supplies the random index selection used when dealing. *rand.Rand
// satisfies it. Implementations must return a uniform value in [0, n).
type Rand interface {
	Intn(n int) int
}

// Deck tracks which of the 52 canonical cards have been dealt or removed.
// The zero value is not usable; call NewDeck.
type Deck struct {
	dealt     [DeckSize]bool
	remaining int
}

// NewDeck returns a full deck with all 52 cards available.
func NewDeck() *Deck {
	return &Deck{remaining: DeckSize}
}

// Reset marks every card available again.
func (d *Deck) Reset() {
	d.dealt = [DeckSize]bool{}
	d.remaining = DeckSize
}

// Remaining returns the count of undealt cards.
func (d *Deck) Remaining() int {
	return d.remaining
}

// Available returns the undealt cards in canonical index order.
func (d *Deck) Available() []Card {
	cs := make([]Card, 0, d.remaining)
	for i := 0; i < DeckSize; i++ {
		if !d.dealt[i] {
			cs = append(cs, cardFromIndex(i))
		}
	}
	return cs
}

// cardIndex maps a card to its canonical deck slot: 2c=0, 2d=1, ... As=51.
func cardIndex(c Card) int {
	return int(c.Rank-Two)*4 + int(c.Suit)
}

func cardFromIndex(i int) Card {
	return Card{Rank: Two + Rank(i/4), Suit: Suit(i % 4)}
}

// Dealer draws cards from a deck using an injected random source. Index
// selection is "pick the k-th remaining card, k uniform over
// [0, remaining)", which yields a uniform permutation over repeated draws
// without physically shuffling an array.
type Dealer struct {
	deck *Deck
	rng  Rand
}

// NewDealer returns a dealer over a fresh full deck.
func NewDealer(rng Rand) *Dealer {
	return &Dealer{deck: NewDeck(), rng: rng}
}

// Shuffle resets all removal state so every card is available again.
func (dl *Dealer) Shuffle() {
	dl.deck.Reset()
}

// Remaining returns the count of undealt cards.
func (dl *Dealer) Remaining() int {
	return dl.deck.Remaining()
}

// Available returns the undealt cards in canonical order.
func (dl *Dealer) Available() []Card {
	return dl.deck.Available()
}

// DealCard draws one card uniformly at random among the currently
// available cards. It fails with ErrDeckExhausted when none remain.
func (dl *Dealer) DealCard() (Card, error) {
	if dl.deck.remaining == 0 {
		return Card{}, fmt.Errorf("%w: no cards remain", ErrDeckExhausted)
	}

	k := dl.rng.Intn(dl.deck.remaining)
	for i := 0; i < DeckSize; i++ {
		if dl.deck.dealt[i] {
			continue
		}
		if k == 0 {
			dl.deck.dealt[i] = true
			dl.deck.remaining--
			return cardFromIndex(i), nil
		}
		k--
	}

	// Unreachable while dealt/remaining stay consistent.
	return Card{}, fmt.Errorf("%w: deck state corrupt", ErrDeckExhausted)
}

// DealSpecific removes a named card from availability, reserving a card
// already known to be in a hand or dead. Removing a card that was already
// dealt is a caller bug and fails with ErrCardAlreadyDealt.
func (dl *Dealer) DealSpecific(c Card) error {
	i := cardIndex(c)
	if i < 0 || i >= DeckSize {
		return fmt.Errorf("%w: %s is not a deck card", ErrCardAlreadyDealt, c)
	}
	if dl.deck.dealt[i] {
		return fmt.Errorf("%w: %s", ErrCardAlreadyDealt, c)
	}
	dl.deck.dealt[i] = true
	dl.deck.remaining--
	return nil
}

// DealCards draws n cards sequentially. It returns the empty slice for
// n=0 without touching the deck, and fails with ErrDeckExhausted the
// moment availability runs out.
func (dl *Dealer) DealCards(n int) ([]Card, error) {
	if n <= 0 {
		return []Card{}, nil
	}

	cs := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		c, err := dl.DealCard()
		if err != nil {
			return nil, fmt.Errorf("dealt %d of %d: %w", i, n, err)
		}
		cs = append(cs, c)
	}
	return cs, nil
}
