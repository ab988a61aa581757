// Package sim runs randomized dealing simulations and odds calculations
// over the card, evaluation, and variant layers. Entry points take an
// immutable config by value, honor context cancellation at iteration
// boundaries, and return partial aggregates instead of discarding work.
package sim

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/RobGibbens/CardGames-sub012/internal/cards"
	"github.com/RobGibbens/CardGames-sub012/internal/variant"
)

// PlayerSpec names a simulated player and the cards already known to be
// in their hand.
type PlayerSpec struct {
	Name  string
	Given []cards.Card
}

// Config fully describes a simulation run. It is passed by value and
// never mutated, so a config can be reused across concurrent runs.
type Config struct {
	Variant    variant.Variant
	Players    []PlayerSpec
	DeadCards  []cards.Card
	Iterations int

	// Seed makes the run reproducible; 0 derives a fresh seed from
	// crypto/rand so overlapping runs never share a stream.
	Seed int64

	// Workers bounds iteration parallelism; <= 0 uses GOMAXPROCS.
	Workers int

	// Logger receives debug-level progress events; nil means no logging.
	Logger *zap.Logger
}

// Validate reports every problem with the config at once.
func (c Config) Validate() error {
	var err error

	if c.Variant == nil {
		err = multierr.Append(err, fmt.Errorf("variant is required"))
	}
	if c.Iterations < 1 {
		err = multierr.Append(err, fmt.Errorf("%w: got %d, want >= 1", ErrInvalidIterationCount, c.Iterations))
	}
	if len(c.Players) == 0 {
		err = multierr.Append(err, ErrNoPlayers)
	}

	seen := make(map[string]bool, len(c.Players))
	for i, p := range c.Players {
		if p.Name == "" {
			err = multierr.Append(err, fmt.Errorf("player %d has no name", i))
			continue
		}
		if seen[p.Name] {
			err = multierr.Append(err, fmt.Errorf("duplicate player name %q", p.Name))
		}
		seen[p.Name] = true

		if c.Variant != nil && len(p.Given) > c.Variant.Spec().HandSize {
			err = multierr.Append(err, fmt.Errorf("player %q: %d given cards exceed hand size %d",
				p.Name, len(p.Given), c.Variant.Spec().HandSize))
		}
	}

	err = multierr.Append(err, checkClaims(c.Players, c.DeadCards))
	return err
}

// checkClaims fails when the same card is claimed twice across all given
// and dead cards.
func checkClaims(players []PlayerSpec, dead []cards.Card) error {
	var err error
	claimed := make(map[cards.Card]bool, cards.DeckSize)

	claim := func(c cards.Card, owner string) {
		if claimed[c] {
			err = multierr.Append(err, fmt.Errorf("%w: %s claimed twice (%s)", cards.ErrCardAlreadyDealt, c, owner))
			return
		}
		claimed[c] = true
	}

	for _, p := range players {
		for _, c := range p.Given {
			claim(c, "player "+p.Name)
		}
	}
	for _, c := range dead {
		claim(c, "dead cards")
	}
	return err
}
