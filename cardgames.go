// Package cardgames is the application-facing surface of the engine. It
// accepts textual card notation and variant IDs, translates into the
// internal card, evaluation, and simulation layers, and returns plain
// result types the surrounding application can serialize directly.
package cardgames

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/RobGibbens/CardGames-sub012/internal/cards"
	"github.com/RobGibbens/CardGames-sub012/internal/eval"
	"github.com/RobGibbens/CardGames-sub012/internal/sim"
	"github.com/RobGibbens/CardGames-sub012/internal/variant"
)

// ErrUnknownVariant is returned when a request names a variant ID that
// is not registered.
var ErrUnknownVariant = errors.New("unknown variant")

// VariantInfo describes one registered game variant.
type VariantInfo struct {
	ID       string
	Name     string
	HandSize int
	HasWilds bool
}

// Variants lists every registered variant in ID order.
func Variants() []VariantInfo {
	ids := variant.List()
	infos := make([]VariantInfo, 0, len(ids))
	for _, id := range ids {
		v, ok := variant.Get(id)
		if !ok {
			continue
		}
		spec := v.Spec()
		infos = append(infos, VariantInfo{
			ID:       spec.ID,
			Name:     spec.Name,
			HandSize: spec.HandSize,
			HasWilds: v.WildRule() != nil,
		})
	}
	return infos
}

// Player pairs a player name with their known cards in textual notation,
// e.g. "Ah Kd". An empty string means no cards are known.
type Player struct {
	Name  string
	Cards string
}

// SimulationRequest describes one equity simulation.
type SimulationRequest struct {
	Variant    string
	Players    []Player
	DeadCards  string
	Iterations int
	Seed       int64
	Workers    int
	Logger     *zap.Logger
}

// PlayerResult is one player's aggregated outcome.
type PlayerResult struct {
	Name      string
	Wins      uint64
	Ties      uint64
	WinRate   float64
	TieRate   float64
	Equity    float64
	HandTypes map[string]uint64
}

// SimulationResult echoes the run identity and per-player statistics.
type SimulationResult struct {
	RunID     string
	Variant   string
	Requested int
	Completed int
	Partial   bool
	Players   []PlayerResult
}

// Simulate runs an equity simulation for the request. Cancelling ctx
// stops the run early and marks the result partial instead of failing.
func Simulate(ctx context.Context, req SimulationRequest) (SimulationResult, error) {
	v, ok := variant.Get(req.Variant)
	if !ok {
		return SimulationResult{}, fmt.Errorf("%w: %q", ErrUnknownVariant, req.Variant)
	}

	players := make([]sim.PlayerSpec, len(req.Players))
	for i, p := range req.Players {
		given, err := cards.ParseCards(p.Cards)
		if err != nil {
			return SimulationResult{}, fmt.Errorf("player %q: %w", p.Name, err)
		}
		players[i] = sim.PlayerSpec{Name: p.Name, Given: given}
	}
	dead, err := cards.ParseCards(req.DeadCards)
	if err != nil {
		return SimulationResult{}, fmt.Errorf("dead cards: %w", err)
	}

	res, err := sim.Run(ctx, sim.Config{
		Variant:    v,
		Players:    players,
		DeadCards:  dead,
		Iterations: req.Iterations,
		Seed:       req.Seed,
		Workers:    req.Workers,
		Logger:     req.Logger,
	})
	if err != nil {
		return SimulationResult{}, err
	}

	out := SimulationResult{
		RunID:     res.RunID,
		Variant:   res.VariantID,
		Requested: res.Requested,
		Completed: res.Completed,
		Partial:   res.Partial,
		Players:   make([]PlayerResult, len(res.Players)),
	}
	for i, p := range res.Players {
		handTypes := make(map[string]uint64, len(p.HandTypes))
		for t, n := range p.HandTypes {
			handTypes[t.String()] = n
		}
		out.Players[i] = PlayerResult{
			Name:      p.Name,
			Wins:      p.Wins,
			Ties:      p.Ties,
			WinRate:   p.WinRate(),
			TieRate:   p.TieRate(),
			Equity:    p.Equity(),
			HandTypes: handTypes,
		}
	}
	return out, nil
}

// OddsRequest describes one hand-odds calculation. Hero holds 0 to 5
// known cards in textual notation.
type OddsRequest struct {
	Variant    string
	Hero       string
	DeadCards  string
	SampleSize int
	Seed       int64
	Logger     *zap.Logger
}

// OddsRow is one hand category and the probability of ending there.
type OddsRow struct {
	Label       string
	Probability float64
}

// OddsResult is the hand-category distribution, best category first.
type OddsResult struct {
	Rows    []OddsRow
	Method  string
	Samples int
	Partial bool
}

// HandOdds computes the final-hand distribution for a partial hero hand.
// An empty Variant means five-card draw.
func HandOdds(ctx context.Context, req OddsRequest) (OddsResult, error) {
	var v variant.Variant
	if req.Variant != "" {
		var ok bool
		if v, ok = variant.Get(req.Variant); !ok {
			return OddsResult{}, fmt.Errorf("%w: %q", ErrUnknownVariant, req.Variant)
		}
	}

	hero, err := cards.ParseCards(req.Hero)
	if err != nil {
		return OddsResult{}, fmt.Errorf("hero: %w", err)
	}
	dead, err := cards.ParseCards(req.DeadCards)
	if err != nil {
		return OddsResult{}, fmt.Errorf("dead cards: %w", err)
	}

	res, err := sim.Odds(ctx, sim.OddsConfig{
		Variant:    v,
		Hero:       hero,
		DeadCards:  dead,
		SampleSize: req.SampleSize,
		Seed:       req.Seed,
		Logger:     req.Logger,
	})
	if err != nil {
		return OddsResult{}, err
	}

	rows := make([]OddsRow, len(res.Entries))
	for i, e := range res.Entries {
		rows[i] = OddsRow{Label: e.Label, Probability: e.Probability}
	}
	return OddsResult{
		Rows:    rows,
		Method:  res.Method,
		Samples: res.Samples,
		Partial: res.Partial,
	}, nil
}

// HandDescription is the evaluated shape of a single hand.
type HandDescription struct {
	HandType string
	Best     string
	Wilds    string
	Strength int64
}

// DescribeHand evaluates a textual hand under a variant's wild rule and
// ranking scheme, using an empty face-up context. An empty Variant means
// five-card draw.
func DescribeHand(variantID, hand string) (HandDescription, error) {
	var v variant.Variant = variant.FiveCardDraw{}
	if variantID != "" {
		var ok bool
		if v, ok = variant.Get(variantID); !ok {
			return HandDescription{}, fmt.Errorf("%w: %q", ErrUnknownVariant, variantID)
		}
	}

	cs, err := cards.ParseCards(hand)
	if err != nil {
		return HandDescription{}, err
	}

	var wilds []cards.Card
	if rule := v.WildRule(); rule != nil {
		wilds = rule.Wild(cs, variant.DealContext{})
	}

	best, err := eval.BestFive(cs, wilds, v.Ranking())
	if err != nil {
		return HandDescription{}, err
	}
	return HandDescription{
		HandType: best.HandType.String(),
		Best:     cards.Format(best.Best),
		Wilds:    cards.Format(wilds),
		Strength: best.Strength,
	}, nil
}
