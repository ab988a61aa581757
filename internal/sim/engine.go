package sim

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"runtime"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/RobGibbens/CardGames-sub012/internal/cards"
	"github.com/RobGibbens/CardGames-sub012/internal/eval"
	"github.com/RobGibbens/CardGames-sub012/internal/variant"
)

// Run executes cfg.Iterations simulated deals and aggregates per-player
// win/tie counts and hand-type frequencies. Iterations are split across
// workers, each with its own seeded random stream and private aggregate;
// partial aggregates are merged only after every worker has stopped.
// Cancellation is checked at iteration boundaries: a cancelled run
// returns what was computed so far with Result.Partial set, not an error.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = randomSeed()
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > cfg.Iterations {
		workers = cfg.Iterations
	}

	evaluator, err := eval.NewEvaluator(0)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger.Debug("starting simulation run",
		zap.String("run_id", runID),
		zap.String("variant", cfg.Variant.Spec().ID),
		zap.Int("iterations", cfg.Iterations),
		zap.Int("workers", workers),
		zap.Int64("seed", seed),
	)

	aggs := make([]*aggregate, workers)
	g, gctx := errgroup.WithContext(ctx)

	per := cfg.Iterations / workers
	extra := cfg.Iterations % workers
	for w := 0; w < workers; w++ {
		w := w
		iters := per
		if w < extra {
			iters++
		}
		g.Go(func() error {
			agg, err := runBatch(gctx, cfg, evaluator, seed+int64(w)*7919, iters)
			if err != nil {
				return err
			}
			aggs[w] = agg
			logger.Debug("simulation batch complete",
				zap.String("run_id", runID),
				zap.Int("worker", w),
				zap.Int("completed", agg.completed),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := mergeAggregates(runID, cfg, aggs)
	logger.Debug("simulation run finished",
		zap.String("run_id", runID),
		zap.Int("completed", result.Completed),
		zap.Bool("partial", result.Partial),
	)
	return result, nil
}

// aggregate is one worker's private tally. No worker ever observes
// another worker's aggregate before the merge.
type aggregate struct {
	completed int
	players   []playerTally
}

type playerTally struct {
	wins      uint64
	ties      uint64
	handTypes [eval.FiveOfAKind + 1]uint64
}

func newAggregate(players int) *aggregate {
	return &aggregate{players: make([]playerTally, players)}
}

// runBatch executes one worker's share of the iterations. It stops early
// without error when the context is cancelled; real failures (conflicting
// removals, an exhausted deck mid-deal) abort the whole run.
func runBatch(ctx context.Context, cfg Config, evaluator *eval.Evaluator, seed int64, iterations int) (*aggregate, error) {
	rng := rand.New(rand.NewSource(seed))
	dealer := cards.NewDealer(rng)

	spec := cfg.Variant.Spec()
	rule := cfg.Variant.WildRule()
	scheme := cfg.Variant.Ranking()
	bonusRank, hasBonus := cfg.Variant.BonusRank()

	agg := newAggregate(len(cfg.Players))
	hands := make([][]cards.Card, len(cfg.Players))
	need := make([]int, len(cfg.Players))
	strengths := make([]int64, len(cfg.Players))
	faceUp := make([]cards.Card, 0, len(cfg.Players)*spec.HandSize)

	for it := 0; it < iterations; it++ {
		if ctx.Err() != nil {
			break
		}

		dealer.Shuffle()
		for _, p := range cfg.Players {
			for _, c := range p.Given {
				if err := dealer.DealSpecific(c); err != nil {
					return nil, err
				}
			}
		}
		for _, c := range cfg.DeadCards {
			if err := dealer.DealSpecific(c); err != nil {
				return nil, err
			}
		}

		// Given cards count as already dealt: those at face-up positions
		// seed the face-up sequence (grouped by seating order, ahead of
		// fresh deals) and bonus-rank givens grant extra cards exactly
		// like dealt ones.
		faceUp = faceUp[:0]
		for p := range cfg.Players {
			hands[p] = append(hands[p][:0], cfg.Players[p].Given...)
			need[p] = spec.HandSize
			for pos, c := range hands[p] {
				if spec.FaceUp(pos) {
					faceUp = append(faceUp, c)
				}
				if hasBonus && c.Rank == bonusRank {
					need[p]++
				}
			}
		}

		// Deal card by card in rounds across players, the way the table
		// would, so the face-up sequence reflects true deal order.
		for {
			progress := false
			for p := range hands {
				if len(hands[p]) >= need[p] {
					continue
				}
				c, err := dealer.DealCard()
				if err != nil {
					return nil, err
				}
				pos := len(hands[p])
				hands[p] = append(hands[p], c)
				if spec.FaceUp(pos) {
					faceUp = append(faceUp, c)
				}
				// A bonus-rank card grants an extra card; the extra card
				// chains when it is itself the bonus rank.
				if hasBonus && c.Rank == bonusRank {
					need[p]++
				}
				progress = true
			}
			if !progress {
				break
			}
		}

		dealCtx := variant.DealContext{FaceUp: faceUp}
		for p := range hands {
			var wilds []cards.Card
			if rule != nil {
				wilds = rule.Wild(hands[p], dealCtx)
			}
			ev, err := evaluator.Evaluate(hands[p], wilds, scheme)
			if err != nil {
				return nil, err
			}
			strengths[p] = ev.Strength
			agg.players[p].handTypes[ev.HandType]++
		}

		// A win is a strictly best strength; tied maxima award no win
		// and count as a tie for every holder.
		bestIdx, bestCount := 0, 1
		for p := 1; p < len(strengths); p++ {
			switch {
			case strengths[p] > strengths[bestIdx]:
				bestIdx, bestCount = p, 1
			case strengths[p] == strengths[bestIdx]:
				bestCount++
			}
		}
		if bestCount == 1 {
			agg.players[bestIdx].wins++
		} else {
			for p := range strengths {
				if strengths[p] == strengths[bestIdx] {
					agg.players[p].ties++
				}
			}
		}

		agg.completed++
	}

	return agg, nil
}

// randomSeed derives a fresh seed from crypto/rand so concurrent runs
// without explicit seeds never share a random stream.
func randomSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand failing is effectively fatal elsewhere; fall back
		// to a constant rather than crash a simulation.
		return 1
	}
	seed := int64(binary.LittleEndian.Uint64(b[:]))
	if seed == 0 {
		seed = 1
	}
	return seed
}
