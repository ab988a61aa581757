package sim

import (
	"math"

	"github.com/RobGibbens/CardGames-sub012/internal/eval"
)

// PlayerStats aggregates one player's outcomes across all completed
// iterations of a run.
type PlayerStats struct {
	Name string

	// Wins counts iterations where this player held the strictly best
	// hand; Ties counts iterations where they shared the best strength.
	Wins uint64
	Ties uint64

	// HandTypes is the frequency of each final hand category.
	HandTypes map[eval.HandType]uint64

	completed int
}

// WinRate returns the fraction of completed iterations won outright.
func (s PlayerStats) WinRate() float64 {
	if s.completed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.completed)
}

// TieRate returns the fraction of completed iterations tied for best.
func (s PlayerStats) TieRate() float64 {
	if s.completed == 0 {
		return 0
	}
	return float64(s.Ties) / float64(s.completed)
}

// Equity returns the player's overall equity: wins count 1, ties 0.5.
func (s PlayerStats) Equity() float64 {
	if s.completed == 0 {
		return 0
	}
	return (float64(s.Wins) + float64(s.Ties)*0.5) / float64(s.completed)
}

// ConfidenceInterval returns the 95% interval for the equity estimate
// using the normal approximation for a binomial proportion.
func (s PlayerStats) ConfidenceInterval() (lower, upper float64) {
	if s.completed == 0 {
		return 0, 0
	}
	equity := s.Equity()
	se := math.Sqrt(equity * (1 - equity) / float64(s.completed))
	margin := 1.96 * se
	return math.Max(0, equity-margin), math.Min(1, equity+margin)
}

// Result is the immutable aggregate of a simulation run. It holds no
// references to engine internals; the caller owns it outright.
type Result struct {
	RunID     string
	VariantID string

	// Requested is the configured iteration count; Completed is how many
	// iterations actually ran. Partial is set when cancellation stopped
	// the run before Requested iterations finished.
	Requested int
	Completed int
	Partial   bool

	Players []PlayerStats
}

// Player looks up a player's stats by name.
func (r *Result) Player(name string) (PlayerStats, bool) {
	for _, p := range r.Players {
		if p.Name == name {
			return p, true
		}
	}
	return PlayerStats{}, false
}

// mergeAggregates combines the workers' private tallies into the final
// result. Called only after every worker has returned.
func mergeAggregates(runID string, cfg Config, aggs []*aggregate) *Result {
	completed := 0
	for _, agg := range aggs {
		if agg != nil {
			completed += agg.completed
		}
	}

	players := make([]PlayerStats, len(cfg.Players))
	for i, p := range cfg.Players {
		stats := PlayerStats{
			Name:      p.Name,
			HandTypes: make(map[eval.HandType]uint64),
			completed: completed,
		}
		for _, agg := range aggs {
			if agg == nil {
				continue
			}
			stats.Wins += agg.players[i].wins
			stats.Ties += agg.players[i].ties
			for t, n := range agg.players[i].handTypes {
				if n > 0 {
					stats.HandTypes[eval.HandType(t)] += n
				}
			}
		}
		players[i] = stats
	}

	return &Result{
		RunID:     runID,
		VariantID: cfg.Variant.Spec().ID,
		Requested: cfg.Iterations,
		Completed: completed,
		Partial:   completed < cfg.Iterations,
		Players:   players,
	}
}
