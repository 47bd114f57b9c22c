// Package simulate implements the Monte Carlo engine (spec.md §4.4): deal
// random Omaha hands to completion, tally hand-type distribution and
// pairwise win-rate matrices across many independent iterations. It is the
// one subsystem in this repository that benefits from parallelism — the
// iteration loop splits across workers with deterministic child seeds
// (spec.md §5) and combines additively.
package simulate

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerforbots/omaha"
	"github.com/lox/pokerforbots/poker"
)

// numCategories is the count of the 9 HandRank categories (poker.Categories).
const numCategories = 9

// Config parameterizes a simulation run.
type Config struct {
	Variant     omaha.Variant
	PlayerCount int
	Iterations  int

	// Seed, when non-nil, makes the run fully deterministic: same Seed +
	// same Config (including Workers) always produces a bit-identical
	// Result. When nil, a time-derived seed is used and results vary run
	// to run.
	Seed *uint64

	// Workers is the number of parallel goroutines iterations are split
	// across. Defaults to 4 when zero. Reproducibility requires a fixed
	// Workers value alongside a fixed Seed (spec.md §5).
	Workers int

	// Deadline, when non-zero, causes Run to stop early at the next
	// iteration boundary once reached, returning a partial Result with
	// Truncated set — never an error.
	Deadline time.Time
}

// CategoryStat is one row of the hand-type distribution.
type CategoryStat struct {
	Count      int
	Percentage float64
	// WinRate is the fraction of iterations in which a seat holding this
	// category went on to win (fractional credit on ties), restricted to
	// the seats that were dealt this category.
	WinRate float64
}

// Result is the aggregated outcome of a simulation run.
type Result struct {
	// HandTypeDistribution[i] describes poker.Categories[i], aggregated
	// over every seat in every iteration.
	HandTypeDistribution [numCategories]CategoryStat

	// ProbabilityMatrix[heroCat][oppCat] is, among iterations where seat 0
	// ("hero") held heroCat, the fraction of other seats whose best
	// category was oppCat. Counts, not win-conditioned (spec.md §4.4).
	ProbabilityMatrix [numCategories][numCategories]float64

	// WinRateMatrix[heroCat][oppCat] is hero's average fractional-win rate
	// across the subset of observations where hero held heroCat and a
	// given opponent seat held oppCat. spec.md §4.4 defines
	// ProbabilityMatrix as explicitly "not win-conditioned", yet §4.7's
	// equity calculator needs a genuine pairwise win-rate seeded from "the
	// pre-computed probability matrices" — this field resolves that
	// inconsistency (documented in DESIGN.md) by tracking both.
	WinRateMatrix [numCategories][numCategories]float64

	// OverallWinRate is hero's (seat 0's) average win fraction across all
	// iterations, with fractional credit (1/tieCount) on ties — see
	// DESIGN.md's open-question decision on multi-way tie policy.
	OverallWinRate float64

	Iterations int
	Truncated  bool
}

// maxPlayersFor returns the largest player count a 52-card deck can deal a
// 5-card board plus holeCards-per-seat hole cards to.
func maxPlayersFor(holeCards int) int {
	return (52 - 5) / holeCards
}

// Run executes cfg.Iterations independent Omaha hands and aggregates
// statistics. The iteration loop is split across cfg.Workers goroutines,
// each seeded deterministically via splitmix64 from the master seed;
// partial tallies combine by summation, which is associative and
// commutative (spec.md §5).
func Run(ctx context.Context, cfg Config) (Result, error) {
	if cfg.Iterations <= 0 {
		return Result{}, fmt.Errorf("simulate: iterations %d: %w", cfg.Iterations, ErrInvalidConfig)
	}
	if cfg.PlayerCount < 2 {
		return Result{}, fmt.Errorf("simulate: player count %d: %w", cfg.PlayerCount, ErrInvalidConfig)
	}
	holeCards := cfg.Variant.HoleCards()
	if cfg.PlayerCount*holeCards+5 > 52 {
		return Result{}, fmt.Errorf("simulate: %d players x %d hole cards + 5 board > 52: %w",
			cfg.PlayerCount, holeCards, ErrDeckExhausted)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 4
	}
	if workers > cfg.Iterations {
		workers = cfg.Iterations
	}

	var master uint64
	if cfg.Seed != nil {
		master = *cfg.Seed
	} else {
		master = uint64(time.Now().UnixNano())
	}

	share := cfg.Iterations / workers
	remainder := cfg.Iterations % workers

	tallies := make([]tally, workers)
	group, _ := errgroup.WithContext(ctx)
	for w := range workers {
		w := w
		n := share
		if w < remainder {
			n++
		}
		group.Go(func() error {
			rng := newWorkerRand(childSeed(master, w))
			tallies[w] = runWorker(ctx, cfg, n, rng)
			return nil
		})
	}
	_ = group.Wait()

	var total tally
	truncated := false
	for _, t := range tallies {
		total.merge(t)
		if t.truncated {
			truncated = true
		}
	}

	return total.toResult(truncated), nil
}

// tally accumulates one worker's partial statistics.
type tally struct {
	iterations      int
	categoryCount   [numCategories]int
	categoryWins    [numCategories]float64
	matrixCount     [numCategories][numCategories]int
	matrixWinSum    [numCategories][numCategories]float64
	heroWinFraction float64
	truncated       bool
}

func (t *tally) merge(other tally) {
	t.iterations += other.iterations
	t.heroWinFraction += other.heroWinFraction
	for i := range t.categoryCount {
		t.categoryCount[i] += other.categoryCount[i]
		t.categoryWins[i] += other.categoryWins[i]
		for j := range t.matrixCount[i] {
			t.matrixCount[i][j] += other.matrixCount[i][j]
			t.matrixWinSum[i][j] += other.matrixWinSum[i][j]
		}
	}
}

func (t tally) toResult(truncated bool) Result {
	var res Result
	res.Iterations = t.iterations
	res.Truncated = truncated

	totalSeatSamples := 0
	for _, c := range t.categoryCount {
		totalSeatSamples += c
	}

	for i := 0; i < numCategories; i++ {
		count := t.categoryCount[i]
		stat := CategoryStat{Count: count}
		if totalSeatSamples > 0 {
			stat.Percentage = float64(count) / float64(totalSeatSamples) * 100
		}
		if count > 0 {
			stat.WinRate = t.categoryWins[i] / float64(count)
		}
		res.HandTypeDistribution[i] = stat

		rowTotal := 0
		for j := 0; j < numCategories; j++ {
			rowTotal += t.matrixCount[i][j]
		}
		if rowTotal > 0 {
			for j := 0; j < numCategories; j++ {
				res.ProbabilityMatrix[i][j] = float64(t.matrixCount[i][j]) / float64(rowTotal)
			}
		}
		for j := 0; j < numCategories; j++ {
			if t.matrixCount[i][j] > 0 {
				res.WinRateMatrix[i][j] = t.matrixWinSum[i][j] / float64(t.matrixCount[i][j])
			}
		}
	}

	if t.iterations > 0 {
		res.OverallWinRate = t.heroWinFraction / float64(t.iterations)
	}
	return res
}

// runWorker deals and evaluates n independent hands, checking ctx/deadline
// at each iteration boundary.
func runWorker(ctx context.Context, cfg Config, n int, rng *rand.Rand) tally {
	var t tally
	holeCards := cfg.Variant.HoleCards()
	hasDeadline := !cfg.Deadline.IsZero()

	for iter := 0; iter < n; iter++ {
		if iter%256 == 0 {
			select {
			case <-ctx.Done():
				t.truncated = true
				return t
			default:
			}
			if hasDeadline && time.Now().After(cfg.Deadline) {
				t.truncated = true
				return t
			}
		}

		deck := poker.NewDeck(rng)
		hole := make([][]poker.Card, cfg.PlayerCount)
		for seat := range hole {
			hole[seat] = deck.Deal(holeCards)
		}
		board := deck.Deal(5)

		ranks := make([]poker.HandRank, cfg.PlayerCount)
		for seat := range hole {
			rank, err := omaha.Evaluate(hole[seat], board, cfg.Variant)
			if err != nil {
				continue
			}
			ranks[seat] = rank
			cat := rank.CategoryIndex()
			t.categoryCount[cat]++
		}

		best := ranks[0]
		for _, r := range ranks[1:] {
			if r > best {
				best = r
			}
		}
		winners := 0
		for _, r := range ranks {
			if r == best {
				winners++
			}
		}
		for _, r := range ranks {
			if r == best {
				t.categoryWins[r.CategoryIndex()] += 1.0 / float64(winners)
			}
		}

		if ranks[0] == best {
			t.heroWinFraction += 1.0 / float64(winners)
		}

		heroCat := ranks[0].CategoryIndex()
		heroWin := 0.0
		if ranks[0] == best {
			heroWin = 1.0 / float64(winners)
		}
		for seat := 1; seat < cfg.PlayerCount; seat++ {
			oppCat := ranks[seat].CategoryIndex()
			t.matrixCount[heroCat][oppCat]++
			t.matrixWinSum[heroCat][oppCat] += heroWin
		}

		t.iterations++
	}
	return t
}


