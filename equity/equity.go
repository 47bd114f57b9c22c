// Package equity implements the fast heuristic equity estimator (spec.md
// §4.7): hero's evaluated category, the opponent's estimated Range, and a
// pairwise win-rate matrix are combined into an overall equity estimate,
// optionally lifted by draw equity. The EquityResult/breakdown shape is
// grounded on sdk/analysis.EquityResult's win/tie/loss accounting,
// retargeted from raw Monte Carlo counters to a matrix-seeded closed-form
// estimate per this project's heuristic (not simulate-on-every-call)
// design.
package equity

import (
	"fmt"
	"math"

	"github.com/lox/pokerforbots/outs"
	"github.com/lox/pokerforbots/rangeest"
)

const numCategories = 9

// Confidence mirrors rangeest.Confidence; equity's confidence is never
// higher than the range estimate's confidence it was seeded from.
type Confidence int

const (
	Low Confidence = iota
	Medium
	High
)

func (c Confidence) String() string {
	switch c {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	default:
		return "unknown"
	}
}

// Breakdown splits equity into the share coming from opponent categories
// weaker than, similar to, and stronger than hero's own category. The three
// fields sum to approximately 100 (±5), per spec.md §4.7.
type Breakdown struct {
	VsWeaker   float64
	VsSimilar  float64
	VsStronger float64
}

// Result is the output of Estimate.
type Result struct {
	Equity     float64 // percentage, 0-100
	VsRange    string
	Confidence Confidence
	Breakdown  Breakdown
}

// MatrixProvider supplies the pairwise win-rate matrix for a given player
// count (spec.md §9's recommended seam for swapping pre-computed simulation
// output without the equity package depending on simulate directly).
type MatrixProvider interface {
	WinRateMatrix(playerCount int) (matrix [numCategories][numCategories]float64, ok bool)
}

// Input bundles everything Estimate needs for one call.
type Input struct {
	HeroCategory  int // index into poker.Categories, e.g. from HandRank.CategoryIndex()
	IsNuts        bool
	OpponentRange rangeest.Range
	Opponents     int
	Matrices      MatrixProvider

	// Draws, when non-nil, blends outs.ApproxEquity into the category
	// win-rate (spec.md §4.7: "lightly blended with draw equity when
	// present").
	Draws         *outs.DrawInfo
	StreetsToCome int
}

// Estimate computes hero's equity against in.OpponentRange and in.Opponents
// villains, following spec.md §4.7's algorithm.
func Estimate(in Input) (Result, error) {
	matrix, ok := in.Matrices.WinRateMatrix(in.Opponents + 1)
	if !ok {
		return Result{}, fmt.Errorf("equity: players=%d: %w", in.Opponents+1, ErrNoMatrixData)
	}

	row := matrix[in.HeroCategory]
	if in.Draws != nil {
		row = blendDrawEquity(row, in.HeroCategory, *in.Draws, in.StreetsToCome)
	}

	equityVsOne := 0.0
	for oppCat, weight := range in.OpponentRange.Distribution {
		equityVsOne += weight * row[oppCat]
	}

	equityMulti := equityVsOne
	for i := 1; i < in.Opponents; i++ {
		equityMulti *= equityVsOne
	}

	if in.IsNuts {
		equityMulti = liftTowardObservedWinRate(equityMulti, in.OpponentRange.Distribution[in.HeroCategory])
	}
	if in.OpponentRange.NutBias > 0.3 {
		equityMulti *= 1 - 0.1*in.OpponentRange.NutBias
	}

	equityMulti = clamp01(equityMulti)

	return Result{
		Equity:     equityMulti * 100,
		VsRange:    in.OpponentRange.Tag,
		Confidence: confidenceOf(in.OpponentRange.Confidence),
		Breakdown:  breakdownOf(row, in.OpponentRange.Distribution, in.HeroCategory),
	}, nil
}

func blendDrawEquity(row [numCategories]float64, heroCat int, draws outs.DrawInfo, streetsToCome int) [numCategories]float64 {
	drawEquity := outs.ApproxEquity(draws.Outs, streetsToCome) / 100
	if drawEquity <= 0 {
		return row
	}
	for i := range row {
		if i <= heroCat {
			continue
		}
		// A weaker-category read lifted toward drawEquity: the hand
		// isn't made yet, but completing the draw makes it a near
		// lock against that category.
		row[i] = row[i] + (1-row[i])*drawEquity*0.5
	}
	return row
}

// liftTowardObservedWinRate pulls equity toward observedWinRate when hero
// holds the nuts, since no single opponent category can beat the nuts.
func liftTowardObservedWinRate(equity, observedWinRate float64) float64 {
	if observedWinRate <= 0 {
		return equity
	}
	return equity + (observedWinRate-equity)*0.5
}

func confidenceOf(rc rangeest.Confidence) Confidence {
	switch rc {
	case rangeest.High:
		return High
	case rangeest.Medium:
		return Medium
	default:
		return Low
	}
}

// breakdownOf splits the weighted win-rate contribution across opponent
// categories weaker than, equal to, and stronger than heroCat, normalized
// to sum to 100.
func breakdownOf(row [numCategories]float64, oppDist [numCategories]float64, heroCat int) Breakdown {
	var weaker, similar, stronger float64
	for cat, weight := range oppDist {
		contribution := weight * row[cat]
		switch {
		case cat < heroCat:
			weaker += contribution
		case cat == heroCat:
			similar += contribution
		default:
			stronger += contribution
		}
	}
	total := weaker + similar + stronger
	if total <= 0 {
		return Breakdown{}
	}
	return Breakdown{
		VsWeaker:   100 * weaker / total,
		VsSimilar:  100 * similar / total,
		VsStronger: 100 * stronger / total,
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

