package simulate

import "math"

// ConfidenceInterval returns the 95% normal-approximation confidence
// interval for OverallWinRate, grounded on the teacher's
// EquityResult.ConfidenceInterval (sdk/analysis/equity.go), retargeted from
// a win/tie/loss counter to this package's fractional-credit win rate.
func (r Result) ConfidenceInterval() (lower, upper float64) {
	n := float64(r.Iterations)
	if n == 0 {
		return 0, 0
	}

	equity := r.OverallWinRate
	se := math.Sqrt((equity * (1 - equity)) / n)
	margin := 1.96 * se

	lower = math.Max(0, equity-margin)
	upper = math.Min(1, equity+margin)
	return lower, upper
}
