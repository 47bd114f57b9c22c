package recommend

import "errors"

// ErrInsufficientData is returned when Recommend is called with a street
// that has no board (preflop), which the core does not decide — callers
// route preflop through a dedicated policy (spec.md §7).
var ErrInsufficientData = errors.New("recommend: insufficient data for preflop")


