package omaha

import "errors"

// ErrInvalidInput is returned for duplicate cards between hole and board, or
// a board with more than 5 cards.
var ErrInvalidInput = errors.New("invalid input")

// ErrVariantMismatch is returned when the hole-card count doesn't match the
// declared variant (4, 5, or 6 cards for PLO4/PLO5/PLO6).
var ErrVariantMismatch = errors.New("variant mismatch")

// ErrInsufficientData is returned when the board has fewer than 3 cards —
// preflop evaluation is not this package's job, callers route preflop
// through a different path.
var ErrInsufficientData = errors.New("insufficient data")
