package classification

import "errors"

// ErrInvalidBoardLength is returned when AnalyzeFlop is called with a board
// that doesn't have exactly 3 cards.
var ErrInvalidBoardLength = errors.New("invalid board length")


