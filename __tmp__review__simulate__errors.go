package simulate

import "errors"

// ErrDeckExhausted is returned when the configuration requires more cards
// than a 52-card deck can supply (playerCount*holeCount + 5 > 52).
var ErrDeckExhausted = errors.New("deck exhausted")

// ErrInvalidConfig is returned for a non-positive iteration count or a
// player count below 2. A player count too large for the deck yields
// ErrDeckExhausted instead.
var ErrInvalidConfig = errors.New("invalid simulation config")


