package poker

import "errors"

// ErrOutOfCards is returned when a deal is requested for more cards than
// the deck (minus any excluded cards) can supply.
var ErrOutOfCards = errors.New("out of cards")

// ErrInvalidInput is returned for duplicate cards or malformed hand input.
var ErrInvalidInput = errors.New("invalid input")
