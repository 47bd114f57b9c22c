package sizer

import "errors"

// ErrInvalidAction is returned when Size is called with an action other
// than Bet or Raise.
var ErrInvalidAction = errors.New("sizer: invalid action")
