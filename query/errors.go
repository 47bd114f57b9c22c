package query

import "errors"

// ErrUnknownKeyword is returned when a query's kind token isn't one of
// pair/dpair/run/bway/any.
var ErrUnknownKeyword = errors.New("unknown keyword")

// ErrMalformedRankConstraint is returned when a rank-constraint token
// doesn't match the exact/threshold/range grammar.
var ErrMalformedRankConstraint = errors.New("malformed rank constraint")

// ErrUnknownModifier is returned for a colon-separated token that is
// neither a recognized rank constraint nor a known suited/structural flag.
var ErrUnknownModifier = errors.New("unknown modifier")
