package equity

import "errors"

// ErrNoMatrixData is returned when a MatrixProvider has no simulation
// result for the requested player count, so no pairwise win-rate data is
// available to seed the estimate.
var ErrNoMatrixData = errors.New("no matrix data for player count")


