package styleprofile

import "errors"

// ErrUnknownStyleBlock is returned when an override file's HCL labels a
// style block with a name that isn't one of the six known styles.
var ErrUnknownStyleBlock = errors.New("unknown style block")


