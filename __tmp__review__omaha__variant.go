// Package omaha implements the Omaha best-hand combinator: given hero's
// hole cards and the community board, find the maximum HandRank over every
// legal (2 hole, 3 board) combination.
package omaha

import "fmt"

// Variant identifies an Omaha hole-card count.
type Variant int

const (
	PLO4 Variant = 4
	PLO5 Variant = 5
	PLO6 Variant = 6
)

// String renders the variant name.
func (v Variant) String() string {
	switch v {
	case PLO4:
		return "PLO4"
	case PLO5:
		return "PLO5"
	case PLO6:
		return "PLO6"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// HoleCards returns the number of hole cards the variant deals.
func (v Variant) HoleCards() int {
	return int(v)
}

// VariantFromHoleCount maps a hole-card count to its Variant.
func VariantFromHoleCount(n int) (Variant, error) {
	switch n {
	case 4:
		return PLO4, nil
	case 5:
		return PLO5, nil
	case 6:
		return PLO6, nil
	default:
		return 0, fmt.Errorf("variant from %d hole cards: %w", n, ErrVariantMismatch)
	}
}


