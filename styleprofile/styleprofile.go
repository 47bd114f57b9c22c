// Package styleprofile holds the six StyleProfile parameter vectors
// (spec.md §4.12) as read-only process-wide constants, with an optional HCL
// file that can re-tune them without recompiling — mirroring the teacher's
// internal/client.ClientConfig gohcl-decoded config pattern.
package styleprofile

import "fmt"

// Style identifies one of the six hero playing-style descriptors.
type Style int

const (
	Nit Style = iota
	Rock
	Reg
	Tag
	Lag
	Fish
)

func (s Style) String() string {
	switch s {
	case Nit:
		return "nit"
	case Rock:
		return "rock"
	case Reg:
		return "reg"
	case Tag:
		return "tag"
	case Lag:
		return "lag"
	case Fish:
		return "fish"
	default:
		return "unknown"
	}
}

// FromString maps a style name to its Style, defaulting to Reg when s is
// empty (spec.md §6: "heroStyle ... default reg").
func FromString(s string) (Style, error) {
	switch s {
	case "":
		return Reg, nil
	case "nit":
		return Nit, nil
	case "rock":
		return Rock, nil
	case "reg":
		return Reg, nil
	case "tag":
		return Tag, nil
	case "lag":
		return Lag, nil
	case "fish":
		return Fish, nil
	default:
		return 0, fmt.Errorf("unknown style %q", s)
	}
}

// Profile parameterizes the recommender and sizer for one Style (spec.md
// §4.12's table, plus the sizing/verbal fields §3's StyleProfile record
// calls for).
type Profile struct {
	Style Style

	// FoldMargin/RaiseMargin/StrongValueMargin are equityGap thresholds in
	// percentage points (spec.md §4.10 step 2).
	FoldMargin        float64
	RaiseMargin       float64
	StrongValueMargin float64

	// CommitThreshold is the toCall/effectiveStack fraction above which a
	// commitment override applies (spec.md §4.10 step 4).
	CommitThreshold float64

	// BluffFrequency is this style's baseline semi-bluff/bet-as-bluff rate.
	BluffFrequency float64

	// SizingMultiplier scales the bet sizer's zone-based proposal (spec.md
	// §4.11).
	SizingMultiplier float64

	// ConfidenceFloor/Ceiling bound the recommender's reported confidence
	// (spec.md §4.10 "bounded by a style-dependent floor and ceiling").
	ConfidenceFloor   float64
	ConfidenceCeiling float64

	// Description is the verbal self-description used in generated
	// reasoning strings (spec.md §3's StyleProfile record).
	Description string
}

// defaults are the process-wide constants from spec.md §4.12, extended with
// the sizing multiplier (§4.11) and confidence bounds/description this
// document's DOMAIN STACK expansion requires but §4.12's table omits.
var defaults = map[Style]Profile{
	Nit: {
		Style: Nit, FoldMargin: 5, RaiseMargin: 20, StrongValueMargin: 35,
		CommitThreshold: 0.15, BluffFrequency: 0.02, SizingMultiplier: 0.85,
		ConfidenceFloor: 0.35, ConfidenceCeiling: 0.90,
		Description: "nit: plays only premium holdings, folds the marginal spots others fight over",
	},
	Rock: {
		Style: Rock, FoldMargin: 5, RaiseMargin: 18, StrongValueMargin: 32,
		CommitThreshold: 0.18, BluffFrequency: 0.03, SizingMultiplier: 0.85,
		ConfidenceFloor: 0.35, ConfidenceCeiling: 0.90,
		Description: "rock: tight and passive, needs a real edge to put more chips in",
	},
	Reg: {
		Style: Reg, FoldMargin: 10, RaiseMargin: 15, StrongValueMargin: 30,
		CommitThreshold: 0.25, BluffFrequency: 0.10, SizingMultiplier: 1.00,
		ConfidenceFloor: 0.30, ConfidenceCeiling: 0.95,
		Description: "reg: balanced, textbook thresholds with no strong lean either way",
	},
	Tag: {
		Style: Tag, FoldMargin: 10, RaiseMargin: 13, StrongValueMargin: 28,
		CommitThreshold: 0.25, BluffFrequency: 0.14, SizingMultiplier: 1.00,
		ConfidenceFloor: 0.35, ConfidenceCeiling: 0.95,
		Description: "tag: tight-aggressive, presses equity edges for value on the right boards",
	},
	Lag: {
		Style: Lag, FoldMargin: 12, RaiseMargin: 10, StrongValueMargin: 25,
		CommitThreshold: 0.30, BluffFrequency: 0.22, SizingMultiplier: 1.15,
		ConfidenceFloor: 0.30, ConfidenceCeiling: 0.95,
		Description: "lag: applies pressure on wet boards from position, widens the raise zone",
	},
	Fish: {
		Style: Fish, FoldMargin: 15, RaiseMargin: 20, StrongValueMargin: 40,
		CommitThreshold: 0.40, BluffFrequency: 0.05, SizingMultiplier: 0.95,
		ConfidenceFloor: 0.20, ConfidenceCeiling: 0.75,
		Description: "fish: calls too wide and too often, rarely raises for value or as a bluff",
	},
}

// Get returns the process-wide constant Profile for s.
func Get(s Style) Profile {
	return defaults[s]
}

// All returns every profile keyed by style, for override loading and CLI
// listing.
func All() map[Style]Profile {
	out := make(map[Style]Profile, len(defaults))
	for k, v := range defaults {
		out[k] = v
	}
	return out
}
