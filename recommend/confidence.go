package recommend

import "github.com/lox/pokerforbots/styleprofile"

// thresholdFor returns the equityGap threshold the chosen reason was judged
// against, so confidence can be scaled by distance from that boundary.
func thresholdFor(reason string, profile styleprofile.Profile) float64 {
	switch reason {
	case ReasonClearFold:
		return -profile.FoldMargin
	case ReasonStrongValue:
		return profile.StrongValueMargin
	case ReasonValueRaise:
		return profile.RaiseMargin
	default:
		return 0
	}
}

// confidenceFor scales the distance of equityGap from the threshold the
// decision crossed into [0,1], then bounds it by the style's confidence
// floor/ceiling (spec.md §4.10).
func confidenceFor(reason string, profile styleprofile.Profile, equityGap float64) float64 {
	threshold := thresholdFor(reason, profile)
	distance := equityGap - threshold
	if distance < 0 {
		distance = -distance
	}

	// Normalize against a generous 40-point span so a comfortably clear
	// decision approaches the ceiling without requiring an enormous gap.
	scaled := distance / 40
	if scaled > 1 {
		scaled = 1
	}

	confidence := profile.ConfidenceFloor + scaled*(profile.ConfidenceCeiling-profile.ConfidenceFloor)
	if confidence < profile.ConfidenceFloor {
		confidence = profile.ConfidenceFloor
	}
	if confidence > profile.ConfidenceCeiling {
		confidence = profile.ConfidenceCeiling
	}
	return confidence
}
