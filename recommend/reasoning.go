package recommend

import (
	"fmt"

	"github.com/lox/pokerforbots/styleprofile"
)

// reasoningFor generates the three structured reasoning strings spec.md
// §4.10 calls for: a one-sentence restatement, a math justification, and a
// style-flavored strategic note.
func reasoningFor(req Request, profile styleprofile.Profile, reason string, adjEquity, equityGap float64) Reasoning {
	return Reasoning{
		Primary:   primaryFor(reason, req),
		Math:      fmt.Sprintf("equity %.0f%% vs. pot odds %.0f%%; gap %+.0f pts", adjEquity, req.PotOdds, equityGap),
		Strategic: strategicFor(req.HeroStyle, profile, reason),
	}
}

func primaryFor(reason string, req Request) string {
	switch reason {
	case ReasonClearFold:
		if !req.FacingBet {
			return "Checking back; there's no price worth continuing for here."
		}
		return "Folding; the price isn't worth continuing with this hand."
	case ReasonMarginalCall:
		return "Calling; close enough to break-even to keep the pot alive."
	case ReasonDrawCall:
		return "Calling to see the next card with live outs and good implied odds."
	case ReasonValueRaise:
		return "Raising for value; the equity edge over the pot odds is comfortable."
	case ReasonStrongValue:
		return "Raising big; this hand is well ahead and should be charged a premium."
	case ReasonSemiBluff:
		return "Raising as a semi-bluff; fold equity plus live outs makes this profitable."
	case ReasonValueBet:
		return "Betting for value with the stronger side of this range."
	case ReasonCommitted:
		return "Committing; the price relative to the remaining stack is too good to fold."
	default:
		return "Checking; nothing here merits putting more chips in."
	}
}

func strategicFor(style styleprofile.Style, profile styleprofile.Profile, reason string) string {
	switch reason {
	case ReasonSemiBluff:
		return fmt.Sprintf("%s: %s", style, profile.Description)
	case ReasonStrongValue, ReasonValueRaise:
		return fmt.Sprintf("%s: presses the equity edge for value", style)
	case ReasonClearFold:
		return fmt.Sprintf("%s: declines to fight for a pot it isn't favored in", style)
	default:
		return fmt.Sprintf("%s: %s", style, profile.Description)
	}
}

// alternativesFor lists up to two secondary actions with a short rationale
// (spec.md §4.10).
func alternativesFor(req Request, chosen Action, reason string) []Alternative {
	var alts []Alternative

	switch chosen {
	case Raise:
		alts = append(alts, Alternative{Action: Call, Rationale: "call: let draws catch up and keep the pot smaller"})
	case Bet:
		alts = append(alts, Alternative{Action: Check, Rationale: "check: pot control against a multiway field"})
	case Call:
		if req.Outs >= semiBluffMinOuts {
			alts = append(alts, Alternative{Action: Raise, Rationale: "raise: apply pressure with the draw instead of just calling"})
		} else {
			alts = append(alts, Alternative{Action: Fold, Rationale: "fold: give up the marginal spot instead of bleeding chips"})
		}
	case Fold:
		if req.Outs > 0 {
			alts = append(alts, Alternative{Action: Call, Rationale: "call: the draw has some merit if implied odds improve"})
		}
	case Check:
		if req.Outs >= semiBluffMinOuts {
			alts = append(alts, Alternative{Action: Bet, Rationale: "bet: take the betting lead with a live draw"})
		}
	}

	if len(alts) < 2 && chosen != Fold {
		alts = append(alts, Alternative{Action: Fold, Rationale: "fold: available if the read on this spot is wrong"})
	}
	if len(alts) > 2 {
		alts = alts[:2]
	}
	return alts
}
