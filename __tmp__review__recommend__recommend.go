// Package recommend implements the action recommender (spec.md §4.10): the
// fold/check/call/bet/raise decision tree, with structured reasoning,
// alternatives, and board-dependent warnings. Grounded on the teacher's
// complexBot.makeStrategicDecision/shouldFold (sdk/examples/complex/main.go)
// — the same early-return, named-threshold decision-tree idiom, generalized
// from one hardcoded bot personality to the six StyleProfiles.
package recommend

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lox/pokerforbots/classification"
	"github.com/lox/pokerforbots/poker"
	"github.com/lox/pokerforbots/potodds"
	"github.com/lox/pokerforbots/sizer"
	"github.com/lox/pokerforbots/styleprofile"
)

// semiBluffMin/Max bound the equity range where a hand is too weak to bet
// for value but strong/live enough (with outs) to bet as a semi-bluff.
const (
	semiBluffMinEquity = 30.0
	semiBluffMaxEquity = 55.0
	semiBluffMinOuts   = 8
)

// options configures optional behavior of Recommend.
type options struct {
	logger zerolog.Logger
}

// Option configures Recommend.
type Option func(*options)

// WithLogger attaches a zerolog.Logger the recommender writes a debug trace
// of its decision path to.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Recommend runs the decision procedure in spec.md §4.10 and returns a
// fully reasoned Recommendation.
func Recommend(req Request, opts ...Option) (Recommendation, error) {
	if req.Street == poker.Preflop {
		return Recommendation{}, fmt.Errorf("recommend: street %v: %w", req.Street, ErrInsufficientData)
	}

	cfg := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	profile := styleprofile.Get(req.HeroStyle)

	adjEquity := req.Equity
	switch req.Position {
	case InPosition:
		adjEquity += 5
	case OutOfPosition:
		adjEquity -= 5
	}
	equityGap := adjEquity - req.PotOdds

	cfg.logger.Debug().
		Float64("equity", req.Equity).
		Float64("adjusted_equity", adjEquity).
		Float64("pot_odds", req.PotOdds).
		Float64("equity_gap", equityGap).
		Str("style", req.HeroStyle.String()).
		Msg("recommend: evaluating decision")

	if commitReason, ok := commitmentOverride(req, profile, adjEquity); ok {
		return build(req, profile, cfg.logger, commitReason, adjEquity, equityGap)
	}

	var reason string
	switch {
	case req.FacingBet:
		reason = decideFacingBet(req, profile, adjEquity, equityGap)
	default:
		reason = decideNotFacingBet(req, profile, adjEquity)
	}

	return build(req, profile, cfg.logger, reason, adjEquity, equityGap)
}

// commitmentOverride implements spec.md §4.10 step 4: when toCall is a
// large fraction of the effective stack at a shallow SPR and hero is ahead
// of break-even, commit regardless of the marginal zone.
func commitmentOverride(req Request, profile styleprofile.Profile, adjEquity float64) (string, bool) {
	if !req.FacingBet || req.EffectiveStack <= 0 {
		return "", false
	}
	zone := sprZoneOf(req.SPR)
	if zone != zoneMicro && zone != zoneShort {
		return "", false
	}
	commitFraction := float64(req.ToCall) / float64(req.EffectiveStack)
	if commitFraction > profile.CommitThreshold && adjEquity > req.PotOdds {
		return ReasonCommitted, true
	}
	return "", false
}

type sprZone int

const (
	zoneMicro sprZone = iota
	zoneOther
	zoneShort
)

func sprZoneOf(spr float64) sprZone {
	switch {
	case spr < 2:
		return zoneMicro
	case spr < 4:
		return zoneShort
	default:
		return zoneOther
	}
}

// decideFacingBet implements spec.md §4.10 step 2.
func decideFacingBet(req Request, profile styleprofile.Profile, adjEquity, equityGap float64) string {
	switch {
	case equityGap < -profile.FoldMargin:
		return ReasonClearFold
	case equityGap >= profile.StrongValueMargin:
		return ReasonStrongValue
	case equityGap >= profile.RaiseMargin:
		return ReasonValueRaise
	}

	if isSemiBluffCandidate(req, adjEquity) {
		return ReasonSemiBluff
	}

	if req.Outs > 0 && req.ImpliedOdds >= potodds.Moderate {
		return ReasonDrawCall
	}
	return ReasonMarginalCall
}

// decideNotFacingBet implements spec.md §4.10 step 3.
func decideNotFacingBet(req Request, profile styleprofile.Profile, adjEquity float64) string {
	if adjEquity >= 50+profile.RaiseMargin/2 {
		return ReasonValueBet
	}
	if isSemiBluffCandidate(req, adjEquity) {
		return ReasonSemiBluff
	}
	return ReasonCheck
}

// isSemiBluffCandidate reports whether hero's equity sits in the
// too-weak-for-value / too-live-to-give-up band with enough outs, in
// position, and the style profile bluffs often enough to take the line.
func isSemiBluffCandidate(req Request, adjEquity float64) bool {
	profile := styleprofile.Get(req.HeroStyle)
	return adjEquity >= semiBluffMinEquity &&
		adjEquity <= semiBluffMaxEquity &&
		req.Outs >= semiBluffMinOuts &&
		req.Position == InPosition &&
		profile.BluffFrequency >= 0.1
}

// build turns a decision-reason tag into the final Recommendation: maps it
// to an Action, attaches a Sizing when the action requires one, and
// generates reasoning/alternatives/warnings.
func build(req Request, profile styleprofile.Profile, logger zerolog.Logger, reason string, adjEquity, equityGap float64) (Recommendation, error) {
	action := actionForReason(reason, req)

	rec := Recommendation{
		Action:         action,
		DecisionReason: reason,
		HeroStyle:      req.HeroStyle,
	}

	if action == Bet || action == Raise {
		sizing, err := computeSizing(req, profile, reason)
		if err != nil {
			return Recommendation{}, fmt.Errorf("recommend: sizing: %w", err)
		}
		rec.Sizing = &sizing
	}

	rec.Confidence = confidenceFor(reason, profile, equityGap)
	rec.Reasoning = reasoningFor(req, profile, reason, adjEquity, equityGap)
	rec.Alternatives = alternativesFor(req, action, reason)
	rec.Warnings = warningsFor(req, action)

	logger.Debug().
		Str("action", action.String()).
		Str("reason", reason).
		Float64("confidence", rec.Confidence).
		Msg("recommend: decided")

	return rec, nil
}

func actionForReason(reason string, req Request) Action {
	switch reason {
	case ReasonClearFold:
		if !req.FacingBet {
			return Check
		}
		return Fold
	case ReasonMarginalCall, ReasonDrawCall:
		return Call
	case ReasonValueRaise, ReasonStrongValue, ReasonSemiBluff:
		if req.FacingBet {
			return Raise
		}
		return Bet
	case ReasonValueBet:
		return Bet
	case ReasonCommitted:
		if req.FacingBet {
			return Call
		}
		return Bet
	default:
		return Check
	}
}

func computeSizing(req Request, profile styleprofile.Profile, reason string) (sizer.Sizing, error) {
	action := sizer.Bet
	if req.FacingBet {
		action = sizer.Raise
	}
	return sizer.Size(sizer.Request{
		Action:          action,
		PotSize:         req.PotSize,
		ToCall:          req.ToCall,
		MinBet:          req.MinBet,
		MinRaise:        req.MinRaise,
		PreviousBet:     req.PreviousBet,
		PreviousRaise:   req.PreviousRaise,
		EffectiveStack:  req.EffectiveStack,
		SPR:             req.SPR,
		Texture:         req.BoardTexture,
		Polarizing:      reason == ReasonSemiBluff || reason == ReasonStrongValue,
		StyleMultiplier: profile.SizingMultiplier,
	})
}

func warningsFor(req Request, action Action) []string {
	var warnings []string
	if req.BoardTexture.IsPaired && (action == Bet || action == Raise || action == Call) {
		warnings = append(warnings, "board may pair into a full house — boats beat flushes")
	}
	if req.BoardTexture.NutDanger >= classification.HighDanger && action != Fold {
		warnings = append(warnings, "this board supports the nuts for a wide range of continuing hands")
	}
	return warnings
}


