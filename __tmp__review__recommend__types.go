package recommend

import (
	"github.com/lox/pokerforbots/classification"
	"github.com/lox/pokerforbots/poker"
	"github.com/lox/pokerforbots/potodds"
	"github.com/lox/pokerforbots/sizer"
	"github.com/lox/pokerforbots/styleprofile"
)

// Action is the chosen response to a decision point.
type Action int

const (
	Fold Action = iota
	Check
	Call
	Bet
	Raise
)

func (a Action) String() string {
	switch a {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Bet:
		return "bet"
	case Raise:
		return "raise"
	default:
		return "unknown"
	}
}

// Position is hero's positional relationship to the remaining action.
type Position int

const (
	OutOfPosition Position = iota
	InPosition
)

// Request bundles every input the decision procedure needs (spec.md
// §4.10's "Inputs per call").
type Request struct {
	Equity          float64 // percentage
	PotOdds         float64 // percentage
	ImpliedOdds     potodds.ImpliedOddsRating
	HeroCategory    int
	HeroDescription string
	IsNuts          bool
	Outs            int
	DrawEquity      float64 // percentage
	SPR             float64
	Position        Position
	BoardTexture    classification.FlopTexture
	Street          poker.Street
	FacingBet       bool
	ToCall          int
	PotSize         int
	EffectiveStack  int
	HeroStyle       styleprofile.Style

	// Sizing fields, only consulted when the decision produces a Bet or
	// Raise (forwarded to sizer.Size).
	MinBet        int
	MinRaise      int
	PreviousBet   int
	PreviousRaise int
}

// Alternative is a secondary action the recommender considered but did not
// choose.
type Alternative struct {
	Action    Action
	Rationale string
}

// Reasoning is the structured explanation accompanying a Recommendation
// (spec.md §4.10: "primary", "math", "strategic").
type Reasoning struct {
	Primary   string
	Math      string
	Strategic string
}

// Recommendation is the recommender's output (spec.md §3).
type Recommendation struct {
	Action         Action
	Confidence     float64 // [0,1]
	Sizing         *sizer.Sizing
	Reasoning      Reasoning
	Alternatives   []Alternative
	Warnings       []string
	HeroStyle      styleprofile.Style
	DecisionReason string
}

// Decision-reason tags (spec.md §4.10).
const (
	ReasonClearFold    = "clear_fold"
	ReasonMarginalCall = "marginal_call"
	ReasonDrawCall     = "draw_call"
	ReasonValueRaise   = "value_raise"
	ReasonStrongValue  = "strong_value"
	ReasonSemiBluff    = "semi_bluff"
	ReasonValueBet     = "value_bet"
	ReasonCheck        = "check"
	ReasonCommitted    = "committed"
)


