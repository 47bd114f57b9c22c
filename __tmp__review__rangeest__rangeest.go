// Package rangeest implements the deterministic, rule-based opponent range
// estimator (spec.md §4.6): a villain's observed position and actions are
// folded through a template-plus-adjustment pipeline into a Range, a
// normalized probability distribution over poker's 9 hand categories. The
// pipeline shape (base template, then successive reshape-and-renormalize
// adjustments) is grounded on sdk/analysis.Range's combinatorial weighting
// idea, retargeted from "weighted set of 1326 starting-hand combos" to
// "distribution over 9 HandRank categories" per this project's data model.
package rangeest

import "github.com/lox/pokerforbots/poker"

const numCategories = 9

// Confidence grades how much action history backs an estimate.
type Confidence int

const (
	Low Confidence = iota
	Medium
	High
)

func (c Confidence) String() string {
	switch c {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	default:
		return "unknown"
	}
}

// Range is a normalized probability distribution over the 9 hand
// categories (index matching poker.Categories / HandRank.CategoryIndex),
// plus descriptive metadata (spec.md §3).
type Range struct {
	Distribution   [numCategories]float64
	NutBias        float64
	DrawHeavy      bool
	BluffFrequency float64
	Tag            string
	Confidence     Confidence
}

// PositionCategory buckets a villain's seat for template selection.
type PositionCategory int

const (
	EarlyPosition PositionCategory = iota
	MiddlePosition
	CutoffButton
	BigBlind
)

// PreflopAction is the villain's preflop action that selects a base
// template.
type PreflopAction int

const (
	OpenRaise PreflopAction = iota
	ThreeBet
	BlindDefend
	BigPostflopBet
	CheckRaise
)

// BetSize categorizes a postflop action's size relative to the pot.
type BetSize int

const (
	SmallBet BetSize = iota // < 0.4 pot
	MediumBet               // 0.4-0.75 pot
	LargeBet                // > 0.75 pot
)

// ActionType is the shape of a single observed villain action.
type ActionType int

const (
	Check ActionType = iota
	Call
	Bet
	Raise
	CheckRaise2 // check-raise, distinct from a simple raise
)

// Action is one observed villain action on a given street.
type Action struct {
	Street poker.Street
	Type   ActionType
	Size   BetSize
}

// Input bundles everything the estimator needs about the villain being
// profiled (spec.md §4.6's "hero's (position, observed villain actions,
// board texture, street, players-in-hand, pot)").
type Input struct {
	Position      PositionCategory
	PreflopAction PreflopAction
	Actions       []Action
	BoardTexture  *BoardTexture
	PlayersInHand int
}

// BoardTexture is the subset of classification.FlopTexture the estimator
// cares about, kept narrow so rangeest doesn't need to import the board
// evaluated-card types directly.
type BoardTexture struct {
	Monotone  bool
	Connected bool
	Paired    bool
}

// Estimate runs the full template-and-adjustment pipeline and returns a
// normalized Range.
func Estimate(in Input) Range {
	dist := baseTemplate(in.Position, in.PreflopAction)

	for _, a := range in.Actions {
		dist = applyActionAdjustment(dist, a)
	}

	if in.BoardTexture != nil {
		dist = applyBoardAdjustment(dist, *in.BoardTexture)
	}

	if in.PlayersInHand >= 3 {
		dist = applyMultiwayAdjustment(dist, in.PlayersInHand)
	}

	dist = normalize(dist)

	return Range{
		Distribution:   dist,
		NutBias:        nutBiasOf(dist),
		DrawHeavy:      drawHeavyOf(in),
		BluffFrequency: bluffFrequencyOf(in.PreflopAction),
		Tag:            tagOf(in.PreflopAction),
		Confidence:     confidenceOf(len(in.Actions)),
	}
}

func confidenceOf(observedActions int) Confidence {
	switch {
	case observedActions >= 3:
		return High
	case observedActions >= 1:
		return Medium
	default:
		return Low
	}
}

func normalize(dist [numCategories]float64) [numCategories]float64 {
	var sum float64
	for _, v := range dist {
		sum += v
	}
	if sum <= 0 {
		// Degenerate input: fall back to a uniform distribution rather
		// than dividing by zero.
		for i := range dist {
			dist[i] = 1.0 / numCategories
		}
		return dist
	}
	for i := range dist {
		dist[i] /= sum
	}
	return dist
}

// nutBiasOf estimates how much of dist's mass sits in the top categories
// (FullHouse, Quads, StraightFlush).
func nutBiasOf(dist [numCategories]float64) float64 {
	return dist[poker.FullHouse.CategoryIndex()] +
		dist[poker.FourOfAKind.CategoryIndex()] +
		dist[poker.StraightFlush.CategoryIndex()]
}

func bluffFrequencyOf(a PreflopAction) float64 {
	switch a {
	case BigPostflopBet, CheckRaise:
		return 0.25
	case ThreeBet:
		return 0.15
	default:
		return 0.08
	}
}

func tagOf(a PreflopAction) string {
	switch a {
	case ThreeBet:
		return "tight 3-bet range"
	case OpenRaise:
		return "standard open range"
	case BlindDefend:
		return "wide defending range"
	case BigPostflopBet:
		return "polarized range"
	case CheckRaise:
		return "polarized check-raise range"
	default:
		return "undefined range"
	}
}

func drawHeavyOf(in Input) bool {
	if in.BoardTexture == nil {
		return false
	}
	return in.BoardTexture.Monotone || in.BoardTexture.Connected
}


