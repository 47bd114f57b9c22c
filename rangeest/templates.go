package rangeest

import "github.com/lox/pokerforbots/poker"

// idx is a cached shorthand for the category indices used throughout the
// template and adjustment tables.
var (
	idxHighCard  = poker.HighCard.CategoryIndex()
	idxPair      = poker.Pair.CategoryIndex()
	idxTwoPair   = poker.TwoPair.CategoryIndex()
	idxTrips     = poker.ThreeOfAKind.CategoryIndex()
	idxStraight  = poker.Straight.CategoryIndex()
	idxFlush     = poker.Flush.CategoryIndex()
	idxFullHouse = poker.FullHouse.CategoryIndex()
	idxQuads     = poker.FourOfAKind.CategoryIndex()
	idxSF        = poker.StraightFlush.CategoryIndex()
)

// baseTemplate selects the starting distribution keyed by position and
// preflop action (spec.md §4.6 step 1): tight for EP/MP opens or a 3-bet,
// medium for CO/BTN opens, wide for BB defends, polarized for a big
// postflop bet or check-raise observed preflop (treated here the same as a
// postflop polarized read, since no preflop check-raise exists).
func baseTemplate(pos PositionCategory, action PreflopAction) [numCategories]float64 {
	switch {
	case action == ThreeBet:
		return tightTemplate()
	case action == BigPostflopBet || action == CheckRaise:
		return polarizedTemplate()
	case action == BlindDefend || pos == BigBlind:
		return wideTemplate()
	case pos == CutoffButton:
		return mediumTemplate()
	default:
		return tightTemplate()
	}
}

// tightTemplate weights strongly toward made hands: EP/MP opens and 3-bets.
func tightTemplate() [numCategories]float64 {
	var d [numCategories]float64
	d[idxHighCard] = 0.05
	d[idxPair] = 0.20
	d[idxTwoPair] = 0.25
	d[idxTrips] = 0.15
	d[idxStraight] = 0.12
	d[idxFlush] = 0.10
	d[idxFullHouse] = 0.09
	d[idxQuads] = 0.03
	d[idxSF] = 0.01
	return d
}

// mediumTemplate is the CO/BTN open range: wider than tight, still
// made-hand leaning.
func mediumTemplate() [numCategories]float64 {
	var d [numCategories]float64
	d[idxHighCard] = 0.12
	d[idxPair] = 0.28
	d[idxTwoPair] = 0.22
	d[idxTrips] = 0.12
	d[idxStraight] = 0.10
	d[idxFlush] = 0.08
	d[idxFullHouse] = 0.06
	d[idxQuads] = 0.015
	d[idxSF] = 0.005
	return d
}

// wideTemplate is a big-blind defending range: heavy on high-card/pair,
// light at the top.
func wideTemplate() [numCategories]float64 {
	var d [numCategories]float64
	d[idxHighCard] = 0.22
	d[idxPair] = 0.32
	d[idxTwoPair] = 0.18
	d[idxTrips] = 0.09
	d[idxStraight] = 0.08
	d[idxFlush] = 0.06
	d[idxFullHouse] = 0.04
	d[idxQuads] = 0.008
	d[idxSF] = 0.002
	return d
}

// polarizedTemplate bifurcates mass between high-card (bluffs) and the
// strongest categories (value), with little in the middle.
func polarizedTemplate() [numCategories]float64 {
	var d [numCategories]float64
	d[idxHighCard] = 0.30
	d[idxPair] = 0.10
	d[idxTwoPair] = 0.08
	d[idxTrips] = 0.08
	d[idxStraight] = 0.10
	d[idxFlush] = 0.14
	d[idxFullHouse] = 0.14
	d[idxQuads] = 0.04
	d[idxSF] = 0.02
	return d
}

// sizeFraction maps a BetSize to an approximate midpoint pot fraction, used
// to scale adjustment magnitude.
func sizeFraction(s BetSize) float64 {
	switch s {
	case SmallBet:
		return 0.25
	case MediumBet:
		return 0.55
	default:
		return 0.90
	}
}

// applyActionAdjustment reshapes dist in response to a single observed
// action (spec.md §4.6 step 2): shifts mass toward stronger categories for
// bets/raises/check-raises scaled by size, narrows the distribution for
// calls, and for checks leaves it close to unchanged.
func applyActionAdjustment(dist [numCategories]float64, a Action) [numCategories]float64 {
	switch a.Type {
	case Check:
		return dist
	case Call:
		return narrow(dist, 0.10)
	case Bet, Raise:
		return strengthShift(dist, sizeFraction(a.Size)*0.30)
	case CheckRaise2:
		return polarize(strengthShift(dist, 0.35), 0.20)
	default:
		return dist
	}
}

// strengthShift moves a fraction of the weak-category mass
// (HighCard/Pair/TwoPair) onto the strong categories (Trips/Straight/Flush/
// FullHouse/Quads/StraightFlush), proportional to amount.
func strengthShift(dist [numCategories]float64, amount float64) [numCategories]float64 {
	weakIdx := []int{idxHighCard, idxPair, idxTwoPair}
	strongIdx := []int{idxTrips, idxStraight, idxFlush, idxFullHouse, idxQuads, idxSF}

	var moved float64
	for _, i := range weakIdx {
		take := dist[i] * amount
		dist[i] -= take
		moved += take
	}
	if moved == 0 {
		return dist
	}
	for _, i := range strongIdx {
		dist[i] += moved / float64(len(strongIdx))
	}
	return dist
}

// narrow pulls mass from both tails toward the middle of the distribution
// by a small fraction, modeling a call as "whatever this was, it's now a
// bit less extreme".
func narrow(dist [numCategories]float64, amount float64) [numCategories]float64 {
	take := dist[idxHighCard]*amount + dist[idxSF]*amount
	dist[idxHighCard] -= dist[idxHighCard] * amount
	dist[idxSF] -= dist[idxSF] * amount
	mid := []int{idxPair, idxTwoPair, idxTrips, idxStraight, idxFlush, idxFullHouse}
	for _, i := range mid {
		dist[i] += take / float64(len(mid))
	}
	return dist
}

// polarize pushes additional mass from the middle categories to HighCard
// and the nut categories, modeling a capped/polarized read.
func polarize(dist [numCategories]float64, amount float64) [numCategories]float64 {
	mid := []int{idxPair, idxTwoPair, idxTrips, idxStraight, idxFlush}
	var moved float64
	for _, i := range mid {
		take := dist[i] * amount
		dist[i] -= take
		moved += take
	}
	dist[idxHighCard] += moved * 0.5
	dist[idxFullHouse] += moved * 0.2
	dist[idxQuads] += moved * 0.2
	dist[idxSF] += moved * 0.1
	return dist
}

// applyBoardAdjustment lifts categories favored by board texture (spec.md
// §4.6 step 3): monotone boards favor flush/straight-flush at the expense
// of high-card/pair; connected boards favor straights; paired boards favor
// full-house/quads/trips.
func applyBoardAdjustment(dist [numCategories]float64, t BoardTexture) [numCategories]float64 {
	if t.Monotone {
		dist = liftAtExpenseOf(dist, []int{idxFlush, idxSF}, []int{idxHighCard, idxPair}, 0.15)
	}
	if t.Connected {
		dist = liftAtExpenseOf(dist, []int{idxStraight}, []int{idxHighCard}, 0.10)
	}
	if t.Paired {
		dist = liftAtExpenseOf(dist, []int{idxFullHouse, idxQuads, idxTrips}, []int{idxPair, idxTwoPair}, 0.12)
	}
	return dist
}

// liftAtExpenseOf moves amount's worth of mass from the donor categories
// onto the beneficiary categories, split evenly each direction.
func liftAtExpenseOf(dist [numCategories]float64, beneficiaries, donors []int, amount float64) [numCategories]float64 {
	var moved float64
	for _, i := range donors {
		take := dist[i] * amount
		dist[i] -= take
		moved += take
	}
	if moved == 0 {
		return dist
	}
	for _, i := range beneficiaries {
		dist[i] += moved / float64(len(beneficiaries))
	}
	return dist
}

// applyMultiwayAdjustment reduces weak-category mass and raises
// strong-category mass by a factor of ~1+0.15*(players-2), per spec.md §4.6
// step 4.
func applyMultiwayAdjustment(dist [numCategories]float64, players int) [numCategories]float64 {
	factor := 1 + 0.15*float64(players-2)
	weakIdx := []int{idxHighCard, idxPair}
	strongIdx := []int{idxTrips, idxStraight, idxFlush, idxFullHouse, idxQuads, idxSF}

	var moved float64
	for _, i := range weakIdx {
		reduced := dist[i] - dist[i]/factor
		dist[i] -= reduced
		moved += reduced
	}
	for _, i := range strongIdx {
		dist[i] += moved / float64(len(strongIdx))
	}
	return dist
}
