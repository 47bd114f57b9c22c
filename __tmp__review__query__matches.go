package query

import "github.com/lox/pokerforbots/poker"

// Matches reports whether hole (4, 5, or 6 Omaha hole cards) satisfies q.
func Matches(q Query, hole []poker.Card) bool {
	if !kindMatches(q, hole) {
		return false
	}
	if !suitedMatches(q.Suited, hole) {
		return false
	}
	if q.Connect && !isConnected(hole) {
		return false
	}
	return true
}

func kindMatches(q Query, hole []poker.Card) bool {
	switch q.Kind {
	case Pair:
		return hasPairSatisfying(hole, q.Rank)
	case DoublePair:
		return hasDoublePair(hole)
	case Run:
		return isConnected(hole) && rankConstraintSatisfiedByHighCard(hole, q.Rank)
	case Broadway:
		return allBroadway(hole)
	case Any:
		return true
	default:
		return false
	}
}

func rankCounts(hole []poker.Card) map[poker.Rank]int {
	counts := make(map[poker.Rank]int, len(hole))
	for _, c := range hole {
		counts[c.Rank()]++
	}
	return counts
}

// hasPairSatisfying reports whether any rank appears at least twice among
// hole, and (if rc is set) that rank falls within [rc.Min, rc.Max].
func hasPairSatisfying(hole []poker.Card, rc RankConstraint) bool {
	for rank, count := range rankCounts(hole) {
		if count < 2 {
			continue
		}
		if !rc.set || (rank >= rc.Min && rank <= rc.Max) {
			return true
		}
	}
	return false
}

// hasDoublePair reports whether hole contains two distinct ranks each
// appearing at least twice.
func hasDoublePair(hole []poker.Card) bool {
	pairs := 0
	for _, count := range rankCounts(hole) {
		if count >= 2 {
			pairs++
		}
	}
	return pairs >= 2
}

// allBroadway reports whether every hole card's rank is Ten or higher.
func allBroadway(hole []poker.Card) bool {
	for _, c := range hole {
		if c.Rank() < poker.Ten {
			return false
		}
	}
	return true
}

// isConnected reports whether hole's distinct ranks span at most 4,
// considering ace-low (wheel) adjacency — matching spec.md §4.5's
// "in a 4-card hand, all 4 ranks span ≤ 4 (a wrap includes A-low)".
func isConnected(hole []poker.Card) bool {
	seen := make(map[poker.Rank]bool)
	for _, c := range hole {
		seen[c.Rank()] = true
	}
	ranks := make([]int, 0, len(seen))
	for r := range seen {
		ranks = append(ranks, int(r))
	}
	if len(ranks) <= 1 {
		return true
	}

	span := spanOf(ranks)
	if span <= 4 {
		return true
	}

	if !seen[poker.Ace] {
		return false
	}
	wheelRanks := make([]int, 0, len(ranks))
	for _, r := range ranks {
		if r == int(poker.Ace) {
			wheelRanks = append(wheelRanks, -1)
		} else {
			wheelRanks = append(wheelRanks, r)
		}
	}
	return spanOf(wheelRanks) <= 4
}

func spanOf(ranks []int) int {
	min, max := ranks[0], ranks[0]
	for _, r := range ranks[1:] {
		if r < min {
			min = r
		}
		if r > max {
			max = r
		}
	}
	return max - min
}

// rankConstraintSatisfiedByHighCard checks a Run query's rank constraint
// (e.g. "J+") against the highest rank present in hole.
func rankConstraintSatisfiedByHighCard(hole []poker.Card, rc RankConstraint) bool {
	if !rc.set {
		return true
	}
	high := hole[0].Rank()
	for _, c := range hole[1:] {
		if c.Rank() > high {
			high = c.Rank()
		}
	}
	return high >= rc.Min && high <= rc.Max
}

// suitedMatches checks the :s/:ds structural modifier. DoubleSuited
// requires two disjoint pairs of same-suited cards (no card reused across
// the pairs); SingleSuited requires at least one suited pair.
func suitedMatches(s Suitedness, hole []poker.Card) bool {
	switch s {
	case AnySuited:
		return true
	case SingleSuited:
		return countDisjointSuitedPairs(hole) >= 1
	case DoubleSuited:
		return countDisjointSuitedPairs(hole) >= 2
	default:
		return false
	}
}

// countDisjointSuitedPairs greedily counts how many disjoint same-suited
// card pairs can be formed from hole, grouping by suit and pairing within
// each suit's cards two at a time.
func countDisjointSuitedPairs(hole []poker.Card) int {
	bySuit := make(map[poker.Suit]int)
	for _, c := range hole {
		bySuit[c.Suit()]++
	}
	pairs := 0
	for _, count := range bySuit {
		pairs += count / 2
	}
	return pairs
}


