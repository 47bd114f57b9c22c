package poker

// Categories lists all 9 hand categories in ascending strength order, index
// matching CategoryIndex.
var Categories = [9]HandRank{
	HighCard, Pair, TwoPair, ThreeOfAKind, Straight, Flush, FullHouse, FourOfAKind, StraightFlush,
}

// CategoryIndex returns the 0-8 index of the hand's category (HighCard=0,
// StraightFlush=8), dropping the rank/kicker bits.
func (hr HandRank) CategoryIndex() int {
	return int(hr.Type() >> 28)
}
