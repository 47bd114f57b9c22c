// Package outs counts improving draws for an Omaha hole-card set against a
// board, using the bitmask union-of-outs technique to avoid double-counting
// a card that completes more than one draw at once.
package outs

import (
	"math/bits"

	"github.com/lox/pokerforbots/poker"
)

// DrawType identifies a kind of improving draw.
type DrawType int

const (
	FlushDraw DrawType = iota
	NutFlushDraw
	OpenEndedStraightDraw
	Gutshot
	ComboDraw
	NoDraw
)

func (dt DrawType) String() string {
	switch dt {
	case FlushDraw:
		return "flush draw"
	case NutFlushDraw:
		return "nut flush draw"
	case OpenEndedStraightDraw:
		return "open-ended straight draw"
	case Gutshot:
		return "gutshot"
	case ComboDraw:
		return "combo draw"
	case NoDraw:
		return "no draw"
	default:
		return "unknown"
	}
}

// DrawInfo summarizes the draws available to a hand on the current board.
type DrawInfo struct {
	Draws   []DrawType
	Outs    int
	NutOuts int
}

// HasStrongDraw reports a flush draw, nut flush draw, OESD, or combo draw.
func (d DrawInfo) HasStrongDraw() bool {
	for _, draw := range d.Draws {
		switch draw {
		case FlushDraw, NutFlushDraw, OpenEndedStraightDraw, ComboDraw:
			return true
		}
	}
	return false
}

// HasWeakDraw reports a gutshot and nothing stronger.
func (d DrawInfo) HasWeakDraw() bool {
	if d.HasStrongDraw() {
		return false
	}
	for _, draw := range d.Draws {
		if draw == Gutshot {
			return true
		}
	}
	return !d.HasStrongDraw() && len(d.Draws) > 0 && d.Draws[0] != NoDraw
}

// ApproxEquity applies the rule-of-4-and-2 to an outs count and returns a
// percentage: roughly 4 points of win equity per out with two cards to come
// (flop), 2 with one (turn). 9 outs on the flop gives 36.
func ApproxEquity(outsCount, streetsToCome int) float64 {
	switch streetsToCome {
	case 2:
		return float64(outsCount) * 4
	case 1:
		return float64(outsCount) * 2
	default:
		return 0
	}
}

// DetectDraws enumerates every valid 2-card hole pair (Omaha hands must use
// exactly 2 hole cards in the final 5) and unions their draws and outs
// masks, so a card that completes more than one pair's draw is never
// counted twice.
func DetectDraws(hole []poker.Card, board poker.Hand) DrawInfo {
	if board.CountCards() < 3 {
		return DrawInfo{Draws: []DrawType{NoDraw}}
	}

	seen := make(map[DrawType]bool)
	var draws []DrawType
	var outsMask, nutOutsMask poker.Hand

	choose2(hole, func(h1, h2 poker.Card) {
		pair := poker.NewHand(h1, h2)

		flush := detectFlushDraw(pair, board)
		if flush.HasFlushDraw {
			dt := FlushDraw
			if flush.IsNutFlushDraw {
				dt = NutFlushDraw
				nutOutsMask |= flush.OutsMask
			}
			if !seen[dt] {
				draws = append(draws, dt)
				seen[dt] = true
			}
			outsMask |= flush.OutsMask
		}

		straight := detectStraightDraws(pair, board)
		if straight.HasOESD {
			if !seen[OpenEndedStraightDraw] {
				draws = append(draws, OpenEndedStraightDraw)
				seen[OpenEndedStraightDraw] = true
			}
			outsMask |= straight.OESDOutsMask
		}
		if straight.HasGutshot {
			if !seen[Gutshot] {
				draws = append(draws, Gutshot)
				seen[Gutshot] = true
			}
			outsMask |= straight.GutshotOutsMask
		}
	})

	totalOuts := outsMask.CountCards()
	nutOuts := nutOutsMask.CountCards()

	if len(draws) >= 2 && totalOuts >= 12 {
		draws = append(draws, ComboDraw)
	}
	if len(draws) == 0 {
		draws = []DrawType{NoDraw}
	}

	return DrawInfo{Draws: draws, Outs: totalOuts, NutOuts: nutOuts}
}

func choose2(cards []poker.Card, fn func(a, b poker.Card)) {
	for i := 0; i < len(cards); i++ {
		for j := i + 1; j < len(cards); j++ {
			fn(cards[i], cards[j])
		}
	}
}

type flushDrawInfo struct {
	HasFlushDraw   bool
	IsNutFlushDraw bool
	Suit           uint8
	OutsMask       poker.Hand
}

type straightDrawInfo struct {
	HasOESD         bool
	HasGutshot      bool
	OESDOutsMask    poker.Hand
	GutshotOutsMask poker.Hand
}

// detectFlushDraw requires both cards of pair to share a suit: the final
// 5-card hand is exactly 2 hole + 3 board, so a single suited hole card can
// never complete an Omaha flush by itself.
func detectFlushDraw(pair, board poker.Hand) flushDrawInfo {
	for suit := range uint8(4) {
		holeSuitMask := pair.GetSuitMask(suit)
		boardSuitMask := board.GetSuitMask(suit)

		holeCount := bits.OnesCount16(holeSuitMask)
		boardCount := bits.OnesCount16(boardSuitMask)

		if holeCount == 2 && boardCount >= 2 {
			usedMask := holeSuitMask | boardSuitMask
			availableMask := uint16(0x1FFF) &^ usedMask
			outsMask := poker.Hand(availableMask) << (suit * 13)
			isNutFlush := (holeSuitMask & (1 << poker.Ace)) != 0

			return flushDrawInfo{
				HasFlushDraw:   true,
				IsNutFlushDraw: isNutFlush,
				Suit:           suit,
				OutsMask:       outsMask,
			}
		}
	}
	return flushDrawInfo{HasFlushDraw: false}
}

// detectStraightDraws scans the combined rank mask of the hole pair and
// board for open-ended and gutshot windows, including wheel (ace-low)
// adjacency.
func detectStraightDraws(pair, board poker.Hand) straightDrawInfo {
	allCards := pair | board
	rankMask := allCards.GetRankMask()

	var info straightDrawInfo

	for start := 0; start <= 9; start++ {
		consecutive := 0
		for i := range 4 {
			if rankMask&(1<<(start+i)) != 0 {
				consecutive++
			}
		}

		if consecutive == 4 {
			lowRank := start - 1
			highRank := start + 4

			if lowRank >= 0 && highRank <= 13 {
				lowAvailable := (rankMask & (1 << lowRank)) == 0
				highAvailable := (rankMask & (1 << highRank)) == 0

				if lowAvailable && highAvailable {
					info.HasOESD = true
					for suit := range uint8(4) {
						info.OESDOutsMask.AddCard(poker.NewCard(uint8(lowRank), suit))
						info.OESDOutsMask.AddCard(poker.NewCard(uint8(highRank), suit))
					}
				}
			}
		}
	}

	for start := 0; start <= 8; start++ {
		var presentRanks []int
		for i := range 5 {
			if rankMask&(1<<(start+i)) != 0 {
				presentRanks = append(presentRanks, start+i)
			}
		}

		if len(presentRanks) == 4 {
			first := presentRanks[0]
			last := presentRanks[len(presentRanks)-1]

			if last-first == 3 {
				lowOut := first - 1
				highOut := last + 1
				if first == 0 {
					lowOut = int(poker.Ace)
				}
				hasLow := lowOut >= 0 && lowOut <= int(poker.Ace) && (rankMask&(1<<lowOut)) == 0
				hasHigh := highOut >= 0 && highOut <= int(poker.Ace) && (rankMask&(1<<highOut)) == 0
				if hasLow && hasHigh {
					continue
				}
			}

			missingRank := -1
			for rank := start; rank < start+5; rank++ {
				present := false
				for _, r := range presentRanks {
					if r == rank {
						present = true
						break
					}
				}
				if !present {
					missingRank = rank
					break
				}
			}

			if missingRank >= 0 {
				info.HasGutshot = true
				for suit := range uint8(4) {
					info.GutshotOutsMask.AddCard(poker.NewCard(uint8(missingRank), suit))
				}
				break
			}
		}
	}

	return info
}


