package omaha

import (
	"fmt"

	"github.com/lox/pokerforbots/poker"
)

// Evaluate returns the best HandRank obtainable from hole under Omaha
// rules: exactly 2 of hole combined with exactly 3 of board, over every
// such combination (up to C(6,2)*C(5,3) = 150 for PLO6 on the river).
//
// It fails with ErrVariantMismatch if len(hole) doesn't match variant,
// ErrInvalidInput on duplicate cards or a board longer than 5, and
// ErrInsufficientData when board has fewer than 3 cards (preflop).
func Evaluate(hole, board []poker.Card, variant Variant) (poker.HandRank, error) {
	if len(hole) != variant.HoleCards() {
		return 0, fmt.Errorf("evaluate %s: got %d hole cards: %w", variant, len(hole), ErrVariantMismatch)
	}
	if len(board) > 5 {
		return 0, fmt.Errorf("evaluate: board has %d cards: %w", len(board), ErrInvalidInput)
	}

	var seen poker.Hand
	for _, c := range hole {
		seen.AddCard(c)
	}
	for _, c := range board {
		seen.AddCard(c)
	}
	if seen.CountCards() != len(hole)+len(board) {
		return 0, fmt.Errorf("evaluate: duplicate card in hole/board: %w", ErrInvalidInput)
	}

	if len(board) < 3 {
		return 0, fmt.Errorf("evaluate: board has %d cards: %w", len(board), ErrInsufficientData)
	}

	return bestOfCombinations(hole, board)
}

// bestOfCombinations enumerates C(hole,2) x C(board,3) and returns the
// maximum HandRank. board must have at least 3 cards.
func bestOfCombinations(hole, board []poker.Card) (poker.HandRank, error) {
	var best poker.HandRank
	var evalErr error
	found := false

	choose2(hole, func(h1, h2 poker.Card) {
		choose3(board, func(b1, b2, b3 poker.Card) {
			if evalErr != nil {
				return
			}
			hand := poker.NewHand(h1, h2, b1, b2, b3)
			rank, err := poker.Evaluate5Cards(hand)
			if err != nil {
				evalErr = err
				return
			}
			if !found || rank > best {
				best = rank
				found = true
			}
		})
	})

	if evalErr != nil {
		return 0, fmt.Errorf("evaluate: %w", evalErr)
	}
	return best, nil
}

// IsNuts reports whether hero's heroRank is the unbeatable hand on the
// given board: no pair of unseen cards, combined with any 3 of board,
// produces a strictly higher HandRank. This is a category-level
// heuristic — it does not account for which specific quads/straight
// flushes hero's own hole cards block beyond the cards already visible.
func IsNuts(heroRank poker.HandRank, hole, board []poker.Card) (bool, error) {
	if len(board) < 3 {
		return false, fmt.Errorf("is nuts: board has %d cards: %w", len(board), ErrInsufficientData)
	}

	var seen poker.Hand
	for _, c := range hole {
		seen.AddCard(c)
	}
	for _, c := range board {
		seen.AddCard(c)
	}

	unseen := make([]poker.Card, 0, 52-seen.CountCards())
	for suit := poker.Suit(0); suit < 4; suit++ {
		for rank := poker.Rank(0); rank < 13; rank++ {
			c := poker.NewCard(rank, suit)
			if !seen.HasCard(c) {
				unseen = append(unseen, c)
			}
		}
	}

	nuts := true
	choose2(unseen, func(o1, o2 poker.Card) {
		if !nuts {
			return
		}
		oppBest, err := bestOfCombinations([]poker.Card{o1, o2}, board)
		if err != nil {
			return
		}
		if oppBest > heroRank {
			nuts = false
		}
	})

	return nuts, nil
}


