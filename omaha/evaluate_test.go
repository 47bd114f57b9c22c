package omaha

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerforbots/poker"
)

func mustCards(t *testing.T, strs ...string) []poker.Card {
	t.Helper()
	cards := make([]poker.Card, len(strs))
	for i, s := range strs {
		c, err := poker.ParseCard(s)
		require.NoError(t, err)
		cards[i] = c
	}
	return cards
}

func TestEvaluate_MustUseExactlyTwoHoleCards(t *testing.T) {
	t.Parallel()
	// Board is a flush in spades. Hero holds only one spade, so the best
	// hand must NOT be a flush even though the board alone has 5 spades,
	// and the board-only 5 cards are not a legal Omaha hand.
	hole := mustCards(t, "As", "Kh", "Qd", "Jc")
	board := mustCards(t, "2s", "4s", "7s", "9s", "Ts")

	rank, err := Evaluate(hole, board, PLO4)
	require.NoError(t, err)
	assert.Equal(t, poker.HighCard, rank.Type(), "hero holds only one spade so cannot make the board's flush")
}

func TestEvaluate_BestOfCombinations(t *testing.T) {
	t.Parallel()
	// Hero holds pocket aces (among other cards); the board carries one
	// more ace and a king pair, giving aces-full-of-kings using exactly
	// the hole pair of aces plus 3 board cards.
	hole := mustCards(t, "Ah", "As", "2c", "3d")
	board := mustCards(t, "Ac", "Kd", "Kc", "7h", "9s")

	rank, err := Evaluate(hole, board, PLO4)
	require.NoError(t, err)
	assert.Equal(t, poker.FullHouse, rank.Type())
}

func TestEvaluate_VariantMismatch(t *testing.T) {
	t.Parallel()
	hole := mustCards(t, "As", "Kh", "Qd")
	board := mustCards(t, "2s", "4s", "7s")

	_, err := Evaluate(hole, board, PLO4)
	assert.ErrorIs(t, err, ErrVariantMismatch)
}

func TestEvaluate_DuplicateCard(t *testing.T) {
	t.Parallel()
	hole := mustCards(t, "As", "Kh", "Qd", "Jc")
	board := mustCards(t, "As", "4s", "7s")

	_, err := Evaluate(hole, board, PLO4)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEvaluate_InsufficientDataPreflop(t *testing.T) {
	t.Parallel()
	hole := mustCards(t, "As", "Kh", "Qd", "Jc")

	_, err := Evaluate(hole, nil, PLO4)
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = Evaluate(hole, mustCards(t, "2s", "4s"), PLO4)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestEvaluate_BoardTooLong(t *testing.T) {
	t.Parallel()
	hole := mustCards(t, "As", "Kh", "Qd", "Jc")
	board := mustCards(t, "2s", "4s", "7s", "9s", "Ts", "3c")

	_, err := Evaluate(hole, board, PLO4)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEvaluate_PLO5AndPLO6Variants(t *testing.T) {
	t.Parallel()
	board := mustCards(t, "2s", "7h", "9d", "Jc", "Kc")

	hole5 := mustCards(t, "As", "Kh", "Qd", "Jh", "Th")
	_, err := Evaluate(hole5, board, PLO5)
	require.NoError(t, err)

	hole6 := mustCards(t, "As", "Kh", "Qd", "Jh", "Th", "9c")
	_, err = Evaluate(hole6, board, PLO6)
	require.NoError(t, err)

	// Wrong variant for 6 cards
	_, err = Evaluate(hole6, board, PLO5)
	assert.ErrorIs(t, err, ErrVariantMismatch)
}

func TestVariantFromHoleCount(t *testing.T) {
	t.Parallel()
	v, err := VariantFromHoleCount(4)
	require.NoError(t, err)
	assert.Equal(t, PLO4, v)

	v, err = VariantFromHoleCount(6)
	require.NoError(t, err)
	assert.Equal(t, PLO6, v)

	_, err = VariantFromHoleCount(2)
	assert.ErrorIs(t, err, ErrVariantMismatch)
}

func TestIsNuts(t *testing.T) {
	t.Parallel()
	// Hero has the nut flush (ace-high) on a 3-flush board with no
	// pair/straight-flush danger: no unseen 2-card completion can beat it.
	hole := mustCards(t, "As", "2s", "Kh", "Qd")
	board := mustCards(t, "3s", "7s", "9s")

	rank, err := Evaluate(hole, board, PLO4)
	require.NoError(t, err)

	nuts, err := IsNuts(rank, hole, board)
	require.NoError(t, err)
	assert.True(t, nuts)
}

func TestIsNuts_NotNutsWhenHigherFlushPossible(t *testing.T) {
	t.Parallel()
	// Hero has a 9-high flush, but an opponent holding two higher spades
	// (e.g. Ts/Js) makes a higher flush off the same board.
	hole := mustCards(t, "9s", "8s", "Kh", "Qd")
	board := mustCards(t, "7s", "6s", "2s")

	rank, err := Evaluate(hole, board, PLO4)
	require.NoError(t, err)

	nuts, err := IsNuts(rank, hole, board)
	require.NoError(t, err)
	assert.False(t, nuts)
}

func TestIsNuts_InsufficientDataPreflop(t *testing.T) {
	t.Parallel()
	hole := mustCards(t, "As", "2s", "Kh", "Qd")

	_, err := IsNuts(0, hole, nil)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

// bruteForceBest independently enumerates every 2-of-hole/3-of-board
// combination without using the package's own choose2/choose3 helpers, and
// returns the maximum HandRank plus how many combinations it tried.
func bruteForceBest(t *testing.T, hole, board []poker.Card) (poker.HandRank, int) {
	t.Helper()

	var holePairs [][2]poker.Card
	for i := 0; i < len(hole); i++ {
		for j := i + 1; j < len(hole); j++ {
			holePairs = append(holePairs, [2]poker.Card{hole[i], hole[j]})
		}
	}

	var boardTriples [][3]poker.Card
	for i := 0; i < len(board); i++ {
		for j := i + 1; j < len(board); j++ {
			for k := j + 1; k < len(board); k++ {
				boardTriples = append(boardTriples, [3]poker.Card{board[i], board[j], board[k]})
			}
		}
	}

	var best poker.HandRank
	tried := 0
	for _, hp := range holePairs {
		for _, bt := range boardTriples {
			hand := poker.NewHand(hp[0], hp[1], bt[0], bt[1], bt[2])
			rank, err := poker.Evaluate5Cards(hand)
			require.NoError(t, err)
			if rank > best {
				best = rank
			}
			tried++
		}
	}
	return best, tried
}

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}

func TestEvaluate_MatchesBruteForceEnumeration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		hole    []string
		board   []string
		variant Variant
	}{
		{
			name:    "plo4 flop",
			hole:    []string{"As", "Kh", "Qd", "Jc"},
			board:   []string{"2s", "7h", "9d"},
			variant: PLO4,
		},
		{
			name:    "plo4 turn with a pair and flush draw",
			hole:    []string{"Ah", "As", "5c", "6d"},
			board:   []string{"Ac", "9h", "9s", "2h"},
			variant: PLO4,
		},
		{
			name:    "plo4 river",
			hole:    []string{"Td", "Jd", "Qc", "Kc"},
			board:   []string{"9d", "8d", "2c", "7s", "3h"},
			variant: PLO4,
		},
		{
			name:    "plo5 flop",
			hole:    []string{"As", "Kh", "Qd", "Jh", "Th"},
			board:   []string{"2s", "7h", "9d"},
			variant: PLO5,
		},
		{
			name:    "plo6 river",
			hole:    []string{"As", "Kh", "Qd", "Jh", "Th", "9c"},
			board:   []string{"2s", "7h", "9d", "Jc", "Kc"},
			variant: PLO6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hole := mustCards(t, tt.hole...)
			board := mustCards(t, tt.board...)

			got, err := Evaluate(hole, board, tt.variant)
			require.NoError(t, err)

			want, tried := bruteForceBest(t, hole, board)
			assert.Equal(t, binomial(len(hole), 2)*binomial(len(board), 3), tried,
				"brute-force search must try exactly C(hole,2)*C(board,3) combinations")
			assert.Equal(t, want, got, "Evaluate must return the brute-force maximum")
		})
	}
}
