package classification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerforbots/poker"
)

// independentSuitedness recomputes suitedness straight from the card
// strings, without going through AnalyzeFlushPotential.
func independentSuitedness(t *testing.T, board []string) Suitedness {
	t.Helper()
	suits := map[byte]int{}
	for _, c := range board {
		suits[c[len(c)-1]]++
	}
	switch len(suits) {
	case 1:
		return Monotone
	case 2:
		return TwoTone
	default:
		return Rainbow
	}
}

// independentPairing recomputes pairing/triplet state by counting ranks
// directly from the card strings.
func independentPairing(t *testing.T, board []string) (isPaired, isTriplet bool) {
	t.Helper()
	ranks := map[byte]int{}
	for _, c := range board {
		ranks[c[0]]++
	}
	for _, n := range ranks {
		if n >= 3 {
			isTriplet = true
		}
	}
	if !isTriplet {
		for _, n := range ranks {
			if n >= 2 {
				isPaired = true
			}
		}
	}
	return isPaired, isTriplet
}

// independentFlushDraw recomputes whether two cards share a suit.
func independentFlushDraw(board []string) bool {
	suits := map[byte]int{}
	for _, c := range board {
		suits[c[len(c)-1]]++
	}
	for _, n := range suits {
		if n >= 2 {
			return true
		}
	}
	return false
}

// rankValue maps a card's rank rune to its 2-14 numeric value, with 1
// representing the wheel-low ace so straightDrawPossible's wheel adjacency
// can be recomputed independently.
func rankValue(r byte) int {
	switch r {
	case 'A':
		return 14
	case 'K':
		return 13
	case 'Q':
		return 12
	case 'J':
		return 11
	case 'T':
		return 10
	default:
		return int(r - '0')
	}
}

// independentStraightDraw recomputes straightDrawPossible by trying both the
// ace-high and (when an ace is present) ace-low numberings of the board's
// ranks and checking whether either fits inside a 5-wide window.
func independentStraightDraw(board []string) bool {
	seen := map[int]bool{}
	values := make([]int, 0, len(board))
	hasAce := false
	for _, c := range board {
		v := rankValue(c[0])
		if seen[v] {
			continue
		}
		seen[v] = true
		if v == 14 {
			hasAce = true
		}
		values = append(values, v)
	}
	if len(values) < 2 {
		return false
	}

	fitsWindow := func(vs []int) bool {
		min, max := vs[0], vs[0]
		for _, v := range vs {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		return max-min <= 4
	}

	if fitsWindow(values) {
		return true
	}
	if hasAce {
		wheel := make([]int, len(values))
		for i, v := range values {
			if v == 14 {
				wheel[i] = 1
			} else {
				wheel[i] = v
			}
		}
		if fitsWindow(wheel) {
			return true
		}
	}
	return false
}

func TestAnalyzeFlop_RejectsNonFlopLengths(t *testing.T) {
	t.Parallel()
	for _, n := range []int{0, 1, 2, 4, 5} {
		board := parseBoard(t, []string{"As", "Kd", "Qh", "Jc", "Th"}[:n])
		_, err := AnalyzeFlop(board)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidBoardLength)
	}
}

func TestAnalyzeFlop(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		board        []string
		wantCategory Category
		wantDanger   NutDanger
	}{
		{
			name:         "monotone connected is extreme danger",
			board:        []string{"9s", "8s", "7s"},
			wantCategory: MonotoneConnected,
			wantDanger:   ExtremeDanger,
		},
		{
			name:         "rainbow disconnected unpaired is low danger",
			board:        []string{"2c", "7d", "Kh"},
			wantCategory: RainbowUnconnected,
			wantDanger:   LowDanger,
		},
		{
			name:         "paired board",
			board:        []string{"Ah", "As", "7c"},
			wantCategory: Paired,
			wantDanger:   MediumDanger,
		},
		{
			name:         "paired connected board",
			board:        []string{"9h", "9s", "8c"},
			wantCategory: Paired,
			wantDanger:   HighDanger,
		},
		{
			name:         "triplet board",
			board:        []string{"7h", "7s", "7c"},
			wantCategory: TripletBoard,
			wantDanger:   VeryHighDanger,
		},
		{
			name:         "wheel adjacency: ace two three is connected",
			board:        []string{"Ah", "2d", "3c"},
			wantCategory: RainbowConnected,
			wantDanger:   MediumDanger,
		},
		{
			name:         "two-tone connected",
			board:        []string{"Ts", "9s", "8c"},
			wantCategory: TwoToneConnected,
			wantDanger:   HighDanger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := parseBoard(t, tt.board)
			texture, err := AnalyzeFlop(board)
			require.NoError(t, err)

			wantSuited := independentSuitedness(t, tt.board)
			wantPaired, wantTriplet := independentPairing(t, tt.board)
			wantFlushDraw := independentFlushDraw(tt.board)
			wantStraightDraw := independentStraightDraw(tt.board)

			assert.Equal(t, tt.wantCategory, texture.Category, "category")
			assert.Equal(t, tt.wantDanger, texture.NutDanger, "nut danger")
			assert.Equal(t, wantSuited, texture.Suitedness, "suitedness")
			assert.Equal(t, wantPaired, texture.IsPaired, "isPaired")
			assert.Equal(t, wantTriplet, texture.IsTriplet, "isTriplet")
			assert.Equal(t, wantFlushDraw, texture.FlushDrawPossible, "flushDrawPossible")
			assert.Equal(t, wantStraightDraw, texture.StraightDrawPossible, "straightDrawPossible")
		})
	}
}

func TestStraightDrawPossible_WheelAdjacency(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		board []string
		want  bool
	}{
		{name: "ace two four fits the wheel window", board: []string{"Ah", "2d", "4c"}, want: true},
		{name: "ace king queen fits the ace-high window without the wheel", board: []string{"Ah", "Kd", "Qc"}, want: true},
		{name: "ace nine four spans too wide either way", board: []string{"Ah", "9d", "4c"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := parseBoard(t, tt.board)
			got := straightDrawPossible(board)
			assert.Equal(t, independentStraightDraw(tt.board), got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoryOf(t *testing.T) {
	t.Parallel()
	assert.Equal(t, TripletBoard, categoryOf(Rainbow, Disconnected, false, true))
	assert.Equal(t, Paired, categoryOf(Rainbow, Disconnected, true, false))
	assert.Equal(t, MonotoneConnected, categoryOf(Monotone, Connected, false, false))
	assert.Equal(t, MonotoneUnconnected, categoryOf(Monotone, Disconnected, false, false))
	assert.Equal(t, TwoToneConnected, categoryOf(TwoTone, Connected, false, false))
	assert.Equal(t, TwoToneUnconnected, categoryOf(TwoTone, SemiConnected, false, false))
	assert.Equal(t, RainbowConnected, categoryOf(Rainbow, Connected, false, false))
	assert.Equal(t, RainbowUnconnected, categoryOf(Rainbow, Disconnected, false, false))
}

func TestNutDangerOf(t *testing.T) {
	t.Parallel()
	assert.Equal(t, VeryHighDanger, nutDangerOf(Rainbow, Disconnected, false, true))
	assert.Equal(t, ExtremeDanger, nutDangerOf(Monotone, Disconnected, true, false))
	assert.Equal(t, HighDanger, nutDangerOf(Rainbow, Connected, true, false))
	assert.Equal(t, MediumDanger, nutDangerOf(Rainbow, Disconnected, true, false))
	assert.Equal(t, ExtremeDanger, nutDangerOf(Monotone, Connected, false, false))
	assert.Equal(t, HighDanger, nutDangerOf(Monotone, Disconnected, false, false))
	assert.Equal(t, HighDanger, nutDangerOf(TwoTone, Connected, false, false))
	assert.Equal(t, MediumDanger, nutDangerOf(TwoTone, Disconnected, false, false))
	assert.Equal(t, MediumDanger, nutDangerOf(Rainbow, Connected, false, false))
	assert.Equal(t, LowDanger, nutDangerOf(Rainbow, Disconnected, false, false))
}

func TestConnectivityOf(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Connected, connectivityOf([]int{5, 6, 7}))
	assert.Equal(t, SemiConnected, connectivityOf([]int{5, 6, 8}))
	assert.Equal(t, Disconnected, connectivityOf([]int{2, 7, 11}))
	assert.Equal(t, Connected, connectivityOf([]int{9}))
}

func TestFlopTextureCategoryAndDangerStrings(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "monotone-connected", MonotoneConnected.String())
	assert.Equal(t, "triplet", TripletBoard.String())
	assert.Equal(t, "extreme", ExtremeDanger.String())
	assert.Equal(t, "two-tone", TwoTone.String())
	assert.Equal(t, "semi-connected", SemiConnected.String())
}
