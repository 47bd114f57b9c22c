package rangeest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/pokerforbots/poker"
)

func sum(d [numCategories]float64) float64 {
	var s float64
	for _, v := range d {
		s += v
	}
	return s
}

func TestEstimate_DistributionNormalized(t *testing.T) {
	t.Parallel()
	cases := []Input{
		{Position: EarlyPosition, PreflopAction: OpenRaise},
		{Position: BigBlind, PreflopAction: BlindDefend},
		{Position: CutoffButton, PreflopAction: OpenRaise},
		{Position: MiddlePosition, PreflopAction: ThreeBet},
	}
	for _, in := range cases {
		r := Estimate(in)
		assert.InDelta(t, 1.0, sum(r.Distribution), 1e-9)
	}
}

func TestEstimate_ThreeBetIsTighterThanBlindDefend(t *testing.T) {
	t.Parallel()
	threeBet := Estimate(Input{Position: MiddlePosition, PreflopAction: ThreeBet})
	defend := Estimate(Input{Position: BigBlind, PreflopAction: BlindDefend})

	assert.Greater(t, threeBet.Distribution[idxTwoPair]+threeBet.Distribution[idxFullHouse],
		defend.Distribution[idxTwoPair]+defend.Distribution[idxFullHouse])
	assert.Greater(t, defend.Distribution[idxHighCard], threeBet.Distribution[idxHighCard])
}

func TestEstimate_BigBetShiftsMassUpward(t *testing.T) {
	t.Parallel()
	base := Estimate(Input{Position: CutoffButton, PreflopAction: OpenRaise})
	withBet := Estimate(Input{
		Position:      CutoffButton,
		PreflopAction: OpenRaise,
		Actions:       []Action{{Street: poker.Flop, Type: Bet, Size: LargeBet}},
	})

	strongBase := base.Distribution[idxFlush] + base.Distribution[idxFullHouse] + base.Distribution[idxQuads]
	strongWithBet := withBet.Distribution[idxFlush] + withBet.Distribution[idxFullHouse] + withBet.Distribution[idxQuads]
	assert.Greater(t, strongWithBet, strongBase)
}

func TestEstimate_MonotoneBoardLiftsFlush(t *testing.T) {
	t.Parallel()
	plain := Estimate(Input{Position: CutoffButton, PreflopAction: OpenRaise})
	monotone := Estimate(Input{
		Position:      CutoffButton,
		PreflopAction: OpenRaise,
		BoardTexture:  &BoardTexture{Monotone: true},
	})
	assert.Greater(t, monotone.Distribution[idxFlush], plain.Distribution[idxFlush])
	assert.True(t, monotone.DrawHeavy)
}

func TestEstimate_MultiwayShiftsTowardStrength(t *testing.T) {
	t.Parallel()
	headsUp := Estimate(Input{Position: CutoffButton, PreflopAction: OpenRaise, PlayersInHand: 2})
	fourWay := Estimate(Input{Position: CutoffButton, PreflopAction: OpenRaise, PlayersInHand: 4})

	strongHU := headsUp.Distribution[idxFlush] + headsUp.Distribution[idxFullHouse]
	strongFourWay := fourWay.Distribution[idxFlush] + fourWay.Distribution[idxFullHouse]
	assert.Greater(t, strongFourWay, strongHU)
}

func TestEstimate_Confidence(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Low, Estimate(Input{Position: CutoffButton, PreflopAction: OpenRaise}).Confidence)

	one := Estimate(Input{
		Position: CutoffButton, PreflopAction: OpenRaise,
		Actions: []Action{{Street: poker.Flop, Type: Bet, Size: SmallBet}},
	})
	assert.Equal(t, Medium, one.Confidence)

	three := Estimate(Input{
		Position: CutoffButton, PreflopAction: OpenRaise,
		Actions: []Action{
			{Street: poker.Flop, Type: Bet, Size: SmallBet},
			{Street: poker.Turn, Type: Call},
			{Street: poker.River, Type: Raise, Size: LargeBet},
		},
	})
	assert.Equal(t, High, three.Confidence)
}
