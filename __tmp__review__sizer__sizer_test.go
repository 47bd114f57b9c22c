package sizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerforbots/classification"
)

func dryTexture() classification.FlopTexture {
	return classification.FlopTexture{
		Suitedness:   classification.Rainbow,
		Connectivity: classification.Disconnected,
	}
}

func wetTexture() classification.FlopTexture {
	return classification.FlopTexture{
		Suitedness:   classification.TwoTone,
		Connectivity: classification.Connected,
	}
}

func TestSize_InvalidAction(t *testing.T) {
	t.Parallel()
	_, err := Size(Request{Action: Action(99)})
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestSize_MicroSPRShoveSized(t *testing.T) {
	t.Parallel()
	s, err := Size(Request{
		Action: Bet, PotSize: 100, MinBet: 10, EffectiveStack: 500,
		SPR: 1.5, Texture: dryTexture(), StyleMultiplier: 1.0,
	})
	require.NoError(t, err)
	assert.InDelta(t, 67, s.Optimal, 1)
}

func TestSize_MediumSPRWetVsDry(t *testing.T) {
	t.Parallel()
	wet, err := Size(Request{
		Action: Bet, PotSize: 100, MinBet: 10, EffectiveStack: 1000,
		SPR: 6, Texture: wetTexture(), StyleMultiplier: 1.0,
	})
	require.NoError(t, err)

	dry, err := Size(Request{
		Action: Bet, PotSize: 100, MinBet: 10, EffectiveStack: 1000,
		SPR: 6, Texture: dryTexture(), StyleMultiplier: 1.0,
	})
	require.NoError(t, err)

	assert.Greater(t, wet.Optimal, dry.Optimal)
}

func TestSize_RespectsLegalMinimum(t *testing.T) {
	t.Parallel()
	s, err := Size(Request{
		Action: Raise, PotSize: 10, ToCall: 5, MinRaise: 50, PreviousBet: 5, PreviousRaise: 45,
		EffectiveStack: 1000, SPR: 20, Texture: dryTexture(), StyleMultiplier: 1.0,
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, s.Optimal, s.Min)
	assert.Equal(t, 50, s.Min)
}

func TestSize_ClampedToPotLimitMax(t *testing.T) {
	t.Parallel()
	s, err := Size(Request{
		Action: Bet, PotSize: 1000, MinBet: 10, EffectiveStack: 1000000,
		SPR: 0.5, Texture: wetTexture(), StyleMultiplier: 5.0,
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, s.Optimal, s.Max)
}

func TestSize_StyleMultiplierScales(t *testing.T) {
	t.Parallel()
	tight, err := Size(Request{
		Action: Bet, PotSize: 100, MinBet: 10, EffectiveStack: 1000,
		SPR: 6, Texture: dryTexture(), StyleMultiplier: 0.85,
	})
	require.NoError(t, err)

	loose, err := Size(Request{
		Action: Bet, PotSize: 100, MinBet: 10, EffectiveStack: 1000,
		SPR: 6, Texture: dryTexture(), StyleMultiplier: 1.15,
	})
	require.NoError(t, err)

	assert.Less(t, tight.Optimal, loose.Optimal)
}


