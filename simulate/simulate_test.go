package simulate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerforbots/omaha"
)

func TestRun_DeterministicWithFixedSeed(t *testing.T) {
	t.Parallel()
	seed := uint64(12345)
	cfg := Config{Variant: omaha.PLO4, PlayerCount: 3, Iterations: 500, Seed: &seed, Workers: 2}

	r1, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	r2, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, r1, r2, "same seed + same config must be bit-identical")
}

func TestRun_HandTypeDistributionSumsToOne(t *testing.T) {
	t.Parallel()
	seed := uint64(7)
	cfg := Config{Variant: omaha.PLO4, PlayerCount: 4, Iterations: 1000, Seed: &seed, Workers: 3}

	r, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	total := 0.0
	for _, stat := range r.HandTypeDistribution {
		total += stat.Percentage
	}
	assert.InDelta(t, 100.0, total, 0.5)
}

func TestRun_WinRateMonotonicity(t *testing.T) {
	t.Parallel()
	seed := uint64(999)
	var last float64 = 1.1
	for players := 2; players <= 6; players++ {
		cfg := Config{Variant: omaha.PLO4, PlayerCount: players, Iterations: 2000, Seed: &seed, Workers: 4}
		r, err := Run(context.Background(), cfg)
		require.NoError(t, err)
		assert.Less(t, r.OverallWinRate, last, "win rate must strictly decrease as player count rises")
		last = r.OverallWinRate
	}
}

func TestRun_DeckExhausted(t *testing.T) {
	t.Parallel()
	_, err := Run(context.Background(), Config{Variant: omaha.PLO6, PlayerCount: 8, Iterations: 10})
	assert.ErrorIs(t, err, ErrDeckExhausted)
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Parallel()
	_, err := Run(context.Background(), Config{Variant: omaha.PLO4, PlayerCount: 2, Iterations: 0})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Run(context.Background(), Config{Variant: omaha.PLO4, PlayerCount: 1, Iterations: 10})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRun_WinRateMatrixStrongBeatsWeak(t *testing.T) {
	t.Parallel()
	seed := uint64(12345)
	cfg := Config{Variant: omaha.PLO4, PlayerCount: 6, Iterations: 50000, Seed: &seed, Workers: 4}

	r, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	flushIdx := 5  // poker.Flush
	twoPairIdx := 2 // poker.TwoPair
	fullHouseIdx := 6
	assert.Greater(t, r.WinRateMatrix[flushIdx][twoPairIdx], 0.9)
	assert.Greater(t, r.WinRateMatrix[fullHouseIdx][flushIdx], 0.9)
}
