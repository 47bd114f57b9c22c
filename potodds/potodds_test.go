package potodds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPotOdds(t *testing.T) {
	t.Parallel()
	assert.InDelta(t, 0.0, PotOdds(100, 0), 0.001)
	assert.InDelta(t, 33.333, PotOdds(100, 50), 0.01)
	assert.InDelta(t, 50.0, PotOdds(100, 100), 0.01)
}

func TestImpliedOdds(t *testing.T) {
	t.Parallel()
	cases := []struct {
		stack, pot int
		want       ImpliedOddsRating
	}{
		{800, 100, Excellent},
		{400, 100, Good},
		{200, 100, Moderate},
		{100, 100, Poor},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ImpliedOdds(c.stack, c.pot), "stack=%d pot=%d", c.stack, c.pot)
	}
}

func TestSPRAndZone(t *testing.T) {
	t.Parallel()
	cases := []struct {
		stack, pot int
		wantZone   SPRZone
	}{
		{100, 100, Micro},
		{300, 100, Short},
		{600, 100, Medium},
		{1000, 100, Deep},
		{1600, 100, VeryDeep},
		{100, 200, Micro},
	}
	for _, c := range cases {
		spr := SPR(c.stack, c.pot)
		assert.Equal(t, c.wantZone, Zone(spr), "stack=%d pot=%d spr=%.2f", c.stack, c.pot, spr)
	}
}

func TestSPR_ZeroPot(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 99.0, SPR(500, 0))
	assert.Equal(t, VeryDeep, Zone(SPR(500, 0)))
}
