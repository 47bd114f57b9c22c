package query

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

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()
	cases := []string{
		"pair:TT+:ds:conn",
		"run:J+:ds",
		"dpair",
		"bway",
		"any",
		"pair:88-QQ",
		"pair:AA",
	}
	for _, s := range cases {
		t.Run(s, func(t *testing.T) {
			t.Parallel()
			q, err := Parse(s)
			require.NoError(t, err)
			assert.Equal(t, s, Describe(q))

			q2, err := Parse(Describe(q))
			require.NoError(t, err)
			assert.Equal(t, q, q2)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()
	_, err := Parse("potato:TT+")
	assert.ErrorIs(t, err, ErrUnknownKeyword)

	_, err = Parse("pair:XX+")
	assert.ErrorIs(t, err, ErrMalformedRankConstraint)

	_, err = Parse("pair:TT:bogus")
	assert.ErrorIs(t, err, ErrUnknownModifier)
}

func TestMatches_Pair(t *testing.T) {
	t.Parallel()
	q, err := Parse("pair:TT+")
	require.NoError(t, err)

	hole := mustCards(t, "Ts", "Th", "2c", "3d")
	assert.True(t, Matches(q, hole))

	hole2 := mustCards(t, "9s", "9h", "2c", "3d")
	assert.False(t, Matches(q, hole2), "99 is below the TT+ threshold")
}

func TestMatches_DoublePair(t *testing.T) {
	t.Parallel()
	q, err := Parse("dpair")
	require.NoError(t, err)

	hole := mustCards(t, "As", "Ah", "Kc", "Kd")
	assert.True(t, Matches(q, hole))

	hole2 := mustCards(t, "As", "Ah", "Kc", "Qd")
	assert.False(t, Matches(q, hole2))
}

func TestMatches_RunDoubleSuited(t *testing.T) {
	t.Parallel()
	q, err := Parse("run:J+:ds")
	require.NoError(t, err)

	// J-T-9-8 rundown, double-suited (Js/Ts spades, 9h/8h hearts).
	hole := mustCards(t, "Js", "Ts", "9h", "8h")
	assert.True(t, Matches(q, hole))

	// Same rundown but single-suited only.
	hole2 := mustCards(t, "Js", "Ts", "9h", "8c")
	assert.False(t, Matches(q, hole2))
}

func TestMatches_Broadway(t *testing.T) {
	t.Parallel()
	q, err := Parse("bway")
	require.NoError(t, err)

	hole := mustCards(t, "As", "Kh", "Qd", "Jc")
	assert.True(t, Matches(q, hole))

	hole2 := mustCards(t, "As", "Kh", "Qd", "9c")
	assert.False(t, Matches(q, hole2))
}

func TestMatches_Any(t *testing.T) {
	t.Parallel()
	q, err := Parse("any")
	require.NoError(t, err)
	assert.True(t, Matches(q, mustCards(t, "2s", "7h", "9d", "3c")))
}


