package outs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerforbots/poker"
)

func mustHole(t *testing.T, strs ...string) []poker.Card {
	t.Helper()
	cards := make([]poker.Card, len(strs))
	for i, s := range strs {
		c, err := poker.ParseCard(s)
		require.NoError(t, err)
		cards[i] = c
	}
	return cards
}

func mustBoard(t *testing.T, strs ...string) poker.Hand {
	t.Helper()
	var h poker.Hand
	for _, s := range strs {
		c, err := poker.ParseCard(s)
		require.NoError(t, err)
		h.AddCard(c)
	}
	return h
}

func TestDetectDraws_NutFlushDraw(t *testing.T) {
	t.Parallel()
	hole := mustHole(t, "As", "2s", "Kh", "Qd")
	board := mustBoard(t, "7s", "9s", "2c")

	info := DetectDraws(hole, board)
	assert.Contains(t, info.Draws, NutFlushDraw)
	assert.Equal(t, 9, info.Outs)
	assert.Equal(t, 9, info.NutOuts)
}

func TestDetectDraws_SingleSuitedHoleCardIsNotAFlushDraw(t *testing.T) {
	t.Parallel()
	// Only one spade among hole cards: no valid 2-hole-card pair can ever
	// complete a 5-spade hand.
	hole := mustHole(t, "As", "2h", "Kh", "Qd")
	board := mustBoard(t, "7s", "9s", "2c")

	info := DetectDraws(hole, board)
	assert.NotContains(t, info.Draws, FlushDraw)
	assert.NotContains(t, info.Draws, NutFlushDraw)
}

func TestDetectDraws_OpenEndedStraightDraw(t *testing.T) {
	t.Parallel()
	hole := mustHole(t, "9h", "8d", "Kc", "2s")
	board := mustBoard(t, "7s", "6h", "2c")

	info := DetectDraws(hole, board)
	assert.Contains(t, info.Draws, OpenEndedStraightDraw)
	assert.GreaterOrEqual(t, info.Outs, 8)
}

func TestDetectDraws_NoDrawOnDryDisconnectedBoard(t *testing.T) {
	t.Parallel()
	hole := mustHole(t, "Kc", "Qs", "7d", "3h")
	board := mustBoard(t, "9s", "5h", "2c")

	info := DetectDraws(hole, board)
	assert.Equal(t, []DrawType{NoDraw}, info.Draws)
	assert.Equal(t, 0, info.Outs)
}

func TestDetectDraws_PreflopReturnsNoDraw(t *testing.T) {
	t.Parallel()
	hole := mustHole(t, "As", "Ks", "Qs", "Js")

	info := DetectDraws(hole, poker.Hand(0))
	assert.Equal(t, []DrawType{NoDraw}, info.Draws)
}

func TestApproxEquity(t *testing.T) {
	t.Parallel()
	assert.InDelta(t, 36.0, ApproxEquity(9, 2), 0.0001)
	assert.InDelta(t, 18.0, ApproxEquity(9, 1), 0.0001)
	assert.Equal(t, 0.0, ApproxEquity(9, 0))
}

func TestDrawInfo_HasStrongWeakDraw(t *testing.T) {
	t.Parallel()
	strong := DrawInfo{Draws: []DrawType{FlushDraw}}
	assert.True(t, strong.HasStrongDraw())
	assert.False(t, strong.HasWeakDraw())

	weak := DrawInfo{Draws: []DrawType{Gutshot}}
	assert.False(t, weak.HasStrongDraw())
	assert.True(t, weak.HasWeakDraw())

	none := DrawInfo{Draws: []DrawType{NoDraw}}
	assert.False(t, none.HasStrongDraw())
	assert.False(t, none.HasWeakDraw())
}


