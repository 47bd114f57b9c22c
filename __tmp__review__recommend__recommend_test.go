package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerforbots/poker"
	"github.com/lox/pokerforbots/potodds"
	"github.com/lox/pokerforbots/styleprofile"
)

func baseRequest() Request {
	return Request{
		Street:         poker.Flop,
		HeroStyle:      styleprofile.Reg,
		SPR:            10,
		EffectiveStack: 1000,
		PotSize:        100,
		MinBet:         10,
		MinRaise:       20,
	}
}

func TestRecommend_PreflopIsInsufficientData(t *testing.T) {
	t.Parallel()
	req := baseRequest()
	req.Street = poker.Preflop
	_, err := Recommend(req)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestRecommend_ClearFold(t *testing.T) {
	t.Parallel()
	req := baseRequest()
	req.FacingBet = true
	req.Equity = 20
	req.PotOdds = 40
	req.Position = OutOfPosition
	req.ToCall = 20

	rec, err := Recommend(req)
	require.NoError(t, err)
	assert.Equal(t, Fold, rec.Action)
	assert.Equal(t, ReasonClearFold, rec.DecisionReason)
	assert.InDelta(t, 0.54375, rec.Confidence, 0.01)
}

func TestRecommend_ValueRaise(t *testing.T) {
	t.Parallel()
	req := baseRequest()
	req.FacingBet = true
	req.Equity = 60
	req.PotOdds = 40
	req.Position = InPosition
	req.ToCall = 20

	rec, err := Recommend(req)
	require.NoError(t, err)
	assert.Equal(t, Raise, rec.Action)
	assert.Equal(t, ReasonValueRaise, rec.DecisionReason)
	require.NotNil(t, rec.Sizing)
}

func TestRecommend_StrongValue(t *testing.T) {
	t.Parallel()
	req := baseRequest()
	req.FacingBet = true
	req.Equity = 80
	req.PotOdds = 40
	req.Position = InPosition
	req.ToCall = 20

	rec, err := Recommend(req)
	require.NoError(t, err)
	assert.Equal(t, Raise, rec.Action)
	assert.Equal(t, ReasonStrongValue, rec.DecisionReason)
}

func TestRecommend_SemiBluff(t *testing.T) {
	t.Parallel()
	req := baseRequest()
	req.FacingBet = true
	req.Equity = 40
	req.PotOdds = 45
	req.Position = InPosition
	req.Outs = 9
	req.ImpliedOdds = potodds.Good
	req.ToCall = 20

	rec, err := Recommend(req)
	require.NoError(t, err)
	assert.Equal(t, Raise, rec.Action)
	assert.Equal(t, ReasonSemiBluff, rec.DecisionReason)
}

func TestRecommend_DrawCallOutOfPosition(t *testing.T) {
	t.Parallel()
	req := baseRequest()
	req.FacingBet = true
	req.Equity = 35
	req.PotOdds = 40
	req.Position = OutOfPosition
	req.Outs = 10
	req.ImpliedOdds = potodds.Good
	req.ToCall = 20

	rec, err := Recommend(req)
	require.NoError(t, err)
	assert.Equal(t, Call, rec.Action)
	assert.Equal(t, ReasonDrawCall, rec.DecisionReason)
}

func TestRecommend_MarginalCallNoOuts(t *testing.T) {
	t.Parallel()
	req := baseRequest()
	req.FacingBet = true
	req.Equity = 35
	req.PotOdds = 40
	req.Position = OutOfPosition
	req.ToCall = 20

	rec, err := Recommend(req)
	require.NoError(t, err)
	assert.Equal(t, Call, rec.Action)
	assert.Equal(t, ReasonMarginalCall, rec.DecisionReason)
}

func TestRecommend_ValueBetNotFacingBet(t *testing.T) {
	t.Parallel()
	req := baseRequest()
	req.FacingBet = false
	req.Equity = 60
	req.Position = InPosition

	rec, err := Recommend(req)
	require.NoError(t, err)
	assert.Equal(t, Bet, rec.Action)
	assert.Equal(t, ReasonValueBet, rec.DecisionReason)
}

func TestRecommend_CheckWeakHandNotFacingBet(t *testing.T) {
	t.Parallel()
	req := baseRequest()
	req.FacingBet = false
	req.Equity = 20
	req.Position = OutOfPosition

	rec, err := Recommend(req)
	require.NoError(t, err)
	assert.Equal(t, Check, rec.Action)
	assert.Equal(t, ReasonCheck, rec.DecisionReason)
}

func TestRecommend_CommitmentOverride(t *testing.T) {
	t.Parallel()
	req := baseRequest()
	req.FacingBet = true
	req.Equity = 50
	req.PotOdds = 40
	req.Position = InPosition
	req.SPR = 1.5
	req.EffectiveStack = 100
	req.ToCall = 30

	rec, err := Recommend(req)
	require.NoError(t, err)
	assert.Equal(t, Call, rec.Action)
	assert.Equal(t, ReasonCommitted, rec.DecisionReason)
}

func TestRecommend_AlternativesBoundedAtTwo(t *testing.T) {
	t.Parallel()
	req := baseRequest()
	req.FacingBet = true
	req.Equity = 80
	req.PotOdds = 40
	req.Position = InPosition
	req.ToCall = 20

	rec, err := Recommend(req)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(rec.Alternatives), 2)
}


