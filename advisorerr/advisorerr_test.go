package advisorerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	t.Parallel()
	err := New(InvalidInput, "duplicate card As")
	assert.Equal(t, "invalid_input: duplicate card As", err.Error())
}

func TestError_WrapPreservesCause(t *testing.T) {
	t.Parallel()
	cause := errors.New("deck ran dry")
	err := Wrap(DeckExhausted, "six players need 17 cards", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "deck ran dry")
}

func TestKindOf(t *testing.T) {
	t.Parallel()
	assert.Equal(t, InvalidInput, KindOf(New(InvalidInput, "bad enum")))
	assert.Equal(t, Internal, KindOf(errors.New("plain error")))
}

func TestIs(t *testing.T) {
	t.Parallel()
	err := New(Truncated, "deadline reached at iteration 4000")
	assert.True(t, Is(err, Truncated))
	assert.False(t, Is(err, DeckExhausted))
}
