package styleprofile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromString_Default(t *testing.T) {
	t.Parallel()
	s, err := FromString("")
	require.NoError(t, err)
	assert.Equal(t, Reg, s)
}

func TestFromString_Unknown(t *testing.T) {
	t.Parallel()
	_, err := FromString("maniac")
	assert.Error(t, err)
}

func TestGet_AllStylesPresent(t *testing.T) {
	t.Parallel()
	for _, s := range []Style{Nit, Rock, Reg, Tag, Lag, Fish} {
		p := Get(s)
		assert.Equal(t, s, p.Style)
		assert.NotEmpty(t, p.Description)
	}
}

func TestGet_NitTighterThanFish(t *testing.T) {
	t.Parallel()
	nit, fish := Get(Nit), Get(Fish)
	assert.Less(t, nit.BluffFrequency, fish.BluffFrequency)
	assert.Less(t, nit.CommitThreshold, fish.CommitThreshold)
}

func TestLoadOverrides_MissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()
	profiles, err := LoadOverrides(filepath.Join(t.TempDir(), "nonexistent.hcl"))
	require.NoError(t, err)
	assert.Equal(t, All(), profiles)
}

func TestLoadOverrides_AppliesNamedFields(t *testing.T) {
	t.Parallel()
	content := `
style "lag" {
  raise_margin      = 8
  sizing_multiplier = 1.25
}
`
	path := filepath.Join(t.TempDir(), "styles.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	profiles, err := LoadOverrides(path)
	require.NoError(t, err)

	lag := profiles[Lag]
	assert.Equal(t, 8.0, lag.RaiseMargin)
	assert.Equal(t, 1.25, lag.SizingMultiplier)
	// Untouched fields keep their default.
	assert.Equal(t, Get(Lag).CommitThreshold, lag.CommitThreshold)
}

func TestLoadOverrides_UnknownStyleBlock(t *testing.T) {
	t.Parallel()
	content := `
style "maniac" {
  raise_margin = 5
}
`
	path := filepath.Join(t.TempDir(), "styles.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadOverrides(path)
	assert.ErrorIs(t, err, ErrUnknownStyleBlock)
}
