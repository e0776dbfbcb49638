package voicing_test

import (
	"testing"

	"github.com/katalvlaran/fretwork/pitch"
	"github.com/katalvlaran/fretwork/voicing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewSpec_Defaults pins the documented default policy.
func TestNewSpec_Defaults(t *testing.T) {
	s, err := voicing.NewSpec(pitch.C, []pitch.Quality{pitch.Unison, pitch.MajorThird, pitch.PerfectFifth})
	require.NoError(t, err)

	assert.Equal(t, voicing.DefaultMaxFret, s.MaxFret)
	assert.Equal(t, voicing.Hard, s.MaxDifficulty)
	assert.True(t, s.AllowOpen)
	assert.True(t, s.AllowMuted)
	assert.True(t, s.AllowBarre)
	assert.True(t, s.Filter.Unconstrained())
}

// TestNewSpec_FifthDemotion checks the fixed promotion rule: the perfect
// fifth turns optional exactly when a seventh is requested.
func TestNewSpec_FifthDemotion(t *testing.T) {
	triad, err := voicing.NewSpec(pitch.C, []pitch.Quality{pitch.Unison, pitch.MajorThird, pitch.PerfectFifth})
	require.NoError(t, err)
	assert.True(t, triad.Mandatory.Has(pitch.PerfectFifth), "triad keeps the fifth mandatory")
	assert.True(t, triad.Optional.Empty())

	seventh, err := voicing.NewSpec(pitch.C,
		[]pitch.Quality{pitch.Unison, pitch.MajorThird, pitch.PerfectFifth, pitch.MinorSeventh})
	require.NoError(t, err)
	assert.False(t, seventh.Mandatory.Has(pitch.PerfectFifth), "dominant seventh demotes the fifth")
	assert.True(t, seventh.Optional.Has(pitch.PerfectFifth))
	assert.True(t, seventh.Mandatory.Has(pitch.MinorSeventh))
	assert.True(t, seventh.Requested().Has(pitch.PerfectFifth), "demotion never drops a quality")
}

// TestNewSpec_Sentinels verifies fail-fast configuration errors.
func TestNewSpec_Sentinels(t *testing.T) {
	_, err := voicing.NewSpec(pitch.C, nil)
	assert.ErrorIs(t, err, voicing.ErrNoQualities)

	_, err = voicing.NewSpec(pitch.Class(12), []pitch.Quality{pitch.Unison})
	assert.ErrorIs(t, err, voicing.ErrBadRoot)

	_, err = voicing.NewSpec(pitch.C, []pitch.Quality{pitch.Quality(12)})
	assert.ErrorIs(t, err, voicing.ErrQualityOutOfRange)

	_, err = voicing.NewSpec(pitch.C, []pitch.Quality{pitch.Unison, pitch.Unison})
	assert.ErrorIs(t, err, voicing.ErrDuplicateQuality)
}

// TestSpec_Options covers option setters and the MaxFret panic contract.
func TestSpec_Options(t *testing.T) {
	s, err := voicing.NewSpec(pitch.A,
		[]pitch.Quality{pitch.Unison, pitch.MinorThird, pitch.PerfectFifth},
		voicing.WithMaxFret(5),
		voicing.WithMaxDifficulty(voicing.VeryHard),
		voicing.WithoutOpen(),
		voicing.WithoutBarre(),
		voicing.WithInversion(0),
		voicing.WithHighest(pitch.MinorThird),
	)
	require.NoError(t, err)
	assert.Equal(t, 5, s.MaxFret)
	assert.Equal(t, voicing.VeryHard, s.MaxDifficulty)
	assert.False(t, s.AllowOpen)
	assert.True(t, s.AllowMuted)
	assert.False(t, s.AllowBarre)
	assert.Equal(t, 0, s.Filter.Inversion)
	assert.Equal(t, int(pitch.MinorThird), s.Filter.Highest)

	assert.Panics(t, func() { voicing.WithMaxFret(0) }, "fret ceiling below the fingerboard")
	assert.Panics(t, func() { voicing.WithMaxFret(16) }, "fret ceiling beyond the id codec")
}

// TestSpec_Validate re-checks hand-assembled specs.
func TestSpec_Validate(t *testing.T) {
	s, err := voicing.NewSpec(pitch.C, []pitch.Quality{pitch.Unison})
	require.NoError(t, err)
	assert.NoError(t, s.Validate())

	s.MaxFret = 0
	assert.ErrorIs(t, s.Validate(), voicing.ErrBadMaxFret)

	s.MaxFret = voicing.DefaultMaxFret
	s.Qualities = nil
	assert.ErrorIs(t, s.Validate(), voicing.ErrNoQualities)
}
