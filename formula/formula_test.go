package formula_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/fretwork/formula"
	"github.com/katalvlaran/fretwork/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault_CommonFormulas pins a few built-in recipes and their order.
func TestDefault_CommonFormulas(t *testing.T) {
	cat := formula.Default()

	maj, err := cat.Qualities("maj")
	require.NoError(t, err)
	assert.Equal(t, []pitch.Quality{pitch.Unison, pitch.MajorThird, pitch.PerfectFifth}, maj)

	halfDim, err := cat.Qualities("m7b5")
	require.NoError(t, err)
	assert.Equal(t,
		[]pitch.Quality{pitch.Unison, pitch.MinorThird, pitch.DiminishedFifth, pitch.MinorSeventh},
		halfDim)
}

// TestDefault_UnknownName returns the sentinel.
func TestDefault_UnknownName(t *testing.T) {
	_, err := formula.Default().Qualities("nope13")
	assert.ErrorIs(t, err, formula.ErrUnknownFormula)
}

// TestLoad_OverlayWinsOnCollision verifies user catalogs shadow built-ins
// while other built-ins survive the merge.
func TestLoad_OverlayWinsOnCollision(t *testing.T) {
	src := strings.NewReader("maj: [\"1\", \"3\"]\npower: [\"1\", \"5\"]\n")
	cat, err := formula.Load(src)
	require.NoError(t, err)

	maj, err := cat.Qualities("maj")
	require.NoError(t, err)
	assert.Equal(t, []pitch.Quality{pitch.Unison, pitch.MajorThird}, maj, "user entry shadows built-in")

	power, err := cat.Qualities("power")
	require.NoError(t, err)
	assert.Equal(t, []pitch.Quality{pitch.Unison, pitch.PerfectFifth}, power)

	_, err = cat.Qualities("m7")
	assert.NoError(t, err, "untouched built-ins survive")
}

// TestParse_BadToken rejects unknown interval tokens.
func TestParse_BadToken(t *testing.T) {
	_, err := formula.Parse([]byte("weird: [\"1\", \"b9th\"]\n"))
	assert.ErrorIs(t, err, formula.ErrBadToken)
}

// TestParse_EmptyFormula rejects empty recipes.
func TestParse_EmptyFormula(t *testing.T) {
	_, err := formula.Parse([]byte("hollow: []\n"))
	assert.ErrorIs(t, err, formula.ErrEmptyFormula)
}

// TestNames_SortedDeterministic guards deterministic listings.
func TestNames_SortedDeterministic(t *testing.T) {
	names := formula.Default().Names()
	require.NotEmpty(t, names)
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "maj7")
}

// TestQualities_ReturnsCopy guards catalog immutability.
func TestQualities_ReturnsCopy(t *testing.T) {
	cat := formula.Default()
	a, err := cat.Qualities("maj")
	require.NoError(t, err)
	a[0] = pitch.MajorSeventh

	b, err := cat.Qualities("maj")
	require.NoError(t, err)
	assert.Equal(t, pitch.Unison, b[0], "mutating a result must not poison the catalog")
}
