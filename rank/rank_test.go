package rank_test

import (
	"testing"

	"github.com/katalvlaran/fretwork/pitch"
	"github.com/katalvlaran/fretwork/rank"
	"github.com/katalvlaran/fretwork/voicing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var majorTriad = []pitch.Quality{pitch.Unison, pitch.MajorThird, pitch.PerfectFifth}

// build assembles a playable voicing from per-string frets (-1 = muted)
// with hand-set pipeline fields, bypassing the optimizer.
func build(t *testing.T, frets []int, d voicing.Difficulty, inversion int) *voicing.Voicing {
	t.Helper()
	g := pitch.StandardGuitar()
	require.Len(t, frets, g.Strings())
	positions := make([]voicing.StringPosition, len(frets))
	for s, f := range frets {
		switch {
		case f < 0:
			positions[s] = voicing.MutedAt()
		case f == 0:
			p := g.At(s, 0)
			positions[s] = voicing.OpenAt(p, pitch.QualityOf(pitch.C, p))
		default:
			p := g.At(s, f)
			positions[s] = voicing.FrettedAt(f, p, pitch.QualityOf(pitch.C, p))
		}
	}
	v, err := voicing.New(positions, g.Strings())
	require.NoError(t, err)
	v.Fingering = voicing.Fingering{Valid: true, FingerCount: v.FrettedCount()}
	v.Difficulty = d
	v.Inversion = inversion

	return v
}

// TestChain_FirstNonZeroWins: later stages only break ties, and Reversed
// flips a stage without consuming the tie.
func TestChain_FirstNonZeroWins(t *testing.T) {
	easyHigh := build(t, []int{-1, -1, -1, 5, 5, 5}, voicing.Easy, 0)
	easyLow := build(t, []int{-1, -1, -1, 2, 1, 0}, voicing.Easy, 0)
	hardLow := build(t, []int{-1, -1, -1, 2, 1, 0}, voicing.Hard, 0)

	cmp := rank.Chain([]rank.Stage{{Cmp: rank.ByDifficulty()}, {Cmp: rank.ByFret()}})
	assert.Negative(t, cmp(easyHigh, hardLow), "difficulty decides before fret")
	assert.Negative(t, cmp(easyLow, easyHigh), "fret breaks the difficulty tie")

	rev := rank.Chain([]rank.Stage{{Cmp: rank.ByDifficulty(), Reversed: true}, {Cmp: rank.ByFret()}})
	assert.Positive(t, rev(easyHigh, hardLow), "reversed stage flips the verdict")
	assert.Negative(t, rev(easyLow, easyHigh), "reversed stage still defers ties")
}

// TestApply_DefaultOrdering: easiest first, then lowest neck position.
func TestApply_DefaultOrdering(t *testing.T) {
	spec, err := voicing.NewSpec(pitch.C, majorTriad)
	require.NoError(t, err)

	hard := build(t, []int{-1, 3, 2, 2, 1, -1}, voicing.Hard, 0)
	easyHigh := build(t, []int{-1, -1, -1, 5, 5, 5}, voicing.Easy, 0)
	easyLow := build(t, []int{-1, 3, 2, 0, 1, 0}, voicing.Easy, 0)

	out := rank.Apply([]*voicing.Voicing{hard, easyHigh, easyLow}, spec, rank.DefaultStages())
	require.Len(t, out, 3)
	assert.Equal(t, easyLow.ID, out[0].ID)
	assert.Equal(t, easyHigh.ID, out[1].ID)
	assert.Equal(t, hard.ID, out[2].ID)
}

// TestKeep_Constraints walks every rejection branch independently.
func TestKeep_Constraints(t *testing.T) {
	base, err := voicing.NewSpec(pitch.C, majorTriad)
	require.NoError(t, err)

	t.Run("unplayable fingering", func(t *testing.T) {
		v := build(t, []int{-1, 3, 2, 0, 1, 0}, voicing.Easy, 0)
		v.Fingering.Valid = false
		assert.False(t, rank.Keep(v, base))
	})

	t.Run("difficulty ceiling", func(t *testing.T) {
		v := build(t, []int{-1, 3, 2, 0, 1, 0}, voicing.VeryHard, 0)
		assert.False(t, rank.Keep(v, base), "default ceiling is Hard")
		v.Difficulty = voicing.Hard
		assert.True(t, rank.Keep(v, base))
	})

	t.Run("fret ceiling", func(t *testing.T) {
		spec, err := voicing.NewSpec(pitch.C, majorTriad, voicing.WithMaxFret(3))
		require.NoError(t, err)
		v := build(t, []int{-1, -1, -1, 5, 5, 5}, voicing.Easy, 0)
		assert.False(t, rank.Keep(v, spec))
	})

	t.Run("barre permission", func(t *testing.T) {
		spec, err := voicing.NewSpec(pitch.C, majorTriad, voicing.WithoutBarre())
		require.NoError(t, err)
		v := build(t, []int{3, 5, 5, 5, -1, -1}, voicing.Medium, 0)
		v.Fingering.HasBarre = true
		assert.False(t, rank.Keep(v, spec))
		assert.True(t, rank.Keep(v, base), "barre allowed by default")
	})

	t.Run("inversion filter", func(t *testing.T) {
		spec, err := voicing.NewSpec(pitch.C, majorTriad, voicing.WithInversion(0))
		require.NoError(t, err)
		rootPos := build(t, []int{-1, 3, 2, 0, 1, 0}, voicing.Easy, 0)
		firstInv := build(t, []int{0, 3, 2, 0, 1, 0}, voicing.Easy, 1)
		assert.True(t, rank.Keep(rootPos, spec))
		assert.False(t, rank.Keep(firstInv, spec))
	})

	t.Run("highest-note filter", func(t *testing.T) {
		// x32010 tops out on the open high E, a major third over C.
		v := build(t, []int{-1, 3, 2, 0, 1, 0}, voicing.Easy, 0)
		third, err := voicing.NewSpec(pitch.C, majorTriad, voicing.WithHighest(pitch.MajorThird))
		require.NoError(t, err)
		fifth, err := voicing.NewSpec(pitch.C, majorTriad, voicing.WithHighest(pitch.PerfectFifth))
		require.NoError(t, err)
		assert.True(t, rank.Keep(v, third))
		assert.False(t, rank.Keep(v, fifth))
	})
}

// TestApply_MaxFretMonotonicity: lowering the ceiling below a voicing's
// barre fret removes it and never admits anything new.
func TestApply_MaxFretMonotonicity(t *testing.T) {
	barre5 := build(t, []int{5, 7, 7, 6, 5, 5}, voicing.Medium, 0)
	barre5.Fingering.HasBarre = true
	barre5.Fingering.FingerCount = 4
	open := build(t, []int{-1, 3, 2, 0, 1, 0}, voicing.Easy, 0)
	items := []*voicing.Voicing{barre5, open}

	wide, err := voicing.NewSpec(pitch.C, majorTriad, voicing.WithMaxFret(12))
	require.NoError(t, err)
	narrow, err := voicing.NewSpec(pitch.C, majorTriad, voicing.WithMaxFret(4))
	require.NoError(t, err)

	before := rank.Apply(items, wide, rank.DefaultStages())
	after := rank.Apply(items, narrow, rank.DefaultStages())
	require.Len(t, before, 2)
	require.Len(t, after, 1)
	assert.Equal(t, open.ID, after[0].ID)

	ids := make(map[voicing.ID]bool, len(before))
	for _, v := range before {
		ids[v.ID] = true
	}
	for _, v := range after {
		assert.True(t, ids[v.ID], "narrowing the ceiling must not admit new voicings")
	}
}

// TestApply_DoesNotMutateInput guards the fresh-slice contract.
func TestApply_DoesNotMutateInput(t *testing.T) {
	spec, err := voicing.NewSpec(pitch.C, majorTriad)
	require.NoError(t, err)

	a := build(t, []int{-1, -1, -1, 5, 5, 5}, voicing.Hard, 0)
	b := build(t, []int{-1, 3, 2, 0, 1, 0}, voicing.Easy, 0)
	items := []*voicing.Voicing{a, b}

	_ = rank.Apply(items, spec, rank.DefaultStages())
	assert.Equal(t, a.ID, items[0].ID)
	assert.Equal(t, b.ID, items[1].ID)
}
