package fingering_test

import (
	"testing"

	"github.com/katalvlaran/fretwork/fingering"
	"github.com/katalvlaran/fretwork/pitch"
	"github.com/katalvlaran/fretwork/voicing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// build assembles a voicing from per-string frets (-1 = muted) for root.
func build(t *testing.T, root pitch.Class, frets []int) *voicing.Voicing {
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
			positions[s] = voicing.OpenAt(p, pitch.QualityOf(root, p))
		default:
			p := g.At(s, f)
			positions[s] = voicing.FrettedAt(f, p, pitch.QualityOf(root, p))
		}
	}
	v, err := voicing.New(positions, g.Strings())
	require.NoError(t, err)

	return v
}

// TestOptimize_ZeroFingerVoicing: all-open and all-muted voicings bypass
// scoring entirely — score = naturalness = 0, difficulty Easy.
func TestOptimize_ZeroFingerVoicing(t *testing.T) {
	for _, frets := range [][]int{
		{0, 0, 0, 0, 0, 0},
		{-1, -1, -1, -1, -1, -1},
	} {
		v := build(t, pitch.E, frets)
		fingering.Optimize(v)

		assert.True(t, v.Fingering.Valid)
		assert.Zero(t, v.Fingering.Score)
		assert.Zero(t, v.Fingering.Naturalness)
		assert.Zero(t, v.Fingering.FingerCount)
		assert.Equal(t, voicing.Easy, v.Difficulty)
	}
}

// TestOptimize_OpenCMajor: x32010 gets the canonical 3-2-1 fingering in
// the Easy bucket.
func TestOptimize_OpenCMajor(t *testing.T) {
	v := build(t, pitch.C, []int{-1, 3, 2, 0, 1, 0})
	fingering.Optimize(v)

	require.True(t, v.Fingering.Valid)
	assert.Equal(t, voicing.Easy, v.Difficulty)
	assert.Equal(t, 3, v.Fingering.FingerCount)
	assert.False(t, v.Fingering.HasBarre)

	assert.Equal(t, voicing.Finger3, v.Positions[1].Finger, "fret 3 takes the ring finger")
	assert.Equal(t, voicing.Finger2, v.Positions[2].Finger, "fret 2 takes the middle finger")
	assert.Equal(t, voicing.Finger1, v.Positions[4].Finger, "fret 1 takes the index finger")
	assert.Equal(t, voicing.FingerNone, v.Positions[0].Finger)
	assert.Equal(t, voicing.FingerNone, v.Positions[3].Finger)
}

// TestOptimize_BarreFMajor: 133211 collapses the fret-1 strings into a
// first-finger barre and stays within four fingers.
func TestOptimize_BarreFMajor(t *testing.T) {
	v := build(t, pitch.F, []int{1, 3, 3, 2, 1, 1})
	fingering.Optimize(v)

	require.True(t, v.Fingering.Valid)
	require.True(t, v.Fingering.HasBarre)
	assert.Equal(t, 1, v.Fingering.Barre.Fret)
	assert.Equal(t, 0, v.Fingering.Barre.Low)
	assert.Equal(t, 5, v.Fingering.Barre.High)
	assert.Equal(t, 4, v.Fingering.FingerCount, "barre counts as one finger")

	assert.Equal(t, voicing.Finger1, v.Positions[0].Finger)
	assert.Equal(t, voicing.Finger1, v.Positions[4].Finger)
	assert.Equal(t, voicing.Finger1, v.Positions[5].Finger)
	for _, s := range []int{1, 2, 3} {
		assert.Greaterf(t, v.Positions[s].Finger, voicing.Finger1, "string %d plays above the barre", s)
	}
}

// TestOptimize_HalfDiminished: x2323x is playable with four fingers.
func TestOptimize_HalfDiminished(t *testing.T) {
	v := build(t, pitch.B, []int{-1, 2, 3, 2, 3, -1})
	fingering.Optimize(v)

	require.True(t, v.Fingering.Valid)
	assert.LessOrEqual(t, v.Fingering.FingerCount, 4)
	assert.NotEqual(t, voicing.Impossible, v.Difficulty)
}

// TestOptimize_PairwiseDistanceProperty: for playable voicings, every
// pairwise finger distance respects the inversion-aware maximum.
func TestOptimize_PairwiseDistanceProperty(t *testing.T) {
	voicings := []*voicing.Voicing{
		build(t, pitch.C, []int{-1, 3, 2, 0, 1, 0}),
		build(t, pitch.F, []int{1, 3, 3, 2, 1, 1}),
		build(t, pitch.B, []int{-1, 2, 3, 2, 3, -1}),
		build(t, pitch.G, []int{3, 2, 0, 0, 0, 3}),
	}
	for _, v := range voicings {
		fingering.Optimize(v)
		if !v.Fingering.Valid {
			continue
		}
		type c struct {
			str, fret int
			f         voicing.Finger
			barre     bool
		}
		var contacts []c
		for s, p := range v.Positions {
			if p.State == voicing.Fretted {
				isBarre := v.Fingering.HasBarre && p.Finger == voicing.Finger1
				contacts = append(contacts, c{str: s, fret: p.Fret, f: p.Finger, barre: isBarre})
			}
		}
		for i := 0; i < len(contacts); i++ {
			for j := i + 1; j < len(contacts); j++ {
				a, b := contacts[i], contacts[j]
				if a.f == b.f {
					continue
				}
				lo, hi := a, b
				if lo.f > hi.f {
					lo, hi = hi, lo
				}
				inverted := hi.fret < lo.fret
				d := fingering.PairDistance(a.fret, a.str, b.fret, b.str, a.barre || b.barre)
				max := fingering.Thresholds(a.f, b.f, inverted).Max
				assert.LessOrEqualf(t, d, max, "voicing %s pair %v-%v exceeds reach", v.ID, a.f, b.f)
			}
		}
	}
}

// TestOptimize_UnplayableDemand: more than four distinct fingers marks
// the voicing Impossible rather than erroring.
func TestOptimize_UnplayableDemand(t *testing.T) {
	// Five fretted strings on five different frets, no common minimum run:
	// no barre, demand 5 > 4.
	v := build(t, pitch.C, []int{3, 4, 5, 6, 7, -1})
	fingering.Optimize(v)

	assert.False(t, v.Fingering.Valid)
	assert.Equal(t, voicing.Impossible, v.Difficulty)
	assert.Equal(t, 5, v.Fingering.FingerCount)
	for _, f := range v.Fingering.Fingers {
		assert.Equal(t, voicing.FingerNone, f)
	}
}

// TestOptimize_Deterministic: the chosen fingering is a pure function of
// the voicing.
func TestOptimize_Deterministic(t *testing.T) {
	a := build(t, pitch.F, []int{1, 3, 3, 2, 1, 1})
	b := build(t, pitch.F, []int{1, 3, 3, 2, 1, 1})
	fingering.Optimize(a)
	fingering.Optimize(b)

	assert.Equal(t, a.Fingering, b.Fingering)
	assert.Equal(t, a.Difficulty, b.Difficulty)
}
