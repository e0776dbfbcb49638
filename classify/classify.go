package classify

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/fretwork/pitch"
	"github.com/katalvlaran/fretwork/voicing"
)

// Bucket counts and the empirical height ranges backing them. The
// brightness range spans the lowest open string of a standard-tuned
// guitar (E2, height 28) to the highest encodable fretted note
// (E4 + fret 15, height 67); the contrast ceiling of 15 semitones of
// population deviation is past anything a six-string voicing produces.
const (
	BrightnessBuckets = 8
	ContrastBuckets   = 5

	brightnessFloor   = 28.0
	brightnessCeiling = 67.0
	contrastCeiling   = 15.0
)

// dropPatternSize is the number of lowest sounding notes the drop-2
// interleave test inspects.
const dropPatternSize = 4

// Classify derives and installs the inversion index, the drop-2 flag and
// the brightness/contrast buckets of v. qualities is the ordered
// requested-quality list of the generating chord specification; its order
// defines the inversion indexing and the close-position ordering the
// drop-2 test reads.
//
// Contract:
//   - v.Positions carry final states and pitches (generator output).
//   - Classify writes only the classifier-owned fields of v; it never
//     touches positions, fingering or difficulty.
//   - The degenerate all-muted voicing classifies as inversion -1 with
//     zero buckets.
//
// Complexity: O(n log n) for n sounding notes (the drop-2 index sort).
func Classify(v *voicing.Voicing, qualities []pitch.Quality) {
	v.Inversion = Inversion(v, qualities)
	v.Drop2 = Drop2(v, qualities)
	v.Brightness, v.Contrast = Buckets(v)
}

// Inversion returns the index of the bass note's quality within the
// ordered quality list: 0 for root position. Returns -1 when the voicing
// has no sounding note or the bass quality was never requested.
func Inversion(v *voicing.Voicing, qualities []pitch.Quality) int {
	bass, _, ok := v.Bass()
	if !ok {
		return -1
	}
	for i, q := range qualities {
		if q == bass.Quality {
			return i
		}
	}

	return -1
}

// Drop2 reports whether the four lowest sounding notes realize a drop-2
// arrangement of the ordered quality list. A close-position stack of four
// listed qualities reads bottom-to-top as list indices (a, b, c, d) with
// a < b < c < d; dropping the second-highest note an octave yields the
// order (c, a, b, d), and that interleave is exactly what this test
// matches. Voicings with fewer than four sounding notes, repeated
// qualities among the four, or an unlisted quality never match.
//
// The test deliberately ignores sounding notes above the lowest four: for
// 5+ note voicings it stays a heuristic on the chord's foundation.
func Drop2(v *voicing.Voicing, qualities []pitch.Quality) bool {
	idx := make([]int, 0, dropPatternSize)
	for _, p := range v.Positions {
		if !p.Sounding() {
			continue
		}
		i := indexOf(qualities, p.Quality)
		if i < 0 {
			return false
		}
		idx = append(idx, i)
		if len(idx) == dropPatternSize {
			break
		}
	}
	if len(idx) < dropPatternSize {
		return false
	}

	ranked := make([]int, dropPatternSize)
	copy(ranked, idx)
	sort.Ints(ranked)
	for i := 1; i < dropPatternSize; i++ {
		if ranked[i] == ranked[i-1] {
			return false
		}
	}

	// Bottom-to-top: (third-smallest, smallest, second-smallest, largest).
	return idx[0] == ranked[2] && idx[1] == ranked[0] && idx[2] == ranked[1] && idx[3] == ranked[3]
}

// Buckets returns the brightness and contrast buckets of v: the mean and
// the population standard deviation of the sounding pitch heights, each
// normalized against its fixed empirical range. Both are 0 for a voicing
// with no sounding note.
func Buckets(v *voicing.Voicing) (brightness, contrast int) {
	var heights []float64
	for _, p := range v.Positions {
		if p.Sounding() {
			heights = append(heights, float64(p.Pitch.Height()))
		}
	}
	if len(heights) == 0 {
		return 0, 0
	}

	mean := stat.Mean(heights, nil)
	dev := stat.PopStdDev(heights, nil)
	brightness = bucket(mean, brightnessFloor, brightnessCeiling, BrightnessBuckets)
	contrast = bucket(dev, 0, contrastCeiling, ContrastBuckets)

	return brightness, contrast
}

// bucket maps value onto [0, n) over the [floor, ceiling] range, clamping
// out-of-range values to the edge buckets.
func bucket(value, floor, ceiling float64, n int) int {
	if value <= floor {
		return 0
	}
	if value >= ceiling {
		return n - 1
	}
	b := int((value - floor) / (ceiling - floor) * float64(n))
	if b >= n {
		b = n - 1
	}

	return b
}

// indexOf returns the position of q in the ordered list, or -1.
func indexOf(qualities []pitch.Quality, q pitch.Quality) int {
	for i, c := range qualities {
		if c == q {
			return i
		}
	}

	return -1
}
