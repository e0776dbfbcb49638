package fingering

import (
	"math"

	"github.com/katalvlaran/fretwork/voicing"
)

// Physical fingerboard model. Frets follow the logarithmic rule of
// eighteen: fret f sits at ScaleLength·0.5^(f/12) from the bridge, so
// fret spacing shrinks up the neck exactly as on a real instrument.
const (
	// ScaleLength is the vibrating string length in millimetres (a common
	// full-scale acoustic/classical value).
	ScaleLength = 650.0

	// StringSpacing is the fixed centre-to-centre distance between
	// neighbouring strings in millimetres.
	StringSpacing = 8.0
)

// FretPosition returns the distance, in millimetres, from the bridge to
// fret f on the modeled fingerboard.
func FretPosition(f int) float64 {
	return ScaleLength * math.Pow(0.5, float64(f)/12.0)
}

// PairDistance returns the Euclidean hand distance between two fretted
// contact points (fret, string index). When either side is a barre the
// lateral term vanishes: the barre lies across all strings, so only the
// along-neck component separates it from another finger.
func PairDistance(fretA, stringA int, fretB, stringB int, barre bool) float64 {
	dx := FretPosition(fretA) - FretPosition(fretB)
	if barre {
		return math.Abs(dx)
	}
	dy := float64(stringA-stringB) * StringSpacing

	return math.Hypot(dx, dy)
}

// Span is a (min, optimal, max) distance band for one finger pair, in
// millimetres. Below Min the fingers crowd, above Optimal they stretch,
// above Max the pair is physically unreachable.
type Span struct {
	Min     float64
	Optimal float64
	Max     float64
}

// pairSpans holds the asymmetric 4×4 threshold table indexed by
// [lower-1][higher-1]. The upper triangle is the normal orientation
// (higher-numbered finger at the higher or equal fret); the lower triangle
// holds the tighter inverted bands (higher-numbered finger crossed below).
// The storage asymmetry is private; Thresholds normalizes ordering.
var pairSpans = [voicing.FingerCountMax][voicing.FingerCountMax]Span{
	// finger 1 row: 1-2, 1-3, 1-4 normal.
	{{}, {Min: 10, Optimal: 35, Max: 80}, {Min: 20, Optimal: 65, Max: 115}, {Min: 30, Optimal: 95, Max: 140}},
	// finger 2 row: 2-1 inverted, 2-3, 2-4 normal.
	{{Min: 5, Optimal: 15, Max: 40}, {}, {Min: 8, Optimal: 33, Max: 70}, {Min: 18, Optimal: 65, Max: 110}},
	// finger 3 row: 3-1, 3-2 inverted, 3-4 normal.
	{{Min: 8, Optimal: 20, Max: 50}, {Min: 5, Optimal: 12, Max: 35}, {}, {Min: 8, Optimal: 32, Max: 66}},
	// finger 4 row: 4-1, 4-2, 4-3 inverted.
	{{Min: 10, Optimal: 25, Max: 55}, {Min: 8, Optimal: 18, Max: 45}, {Min: 4, Optimal: 10, Max: 30}, {}},
}

// Thresholds returns the distance band for the finger pair {a, b}.
// inverted selects the crossed orientation: the higher-numbered finger
// sitting at the strictly lower fret. Ordering of a and b is normalized
// internally; panics on a finger outside {1,2,3,4} or a == b (programmer
// error, not caller input).
func Thresholds(a, b voicing.Finger, inverted bool) Span {
	a.MustValid()
	b.MustValid()
	if a == b {
		panic("fingering: threshold lookup for identical fingers")
	}
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	if inverted {
		return pairSpans[hi-1][lo-1]
	}

	return pairSpans[lo-1][hi-1]
}

// Penalty bands over the min–max range and their weights.
const (
	heavyBandStart    = 0.9 // fraction of the min–max range
	moderateBandStart = 0.8

	heavyPenalty    = 90.0
	moderatePenalty = 40.0

	// Linear weights outside the comfort zone.
	belowMinWeight     = 2.0
	aboveOptimalWeight = 1.0
)

// spanPenalty scores one pair distance against its band.
// ok=false means the distance exceeds Max and the candidate must die.
func spanPenalty(d float64, s Span) (penalty float64, ok bool) {
	if d > s.Max {
		return 0, false
	}
	bandWidth := s.Max - s.Min
	switch {
	case d >= s.Min+heavyBandStart*bandWidth:
		return heavyPenalty, true
	case d >= s.Min+moderateBandStart*bandWidth:
		return moderatePenalty, true
	case d < s.Min:
		return (s.Min - d) * belowMinWeight, true
	case d > s.Optimal:
		return (d - s.Optimal) * aboveOptimalWeight, true
	default:
		return 0, true
	}
}
