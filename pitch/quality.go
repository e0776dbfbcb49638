package pitch

import "fmt"

// Quality is an interval, mod 12 semitones, of a note relative to the chord
// root. Unison == 0 .. MajorSeventh == 11. Qualities are the currency of the
// whole engine: candidate frets are kept or discarded by whether their
// resulting Quality belongs to the requested chord.
type Quality uint8

// The twelve root-relative qualities. Enharmonic aliases that matter for
// chord formulas (AugmentedFifth/MinorSixth, DiminishedSeventh/MajorSixth)
// share a value by construction.
const (
	Unison Quality = iota
	MinorSecond
	MajorSecond
	MinorThird
	MajorThird
	PerfectFourth
	DiminishedFifth
	PerfectFifth
	MinorSixth
	MajorSixth
	MinorSeventh
	MajorSeventh
)

// Enharmonic formula aliases.
const (
	AugmentedFifth    = MinorSixth
	DiminishedSeventh = MajorSixth
	SuspendedFourth   = PerfectFourth
	SuspendedSecond   = MajorSecond
	AugmentedEleventh = DiminishedFifth
	MajorNinth        = MajorSecond
	MinorNinth        = MinorSecond
	MajorThirteenth   = MajorSixth
)

// qualityNames maps Quality to a short display token.
var qualityNames = [semitonesPerOctave]string{
	"1", "b2", "2", "b3", "3", "4", "b5", "5", "#5", "6", "b7", "7",
}

// String returns a compact figured token ("1", "b3", "5", "b7", ...).
func (q Quality) String() string {
	if int(q) >= len(qualityNames) {
		return fmt.Sprintf("Quality(%d)", uint8(q))
	}

	return qualityNames[q]
}

// Valid reports whether q is inside the chromatic universe.
func (q Quality) Valid() bool { return q < semitonesPerOctave }

// QualityOf returns the quality of p relative to the root pitch class:
// the semitone distance from root to p's class, mod 12.
func QualityOf(root Class, p Pitch) Quality {
	d := (int(p.Class) - int(root)) % semitonesPerOctave
	if d < 0 {
		d += semitonesPerOctave
	}

	return Quality(d)
}

// Set is a bitmask over the twelve qualities. It is the unit of the
// generator's reachability pruning: per-string achievable qualities are
// precomputed as Sets and unioned right-to-left.
type Set uint16

// NewSet builds a Set from the given qualities.
func NewSet(qs ...Quality) Set {
	var s Set
	for _, q := range qs {
		s |= 1 << q
	}

	return s
}

// Has reports whether q is a member of s.
func (s Set) Has(q Quality) bool { return s&(1<<q) != 0 }

// Add returns s with q included.
func (s Set) Add(q Quality) Set { return s | 1<<q }

// Union returns the union of s and t.
func (s Set) Union(t Set) Set { return s | t }

// Covers reports whether every member of t is also in s.
func (s Set) Covers(t Set) bool { return s&t == t }

// Empty reports whether s has no members.
func (s Set) Empty() bool { return s == 0 }
