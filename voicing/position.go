package voicing

import (
	"strconv"

	"github.com/katalvlaran/fretwork/pitch"
)

// StringState describes what happens on one string of a voicing.
type StringState uint8

const (
	// Muted — the string is not played at all.
	Muted StringState = iota

	// Open — the string sounds at fret 0 with no finger.
	Open

	// Fretted — the string is pressed at a fret ≥ 1.
	Fretted
)

// String implements fmt.Stringer for debug output.
func (s StringState) String() string {
	switch s {
	case Muted:
		return "muted"
	case Open:
		return "open"
	case Fretted:
		return "fretted"
	default:
		return "StringState(" + strconv.Itoa(int(s)) + ")"
	}
}

// Finger is a left-hand finger assignment: 0 means "no finger" (muted or
// open strings), 1..4 are index through pinky.
type Finger uint8

const (
	// FingerNone marks muted and open strings.
	FingerNone Finger = iota
	Finger1
	Finger2
	Finger3
	Finger4
)

// FingerCountMax is the size of the finger universe; a voicing needing more
// than four distinct fingers (after barre collapsing) is unplayable.
const FingerCountMax = 4

// MustValid panics when f is an assigned finger outside {1,2,3,4}.
// FingerNone is not a valid argument here: callers check assignment first.
func (f Finger) MustValid() {
	if f < Finger1 || f > Finger4 {
		panic(panicFingerRange)
	}
}

// StringPosition is the state of a single string inside one voicing.
// Sounding positions carry the resulting pitch and its quality relative to
// the chord root; Finger is assigned by the fingering optimizer and stays
// FingerNone for muted and open strings.
type StringPosition struct {
	State   StringState
	Fret    int
	Pitch   pitch.Pitch
	Quality pitch.Quality
	Finger  Finger
}

// Sounding reports whether the string produces a note (open or fretted).
func (p StringPosition) Sounding() bool { return p.State != Muted }

// MutedAt returns the muted placeholder position.
func MutedAt() StringPosition { return StringPosition{State: Muted} }

// OpenAt returns an open-string position sounding p with quality q.
func OpenAt(p pitch.Pitch, q pitch.Quality) StringPosition {
	return StringPosition{State: Open, Fret: 0, Pitch: p, Quality: q}
}

// FrettedAt returns a fretted position at fret f sounding p with quality q.
func FrettedAt(f int, p pitch.Pitch, q pitch.Quality) StringPosition {
	return StringPosition{State: Fretted, Fret: f, Pitch: p, Quality: q}
}
