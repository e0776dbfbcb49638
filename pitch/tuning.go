package pitch

import "errors"

// ErrEmptyTuning indicates that a Tuning with zero strings was supplied.
var ErrEmptyTuning = errors.New("pitch: tuning has no strings")

// Tuning is the ordered sequence of open-string pitches of a fretted
// instrument. Index 0 is the lowest (thickest) string. A Tuning is fixed
// for a whole generation run; the engine never mutates it.
type Tuning []Pitch

// StandardGuitar returns the standard 6-string tuning E2 A2 D3 G3 B3 E4.
func StandardGuitar() Tuning {
	return Tuning{
		{Class: E, Octave: 2},
		{Class: A, Octave: 2},
		{Class: D, Octave: 3},
		{Class: G, Octave: 3},
		{Class: B, Octave: 3},
		{Class: E, Octave: 4},
	}
}

// DropD returns the drop-D 6-string tuning D2 A2 D3 G3 B3 E4.
func DropD() Tuning {
	t := StandardGuitar()
	t[0] = Pitch{Class: D, Octave: 2}

	return t
}

// StandardUkulele returns the re-entrant 4-string tuning G4 C4 E4 A4.
func StandardUkulele() Tuning {
	return Tuning{
		{Class: G, Octave: 4},
		{Class: C, Octave: 4},
		{Class: E, Octave: 4},
		{Class: A, Octave: 4},
	}
}

// Strings returns the number of strings in t.
func (t Tuning) Strings() int { return len(t) }

// Validate checks that t can drive a generation run.
func (t Tuning) Validate() error {
	if len(t) == 0 {
		return ErrEmptyTuning
	}

	return nil
}

// At returns the sounding pitch of string s fretted at fret f.
// Fret 0 is the open string. Panics if s is out of range (programmer error;
// string indices are produced by the engine itself, never by user input).
func (t Tuning) At(s, f int) Pitch { return t[s].Transpose(f) }
