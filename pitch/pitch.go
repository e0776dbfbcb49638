package pitch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadClassName is returned by ParseClass for an unrecognized spelling.
var ErrBadClassName = errors.New("pitch: unknown pitch class name")

// semitonesPerOctave is the size of the chromatic universe; every interval
// and pitch-class computation in the engine is carried out mod 12.
const semitonesPerOctave = 12

// Class is one of the twelve chromatic pitch classes, C == 0 .. B == 11.
type Class uint8

// The twelve chromatic pitch classes. Sharp spellings are canonical;
// flat enharmonics are intentionally not modeled (naming is out of scope).
const (
	C Class = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

// classNames maps Class to its canonical sharp spelling.
var classNames = [semitonesPerOctave]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// String returns the canonical sharp spelling ("C", "C#", ... "B").
func (c Class) String() string {
	if int(c) >= len(classNames) {
		return fmt.Sprintf("Class(%d)", uint8(c))
	}

	return classNames[c]
}

// Valid reports whether c is one of the twelve chromatic classes.
func (c Class) Valid() bool { return c < semitonesPerOctave }

// flatAliases maps flat spellings onto their sharp classes for parsing.
var flatAliases = map[string]Class{
	"Db": CSharp, "Eb": DSharp, "Gb": FSharp, "Ab": GSharp, "Bb": ASharp,
}

// ParseClass parses a pitch-class name. Sharp and flat spellings are both
// accepted ("F#", "Gb", "bb"); the canonical sharp class is returned.
//
// Errors: ErrBadClassName.
func ParseClass(name string) (Class, error) {
	if name == "" {
		return 0, ErrBadClassName
	}
	norm := strings.ToUpper(name[:1]) + name[1:]
	for i, n := range classNames {
		if n == norm {
			return Class(i), nil
		}
	}
	if c, ok := flatAliases[norm]; ok {
		return c, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrBadClassName, name)
}

// Pitch is a concrete sounding note: a pitch class at a scientific octave.
// E2 (the low string of a standard guitar) is Pitch{Class: E, Octave: 2}.
type Pitch struct {
	Class  Class
	Octave int
}

// Height returns the absolute semitone height of p, with C0 == 0.
// Heights are what the classifier averages and what interval arithmetic
// subtracts; two pitches are enharmonically identical iff heights match.
func (p Pitch) Height() int { return p.Octave*semitonesPerOctave + int(p.Class) }

// Transpose returns p raised by n semitones (n may be negative).
// Fretting string s at fret f is exactly s.Transpose(f).
func (p Pitch) Transpose(n int) Pitch {
	h := p.Height() + n
	oct := h / semitonesPerOctave
	cls := h % semitonesPerOctave
	if cls < 0 {
		cls += semitonesPerOctave
		oct--
	}

	return Pitch{Class: Class(cls), Octave: oct}
}

// String renders scientific pitch notation, e.g. "E2", "A#3".
func (p Pitch) String() string { return fmt.Sprintf("%s%d", p.Class, p.Octave) }
