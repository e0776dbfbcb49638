package voicing

import "github.com/katalvlaran/fretwork/pitch"

// Voicing is one concrete placement of a chord across all strings:
// exactly one StringPosition per string, a canonical id, and — once the
// pipeline has run — exactly one Fingering plus classifier-derived fields.
// A Voicing is built once and thereafter read-only.
type Voicing struct {
	Positions []StringPosition
	ID        ID

	// Set by the fingering optimizer.
	Fingering  Fingering
	Difficulty Difficulty

	// Set by the classifier.
	Inversion  int
	Drop2      bool
	Brightness int
	Contrast   int
}

// New assembles a voicing from a full position array and derives its
// canonical id. strings is the tuning's string count; a mismatched array
// is a configuration error, never silently padded.
func New(positions []StringPosition, strings int) (*Voicing, error) {
	if len(positions) != strings {
		return nil, ErrStringCountMismatch
	}
	ps := make([]StringPosition, len(positions))
	copy(ps, positions)

	return &Voicing{Positions: ps, ID: EncodeID(ps)}, nil
}

// SoundingCount returns the number of strings producing a note.
func (v *Voicing) SoundingCount() int {
	var n int
	for _, p := range v.Positions {
		if p.Sounding() {
			n++
		}
	}

	return n
}

// OpenCount returns the number of open strings.
func (v *Voicing) OpenCount() int {
	var n int
	for _, p := range v.Positions {
		if p.State == Open {
			n++
		}
	}

	return n
}

// MutedCount returns the number of muted strings.
func (v *Voicing) MutedCount() int { return len(v.Positions) - v.SoundingCount() }

// FrettedCount returns the number of sounding, non-open positions — the
// raw demand on the hand before barre collapsing.
func (v *Voicing) FrettedCount() int {
	var n int
	for _, p := range v.Positions {
		if p.State == Fretted {
			n++
		}
	}

	return n
}

// MinFret returns the lowest fret among fretted positions, or 0 when the
// voicing has no fretted string.
func (v *Voicing) MinFret() int {
	min := 0
	for _, p := range v.Positions {
		if p.State != Fretted {
			continue
		}
		if min == 0 || p.Fret < min {
			min = p.Fret
		}
	}

	return min
}

// MaxFret returns the highest fret among fretted positions, or 0 when the
// voicing has no fretted string.
func (v *Voicing) MaxFret() int {
	var max int
	for _, p := range v.Positions {
		if p.State == Fretted && p.Fret > max {
			max = p.Fret
		}
	}

	return max
}

// Bass returns the lowest-indexed sounding position and its string index,
// or ok=false for the degenerate all-muted voicing.
func (v *Voicing) Bass() (p StringPosition, idx int, ok bool) {
	for i, sp := range v.Positions {
		if sp.Sounding() {
			return sp, i, true
		}
	}

	return StringPosition{}, 0, false
}

// Qualities returns the union of root-relative qualities over sounding
// positions as a bitmask.
func (v *Voicing) Qualities() pitch.Set {
	var s pitch.Set
	for _, p := range v.Positions {
		if p.Sounding() {
			s = s.Add(p.Quality)
		}
	}

	return s
}
