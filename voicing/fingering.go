package voicing

// Barre describes a first-finger barre: one finger covering every string
// from Low to High (inclusive, string indices) at Fret.
type Barre struct {
	Fret int
	Low  int
	High int
}

// Span returns the number of strings the barre covers.
func (b Barre) Span() int { return b.High - b.Low + 1 }

// Contains reports whether string index s lies inside the barre span.
func (b Barre) Contains(s int) bool { return s >= b.Low && s <= b.High }

// Fingering is the canonical finger assignment chosen for one voicing:
// per-string fingers (FingerNone on muted/open strings), the detected
// barre if any, the raw hand-span score, the naturalness penalty and a
// validity flag. FingerCount counts distinct fingers in use — a barre
// counts as one finger regardless of how many strings it covers.
type Fingering struct {
	Fingers     []Finger
	HasBarre    bool
	Barre       Barre
	FingerCount int
	Score       float64
	Naturalness float64
	Valid       bool
}
