package fingering

import (
	"math"

	"github.com/katalvlaran/fretwork/voicing"
)

// Naturalness weights: the playing-order walk charges for fret/finger
// delta mismatch and for crossed fingers sharing a fret outside a barre.
const (
	deltaMismatchWeight = 2.0
	invertedPairPenalty = 4.0
)

// contact is one committed finger on the fingerboard: a fretted string,
// its fret, the assigned finger, and whether the finger is the barre.
type contact struct {
	str    int
	fret   int
	finger voicing.Finger
	barre  bool
}

// Optimize computes and installs the canonical fingering and difficulty of
// v. It is the final step of voicing construction: after Optimize the
// voicing is read-only.
//
// Contract:
//   - v.Positions carry final states/frets (generator output).
//   - Zero-finger voicings (all open/muted) bypass scoring: score and
//     naturalness are 0 and the difficulty is Easy.
//   - A voicing with no valid fingering is NOT an error: it is flagged
//     unplayable with maximal score and Impossible difficulty, and left
//     for the ranking/filter stage to surface or exclude.
//
// Complexity: O(P · k²) per voicing for P candidate orders and k fretted
// positions; P ≤ 24 by the fixed finger universe.
func Optimize(v *voicing.Voicing) {
	fingers := make([]voicing.Finger, len(v.Positions))

	var fretted []int
	for i, p := range v.Positions {
		if p.State == voicing.Fretted {
			fretted = append(fretted, i)
		}
	}
	if len(fretted) == 0 {
		v.Fingering = voicing.Fingering{Fingers: fingers, Valid: true}
		v.Difficulty = voicing.Easy

		return
	}

	// Barre collapsing: every minimum-fret string the barre covers is
	// finger 1; only the strings above it need fingers from {2,3,4}.
	barre, hasBarre := v.BarreSpan()
	var (
		free   []int
		demand int
		pool   = fullPool
	)
	if hasBarre {
		for _, s := range fretted {
			if barre.Contains(s) && v.Positions[s].Fret == barre.Fret {
				continue
			}
			free = append(free, s)
		}
		demand = 1 + len(free)
		pool = barrePool
	} else {
		free = fretted
		demand = len(fretted)
	}

	if demand > voicing.FingerCountMax {
		markUnplayable(v, fingers, demand)

		return
	}

	var (
		found     bool
		bestNat   float64
		bestScore float64
		bestHigh  int
		bestOrder []voicing.Finger
	)
	for _, order := range Orders(pool, len(free)) {
		contacts := buildContacts(v, barre, hasBarre, free, order)
		if !orderConsistent(contacts) || !rootWindowOK(contacts) {
			continue
		}
		score, ok := spanScore(contacts)
		if !ok {
			continue
		}
		nat := naturalness(contacts)
		high := highestFinger(contacts)
		if !found || less(nat, score, high, bestNat, bestScore, bestHigh) {
			found = true
			bestNat, bestScore, bestHigh, bestOrder = nat, score, high, order
		}
	}

	if !found {
		markUnplayable(v, fingers, demand)

		return
	}

	// Commit the winner into per-string fingers and position assignments.
	for _, c := range buildContacts(v, barre, hasBarre, free, bestOrder) {
		fingers[c.str] = c.finger
		v.Positions[c.str].Finger = c.finger
	}
	v.Fingering = voicing.Fingering{
		Fingers:     fingers,
		HasBarre:    hasBarre,
		Barre:       barre,
		FingerCount: demand,
		Score:       bestScore,
		Naturalness: bestNat,
		Valid:       true,
	}
	v.Difficulty = voicing.DifficultyFromScore(bestScore)
}

// markUnplayable flags a voicing for which no valid fingering exists.
func markUnplayable(v *voicing.Voicing, fingers []voicing.Finger, demand int) {
	v.Fingering = voicing.Fingering{
		Fingers:     fingers,
		FingerCount: demand,
		Score:       math.MaxFloat64,
		Valid:       false,
	}
	v.Difficulty = voicing.Impossible
}

// buildContacts assembles the string-ascending contact list for one
// candidate order: barre-covered minimum-fret strings carry finger 1,
// free strings take order entries in string order.
func buildContacts(v *voicing.Voicing, barre voicing.Barre, hasBarre bool, free []int, order []voicing.Finger) []contact {
	contacts := make([]contact, 0, len(free)+barreWidth(barre, hasBarre))
	next := 0
	for s, p := range v.Positions {
		if p.State != voicing.Fretted {
			continue
		}
		if hasBarre && barre.Contains(s) && p.Fret == barre.Fret {
			contacts = append(contacts, contact{str: s, fret: p.Fret, finger: voicing.Finger1, barre: true})
			continue
		}
		contacts = append(contacts, contact{str: s, fret: p.Fret, finger: order[next]})
		next++
	}

	return contacts
}

// barreWidth returns the number of strings the barre presses directly.
func barreWidth(b voicing.Barre, has bool) int {
	if !has {
		return 0
	}

	return b.Span()
}

// orderConsistent checks the string-visitation walk: an increasing finger
// index must not coincide with a decreasing fret, and vice versa.
func orderConsistent(contacts []contact) bool {
	for i := 1; i < len(contacts); i++ {
		df := contacts[i].fret - contacts[i-1].fret
		dg := int(contacts[i].finger) - int(contacts[i-1].finger)
		if df > 0 && dg < 0 {
			return false
		}
		if df < 0 && dg > 0 {
			return false
		}
	}

	return true
}

// rootWindowOK enforces the root-relative permission rule: relative to the
// first assigned (root) finger's fret, a higher-numbered finger may never
// sit below it and a lower-numbered finger may never sit above it — in
// particular, finger 4 never sits below the root finger's fret.
func rootWindowOK(contacts []contact) bool {
	root := contacts[0]
	for _, c := range contacts[1:] {
		if c.finger > root.finger && c.fret < root.fret {
			return false
		}
		if c.finger < root.finger && c.fret > root.fret {
			return false
		}
	}

	return true
}

// spanScore sums the pairwise span penalties; ok=false means some pair
// exceeds its maximum reach and the candidate must be discarded.
func spanScore(contacts []contact) (score float64, ok bool) {
	var (
		i, j int
		a, b contact
	)
	for i = 0; i < len(contacts); i++ {
		for j = i + 1; j < len(contacts); j++ {
			a, b = contacts[i], contacts[j]
			if a.finger == b.finger {
				// Both under the barre: one physical finger, no span.
				continue
			}
			inverted := isInverted(a, b)
			d := PairDistance(a.fret, a.str, b.fret, b.str, a.barre || b.barre)
			p, fits := spanPenalty(d, Thresholds(a.finger, b.finger, inverted))
			if !fits {
				return 0, false
			}
			score += p
		}
	}

	return score, true
}

// isInverted reports whether the higher-numbered finger of the pair sits
// at the strictly lower fret.
func isInverted(a, b contact) bool {
	if a.finger > b.finger {
		a, b = b, a
	}

	return b.fret < a.fret
}

// naturalness walks fingers in playing order and charges for fret/finger
// delta mismatch plus same-fret inverted pairs outside the barre.
func naturalness(contacts []contact) float64 {
	var pen float64
	for i := 1; i < len(contacts); i++ {
		prev, cur := contacts[i-1], contacts[i]
		df := cur.fret - prev.fret
		dg := int(cur.finger) - int(prev.finger)
		pen += math.Abs(float64(df-dg)) * deltaMismatchWeight
		if df == 0 && dg < 0 && !(prev.barre && cur.barre) {
			pen += invertedPairPenalty
		}
	}

	return pen
}

// highestFinger returns the largest finger number in use.
func highestFinger(contacts []contact) int {
	var hi int
	for _, c := range contacts {
		if int(c.finger) > hi {
			hi = int(c.finger)
		}
	}

	return hi
}

// less orders candidates by (naturalness, score, highest finger) ascending.
func less(nat, score float64, high int, bNat, bScore float64, bHigh int) bool {
	if nat != bNat {
		return nat < bNat
	}
	if score != bScore {
		return score < bScore
	}

	return high < bHigh
}
