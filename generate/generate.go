package generate

import (
	"context"

	"github.com/katalvlaran/fretwork/pitch"
	"github.com/katalvlaran/fretwork/voicing"
)

// WindowExtent is the width, in frets, of one scanning window — the span a
// relaxed hand covers without shifting position.
const WindowExtent = 4

// cancelCheckMask throttles context checks to one per 4096 tree nodes.
const cancelCheckMask = 4095

// Voicings enumerates all deduplicated, constraint-satisfying voicings for
// spec on tuning. Fingering and classifier fields are left unset; the
// returned order is deterministic (window-major, then lexicographic by the
// per-string candidate order).
//
// Contract:
//   - tuning must be non-empty; spec must pass Validate.
//   - ctx is consulted sparsely inside the tree walk; on cancellation the
//     walk stops and ctx.Err() is returned.
//
// Errors: pitch.ErrEmptyTuning, voicing sentinel set, context errors.
func Voicings(ctx context.Context, tuning pitch.Tuning, spec voicing.Spec) ([]*voicing.Voicing, error) {
	if err := tuning.Validate(); err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	e := &enumerator{
		ctx:       ctx,
		tuning:    tuning,
		spec:      spec,
		n:         tuning.Strings(),
		requested: spec.Requested(),
		seen:      make(map[voicing.ID]struct{}),
	}
	e.stack = make([]voicing.StringPosition, e.n)
	e.reach = make([]pitch.Set, e.n+1)

	if err := e.run(); err != nil {
		return nil, err
	}

	return dropDominatedMuted(e.accepted), nil
}

// enumerator holds all per-run search data. A dedicated engine struct (not
// closures) keeps hot-path state predictable and the walk testable.
type enumerator struct {
	ctx       context.Context
	tuning    pitch.Tuning
	spec      voicing.Spec
	n         int
	requested pitch.Set

	// Per-window candidate lists, rebuilt for each window start.
	candidates [][]voicing.StringPosition

	// reach[i] is the union of achievable qualities on strings i..n-1 for
	// the current window; an over-approximation that keeps the prune
	// admissible (it never discards a completable tuple).
	reach []pitch.Set

	// Current partial tuple.
	stack []voicing.StringPosition

	steps    int
	seen     map[voicing.ID]struct{}
	accepted []*voicing.Voicing
}

// run walks every scanning window in ascending order.
func (e *enumerator) run() error {
	lastStart := e.spec.MaxFret - WindowExtent + 1
	if lastStart < 1 {
		lastStart = 1
	}
	for start := 1; start <= lastStart; start++ {
		if err := e.ctx.Err(); err != nil {
			return err
		}
		e.buildCandidates(start)
		e.buildReach()
		if err := e.walk(0, false, 0); err != nil {
			return err
		}
	}

	return nil
}

// buildCandidates computes per-string candidate positions for the window
// [start, start+WindowExtent) clipped to the fingerboard. Candidate order
// is fixed: muted placeholder, open, then ascending frets.
func (e *enumerator) buildCandidates(start int) {
	if e.candidates == nil {
		e.candidates = make([][]voicing.StringPosition, e.n)
	}
	end := start + WindowExtent - 1
	if end > e.spec.MaxFret {
		end = e.spec.MaxFret
	}

	var (
		s, f int
		p    pitch.Pitch
		q    pitch.Quality
	)
	for s = 0; s < e.n; s++ {
		row := e.candidates[s][:0]
		if e.spec.AllowMuted {
			row = append(row, voicing.MutedAt())
		}
		if e.spec.AllowOpen {
			p = e.tuning.At(s, 0)
			q = pitch.QualityOf(e.spec.Root, p)
			if e.requested.Has(q) {
				row = append(row, voicing.OpenAt(p, q))
			}
		}
		for f = start; f <= end; f++ {
			p = e.tuning.At(s, f)
			q = pitch.QualityOf(e.spec.Root, p)
			if e.requested.Has(q) {
				row = append(row, voicing.FrettedAt(f, p, q))
			}
		}
		e.candidates[s] = row
	}
}

// buildReach fills reach[i] = union of candidate qualities on strings
// i..n-1 for the current window (right-to-left suffix union).
func (e *enumerator) buildReach() {
	e.reach[e.n] = 0
	for s := e.n - 1; s >= 0; s-- {
		u := e.reach[s+1]
		for _, c := range e.candidates[s] {
			if c.Sounding() {
				u = u.Add(c.Quality)
			}
		}
		e.reach[s] = u
	}
}

// walk extends the partial tuple at string depth. rootPlaced tracks whether
// a root-bearing note already exists on a lower-indexed string; covered is
// the sounding-quality union of the prefix.
func (e *enumerator) walk(depth int, rootPlaced bool, covered pitch.Set) error {
	e.steps++
	if e.steps&cancelCheckMask == 0 {
		if err := e.ctx.Err(); err != nil {
			return err
		}
	}

	if depth == e.n {
		e.accept(covered)

		return nil
	}

	// Early rejection: abandon the prefix once the mandatory set becomes
	// unreachable on the remaining strings.
	if !covered.Union(e.reach[depth]).Covers(e.spec.Mandatory) {
		return nil
	}

	for _, c := range e.candidates[depth] {
		if c.State == voicing.Muted {
			// The muted placeholder is only offered while no root-bearing
			// note exists below — this forces the root onto the lowest
			// feasible string.
			if rootPlaced {
				continue
			}
			e.stack[depth] = c
			if err := e.walk(depth+1, rootPlaced, covered); err != nil {
				return err
			}
			continue
		}
		e.stack[depth] = c
		placed := rootPlaced || c.Quality == pitch.Unison
		if err := e.walk(depth+1, placed, covered.Add(c.Quality)); err != nil {
			return err
		}
	}

	return nil
}

// accept materializes the current tuple as a Voicing when the mandatory
// set is covered and the canonical id is unseen.
func (e *enumerator) accept(covered pitch.Set) {
	if !covered.Covers(e.spec.Mandatory) {
		return
	}
	id := voicing.EncodeID(e.stack)
	if _, dup := e.seen[id]; dup {
		return
	}
	v, err := voicing.New(e.stack, e.n)
	if err != nil {
		// stack length is n by construction.
		panic(err)
	}
	e.seen[id] = struct{}{}
	e.accepted = append(e.accepted, v)
}

// grip identifies a chord shape for the dominance post-pass: the minimum
// fret plus the absolute height of the bass note.
type grip struct {
	fret int
	bass int
}

// dropDominatedMuted removes voicings that mute a string strictly inside
// an existing barre span with the same minimum fret and the same bass
// note: the muted variant is a strictly poorer realization of a grip the
// collection already holds as a barre of span ≥ 2.
func dropDominatedMuted(all []*voicing.Voicing) []*voicing.Voicing {
	barres := make(map[grip][]voicing.Barre)
	for _, v := range all {
		b, ok := v.BarreSpan()
		if !ok {
			continue
		}
		bass, _, ok := v.Bass()
		if !ok {
			continue
		}
		k := grip{fret: b.Fret, bass: bass.Pitch.Height()}
		barres[k] = append(barres[k], b)
	}
	if len(barres) == 0 {
		return all
	}

	kept := all[:0]
	for _, v := range all {
		if !dominated(v, barres) {
			kept = append(kept, v)
		}
	}

	return kept
}

// dominated reports whether v mutes a string strictly inside a known barre
// span sharing v's minimum fret and bass note.
func dominated(v *voicing.Voicing, barres map[grip][]voicing.Barre) bool {
	if v.MutedCount() == 0 {
		return false
	}
	if _, isBarre := v.BarreSpan(); isBarre {
		return false
	}
	bass, _, ok := v.Bass()
	if !ok {
		return false
	}
	spans := barres[grip{fret: v.MinFret(), bass: bass.Pitch.Height()}]
	for _, b := range spans {
		for i, p := range v.Positions {
			if p.State == voicing.Muted && i > b.Low && i < b.High {
				return true
			}
		}
	}

	return false
}
