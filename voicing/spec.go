package voicing

import "github.com/katalvlaran/fretwork/pitch"

// Defaults — single source of truth for Spec zero-policy behavior.
const (
	// DefaultMaxFret is the default fret ceiling for generation.
	DefaultMaxFret = 15

	// DefaultMaxDifficulty is the default playability ceiling surfaced by
	// the ranking filter.
	DefaultMaxDifficulty = Hard

	// anyConstraint marks an unconstrained filter dimension.
	anyConstraint = -1
)

// Filter optionally constrains the final collection beyond the numeric
// ceilings: a required inversion index and/or a required quality for the
// highest sounding note. A value of -1 (the NewSpec default) leaves the
// dimension unconstrained.
type Filter struct {
	// Inversion is the required index of the bass quality within the
	// Spec's ordered quality list (0 = root position), or -1 for any.
	Inversion int

	// Highest is the required quality of the highest sounding note as an
	// int-coded pitch.Quality, or -1 for any.
	Highest int
}

// Unconstrained reports whether the filter passes every voicing.
func (f Filter) Unconstrained() bool {
	return f.Inversion == anyConstraint && f.Highest == anyConstraint
}

// Spec is the full chord specification driving one generation run: the
// root pitch class, the ordered requested qualities split into mandatory
// and optional sets, numeric constraints, allow-flags and the optional
// voicing filter. Any change to a Spec means full recomputation — the
// engine never mutates collections incrementally.
type Spec struct {
	Root pitch.Class

	// Qualities is the ordered requested-quality list. Its order is
	// semantic: the classifier's inversion index is a position in this
	// list, and the drop-2 test reads it as the close-position ordering.
	Qualities []pitch.Quality

	// Mandatory and Optional partition Qualities per the promotion rule:
	// every requested quality is mandatory except the perfect fifth, which
	// demotes to optional when any seventh is requested.
	Mandatory pitch.Set
	Optional  pitch.Set

	MaxFret       int
	MaxDifficulty Difficulty

	AllowOpen  bool
	AllowMuted bool
	AllowBarre bool

	Filter Filter
}

// Option mutates a Spec during construction. Constructors MUST panic only
// on nonsensical values (programmer error); user-level validation happens
// in NewSpec / Validate with sentinel errors.
type Option func(*Spec)

// WithMaxFret caps generation at fret n. Panics if n is outside
// [1, MaxPlayableFret]; the fingerboard bound is fixed by the id codec.
func WithMaxFret(n int) Option {
	if n < 1 || n > MaxPlayableFret {
		panic(ErrBadMaxFret.Error())
	}

	return func(s *Spec) { s.MaxFret = n }
}

// WithMaxDifficulty sets the playability ceiling enforced by the ranking
// filter stage.
func WithMaxDifficulty(d Difficulty) Option {
	return func(s *Spec) { s.MaxDifficulty = d }
}

// WithoutOpen disables open-string candidates.
func WithoutOpen() Option { return func(s *Spec) { s.AllowOpen = false } }

// WithoutMuted disables muted-string placeholders.
func WithoutMuted() Option { return func(s *Spec) { s.AllowMuted = false } }

// WithoutBarre removes barre voicings in the ranking filter stage.
func WithoutBarre() Option { return func(s *Spec) { s.AllowBarre = false } }

// WithInversion requires the bass note's quality to sit at index i of the
// ordered quality list (0 = root position).
func WithInversion(i int) Option { return func(s *Spec) { s.Filter.Inversion = i } }

// WithHighest requires the highest sounding note to carry quality q.
func WithHighest(q pitch.Quality) Option {
	return func(s *Spec) { s.Filter.Highest = int(q) }
}

// NewSpec validates the root and the ordered quality list, applies the
// mandatory/optional promotion rule and the supplied options, and returns
// a ready-to-run Spec.
//
// Contract:
//   - root must be a chromatic pitch class.
//   - qualities must be non-empty, in range, and free of duplicates
//     (the list doubles as the inversion index).
//
// Errors: ErrBadRoot, ErrNoQualities, ErrQualityOutOfRange,
// ErrDuplicateQuality.
func NewSpec(root pitch.Class, qualities []pitch.Quality, opts ...Option) (Spec, error) {
	s := Spec{
		Root:          root,
		MaxFret:       DefaultMaxFret,
		MaxDifficulty: DefaultMaxDifficulty,
		AllowOpen:     true,
		AllowMuted:    true,
		AllowBarre:    true,
		Filter:        Filter{Inversion: anyConstraint, Highest: anyConstraint},
	}
	if !root.Valid() {
		return Spec{}, ErrBadRoot
	}
	if len(qualities) == 0 {
		return Spec{}, ErrNoQualities
	}

	var seen pitch.Set
	s.Qualities = make([]pitch.Quality, len(qualities))
	for i, q := range qualities {
		if !q.Valid() {
			return Spec{}, ErrQualityOutOfRange
		}
		if seen.Has(q) {
			return Spec{}, ErrDuplicateQuality
		}
		seen = seen.Add(q)
		s.Qualities[i] = q
	}

	s.Mandatory, s.Optional = partition(s.Qualities)
	for _, opt := range opts {
		opt(&s)
	}

	return s, nil
}

// partition splits the ordered quality list into mandatory and optional
// sets. The fixed promotion rule: the perfect fifth becomes optional when
// any seventh (minor or major) is requested — seventh chords routinely
// omit the fifth on a fretted instrument.
func partition(qualities []pitch.Quality) (mandatory, optional pitch.Set) {
	all := pitch.NewSet(qualities...)
	hasSeventh := all.Has(pitch.MinorSeventh) || all.Has(pitch.MajorSeventh)
	for _, q := range qualities {
		if q == pitch.PerfectFifth && hasSeventh {
			optional = optional.Add(q)
			continue
		}
		mandatory = mandatory.Add(q)
	}

	return mandatory, optional
}

// Requested returns the union of mandatory and optional qualities.
func (s Spec) Requested() pitch.Set { return s.Mandatory.Union(s.Optional) }

// Validate re-checks a Spec that was assembled by hand (struct literal)
// rather than through NewSpec. The engine fails fast on the first
// violation before any generation work starts.
func (s Spec) Validate() error {
	if !s.Root.Valid() {
		return ErrBadRoot
	}
	if len(s.Qualities) == 0 {
		return ErrNoQualities
	}
	var seen pitch.Set
	for _, q := range s.Qualities {
		if !q.Valid() {
			return ErrQualityOutOfRange
		}
		if seen.Has(q) {
			return ErrDuplicateQuality
		}
		seen = seen.Add(q)
	}
	if s.MaxFret < 1 || s.MaxFret > MaxPlayableFret {
		return ErrBadMaxFret
	}

	return nil
}
