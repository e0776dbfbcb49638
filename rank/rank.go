package rank

import (
	"sort"

	"github.com/katalvlaran/fretwork/pitch"
	"github.com/katalvlaran/fretwork/voicing"
)

// Comparator compares two voicings: negative when a orders before b,
// positive when after, zero when the key does not distinguish them.
type Comparator func(a, b *voicing.Voicing) int

// Stage is one link of the ordering chain: a comparator and its
// direction. Reversed flips the comparator's verdict without touching
// zero, so a reversed stage still defers ties to the next stage.
type Stage struct {
	Cmp      Comparator
	Reversed bool
}

// compare applies the stage to the pair.
func (s Stage) compare(a, b *voicing.Voicing) int {
	c := s.Cmp(a, b)
	if s.Reversed {
		return -c
	}

	return c
}

// Chain folds stages into a single comparator deciding by the first
// non-zero stage.
func Chain(stages []Stage) Comparator {
	return func(a, b *voicing.Voicing) int {
		for _, s := range stages {
			if c := s.compare(a, b); c != 0 {
				return c
			}
		}

		return 0
	}
}

// DefaultStages is the stock ordering: easiest first, then closest to the
// nut, then root position before inversions, then the fullest voicings.
func DefaultStages() []Stage {
	return []Stage{
		{Cmp: ByDifficulty()},
		{Cmp: ByFret()},
		{Cmp: ByInversion()},
		{Cmp: ByStringCount(), Reversed: true},
	}
}

// cmpInt is the shared three-way verdict.
func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// ByDifficulty orders by difficulty bucket, easiest first.
func ByDifficulty() Comparator {
	return func(a, b *voicing.Voicing) int { return cmpInt(int(a.Difficulty), int(b.Difficulty)) }
}

// ByFret orders by the highest fret in use, lowest neck position first.
func ByFret() Comparator {
	return func(a, b *voicing.Voicing) int { return cmpInt(a.MaxFret(), b.MaxFret()) }
}

// ByMinFret orders by the lowest fretted fret, open-position grips first.
func ByMinFret() Comparator {
	return func(a, b *voicing.Voicing) int { return cmpInt(a.MinFret(), b.MinFret()) }
}

// ByInversion orders root position before inversions.
func ByInversion() Comparator {
	return func(a, b *voicing.Voicing) int { return cmpInt(a.Inversion, b.Inversion) }
}

// ByMutedCount orders by the number of muted strings, fewest first.
func ByMutedCount() Comparator {
	return func(a, b *voicing.Voicing) int { return cmpInt(a.MutedCount(), b.MutedCount()) }
}

// ByOpenCount orders by the number of open strings, fewest first.
func ByOpenCount() Comparator {
	return func(a, b *voicing.Voicing) int { return cmpInt(a.OpenCount(), b.OpenCount()) }
}

// ByStringCount orders by the number of sounding strings, fewest first;
// reverse it to prefer the fullest voicings.
func ByStringCount() Comparator {
	return func(a, b *voicing.Voicing) int { return cmpInt(a.SoundingCount(), b.SoundingCount()) }
}

// ByFingerCount orders by the number of fingers the fingering demands.
func ByFingerCount() Comparator {
	return func(a, b *voicing.Voicing) int {
		return cmpInt(a.Fingering.FingerCount, b.Fingering.FingerCount)
	}
}

// ByBrightness orders darkest voicings first.
func ByBrightness() Comparator {
	return func(a, b *voicing.Voicing) int { return cmpInt(a.Brightness, b.Brightness) }
}

// ByContrast orders the most clustered voicings first.
func ByContrast() Comparator {
	return func(a, b *voicing.Voicing) int { return cmpInt(a.Contrast, b.Contrast) }
}

// Keep reports whether v survives the hard constraints of spec:
// playability, the finger budget, the difficulty and fret ceilings,
// barre permission, and the optional inversion/highest-note filter.
func Keep(v *voicing.Voicing, spec voicing.Spec) bool {
	if !v.Fingering.Valid || v.Fingering.FingerCount > voicing.FingerCountMax {
		return false
	}
	if v.Difficulty > spec.MaxDifficulty {
		return false
	}
	if v.MaxFret() > spec.MaxFret {
		return false
	}
	if v.Fingering.HasBarre && !spec.AllowBarre {
		return false
	}
	if spec.Filter.Inversion >= 0 && v.Inversion != spec.Filter.Inversion {
		return false
	}
	if spec.Filter.Highest >= 0 {
		q, ok := highestQuality(v)
		if !ok || int(q) != spec.Filter.Highest {
			return false
		}
	}

	return true
}

// highestQuality returns the quality of the highest-pitched sounding
// note, ok=false for the all-muted voicing.
func highestQuality(v *voicing.Voicing) (pitch.Quality, bool) {
	var (
		best   pitch.Quality
		height = -1
	)
	for _, p := range v.Positions {
		if !p.Sounding() {
			continue
		}
		if h := p.Pitch.Height(); h > height {
			height = h
			best = p.Quality
		}
	}

	return best, height >= 0
}

// Apply filters items through Keep and stable-sorts the survivors with
// the staged chain. The input slice is never mutated; the result is a
// fresh slice sharing the voicing pointers.
func Apply(items []*voicing.Voicing, spec voicing.Spec, stages []Stage) []*voicing.Voicing {
	out := make([]*voicing.Voicing, 0, len(items))
	for _, v := range items {
		if Keep(v, spec) {
			out = append(out, v)
		}
	}

	cmp := Chain(stages)
	sort.SliceStable(out, func(i, j int) bool { return cmp(out[i], out[j]) < 0 })

	return out
}
