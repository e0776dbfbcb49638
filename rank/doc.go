// Package rank orders and filters finished voicings into the final
// collection.
//
// The pipeline has two halves:
//
//   - ✨ Filtering — Keep applies the hard constraints of the chord
//     specification: the difficulty ceiling, the fret ceiling, barre
//     permission, playability, and the optional inversion/highest-note
//     filter. A voicing that fails any of them never reaches the sort.
//   - ✨ Ordering — a Chain of Stage values, each a (comparator,
//     reversed) pair. The chain compares by the first stage that
//     distinguishes the pair, so later stages only break ties. Sorting
//     is stable, which keeps the generator's deterministic enumeration
//     order as the final tie-break.
//
// ⚙️ Usage
//
//	out := rank.Apply(voicings, spec, rank.DefaultStages())
//
// Callers wanting a different order supply their own stages:
//
//	stages := []rank.Stage{
//		{Cmp: rank.ByBrightness(), Reversed: true},
//		{Cmp: rank.ByFret()},
//	}
//	out := rank.Apply(voicings, spec, stages)
//
// Stages are plain values with no shared state, so the same slice can be
// reused across goroutines and runs.
package rank
