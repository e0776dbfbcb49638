// Package voicing defines the data model of the chord-voicing engine:
// per-string positions, fingerings, voicings, canonical ids, the chord
// Spec that drives generation, and the immutable ranked Collection that
// generation produces.
//
// 🚀 Model at a glance:
//
//	• StringPosition — one per string: Muted, Open, or Fretted(n); sounding
//	  positions carry the resulting pitch, its root-relative quality and,
//	  once optimized, an assigned finger 1..4 (or none).
//	• Fingering — the canonical finger assignment of a voicing: per-string
//	  fingers, optional first-finger barre, raw span score, naturalness
//	  penalty and a validity flag.
//	• Voicing — a fixed-size array of StringPositions (size == string
//	  count), a canonical id, exactly one Fingering, and classifier-derived
//	  fields (inversion, drop-2, brightness/contrast, difficulty).
//	• Spec — root pitch class, ordered qualities split mandatory/optional,
//	  numeric constraints and allow-flags, plus an optional voicing filter.
//	• Collection — the full, ranked, deduplicated, read-only output of one
//	  generation run.
//
// Lifecycle: a Spec change triggers full recomputation; every Voicing is
// built once and is thereafter read-only. There is no incremental mutation
// anywhere in the model.
//
// Errors: strict sentinels (errors.go); construction helpers return them,
// tests match with errors.Is. Panics are reserved for programmer errors —
// most notably a finger index outside {1,2,3,4}, which is an invariant
// violation, never a recoverable condition.
package voicing
