// Package engine wires the full voicing pipeline behind one call.
//
// 🚀 A Generate run performs, in order:
//
//  1. Fail-fast validation of the chord specification.
//  2. Candidate enumeration (generate) over the configured tuning.
//  3. Fingering optimization (fingering) and classification (classify),
//     fanned out over a bounded worker group — each voicing is
//     independent, so the fan-out is embarrassingly parallel.
//  4. Ranking and filtering (rank) into the final immutable Collection.
//
// ⚙️ Usage
//
//	eng, err := engine.New(
//		engine.WithTuning(pitch.StandardGuitar()),
//		engine.WithWorkers(4),
//		engine.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//	spec, err := voicing.NewSpec(pitch.C, qualities, voicing.WithMaxFret(5))
//	if err != nil {
//		return err
//	}
//	col, err := eng.Generate(ctx, spec)
//
// An Engine is safe for concurrent use: it holds only immutable
// configuration, and every Generate call builds its run state from
// scratch. Identical specs produce identical ordered collections.
package engine
