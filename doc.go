// Package fretwork is a chord-voicing generation and fingering-optimization
// engine for fretted, multi-string instruments.
//
// 🚀 What is fretwork?
//
//	A deterministic, CPU-bound library that, given a chord root, its
//	harmonic qualities and an instrument tuning, produces every physically
//	valid way to place that chord on the fingerboard:
//		• Candidate generation: pruned tree enumeration over per-string frets
//		• Fingering optimization: permutation search scored by a hand-span model
//		• Classification: inversion, drop-2, brightness/contrast, difficulty
//		• Ranking: composable comparator chain + post-filters
//
// ✨ Why choose fretwork?
//
//   - Deterministic – identical input always yields the identical ordered output
//   - Pure batch transform – no hidden state, safe to re-run, context-cancellable
//   - Explicit policy – functional options and caller-supplied ranking stages
//   - Honest ergonomics – distances measured on a physical fingerboard model
//
// Everything is organized under focused subpackages:
//
//	pitch/     — pitch classes, octaves, qualities (intervals mod 12), tunings
//	voicing/   — StringPosition, Voicing, Collection, canonical ids, chord Spec
//	formula/   — named chord formulas with YAML catalog overrides
//	generate/  — per-string candidates + constraint-pruned enumeration
//	fingering/ — barre detection, permutation tables, hand-span scoring
//	classify/  — inversion, drop-2, brightness/contrast buckets, counts
//	rank/      — (comparator, reversed) stage chain and post-filters
//	engine/    — the generate→finger→classify→rank pipeline
//
// Quick ASCII example (C major, standard tuning, canonical id "x32010"):
//
//	E ──0──   open
//	B ──1──   finger 1
//	G ──0──   open
//	D ──2──   finger 2
//	A ──3──   finger 3
//	E ──x──   muted
//
//	go get github.com/katalvlaran/fretwork
package fretwork
