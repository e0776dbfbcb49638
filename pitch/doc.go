// Package pitch defines the tonal primitives consumed by the voicing engine:
// pitch classes, concrete pitches (class + octave), harmonic qualities
// (intervals mod 12 relative to a chord root) and instrument tunings.
//
// 🚀 What lives here?
//
//	• Class    — one of the twelve chromatic pitch classes (C..B).
//	• Pitch    — a concrete sounding note: pitch class at an octave.
//	• Quality  — an interval, mod 12 semitones, relative to a chord root.
//	• Tuning   — the ordered open-string pitches of an instrument,
//	  lowest-indexed string = lowest (thickest) string.
//
// Everything in this package is a plain value: no pointers, no mutation,
// no hidden state. Heights are absolute semitone counts (octave·12 + class),
// which makes interval arithmetic a plain subtraction.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/fretwork/pitch"
//
//	root := pitch.C
//	t := pitch.StandardGuitar()
//	p := t[4].Transpose(1)                 // B3 string, fret 1 → C4
//	q := pitch.QualityOf(root, p)          // Unison
//
// Determinism: Tuning is a value slice fixed for a generation run; the
// engine never mutates it.
package pitch
