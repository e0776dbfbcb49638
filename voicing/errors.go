// Package voicing: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// model and by the downstream generator/engine. All public constructors
// MUST return these sentinels and tests MUST check them via errors.Is.
// Panics are reserved for programmer errors (invalid finger indices).

package voicing

import "errors"

var (
	// ErrNoQualities is returned when a Spec is built from an empty quality
	// list; a chord with no requested qualities cannot drive generation.
	ErrNoQualities = errors.New("voicing: quality list is empty")

	// ErrQualityOutOfRange indicates a quality outside the chromatic
	// universe [0,12) was requested.
	ErrQualityOutOfRange = errors.New("voicing: quality out of range")

	// ErrDuplicateQuality indicates the ordered quality list names the same
	// quality twice; the list doubles as the inversion index and must be a
	// proper sequence.
	ErrDuplicateQuality = errors.New("voicing: duplicate quality in list")

	// ErrBadRoot indicates a root pitch class outside [0,12).
	ErrBadRoot = errors.New("voicing: root pitch class out of range")

	// ErrBadMaxFret indicates a fret ceiling outside [1, MaxPlayableFret].
	ErrBadMaxFret = errors.New("voicing: max fret out of range")

	// ErrStringCountMismatch indicates a position array whose length does
	// not match the tuning's string count.
	ErrStringCountMismatch = errors.New("voicing: position count does not match string count")
)

// panicFingerRange is the message used when a finger index escapes {1..4}.
// An out-of-range index is a bug in the optimizer, not a user-recoverable
// condition.
const panicFingerRange = "voicing: finger index outside {1,2,3,4}"
