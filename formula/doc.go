// Package formula maps chord-formula names ("maj7", "m7b5", …) to ordered
// quality lists, so callers can build a voicing.Spec without spelling out
// intervals by hand.
//
// 🚀 What lives here?
//
//	• A built-in catalog of the common formulas, token-spelled exactly like
//	  pitch.Quality.String() renders them ("1", "b3", "5", "b7", …).
//	• A YAML loader that overlays user catalogs on top of the built-ins:
//
//	  m7b5: ["1", "b3", "b5", "b7"]
//	  madd9: ["1", "b3", "5", "2"]
//
// The ordered token list is semantic: it becomes Spec.Qualities, which the
// classifier reads as the close-position ordering for inversion indexing
// and the drop-2 test.
//
// ⚙️ Usage:
//
//	cat := formula.Default()
//	qs, err := cat.Qualities("m7b5")
//	spec, err := voicing.NewSpec(pitch.B, qs)
//
// Note/scale *naming* remains out of scope: formulas are pure interval
// recipes, never spelled chord symbols.
package formula
