// Package fingering finds the best physical hand fingering for a voicing:
// the optimizer stage of the pipeline and the heart of the engine.
//
// 🚀 How a voicing gets its fingers:
//
//  1. Finger demand. Sounding, non-open positions need fingers; a detected
//     first-finger barre (voicing.BarreSpan) collapses every minimum-fret
//     string it covers into one finger.
//  2. Candidate orders. Finger assignments are generated at runtime as
//     k-permutations in lexicographic order: from {1,2,3,4} for non-barre
//     voicings (1 finger → 4 orders, 2 → 12, 3 → 24, 4 → 24), from
//     {2,3,4} for the strings above a barre (finger 1 is the barre).
//  3. Validity. Walking sounding fretted positions from the lowest string
//     up, finger deltas may never oppose fret deltas; and relative to the
//     root (first-assigned) finger's fret, a higher-numbered finger may
//     never sit below it nor a lower-numbered finger above it.
//  4. Span scoring. Every finger pair is measured on a physical
//     fingerboard: fret f sits at scaleLength·0.5^(f/12) from the bridge,
//     strings sit a fixed spacing apart, distances are Euclidean. Each pair
//     is judged against its own (min, optimal, max) thresholds — the
//     asymmetric 4×4 table is hidden behind Thresholds(a, b, inverted).
//     Beyond max the candidate dies; the top 10% of the min–max range
//     costs a heavy penalty, the top 20% a moderate one; otherwise the
//     penalty grows linearly below min or above optimal.
//  5. Naturalness. A playing-order walk penalizes fret/finger delta
//     disagreement and same-fret inverted pairs outside a barre.
//  6. Selection. Valid candidates sort by (naturalness, score, highest
//     finger) ascending; the winner becomes the voicing's single canonical
//     fingering. No valid candidate ⇒ the voicing is kept, flagged
//     unplayable with maximal score and Impossible difficulty — a
//     per-voicing failure is never an error.
//
// Zero-finger voicings (all open / all muted) bypass scoring entirely:
// score = naturalness = 0, difficulty Easy.
//
// Determinism: the lexicographic enumeration plus first-strictly-better
// selection makes the chosen fingering a pure function of the voicing.
package fingering
