// Package generate enumerates every constraint-satisfying chord voicing
// for one Spec on one Tuning: the candidate-generation stage of the
// pipeline, before fingering, classification and ranking.
//
// 🚀 How it works:
//
//  1. Scanning windows. Fretted candidates are drawn from sliding windows
//     [start, start+4) walked across the fingerboard up to Spec.MaxFret;
//     fret 0 (open) joins every window when allowed and harmonically valid.
//  2. Per-string candidates. A fret survives only if its root-relative
//     quality belongs to the requested quality set. A muted placeholder is
//     offered only while no root-bearing note exists on a lower-indexed
//     string, which forces the root onto the lowest feasible string.
//  3. Tree enumeration. The combinatorial product of per-string candidate
//     lists is walked depth-first — never materialized — and a partial
//     tuple is abandoned as soon as the remaining strings' achievable
//     qualities can no longer cover the missing mandatory set.
//  4. Acceptance. A complete tuple becomes a Voicing iff every fret is on
//     the fingerboard, the sounding-quality union covers the mandatory
//     set, and its canonical id is unseen.
//  5. Dominance post-pass. A voicing that mutes a string strictly inside
//     an already-accepted barre span at the same minimum fret with the
//     same bass note is a strictly poorer realization of the same grip
//     and is dropped.
//
// Determinism: windows ascend, per-string candidates are ordered
// muted → open → ascending frets, and dedup preserves first insertion, so
// identical input always yields the identical voicing sequence.
//
// Complexity: O(W · C^N) worst case for W windows, C candidates per string
// and N strings; the reachability prune cuts the practical tree far below
// that. Memory stays O(N) per walk plus the accepted set.
package generate
