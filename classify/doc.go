// Package classify derives the descriptive fields of a finished voicing:
// inversion index, drop-2 flag and the brightness/contrast buckets.
//
// What the fields mean
//
//   - 🎯 Inversion — the index of the bass note's quality within the
//     ordered requested-quality list: 0 is root position, 1 puts the
//     second listed quality in the bass, and so on.
//   - 🎯 Drop-2 — a heuristic flag for the classic voicing technique of
//     dropping the second-highest note of a close-position chord down an
//     octave. Detected by an interleave test on the four lowest sounding
//     notes (see Drop2 for the exact pattern).
//   - 🎯 Brightness — the mean absolute pitch height of the sounding
//     notes, normalized into 8 buckets over the instrument's reachable
//     range. Higher buckets mean a voicing that sits higher on the neck.
//   - 🎯 Contrast — the population standard deviation of the same
//     heights, normalized into 5 buckets. Higher buckets mean the notes
//     are spread wide apart rather than clustered.
//
// ⚙️ Usage
//
//	v, _ := voicing.New(positions, tuning.Strings())
//	fingering.Optimize(v)
//	classify.Classify(v, spec.Qualities)
//	fmt.Println(v.Inversion, v.Drop2, v.Brightness, v.Contrast)
//
// Classification is pure and deterministic: it reads the positions and
// writes only the classifier-owned fields of the voicing.
package classify
