package fingering

import "github.com/katalvlaran/fretwork/voicing"

// fullPool is the finger pool for non-barre voicings.
var fullPool = []voicing.Finger{voicing.Finger1, voicing.Finger2, voicing.Finger3, voicing.Finger4}

// barrePool is the pool for strings above a first-finger barre.
var barrePool = []voicing.Finger{voicing.Finger2, voicing.Finger3, voicing.Finger4}

// Orders generates all k-permutations of pool in canonical lexicographic
// order (by pool position). This replaces per-finger-count hardcoded
// tables: for the full pool k=1 yields 4 orders, k=2 yields 12, k=3 and
// k=4 yield 24 each. k == 0 yields the single empty order (a barre with no
// strings above it); k > len(pool) yields nil — the caller treats that as
// an unplayable demand, never an error.
//
// Complexity: O(P(n,k) · k) time, O(P(n,k) · k) memory for n = len(pool).
func Orders(pool []voicing.Finger, k int) [][]voicing.Finger {
	if k < 0 || k > len(pool) {
		return nil
	}

	var (
		out  [][]voicing.Finger
		cur  = make([]voicing.Finger, 0, k)
		used = make([]bool, len(pool))
		rec  func()
	)
	rec = func() {
		if len(cur) == k {
			perm := make([]voicing.Finger, k)
			copy(perm, cur)
			out = append(out, perm)

			return
		}
		for i, f := range pool {
			if used[i] {
				continue
			}
			used[i] = true
			cur = append(cur, f)
			rec()
			cur = cur[:len(cur)-1]
			used[i] = false
		}
	}
	rec()

	return out
}
