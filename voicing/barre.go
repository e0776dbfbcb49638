package voicing

// BarreSpan detects the candidate first-finger barre of a voicing from its
// raw geometry, independent of any finger assignment.
//
// Scanning strings from the lowest pitch upward, a barre exists when at
// least two strings share the global minimum fret and no open string sits
// below or inside the covered range — an open string under the finger
// would be damped, which contradicts the voicing. The barre covers every
// string from the first to the last occurrence of the minimum fret;
// strings inside the range fretted higher are played by other fingers
// above the barre.
//
// Complexity: O(N) over the string count.
func (v *Voicing) BarreSpan() (Barre, bool) {
	m := v.MinFret()
	if m == 0 {
		return Barre{}, false
	}

	first, last, count := -1, -1, 0
	for i, p := range v.Positions {
		if p.State == Fretted && p.Fret == m {
			if first < 0 {
				first = i
			}
			last = i
			count++
		}
	}
	if count < 2 {
		return Barre{}, false
	}

	// An open string below or inside the span kills the barre.
	for i := 0; i <= last; i++ {
		if v.Positions[i].State == Open {
			return Barre{}, false
		}
	}

	return Barre{Fret: m, Low: first, High: last}, true
}
