package voicing

// ID is the canonical per-string fret encoding of a voicing: one character
// per string, lowest string first — a lowercase hex digit for the fret of a
// sounding string ('0' for open) and 'x' for a muted string. It is a
// deterministic dedup/lookup key; "x32010" is the open-position C major.
type ID string

// MaxPlayableFret is the highest fret the codec (and the fingerboard model)
// admits; one hex digit per string caps the fingerboard at fret 15.
const MaxPlayableFret = 15

const hexDigits = "0123456789abcdef"

// mutedMark encodes a muted string inside an ID.
const mutedMark = 'x'

// EncodeID derives the canonical id of a position array.
// Complexity: O(N) over the string count; no allocations beyond the id.
func EncodeID(positions []StringPosition) ID {
	buf := make([]byte, len(positions))
	for i, p := range positions {
		if p.State == Muted {
			buf[i] = mutedMark
			continue
		}
		buf[i] = hexDigits[p.Fret&0xf]
	}

	return ID(buf)
}
