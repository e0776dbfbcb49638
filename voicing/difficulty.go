package voicing

import "strconv"

// Difficulty is the discrete playability bucket of a voicing, derived from
// the fingering optimizer's final span score.
type Difficulty uint8

const (
	Easy Difficulty = iota
	Medium
	Hard
	VeryHard
	Mortal
	// Impossible marks voicings for which no valid fingering exists.
	Impossible
)

// Score thresholds mapping a final fingering score to a Difficulty.
// The buckets are inclusive upper bounds; anything above VeryHard that is
// still physically valid lands in Mortal.
const (
	easyMaxScore     = 50.0
	mediumMaxScore   = 100.0
	hardMaxScore     = 200.0
	veryHardMaxScore = 300.0
)

var difficultyNames = [...]string{
	"Easy", "Medium", "Hard", "VeryHard", "Mortal", "Impossible",
}

// String implements fmt.Stringer.
func (d Difficulty) String() string {
	if int(d) < len(difficultyNames) {
		return difficultyNames[d]
	}

	return "Difficulty(" + strconv.Itoa(int(d)) + ")"
}

// DifficultyFromScore buckets a fingering score. Unplayable voicings must
// be bucketed via Impossible directly by the optimizer, never through here.
func DifficultyFromScore(score float64) Difficulty {
	switch {
	case score <= easyMaxScore:
		return Easy
	case score <= mediumMaxScore:
		return Medium
	case score <= hardMaxScore:
		return Hard
	case score <= veryHardMaxScore:
		return VeryHard
	default:
		return Mortal
	}
}
