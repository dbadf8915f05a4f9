package models

// Mood is a closed enumeration of mood labels an entry can carry.
// Values outside the accepted set normalise to [MoodUnspecified] instead of
// being stored as free-form strings.
type Mood string

const (
	MoodUnspecified Mood = "unspecified"
	MoodHappy       Mood = "happy"
	MoodExcited     Mood = "excited"
	MoodCalm        Mood = "calm"
	MoodNeutral     Mood = "neutral"
	MoodTired       Mood = "tired"
	MoodSad         Mood = "sad"
	MoodAnxious     Mood = "anxious"
	MoodAngry       Mood = "angry"
)

var acceptedMoods = map[Mood]struct{}{
	MoodHappy:   {},
	MoodExcited: {},
	MoodCalm:    {},
	MoodNeutral: {},
	MoodTired:   {},
	MoodSad:     {},
	MoodAnxious: {},
	MoodAngry:   {},
}

// NormalizeMood maps a caller-supplied mood label to the closed enumeration.
// Unknown or empty labels become [MoodUnspecified].
func NormalizeMood(raw string) Mood {
	mood := Mood(raw)
	if _, ok := acceptedMoods[mood]; ok {
		return mood
	}
	return MoodUnspecified
}

// IsAccepted reports whether the mood is one of the accepted labels
// (MoodUnspecified counts as accepted).
func (m Mood) IsAccepted() bool {
	if m == MoodUnspecified {
		return true
	}
	_, ok := acceptedMoods[m]
	return ok
}
