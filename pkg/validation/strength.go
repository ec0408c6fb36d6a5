package validation

import "regexp"

// Strength is the label tier derived from the password score.
type Strength int

const (
	StrengthNone Strength = iota
	StrengthWeak
	StrengthMedium
	StrengthGood
	StrengthStrong
)

func (s Strength) String() string {
	switch s {
	case StrengthWeak:
		return "weak"
	case StrengthMedium:
		return "medium"
	case StrengthGood:
		return "good"
	case StrengthStrong:
		return "strong"
	default:
		return ""
	}
}

var (
	digitRe    = regexp.MustCompile(`[0-9]`)
	lowerRe    = regexp.MustCompile(`[a-z]`)
	upperRe    = regexp.MustCompile(`[A-Z]`)
	nonAlnumRe = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// Score counts how many character-class rules the password satisfies:
// length >= 8, a digit, a lowercase letter, an uppercase letter, a
// non-alphanumeric character. Recomputed on every keystroke, so it must
// stay synchronous and cheap.
func Score(password string) int {
	if password == "" {
		return 0
	}

	score := 0
	if len(password) >= 8 {
		score++
	}
	if digitRe.MatchString(password) {
		score++
	}
	if lowerRe.MatchString(password) {
		score++
	}
	if upperRe.MatchString(password) {
		score++
	}
	if nonAlnumRe.MatchString(password) {
		score++
	}
	return score
}

// Classify maps the 0-5 score to a label tier.
func Classify(password string) Strength {
	score := Score(password)
	switch {
	case score == 0:
		return StrengthNone
	case score <= 2:
		return StrengthWeak
	case score == 3:
		return StrengthMedium
	case score == 4:
		return StrengthGood
	default:
		return StrengthStrong
	}
}
