package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		password string
		want     int
	}{
		{"", 0},
		{"abc", 1},          // lowercase only
		{"abc123", 2},       // lowercase + digit
		{"abcdefgh", 2},     // lowercase + length
		{"Abcdefg1", 4},     // length + digit + lower + upper
		{"Abcdefg1!", 5},    // all five
		{"PASSWORD", 2},     // upper + length
		{"!!!!!!!!", 2},     // non-alnum + length
		{"aB3$", 4},         // four classes, short
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Score(tt.password), "password %q", tt.password)
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, StrengthNone, Classify(""))
	assert.Equal(t, StrengthWeak, Classify("abc"))
	assert.Equal(t, StrengthWeak, Classify("abc123"))
	assert.Equal(t, StrengthMedium, Classify("abcdefg1"))
	assert.Equal(t, StrengthGood, Classify("Abcdefg1"))
	assert.Equal(t, StrengthStrong, Classify("Abcdefg1!"))
}

// Adding one more satisfied character-class rule never lowers the tier.
func TestClassify_MonotonicInSatisfiedRules(t *testing.T) {
	steps := []string{
		"a",          // lower
		"a1",         // + digit
		"aA1",        // + upper
		"aA1!",       // + non-alnum
		"aaaaaA1!",   // + length
	}

	prev := StrengthNone
	for _, pw := range steps {
		tier := Classify(pw)
		assert.GreaterOrEqual(t, int(tier), int(prev), "password %q", pw)
		prev = tier
	}
}

func TestStrengthString(t *testing.T) {
	assert.Equal(t, "", StrengthNone.String())
	assert.Equal(t, "weak", StrengthWeak.String())
	assert.Equal(t, "medium", StrengthMedium.String())
	assert.Equal(t, "good", StrengthGood.String())
	assert.Equal(t, "strong", StrengthStrong.String())
}
