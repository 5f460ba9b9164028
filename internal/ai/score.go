package ai

import (
	"regexp"
	"strconv"
)

var digitRun = regexp.MustCompile(`\d+`)

// ExtractScore finds the first contiguous run of decimal digits anywhere in a
// model reply, parses it and clamps it to [1,5]. The second return value is
// false when the reply contains no digits at all: a missing score stays
// absent, it never degrades to zero.
//
// Only the first run counts: "3 or maybe 4" yields 3, and "9 is too high,
// real answer 2" yields 5 after clamping the 9.
func ExtractScore(text string) (int, bool) {
	m := digitRun.FindString(text)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		// A digit run too long for an int is certainly above the scale.
		return 5, true
	}
	if n < 1 {
		return 1, true
	}
	if n > 5 {
		return 5, true
	}
	return n, true
}
