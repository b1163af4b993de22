// SPDX-License-Identifier: AGPL-3.0-or-later

// Package timeexpr rewrites shorthand time expressions into the
// spelled-out form git's --before understands.
package timeexpr

import "strings"

// unitWords maps the single-letter shorthand units to the words git
// accepts in approxidate expressions.
var unitWords = map[string]string{
	"s": "seconds",
	"m": "minutes",
	"h": "hours",
	"d": "days",
	"w": "weeks",
}

// Normalize expands shorthand like "2d", "3h" or "1w" into "2 days",
// "3 hours", "1 weeks". Anything that is not <digits><unit-letter> is
// returned unchanged apart from whitespace trimming, so expressions git
// already understands ("2 days", "yesterday") pass straight through.
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return input
	}

	split := strings.IndexFunc(input, func(r rune) bool {
		return r < '0' || r > '9'
	})
	// split == -1: all digits, no unit. split == 0: no leading digits.
	if split <= 0 {
		return input
	}

	number, unit := input[:split], input[split:]
	word, ok := unitWords[unit]
	if !ok {
		return input
	}
	return number + " " + word
}
