package grid

import (
	"regexp"
	"strconv"
)

var (
	intPattern   = regexp.MustCompile(`^[+-]?[0-9]+$`)
	floatPattern = regexp.MustCompile(`^[+-]?[0-9]+\.[0-9]+([eE][+-]?[0-9]+)?$`)
)

// Coerce converts a trimmed cell value into the most specific scalar type:
// int, then float64, then the original string. The input must already have
// leading and trailing whitespace stripped.
//
// Coerce never fails; anything that does not parse as a number is returned
// unchanged, including the empty string. Same input always yields the same
// output.
func Coerce(s string) any {
	if intPattern.MatchString(s) {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
		// Out of int range; fall through to float parsing.
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v
		}
		return s
	}
	if floatPattern.MatchString(s) {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v
		}
	}
	return s
}
