package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var (
	ErrAmbiguous = errors.New("ambiguous argument")
	ErrNoMatch   = errors.New("no match")
)

// Smash smashes "funny characters" (which includes anything that's remotely tricky to type into a command line) in a string into the '_' character
func Smash(in string) string {
	var out strings.Builder
	for _, c := range in {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			out.WriteRune(c)
		} else {
			out.WriteRune('_')
		}
	}
	return out.String()
}

// string matching functions, in strictly increasing order of desperation
var fuzzy = []func(input string, candidate string) bool{
	func(i string, c string) bool { return i == c },
	func(i string, c string) bool { return strings.EqualFold(i, c) },
	func(i string, c string) bool { return Smash(strings.ToUpper(i)) == Smash(strings.ToUpper(c)) },
	func(i string, c string) bool {
		return strings.HasPrefix(Smash(strings.ToUpper(c)), Smash(strings.ToUpper(i)))
	},
	func(i string, c string) bool {
		return strings.Contains(Smash(strings.ToUpper(c)), Smash(strings.ToUpper(i)))
	},
}

// Fuzzy_match finds the one candidate the input most plausibly means.
//
// Returns the index of the match in candidates.
// what is the type of thing being matched, for error messages.
func Fuzzy_match(candidates []string, input string, what string) (int, error) {
	for _, match := range fuzzy {
		matches := []int{}
		for i, c := range candidates {
			if match(input, c) {
				matches = append(matches, i)
			}
		}
		if len(matches) == 0 {
			continue
		}
		if len(matches) > 1 {
			names := make([]string, len(matches))
			for i, m := range matches {
				names[i] = candidates[m]
			}
			return -1, fmt.Errorf("%w: %q could be anything from {%v}", ErrAmbiguous, input, strings.Join(names, ", "))
		}
		return matches[0], nil
	}
	return -1, fmt.Errorf("%w: %q could not be matched to a valid %v", ErrNoMatch, input, what)
}

// Digits keeps only the decimal digits of s.
func Digits(s string) string {
	var out strings.Builder
	for _, c := range s {
		if c >= '0' && c <= '9' {
			out.WriteRune(c)
		}
	}
	return out.String()
}

// Limit constrains typed input to [0, max]. Non-digits are dropped; empty input is reported as such.
func Limit(raw string, max int) (n int, empty bool) {
	d := Digits(raw)
	if d == "" {
		return 0, true
	}
	n, err := strconv.Atoi(d)
	if err != nil || n > max {
		// too many digits for an int is still "too big"
		return max, false
	}
	return n, false
}

// Limit_127 constrains typed input to a signed byte. A leading '-' is kept.
func Limit_127(raw string) (n int, empty bool) {
	raw = strings.TrimSpace(raw)
	negative := strings.HasPrefix(raw, "-")
	if negative {
		raw = raw[1:]
	}
	n, empty = Limit(raw, 1<<20)
	if empty {
		return 0, true
	}
	if negative {
		if n > 128 {
			return -128, false
		}
		return -n, false
	}
	if n > 127 {
		return 127, false
	}
	return n, false
}
