// Package wordmatch finds needles in text only where they stand as whole
// words: the bytes on either side of a hit must not be ASCII letters or
// digits.
package wordmatch

import "strings"

// Contains reports whether needle occurs in text bounded by non-alphanumeric
// characters or the ends of text. Both arguments are expected lower-cased.
func Contains(text, needle string) bool {
	if needle == "" {
		return false
	}
	from := 0
	for from <= len(text)-len(needle) {
		i := strings.Index(text[from:], needle)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(needle)
		if (start == 0 || !isAlnum(text[start-1])) && (end == len(text) || !isAlnum(text[end])) {
			return true
		}
		from = start + 1
	}
	return false
}

// ContainsAny reports whether any of needles is a whole-word match in text.
func ContainsAny(text string, needles ...string) bool {
	for _, n := range needles {
		if Contains(text, n) {
			return true
		}
	}
	return false
}

func isAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('0' <= c && c <= '9')
}
