// Package finder discovers candidate jump positions in a text buffer.
//
// Positions are 1-based rune indexes, reported in left-to-right order. Word
// modes locate boundaries of maximal alphanumeric-or-underscore runs; search
// mode locates occurrences of a single character under a configurable case
// sensitivity rule.
package finder

import (
	"errors"
	"fmt"
	"regexp"
	"unicode"
)

// ErrInvalidSearchChar indicates search input was not exactly one printable
// character.
var ErrInvalidSearchChar = errors.New("search input must be one printable character")

// isWordRune reports whether r belongs to a word run.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// WordStarts returns the 1-based index of the first rune of every word in
// buffer. An empty buffer yields an empty slice.
func WordStarts(buffer string) []int {
	positions := []int{}
	inWord := false
	i := 0
	for _, r := range buffer {
		i++
		if isWordRune(r) {
			if !inWord {
				positions = append(positions, i)
			}
			inWord = true
		} else {
			inWord = false
		}
	}
	return positions
}

// WordEnds returns the 1-based index of the last rune of every word in
// buffer. An empty buffer yields an empty slice.
func WordEnds(buffer string) []int {
	positions := []int{}
	inWord := false
	i := 0
	for _, r := range buffer {
		i++
		if isWordRune(r) {
			if inWord {
				// Extend the current run.
				positions[len(positions)-1] = i
			} else {
				positions = append(positions, i)
			}
			inWord = true
		} else {
			inWord = false
		}
	}
	return positions
}

// Occurrences returns the 1-based start index of every non-overlapping
// occurrence of ch in buffer, under the given case mode.
func Occurrences(ch rune, mode CaseMode, buffer string) ([]int, error) {
	pattern, err := Pattern(ch, mode)
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling search pattern %q: %w", pattern, err)
	}

	positions := []int{}
	matches := re.FindAllStringIndex(buffer, -1)
	for _, m := range matches {
		positions = append(positions, runeIndex(buffer, m[0]))
	}
	return positions, nil
}

// Pattern converts a search character into a regular expression according to
// the case mode. The character must be printable.
func Pattern(ch rune, mode CaseMode) (string, error) {
	if !unicode.IsPrint(ch) {
		return "", fmt.Errorf("%w: got %q", ErrInvalidSearchChar, ch)
	}

	literal := regexp.QuoteMeta(string(ch))

	switch mode {
	case CaseIgnore:
		if unicode.IsLetter(ch) {
			return bothCases(ch), nil
		}
		return literal, nil
	case CaseSmart:
		if unicode.IsLower(ch) {
			return bothCases(ch), nil
		}
		return literal, nil
	default:
		return literal, nil
	}
}

// bothCases builds a character class matching either case of a letter.
func bothCases(ch rune) string {
	lower := unicode.ToLower(ch)
	upper := unicode.ToUpper(ch)
	if lower == upper {
		return regexp.QuoteMeta(string(ch))
	}
	return "[" + regexp.QuoteMeta(string(lower)) + regexp.QuoteMeta(string(upper)) + "]"
}

// runeIndex converts a byte offset into a 1-based rune index.
func runeIndex(s string, byteOffset int) int {
	i := 1
	for off := range s {
		if off == byteOffset {
			return i
		}
		i++
	}
	return i
}
