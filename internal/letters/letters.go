// Package letters provides letter-set helpers and the Blossom scoring rules.
package letters

import (
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	bonusPoints    = 5
	panagramPoints = 7
)

// Set is an unordered collection of unique letters.
type Set map[rune]struct{}

// NewSet returns the distinct runes of s.
func NewSet(s string) Set {
	set := make(Set, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}

// Has reports whether r is in the set.
func (s Set) Has(r rune) bool {
	_, ok := s[r]
	return ok
}

// Equal reports whether both sets hold the same letters.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for r := range s {
		if !other.Has(r) {
			return false
		}
	}
	return true
}

// String returns the letters sorted.
func (s Set) String() string {
	runes := make([]rune, 0, len(s))
	for r := range s {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return string(runes)
}

// IsPanagram reports whether word uses exactly the distinct letters of allLetters.
// Comparison is case-sensitive.
func IsPanagram(word, allLetters string) bool {
	return NewSet(word).Equal(NewSet(allLetters))
}

// LengthPoints returns the length component of a word's score.
func LengthPoints(length int) int {
	switch {
	case length == 4:
		return 2
	case length == 5:
		return 4
	case length == 6:
		return 6
	case length >= 7:
		return 12 + 3*(length-7)
	default:
		return 0
	}
}

// PointValue scores word for the given letters and bonus letter.
func PointValue(word, allLetters string, bonus rune) int {
	value := LengthPoints(utf8.RuneCountInString(word))
	value += bonusPoints * strings.Count(word, string(bonus))
	if IsPanagram(word, allLetters) {
		value += panagramPoints
	}
	return value
}

// PeakBonusLetters returns the letters other than center that occur most often
// in word, sorted and concatenated. Ties are all returned. The result is empty
// when word has no letters besides center.
func PeakBonusLetters(word string, center rune) string {
	counts := map[rune]int{}
	peak := 0
	for _, r := range word {
		if r == center {
			continue
		}
		counts[r]++
		if counts[r] > peak {
			peak = counts[r]
		}
	}
	if peak == 0 {
		return ""
	}
	best := Set{}
	for r, n := range counts {
		if n == peak {
			best[r] = struct{}{}
		}
	}
	return best.String()
}
