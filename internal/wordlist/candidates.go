package wordlist

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/verte-zerg/blossom/internal/letters"
)

// Word length bounds accepted by the game, inclusive.
const (
	MinWordLen = 4
	MaxWordLen = 33
)

// Candidates collects words that are playable for a puzzle, in first-seen order.
type Candidates struct {
	allowed letters.Set
	center  rune
	seen    map[string]struct{}
	words   []string
}

// NewCandidates returns an empty collector for the given letters and center.
func NewCandidates(allowed letters.Set, center rune) *Candidates {
	return &Candidates{
		allowed: allowed,
		center:  center,
		seen:    map[string]struct{}{},
		words:   []string{},
	}
}

// Add normalizes line and keeps it when it is a new playable word.
func (c *Candidates) Add(line string) bool {
	word := normalize(line)
	if !c.playable(word) {
		return false
	}
	if _, ok := c.seen[word]; ok {
		return false
	}
	c.seen[word] = struct{}{}
	c.words = append(c.words, word)
	return true
}

// Words returns the accepted words.
func (c *Candidates) Words() []string {
	return c.words
}

func (c *Candidates) playable(word string) bool {
	if !strings.ContainsRune(word, c.center) {
		return false
	}
	length := utf8.RuneCountInString(word)
	if length < MinWordLen || length > MaxWordLen {
		return false
	}
	for _, r := range word {
		if !c.allowed.Has(r) {
			return false
		}
	}
	return true
}

// Filter returns the playable words of words, deduplicated in input order.
func Filter(words []string, allowed letters.Set, center rune) []string {
	c := NewCandidates(allowed, center)
	for _, w := range words {
		c.Add(w)
	}
	return c.Words()
}

// FilterReader streams newline-delimited words from r through Filter.
func FilterReader(r io.Reader, allowed letters.Set, center rune) ([]string, error) {
	c := NewCandidates(allowed, center)
	scanErr := scanLines(r, func(word string) {
		c.Add(word)
	})
	if scanErr != nil {
		return nil, scanErr
	}
	return c.Words(), nil
}
