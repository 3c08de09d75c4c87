// Package model defines shared data structures.
package model

import (
	"strings"
	"unicode"
)

// Config defines solve settings resolved from flags and the config file.
type Config struct {
	DictPath string
	DictURL  string
	Limit    int
	Format   string
	Color    bool
	Timing   bool
	Verbose  bool
}

// Query is a normalized puzzle query.
type Query struct {
	Petals string
	Center rune
	Bonus  rune
	Limit  int
}

// Letters returns every playable letter: petals, center and bonus.
func (q Query) Letters() string {
	var b strings.Builder
	for _, r := range q.Petals {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	if q.Center != 0 {
		b.WriteRune(q.Center)
	}
	if q.Bonus != 0 {
		b.WriteRune(q.Bonus)
	}
	return b.String()
}

// Alternate describes a better bonus letter for a single word.
type Alternate struct {
	Letters string `json:"letters" msgpack:"letters"`
	Score   int    `json:"score" msgpack:"score"`
}

// Entry is one ranked solution.
type Entry struct {
	Word      string     `json:"word" msgpack:"word"`
	Score     int        `json:"score" msgpack:"score"`
	Alternate *Alternate `json:"alternate,omitempty" msgpack:"alternate,omitempty"`
	Panagram  bool       `json:"panagram" msgpack:"panagram"`
}

// Outcome classifies a ranked result.
type Outcome int

const (
	// OutcomeSolutions means at least one entry is displayed.
	OutcomeSolutions Outcome = iota
	// OutcomeNoCandidates means the dictionary had no matching words.
	OutcomeNoCandidates
	// OutcomeNoneDisplayed means candidates exist but the display limit is 0.
	OutcomeNoneDisplayed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSolutions:
		return "solutions"
	case OutcomeNoCandidates:
		return "no-candidates"
	case OutcomeNoneDisplayed:
		return "none-displayed"
	default:
		return "unknown"
	}
}

// Result is the structured output of a single query.
type Result struct {
	Query     Query
	Total     int
	Displayed int
	Entries   []Entry
	Outcome   Outcome
}
