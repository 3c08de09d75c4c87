// Package solve ranks playable words for a Blossom puzzle.
package solve

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/verte-zerg/blossom/internal/letters"
	"github.com/verte-zerg/blossom/internal/model"
	"github.com/verte-zerg/blossom/internal/wordlist"
)

// DefaultLimit is the number of solutions shown when no limit is configured.
const DefaultLimit = 20

// ErrInvalidQuery is returned when a query is missing its center or bonus letter.
var ErrInvalidQuery = errors.New("invalid query")

// NewQuery normalizes raw puzzle input. Center and bonus use their first letter.
func NewQuery(petals, center, bonus string, limit int) (model.Query, error) {
	c, ok := firstLetter(center)
	if !ok {
		return model.Query{}, fmt.Errorf("%w: center letter is required", ErrInvalidQuery)
	}
	b, ok := firstLetter(bonus)
	if !ok {
		return model.Query{}, fmt.Errorf("%w: bonus letter is required", ErrInvalidQuery)
	}
	if limit < 0 {
		limit = 0
	}
	return model.Query{
		Petals: strings.ToLower(strings.Join(strings.Fields(petals), "")),
		Center: c,
		Bonus:  b,
		Limit:  limit,
	}, nil
}

func firstLetter(s string) (rune, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.ToLower(r), true
}

// Solve filters the words read from r and ranks them for q.
func Solve(r io.Reader, q model.Query) (model.Result, error) {
	all := q.Letters()
	candidates, err := wordlist.FilterReader(r, letters.NewSet(all), q.Center)
	if err != nil {
		return model.Result{}, fmt.Errorf("failed to read dictionary: %w", err)
	}
	return Rank(candidates, q), nil
}

// SolveWords is Solve over an in-memory word list.
func SolveWords(words []string, q model.Query) model.Result {
	candidates := wordlist.Filter(words, letters.NewSet(q.Letters()), q.Center)
	return Rank(candidates, q)
}

// Rank orders candidates by score, keeping input order for ties, and
// annotates the top q.Limit words.
func Rank(candidates []string, q model.Query) model.Result {
	all := q.Letters()
	type scored struct {
		word  string
		score int
	}
	items := make([]scored, len(candidates))
	for i, word := range candidates {
		items[i] = scored{word: word, score: letters.PointValue(word, all, q.Bonus)}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].score > items[j].score
	})

	display := q.Limit
	if display < 0 {
		display = 0
	}
	if display > len(items) {
		display = len(items)
	}

	result := model.Result{
		Query:     q,
		Total:     len(items),
		Displayed: display,
		Entries:   make([]model.Entry, 0, display),
	}
	switch {
	case len(items) == 0:
		result.Outcome = model.OutcomeNoCandidates
		return result
	case display == 0:
		result.Outcome = model.OutcomeNoneDisplayed
		return result
	default:
		result.Outcome = model.OutcomeSolutions
	}

	for _, item := range items[:display] {
		result.Entries = append(result.Entries, model.Entry{
			Word:      item.word,
			Score:     item.score,
			Alternate: alternateBonus(item.word, all, q.Center, q.Bonus),
			Panagram:  letters.IsPanagram(item.word, all),
		})
	}
	return result
}

func alternateBonus(word, all string, center, bonus rune) *model.Alternate {
	peak := letters.PeakBonusLetters(word, center)
	if peak == "" || strings.ContainsRune(peak, bonus) {
		return nil
	}
	first, _ := utf8.DecodeRuneInString(peak)
	return &model.Alternate{
		Letters: peak,
		Score:   letters.PointValue(word, all, first),
	}
}
