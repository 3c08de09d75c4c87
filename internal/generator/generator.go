// Package generator builds random practice puzzles from a word list.
package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/verte-zerg/blossom/internal/letters"
	"github.com/verte-zerg/blossom/internal/wordlist"
)

// PuzzleSize is the number of distinct letters in a puzzle, center included.
const PuzzleSize = 7

// Puzzle is a generated set of letters.
type Puzzle struct {
	Seed   string
	Petals string
	Center rune
	Bonus  rune
}

// Generator produces randomized puzzles.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a deterministic Generator.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Puzzle picks a word with exactly PuzzleSize distinct letters and splits its
// letters into a center, six petals and a bonus petal.
func (g *Generator) Puzzle(words []string) (Puzzle, error) {
	seeds := SeedWords(words)
	if len(seeds) == 0 {
		return Puzzle{}, fmt.Errorf("no word with %d distinct letters in dictionary", PuzzleSize)
	}
	seed := seeds[g.rnd.Intn(len(seeds))]
	runes := []rune(letters.NewSet(seed).String())
	g.rnd.Shuffle(len(runes), func(i, j int) {
		runes[i], runes[j] = runes[j], runes[i]
	})
	center := runes[0]
	petals := []rune(letters.NewSet(string(runes[1:])).String())
	bonus := petals[g.rnd.Intn(len(petals))]
	return Puzzle{
		Seed:   seed,
		Petals: string(petals),
		Center: center,
		Bonus:  bonus,
	}, nil
}

// SeedWords returns the lowercase a-z words that could be a puzzle's panagram.
func SeedWords(words []string) []string {
	var seeds []string
	for _, word := range wordlist.ASCIIWords(words) {
		if len(word) < PuzzleSize || len(word) > wordlist.MaxWordLen {
			continue
		}
		if len(letters.NewSet(word)) != PuzzleSize {
			continue
		}
		seeds = append(seeds, word)
	}
	return seeds
}
