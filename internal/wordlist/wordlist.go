// Package wordlist loads and filters flat word lists.
package wordlist

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// LoadWords reads one word per line from the provided file path.
// Lines are trimmed and lowercased; blank lines are skipped.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()
	return ReadWords(file)
}

// ReadWords reads one word per line from r.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	err := scanLines(r, func(word string) {
		words = append(words, word)
	})
	if err != nil {
		return nil, err
	}
	return words, nil
}

// scanLines has no line length limit.
func scanLines(r io.Reader, fn func(string)) error {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if word := normalize(line); word != "" {
			fn(word)
		}
		if err == io.EOF {
			return nil
		}
	}
}

func normalize(line string) string {
	return strings.ToLower(strings.TrimSpace(line))
}
