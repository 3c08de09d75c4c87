package wordlist

// IsASCIIWord reports whether word is non-empty and made only of a-z.
func IsASCIIWord(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if ch := word[i]; ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}

// ASCIIWords returns the words of words that pass IsASCIIWord.
func ASCIIWords(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if IsASCIIWord(w) {
			out = append(out, w)
		}
	}
	return out
}
