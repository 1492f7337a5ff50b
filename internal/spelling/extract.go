// Package spelling implements word extraction, misspelling detection, correction
// and accuracy scoring on top of a frequency-ranked English corpus.
package spelling

import "regexp"

var wordPattern = regexp.MustCompile(`[A-Za-z']+`)

// ExtractWords returns the maximal runs of ASCII letters and apostrophes in text,
// in order of appearance. Everything else acts as a separator.
func ExtractWords(text string) []string {
	words := wordPattern.FindAllString(text, -1)
	if words == nil {
		return []string{}
	}
	return words
}
