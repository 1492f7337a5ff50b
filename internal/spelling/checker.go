package spelling

import (
	"context"
	"math"
	"strings"

	"github.com/sagr12004/Spell-Checker/internal/types"
)

// Speller is the dictionary-matching collaborator used by Checker.
type Speller interface {
	Known(word string) bool
	Candidates(word string, n int) []string
	Correction(word string) string
}

// Dictionary is the user allow-list consulted before the speller.
type Dictionary interface {
	Contains(word string) bool
}

// Checker runs the spell-check pipeline for a single text.
type Checker struct {
	speller        Speller
	dict           Dictionary
	maxSuggestions int
}

// NewChecker creates a Checker. dict may be nil.
func NewChecker(speller Speller, dict Dictionary) *Checker {
	return &Checker{
		speller:        speller,
		dict:           dict,
		maxSuggestions: DefaultMaxCandidates,
	}
}

// Check extracts the words of text, flags the ones that are neither in the custom
// dictionary nor known to the speller, and returns the mistakes, accuracy and a
// corrected copy of text.
func (c *Checker) Check(ctx context.Context, text string) (*types.CheckResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &types.ValidationError{Field: "text", Message: "Text is required"}
	}

	words := ExtractWords(text)

	var unknown []string
	seen := make(map[string]bool)
	for _, word := range words {
		lower := strings.ToLower(word)
		if seen[lower] {
			continue
		}
		seen[lower] = true

		if c.dict != nil && c.dict.Contains(lower) {
			continue
		}
		if !c.speller.Known(lower) {
			unknown = append(unknown, lower)
		}
	}

	mistakes := make([]types.Mistake, 0, len(unknown))
	corrections := make(map[string]string, len(unknown))
	for _, word := range unknown {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		suggestions := c.speller.Candidates(word, c.maxSuggestions)
		if suggestions == nil {
			suggestions = []string{}
		}
		mistakes = append(mistakes, types.Mistake{Word: word, Suggestions: suggestions})

		if best := c.speller.Correction(word); best != "" {
			corrections[word] = best
		}
	}

	return &types.CheckResult{
		TotalWords:      len(words),
		WrongWordsCount: len(unknown),
		Accuracy:        Accuracy(len(words), len(unknown)),
		Mistakes:        mistakes,
		CorrectedText:   ApplyCorrections(text, corrections),
	}, nil
}

// Accuracy returns the percentage of words not flagged, rounded to two decimals.
// It is 100 when no words were checked.
func Accuracy(total, wrong int) float64 {
	if total <= 0 {
		return 100
	}
	if wrong < 0 {
		wrong = 0
	}
	if wrong > total {
		wrong = total
	}
	pct := float64(total-wrong) / float64(total) * 100
	return math.Round(pct*100) / 100
}
