package spelling

import (
	"regexp"
	"sort"
	"strings"
)

// ApplyCorrections replaces every case-insensitive, whole-word occurrence of each key
// of corrections in text with its value. All words are replaced in a single pass, so a
// replacement is never itself rewritten by another correction. Replacements are
// inserted exactly as given, whatever the casing of the token they replace.
func ApplyCorrections(text string, corrections map[string]string) string {
	if len(corrections) == 0 || text == "" {
		return text
	}

	byLower := make(map[string]string, len(corrections))
	words := make([]string, 0, len(corrections))
	for word, fix := range corrections {
		lower := strings.ToLower(word)
		if lower == "" || fix == "" {
			continue
		}
		if _, dup := byLower[lower]; !dup {
			words = append(words, lower)
		}
		byLower[lower] = fix
	}
	if len(words) == 0 {
		return text
	}

	// Longest first so that alternation prefers "tst's" over "tst".
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})

	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	re := regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)

	return re.ReplaceAllStringFunc(text, func(match string) string {
		if fix, ok := byLower[strings.ToLower(match)]; ok {
			return fix
		}
		return match
	})
}
