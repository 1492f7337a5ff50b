package spelling

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru"
	"github.com/sajari/fuzzy"
)

//go:embed data/en_frequency.txt
var embeddedFrequencies []byte

const (
	// DefaultMaxCandidates is how many correction candidates are reported per word.
	DefaultMaxCandidates = 6
	// DefaultEditDepth is the maximum edit distance indexed by the model.
	DefaultEditDepth = 2
	// DefaultCacheSize is the number of words whose suggestions are memoised.
	DefaultCacheSize = 4096
)

// EngineOptions tunes the spelling model.
type EngineOptions struct {
	EditDepth     int
	CacheSize     int
	MaxCandidates int
}

func (o EngineOptions) withDefaults() EngineOptions {
	if o.EditDepth <= 0 {
		o.EditDepth = DefaultEditDepth
	}
	if o.CacheSize <= 0 {
		o.CacheSize = DefaultCacheSize
	}
	if o.MaxCandidates <= 0 {
		o.MaxCandidates = DefaultMaxCandidates
	}
	return o
}

// Suggestion holds the ranked candidates and the single best correction for a word.
type Suggestion struct {
	Candidates []string
	Best       string
}

// Engine classifies words against a frequency-ranked corpus and proposes corrections.
// The corpus is read-only once the engine is built.
type Engine struct {
	model         *fuzzy.Model
	cache         *lru.Cache
	longest       int
	words         int
	depth         int
	maxCandidates int
}

// NewDefaultEngine builds an engine from the embedded English frequency list.
func NewDefaultEngine(opts EngineOptions) (*Engine, error) {
	return NewEngine(bytes.NewReader(embeddedFrequencies), opts)
}

// LoadEngine builds an engine from a frequency file on disk.
func LoadEngine(path string, opts EngineOptions) (*Engine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open frequency file %s: %w", path, err)
	}
	defer f.Close()

	return NewEngine(f, opts)
}

// NewEngine builds an engine from r. Each line holds a word optionally followed
// by its corpus count ("word 1234"); a missing count means 1. Blank lines and
// lines starting with '#' are skipped.
func NewEngine(r io.Reader, opts EngineOptions) (*Engine, error) {
	opts = opts.withDefaults()

	model := fuzzy.NewModel()
	model.SetUseAutocomplete(false)
	model.SetDepth(opts.EditDepth)
	model.SetThreshold(1)

	e := &Engine{model: model, depth: opts.EditDepth, maxCandidates: opts.MaxCandidates}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		word := strings.ToLower(fields[0])
		count := 1
		if len(fields) > 1 {
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("invalid count on line %d: %q", lineNo, fields[1])
			}
			count = n
		}
		if count <= 0 {
			continue
		}

		model.SetCount(word, count, true)
		e.words++
		if n := utf8.RuneCountInString(word); n > e.longest {
			e.longest = n
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read frequency list: %w", err)
	}
	if e.words == 0 {
		return nil, fmt.Errorf("frequency list is empty")
	}

	cache, err := lru.New(opts.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create suggestion cache: %w", err)
	}
	e.cache = cache

	return e, nil
}

// Size returns the number of words in the corpus.
func (e *Engine) Size() int {
	return e.words
}

// Known reports whether word is spelled correctly. Lookup is case-insensitive and
// ignores surrounding apostrophes. Tokens that consist only of apostrophes, or that
// are much longer than any corpus word, are not checked and count as known.
func (e *Engine) Known(word string) bool {
	w := strings.ToLower(word)
	if !e.shouldCheck(w) {
		return true
	}
	if e.inCorpus(w) {
		return true
	}
	if trimmed := strings.Trim(w, "'"); trimmed != w && e.inCorpus(trimmed) {
		return true
	}
	return false
}

func (e *Engine) shouldCheck(w string) bool {
	if strings.Trim(w, "'") == "" {
		return false
	}
	return utf8.RuneCountInString(w) <= e.longest+3
}

func (e *Engine) inCorpus(w string) bool {
	e.model.RLock()
	counts, ok := e.model.Data[w]
	e.model.RUnlock()
	return ok && counts.Corpus > 0
}

// Candidates returns up to n correction candidates for word, best first.
func (e *Engine) Candidates(word string, n int) []string {
	candidates := e.Suggest(word).Candidates
	if n >= 0 && len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}

// Correction returns the top-ranked candidate for word, or "" if there is none.
func (e *Engine) Correction(word string) string {
	return e.Suggest(word).Best
}

// minCandidateLen is the shortest candidate offered for inputs at least that long.
const minCandidateLen = 3

// Suggest returns the candidates and best correction for word. Candidates are
// corpus words within the edit depth, ranked by edit distance (a transposition
// counts as one edit), then corpus count, then alphabetically. Best is the first
// candidate. Results are cached.
func (e *Engine) Suggest(word string) Suggestion {
	w := strings.ToLower(word)
	if cached, ok := e.cache.Get(w); ok {
		return copySuggestion(cached.(Suggestion))
	}

	inputLen := utf8.RuneCountInString(w)
	var ranked []rankedCandidate
	for term, pot := range e.model.Potentials(w, true) {
		if term == "" || term == w || pot.Score <= 0 {
			continue
		}
		if inputLen >= minCandidateLen && utf8.RuneCountInString(term) < minCandidateLen {
			continue
		}
		dist := editDistance(w, term)
		if dist > e.depth {
			continue
		}
		ranked = append(ranked, rankedCandidate{term: term, distance: dist, count: pot.Score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.distance != b.distance {
			return a.distance < b.distance
		}
		if a.count != b.count {
			return a.count > b.count
		}
		return a.term < b.term
	})
	if len(ranked) > e.maxCandidates {
		ranked = ranked[:e.maxCandidates]
	}

	s := Suggestion{Candidates: make([]string, 0, len(ranked))}
	for _, c := range ranked {
		s.Candidates = append(s.Candidates, c.term)
	}
	if len(s.Candidates) > 0 {
		s.Best = s.Candidates[0]
	}

	e.cache.Add(w, s)
	return copySuggestion(s)
}

type rankedCandidate struct {
	term     string
	distance int
	count    int
}

func copySuggestion(s Suggestion) Suggestion {
	out := Suggestion{Best: s.Best, Candidates: make([]string, len(s.Candidates))}
	copy(out.Candidates, s.Candidates)
	return out
}
