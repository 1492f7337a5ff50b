package spelling

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	sharedEngine    *Engine
	sharedEngineErr error
	sharedOnce      sync.Once
)

// defaultEngine loads the embedded corpus once per test binary.
func defaultEngine(t *testing.T) *Engine {
	t.Helper()
	sharedOnce.Do(func() {
		sharedEngine, sharedEngineErr = NewDefaultEngine(EngineOptions{})
	})
	require.NoError(t, sharedEngineErr)
	return sharedEngine
}

// fakeSpeller is a deterministic Speller for pipeline tests.
type fakeSpeller struct {
	known       map[string]bool
	candidates  map[string][]string
	corrections map[string]string
}

func newFakeSpeller(known ...string) *fakeSpeller {
	f := &fakeSpeller{
		known:       make(map[string]bool),
		candidates:  make(map[string][]string),
		corrections: make(map[string]string),
	}
	for _, w := range known {
		f.known[w] = true
	}
	return f
}

func (f *fakeSpeller) Known(word string) bool {
	return f.known[strings.ToLower(word)]
}

func (f *fakeSpeller) Candidates(word string, n int) []string {
	c := f.candidates[word]
	if len(c) > n {
		c = c[:n]
	}
	return c
}

func (f *fakeSpeller) Correction(word string) string {
	return f.corrections[word]
}

type setDictionary map[string]bool

func (d setDictionary) Contains(word string) bool {
	return d[strings.ToLower(strings.TrimSpace(word))]
}
