package spelling

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagr12004/Spell-Checker/internal/dictionary"
	"github.com/sagr12004/Spell-Checker/internal/types"
)

func TestChecker_Check_Scenario(t *testing.T) {
	checker := NewChecker(defaultEngine(t), dictionary.NewStore())

	result, err := checker.Check(context.Background(), "Ths is a tst.")
	require.NoError(t, err)

	assert.Equal(t, 4, result.TotalWords)
	assert.Equal(t, 2, result.WrongWordsCount)
	assert.Equal(t, 50.0, result.Accuracy)
	require.Len(t, result.Mistakes, 2)
	assert.Equal(t, "ths", result.Mistakes[0].Word)
	assert.Equal(t, "tst", result.Mistakes[1].Word)
	assert.LessOrEqual(t, len(result.Mistakes[0].Suggestions), DefaultMaxCandidates)
	assert.Equal(t, "the", result.Mistakes[0].Suggestions[0])
	assert.Equal(t, "test", result.Mistakes[1].Suggestions[0])
	assert.Equal(t, "the is a test.", result.CorrectedText)
}

func TestChecker_Check_EmptyText(t *testing.T) {
	checker := NewChecker(newFakeSpeller(), nil)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := checker.Check(context.Background(), text)
		require.Error(t, err)

		var vErr *types.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "Text is required", vErr.Message)
	}
}

func TestChecker_Check_NoWords(t *testing.T) {
	checker := NewChecker(newFakeSpeller(), nil)

	result, err := checker.Check(context.Background(), "123 456 !!!")
	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalWords)
	assert.Equal(t, 0, result.WrongWordsCount)
	assert.Equal(t, 100.0, result.Accuracy)
	assert.NotNil(t, result.Mistakes)
	assert.Empty(t, result.Mistakes)
	assert.Equal(t, "123 456 !!!", result.CorrectedText)
}

func TestChecker_Check_DistinctUnknownWords(t *testing.T) {
	speller := newFakeSpeller("is")
	speller.candidates["tst"] = []string{"test", "toast"}
	speller.corrections["tst"] = "test"
	checker := NewChecker(speller, nil)

	result, err := checker.Check(context.Background(), "tst is TST is Tst")
	require.NoError(t, err)

	assert.Equal(t, 5, result.TotalWords)
	assert.Equal(t, 1, result.WrongWordsCount)
	assert.Equal(t, 80.0, result.Accuracy)
	require.Len(t, result.Mistakes, 1)
	assert.Equal(t, types.Mistake{Word: "tst", Suggestions: []string{"test", "toast"}}, result.Mistakes[0])
	assert.Equal(t, "test is test is test", result.CorrectedText)
}

func TestChecker_Check_NoCorrectionAvailable(t *testing.T) {
	checker := NewChecker(newFakeSpeller("is"), nil)

	result, err := checker.Check(context.Background(), "xqzv is")
	require.NoError(t, err)

	require.Len(t, result.Mistakes, 1)
	assert.NotNil(t, result.Mistakes[0].Suggestions)
	assert.Empty(t, result.Mistakes[0].Suggestions)
	assert.Equal(t, "xqzv is", result.CorrectedText)
}

func TestChecker_Check_SuggestionsTruncated(t *testing.T) {
	speller := newFakeSpeller()
	speller.candidates["abc"] = []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	checker := NewChecker(speller, nil)

	result, err := checker.Check(context.Background(), "abc")
	require.NoError(t, err)
	require.Len(t, result.Mistakes, 1)
	assert.Len(t, result.Mistakes[0].Suggestions, DefaultMaxCandidates)
}

func TestChecker_Check_DictionaryOverride(t *testing.T) {
	store := dictionary.NewStore()
	checker := NewChecker(defaultEngine(t), store)

	before, err := checker.Check(context.Background(), "Teh")
	require.NoError(t, err)
	assert.Equal(t, 1, before.WrongWordsCount)

	_, err = store.Add(" Teh ")
	require.NoError(t, err)

	after, err := checker.Check(context.Background(), "Teh")
	require.NoError(t, err)
	assert.Equal(t, 0, after.WrongWordsCount)
	assert.Equal(t, 100.0, after.Accuracy)
	assert.Empty(t, after.Mistakes)
	assert.Equal(t, "Teh", after.CorrectedText)
}

func TestChecker_Check_AddThenResetRoundTrip(t *testing.T) {
	store := dictionary.NewStore()
	checker := NewChecker(defaultEngine(t), store)
	text := "speling korrect"

	original, err := checker.Check(context.Background(), text)
	require.NoError(t, err)

	_, err = store.Add("speling")
	require.NoError(t, err)
	added, err := checker.Check(context.Background(), text)
	require.NoError(t, err)
	assert.Equal(t, original.WrongWordsCount-1, added.WrongWordsCount)

	store.Reset()
	restored, err := checker.Check(context.Background(), text)
	require.NoError(t, err)
	assert.Equal(t, original.WrongWordsCount, restored.WrongWordsCount)
	assert.Equal(t, original.Accuracy, restored.Accuracy)
	assert.Equal(t, original.CorrectedText, restored.CorrectedText)
}

func TestChecker_Check_AllWordsInDictionary(t *testing.T) {
	dict := setDictionary{"ths": true, "tst": true, "qwx": true}
	checker := NewChecker(newFakeSpeller(), dict)

	result, err := checker.Check(context.Background(), "Ths tst, QWX!")
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalWords)
	assert.Equal(t, 0, result.WrongWordsCount)
	assert.Equal(t, 100.0, result.Accuracy)
}

func TestChecker_Check_CanceledContext(t *testing.T) {
	checker := NewChecker(newFakeSpeller(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := checker.Check(ctx, "unknown")
	require.ErrorIs(t, err, context.Canceled)
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		wrong    int
		expected float64
	}{
		{"no words", 0, 0, 100},
		{"all correct", 10, 0, 100},
		{"half wrong", 4, 2, 50},
		{"all wrong", 3, 3, 0},
		{"rounded to two decimals", 3, 1, 66.67},
		{"another rounding", 7, 2, 71.43},
		{"wrong exceeds total", 2, 5, 0},
		{"negative wrong", 5, -1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Accuracy(tt.total, tt.wrong)
			assert.Equal(t, tt.expected, got)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}
