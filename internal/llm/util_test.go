package llm

import (
	"testing"
)

func TestCleanJSONBlock_MarkdownCodeBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"tone\": \"Friendly\"}\n```",
			expected: `{"tone": "Friendly"}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"tone\": \"Formal\"}\n```",
			expected: `{"tone": "Formal"}`,
		},
		{
			name:     "code block with language",
			input:    "```javascript\n{\"professional_version\": \"Hello.\"}\n```",
			expected: `{"professional_version": "Hello."}`,
		},
		{
			name:     "plain JSON",
			input:    `{"tone": "Neutral"}`,
			expected: `{"tone": "Neutral"}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "\n\n  {\"tone\": \"Sad\"}  \n",
			expected: `{"tone": "Sad"}`,
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "not json at all",
			input:    "I cannot help with that.",
			expected: "I cannot help with that.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanJSONBlock(tt.input)
			if result != tt.expected {
				t.Errorf("CleanJSONBlock() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestCleanJSONBlock_PreambleText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "preamble before JSON object",
			input:    "Here is the tone analysis:\n{\"tone\": \"Confident\"}",
			expected: `{"tone": "Confident"}`,
		},
		{
			name:     "preamble before JSON array",
			input:    "Possible tones:\n[\"Formal\", \"Neutral\"]",
			expected: `["Formal", "Neutral"]`,
		},
		{
			name:     "JSON with trailing text",
			input:    "{\"tone\": \"Angry\"}\n\nLet me know if you need anything else!",
			expected: `{"tone": "Angry"}`,
		},
		{
			name:     "fenced JSON with trailing prose inside fence",
			input:    "```json\n{\"tone\": \"Formal\"}\nHope this helps\n```",
			expected: `{"tone": "Formal"}`,
		},
		{
			name:     "JSON with escaped quotes",
			input:    "Result: {\"professional_version\": \"She said \\\"thanks\\\"\"}",
			expected: `{"professional_version": "She said \"thanks\""}`,
		},
		{
			name:     "braces inside strings",
			input:    "Output: {\"suggestion\": \"Avoid {slang} and }\"}",
			expected: `{"suggestion": "Avoid {slang} and }"}`,
		},
		{
			name:     "unbalanced object left as is",
			input:    "Result: {\"tone\": ",
			expected: "Result: {\"tone\": ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanJSONBlock(tt.input)
			if result != tt.expected {
				t.Errorf("CleanJSONBlock() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple object", `{"tone": "Friendly"}`, `{"tone": "Friendly"}`},
		{"nested objects", `{"a": {"b": "c"}}`, `{"a": {"b": "c"}}`},
		{"object with array", `{"tones": [1, 2]}`, `{"tones": [1, 2]}`},
		{"object with trailing text", `{"k": "v"} and more`, `{"k": "v"}`},
		{"empty input", "", ""},
		{"not starting with brace", "not json", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractJSONObject(tt.input)
			if result != tt.expected {
				t.Errorf("extractJSONObject() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple array", `["a", "b"]`, `["a", "b"]`},
		{"nested arrays", `[[1], [2]]`, `[[1], [2]]`},
		{"array of objects", `[{"id": 1}]`, `[{"id": 1}]`},
		{"array with trailing text", `[1, 2] extra`, `[1, 2]`},
		{"empty input", "", ""},
		{"not starting with bracket", "nope", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractJSONArray(tt.input)
			if result != tt.expected {
				t.Errorf("extractJSONArray() = %q, want %q", result, tt.expected)
			}
		})
	}
}
