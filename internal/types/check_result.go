package types

// Mistake is a single unknown word together with its correction candidates.
type Mistake struct {
	Word        string   `json:"word"`
	Suggestions []string `json:"suggestions"`
}

// CheckResult is the outcome of spell-checking one text.
type CheckResult struct {
	TotalWords      int       `json:"total_words"`
	WrongWordsCount int       `json:"wrong_words_count"`
	Accuracy        float64   `json:"accuracy"`
	Mistakes        []Mistake `json:"mistakes"`
	CorrectedText   string    `json:"corrected_text"`
}

// MessageResponse is the body returned by the dictionary routes.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
