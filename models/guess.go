package models

// GuessStatus is the qualitative relationship between a guessed attribute
// value and the correct answer's value.
type GuessStatus string

const (
	StatusCorrect   GuessStatus = "correct"
	StatusIncorrect GuessStatus = "incorrect"
	StatusPartial   GuessStatus = "partial" // collection overlap without full match
	StatusOver      GuessStatus = "over"    // numeric guess above the correct value
	StatusUnder     GuessStatus = "under"   // numeric guess below the correct value
)

// GuessOutcome is the per-attribute comparison result returned to the client.
// Computed per request, never persisted.
type GuessOutcome struct {
	Status  GuessStatus `json:"status"`
	Details string      `json:"details"`
}
