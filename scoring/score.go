package scoring

import (
	"errors"

	"guessdle/models"
)

// ErrAnswerNotFound is returned when a guessed key is not in the game's
// answer set. A missing correct answer is the same condition: the game is
// unplayable until rotation or an author edit repairs it.
var ErrAnswerNotFound = errors.New("answer not found")

// GuessResult is the scored outcome of one full guess.
type GuessResult struct {
	// Outcomes holds one entry per attribute, in the game's declared
	// attribute order. Clients render columns positionally.
	Outcomes []models.GuessOutcome
	// IsWin is a nominal identity check on the guessed key, independent of
	// the per-attribute outcomes.
	IsWin bool
}

// Score compares the guessed answer against the game's current correct
// answer, one attribute at a time. Values absent from either answer's map are
// resolved to the "N/A" sentinel before comparison.
func Score(attrs []models.AttributeDefinition, answers models.AnswerMap, correctKey, guessedKey string) (*GuessResult, error) {
	guessed, ok := answers[guessedKey]
	if !ok {
		return nil, ErrAnswerNotFound
	}
	correct, ok := answers[correctKey]
	if !ok {
		return nil, ErrAnswerNotFound
	}

	outcomes := make([]models.GuessOutcome, 0, len(attrs))
	for _, attr := range attrs {
		g := guessed.AttributeValue(attr.Name)
		c := correct.AttributeValue(attr.Name)
		outcomes = append(outcomes, Compare(attr.Type, g, c))
	}

	return &GuessResult{
		Outcomes: outcomes,
		IsWin:    guessedKey == correctKey,
	}, nil
}
