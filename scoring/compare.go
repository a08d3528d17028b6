// Package scoring implements the guess-comparison engine: per-type attribute
// comparison, whole-guess scoring, the daily answer rotation pick and the
// play-history fold. Everything here is pure CPU work over in-memory values;
// persistence stays in the service layer.
package scoring

import (
	"strconv"
	"strings"

	"guessdle/models"
)

// Compare scores one guessed attribute value against the correct answer's
// value using the attribute type's semantics. Both values must already be
// resolved (absent values substituted with models.ValueNotAvailable by the
// caller); Compare never sees an absent value.
func Compare(attrType models.AttributeType, guess, correct string) models.GuessOutcome {
	switch attrType {
	case models.TypeString:
		return compareString(guess, correct)
	case models.TypeNumber:
		return compareNumber(guess, correct)
	case models.TypeBoolean:
		return compareBoolean(guess, correct)
	case models.TypeCollection:
		return CompareCollection(SplitTokens(guess), SplitTokens(correct))
	}
	// Unreachable for any type that passed ParseAttributeType.
	panic("scoring: unknown attribute type " + string(attrType))
}

// compareString is exact, case-sensitive equality. No trimming.
func compareString(guess, correct string) models.GuessOutcome {
	status := models.StatusIncorrect
	if guess == correct {
		status = models.StatusCorrect
	}
	return models.GuessOutcome{Status: status, Details: guess}
}

// compareNumber reports the direction the guess must move: under means the
// guess is below the correct value, over means above. Equality is the only
// correct path. A value that does not parse as a number scores incorrect
// rather than falling through undefined.
func compareNumber(guess, correct string) models.GuessOutcome {
	g, gErr := strconv.ParseFloat(strings.TrimSpace(guess), 64)
	c, cErr := strconv.ParseFloat(strings.TrimSpace(correct), 64)
	if gErr != nil || cErr != nil {
		return models.GuessOutcome{Status: models.StatusIncorrect, Details: guess}
	}

	details := strconv.FormatFloat(g, 'f', -1, 64)
	switch {
	case g < c:
		return models.GuessOutcome{Status: models.StatusUnder, Details: details}
	case g > c:
		return models.GuessOutcome{Status: models.StatusOver, Details: details}
	default:
		return models.GuessOutcome{Status: models.StatusCorrect, Details: details}
	}
}

// compareBoolean coerces both sides with parseBool and compares. Details
// renders the coerced guess, not the raw text.
func compareBoolean(guess, correct string) models.GuessOutcome {
	g, c := parseBool(guess), parseBool(correct)
	status := models.StatusIncorrect
	if g == c {
		status = models.StatusCorrect
	}
	return models.GuessOutcome{Status: status, Details: strconv.FormatBool(g)}
}

// parseBool accepts the literal "true" (case-insensitive, trimmed) as true;
// any other text is false.
func parseBool(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}

// SplitTokens turns a stored collection value into its token list: split on
// comma, trim each token. Tokens are not deduplicated and an empty string
// yields a single empty token, both deliberately — comparison semantics
// depend on the raw token sequence.
func SplitTokens(s string) []string {
	parts := strings.Split(s, ",")
	tokens := make([]string, len(parts))
	for i, p := range parts {
		tokens[i] = strings.TrimSpace(p)
	}
	return tokens
}

// CompareCollection scores two token sequences by membership: every correct
// token found anywhere in the guess counts, repeated tokens count
// independently, and order is ignored.
//
//	all correct tokens present and no extras -> correct
//	no correct token present at all          -> incorrect
//	anything in between                      -> partial
func CompareCollection(guess, correct []string) models.GuessOutcome {
	guessSet := make(map[string]struct{}, len(guess))
	for _, t := range guess {
		guessSet[t] = struct{}{}
	}
	correctSet := make(map[string]struct{}, len(correct))
	for _, t := range correct {
		correctSet[t] = struct{}{}
	}

	correctCount := 0
	for _, t := range correct {
		if _, ok := guessSet[t]; ok {
			correctCount++
		}
	}
	missing := len(correct) - correctCount

	extra := 0
	for _, t := range guess {
		if _, ok := correctSet[t]; !ok {
			extra++
		}
	}

	details := strings.Join(guess, ",")
	switch {
	case missing == 0 && extra == 0:
		return models.GuessOutcome{Status: models.StatusCorrect, Details: details}
	case missing == len(correct):
		return models.GuessOutcome{Status: models.StatusIncorrect, Details: details}
	default:
		return models.GuessOutcome{Status: models.StatusPartial, Details: details}
	}
}
