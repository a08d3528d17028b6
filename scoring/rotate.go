package scoring

import (
	"math/rand"
	"sort"

	"guessdle/models"
)

// PickAnswer selects a new correct answer uniformly at random from the answer
// set. ok is false for an empty set, in which case the game must be left
// untouched by the caller.
func PickAnswer(answers models.AnswerMap) (key string, ok bool) {
	if len(answers) == 0 {
		return "", false
	}
	keys := make([]string, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	// Map iteration order is not uniform; sort first so the draw is.
	sort.Strings(keys)
	return keys[rand.Intn(len(keys))], true
}
