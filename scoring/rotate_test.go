package scoring

import (
	"testing"

	"guessdle/models"
)

func TestPickAnswerMembership(t *testing.T) {
	answers := models.AnswerMap{
		"a": {Name: "a"},
		"b": {Name: "b"},
		"c": {Name: "c"},
	}

	for i := 0; i < 100; i++ {
		key, ok := PickAnswer(answers)
		if !ok {
			t.Fatal("PickAnswer returned ok = false for a non-empty set")
		}
		if _, present := answers[key]; !present {
			t.Fatalf("PickAnswer returned %q, not a key of the answer set", key)
		}
	}
}

func TestPickAnswerCoversAllKeys(t *testing.T) {
	answers := models.AnswerMap{
		"a": {Name: "a"},
		"b": {Name: "b"},
		"c": {Name: "c"},
	}

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		key, _ := PickAnswer(answers)
		seen[key] = true
	}

	// 1000 draws over 3 keys miss one with probability ~3e-176.
	for key := range answers {
		if !seen[key] {
			t.Errorf("key %q never drawn", key)
		}
	}
}

func TestPickAnswerEmptySet(t *testing.T) {
	tests := []struct {
		name    string
		answers models.AnswerMap
	}{
		{name: "empty map", answers: models.AnswerMap{}},
		{name: "nil map", answers: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := PickAnswer(tt.answers)
			if ok {
				t.Error("ok = true, want false")
			}
			if key != "" {
				t.Errorf("key = %q, want empty", key)
			}
		})
	}
}

func TestPickAnswerSingleKey(t *testing.T) {
	answers := models.AnswerMap{"only": {Name: "only"}}
	key, ok := PickAnswer(answers)
	if !ok || key != "only" {
		t.Errorf("PickAnswer = (%q, %v), want (\"only\", true)", key, ok)
	}
}
