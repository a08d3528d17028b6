package services

import (
	"testing"
)

func TestBuildAttributes(t *testing.T) {
	tests := []struct {
		name    string
		inputs  []AttributeInput
		wantErr bool
	}{
		{
			name: "valid mix of types",
			inputs: []AttributeInput{
				{Name: "Color", Type: "string"},
				{Name: "Size", Type: "number"},
				{Name: "Flies", Type: "boolean"},
				{Name: "Regions", Type: "collection"},
			},
		},
		{
			name: "duplicate name rejected",
			inputs: []AttributeInput{
				{Name: "Color", Type: "string"},
				{Name: "Color", Type: "number"},
			},
			wantErr: true,
		},
		{
			name:    "unknown type rejected",
			inputs:  []AttributeInput{{Name: "When", Type: "date"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs, err := buildAttributes(tt.inputs)
			if tt.wantErr {
				if err == nil {
					t.Error("buildAttributes succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("buildAttributes error: %v", err)
			}
			if len(attrs) != len(tt.inputs) {
				t.Errorf("got %d attributes, want %d", len(attrs), len(tt.inputs))
			}
			// Declared order must survive the conversion.
			for i, in := range tt.inputs {
				if attrs[i].Name != in.Name {
					t.Errorf("attribute %d = %q, want %q", i, attrs[i].Name, in.Name)
				}
			}
		})
	}
}

func TestBuildAnswers(t *testing.T) {
	inputs := []AnswerInput{
		{Name: "A", Attributes: map[string]string{"Color": "Red"}},
		{Name: "B"},
	}

	answers, err := buildAnswers(inputs)
	if err != nil {
		t.Fatalf("buildAnswers error: %v", err)
	}
	if len(answers) != 2 {
		t.Fatalf("got %d answers, want 2", len(answers))
	}
	if answers["B"].Attributes == nil {
		t.Error("answer without attributes should get an empty map, not nil")
	}

	_, err = buildAnswers([]AnswerInput{{Name: "A"}, {Name: "A"}})
	if err == nil {
		t.Error("duplicate answer name accepted, want error")
	}
}
