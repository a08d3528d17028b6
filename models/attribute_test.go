package models

import "testing"

func TestParseAttributeType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    AttributeType
		wantErr bool
	}{
		{name: "string", input: "string", want: TypeString},
		{name: "number", input: "number", want: TypeNumber},
		{name: "boolean", input: "boolean", want: TypeBoolean},
		{name: "collection", input: "collection", want: TypeCollection},
		{name: "unknown", input: "date", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "wrong case", input: "String", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAttributeType(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseAttributeType(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAttributeType(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAttributeType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAnswerAttributeValue(t *testing.T) {
	answer := Answer{
		Name:       "A",
		Attributes: map[string]string{"Color": "Red"},
	}

	if got := answer.AttributeValue("Color"); got != "Red" {
		t.Errorf("AttributeValue(Color) = %q, want Red", got)
	}
	if got := answer.AttributeValue("Size"); got != ValueNotAvailable {
		t.Errorf("AttributeValue(Size) = %q, want %q", got, ValueNotAvailable)
	}
}
