package logger

import "testing"

func TestInit(t *testing.T) {
	tests := []struct {
		name   string
		format string
	}{
		{name: "json", format: "json"},
		{name: "console", format: "console"},
		{name: "unknown falls back to console", format: "syslog"},
		{name: "empty falls back to console", format: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.format)
			if Log == nil {
				t.Fatalf("Log is nil after Init(%q)", tt.format)
			}
		})
	}

	Init("console")
}
