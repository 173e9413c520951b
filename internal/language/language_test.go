package language

import (
	"strings"
	"testing"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"en", "English"},
		{"de", "German"},
		{"ja", "Japanese"},
		{" fr ", "French"},
		{"", "Unknown"},
		{"   ", "Unknown"},
		{"not a tag!", "NOT A TAG!"},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.input); got != tt.expected {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestDisplayNameRegionalTag(t *testing.T) {
	for _, input := range []string{"fa-IR", "fa_IR"} {
		if got := DisplayName(input); !strings.Contains(got, "Persian") {
			t.Errorf("DisplayName(%q) = %q, want a Persian name", input, got)
		}
	}
}
