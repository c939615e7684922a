package models

import (
	"reflect"
	"testing"
)

func TestSplitTechnologies(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"comma separated", "React, TypeScript, Node.js", []string{"React", "TypeScript", "Node.js"}},
		{"no spaces", "Go,Postgres", []string{"Go", "Postgres"}},
		{"extra whitespace", "  Go ,  Postgres  ", []string{"Go", "Postgres"}},
		{"empty entries dropped", "Go,,Postgres,", []string{"Go", "Postgres"}},
		{"single entry", "Go", []string{"Go"}},
		{"empty string", "", []string{}},
		{"only separators", ", ,", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitTechnologies(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitTechnologies(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestJoinTechnologies(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  string
	}{
		{"multiple", []string{"React", "TypeScript"}, "React, TypeScript"},
		{"single", []string{"Go"}, "Go"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinTechnologies(tt.input); got != tt.want {
				t.Errorf("JoinTechnologies(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitJoinRoundTrip(t *testing.T) {
	form := "React, TypeScript, Node.js"
	if got := JoinTechnologies(SplitTechnologies(form)); got != form {
		t.Errorf("round trip = %q, want %q", got, form)
	}
}
