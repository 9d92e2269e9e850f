package textutil

import (
	"reflect"
	"testing"
)

func TestNormalizeToken(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "Press", "press"},
		{"plural stripped", "curls", "curl"},
		{"es plural stripped", "crunches", "crunch"},
		{"bridges keeps trailing e", "Bridges", "bridge"},
		{"double s kept", "press", "press"},
		{"short s kept", "abs", "ab"},
		{"ing stripped", "curling", "curl"},
		{"ers stripped", "pushers", "push"},
		{"irregular plural", "glutes", "glute"},
		{"synonym fold", "pressups", "pushup"},
		{"irregular after stemming", "flyes", "fly"},
		{"diacritics stripped", "Plié", "plie"},
		{"punctuation removed", "push-up!", "pushup"},
		{"stop word dropped", "the", ""},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"symbols only", "!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeToken(tt.in); got != tt.want {
				t.Errorf("NormalizeToken(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts TokenizeOptions
		want []string
	}{
		{
			name: "full tokens keep descriptors",
			in:   "Standing Front Raise",
			want: []string{"standing", "front", "raise"},
		},
		{
			name: "core tokens drop descriptors",
			in:   "Standing Front Raise",
			opts: TokenizeOptions{OmitDescriptors: true},
			want: []string{"raise"},
		},
		{
			name: "stop words never tokenize",
			in:   "Push-Up on the Floor",
			want: []string{"pushup", "floor"},
		},
		{
			name: "side view variant",
			in:   "Push-Up (Side View)",
			opts: TokenizeOptions{OmitDescriptors: true},
			want: []string{"pushup"},
		},
		{
			name: "empty input",
			in:   "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in, tt.opts)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeNameStemsPlurals(t *testing.T) {
	if got, want := NormalizeName("Glute Bridges"), NormalizeName("Glute Bridge"); got != want {
		t.Errorf("NormalizeName mismatch: %q vs %q", got, want)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Upper Back", "upper-back"},
		{"Biceps brachii", "biceps-brachii"},
		{"  Côte  ", "cote"},
		{"", "unknown"},
		{"!!!", "unknown"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
