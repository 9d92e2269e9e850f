package textutil

import (
	"math"
	"testing"
)

func TestDiceProperties(t *testing.T) {
	a := Bigrams("incline bench press")
	b := Bigrams("bench press")

	if got := Dice(a, a); got != 1 {
		t.Errorf("Dice(a, a) = %v, want 1", got)
	}
	if got, mirror := Dice(a, b), Dice(b, a); got != mirror {
		t.Errorf("Dice not symmetric: %v vs %v", got, mirror)
	}
	if got := Dice(a, nil); got != 0 {
		t.Errorf("Dice(a, nil) = %v, want 0", got)
	}
	if got := Dice(nil, nil); got != 0 {
		t.Errorf("Dice(nil, nil) = %v, want 0", got)
	}
}

func TestDicePartialOverlap(t *testing.T) {
	got := Dice(Bigrams("lateral raise"), Bigrams("front raise"))
	if got <= 0 || got >= 1 {
		t.Errorf("Dice(partial) = %v, want between 0 and 1", got)
	}
}

func TestDiceSetSemantics(t *testing.T) {
	// Repeated bigrams must count once per side.
	a := []string{"ab", "ab", "cd"}
	b := []string{"ab", "cd", "cd"}
	if got := Dice(a, b); got != 1 {
		t.Errorf("Dice(duplicates) = %v, want 1", got)
	}
}

func TestOverlapRatio(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want float64
	}{
		{"identical", []string{"bench", "press"}, []string{"bench", "press"}, 1},
		{"short vs long", []string{"press"}, []string{"bench", "press"}, 0.5},
		{"disjoint", []string{"squat"}, []string{"press"}, 0},
		{"empty side", nil, []string{"press"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OverlapRatio(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("OverlapRatio() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBigramsShortWord(t *testing.T) {
	got := Bigrams("ab row")
	want := map[string]bool{"ab": true, "ro": true, "ow": true}
	if len(got) != len(want) {
		t.Fatalf("Bigrams = %v, want keys %v", got, want)
	}
	for _, gram := range got {
		if !want[gram] {
			t.Errorf("unexpected bigram %q in %v", gram, got)
		}
	}
}
