package jurisdiction

import (
	"strings"
	"testing"
)

func TestLookupName(t *testing.T) {
	tests := []struct {
		name  string
		want  Alpha2
		found bool
	}{
		{"Norway", NO, true},
		{"norway", NO, true},
		{"  NORWAY  ", NO, true},
		{"United States of America", US, true},
		{"Åland Islands", AX, true},
		{"Norwai", 0, false}, // no fuzzy matching here
		{"United States", 0, false},
		{"", 0, false},
		{"   ", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, ok := LookupName(tt.name)
			if ok != tt.found {
				t.Fatalf("LookupName(%q) ok = %v, want %v", tt.name, ok, tt.found)
			}
			if ok && !j.Is(tt.want) {
				t.Errorf("LookupName(%q) = %v, want %v", tt.name, j, tt.want)
			}
		})
	}
}

func TestSearchName(t *testing.T) {
	tests := []struct {
		query   string
		maxDist int
		want    Alpha2
		found   bool
	}{
		{"Norway", 0, NO, true},   // exact
		{"norwai", 2, NO, true},   // one substitution
		{"Norwy", 2, NO, true},    // one deletion
		{"Switz", 0, CH, true},    // prefix
		{"kingdom", 0, GB, true},  // substring
		{"sweden", 0, SE, true},   // exact, case folded
		{"zzzzzz", 0, 0, false},   // nothing matches without fuzz
		{"", 3, 0, false},
		{"  ", 3, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			j, ok := SearchName(tt.query, tt.maxDist)
			if ok != tt.found {
				t.Fatalf("SearchName(%q, %d) ok = %v, want %v", tt.query, tt.maxDist, ok, tt.found)
			}
			if ok && !j.Is(tt.want) {
				t.Errorf("SearchName(%q, %d) = %v, want %v", tt.query, tt.maxDist, j, tt.want)
			}
		})
	}
}

// Short queries never fuzzy match, regardless of the requested
// distance.
func TestSearchNameShortQuery(t *testing.T) {
	if _, ok := SearchName("xq", 3); ok {
		t.Error("two letter garbage should not fuzzy match")
	}
}

// Oversized queries are truncated rather than scanned in full.
func TestSearchNameLongQuery(t *testing.T) {
	j, ok := SearchName("norway"+strings.Repeat("x", 1000), 0)
	if ok {
		t.Errorf("padded garbage query matched %v", j)
	}
}

func TestSearchNameDeterministicTie(t *testing.T) {
	// Both runs must agree even when several names score equally.
	a, okA := SearchName("guine", 2)
	b, okB := SearchName("guine", 2)
	if okA != okB || (okA && !a.Equal(b)) {
		t.Errorf("tie broke differently across runs: %v vs %v", a, b)
	}
}
