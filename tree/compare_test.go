package tree

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		{"nil == nil", nil, nil, 0},
		{"nil < node", nil, New("a"), -1},

		// Key ordering comes first.
		{"a < b", New("a"), New("b"), -1},
		{"a == a", New("a"), New("a"), 0},

		// The missing value sorts before any present one.
		{"no value < empty value", New("a"), New("a").WithValue(""), -1},
		{"empty value < value", New("a").WithValue(""), New("a").WithValue("x"), -1},
		{"value < value", New("a").WithValue("x"), New("a").WithValue("y"), -1},
		{"value == value", New("a").WithValue("x"), New("a").WithValue("x"), 0},

		// Children compare elementwise, then by count.
		{"fewer children < more", New("a"), New("a").WithChildren(New("b")), -1},
		{"child keys order", New("a").WithChildren(New("b")), New("a").WithChildren(New("c")), -1},
		{"equal subtrees",
			New("a").WithChildren(New("b").WithValue("1"), New("b").WithValue("2")),
			New("a").WithChildren(New("b").WithValue("1"), New("b").WithValue("2")),
			0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			// Test symmetry
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}

func TestCompareDocuments(t *testing.T) {
	a := NewDocument()
	a.Create("User").WithValue("gennyble")
	b := a.Clone()
	if !a.Equal(b) {
		t.Errorf("clone not equal to original")
	}
	b.Create("Host")
	if a.Equal(b) {
		t.Errorf("documents with different roots compare equal")
	}
	if got := CompareDocuments(a, b); got != -1 {
		t.Errorf("CompareDocuments() = %v, want -1", got)
	}
}
