package roster

import "testing"

// TestGreet verifies greeting formatting.
func TestGreet(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain name", "alice", "Hello, alice"},
		{"empty name", "", "Hello, "},
		{"name with spaces", "  Bob  ", "Hello,   Bob  "},
		{"unicode name", "José", "Hello, José"},
		{"multibyte name", "名前", "Hello, 名前"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Greet(tt.input)
			if got != tt.expected {
				t.Errorf("Greet(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

// TestGreet_Purity verifies repeated calls return identical results.
func TestGreet_Purity(t *testing.T) {
	first := Greet("alice")
	second := Greet("alice")

	if first != second {
		t.Errorf("expected identical results, got %q and %q", first, second)
	}
}
