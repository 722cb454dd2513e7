package util_test

import (
	"testing"

	"github.com/ja-he/annales/internal/util"
)

func TestTruncateAt(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    string
		length   int
		expected string
	}{
		{"regular string truncation", "aaaaabbbbbcccccddddd", 15, "aaaaabbbbbcc..."},
		{"no truncation needed", "aaaaabbbbbcccccddddd", 40, "aaaaabbbbbcccccddddd"},
		{"just barely no truncation needed", "aaaaabbbbbcccccddddd", 20, "aaaaabbbbbcccccddddd"},
		{"too short for ellipsis", "Actium", 2, "Ac"},
		{"runes", "Sæwulf's journey", 8, "Sæwul..."},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if result := util.TruncateAt(tc.input, tc.length); result != tc.expected {
				t.Errorf("expected '%s', got '%s'", tc.expected, result)
			}
		})
	}
}

func TestPadCenter(t *testing.T) {
	if result := util.PadCenter("warn", 7); result != " warn  " {
		t.Errorf("expected ' warn  ', got '%s'", result)
	}
	if result := util.PadCenter("toolong", 3); result != "toolong" {
		t.Errorf("expected unchanged string, got '%s'", result)
	}
}

func TestWrap(t *testing.T) {
	lines := util.Wrap("Octavian defeats Antony and Cleopatra at Actium", 20)
	expected := []string{"Octavian defeats", "Antony and Cleopatra", "at Actium"}
	if len(lines) != len(expected) {
		t.Fatalf("expected %d lines, got %v", len(expected), lines)
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("line %d: expected '%s', got '%s'", i, expected[i], lines[i])
		}
	}

	long := util.Wrap("Constantinople", 5)
	if len(long) != 3 || long[0] != "Const" || long[2] != "ople" {
		t.Errorf("unexpected hard wrap: %v", long)
	}
}

func TestRectContains(t *testing.T) {
	r := util.NewRect(2, 3, 4, 5)
	if !r.Contains(2, 3) || !r.Contains(5, 7) {
		t.Error("rect does not contain its corners")
	}
	if r.Contains(6, 3) || r.Contains(2, 8) {
		t.Error("rect contains cells past its edges")
	}
}
