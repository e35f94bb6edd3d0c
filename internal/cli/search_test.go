package cli

import (
	"strings"
	"testing"
)

func TestParseWorkers(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"0", 0},
		{"1", 1},
		{"4", 4},
		{"255", 255},
		{"256", 0},  // out of 8-bit range
		{"-1", 0},   // not unsigned
		{"four", 0}, // not numeric
		{"", 0},
		{"4.0", 0},
	}

	for _, tt := range tests {
		if got := parseWorkers(tt.in); got != tt.want {
			t.Errorf("parseWorkers(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTruncateWord(t *testing.T) {
	if got := truncateWord("short", 128); string(got) != "short" {
		t.Errorf("got %q", got)
	}

	long := strings.Repeat("x", 200)
	got := truncateWord(long, 128)
	if len(got) != 128 {
		t.Errorf("got %d bytes, want truncation to 128", len(got))
	}

	if got := truncateWord("", 128); len(got) != 0 {
		t.Errorf("got %q, want empty", got)
	}
}
