package utils

import "testing"

func TestRuneIndexToByteOffset(t *testing.T) {
	s := "héllo wörld"
	tests := []struct {
		rune int
		want int
	}{
		{-1, 0},
		{0, 0},
		{1, 1},
		{2, 3}, // 'é' is two bytes
		{7, 8},
		{8, 10}, // 'ö' is two bytes
		{11, len(s)},
		{50, len(s)},
	}
	for _, tc := range tests {
		if got := RuneIndexToByteOffset(s, tc.rune); got != tc.want {
			t.Errorf("RuneIndexToByteOffset(%q, %d) = %d, want %d", s, tc.rune, got, tc.want)
		}
	}
}

func TestByteOffsetToRuneIndex(t *testing.T) {
	s := "héllo"
	tests := []struct {
		offset int
		want   int
	}{
		{0, 0},
		{1, 1},
		{2, 1}, // inside 'é'
		{3, 2},
		{len(s), 5},
		{99, 5},
	}
	for _, tc := range tests {
		if got := ByteOffsetToRuneIndex(s, tc.offset); got != tc.want {
			t.Errorf("ByteOffsetToRuneIndex(%q, %d) = %d, want %d", s, tc.offset, got, tc.want)
		}
	}
}

func TestSliceRunes(t *testing.T) {
	s := "naïve café"
	if got := SliceRunes(s, 2, 5); got != "ïve" {
		t.Fatalf("expected %q, got %q", "ïve", got)
	}
	if got := SliceRunes(s, 6, -1); got != "café" {
		t.Fatalf("expected %q, got %q", "café", got)
	}
	if got := SliceRunes(s, 8, 3); got != "" {
		t.Fatalf("expected empty slice for inverted bounds, got %q", got)
	}
}
