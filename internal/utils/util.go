package utils

import "unicode/utf8"

// RuneIndexToByteOffset converts a rune index to a byte offset in s.
// Indexes past the end clamp to len(s); negative indexes clamp to 0.
func RuneIndexToByteOffset(s string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	currentRune := 0
	for byteOffset := range s {
		if currentRune == runeIndex {
			return byteOffset
		}
		currentRune++
	}
	return len(s)
}

// ByteOffsetToRuneIndex converts a byte offset to a rune index in s.
// An offset inside a multi-byte rune counts only the runes that end before it.
func ByteOffsetToRuneIndex(s string, byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}
	if byteOffset >= len(s) {
		return utf8.RuneCountInString(s)
	}
	runeIndex := 0
	currentOffset := 0
	for currentOffset < byteOffset {
		_, size := utf8.DecodeRuneInString(s[currentOffset:])
		if currentOffset+size > byteOffset {
			break
		}
		currentOffset += size
		runeIndex++
	}
	return runeIndex
}

// RuneLen returns the number of runes in s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// SliceRunes returns the substring of s between rune columns from and to.
// A negative to means "end of string". Columns are clamped to the string.
func SliceRunes(s string, from, to int) string {
	start := RuneIndexToByteOffset(s, from)
	end := len(s)
	if to >= 0 {
		end = RuneIndexToByteOffset(s, to)
	}
	if end < start {
		end = start
	}
	return s[start:end]
}
