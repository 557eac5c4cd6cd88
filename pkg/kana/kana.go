// Package kana holds the script helpers shared by the pipeline stages:
// kana/kanji classification of runes and conversion between the two kana
// scripts.
package kana

import "unicode/utf8"

// IsKana reports whether r is hiragana or katakana (including the prolonged
// sound mark and iteration marks).
func IsKana(r rune) bool {
	return r >= 0x3041 && r <= 0x30FF
}

// IsKanji reports whether r is a CJK unified ideograph or the 々 iteration mark.
func IsKanji(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || (r >= 0x3400 && r <= 0x4DBF) || r == '々'
}

// HasKanji reports whether s contains at least one kanji.
func HasKanji(s string) bool {
	for _, r := range s {
		if IsKanji(r) {
			return true
		}
	}
	return false
}

// FirstRune returns the first rune of s, or utf8.RuneError for an empty string.
func FirstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// LastRune returns the last rune of s, or utf8.RuneError for an empty string.
func LastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}

// Len returns the number of runes in s.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// TailLen counts the contiguous kana runes at the end of s.
func TailLen(s string) int {
	n := 0
	for len(s) > 0 {
		r, size := utf8.DecodeLastRuneInString(s)
		if !IsKana(r) {
			break
		}
		n++
		s = s[:len(s)-size]
	}
	return n
}

// CountKana returns the number of kana runes in s.
func CountKana(s string) int {
	n := 0
	for _, r := range s {
		if IsKana(r) {
			n++
		}
	}
	return n
}

// ToHiragana converts Katakana to Hiragana.
func ToHiragana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if (r >= 0x30A1 && r <= 0x30F6) || r == 0x30FD || r == 0x30FE {
			runes[i] = r - 0x60
		}
	}
	return string(runes)
}

// ToKatakana converts Hiragana to Katakana. Everything else is left alone.
func ToKatakana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if (r >= 0x3041 && r <= 0x3096) || r == 0x309D || r == 0x309E {
			runes[i] = r + 0x60
		}
	}
	return string(runes)
}
