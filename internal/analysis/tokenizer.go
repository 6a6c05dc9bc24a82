package analysis

import "iter"

// minTokenLen is the minimum rune length of a retained token. Single
// characters are almost always particles or fragments in this corpus.
const minTokenLen = 2

// isWordRune reports whether r belongs inside a token: ASCII letters, ASCII
// digits, and Hangul syllables. Everything else separates tokens.
func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r >= '가' && r <= '힣':
		return true
	}
	return false
}

// Tokens splits text into candidate word tokens. The sequence is lazy,
// finite, and restartable: it is a pure function of text and retains no
// state between iterations. Tokens shorter than two runes are dropped.
// An empty string yields an empty sequence.
func Tokens(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := -1
		runes := 0
		for i, r := range text {
			if isWordRune(r) {
				if start < 0 {
					start = i
					runes = 0
				}
				runes++
				continue
			}
			if start >= 0 && runes >= minTokenLen {
				if !yield(text[start:i]) {
					return
				}
			}
			start = -1
		}
		if start >= 0 && runes >= minTokenLen {
			yield(text[start:])
		}
	}
}
