// Package classifier implements multinomial Naive Bayes topic classification
// with Laplace smoothing. Training and classification are pure functions over
// in-memory data; the only value threaded between them is domain.TopicModel.
package classifier

import (
	"strings"
	"unicode/utf8"
)

// minTokenRunes is the exclusive lower bound on token length. Fragments of
// two runes or fewer are treated as noise and dropped.
const minTokenRunes = 2

// isWordRune reports whether r belongs inside a token. Word characters are
// ASCII alphanumerics plus the accented Latin characters that appear in
// Spanish article text.
func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	}
	switch r {
	case 'ñ', 'á', 'é', 'í', 'ó', 'ú', 'ü':
		return true
	}
	return false
}

// Tokenize splits raw text into lowercase tokens. The input is lowercased,
// split on every non-word rune, and fragments shorter than three runes are
// discarded. Any input, including the empty string, yields a valid
// (possibly empty) token sequence.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	})

	tokens := fields[:0]
	for _, field := range fields {
		if utf8.RuneCountInString(field) > minTokenRunes {
			tokens = append(tokens, field)
		}
	}

	return tokens
}
