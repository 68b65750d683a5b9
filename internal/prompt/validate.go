package prompt

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"crosswarped.com/wordle/pkg/primitives"
)

var (
	ErrNotLetter = errors.New("not a letter")
	ErrTooLong   = errors.New("too many letters")
)

// ValidateLetters checks that s holds only the letters A-Z in either case and,
// when limit is positive, no more than limit characters. Empty input is valid.
func ValidateLetters(s string, limit int) error {
	if n := utf8.RuneCountInString(s); limit > 0 && n > limit {
		return fmt.Errorf("%w: %d characters, at most %d allowed", ErrTooLong, n, limit)
	}
	for i, r := range []rune(s) {
		if _, ok := primitives.Fold(r); !ok {
			return fmt.Errorf("%w: %q at position %d", ErrNotLetter, r, i+1)
		}
	}
	return nil
}
