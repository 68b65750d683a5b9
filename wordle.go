// Package wordle narrows a list of five-letter words to the ones consistent
// with Wordle feedback.
package wordle

import (
	"fmt"
	"strings"

	"crosswarped.com/wordle/pkg/primitives"
)

// WordLength is the number of letters in every candidate word.
const WordLength = 5

// Unconstrained marks a Pattern slot that accepts any letter.
const Unconstrained rune = 0

// WordList is an ordered list of candidate words. It is never mutated once loaded.
type WordList []string

// Pattern holds the letters known to be in their exact position.
type Pattern [WordLength]rune

// ParsePattern reads a pattern such as "__a_e". '_', '.', '?' and ' ' leave a
// slot unconstrained. Shorter inputs leave the trailing slots unconstrained.
func ParsePattern(s string) (Pattern, error) {
	var p Pattern
	runes := []rune(s)
	if len(runes) > WordLength {
		return p, fmt.Errorf("pattern %q is longer than %d letters", s, WordLength)
	}
	for i, r := range runes {
		switch r {
		case '_', '.', '?', ' ':
			continue
		}
		if err := p.Set(i, r); err != nil {
			return p, err
		}
	}
	return p, nil
}

// Set pins slot i to the letter r.
func (p *Pattern) Set(i int, r rune) error {
	if i < 0 || i >= WordLength {
		return fmt.Errorf("position %d is out of range", i)
	}
	folded, ok := primitives.Fold(r)
	if !ok {
		return fmt.Errorf("character %q is not a letter", r)
	}
	p[i] = folded
	return nil
}

// IsEmpty reports whether no slot is pinned.
func (p Pattern) IsEmpty() bool {
	return p == Pattern{}
}

// Letters returns the pinned letters as a set.
func (p Pattern) Letters() *primitives.CharSet {
	cs := primitives.NewCharSet()
	for _, r := range p {
		if r != Unconstrained {
			_ = cs.Add(r)
		}
	}
	return cs
}

func (p Pattern) String() string {
	var sb strings.Builder
	for _, r := range p {
		if r == Unconstrained {
			sb.WriteByte('_')
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Constraints is the feedback gathered for one run.
type Constraints struct {
	// Positions are the letters in their exact place.
	Positions Pattern
	// Present letters appear somewhere in the word.
	Present primitives.CharSet
	// Absent letters appear nowhere in the word.
	Absent primitives.CharSet
}

// Matches reports whether word satisfies every constraint. Casing of word is
// ignored.
func (c *Constraints) Matches(word string) bool {
	if len(word) != WordLength {
		return false
	}
	var letters primitives.CharSet
	for i := 0; i < WordLength; i++ {
		r, ok := primitives.Fold(rune(word[i]))
		if !ok {
			return false
		}
		if want := c.Positions[i]; want != Unconstrained && want != r {
			return false
		}
		_ = letters.Add(r)
	}
	if !letters.Intersect(&c.Absent).IsEmpty() {
		return false
	}
	return letters.Intersect(&c.Present).Count() == c.Present.Count()
}

// Contradictions returns the absent letters that are also required, either at
// a position or somewhere in the word. Such constraints match nothing.
func (c *Constraints) Contradictions() *primitives.CharSet {
	required := c.Positions.Letters()
	required.AddAll(&c.Present)
	return required.Intersect(&c.Absent)
}

func (c *Constraints) String() string {
	return fmt.Sprintf("Constraints{positions: %s, present: %q, absent: %q}", c.Positions, c.Present.String(), c.Absent.String())
}

// IsWord reports whether s is a well-formed candidate: exactly WordLength
// ASCII letters in any case.
func IsWord(s string) bool {
	if len(s) != WordLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if _, ok := primitives.Fold(rune(s[i])); !ok {
			return false
		}
	}
	return true
}
