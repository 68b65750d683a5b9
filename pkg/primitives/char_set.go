package primitives

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

const (
	minChar  = 'a'
	maxChar  = 'z'
	numChars = maxChar - minChar + 1
)

// CharSet efficiently represents a set of letters from a to z.
//
// The zero value is an empty set ready to use. Upper-case letters are folded
// to lower case on the way in.
type CharSet struct {
	bits uint32
}

func NewCharSet() *CharSet {
	return &CharSet{}
}

// ParseCharSet builds a set from every letter in s. Repeated letters are
// tolerated.
func ParseCharSet(s string) (*CharSet, error) {
	cs := NewCharSet()
	for _, r := range s {
		if err := cs.Add(r); err != nil {
			return nil, err
		}
	}
	return cs, nil
}

// Fold lower-cases an ASCII letter and reports whether r was a letter at all.
func Fold(r rune) (rune, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return r - 'A' + 'a', true
	case r >= minChar && r <= maxChar:
		return r, true
	}
	return r, false
}

// Add adds a character to the set.
func (c *CharSet) Add(r rune) error {
	r, ok := Fold(r)
	if !ok {
		return fmt.Errorf("character %q is out of range", r)
	}
	c.bits |= 1 << uint(r-minChar)
	return nil
}

// AddAll adds all characters from another set to this set.
func (c *CharSet) AddAll(other *CharSet) {
	c.bits |= other.bits
}

// Contains checks if a character is in the set.
func (c *CharSet) Contains(r rune) bool {
	r, ok := Fold(r)
	if !ok {
		return false
	}
	return c.bits&(1<<uint(r-minChar)) != 0
}

// Intersect returns the letters present in both sets.
func (c *CharSet) Intersect(other *CharSet) *CharSet {
	return &CharSet{bits: c.bits & other.bits}
}

// IsEmpty checks if the set has no letters.
func (c *CharSet) IsEmpty() bool {
	return c.bits == 0
}

// IsFull checks if the set is full.
func (c *CharSet) IsFull() bool {
	return c.Count() == c.Capacity()
}

// Capacity returns the number of characters that can be added to the set.
func (c *CharSet) Capacity() int {
	return numChars
}

// Count returns the number of characters in the set.
func (c *CharSet) Count() int {
	return bits.OnesCount32(c.bits)
}

// All iterates the letters of the set in alphabetical order.
func (c *CharSet) All() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		b := c.bits
		for b != 0 {
			tz := bits.TrailingZeros32(b)
			if !yield(minChar + rune(tz)) {
				return
			}
			b &= b - 1
		}
	}
}

func (c *CharSet) String() string {
	var sb strings.Builder
	for r := range c.All() {
		sb.WriteRune(r)
	}
	return sb.String()
}
