package primitives

import (
	"iter"
	"math/bits"
	"sync"
)

// BitSet is a set of word indices into a WordIndex.
type BitSet []uint64

// Has reports whether idx is in the set.
func (s BitSet) Has(idx int) bool {
	bi := idx / 64
	bit := uint(idx % 64)
	return (s[bi] & (uint64(1) << bit)) != 0
}

// Count returns the number of indices in the set.
func (s BitSet) Count() int {
	n := 0
	for _, block := range s {
		n += bits.OnesCount64(block)
	}
	return n
}

// First returns the lowest index in the set, or -1 if the set is empty.
func (s BitSet) First() int {
	for bi, block := range s {
		if block == 0 {
			continue
		}
		return bi*64 + bits.TrailingZeros64(block)
	}
	return -1
}

// All iterates the indices of the set in ascending order.
func (s BitSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for bi, block := range s {
			b := block
			for b != 0 {
				tz := bits.TrailingZeros64(b)
				if !yield(bi*64 + tz) {
					return
				}
				b &= b - 1
			}
		}
	}
}

// WordIndex answers letter queries over a fixed list of words with bitset
// intersections instead of rescanning every word.
//
// Only words of exactly numLetters ASCII letters are indexed; anything else is
// absent from every set the index produces. Comparisons are case-insensitive.
type WordIndex struct {
	words      []string
	numLetters int
	blocks     int

	masksOnce sync.Once
	// masks is a flattened 3D tensor of word-membership bitsets.
	//
	// Conceptually it is:
	//   masks[pos][charIdx] = BitSet(words that have rune(minChar+charIdx) at position pos)
	//
	// Layout:
	//   base := (pos*numChars + charIdx) * blocks
	//   masks[base + block] is the uint64 for that block.
	masks []uint64
	// contains[charIdx] is the union of masks[pos][charIdx] over every pos.
	contains []uint64
	valid    BitSet
}

func NewWordIndex(words []string, numLetters int) *WordIndex {
	return &WordIndex{
		words:      words,
		numLetters: numLetters,
		blocks:     (len(words) + 63) / 64,
	}
}

// Len returns the number of words the index was built over, indexed or not.
func (x *WordIndex) Len() int {
	return len(x.words)
}

// Word returns the word at idx with its original casing.
func (x *WordIndex) Word(idx int) string {
	return x.words[idx]
}

func (x *WordIndex) ensureMasks() {
	x.masksOnce.Do(func() {
		x.masks = make([]uint64, x.numLetters*numChars*x.blocks)
		x.contains = make([]uint64, numChars*x.blocks)
		x.valid = make(BitSet, x.blocks)
		cidxs := make([]int, x.numLetters)

	words:
		for wi, word := range x.words {
			if len(word) != x.numLetters {
				continue
			}
			for pos := 0; pos < x.numLetters; pos++ {
				r, ok := Fold(rune(word[pos]))
				if !ok {
					continue words
				}
				cidxs[pos] = int(r - minChar)
			}

			block := wi / 64
			bit := uint64(1) << uint(wi%64)
			x.valid[block] |= bit
			for pos := 0; pos < x.numLetters; pos++ {
				cidx := cidxs[pos]
				x.masks[x.maskBase(pos, cidx)+block] |= bit
				x.contains[cidx*x.blocks+block] |= bit
			}
		}
	})
}

// maskBase returns the base index into x.masks for (pos,charIdx).
func (x *WordIndex) maskBase(pos int, charIdx int) int {
	return (pos*numChars + charIdx) * x.blocks
}

// All returns a fresh set holding every indexed word.
func (x *WordIndex) All() BitSet {
	x.ensureMasks()
	set := make(BitSet, x.blocks)
	copy(set, x.valid)
	return set
}

// KeepAt narrows set to the words holding r at position pos.
func (x *WordIndex) KeepAt(set BitSet, r rune, pos int) {
	r, ok := Fold(r)
	if !ok || pos < 0 || pos >= x.numLetters {
		clear(set)
		return
	}
	x.ensureMasks()
	base := x.maskBase(pos, int(r-minChar))
	for i := range set {
		set[i] &= x.masks[base+i]
	}
}

// KeepContaining narrows set to the words holding r anywhere.
func (x *WordIndex) KeepContaining(set BitSet, r rune) {
	r, ok := Fold(r)
	if !ok {
		clear(set)
		return
	}
	x.ensureMasks()
	base := int(r-minChar) * x.blocks
	for i := range set {
		set[i] &= x.contains[base+i]
	}
}

// DropContaining removes from set the words holding r anywhere.
func (x *WordIndex) DropContaining(set BitSet, r rune) {
	r, ok := Fold(r)
	if !ok {
		return
	}
	x.ensureMasks()
	base := int(r-minChar) * x.blocks
	for i := range set {
		set[i] &^= x.contains[base+i]
	}
}

// Words returns the words in set in index order.
func (x *WordIndex) Words(set BitSet) []string {
	out := make([]string, 0, set.Count())
	for idx := range set.All() {
		out = append(out, x.words[idx])
	}
	return out
}
