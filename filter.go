package wordle

import "crosswarped.com/wordle/pkg/primitives"

// Filter returns the words of list that satisfy c, in list order and with their
// original casing. It never mutates list.
func Filter(list WordList, c Constraints) WordList {
	idx := primitives.NewWordIndex(list, WordLength)
	set := idx.All()
	for i, r := range c.Positions {
		if r != Unconstrained {
			idx.KeepAt(set, r, i)
		}
	}
	for r := range c.Present.All() {
		idx.KeepContaining(set, r)
	}
	for r := range c.Absent.All() {
		idx.DropContaining(set, r)
	}
	return WordList(idx.Words(set))
}
