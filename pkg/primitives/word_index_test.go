package primitives

import (
	"fmt"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBitSet(t *testing.T) {
	set := make(BitSet, 2)
	set[0] = 1<<3 | 1<<10
	set[1] = 1 << 1

	if got := set.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
	if got := set.First(); got != 3 {
		t.Errorf("First() = %d, want 3", got)
	}
	if !set.Has(65) {
		t.Error("Has(65) = false, want true")
	}
	if set.Has(4) {
		t.Error("Has(4) = true, want false")
	}
	if diff := cmp.Diff([]int{3, 10, 65}, slices.Collect(set.All())); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}

	var empty BitSet
	if got := empty.First(); got != -1 {
		t.Errorf("First() on empty = %d, want -1", got)
	}
}

func TestWordIndex(t *testing.T) {
	words := []string{"apple", "Angle", "ankle", "amble", "toolong", "ab1de", "crane"}
	idx := NewWordIndex(words, 5)

	tests := []struct {
		name  string
		query func(set BitSet)
		want  []string
	}{
		{
			name:  "all skips malformed words",
			query: func(set BitSet) {},
			want:  []string{"apple", "Angle", "ankle", "amble", "crane"},
		},
		{
			name:  "letter at position",
			query: func(set BitSet) { idx.KeepAt(set, 'n', 1) },
			want:  []string{"Angle", "ankle"},
		},
		{
			name:  "upper-case letter at position",
			query: func(set BitSet) { idx.KeepAt(set, 'G', 2) },
			want:  []string{"Angle"},
		},
		{
			name:  "position out of range",
			query: func(set BitSet) { idx.KeepAt(set, 'a', 5) },
			want:  []string{},
		},
		{
			name:  "containing",
			query: func(set BitSet) { idx.KeepContaining(set, 'r') },
			want:  []string{"crane"},
		},
		{
			name:  "dropping",
			query: func(set BitSet) { idx.DropContaining(set, 'p') },
			want:  []string{"Angle", "ankle", "amble", "crane"},
		},
		{
			name: "combined",
			query: func(set BitSet) {
				idx.KeepAt(set, 'e', 4)
				idx.KeepContaining(set, 'l')
				idx.DropContaining(set, 'n')
			},
			want: []string{"apple", "amble"},
		},
		{
			name:  "containing a non-letter",
			query: func(set BitSet) { idx.KeepContaining(set, '1') },
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := idx.All()
			tt.query(set)
			if diff := cmp.Diff(tt.want, idx.Words(set)); diff != "" {
				t.Errorf("Words() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWordIndex_Empty(t *testing.T) {
	idx := NewWordIndex(nil, 5)
	set := idx.All()
	idx.KeepAt(set, 'a', 0)
	if got := idx.Words(set); len(got) != 0 {
		t.Errorf("Words() = %v, want empty", got)
	}
}

func TestWordIndex_ManyBlocks(t *testing.T) {
	// Enough words to span several uint64 blocks.
	var words []string
	for i := range 200 {
		words = append(words, fmt.Sprintf("%c%c%cxy", 'a'+i%26, 'a'+(i/26)%26, 'q'))
	}
	idx := NewWordIndex(words, 5)
	set := idx.All()
	idx.KeepAt(set, 'c', 0)

	var want []string
	for _, w := range words {
		if w[0] == 'c' {
			want = append(want, w)
		}
	}
	if diff := cmp.Diff(want, idx.Words(set)); diff != "" {
		t.Errorf("Words() mismatch (-want +got):\n%s", diff)
	}
}
