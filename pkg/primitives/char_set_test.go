package primitives

import (
	"slices"
	"testing"
)

func TestCharSet_Add(t *testing.T) {
	cs := NewCharSet()

	tests := []struct {
		name      string
		char      rune
		wantErr   bool
		wantCount int
	}{
		{"add 'a'", 'a', false, 1},
		{"add 'b'", 'b', false, 2},
		{"add 'c'", 'c', false, 3},
		{"add 'a' again", 'a', false, 3}, // should not increase count
		{"add upper-case 'A'", 'A', false, 3},
		{"add upper-case 'Z'", 'Z', false, 4},
		{"add out of range low", '`', true, 4},
		{"add out of range high", '{', true, 4},
		{"add digit", '7', true, 4},
		{"add non-ascii", 'é', true, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cs.Add(tt.char)
			if (err != nil) != tt.wantErr {
				t.Errorf("Add() error = %v, wantErr %v", err, tt.wantErr)
			}
			if cs.Count() != tt.wantCount {
				t.Errorf("count = %d, want %d", cs.Count(), tt.wantCount)
			}
		})
	}
}

func TestCharSet_ZeroValue(t *testing.T) {
	var cs CharSet
	if !cs.IsEmpty() {
		t.Error("IsEmpty() = false, want true for zero value")
	}
	if cs.Contains('a') {
		t.Error("Contains('a') = true, want false for zero value")
	}
	if got := cs.String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
}

func TestParseCharSet(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"empty", "", "", false},
		{"single", "l", "l", false},
		{"sorted and folded", "pLa", "alp", false},
		{"duplicates collapse", "eee", "e", false},
		{"rejects digits", "ab1", "", true},
		{"rejects spaces", "a b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs, err := ParseCharSet(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCharSet() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got := cs.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCharSet_AddAll(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() (*CharSet, *CharSet)
		expected int
	}{
		{
			name: "add to empty set",
			setup: func() (*CharSet, *CharSet) {
				cs1 := NewCharSet()
				cs2 := NewCharSet()
				cs2.Add('a')
				cs2.Add('b')
				return cs1, cs2
			},
			expected: 2,
		},
		{
			name: "add overlapping sets",
			setup: func() (*CharSet, *CharSet) {
				cs1 := NewCharSet()
				cs1.Add('a')
				cs2 := NewCharSet()
				cs2.Add('a')
				cs2.Add('c')
				return cs1, cs2
			},
			expected: 2,
		},
		{
			name: "add full set to empty",
			setup: func() (*CharSet, *CharSet) {
				cs1 := NewCharSet()
				cs2 := NewCharSet()
				for i := 'a'; i <= 'z'; i++ {
					cs2.Add(i)
				}
				return cs1, cs2
			},
			expected: 26,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs1, cs2 := tt.setup()
			cs1.AddAll(cs2)
			if cs1.Count() != tt.expected {
				t.Errorf("count = %d, want %d", cs1.Count(), tt.expected)
			}
		})
	}
}

func TestCharSet_Contains(t *testing.T) {
	cs := NewCharSet()
	cs.Add('a')
	cs.Add('c')

	tests := []struct {
		name string
		char rune
		want bool
	}{
		{"contains 'a'", 'a', true},
		{"contains 'b'", 'b', false},
		{"contains 'c'", 'c', true},
		{"contains upper-case 'C'", 'C', true},
		{"contains digit", '1', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cs.Contains(tt.char); got != tt.want {
				t.Errorf("Contains() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCharSet_Intersect(t *testing.T) {
	a, _ := ParseCharSet("plane")
	b, _ := ParseCharSet("ploy")
	if got := a.Intersect(b).String(); got != "lp" {
		t.Errorf("Intersect() = %q, want %q", got, "lp")
	}
}

func TestCharSet_IsFull(t *testing.T) {
	cs := NewCharSet()

	if cs.IsFull() {
		t.Error("IsFull() = true, want false for empty set")
	}

	for i := 'a'; i <= 'z'; i++ {
		cs.Add(i)
	}

	if !cs.IsFull() {
		t.Error("IsFull() = false, want true for full set")
	}
	if cs.Capacity() != 26 {
		t.Errorf("Capacity() = %d, want 26", cs.Capacity())
	}
}

func TestCharSet_All(t *testing.T) {
	cs, _ := ParseCharSet("zebra")
	got := slices.Collect(cs.All())
	want := []rune{'a', 'b', 'e', 'r', 'z'}
	if !slices.Equal(got, want) {
		t.Errorf("All() = %q, want %q", got, want)
	}
}
