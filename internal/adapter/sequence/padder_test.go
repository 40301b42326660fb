package sequence

import (
	"reflect"
	"testing"
)

func TestPadDefaults(t *testing.T) {
	p := DefaultPadder()

	cases := []struct {
		name   string
		seqs   [][]int
		length int
		want   [][]int
	}{
		{
			name:   "shorter sequences are left-padded",
			seqs:   [][]int{{2, 1}, {4}},
			length: 3,
			want:   [][]int{{0, 2, 1}, {0, 0, 4}},
		},
		{
			name:   "longer sequences keep only the tail",
			seqs:   [][]int{{1, 3, 4, 5, 2}},
			length: 4,
			want:   [][]int{{3, 4, 5, 2}},
		},
		{
			name:   "exact length passes through",
			seqs:   [][]int{{7, 8, 9}},
			length: 3,
			want:   [][]int{{7, 8, 9}},
		},
		{
			name:   "empty sequence becomes all zeros",
			seqs:   [][]int{{}},
			length: 3,
			want:   [][]int{{0, 0, 0}},
		},
		{
			name:   "zero length yields zero-width rows",
			seqs:   [][]int{{1, 2}, {3}},
			length: 0,
			want:   [][]int{{}, {}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := p.Pad(tc.seqs, tc.length)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d rows, got %d", len(tc.want), len(got))
			}
			for i := range tc.want {
				if !reflect.DeepEqual([]int(got[i]), tc.want[i]) {
					t.Errorf("row %d: expected %v, got %v", i, tc.want[i], got[i])
				}
			}
		})
	}
}

func TestPadPostDirections(t *testing.T) {
	p := NewPadder(Post, Post, 0)

	got := p.Pad([][]int{{2, 1}, {1, 3, 4, 5, 2}}, 4)

	if !reflect.DeepEqual(got[0], []int{2, 1, 0, 0}) {
		t.Errorf("post-padding: expected [2 1 0 0], got %v", got[0])
	}
	if !reflect.DeepEqual(got[1], []int{1, 3, 4, 5}) {
		t.Errorf("post-truncation: expected [1 3 4 5], got %v", got[1])
	}
}

func TestPadMixedDirections(t *testing.T) {
	// Pre-padding with post-truncation: short rows fill at the front,
	// long rows keep their head.
	p := NewPadder(Pre, Post, 0)

	got := p.Pad([][]int{{9}, {1, 2, 3}}, 2)

	if !reflect.DeepEqual(got[0], []int{0, 9}) {
		t.Errorf("expected [0 9], got %v", got[0])
	}
	if !reflect.DeepEqual(got[1], []int{1, 2}) {
		t.Errorf("expected [1 2], got %v", got[1])
	}
}

func TestPadCustomValue(t *testing.T) {
	p := NewPadder(Pre, Pre, -1)

	got := p.Pad([][]int{{5}}, 3)

	if !reflect.DeepEqual(got[0], []int{-1, -1, 5}) {
		t.Errorf("expected [-1 -1 5], got %v", got[0])
	}
}

func TestPadNegativeLengthUsesLongest(t *testing.T) {
	p := DefaultPadder()

	got := p.Pad([][]int{{1}, {2, 3, 4}, {5, 6}}, -1)

	for i, row := range got {
		if len(row) != 3 {
			t.Errorf("row %d: expected width 3, got %d", i, len(row))
		}
	}
	if !reflect.DeepEqual(got[0], []int{0, 0, 1}) {
		t.Errorf("expected [0 0 1], got %v", got[0])
	}
}

func TestPadNoSequences(t *testing.T) {
	p := DefaultPadder()

	got := p.Pad(nil, 5)
	if len(got) != 0 {
		t.Errorf("expected 0 rows, got %d", len(got))
	}
}

func TestParseDirection(t *testing.T) {
	if _, err := ParseDirection("pre"); err != nil {
		t.Errorf("unexpected error for pre: %v", err)
	}
	if _, err := ParseDirection("post"); err != nil {
		t.Errorf("unexpected error for post: %v", err)
	}
	if _, err := ParseDirection("middle"); err == nil {
		t.Error("expected error for invalid direction")
	}
}
