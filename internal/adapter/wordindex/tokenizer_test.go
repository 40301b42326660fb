package wordindex

import (
	"reflect"
	"testing"
)

func TestSplitText(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		filters string
		lower   bool
		split   string
		want    []string
	}{
		{
			name:    "lowercases and splits on spaces",
			text:    "The Quick Brown Fox",
			filters: DefaultFilters,
			lower:   true,
			split:   DefaultSplit,
			want:    []string{"the", "quick", "brown", "fox"},
		},
		{
			name:    "filter characters act as separators",
			text:    "hello,world!foo",
			filters: DefaultFilters,
			lower:   true,
			split:   DefaultSplit,
			want:    []string{"hello", "world", "foo"},
		},
		{
			name:    "consecutive separators produce no empty tokens",
			text:    "a  b\t\tc",
			filters: DefaultFilters,
			lower:   true,
			split:   DefaultSplit,
			want:    []string{"a", "b", "c"},
		},
		{
			name:    "apostrophe survives the default filters",
			text:    "don't stop",
			filters: DefaultFilters,
			lower:   true,
			split:   DefaultSplit,
			want:    []string{"don't", "stop"},
		},
		{
			name:    "lower disabled preserves case",
			text:    "Go Gopher",
			filters: DefaultFilters,
			lower:   false,
			split:   DefaultSplit,
			want:    []string{"Go", "Gopher"},
		},
		{
			name:    "no filters keeps punctuation attached",
			text:    "hello, world",
			filters: "",
			lower:   true,
			split:   DefaultSplit,
			want:    []string{"hello,", "world"},
		},
		{
			name:    "custom split character",
			text:    "a|b|c",
			filters: "",
			lower:   true,
			split:   "|",
			want:    []string{"a", "b", "c"},
		},
		{
			name:    "multibyte tokens pass through the filters",
			text:    "中国 的 首都",
			filters: DefaultFilters,
			lower:   true,
			split:   DefaultSplit,
			want:    []string{"中国", "的", "首都"},
		},
		{
			name:    "empty text yields no tokens",
			text:    "",
			filters: DefaultFilters,
			lower:   true,
			split:   DefaultSplit,
			want:    []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitText(tc.text, tc.filters, tc.lower, tc.split)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestSplitChars(t *testing.T) {
	got := splitChars("Ab 中", true)
	want := []string{"a", "b", " ", "中"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	got = splitChars("Ab", false)
	want = []string{"A", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
