// Package wordindex provides the default token indexer: a word-level
// tokenizer plus frequency-ranked index assignment, compatible with
// the Keras Tokenizer's fit_on_texts/texts_to_sequences behavior.
package wordindex

import "strings"

// DefaultFilters lists the characters stripped from raw text before
// splitting: ASCII punctuation (apostrophe excluded) plus tab and
// newline.
const DefaultFilters = "!\"#$%&()*+,-./:;<=>?@[\\]^_`{|}~\t\n"

// DefaultSplit separates tokens in raw text.
const DefaultSplit = " "

// SplitText turns a raw string into word tokens: lowercases when lower
// is set, replaces every filter rune with the split string, splits,
// and drops empty tokens.
func SplitText(s, filters string, lower bool, split string) []string {
	if lower {
		s = strings.ToLower(s)
	}

	if filters != "" {
		filterSet := make(map[rune]struct{}, len(filters))
		for _, r := range filters {
			filterSet[r] = struct{}{}
		}
		var b strings.Builder
		b.Grow(len(s))
		for _, r := range s {
			if _, ok := filterSet[r]; ok {
				b.WriteString(split)
			} else {
				b.WriteRune(r)
			}
		}
		s = b.String()
	}

	parts := strings.Split(s, split)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// splitChars returns every rune of s as its own token, spaces included.
func splitChars(s string, lower bool) []string {
	if lower {
		s = strings.ToLower(s)
	}
	tokens := make([]string, 0, len(s))
	for _, r := range s {
		tokens = append(tokens, string(r))
	}
	return tokens
}
