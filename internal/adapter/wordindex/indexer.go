package wordindex

import (
	"fmt"
	"sort"
	"strings"

	"textvec/internal/domain"
)

// Options configure tokenization and index assignment.
type Options struct {
	// Filters are the characters replaced by Split before raw text is
	// tokenized.
	Filters string
	// Lower lowercases raw text and pre-tokenized tokens alike.
	Lower bool
	// Split separates tokens in raw text.
	Split string
	// CharLevel treats every rune of raw text as a token.
	CharLevel bool
	// NumWords, when positive, restricts encoding to indices below
	// NumWords (the NumWords-1 most frequent tokens). The vocabulary
	// itself is unaffected.
	NumWords int
	// OOVToken, when non-empty, is reserved at index 1 and substituted
	// for unknown or capped tokens instead of dropping them.
	OOVToken string
}

// DefaultOptions returns the reference defaults: punctuation filters,
// lowercasing, space split, word level, no index cap, no OOV
// substitution.
func DefaultOptions() Options {
	return Options{
		Filters: DefaultFilters,
		Lower:   true,
		Split:   DefaultSplit,
	}
}

// Fingerprint identifies the option set. Vocabularies fitted under one
// fingerprint must not be used to encode under another.
func (o Options) Fingerprint() string {
	return fmt.Sprintf("v1|filters=%q|lower=%t|split=%q|char=%t|num_words=%d|oov=%q",
		o.Filters, o.Lower, o.Split, o.CharLevel, o.NumWords, o.OOVToken)
}

// WordIndexer learns a token -> index vocabulary from sample texts and
// converts texts into index sequences. Indices are assigned from 1 in
// order of descending corpus frequency; ties keep first-encounter
// order. Index 0 is never assigned; it is reserved for padding.
type WordIndexer struct {
	opts Options

	counts   map[string]int
	docs     map[string]int
	seen     []string
	docCount int

	// The ranked index is rebuilt lazily and cached per fit
	// generation.
	gen       uint64
	cacheGen  uint64
	index     map[string]int
	indexDocs map[int]int
	indexWord map[int]string
}

// NewWordIndexer creates an empty indexer with the given options.
func NewWordIndexer(opts Options) *WordIndexer {
	if opts.Split == "" {
		opts.Split = DefaultSplit
	}
	return &WordIndexer{
		opts:   opts,
		counts: make(map[string]int),
		docs:   make(map[string]int),
	}
}

// NewFromSnapshot rebuilds a fitted indexer from a stored snapshot.
// The snapshot's index is restored verbatim, so encodings match the
// original fit exactly.
func NewFromSnapshot(opts Options, snap domain.VocabSnapshot) *WordIndexer {
	x := NewWordIndexer(opts)
	x.counts = copyStrIntMap(snap.Counts)
	x.docs = copyStrIntMap(snap.Docs)
	x.docCount = snap.DocumentCount

	ordered := make([]string, 0, len(snap.Index))
	for w := range snap.Index {
		ordered = append(ordered, w)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return snap.Index[ordered[i]] < snap.Index[ordered[j]]
	})
	for _, w := range ordered {
		if _, ok := x.counts[w]; ok {
			x.seen = append(x.seen, w)
		}
	}

	index := copyStrIntMap(snap.Index)
	indexWord := make(map[int]string, len(index))
	for w, i := range index {
		indexWord[i] = w
	}
	indexDocs := make(map[int]int, len(x.docs))
	for w, n := range x.docs {
		if i, ok := index[w]; ok {
			indexDocs[i] = n
		}
	}
	x.index, x.indexWord, x.indexDocs = index, indexWord, indexDocs
	x.cacheGen = x.gen
	return x
}

// Fit accumulates token counts, per-text document counts, and the
// document total from the given texts. It may be called repeatedly;
// statistics accumulate.
func (x *WordIndexer) Fit(texts []domain.Text) {
	for _, t := range texts {
		x.docCount++
		tokens := x.tokenize(t)
		inText := make(map[string]struct{}, len(tokens))
		for _, w := range tokens {
			if _, ok := x.counts[w]; !ok {
				x.seen = append(x.seen, w)
			}
			x.counts[w]++
			inText[w] = struct{}{}
		}
		for w := range inText {
			x.docs[w]++
		}
	}
	x.gen++
}

// WordIndex returns the token -> index mapping. The returned map is the
// indexer's cache; callers must not modify it.
func (x *WordIndexer) WordIndex() map[string]int {
	x.build()
	return x.index
}

// WordCount returns the number of entries in the vocabulary.
func (x *WordIndexer) WordCount() int {
	return len(x.WordIndex())
}

// IndexDocs returns, per vocabulary index, the number of fitted texts
// containing that index. Callers must not modify the returned map.
func (x *WordIndexer) IndexDocs() map[int]int {
	x.build()
	return x.indexDocs
}

// DocumentCount returns the number of texts seen by Fit.
func (x *WordIndexer) DocumentCount() int {
	return x.docCount
}

// Options returns the options the indexer was created with.
func (x *WordIndexer) Options() Options {
	return x.opts
}

// WordCounts returns total occurrences per token. Callers must not
// modify the returned map.
func (x *WordIndexer) WordCounts() map[string]int {
	return x.counts
}

// WordDocs returns, per token, the number of fitted texts containing
// it. Callers must not modify the returned map.
func (x *WordIndexer) WordDocs() map[string]int {
	return x.docs
}

// TotalTokens returns the number of token occurrences seen by Fit.
func (x *WordIndexer) TotalTokens() int {
	total := 0
	for _, n := range x.counts {
		total += n
	}
	return total
}

// TextsToSequences converts each text into its sequence of vocabulary
// indices. Unknown tokens are dropped unless an OOV token is
// configured; indices at or above NumWords are capped the same way.
func (x *WordIndexer) TextsToSequences(texts []domain.Text) [][]int {
	index := x.WordIndex()
	oovIdx, hasOOV := 0, false
	if x.opts.OOVToken != "" {
		oovIdx, hasOOV = index[x.opts.OOVToken], true
	}

	seqs := make([][]int, len(texts))
	for ti, t := range texts {
		tokens := x.tokenize(t)
		seq := make([]int, 0, len(tokens))
		for _, w := range tokens {
			i, ok := index[w]
			switch {
			case ok && x.opts.NumWords > 0 && i >= x.opts.NumWords:
				if hasOOV {
					seq = append(seq, oovIdx)
				}
			case ok:
				seq = append(seq, i)
			case hasOOV:
				seq = append(seq, oovIdx)
			}
		}
		seqs[ti] = seq
	}
	return seqs
}

// SequencesToTexts maps index sequences back to space-joined token
// strings. Unknown indices are skipped unless an OOV token is
// configured.
func (x *WordIndexer) SequencesToTexts(seqs [][]int) []string {
	x.build()
	texts := make([]string, len(seqs))
	for si, seq := range seqs {
		words := make([]string, 0, len(seq))
		for _, i := range seq {
			w, ok := x.indexWord[i]
			switch {
			case ok && x.opts.NumWords > 0 && i >= x.opts.NumWords:
				if x.opts.OOVToken != "" {
					words = append(words, x.opts.OOVToken)
				}
			case ok:
				words = append(words, w)
			case x.opts.OOVToken != "":
				words = append(words, x.opts.OOVToken)
			}
		}
		texts[si] = strings.Join(words, " ")
	}
	return texts
}

// Snapshot captures the fitted state for persistence. The returned
// maps are copies.
func (x *WordIndexer) Snapshot() domain.VocabSnapshot {
	x.build()
	return domain.VocabSnapshot{
		Index:         copyStrIntMap(x.index),
		Counts:        copyStrIntMap(x.counts),
		Docs:          copyStrIntMap(x.docs),
		DocumentCount: x.docCount,
	}
}

func (x *WordIndexer) tokenize(t domain.Text) []string {
	if t.IsPreTokenized() {
		if !x.opts.Lower {
			return t.Tokens
		}
		tokens := make([]string, len(t.Tokens))
		for i, w := range t.Tokens {
			tokens[i] = strings.ToLower(w)
		}
		return tokens
	}
	if x.opts.CharLevel {
		return splitChars(t.Raw, x.opts.Lower)
	}
	return SplitText(t.Raw, x.opts.Filters, x.opts.Lower, x.opts.Split)
}

func (x *WordIndexer) build() {
	if x.index != nil && x.cacheGen == x.gen {
		return
	}

	ranked := make([]string, 0, len(x.seen))
	for _, w := range x.seen {
		if x.opts.OOVToken != "" && w == x.opts.OOVToken {
			continue
		}
		ranked = append(ranked, w)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return x.counts[ranked[i]] > x.counts[ranked[j]]
	})

	index := make(map[string]int, len(ranked)+1)
	next := 1
	if x.opts.OOVToken != "" {
		index[x.opts.OOVToken] = next
		next++
	}
	for _, w := range ranked {
		index[w] = next
		next++
	}

	indexWord := make(map[int]string, len(index))
	for w, i := range index {
		indexWord[i] = w
	}
	indexDocs := make(map[int]int, len(x.docs))
	for w, n := range x.docs {
		if i, ok := index[w]; ok {
			indexDocs[i] = n
		}
	}

	x.index, x.indexWord, x.indexDocs = index, indexWord, indexDocs
	x.cacheGen = x.gen
}

func copyStrIntMap(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
