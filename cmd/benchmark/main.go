package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"textvec/internal/adapter/sequence"
	"textvec/internal/adapter/wordindex"
	"textvec/internal/domain"
	"textvec/internal/usecase"
)

func main() {
	numTexts := flag.Int("texts", 10000, "Number of synthetic texts")
	wordsPerText := flag.Int("words-per-text", 20, "Words per synthetic text")
	vocabSize := flag.Int("vocab", 5000, "Distinct words in the synthetic corpus")
	length := flag.Int("length", 32, "Row length for sequence encoding")
	seed := flag.Int64("seed", 1, "Corpus random seed")
	flag.Parse()

	fmt.Println("TEXT VECTORIZATION BENCHMARK")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Corpus: %d texts x %d words, up to %d distinct words (seed %d)\n\n",
		*numTexts, *wordsPerText, *vocabSize, *seed)

	corpus := syntheticCorpus(*numTexts, *wordsPerText, *vocabSize, *seed)

	indexer := wordindex.NewWordIndexer(wordindex.DefaultOptions())
	p := usecase.NewTextProcessor(indexer, sequence.DefaultPadder())

	start := time.Now()
	vocab, err := p.ReadAllTexts(corpus)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fit failed: %v\n", err)
		os.Exit(1)
	}
	fitDur := time.Since(start)
	fmt.Printf("Fit:    %10s  (%d words, %.0f texts/s)\n",
		fitDur.Round(time.Millisecond), len(vocab), float64(*numTexts)/fitDur.Seconds())

	start = time.Now()
	if _, err := p.TextsToNum(*length, corpus); err != nil {
		fmt.Fprintf(os.Stderr, "sequence encoding failed: %v\n", err)
		os.Exit(1)
	}
	seqDur := time.Since(start)
	fmt.Printf("Encode: %10s  (%.0f texts/s, %d columns)\n",
		seqDur.Round(time.Millisecond), float64(*numTexts)/seqDur.Seconds(), *length)

	// BOW rows are vocabulary-wide, so bench on a slice of the corpus.
	bowTexts := *numTexts
	if bowTexts > 1000 {
		bowTexts = 1000
	}
	start = time.Now()
	if _, err := p.TextsToBOW(corpus[:bowTexts]); err != nil {
		fmt.Fprintf(os.Stderr, "bow encoding failed: %v\n", err)
		os.Exit(1)
	}
	bowDur := time.Since(start)
	fmt.Printf("BOW:    %10s  (%.0f texts/s, %d columns)\n",
		bowDur.Round(time.Millisecond), float64(bowTexts)/bowDur.Seconds(), p.WordCount()+1)

	fmt.Println(strings.Repeat("=", 70))
}

// syntheticCorpus builds texts whose word frequencies follow a Zipf
// distribution, roughly matching natural language.
func syntheticCorpus(numTexts, wordsPerText, vocabSize int, seed int64) []domain.Text {
	rng := rand.New(rand.NewSource(seed))
	zipf := rand.NewZipf(rng, 1.2, 1.0, uint64(vocabSize-1))

	texts := make([]domain.Text, numTexts)
	var b strings.Builder
	for i := range texts {
		b.Reset()
		for w := 0; w < wordsPerText; w++ {
			if w > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "w%d", zipf.Uint64())
		}
		texts[i] = domain.Raw(b.String())
	}
	return texts
}
