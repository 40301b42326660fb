package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/spf13/cobra"

	"textvec/internal/port"
)

var (
	vocabJSON  bool
	vocabLimit int
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Show the fitted vocabulary",
	Long: `Show the fitted vocabulary ordered by index, together with each
word's corpus count and the number of texts it appears in.

Examples:
  textvec vocab
  textvec vocab --limit 20
  textvec vocab --json`,
	RunE: runVocab,
}

func init() {
	rootCmd.AddCommand(vocabCmd)
	vocabCmd.Flags().BoolVar(&vocabJSON, "json", false, "output as JSON")
	vocabCmd.Flags().IntVar(&vocabLimit, "limit", 0, "show only the first N words (0 = all)")
}

type vocabEntry struct {
	Index int    `json:"index"`
	Word  string `json:"word"`
	Count int    `json:"count"`
	Texts int    `json:"texts"`
}

func runVocab(cmd *cobra.Command, args []string) error {
	st, err := openVocabStore()
	if err != nil {
		return err
	}
	defer st.Close()

	snap, err := st.LoadVocab()
	if err != nil {
		if errors.Is(err, port.ErrNoVocab) {
			return fmt.Errorf("no vocabulary stored. Run 'textvec fit' first")
		}
		return fmt.Errorf("failed to load vocabulary: %w", err)
	}

	if fp, err := st.Fingerprint(); err == nil && fp != "" && fp != tokenizerOptions(GetConfig()).Fingerprint() {
		slog.Warn("tokenizer settings differ from the fitted vocabulary; encode and bow will refuse this store")
	}

	entries := make([]vocabEntry, 0, len(snap.Index))
	for word, index := range snap.Index {
		entries = append(entries, vocabEntry{
			Index: index,
			Word:  word,
			Count: snap.Counts[word],
			Texts: snap.Docs[word],
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Index < entries[j].Index })

	if vocabLimit > 0 && vocabLimit < len(entries) {
		entries = entries[:vocabLimit]
	}

	if vocabJSON {
		output, _ := json.MarshalIndent(entries, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("Vocabulary: %d words over %d texts\n\n", len(snap.Index), snap.DocumentCount)
	fmt.Printf("%7s  %-24s %8s %8s\n", "INDEX", "WORD", "COUNT", "TEXTS")
	for _, e := range entries {
		fmt.Printf("%7d  %-24s %8d %8d\n", e.Index, e.Word, e.Count, e.Texts)
	}

	return nil
}
