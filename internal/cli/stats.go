package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show stored vocabulary statistics",
	Long: `Show summary statistics of the stored vocabulary: distinct words,
texts fitted and total tokens seen.`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output as JSON")
}

func runStats(cmd *cobra.Command, args []string) error {
	st, err := openVocabStore()
	if err != nil {
		return err
	}
	defer st.Close()

	stats, err := st.GetStats()
	if err != nil {
		return fmt.Errorf("failed to read stats: %w", err)
	}

	if stats.VocabSize == 0 {
		fmt.Println("No vocabulary stored. Run 'textvec fit' first.")
		return nil
	}

	if statsJSON {
		output, _ := json.MarshalIndent(map[string]int{
			"vocab_size":   stats.VocabSize,
			"total_texts":  stats.TotalTexts,
			"total_tokens": stats.TotalTokens,
		}, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("Vocabulary size: %d words\n", stats.VocabSize)
	fmt.Printf("Texts fitted:    %d\n", stats.TotalTexts)
	fmt.Printf("Tokens seen:     %d\n", stats.TotalTokens)

	if fp, err := st.Fingerprint(); err == nil && fp != "" {
		fmt.Printf("Tokenizer:       %s\n", fp)
	}

	return nil
}
