package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"textvec/config"
	"textvec/internal/adapter/store"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the stored vocabulary",
	Long:  `Delete the stored vocabulary, statistics and tokenizer fingerprint.`,
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	dbPath := config.VocabDBPath(GetRootDir())
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("No vocabulary stored.")
		return nil
	}

	st, err := store.NewBoltVocabStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open vocab store: %w", err)
	}
	defer st.Close()

	if err := st.Clear(); err != nil {
		return fmt.Errorf("failed to clear vocabulary: %w", err)
	}

	fmt.Println("Vocabulary cleared.")
	return nil
}
