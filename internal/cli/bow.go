package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"textvec/internal/domain"
)

var (
	bowMode string
	bowFile string
	bowJSON bool
)

var bowCmd = &cobra.Command{
	Use:   "bow [texts...]",
	Short: "Encode texts as bag-of-words matrices",
	Long: `Encode texts against the fitted vocabulary as bag-of-words rows with
one column per vocabulary index (column 0 is the padding index and
always zero). The cell weighting is selected with --mode.

Examples:
  textvec bow "the cat sat"
  textvec bow --mode count "the cat sat on the cat"
  textvec bow --mode tfidf --file reviews.txt --json`,
	RunE: runBow,
}

func init() {
	rootCmd.AddCommand(bowCmd)
	bowCmd.Flags().StringVar(&bowMode, "mode", "binary", "cell weighting: binary, count, freq or tfidf")
	bowCmd.Flags().StringVar(&bowFile, "file", "", "read texts from this file, one per line")
	bowCmd.Flags().BoolVar(&bowJSON, "json", false, "output as JSON")
}

func runBow(cmd *cobra.Command, args []string) error {
	texts, err := gatherTexts(args, bowFile)
	if err != nil {
		return err
	}

	st, err := openVocabStore()
	if err != nil {
		return err
	}
	defer st.Close()

	p, err := restoredProcessor(st)
	if err != nil {
		return err
	}

	matrices, err := p.TextsToMatrix(domain.MatrixMode(bowMode), texts)
	if err != nil {
		return fmt.Errorf("encoding failed: %w", err)
	}
	matrix := matrices[0]

	if bowJSON {
		output, _ := json.MarshalIndent(matrix, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	for _, row := range matrix {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprintf("%g", v)
		}
		fmt.Println(strings.Join(cells, " "))
	}

	return nil
}
