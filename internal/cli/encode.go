package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"textvec/internal/adapter/fs"
	"textvec/internal/adapter/store"
	"textvec/internal/domain"
	"textvec/internal/port"
	"textvec/internal/usecase"
)

var (
	encodeFile string
	encodeJSON bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode [texts...]",
	Short: "Encode texts as fixed-length index sequences",
	Long: `Encode texts against the fitted vocabulary as rows of word indices,
padded or truncated to a common length. Texts are passed as arguments
or read from a file, one text per non-blank line.

Examples:
  textvec encode "the cat sat on the mat"
  textvec encode -l 8 "first text" "second text"
  textvec encode --file reviews.txt --json`,
	RunE: runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().StringVar(&encodeFile, "file", "", "read texts from this file, one per line")
	encodeCmd.Flags().BoolVar(&encodeJSON, "json", false, "output as JSON")
}

func runEncode(cmd *cobra.Command, args []string) error {
	texts, err := gatherTexts(args, encodeFile)
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

	matrices, err := p.TextsToNum(GetConfig().Encode.Length, texts)
	if err != nil {
		return fmt.Errorf("encoding failed: %w", err)
	}
	matrix := matrices[0]

	if encodeJSON {
		output, _ := json.MarshalIndent(matrix, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	for _, row := range matrix {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = strconv.Itoa(v)
		}
		fmt.Println(strings.Join(cells, " "))
	}

	return nil
}

// gatherTexts collects input texts from positional arguments and an
// optional file.
func gatherTexts(args []string, file string) ([]domain.Text, error) {
	texts := domain.Texts(args...)
	if file != "" {
		fileTexts, err := fs.ReadTexts(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		texts = append(texts, fileTexts...)
	}
	if len(texts) == 0 {
		return nil, fmt.Errorf("no texts given: pass texts as arguments or use --file")
	}
	return texts, nil
}

// restoredProcessor rebuilds a fitted processor from the store,
// translating store errors into actionable messages.
func restoredProcessor(st *store.BoltVocabStore) (*usecase.TextProcessor, error) {
	cfg := GetConfig()
	padder, err := newPadder(cfg)
	if err != nil {
		return nil, err
	}

	p, err := usecase.NewEncodeUseCase(st, tokenizerOptions(cfg), padder).Processor()
	if err != nil {
		switch {
		case errors.Is(err, port.ErrNoVocab):
			return nil, fmt.Errorf("no vocabulary stored. Run 'textvec fit' first")
		case errors.Is(err, usecase.ErrVocabularyStale):
			return nil, fmt.Errorf("tokenizer settings changed since fitting. Re-run 'textvec fit'")
		}
		return nil, fmt.Errorf("failed to restore vocabulary: %w", err)
	}
	return p, nil
}
