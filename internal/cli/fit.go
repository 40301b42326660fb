package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"textvec/config"
	"textvec/internal/adapter/fs"
	"textvec/internal/adapter/store"
	"textvec/internal/adapter/wordindex"
	"textvec/internal/usecase"
)

var fitCmd = &cobra.Command{
	Use:   "fit [path]",
	Short: "Fit a vocabulary on a text corpus",
	Long: `Fit a frequency-ranked vocabulary on every matching text file in the
given directory, one text per non-blank line. The vocabulary is stored
in .textvec/vocab.db within the target directory and reused by the
encode, bow and vocab commands.

Examples:
  textvec fit .                    # Fit on ./**/*.txt
  textvec fit /data --include "**/*.log"
  textvec fit . --char-level       # One index per character`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFit,
}

func init() {
	rootCmd.AddCommand(fitCmd)
}

func runFit(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	cfg := GetConfig()

	if err := config.EnsureDataDir(path); err != nil {
		return fmt.Errorf("failed to create .textvec directory: %w", err)
	}

	dbPath := config.VocabDBPath(path)
	st, err := store.NewBoltVocabStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open vocab store: %w", err)
	}
	defer st.Close()

	opts := tokenizerOptions(cfg)
	indexer := wordindex.NewWordIndexer(opts)
	walker := fs.NewWalker(cfg.Corpus.Includes, cfg.Corpus.Excludes)

	if prev, err := st.Fingerprint(); err == nil && prev != "" && prev != opts.Fingerprint() {
		slog.Warn("tokenizer settings changed, replacing stored vocabulary", "db", dbPath)
	}

	fitUC := usecase.NewFitUseCase(st, walker, indexer)

	fmt.Printf("Scanning %s...\n", path)

	// Create progress bar (initialized once the total is known)
	var bar *progressbar.ProgressBar
	var barMu sync.Mutex
	var startTime time.Time
	var initialized bool

	progressCallback := func(processed, total int, currentFile string) {
		barMu.Lock()
		defer barMu.Unlock()

		if !initialized {
			startTime = time.Now()
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Fitting[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
			initialized = true
		}

		bar.Set(processed)

		if processed > 0 {
			elapsed := time.Since(startTime)
			rate := float64(processed) / elapsed.Seconds()
			remaining := total - processed
			if rate > 0 {
				eta := time.Duration(float64(remaining)/rate) * time.Second
				bar.Describe(fmt.Sprintf("[cyan]Fitting[reset] ETA: %s", formatDuration(eta)))
			}
		}
	}

	result, err := fitUC.Fit(path, progressCallback)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyCorpus) {
			return fmt.Errorf("no texts found under %s (include patterns: %v)", path, cfg.Corpus.Includes)
		}
		return fmt.Errorf("fitting failed: %w", err)
	}

	fmt.Printf("\nFitting complete:\n")
	fmt.Printf("  Files read:  %d\n", result.FilesRead)
	fmt.Printf("  Texts read:  %d\n", result.TextsRead)
	fmt.Printf("  Tokens seen: %d\n", result.TokensSeen)
	fmt.Printf("  Vocabulary:  %d words\n", result.VocabSize)

	if len(result.Errors) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}

	fmt.Printf("\nVocabulary stored at: %s\n", dbPath)
	return nil
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "<1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
