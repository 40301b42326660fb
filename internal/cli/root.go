package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"textvec/config"
	"textvec/internal/adapter/sequence"
	"textvec/internal/adapter/store"
	"textvec/internal/adapter/wordindex"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "textvec",
	Short: "Text vectorizer - fit a vocabulary and encode texts as index matrices",
	Long: `textvec fits a frequency-ranked vocabulary on a text corpus and encodes
texts against it: fixed-length integer sequence matrices for sequence
models, or bag-of-words matrices for bag models. The vocabulary is
stored in .textvec/vocab.db within the target directory.

Example usage:
  textvec fit .                        # Fit a vocabulary on ./**/*.txt
  textvec vocab                        # Show the fitted vocabulary
  textvec encode -l 8 "the cat sat"    # Encode texts as index rows
  textvec bow --mode tfidf "the cat"   # Encode texts as weighted bags`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		cfg.ApplyFlags(cmd.Flags())
		setupLogger(cfg.Logging.Level)

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./textvec.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
	config.RegisterFlags(rootCmd.PersistentFlags(), config.DefaultConfig())
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}

// setupLogger configures the process-wide slog default logger.
func setupLogger(levelStr string) {
	lvl, err := parseLogLevel(levelStr)
	if err != nil {
		lvl = slog.LevelInfo
	}
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}

func parseLogLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", s)
	}
}

// tokenizerOptions maps the tokenize config section onto indexer
// options.
func tokenizerOptions(cfg *config.Config) wordindex.Options {
	return wordindex.Options{
		Filters:   cfg.Tokenize.Filters,
		Lower:     cfg.Tokenize.Lower,
		Split:     cfg.Tokenize.Split,
		CharLevel: cfg.Tokenize.CharLevel,
		NumWords:  cfg.Tokenize.NumWords,
		OOVToken:  cfg.Tokenize.OOVToken,
	}
}

// newPadder builds the sequence padder from the encode config section.
func newPadder(cfg *config.Config) (*sequence.Padder, error) {
	padding, err := sequence.ParseDirection(cfg.Encode.Padding)
	if err != nil {
		return nil, fmt.Errorf("invalid padding: %w", err)
	}
	truncating, err := sequence.ParseDirection(cfg.Encode.Truncating)
	if err != nil {
		return nil, fmt.Errorf("invalid truncating: %w", err)
	}
	return sequence.NewPadder(padding, truncating, 0), nil
}

// openVocabStore opens the vocabulary database under the root
// directory.
func openVocabStore() (*store.BoltVocabStore, error) {
	dbPath := config.VocabDBPath(GetRootDir())
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("no vocabulary found. Run 'textvec fit' first")
	}
	st, err := store.NewBoltVocabStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocab store: %w", err)
	}
	return st, nil
}
