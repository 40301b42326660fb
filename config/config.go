package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the textvec tool.
type Config struct {
	Tokenize TokenizeConfig `yaml:"tokenize"`
	Corpus   CorpusConfig   `yaml:"corpus"`
	Encode   EncodeConfig   `yaml:"encode"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// TokenizeConfig controls how raw text is split and indexed.
type TokenizeConfig struct {
	Filters   string `yaml:"filters"`
	Lower     bool   `yaml:"lower"`
	Split     string `yaml:"split"`
	CharLevel bool   `yaml:"char_level"`
	NumWords  int    `yaml:"num_words"` // 0 means no limit
	OOVToken  string `yaml:"oov_token"` // empty means drop unknown tokens
}

// CorpusConfig selects which files a fit run reads.
type CorpusConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// EncodeConfig holds sequence encoding configuration.
type EncodeConfig struct {
	Length     int    `yaml:"length"` // negative means pad to the longest sequence
	Padding    string `yaml:"padding"`
	Truncating string `yaml:"truncating"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Tokenize: TokenizeConfig{
			Filters: "!\"#$%&()*+,-./:;<=>?@[\\]^_`{|}~\t\n",
			Lower:   true,
			Split:   " ",
		},
		Corpus: CorpusConfig{
			Includes: []string{"**/*.txt"},
			Excludes: []string{".textvec/**", "**/.git/**", "**/node_modules/**", "**/vendor/**"},
		},
		Encode: EncodeConfig{
			Length:     -1,
			Padding:    "pre",
			Truncating: "pre",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for
// textvec.yaml, then .textvec/config.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "textvec.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".textvec", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// VocabDBPath returns the path to the vocabulary database.
func VocabDBPath(dir string) string {
	return filepath.Join(dir, ".textvec", "vocab.db")
}

// EnsureDataDir ensures the .textvec directory exists.
func EnsureDataDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".textvec"), 0755)
}

// RegisterFlags declares the config override flags on fs, seeded with
// the given defaults.
func RegisterFlags(fs *pflag.FlagSet, defaults *Config) {
	fs.Bool("lower", defaults.Tokenize.Lower, "Lowercase text before splitting")
	fs.Bool("char-level", defaults.Tokenize.CharLevel, "Treat every character as a token")
	fs.Int("num-words", defaults.Tokenize.NumWords, "Encode only the num-words-1 most frequent words (0 = no limit)")
	fs.String("oov-token", defaults.Tokenize.OOVToken, "Stand-in token for out-of-vocabulary words (empty = drop them)")
	fs.StringSlice("include", defaults.Corpus.Includes, "Glob patterns of corpus files to fit on")
	fs.StringSlice("exclude", defaults.Corpus.Excludes, "Glob patterns of files to skip")
	fs.IntP("length", "l", defaults.Encode.Length, "Columns per encoded row (negative = longest sequence)")
	fs.String("padding", defaults.Encode.Padding, "Side to pad short sequences on: pre or post")
	fs.String("truncating", defaults.Encode.Truncating, "Side to cut long sequences from: pre or post")
	fs.String("log-level", defaults.Logging.Level, "Log level: debug, info, warn or error")
}

// ApplyFlags overrides config values with any flags the user set
// explicitly. Unset flags leave the config untouched.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) {
	if fs.Changed("lower") {
		c.Tokenize.Lower, _ = fs.GetBool("lower")
	}
	if fs.Changed("char-level") {
		c.Tokenize.CharLevel, _ = fs.GetBool("char-level")
	}
	if fs.Changed("num-words") {
		c.Tokenize.NumWords, _ = fs.GetInt("num-words")
	}
	if fs.Changed("oov-token") {
		c.Tokenize.OOVToken, _ = fs.GetString("oov-token")
	}
	if fs.Changed("include") {
		c.Corpus.Includes, _ = fs.GetStringSlice("include")
	}
	if fs.Changed("exclude") {
		c.Corpus.Excludes, _ = fs.GetStringSlice("exclude")
	}
	if fs.Changed("length") {
		c.Encode.Length, _ = fs.GetInt("length")
	}
	if fs.Changed("padding") {
		c.Encode.Padding, _ = fs.GetString("padding")
	}
	if fs.Changed("truncating") {
		c.Encode.Truncating, _ = fs.GetString("truncating")
	}
	if fs.Changed("log-level") {
		c.Logging.Level, _ = fs.GetString("log-level")
	}
}
