// Package fs discovers corpus files under a root directory and reads
// them as texts, one text per non-blank line.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"textvec/internal/domain"
)

type Walker struct {
	includes []string
	excludes []string
}

func NewWalker(includes, excludes []string) *Walker {
	if len(includes) == 0 {
		includes = []string{"**/*"}
	}
	return &Walker{
		includes: includes,
		excludes: excludes,
	}
}

// Walk returns the corpus files under root that match the include
// patterns and none of the exclude patterns. filepath.Walk visits
// entries in lexical order, so the result is stable across runs.
func (w *Walker) Walk(root string) ([]string, error) {
	var files []string

	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel := filepath.ToSlash(relPath)

		if info.IsDir() {
			if matchAny(w.excludes, rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}

		if matchAny(w.includes, rel) && !matchAny(w.excludes, rel) {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

// matchAny reports whether any of the glob patterns matches the
// slash-separated relative path.
func matchAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}

// ReadTexts reads a corpus file as one raw text per line. Blank lines
// are skipped.
func ReadTexts(path string) ([]domain.Text, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(data), "\n")
	texts := make([]domain.Text, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		texts = append(texts, domain.Raw(line))
	}
	return texts, nil
}
