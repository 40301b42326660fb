package fs

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

func TestWalkIncludesAndExcludes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "hello")
	writeFile(t, filepath.Join(root, "b.md"), "skip me")
	writeFile(t, filepath.Join(root, "sub", "c.txt"), "nested")
	writeFile(t, filepath.Join(root, "skip", "d.txt"), "excluded dir")

	w := NewWalker([]string{"**/*.txt"}, []string{"skip/**"})
	files, err := w.Walk(root)
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	want := []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "sub", "c.txt"),
	}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("Walk() = %v, want %v", files, want)
	}
}

func TestWalkDefaultIncludesEverything(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "hello")
	writeFile(t, filepath.Join(root, "b.md"), "also included")

	w := NewWalker(nil, nil)
	files, err := w.Walk(root)
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if len(files) != 2 {
		t.Errorf("Walk() returned %d files, want 2", len(files))
	}
}

func TestWalkOrderIsStable(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "zebra.txt"), "z")
	writeFile(t, filepath.Join(root, "alpha.txt"), "a")
	writeFile(t, filepath.Join(root, "mid.txt"), "m")

	w := NewWalker([]string{"**/*.txt"}, nil)
	files, err := w.Walk(root)
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	want := []string{
		filepath.Join(root, "alpha.txt"),
		filepath.Join(root, "mid.txt"),
		filepath.Join(root, "zebra.txt"),
	}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("Walk() = %v, want %v", files, want)
	}
}

func TestReadTexts(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "corpus.txt")
	writeFile(t, path, "first line\n\nsecond line\r\n   \nthird line")

	texts, err := ReadTexts(path)
	if err != nil {
		t.Fatalf("ReadTexts() error = %v", err)
	}

	want := []string{"first line", "second line", "third line"}
	if len(texts) != len(want) {
		t.Fatalf("ReadTexts() returned %d texts, want %d", len(texts), len(want))
	}
	for i, text := range texts {
		if text.Raw != want[i] {
			t.Errorf("texts[%d].Raw = %q, want %q", i, text.Raw, want[i])
		}
		if text.IsPreTokenized() {
			t.Errorf("texts[%d] is pre-tokenized, want raw", i)
		}
	}
}

func TestReadTextsEmptyFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "empty.txt")
	writeFile(t, path, "")

	texts, err := ReadTexts(path)
	if err != nil {
		t.Fatalf("ReadTexts() error = %v", err)
	}
	if len(texts) != 0 {
		t.Errorf("ReadTexts() returned %d texts, want 0", len(texts))
	}
}

func TestReadTextsMissingFile(t *testing.T) {
	if _, err := ReadTexts(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("ReadTexts() on a missing file returned nil error")
	}
}
