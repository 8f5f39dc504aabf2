package fsio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteTextCreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "c.txt")

	var w Writer
	if err := w.WriteText(path, "content"); err != nil {
		t.Fatalf("WriteText() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if string(data) != "content" {
		t.Errorf("content = %q", data)
	}
}

func TestWriteTextOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")

	var w Writer
	if err := w.WriteText(path, "old"); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteText(path, "new"); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "new" {
		t.Errorf("content = %q, want overwrite", data)
	}
}

func TestWriteJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.json")

	var w Writer
	if err := w.WriteJSON(path, map[string]string{"key": "value"}); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "  \"key\": \"value\"") {
		t.Errorf("JSON = %q, want two-space indentation", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("JSON file should end with a newline")
	}
}

func TestEnsureDirIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sub")

	var w Writer
	if err := w.EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir() error: %v", err)
	}
	if err := w.EnsureDir(dir); err != nil {
		t.Errorf("EnsureDir() second call error: %v", err)
	}
}
