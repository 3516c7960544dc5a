package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestExtractFile_PlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	if err := os.WriteFile(path, []byte("worked at Acme for 3 years"), 0o600); err != nil {
		t.Fatalf("could not write fixture: %v", err)
	}

	text, err := ExtractFile(path)
	if err != nil {
		t.Fatalf("ExtractFile failed: %v", err)
	}
	if text != "worked at Acme for 3 years" {
		t.Errorf("unexpected content: %q", text)
	}
}

func TestExtractFile_UnsupportedFormat(t *testing.T) {
	_, err := ExtractFile("somefile.exe")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestExtractFile_MissingPDF(t *testing.T) {
	if _, err := ExtractFile(filepath.Join(t.TempDir(), "missing.pdf")); err == nil {
		t.Error("Expected error for missing pdf")
	}
}
