package chunker

import (
	"errors"
	"strings"
	"testing"

	"github.com/akolanti/ResumeRAG/internal/config"
)

func TestChunk_Empty(t *testing.T) {
	chunks, err := Chunk("")
	if err != nil {
		t.Fatalf("Chunk(\"\") returned error: %v", err)
	}
	if len(chunks) != 0 {
		t.Errorf("Expected no chunks for empty input, got %d", len(chunks))
	}
}

func TestChunk_ShortText(t *testing.T) {
	text := "short resume paragraph"
	chunks, err := Chunk(text)
	if err != nil {
		t.Fatalf("Chunk failed: %v", err)
	}
	if len(chunks) != 1 || chunks[0] != text {
		t.Errorf("Expected single chunk equal to input, got %v", chunks)
	}
}

func TestChunk_OverlapIsExact(t *testing.T) {
	text := strings.Repeat("x", 2500)
	chunks, err := Chunk(text)
	if err != nil {
		t.Fatalf("Chunk failed: %v", err)
	}

	for i := 0; i < len(chunks)-1; i++ {
		if len(chunks[i]) != config.ChunkSize {
			t.Errorf("chunk %d: expected %d bytes, got %d", i, config.ChunkSize, len(chunks[i]))
		}
		tail := chunks[i][len(chunks[i])-config.ChunkOverlap:]
		head := chunks[i+1][:config.ChunkOverlap]
		if tail != head {
			t.Errorf("chunk %d/%d boundary does not overlap by %d bytes", i, i+1, config.ChunkOverlap)
		}
	}
}

// Stripping the overlap from every chunk after the first must reconstruct
// the original text exactly.
func TestChunk_Coverage(t *testing.T) {
	texts := []string{
		strings.Repeat("abcdefghij", 350), // multiple full windows
		strings.Repeat("a", 1000),         // exactly one window
		strings.Repeat("b", 1001),         // one byte past a window
	}

	for _, text := range texts {
		chunks, err := Chunk(text)
		if err != nil {
			t.Fatalf("Chunk failed: %v", err)
		}

		var sb strings.Builder
		for i, c := range chunks {
			if i == 0 {
				sb.WriteString(c)
				continue
			}
			sb.WriteString(c[config.ChunkOverlap:])
		}
		if sb.String() != text {
			t.Errorf("reassembled text does not match original (len %d)", len(text))
		}
	}
}

func TestChunk_SafetyCap(t *testing.T) {
	// degenerate config: overlap >= size still has to terminate, and a tiny
	// cap has to abort instead of looping
	_, err := chunkWith(strings.Repeat("z", 100), 10, 10, 3)
	if !errors.Is(err, ErrTooManyChunks) {
		t.Errorf("Expected ErrTooManyChunks, got %v", err)
	}
}

func TestChunk_NoOverlapFallback(t *testing.T) {
	// overlap >= size: windows must advance by full size instead
	chunks, err := chunkWith("0123456789", 4, 6, 100)
	if err != nil {
		t.Fatalf("chunkWith failed: %v", err)
	}
	expected := []string{"0123", "4567", "89"}
	if len(chunks) != len(expected) {
		t.Fatalf("Expected %d chunks, got %d: %v", len(expected), len(chunks), chunks)
	}
	for i := range expected {
		if chunks[i] != expected[i] {
			t.Errorf("chunk %d: got %q, want %q", i, chunks[i], expected[i])
		}
	}
}
