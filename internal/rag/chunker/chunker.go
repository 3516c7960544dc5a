package chunker

import (
	"errors"

	"github.com/akolanti/ResumeRAG/internal/config"
)

// ErrTooManyChunks guards against a non-terminating window configuration.
// Hitting it means the input or the constants are broken, not normal flow.
var ErrTooManyChunks = errors.New("too many chunks generated: text may be too large or chunking config is broken")

// Chunk splits text into overlapping fixed-size windows of config.ChunkSize
// bytes with config.ChunkOverlap bytes shared between neighbours. The final
// window may be shorter. Empty input yields no chunks and no error.
func Chunk(text string) ([]string, error) {
	return chunkWith(text, config.ChunkSize, config.ChunkOverlap, config.MaxChunksPerDocument)
}

func chunkWith(text string, size, overlap, maxChunks int) ([]string, error) {
	var chunks []string

	if len(text) == 0 {
		return chunks, nil
	}

	start := 0
	for start < len(text) {
		end := start + size
		if end > len(text) {
			end = len(text)
		}

		chunks = append(chunks, text[start:end])

		if end >= len(text) {
			break
		}

		// next window starts overlap bytes before this one ended; if that
		// does not strictly advance (overlap >= size) fall back to a clean
		// cut so the loop always makes progress
		nextStart := end - overlap
		if nextStart > start {
			start = nextStart
		} else {
			start = end
		}

		if len(chunks) > maxChunks {
			return nil, ErrTooManyChunks
		}
	}

	return chunks, nil
}
