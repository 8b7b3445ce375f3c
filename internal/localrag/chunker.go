package localrag

import "strings"

const (
	// chunkSize is the nominal window size in runes.
	chunkSize = 1500
	// chunkOverlap is how many runes consecutive windows share, so that a
	// passage spanning a window boundary is not lost entirely.
	chunkOverlap = 200
	// maxTopChunks caps how many chunks a search returns.
	maxTopChunks = 5
)

// Chunk is a contiguous slice of extracted document text. Chunks are
// ephemeral: they are rebuilt from the source documents on every search.
type Chunk struct {
	// Source is the originating document file name.
	Source string
	// Page is the zero-based page index the chunk was extracted from.
	Page int
	// Text is the chunk content.
	Text string
	// Score is the relevance score assigned at query time.
	Score float64
}

// splitPage splits one page of text into overlapping fixed-size windows.
// The last partial window is kept even when shorter than the nominal size.
func splitPage(source string, page int, text string) []Chunk {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	runes := []rune(text)
	n := len(runes)
	var chunks []Chunk
	start := 0
	for start < n {
		end := start + chunkSize
		if end > n {
			end = n
		}
		chunkText := strings.TrimSpace(string(runes[start:end]))
		if chunkText != "" {
			chunks = append(chunks, Chunk{
				Source: source,
				Page:   page,
				Text:   chunkText,
			})
		}
		if end >= n {
			break
		}
		start = end - chunkOverlap
		if start < 0 {
			start = 0
		}
	}
	return chunks
}
