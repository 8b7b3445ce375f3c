package localrag

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"mof-mlip-agent/internal/contextutil"
)

// Reference points at a passage that contributed to the search context.
type Reference struct {
	// Source is the document file name.
	Source string `json:"source"`
	// Page is the 1-based page number, for human consumption.
	Page int `json:"page"`
	// Score is the lexical overlap score in [0, 1].
	Score float64 `json:"score"`
}

// Retriever scans a local document directory and ranks text chunks against
// a query by lexical overlap. Every search re-reads the documents; there is
// no cache or index across calls.
type Retriever struct {
	dir        string
	extractors map[string]PageExtractor
}

// NewRetriever creates a Retriever over dir. Extractors are keyed by file
// extension (".pdf", ".md"); files with other extensions are ignored. A nil
// or empty extractor map degrades every search to an empty result.
func NewRetriever(dir string, extractors map[string]PageExtractor) *Retriever {
	return &Retriever{dir: dir, extractors: extractors}
}

// DefaultExtractors returns the standard extractor set: PDF text layer plus
// markdown notes.
func DefaultExtractors() map[string]PageExtractor {
	return map[string]PageExtractor{
		".pdf": NewPDFExtractor(),
		".md":  NewMarkdownExtractor(),
	}
}

// Search returns a concatenated context string built from the top-ranked
// passages, with inline provenance tags, and a parallel reference list.
// All failure modes degrade to an empty result: a missing directory, no
// documents, no extractors, unreadable files, or no positive-scoring chunk.
func (r *Retriever) Search(ctx context.Context, query string) (string, []Reference) {
	logger := contextutil.LoggerFromContext(ctx)

	// Create the directory if absent so users can just drop files into it.
	// Failure to create it is not fatal; we degrade to "no local context".
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		logger.WarnContext(ctx, "failed to create local document directory", "dir", r.dir, "error", err)
		return "", nil
	}

	if len(r.extractors) == 0 {
		return "", nil
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		logger.WarnContext(ctx, "failed to read local document directory", "dir", r.dir, "error", err)
		return "", nil
	}

	var chunks []Chunk
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		extractor, ok := r.extractors[ext]
		if !ok {
			continue
		}

		pages, err := extractor.ExtractPages(filepath.Join(r.dir, entry.Name()))
		if err != nil {
			// Best-effort collection scan: skip unreadable documents.
			logger.WarnContext(ctx, "skipping unreadable document", "file", entry.Name(), "error", err)
			continue
		}
		for pageIdx, pageText := range pages {
			chunks = append(chunks, splitPage(entry.Name(), pageIdx, pageText)...)
		}
	}

	if len(chunks) == 0 {
		return "", nil
	}

	var scored []Chunk
	for _, ch := range chunks {
		ch.Score = scoreChunk(query, ch.Text)
		if ch.Score > 0 {
			scored = append(scored, ch)
		}
	}
	if len(scored) == 0 {
		return "", nil
	}

	// Stable sort keeps discovery order among equal scores, so results are
	// deterministic for a fixed corpus.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > maxTopChunks {
		scored = scored[:maxTopChunks]
	}

	parts := make([]string, 0, len(scored))
	refs := make([]Reference, 0, len(scored))
	for _, ch := range scored {
		parts = append(parts, fmt.Sprintf("[%s p.%d] %s", ch.Source, ch.Page+1, ch.Text))
		refs = append(refs, Reference{
			Source: ch.Source,
			Page:   ch.Page + 1,
			Score:  ch.Score,
		})
	}

	logger.DebugContext(ctx, "local retrieval completed",
		"chunks_scanned", len(chunks),
		"chunks_returned", len(refs),
	)
	return strings.Join(parts, "\n\n"), refs
}

// scoreChunk computes the lexical overlap score between query and chunk
// text: the fraction of distinct query tokens that appear anywhere in the
// chunk. An empty query or empty chunk scores 0.
func scoreChunk(query, text string) float64 {
	queryTokens := distinctTokens(query)
	if len(queryTokens) == 0 {
		return 0
	}
	chunkTokens := distinctTokens(text)
	if len(chunkTokens) == 0 {
		return 0
	}

	matches := 0
	for tok := range queryTokens {
		if _, ok := chunkTokens[tok]; ok {
			matches++
		}
	}
	return float64(matches) / float64(len(queryTokens))
}

// distinctTokens lowercases text and collects its word-character runs
// (letters, digits, underscore) as a set.
func distinctTokens(text string) map[string]struct{} {
	tokens := make(map[string]struct{})
	var builder strings.Builder
	flush := func() {
		if builder.Len() > 0 {
			tokens[builder.String()] = struct{}{}
		}
		builder.Reset()
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			builder.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}
