// Package localrag finds and ranks passages from a local document folder
// relevant to a query, using plain lexical overlap. It is a deliberately
// cheap fallback retrieval mechanism: no embedding model, no external
// service, no index to maintain.
package localrag

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_page_extractor.go -package=mocks mof-mlip-agent/internal/localrag PageExtractor

// PageExtractor extracts per-page plain text from a document on disk.
// Implementations exist for PDF files and markdown notes; the chunking and
// scoring logic is independent of the extraction backend.
type PageExtractor interface {
	// ExtractPages returns the text of each logical page of the document,
	// in page order. Pages may be blank; callers skip those.
	ExtractPages(path string) ([]string, error)
}
