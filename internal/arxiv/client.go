// Package arxiv wraps the arXiv Atom query API. All arXiv-specific logic
// lives here so the pipeline only depends on a simple fetch function for
// document retrieval and formatting.
package arxiv

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// DefaultBaseURL is the public arXiv API endpoint.
const DefaultBaseURL = "http://export.arxiv.org/api"

// Document is one literature result: title, stable identifier, and the
// abstract text.
type Document struct {
	Title   string
	ID      string
	Summary string
}

// Client fetches documents from the arXiv query API.
type Client struct {
	BaseURL string
	client  *http.Client
}

// NewClient creates a new arXiv client. An empty baseURL selects the public
// endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		client:  http.DefaultClient,
	}
}

// atomFeed mirrors the subset of the Atom response the agent needs.
type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID      string `xml:"id"`
	Title   string `xml:"title"`
	Summary string `xml:"summary"`
}

// Fetch searches arXiv for query and returns up to maxDocs documents.
// maxDocs <= 0 short-circuits to an empty result without a network call.
func (c *Client) Fetch(ctx context.Context, query string, maxDocs int) ([]Document, error) {
	if maxDocs <= 0 {
		return nil, nil
	}

	params := url.Values{}
	params.Set("search_query", "all:"+query)
	params.Set("start", "0")
	params.Set("max_results", fmt.Sprintf("%d", maxDocs))
	endpoint := fmt.Sprintf("%s/query?%s", c.BaseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query arxiv: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// arXiv intermittently returns 500 and rate-limits with 429; both are
	// surfaced as plain errors so the caller can degrade to "no literature".
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arxiv returned status %d", resp.StatusCode)
	}

	var feed atomFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to decode arxiv feed: %w", err)
	}

	docs := make([]Document, 0, len(feed.Entries))
	for _, e := range feed.Entries {
		docs = append(docs, Document{
			Title:   normalizeSpace(e.Title),
			ID:      strings.TrimSpace(e.ID),
			Summary: strings.TrimSpace(e.Summary),
		})
	}
	return docs, nil
}

// CompactText renders documents into a single block for novelty judgement:
//
//	TITLE: <title>
//	ID: <entry_id>
//	SUMMARY:
//	<abstract text>
//	---
func CompactText(docs []Document) string {
	chunks := make([]string, 0, len(docs))
	for _, d := range docs {
		chunks = append(chunks, fmt.Sprintf("TITLE: %s\nID: %s\nSUMMARY:\n%s\n---", d.Title, d.ID, d.Summary))
	}
	return strings.TrimSpace(strings.Join(chunks, "\n"))
}

// normalizeSpace collapses the newlines and indentation arXiv embeds in
// multi-line titles.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
