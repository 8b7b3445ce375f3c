package arxiv

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <id>http://arxiv.org/abs/2101.00001v1</id>
    <title>Machine learning potentials for
      metal-organic frameworks</title>
    <summary>  We train an MLIP on MOF relaxation trajectories.  </summary>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2102.00002v2</id>
    <title>CO2 adsorption in ZIF-8</title>
    <summary>Adsorption energies computed with DFT.</summary>
  </entry>
</feed>`

func TestClient_Fetch(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("search_query")
		if r.URL.Query().Get("max_results") != "6" {
			t.Errorf("max_results = %s, want 6", r.URL.Query().Get("max_results"))
		}
		w.Header().Set("Content-Type", "application/atom+xml")
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	docs, err := client.Fetch(context.Background(), "MOF MLIP relaxation", 6)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if gotQuery != "all:MOF MLIP relaxation" {
		t.Errorf("search_query = %q", gotQuery)
	}
	if len(docs) != 2 {
		t.Fatalf("Fetch() = %d docs, want 2", len(docs))
	}
	if docs[0].Title != "Machine learning potentials for metal-organic frameworks" {
		t.Errorf("title not whitespace-normalized: %q", docs[0].Title)
	}
	if docs[0].ID != "http://arxiv.org/abs/2101.00001v1" {
		t.Errorf("doc id = %q", docs[0].ID)
	}
	if docs[0].Summary != "We train an MLIP on MOF relaxation trajectories." {
		t.Errorf("summary not trimmed: %q", docs[0].Summary)
	}
}

func TestClient_FetchZeroMaxDocs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected when maxDocs is 0")
	}))
	defer server.Close()

	client := NewClient(server.URL)
	docs, err := client.Fetch(context.Background(), "anything", 0)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("Fetch() = %d docs, want 0", len(docs))
	}
}

func TestClient_FetchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.Fetch(context.Background(), "anything", 3); err == nil {
		t.Fatal("Fetch() expected error on 500, got nil")
	}
}

func TestCompactText(t *testing.T) {
	docs := []Document{
		{Title: "Paper A", ID: "arXiv:1", Summary: "Summary A"},
		{Title: "Paper B", ID: "arXiv:2", Summary: "Summary B"},
	}
	got := CompactText(docs)
	for _, want := range []string{
		"TITLE: Paper A", "ID: arXiv:1", "SUMMARY:\nSummary A\n---",
		"TITLE: Paper B",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("CompactText() missing %q in:\n%s", want, got)
		}
	}
	if CompactText(nil) != "" {
		t.Errorf("CompactText(nil) = %q, want empty", CompactText(nil))
	}
}
