// Package memory implements a JSONL-backed persistent memory of past agent
// runs. Each line of the backing file is one JSON record describing a run.
// Retrieval is based on simple keyword overlap, which is cheap and needs no
// external service.
package memory

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrStorageInit is returned when the backing file or its directory
	// cannot be created.
	ErrStorageInit = errors.New("memory store init failed")
	// ErrSerialize is returned when a record cannot be encoded as JSON.
	ErrSerialize = errors.New("memory record not serializable")
)

// Store is a persistent memory of past runs backed by a JSONL file.
// Store owns the file exclusively; nothing else writes to it. It assumes a
// single-process caller: concurrent access to the same file from multiple
// processes is not safe.
type Store struct {
	path     string
	maxItems int
}

// NewStore opens (creating if necessary) the JSONL store at path.
// maxItems is a soft cap on how many records are kept on disk; a
// non-positive cap disables trimming.
func NewStore(path string, maxItems int) (*Store, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorageInit, err)
		}
	}

	// Ensure the file exists so later reads never have to special-case
	// a first run.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageInit, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageInit, err)
	}

	return &Store{path: path, maxItems: maxItems}, nil
}

// Append writes record as the newest entry and persists it immediately,
// then trims the file if it has grown past the soft cap.
func (s *Store) Append(record Record) error {
	line, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSerialize, err)
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open memory file: %w", err)
	}
	_, writeErr := f.Write(append(line, '\n'))
	closeErr := f.Close()
	if writeErr != nil {
		return fmt.Errorf("failed to append memory record: %w", writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close memory file: %w", closeErr)
	}

	return s.trimIfNeeded()
}

// LoadAll returns every stored record in insertion order. Lines that fail
// to parse are skipped, so a single corrupted line (e.g. from a crash
// mid-append) does not make the whole history unusable. A missing or empty
// file yields an empty slice.
func (s *Store) LoadAll() ([]Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open memory file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var records []Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var rec Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read memory file: %w", err)
	}
	return records, nil
}

// Retrieve returns up to k records judged most relevant to query by keyword
// overlap. When the query has no usable tokens it falls back to the k most
// recent records. If fewer than k records score positively, the result is
// backfilled with the most recent records not already present.
func (s *Store) Retrieve(query string, k int) ([]Record, error) {
	if k <= 0 {
		return nil, nil
	}

	items, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}

	queryTokens := tokenSet(query)
	if len(queryTokens) == 0 {
		if len(items) <= k {
			return items, nil
		}
		return items[len(items)-k:], nil
	}

	type scoredRecord struct {
		score  int
		record Record
	}
	var scored []scoredRecord
	for _, it := range items {
		itemTokens := tokenSet(it.searchText())
		score := 0
		for tok := range queryTokens {
			if _, ok := itemTokens[tok]; ok {
				score++
			}
		}
		if score > 0 {
			scored = append(scored, scoredRecord{score: score, record: it})
		}
	}

	// Stable sort keeps insertion order among equal scores, so results are
	// reproducible for a fixed log.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	top := make([]Record, 0, k)
	for i := 0; i < len(scored) && i < k; i++ {
		top = append(top, scored[i].record)
	}

	if len(top) < k {
		// Backfill with the most recent runs, newest first, skipping
		// records already selected (matched by exp_id).
		seen := make(map[string]bool, len(top))
		for _, r := range top {
			seen[r.ExpID] = true
		}
		start := len(items) - k
		if start < 0 {
			start = 0
		}
		recent := items[start:]
		for i := len(recent) - 1; i >= 0; i-- {
			if !seen[recent[i].ExpID] {
				top = append(top, recent[i])
				seen[recent[i].ExpID] = true
			}
			if len(top) >= k {
				break
			}
		}
	}

	if len(top) > k {
		top = top[:k]
	}
	return top, nil
}

// FormatContext renders records as a compact PAST_RUN block for prompt
// injection. An empty input yields the fixed placeholder.
func (s *Store) FormatContext(records []Record) string {
	if len(records) == 0 {
		return "(no prior memory)"
	}
	lines := make([]string, 0, len(records))
	for _, r := range records {
		lines = append(lines, fmt.Sprintf(
			"PAST_RUN: exp_id=%s; mof=%s; task=%s; verdict=%s\n  original=%s\n  canonical=%s\n",
			r.ExpID, r.MOFName, r.TaskType, r.VerdictStatus,
			r.QueryOriginal, r.QueryCanonical,
		))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// trimIfNeeded rewrites the file keeping only the newest maxItems records.
// The rewrite goes through a temp file and a rename so readers never see a
// partially written log.
func (s *Store) trimIfNeeded() error {
	if s.maxItems <= 0 {
		return nil
	}
	items, err := s.LoadAll()
	if err != nil {
		return err
	}
	if len(items) <= s.maxItems {
		return nil
	}
	items = items[len(items)-s.maxItems:]

	tmp := s.path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create temp memory file: %w", err)
	}
	w := bufio.NewWriter(f)
	for _, it := range items {
		line, err := json.Marshal(it)
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
			return fmt.Errorf("%w: %v", ErrSerialize, err)
		}
		if _, err := w.Write(append(line, '\n')); err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
			return fmt.Errorf("failed to write trimmed memory file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to flush trimmed memory file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to close trimmed memory file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace memory file: %w", err)
	}
	return nil
}

// tokenSet extracts lowercase alphanumeric (plus hyphen and underscore)
// tokens of length >= 2 from text, collapsing duplicates.
func tokenSet(text string) map[string]struct{} {
	tokens := make(map[string]struct{})
	var builder strings.Builder
	flush := func() {
		if tok := builder.String(); utf8.RuneCountInString(tok) >= 2 {
			tokens[tok] = struct{}{}
		}
		builder.Reset()
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' {
			builder.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}
