package memory

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T, maxItems int) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "memory", "memory_store.jsonl")
	store, err := NewStore(path, maxItems)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return store
}

func record(expID, queryOriginal string) Record {
	return Record{
		Timestamp:     "2026-01-01T00:00:00Z",
		ExpID:         expID,
		QueryOriginal: queryOriginal,
	}
}

func expIDs(records []Record) []string {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ExpID
	}
	return ids
}

func TestNewStore_CreatesFileAndDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "store.jsonl")
	store, err := NewStore(path, 50)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("backing file was not created: %v", err)
	}

	// Idempotent: opening again must not fail or clobber contents.
	if err := store.Append(record("r1", "relax UiO-66")); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if _, err := NewStore(path, 50); err != nil {
		t.Fatalf("NewStore() second open error = %v", err)
	}
	records, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(records) != 1 {
		t.Errorf("LoadAll() after reopen = %d records, want 1", len(records))
	}
}

func TestNewStore_DirectoryCreationFails(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	// Parent path component is a regular file, so MkdirAll must fail.
	_, err := NewStore(filepath.Join(blocker, "sub", "store.jsonl"), 50)
	if err == nil {
		t.Fatal("NewStore() expected error, got nil")
	}
	if !strings.Contains(err.Error(), ErrStorageInit.Error()) {
		t.Errorf("NewStore() error = %v, want wrapped ErrStorageInit", err)
	}
}

func TestStore_AppendLoadAllRoundTrip(t *testing.T) {
	store := newTestStore(t, 50)

	want := Record{
		Timestamp:        "2026-02-12T10:30:00Z",
		ExpID:            "mof-20260212-8342",
		QueryOriginal:    "relax UiO-66 with SevenNet",
		QueryCanonical:   "Perform geometry relaxation of UiO-66 using an MLIP",
		MOFName:          "UiO-66",
		TaskType:         "relaxation",
		VerdictStatus:    "pass",
		VerdictRationale: "no strong prior art found",
	}
	if err := store.Append(want); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	records, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("LoadAll() = %d records, want 1", len(records))
	}
	if records[0] != want {
		t.Errorf("LoadAll()[0] = %+v, want %+v", records[0], want)
	}
}

func TestStore_LoadAllSkipsMalformedLines(t *testing.T) {
	store := newTestStore(t, 50)
	if err := store.Append(record("r1", "relax UiO-66")); err != nil {
		t.Fatal(err)
	}

	// Simulate a crash mid-append plus stray blank lines.
	f, err := os.OpenFile(store.path, os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("{\"exp_id\": \"trunc\n\n\nnot json at all\n"); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	if err := store.Append(record("r2", "adsorption CO2 in ZIF-8")); err != nil {
		t.Fatal(err)
	}

	records, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if got := expIDs(records); len(got) != 2 || got[0] != "r1" || got[1] != "r2" {
		t.Errorf("LoadAll() exp_ids = %v, want [r1 r2]", got)
	}
}

func TestStore_LoadAllMissingFile(t *testing.T) {
	store := newTestStore(t, 50)
	if err := os.Remove(store.path); err != nil {
		t.Fatal(err)
	}
	records, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("LoadAll() = %d records, want 0", len(records))
	}
}

func TestStore_Retrieve(t *testing.T) {
	seed := []Record{
		{ExpID: "r1", QueryOriginal: "relax UiO-66"},
		{ExpID: "r2", QueryOriginal: "adsorption CO2 in ZIF-8"},
		{ExpID: "r3", QueryOriginal: "relax UiO-67"},
	}

	tests := []struct {
		name    string
		query   string
		k       int
		wantIDs []string
	}{
		{
			name:    "keyword overlap ranks best match first",
			query:   "relax UiO-66 structure",
			k:       2,
			wantIDs: []string{"r1", "r3"},
		},
		{
			name:    "zero k returns nothing",
			query:   "relax UiO-66",
			k:       0,
			wantIDs: nil,
		},
		{
			name:    "negative k returns nothing",
			query:   "relax UiO-66",
			k:       -3,
			wantIDs: nil,
		},
		{
			name:    "empty query falls back to most recent",
			query:   "",
			k:       2,
			wantIDs: []string{"r2", "r3"},
		},
		{
			name:    "punctuation-only query falls back to most recent",
			query:   "?! ... ;;",
			k:       2,
			wantIDs: []string{"r2", "r3"},
		},
		{
			name:    "no match backfills newest first",
			query:   "quartz phonon dispersion",
			k:       3,
			wantIDs: []string{"r3", "r2", "r1"},
		},
		{
			name:    "k larger than log is truncated to log size",
			query:   "relax",
			k:       10,
			wantIDs: []string{"r1", "r3", "r2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t, 50)
			for _, r := range seed {
				if err := store.Append(r); err != nil {
					t.Fatalf("Append() error = %v", err)
				}
			}

			got, err := store.Retrieve(tt.query, tt.k)
			if err != nil {
				t.Fatalf("Retrieve() error = %v", err)
			}
			gotIDs := expIDs(got)
			if len(gotIDs) != len(tt.wantIDs) {
				t.Fatalf("Retrieve() = %v, want %v", gotIDs, tt.wantIDs)
			}
			for i := range gotIDs {
				if gotIDs[i] != tt.wantIDs[i] {
					t.Errorf("Retrieve()[%d] = %s, want %s", i, gotIDs[i], tt.wantIDs[i])
				}
			}
		})
	}
}

func TestStore_RetrieveEmptyStore(t *testing.T) {
	store := newTestStore(t, 50)
	got, err := store.Retrieve("relax UiO-66", 5)
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Retrieve() on empty store = %d records, want 0", len(got))
	}
}

func TestStore_RetrieveIsDeterministic(t *testing.T) {
	store := newTestStore(t, 50)
	for i := 0; i < 10; i++ {
		rec := record("r"+string(rune('0'+i)), "relax UiO-66 adsorption")
		if err := store.Append(rec); err != nil {
			t.Fatal(err)
		}
	}

	first, err := store.Retrieve("relax adsorption", 5)
	if err != nil {
		t.Fatal(err)
	}
	second, err := store.Retrieve("relax adsorption", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != len(second) {
		t.Fatalf("result sizes differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ExpID != second[i].ExpID {
			t.Errorf("result[%d] differs: %s vs %s", i, first[i].ExpID, second[i].ExpID)
		}
	}
}

func TestStore_RetrieveBackfillNoDuplicates(t *testing.T) {
	store := newTestStore(t, 50)
	n := 5
	ids := []string{"a1", "a2", "a3", "a4", "a5"}
	for _, id := range ids {
		if err := store.Append(record(id, "framework stability "+id)); err != nil {
			t.Fatal(err)
		}
	}

	got, err := store.Retrieve("zeolite synthesis protocol", n)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != n {
		t.Fatalf("Retrieve() = %d records, want %d", len(got), n)
	}
	seen := make(map[string]bool)
	for _, r := range got {
		if seen[r.ExpID] {
			t.Errorf("duplicate exp_id %q in backfilled result", r.ExpID)
		}
		seen[r.ExpID] = true
	}
}

func TestStore_TrimKeepsNewestRecords(t *testing.T) {
	store := newTestStore(t, 3)
	ids := []string{"r1", "r2", "r3", "r4", "r5"}
	for _, id := range ids {
		if err := store.Append(record(id, "query "+id)); err != nil {
			t.Fatal(err)
		}
	}

	records, err := store.LoadAll()
	if err != nil {
		t.Fatal(err)
	}
	if got := expIDs(records); len(got) != 3 || got[0] != "r3" || got[1] != "r4" || got[2] != "r5" {
		t.Errorf("LoadAll() after trim = %v, want [r3 r4 r5]", got)
	}
}

func TestStore_TrimDisabledWithNonPositiveCap(t *testing.T) {
	store := newTestStore(t, 0)
	for i := 0; i < 10; i++ {
		if err := store.Append(record("r"+string(rune('0'+i)), "query")); err != nil {
			t.Fatal(err)
		}
	}
	records, err := store.LoadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 10 {
		t.Errorf("LoadAll() = %d records, want 10 (trimming disabled)", len(records))
	}
}

func TestStore_FormatContext(t *testing.T) {
	store := newTestStore(t, 50)

	if got := store.FormatContext(nil); got != "(no prior memory)" {
		t.Errorf("FormatContext(nil) = %q, want %q", got, "(no prior memory)")
	}

	rec := Record{
		ExpID:          "mof-20260212-8342",
		QueryOriginal:  "relax UiO-66 with SevenNet",
		QueryCanonical: "Perform geometry relaxation of UiO-66",
		MOFName:        "UiO-66",
		TaskType:       "relaxation",
		VerdictStatus:  "pass",
	}
	got := store.FormatContext([]Record{rec})
	for _, want := range []string{rec.ExpID, rec.QueryOriginal, rec.QueryCanonical, "PAST_RUN:"} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatContext() missing %q in:\n%s", want, got)
		}
	}
}

func TestTokenSet(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "hyphen and underscore are token characters",
			text: "relax UiO-66 defect_energy",
			want: []string{"relax", "uio-66", "defect_energy"},
		},
		{
			name: "single-character tokens are dropped",
			text: "a b CO2",
			want: []string{"co2"},
		},
		{
			name: "duplicates collapse",
			text: "relax relax RELAX",
			want: []string{"relax"},
		},
		{
			name: "punctuation only",
			text: "?! ... ;;",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenSet(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("tokenSet(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for _, w := range tt.want {
				if _, ok := got[w]; !ok {
					t.Errorf("tokenSet(%q) missing token %q", tt.text, w)
				}
			}
		})
	}
}
