package ids

import (
	"regexp"
	"testing"
)

func TestNewExpID(t *testing.T) {
	pattern := regexp.MustCompile(`^mof-\d{8}-[0-9a-f]{8}$`)

	id := NewExpID("mof")
	if !pattern.MatchString(id) {
		t.Errorf("NewExpID() = %q, want prefix-YYYYMMDD-xxxxxxxx", id)
	}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewExpID("mof")
		if seen[id] {
			t.Fatalf("NewExpID() produced duplicate %q", id)
		}
		seen[id] = true
	}
}
