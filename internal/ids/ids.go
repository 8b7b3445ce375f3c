// Package ids generates short, human-readable experiment identifiers.
package ids

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewExpID returns a new experiment identifier of the form
//
//	<prefix>-YYYYMMDD-xxxxxxxx
//
// where the suffix is the first eight hex characters of a random UUID.
// The date makes ids sortable by day at a glance; the suffix makes them
// unique within one.
func NewExpID(prefix string) string {
	date := time.Now().Format("20060102")
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s-%s-%s", prefix, date, suffix)
}
