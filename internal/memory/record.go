package memory

import "strings"

// Record summarizes one completed or rejected agent run.
// Records are immutable once appended; the store only appends new ones
// or drops old ones during trimming.
type Record struct {
	Timestamp        string `json:"timestamp"`
	ExpID            string `json:"exp_id"`
	QueryOriginal    string `json:"query_original"`
	QueryCanonical   string `json:"query_canonical"`
	MOFName          string `json:"mof_name"`
	TaskType         string `json:"task_type"`
	VerdictStatus    string `json:"verdict_status"`
	VerdictRationale string `json:"verdict_rationale"`
}

// searchText concatenates the fields that participate in keyword retrieval.
// The rationale is intentionally excluded: it is free text from the novelty
// gate and tends to match everything.
func (r Record) searchText() string {
	return strings.Join([]string{
		r.QueryOriginal,
		r.QueryCanonical,
		r.MOFName,
		r.TaskType,
		r.VerdictStatus,
	}, " ")
}
