// Package schema defines the structured inputs and outputs for each
// reasoning stage (intent parsing, canonicalization, novelty checking, and
// spec generation). Keeping them in one place makes it easier to evolve the
// agent while staying type-safe.
package schema

import "encoding/json"

// Task types the agent can turn into an executable experiment.
const (
	TaskRelaxation       = "relaxation"
	TaskSinglepoint      = "singlepoint"
	TaskAdsorptionEnergy = "adsorption_energy"
	TaskDefectEnergy     = "defect_energy"
)

// Feasibility values for QueryIntent.
const (
	FeasibilityFeasible           = "feasible"
	FeasibilityNeedsClarification = "needs_clarification"
	FeasibilityNotVerifiable      = "not_mlip_verifiable"
)

// Novelty verdict statuses.
const (
	VerdictPass      = "pass"
	VerdictReject    = "reject"
	VerdictUncertain = "uncertain"
)

// QueryIntent is the parsed form of the user's raw query: what they are
// asking for and whether it is MLIP-verifiable as stated.
type QueryIntent struct {
	MOFName        string   `json:"mof_name"`
	Goal           string   `json:"goal" validate:"required"`
	TaskHint       string   `json:"task_hint" validate:"omitempty,oneof=relaxation singlepoint adsorption_energy defect_energy"`
	RequiredInputs []string `json:"required_inputs"`
	AmbiguityFlags []string `json:"ambiguity_flags"`
	Feasibility    string   `json:"feasibility" validate:"required,oneof=feasible needs_clarification not_mlip_verifiable"`
}

// CanonicalQuery is a single precise rewrite of the user's query, suitable
// for literature search, local retrieval, and spec generation.
type CanonicalQuery struct {
	QueryCanonical      string   `json:"query_canonical" validate:"required"`
	ClarifyingQuestions []string `json:"clarifying_questions"`
}

// PaperRef identifies a literature reference supporting a novelty verdict.
type PaperRef struct {
	Title       string `json:"title"`
	ID          string `json:"id"`
	WhyRelevant string `json:"why_relevant"`
}

// NoveltyVerdict is the novelty gate's decision about a canonical question.
type NoveltyVerdict struct {
	Status    string     `json:"status" validate:"required,oneof=pass reject uncertain"`
	Rationale string     `json:"rationale"`
	TopRefs   []PaperRef `json:"top_refs"`
}

// ExperimentSpec is the machine-executable experiment specification the
// pipeline produces. The nested sections are left schemaless on purpose:
// their exact keys depend on the task type and the downstream MLIP engine.
type ExperimentSpec struct {
	ExpID          string `json:"exp_id" validate:"required"`
	QueryOriginal  string `json:"query_original" validate:"required"`
	QueryCanonical string `json:"query_canonical" validate:"required"`

	Structure   map[string]any `json:"structure" validate:"required"`
	Calculator  map[string]any `json:"calculator" validate:"required"`
	Task        map[string]any `json:"task" validate:"required"`
	Postprocess map[string]any `json:"postprocess"`

	NoveltyCheck map[string]any `json:"novelty_check"`
	Notes        string         `json:"notes"`
}

// TaskType returns the spec's task.type value, or "" when absent.
func (s ExperimentSpec) TaskType() string {
	if v, ok := s.Task["type"].(string); ok {
		return v
	}
	return ""
}

// StructureID returns the spec's structure.id value, or "" when absent.
func (s ExperimentSpec) StructureID() string {
	if v, ok := s.Structure["id"].(string); ok {
		return v
	}
	return ""
}

// ToJSON renders v as a compact JSON string for prompt injection. Failures
// collapse to "{}" so a prompt is never broken by a marshalling problem.
func ToJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
