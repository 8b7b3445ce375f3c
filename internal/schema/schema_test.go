package schema

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{
			name: "valid intent",
			value: &QueryIntent{
				Goal:        "relax UiO-66 and report final energy",
				TaskHint:    TaskRelaxation,
				Feasibility: FeasibilityFeasible,
			},
			wantErr: false,
		},
		{
			name: "intent without goal",
			value: &QueryIntent{
				Feasibility: FeasibilityFeasible,
			},
			wantErr: true,
		},
		{
			name: "intent with unknown task hint",
			value: &QueryIntent{
				Goal:        "something",
				TaskHint:    "md_simulation",
				Feasibility: FeasibilityFeasible,
			},
			wantErr: true,
		},
		{
			name: "intent with empty task hint is allowed",
			value: &QueryIntent{
				Goal:        "something",
				Feasibility: FeasibilityNeedsClarification,
			},
			wantErr: false,
		},
		{
			name:    "canonical without text",
			value:   &CanonicalQuery{},
			wantErr: true,
		},
		{
			name: "verdict with invalid status",
			value: &NoveltyVerdict{
				Status:    "maybe",
				Rationale: "unsure",
			},
			wantErr: true,
		},
		{
			name: "valid verdict",
			value: &NoveltyVerdict{
				Status:    VerdictReject,
				Rationale: "already established",
				TopRefs:   []PaperRef{{Title: "Prior art", ID: "arXiv:2101.00001"}},
			},
			wantErr: false,
		},
		{
			name: "valid spec",
			value: &ExperimentSpec{
				ExpID:          "mof-20260830-abc12345",
				QueryOriginal:  "relax UiO-66",
				QueryCanonical: "Perform geometry relaxation of UiO-66",
				Structure:      map[string]any{"id": "UiO-66", "path": "structures/uio66.cif"},
				Calculator:     map[string]any{"engine": "sevennet"},
				Task:           map[string]any{"type": TaskRelaxation, "fmax": 0.05},
			},
			wantErr: false,
		},
		{
			name: "spec without structure",
			value: &ExperimentSpec{
				ExpID:          "mof-20260830-abc12345",
				QueryOriginal:  "relax UiO-66",
				QueryCanonical: "Perform geometry relaxation of UiO-66",
				Calculator:     map[string]any{"engine": "sevennet"},
				Task:           map[string]any{"type": TaskRelaxation},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExperimentSpec_Accessors(t *testing.T) {
	spec := ExperimentSpec{
		Structure: map[string]any{"id": "ZIF-8"},
		Task:      map[string]any{"type": TaskAdsorptionEnergy},
	}
	if got := spec.TaskType(); got != TaskAdsorptionEnergy {
		t.Errorf("TaskType() = %q, want %q", got, TaskAdsorptionEnergy)
	}
	if got := spec.StructureID(); got != "ZIF-8" {
		t.Errorf("StructureID() = %q, want %q", got, "ZIF-8")
	}

	empty := ExperimentSpec{}
	if got := empty.TaskType(); got != "" {
		t.Errorf("TaskType() on empty spec = %q, want empty", got)
	}
}

func TestToJSON(t *testing.T) {
	got := ToJSON(QueryIntent{Goal: "g", Feasibility: FeasibilityFeasible})
	if !strings.Contains(got, `"goal":"g"`) {
		t.Errorf("ToJSON() = %s, missing goal field", got)
	}
	if got := ToJSON(make(chan int)); got != "{}" {
		t.Errorf("ToJSON() on unserializable value = %q, want {}", got)
	}
}
