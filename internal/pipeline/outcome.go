package pipeline

import (
	"mof-mlip-agent/internal/localrag"
	"mof-mlip-agent/internal/schema"
)

// Outcome is the final result of a pipeline run: either a Completed run
// carrying an experiment spec, or a Rejected run stopped by the novelty
// gate. There are no other variants.
type Outcome interface {
	outcome()
}

// Completed is a run that produced an experiment spec.
type Completed struct {
	ExpID     string
	Intent    schema.QueryIntent
	Canonical schema.CanonicalQuery
	Verdict   schema.NoveltyVerdict
	Spec      schema.ExperimentSpec
	LocalRefs []localrag.Reference
}

func (Completed) outcome() {}

// Rejected is a run stopped early because the novelty gate judged the
// hypothesis already established.
type Rejected struct {
	ExpID     string
	Intent    schema.QueryIntent
	Canonical schema.CanonicalQuery
	Verdict   schema.NoveltyVerdict
	LocalRefs []localrag.Reference
}

func (Rejected) outcome() {}
