// Package agent is the application service layer: it owns one full run of
// the research agent (memory recall, pipeline execution, persistence) and
// the read paths the API and CLI expose over memory and archived specs.
package agent

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_collaborators.go -package=mocks mof-mlip-agent/internal/agent MemoryStore,PipelineRunner,SpecWriter,SpecArchive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"mof-mlip-agent/internal/contextutil"
	"mof-mlip-agent/internal/ids"
	"mof-mlip-agent/internal/localrag"
	"mof-mlip-agent/internal/memory"
	"mof-mlip-agent/internal/pipeline"
	"mof-mlip-agent/internal/schema"
	"mof-mlip-agent/internal/storage"
)

// Run statuses reported to callers.
const (
	StatusCompleted = "completed"
	StatusRejected  = "rejected"
)

// MemoryStore is the slice of the memory store the service needs.
// The interface is defined from the service layer's perspective.
type MemoryStore interface {
	Retrieve(query string, k int) ([]memory.Record, error)
	FormatContext(records []memory.Record) string
	Append(record memory.Record) error
	LoadAll() ([]memory.Record, error)
}

// PipelineRunner executes the five-stage reasoning flow for one query.
type PipelineRunner interface {
	Run(ctx context.Context, queryOriginal, memoryContext, expID string) (pipeline.Outcome, error)
}

// SpecWriter persists a generated spec to disk and returns its path.
type SpecWriter interface {
	WriteSpec(spec schema.ExperimentSpec) (string, error)
}

// SpecArchive indexes completed runs for later lookup.
type SpecArchive interface {
	Insert(row storage.SpecRow) error
	ListRecent(limit int) ([]storage.SpecRow, error)
	GetByExpID(expID string) (storage.SpecRow, error)
}

// RunResult is the caller-facing summary of one agent run.
type RunResult struct {
	ExpID          string                 `json:"exp_id"`
	Status         string                 `json:"status"`
	QueryOriginal  string                 `json:"query_original"`
	QueryCanonical string                 `json:"query_canonical"`
	MOFName        string                 `json:"mof_name"`
	TaskType       string                 `json:"task_type"`
	Verdict        schema.NoveltyVerdict  `json:"verdict"`
	Spec           *schema.ExperimentSpec `json:"spec,omitempty"`
	OutputPath     string                 `json:"output_path,omitempty"`
	LocalRefs      []localrag.Reference   `json:"local_refs,omitempty"`
}

// Service wires the pipeline to its persistence collaborators.
type Service struct {
	memory    MemoryStore
	pipeline  PipelineRunner
	writer    SpecWriter
	archive   SpecArchive
	retrieveK int
	newExpID  func() string
	now       func() time.Time
}

// NewService creates a Service. retrieveK bounds how many memory records are
// recalled per run.
func NewService(mem MemoryStore, pl PipelineRunner, writer SpecWriter, archive SpecArchive, retrieveK int) *Service {
	return &Service{
		memory:    mem,
		pipeline:  pl,
		writer:    writer,
		archive:   archive,
		retrieveK: retrieveK,
		newExpID:  func() string { return ids.NewExpID("mof") },
		now:       time.Now,
	}
}

// Run executes one full agent run for query and records its outcome.
func (s *Service) Run(ctx context.Context, query string) (RunResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if query == "" {
		logger.WarnContext(ctx, "empty query in run request")
		return RunResult{}, &ValidationError{
			Field:   "query",
			Message: "cannot be empty",
		}
	}

	records, err := s.memory.Retrieve(query, s.retrieveK)
	if err != nil {
		return RunResult{}, WrapError(err, "failed to retrieve memory")
	}
	memCtx := s.memory.FormatContext(records)

	expID := s.newExpID()
	logger.InfoContext(ctx, "starting agent run", "exp_id", expID, "recalled_records", len(records))

	outcome, err := s.pipeline.Run(ctx, query, memCtx, expID)
	if err != nil {
		logger.ErrorContext(ctx, "pipeline run failed", "exp_id", expID, "error", err)
		return RunResult{}, WrapError(err, "pipeline run failed")
	}

	switch o := outcome.(type) {
	case pipeline.Completed:
		return s.finishCompleted(ctx, query, o)
	case pipeline.Rejected:
		return s.finishRejected(ctx, query, o)
	default:
		return RunResult{}, fmt.Errorf("unexpected pipeline outcome %T", outcome)
	}
}

func (s *Service) finishCompleted(ctx context.Context, query string, o pipeline.Completed) (RunResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	// Intent parsing may leave the MOF name empty; the generated spec's
	// structure id is the next-best retrievable name for the run.
	mofName := o.Intent.MOFName
	if mofName == "" {
		mofName = o.Spec.StructureID()
	}

	path, err := s.writer.WriteSpec(o.Spec)
	if err != nil {
		return RunResult{}, WrapError(err, "failed to write spec")
	}

	// The archive is a secondary index over the output files; a failed
	// insert must not lose an otherwise successful run.
	if err := s.archive.Insert(storage.SpecRow{
		ExpID:          o.ExpID,
		QueryOriginal:  query,
		QueryCanonical: o.Canonical.QueryCanonical,
		MOFName:        mofName,
		TaskType:       o.Spec.TaskType(),
		VerdictStatus:  o.Verdict.Status,
		OutputPath:     path,
	}); err != nil {
		logger.ErrorContext(ctx, "failed to archive spec", "exp_id", o.ExpID, "error", err)
	}

	if err := s.memory.Append(memory.Record{
		Timestamp:        s.now().UTC().Format(time.RFC3339),
		ExpID:            o.ExpID,
		QueryOriginal:    query,
		QueryCanonical:   o.Canonical.QueryCanonical,
		MOFName:          mofName,
		TaskType:         o.Spec.TaskType(),
		VerdictStatus:    o.Verdict.Status,
		VerdictRationale: o.Verdict.Rationale,
	}); err != nil {
		return RunResult{}, WrapError(err, "failed to record run in memory")
	}

	logger.InfoContext(ctx, "agent run completed", "exp_id", o.ExpID, "output_path", path)
	spec := o.Spec
	return RunResult{
		ExpID:          o.ExpID,
		Status:         StatusCompleted,
		QueryOriginal:  query,
		QueryCanonical: o.Canonical.QueryCanonical,
		MOFName:        mofName,
		TaskType:       spec.TaskType(),
		Verdict:        o.Verdict,
		Spec:           &spec,
		OutputPath:     path,
		LocalRefs:      o.LocalRefs,
	}, nil
}

func (s *Service) finishRejected(ctx context.Context, query string, o pipeline.Rejected) (RunResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := s.memory.Append(memory.Record{
		Timestamp:        s.now().UTC().Format(time.RFC3339),
		ExpID:            o.ExpID,
		QueryOriginal:    query,
		QueryCanonical:   o.Canonical.QueryCanonical,
		MOFName:          o.Intent.MOFName,
		TaskType:         o.Intent.TaskHint,
		VerdictStatus:    o.Verdict.Status,
		VerdictRationale: o.Verdict.Rationale,
	}); err != nil {
		return RunResult{}, WrapError(err, "failed to record run in memory")
	}

	logger.InfoContext(ctx, "agent run rejected by novelty gate", "exp_id", o.ExpID)
	return RunResult{
		ExpID:          o.ExpID,
		Status:         StatusRejected,
		QueryOriginal:  query,
		QueryCanonical: o.Canonical.QueryCanonical,
		MOFName:        o.Intent.MOFName,
		TaskType:       o.Intent.TaskHint,
		Verdict:        o.Verdict,
		LocalRefs:      o.LocalRefs,
	}, nil
}

// ListMemory returns every memory record, oldest first.
func (s *Service) ListMemory(ctx context.Context) ([]memory.Record, error) {
	records, err := s.memory.LoadAll()
	if err != nil {
		return nil, WrapError(err, "failed to load memory")
	}
	return records, nil
}

// SearchMemory runs keyword retrieval over memory with the service's
// configured k.
func (s *Service) SearchMemory(ctx context.Context, query string) ([]memory.Record, error) {
	if query == "" {
		return nil, &ValidationError{Field: "query", Message: "cannot be empty"}
	}
	records, err := s.memory.Retrieve(query, s.retrieveK)
	if err != nil {
		return nil, WrapError(err, "failed to search memory")
	}
	return records, nil
}

// ListSpecs returns the most recently archived specs.
func (s *Service) ListSpecs(ctx context.Context, limit int) ([]storage.SpecRow, error) {
	rows, err := s.archive.ListRecent(limit)
	if err != nil {
		return nil, WrapError(err, "failed to list specs")
	}
	return rows, nil
}

// GetSpec returns the archived spec row for expID. An unknown id yields an
// error wrapping ErrNotFound.
func (s *Service) GetSpec(ctx context.Context, expID string) (storage.SpecRow, error) {
	if expID == "" {
		return storage.SpecRow{}, &ValidationError{Field: "exp_id", Message: "cannot be empty"}
	}
	row, err := s.archive.GetByExpID(expID)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.SpecRow{}, fmt.Errorf("spec %s: %w", expID, ErrNotFound)
	}
	if err != nil {
		return storage.SpecRow{}, WrapError(err, "failed to get spec")
	}
	return row, nil
}
