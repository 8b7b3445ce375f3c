// Package pipeline sequences the agent's five reasoning stages:
//
//  1. intent       - parse the free-form query into a structured QueryIntent.
//  2. canonicalize - rewrite that into a precise canonical question.
//  3. retrieve     - pull external (arXiv) and local document context.
//  4. novelty      - decide if the proposal is novel enough to pursue.
//  5. spec         - generate a concrete ExperimentSpec.
//
// The control flow is linear with two conditional edges: fast mode skips the
// novelty stage (injecting a synthetic pass verdict), and a reject verdict
// ends the run early with a Rejected outcome.
package pipeline

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_collaborators.go -package=mocks mof-mlip-agent/internal/pipeline LiteratureFetcher,LocalSearcher

import (
	"context"
	"fmt"
	"unicode/utf8"

	"mof-mlip-agent/internal/arxiv"
	"mof-mlip-agent/internal/contextutil"
	"mof-mlip-agent/internal/llm"
	"mof-mlip-agent/internal/localrag"
	"mof-mlip-agent/internal/schema"
)

// Caps on how much retrieved context is injected into prompts. These are
// intentionally conservative and operate on character counts rather than
// exact tokens.
const (
	maxLiteratureChars = 15000
	maxLocalCtxChars   = 8000

	// Tighter limits when fast mode is enabled: smaller prompts mean
	// faster API round-trips.
	maxLiteratureCharsFast = 5000
	maxLocalCtxCharsFast   = 3000

	// arXiv queries are kept short to avoid huge URLs and rate limits.
	maxArxivQueryChars = 200
)

// LiteratureFetcher retrieves external literature for a query. Failures are
// tolerated: the pipeline degrades to "no literature".
type LiteratureFetcher interface {
	Fetch(ctx context.Context, query string, maxDocs int) ([]arxiv.Document, error)
}

// LocalSearcher retrieves context from the local document corpus. It never
// fails; an empty result is a valid (if unhelpful) answer.
type LocalSearcher interface {
	Search(ctx context.Context, query string) (string, []localrag.Reference)
}

// Options tune a pipeline instance.
type Options struct {
	// ArxivMaxDocs bounds how many literature documents one run may load.
	ArxivMaxDocs int
	// FastMode skips the novelty stage and shrinks context limits.
	FastMode bool
}

// Pipeline runs the five-stage reasoning flow over injected collaborators.
type Pipeline struct {
	completer  llm.Completer
	literature LiteratureFetcher
	local      LocalSearcher
	opts       Options
}

// New creates a Pipeline.
func New(completer llm.Completer, literature LiteratureFetcher, local LocalSearcher, opts Options) *Pipeline {
	return &Pipeline{
		completer:  completer,
		literature: literature,
		local:      local,
		opts:       opts,
	}
}

// state carries the values the stages incrementally fill in.
type state struct {
	queryOriginal  string
	memoryContext  string
	expID          string
	intent         schema.QueryIntent
	canonical      schema.CanonicalQuery
	literatureText string
	localCtx       string
	localRefs      []localrag.Reference
	novelty        schema.NoveltyVerdict
}

// Run executes the pipeline for one query. memoryContext is the formatted
// PAST_RUN block retrieved from the memory store; expID is the identifier
// the generated spec must carry.
func (p *Pipeline) Run(ctx context.Context, queryOriginal, memoryContext, expID string) (Outcome, error) {
	logger := contextutil.LoggerFromContext(ctx)
	st := &state{
		queryOriginal: queryOriginal,
		memoryContext: memoryContext,
		expID:         expID,
	}

	if err := p.stageIntent(ctx, st); err != nil {
		return nil, fmt.Errorf("intent stage: %w", err)
	}
	logger.InfoContext(ctx, "intent parsed",
		"mof_name", st.intent.MOFName,
		"task_hint", st.intent.TaskHint,
		"feasibility", st.intent.Feasibility,
	)

	if err := p.stageCanonicalize(ctx, st); err != nil {
		return nil, fmt.Errorf("canonicalize stage: %w", err)
	}
	logger.InfoContext(ctx, "query canonicalized", "canonical", st.canonical.QueryCanonical)

	p.stageRetrieve(ctx, st)

	if p.opts.FastMode {
		// Skip the novelty call entirely; inject a pass verdict so the
		// spec stage has something to read.
		st.novelty = schema.NoveltyVerdict{
			Status:    schema.VerdictPass,
			Rationale: "(fast mode: novelty check skipped)",
		}
	} else {
		if err := p.stageNovelty(ctx, st); err != nil {
			return nil, fmt.Errorf("novelty stage: %w", err)
		}
		logger.InfoContext(ctx, "novelty verdict", "status", st.novelty.Status)
		if st.novelty.Status == schema.VerdictReject {
			return Rejected{
				ExpID:     st.expID,
				Intent:    st.intent,
				Canonical: st.canonical,
				Verdict:   st.novelty,
				LocalRefs: st.localRefs,
			}, nil
		}
	}

	spec, err := p.stageSpec(ctx, st)
	if err != nil {
		return nil, fmt.Errorf("spec stage: %w", err)
	}
	return Completed{
		ExpID:     st.expID,
		Intent:    st.intent,
		Canonical: st.canonical,
		Verdict:   st.novelty,
		Spec:      spec,
		LocalRefs: st.localRefs,
	}, nil
}

func (p *Pipeline) stageIntent(ctx context.Context, st *state) error {
	user := fmt.Sprintf(intentUserTemplate, st.queryOriginal, st.memoryContext)
	return p.completer.CompleteJSON(ctx, intentSystem, user, &st.intent)
}

func (p *Pipeline) stageCanonicalize(ctx context.Context, st *state) error {
	user := fmt.Sprintf(canonicalizeUserTemplate,
		st.queryOriginal, schema.ToJSON(st.intent), st.memoryContext)
	return p.completer.CompleteJSON(ctx, canonicalizeSystem, user, &st.canonical)
}

// stageRetrieve gathers literature and local context. A literature fetch
// failure is not fatal: the run continues with empty literature so the
// pipeline still works from local context and memory alone.
func (p *Pipeline) stageRetrieve(ctx context.Context, st *state) {
	logger := contextutil.LoggerFromContext(ctx)
	canonical := st.canonical.QueryCanonical

	maxLit, maxLocal := maxLiteratureChars, maxLocalCtxChars
	if p.opts.FastMode {
		maxLit, maxLocal = maxLiteratureCharsFast, maxLocalCtxCharsFast
	}

	arxivQuery := canonical
	if len(arxivQuery) > maxArxivQueryChars {
		arxivQuery = truncate(arxivQuery, maxArxivQueryChars) + "..."
	}
	docs, err := p.literature.Fetch(ctx, arxivQuery, p.opts.ArxivMaxDocs)
	if err != nil {
		logger.WarnContext(ctx, "literature fetch failed, continuing without it", "error", err)
	} else {
		st.literatureText = truncate(arxiv.CompactText(docs), maxLit)
	}

	localCtx, refs := p.local.Search(ctx, canonical)
	st.localCtx = truncate(localCtx, maxLocal)
	st.localRefs = refs

	logger.InfoContext(ctx, "context retrieved",
		"literature_chars", len(st.literatureText),
		"local_chars", len(st.localCtx),
		"local_refs", len(st.localRefs),
	)
}

func (p *Pipeline) stageNovelty(ctx context.Context, st *state) error {
	lit := st.literatureText
	if lit == "" {
		lit = "(no results)"
	}
	localCtx := st.localCtx
	if localCtx == "" {
		localCtx = "(none)"
	}
	user := fmt.Sprintf(noveltyUserTemplate,
		st.canonical.QueryCanonical, st.memoryContext, lit, localCtx)
	return p.completer.CompleteJSON(ctx, noveltySystem, user, &st.novelty)
}

func (p *Pipeline) stageSpec(ctx context.Context, st *state) (schema.ExperimentSpec, error) {
	user := fmt.Sprintf(specUserTemplate,
		st.queryOriginal, st.canonical.QueryCanonical, st.memoryContext,
		schema.ToJSON(st.novelty), st.expID)

	var spec schema.ExperimentSpec
	if err := p.completer.CompleteJSON(ctx, specSystem, user, &spec); err != nil {
		return schema.ExperimentSpec{}, err
	}

	// The model is told to echo the exp_id verbatim, but it is not trusted
	// to: the id ties the spec to the memory record and output file.
	spec.ExpID = st.expID
	return spec, nil
}

// truncate cuts s to at most max bytes without splitting a UTF-8 sequence,
// backing up to the nearest rune boundary.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
