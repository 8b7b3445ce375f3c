// Package cli implements the mofagent CLI commands.
package cli

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"mof-mlip-agent/internal/agent"
	"mof-mlip-agent/internal/arxiv"
	"mof-mlip-agent/internal/config"
	"mof-mlip-agent/internal/llm"
	"mof-mlip-agent/internal/localrag"
	"mof-mlip-agent/internal/memory"
	"mof-mlip-agent/internal/outputs"
	"mof-mlip-agent/internal/pipeline"
	"mof-mlip-agent/internal/storage"
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "mofagent",
	Short: "Research agent for MOF experiments with machine-learned potentials",
	Long: "mofagent turns a free-form research question about metal-organic frameworks\n" +
		"into a machine-executable experiment spec: it parses intent, canonicalizes the\n" +
		"question, checks novelty against arXiv and local documents, and records every\n" +
		"run in a persistent memory.",
}

// app bundles the wired collaborators a command needs.
type app struct {
	cfg     *config.Config
	db      *sql.DB
	service *agent.Service
}

// buildApp loads configuration, configures logging, and wires the full
// service stack.
func buildApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	setupLogging(cfg)

	db, err := storage.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := storage.Migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	mem, err := memory.NewStore(cfg.MemoryFile, cfg.MemoryMaxItems)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open memory store: %w", err)
	}
	writer, err := outputs.NewWriter(cfg.OutputDir)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to prepare output directory: %w", err)
	}

	completer := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModelName, cfg.Temperature)
	literature := arxiv.NewClient(arxiv.DefaultBaseURL)
	local := localrag.NewRetriever(cfg.LocalDocDir, localrag.DefaultExtractors())
	pl := pipeline.New(completer, literature, local, pipeline.Options{
		ArxivMaxDocs: cfg.ArxivMaxDocs,
		FastMode:     cfg.FastMode,
	})

	service := agent.NewService(mem, pl, writer, storage.NewSpecRepo(db), cfg.MemoryRetrieveK)
	return &app{cfg: cfg, db: db, service: service}, nil
}

// Close releases the app's resources.
func (a *app) Close() {
	_ = a.db.Close()
}

func setupLogging(cfg *config.Config) {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
