package cli

import (
	"log/slog"
	nethttp "net/http"

	"github.com/spf13/cobra"

	"mof-mlip-agent/internal/http"
)

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Run:   runServe,
	}
	RootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, args []string) {
	a, err := buildApp()
	if err != nil {
		exitErr("startup", err)
	}
	defer a.Close()

	router := http.NewRouter(&http.Deps{
		Agent: a.service,
		DB:    a.db,
	})

	addr := ":" + a.cfg.APIPort
	slog.Info("starting API server", "addr", addr)
	slog.Debug("LLM configuration", "base_url", a.cfg.LLMBaseURL, "model", a.cfg.LLMModelName)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		exitErr("server", err)
	}
}
