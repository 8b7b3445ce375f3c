package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"mof-mlip-agent/internal/contextutil"
)

func init() {
	cmd := &cobra.Command{
		Use:   "run [query]",
		Short: "Run the agent for one research question",
		Long: "Run the full pipeline for a research question and print the run result.\n" +
			"A completed run writes the generated spec under the output directory;\n" +
			"a rejected run prints the novelty verdict instead.",
		Args: cobra.MinimumNArgs(1),
		Run:  runRun,
	}
	RootCmd.AddCommand(cmd)
}

func runRun(cmd *cobra.Command, args []string) {
	query := strings.Join(args, " ")

	a, err := buildApp()
	if err != nil {
		exitErr("startup", err)
	}
	defer a.Close()

	ctx := contextutil.WithLogger(cmd.Context(), slog.Default().With("command", "run"))
	result, err := a.service.Run(ctx, query)
	if err != nil {
		exitErr("run", err)
	}

	b, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(b))
}
