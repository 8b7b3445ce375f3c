package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	memoryCmd := &cobra.Command{
		Use:   "memory",
		Short: "Inspect the run memory",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all remembered runs, oldest first",
		Run:   runMemoryList,
	}

	searchCmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search remembered runs by keyword",
		Args:  cobra.MinimumNArgs(1),
		Run:   runMemorySearch,
	}

	memoryCmd.AddCommand(listCmd, searchCmd)
	RootCmd.AddCommand(memoryCmd)
}

func runMemoryList(cmd *cobra.Command, args []string) {
	a, err := buildApp()
	if err != nil {
		exitErr("startup", err)
	}
	defer a.Close()

	records, err := a.service.ListMemory(cmd.Context())
	if err != nil {
		exitErr("list memory", err)
	}
	if len(records) == 0 {
		fmt.Println("[]")
		return
	}

	b, _ := json.MarshalIndent(records, "", "  ")
	fmt.Println(string(b))
}

func runMemorySearch(cmd *cobra.Command, args []string) {
	query := strings.Join(args, " ")

	a, err := buildApp()
	if err != nil {
		exitErr("startup", err)
	}
	defer a.Close()

	records, err := a.service.SearchMemory(cmd.Context(), query)
	if err != nil {
		exitErr("search memory", err)
	}
	if len(records) == 0 {
		fmt.Println("[]")
		return
	}

	b, _ := json.MarshalIndent(records, "", "  ")
	fmt.Println(string(b))
}
