package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/weftworks/weft/pkg/types/custom"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List toolbox commands and code-lens actions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		cfg := store.Current()
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, color.New(color.Bold).Sprint("Toolbox commands"))
		printCommandTable(out, cfg.ToolboxCommands())
		fmt.Fprintln(out)
		fmt.Fprintln(out, color.New(color.Bold).Sprint("Code lens"))
		printCommandTable(out, cfg.CodeLensActions())
		return nil
	},
}

func printCommandTable(out io.Writer, entries map[string]custom.CommandEntry) {
	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		entry := entries[id]
		line := fmt.Sprintf("  %s  %s", color.CyanString("%-12s", id), entry.Description)
		if entry.Selection != nil {
			line += color.YellowString("  (selection %s)", entry.Selection)
		}
		if len(entry.Messages) == 0 {
			line += color.HiBlackString("  [no messages]")
		}
		fmt.Fprintln(out, line)
	}
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}
