package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/weftworks/weft/pkg/subchat"
)

var toolsCmd = &cobra.Command{
	Use:   "tools [name]",
	Short: "Show resolved subchat parameters",
	Long: `With a tool name, prints the parameters the agent will use when that
tool spins up a subchat. Tools without an explicit override resolve to
the default record. Without arguments, lists the tools that carry
overrides.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		cfg := store.Current()
		out := cmd.OutOrStdout()

		if len(args) == 1 {
			params := subchat.Resolve(args[0], cfg)
			encoded, err := json.MarshalIndent(params, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(encoded))
			return nil
		}

		overrides := cfg.SubchatOverrides()
		names := make([]string, 0, len(overrides))
		for name := range overrides {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			params := overrides[name]
			fmt.Fprintf(out, "%s  %s\n", color.CyanString("%-16s", name), params.ModelType)
		}
		fmt.Fprintf(out, "\nother tools use the default record (%s, %d ctx)\n",
			subchat.DefaultParams.ModelType, subchat.DefaultParams.ContextWindow)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}
