package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/weftworks/weft/pkg/logger"
	"github.com/weftworks/weft/pkg/prompts"
	"github.com/weftworks/weft/pkg/types/custom"
)

var promptCmd = &cobra.Command{
	Use:   "prompt <id>",
	Short: "Render a system prompt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		ctx, err := buildContext(cmd)
		if err != nil {
			return err
		}

		text, show, err := prompts.Resolve(args[0], ctx, store.Current())
		if err != nil {
			return err
		}
		if show == custom.VisibilityNever {
			logger.G(cmd.Context()).WithField("prompt", args[0]).
				Warn("prompt is marked show: never, intended for internal chaining")
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "List system prompts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		cfg := store.Current()
		out := cmd.OutOrStdout()
		for _, id := range prompts.IDs(cfg) {
			entry, _ := cfg.Prompt(id)
			fmt.Fprintf(out, "%s  %s\n", color.CyanString("%-20s", id), entry.Show)
		}
		return nil
	},
}

func init() {
	addContextFlags(promptCmd.Flags())
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(promptsCmd)
}
