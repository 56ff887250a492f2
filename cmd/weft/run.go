package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/weftworks/weft/pkg/commands"
	"github.com/weftworks/weft/pkg/logger"
)

var runCmd = &cobra.Command{
	Use:   "run <command-id>",
	Short: "Run a toolbox command or code-lens action",
	Long: `Expands every message of the command against the supplied context and
prints the resulting message list as JSON. An empty list means the
command carries no messages and the editor should take a presentation
path instead of calling a model.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		ctx, err := buildContext(cmd)
		if err != nil {
			return err
		}

		messages, err := commands.Run(args[0], ctx, store.Current())
		if err != nil {
			return err
		}
		if len(messages) == 0 {
			logger.G(cmd.Context()).WithField("command", args[0]).
				Info("command has no messages, nothing to send to a model")
		}

		out, err := json.MarshalIndent(messages, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	addContextFlags(runCmd.Flags())
	rootCmd.AddCommand(runCmd)
}
