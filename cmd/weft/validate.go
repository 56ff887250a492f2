package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/weftworks/weft/pkg/commands"
	"github.com/weftworks/weft/pkg/expand"
	"github.com/weftworks/weft/pkg/prompts"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that every prompt and command expands cleanly",
	Long: `Loads the merged customization and expands every system prompt and
every command message against a synthetic context, reporting unknown
keys and cycles before they break an editor session.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		cfg := store.Current()
		ctx := syntheticContext()

		var errs *multierror.Error
		for _, id := range prompts.IDs(cfg) {
			if _, _, err := prompts.Resolve(id, ctx, cfg); err != nil {
				errs = multierror.Append(errs, err)
			}
		}
		for _, id := range commands.IDs(cfg) {
			_, err := commands.Run(id, ctx, cfg)
			var outOfRange *commands.SelectionOutOfRangeError
			if errors.As(err, &outOfRange) {
				// The synthetic selection cannot satisfy every
				// bound; range rejections are not template errors.
				continue
			}
			if err != nil {
				errs = multierror.Append(errs, err)
			}
		}
		if err := errs.ErrorOrNil(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("customization is valid"))
		return nil
	},
}

func syntheticContext() expand.Context {
	return expand.Context{
		expand.KeyCurrentFile:   "src/main.go",
		expand.KeyCursorLine:    "42",
		expand.KeyCodeSelection: "a := 1\nb := 2\nreturn a + b\n",
		expand.KeyArgs:          "sample arguments",
		expand.KeyWorkspaceInfo: "sample workspace summary",
	}
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
