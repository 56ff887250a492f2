package main

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/weftworks/weft/pkg/expand"
)

// addContextFlags registers the flags that populate an expansion
// context. Shared by the prompt, run and validate commands.
func addContextFlags(flags *pflag.FlagSet) {
	flags.String("file", "", "current file path")
	flags.Int("line", 0, "cursor line number")
	flags.String("selection", "", "selected code")
	flags.String("selection-file", "", "read the selected code from a file")
	flags.String("args", "", "free-form command arguments")
	flags.String("workspace", "", "workspace summary text")
	flags.StringToString("context", nil, "extra context keys (NAME=value)")
}

// buildContext assembles the per-call expansion context. The standard
// keys are always present, possibly empty; extra keys ride along as
// opaque instruction fragments.
func buildContext(cmd *cobra.Command) (expand.Context, error) {
	flags := cmd.Flags()

	file, _ := flags.GetString("file")
	line, _ := flags.GetInt("line")
	selection, _ := flags.GetString("selection")
	args, _ := flags.GetString("args")
	workspace, _ := flags.GetString("workspace")

	if path, _ := flags.GetString("selection-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read selection from %s", path)
		}
		selection = string(data)
	}

	ctx := expand.Context{
		expand.KeyCurrentFile:   file,
		expand.KeyCursorLine:    strconv.Itoa(line),
		expand.KeyCodeSelection: selection,
		expand.KeyArgs:          args,
		expand.KeyWorkspaceInfo: workspace,
	}
	extras, _ := flags.GetStringToString("context")
	for name, value := range extras {
		ctx[name] = value
	}
	return ctx, nil
}
