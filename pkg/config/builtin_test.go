package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/pkg/expand"
	"github.com/weftworks/weft/pkg/types/custom"
)

func TestBuiltin_Loads(t *testing.T) {
	compiled, err := Builtin()
	require.NoError(t, err)

	merged, err := Load(compiled, nil)
	require.NoError(t, err)

	for _, id := range []string{"default", "exploration_tools", "agentic_tools"} {
		_, ok := merged.Prompt(id)
		assert.True(t, ok, "missing builtin prompt %s", id)
	}
	for _, tool := range []string{"locate", "deep_research", "patch"} {
		_, ok := merged.SubchatOverride(tool)
		assert.True(t, ok, "missing builtin subchat override %s", tool)
	}
	for _, id := range []string{"explain", "shorter", "bugs", "comment", "edit", "help"} {
		_, ok := merged.ToolboxCommand(id)
		assert.True(t, ok, "missing builtin command %s", id)
	}

	help, _ := merged.ToolboxCommand("help")
	assert.Empty(t, help.Messages, "help signals a presentation path")
	lens, ok := merged.CodeLensAction("open_chat")
	require.True(t, ok)
	assert.Empty(t, lens.Messages)
}

// Every builtin template must expand cleanly against the standard
// context keys: a shipped default with an unknown key or a cycle is a
// release blocker, not a user error.
func TestBuiltin_TemplatesExpand(t *testing.T) {
	compiled, err := Builtin()
	require.NoError(t, err)
	merged, err := Load(compiled, nil)
	require.NoError(t, err)

	ctx := expand.Context{
		expand.KeyCurrentFile:   "pkg/demo/demo.go",
		expand.KeyCursorLine:    "10",
		expand.KeyCodeSelection: "x := 1\ny := 2\n",
		expand.KeyArgs:          "do the thing",
		expand.KeyWorkspaceInfo: "demo workspace",
	}

	for id, entry := range merged.Prompts() {
		text, err := expand.Expand(entry.Text, ctx, merged)
		require.NoError(t, err, "builtin prompt %s", id)
		assert.NotContains(t, text, "%PROMPT", "prompt %s left a macro unexpanded", id)
	}

	check := func(table map[string]custom.CommandEntry) {
		for id, entry := range table {
			for i, msg := range entry.Messages {
				_, err := expand.Expand(msg.Content, ctx, merged)
				require.NoError(t, err, "builtin command %s message %d", id, i)
			}
		}
	}
	check(merged.ToolboxCommands())
	check(merged.CodeLensActions())
}
