package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/pkg/types/custom"
)

const compiledFixture = `
GREETING: "Hello"
PROMPT_BASE: "base prompt %GREETING%"
system_prompts:
  default:
    text: "%PROMPT_BASE%"
  internal:
    text: "internal prompt"
    show: never
subchat_tool_parameters:
  locate:
    model_type: light
    tokens_for_rag: 30000
toolbox_commands:
  explain:
    description: "Explain the selected code"
    selection:
      min_lines: 1
      max_lines: 50
    messages:
      - role: user
        content: "explain %CODE_SELECTION%"
code_lens:
  open_chat:
    description: "Open Chat"
    messages: []
`

func parse(t *testing.T, doc string) *Document {
	t.Helper()
	parsed, err := ParseDocument([]byte(doc))
	require.NoError(t, err)
	return parsed
}

func TestLoad_CompiledOnly(t *testing.T) {
	merged, err := Load(parse(t, compiledFixture), nil)
	require.NoError(t, err)

	greeting, ok := merged.Variable("GREETING")
	require.True(t, ok)
	assert.Equal(t, "Hello", greeting)

	def, ok := merged.Prompt("default")
	require.True(t, ok)
	assert.Equal(t, "%PROMPT_BASE%", def.Text)
	assert.Equal(t, custom.VisibilityAlways, def.Show, "missing show normalizes to always")

	internal, ok := merged.Prompt("internal")
	require.True(t, ok)
	assert.Equal(t, custom.VisibilityNever, internal.Show)

	explain, ok := merged.ToolboxCommand("explain")
	require.True(t, ok)
	require.NotNil(t, explain.Selection)
	assert.Equal(t, 1, explain.Selection.MinLines)
	assert.Equal(t, 50, explain.Selection.MaxLines)
	require.Len(t, explain.Messages, 1)
	assert.Equal(t, custom.RoleUser, explain.Messages[0].Role)

	lens, ok := merged.CodeLensAction("open_chat")
	require.True(t, ok)
	assert.Empty(t, lens.Messages)

	_, ok = merged.Variable("system_prompts")
	assert.False(t, ok, "reserved sections are not variables")
}

func TestLoad_ShadowMerge(t *testing.T) {
	user := `
GREETING: "Howdy"
NEW_KEY: "added by user"
system_prompts:
  internal:
    text: "user replacement"
toolbox_commands:
  summarize:
    description: "Summarize"
    messages:
      - role: user
        content: "summarize %CODE_SELECTION%"
`
	merged, err := Load(parse(t, compiledFixture), parse(t, user))
	require.NoError(t, err)

	t.Run("user value wins for shared keys", func(t *testing.T) {
		greeting, ok := merged.Variable("GREETING")
		require.True(t, ok)
		assert.Equal(t, "Howdy", greeting)
	})

	t.Run("compiled-only keys survive", func(t *testing.T) {
		base, ok := merged.Variable("PROMPT_BASE")
		require.True(t, ok)
		assert.Equal(t, "base prompt %GREETING%", base)
		_, ok = merged.Prompt("default")
		assert.True(t, ok)
		_, ok = merged.ToolboxCommand("explain")
		assert.True(t, ok)
	})

	t.Run("user-only keys are added", func(t *testing.T) {
		added, ok := merged.Variable("NEW_KEY")
		require.True(t, ok)
		assert.Equal(t, "added by user", added)
		_, ok = merged.ToolboxCommand("summarize")
		assert.True(t, ok)
	})

	t.Run("entry override is wholesale, not a field merge", func(t *testing.T) {
		internal, ok := merged.Prompt("internal")
		require.True(t, ok)
		assert.Equal(t, "user replacement", internal.Text)
		// The compiled entry said show: never; the user entry omitted
		// show, so the replacement falls back to always.
		assert.Equal(t, custom.VisibilityAlways, internal.Show)
	})
}

func TestLoad_TypeMismatch(t *testing.T) {
	tests := []struct {
		name string
		user string
		key  string
	}{
		{
			name: "macro overridden with mapping",
			user: "GREETING:\n  nested: true\n",
			key:  "GREETING",
		},
		{
			name: "section overridden with scalar",
			user: "system_prompts: oops\n",
			key:  "system_prompts",
		},
		{
			name: "prompt entry overridden with list",
			user: "system_prompts:\n  default:\n    - one\n    - two\n",
			key:  "system_prompts.default",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(parse(t, compiledFixture), parse(t, tc.user))
			var mismatch *TypeMismatchError
			require.ErrorAs(t, err, &mismatch)
			assert.Equal(t, tc.key, mismatch.Key)
		})
	}
}

func TestLoad_Malformed(t *testing.T) {
	t.Run("invalid yaml", func(t *testing.T) {
		_, err := ParseDocument([]byte("not: [valid"))
		var malformed *MalformedError
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("non-mapping document", func(t *testing.T) {
		_, err := ParseDocument([]byte("- just\n- a\n- list\n"))
		var malformed *MalformedError
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("unknown message role", func(t *testing.T) {
		user := `
toolbox_commands:
  broken:
    messages:
      - role: narrator
        content: "hi"
`
		_, err := Load(parse(t, compiledFixture), parse(t, user))
		var malformed *MalformedError
		require.ErrorAs(t, err, &malformed)
		assert.Contains(t, err.Error(), "broken")
	})

	t.Run("inverted selection bounds", func(t *testing.T) {
		user := `
toolbox_commands:
  broken:
    selection:
      min_lines: 10
      max_lines: 2
    messages: []
`
		_, err := Load(parse(t, compiledFixture), parse(t, user))
		var malformed *MalformedError
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("unknown entry field", func(t *testing.T) {
		user := `
system_prompts:
  typoed:
    text: "fine"
    sohw: never
`
		_, err := Load(parse(t, compiledFixture), parse(t, user))
		var malformed *MalformedError
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("every bad entry is reported", func(t *testing.T) {
		user := `
system_prompts:
  first_bad:
    show: never
  second_bad:
    show: sometimes
    text: "x"
`
		_, err := Load(parse(t, compiledFixture), parse(t, user))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "first_bad")
		assert.Contains(t, err.Error(), "second_bad")
	})
}

func TestLoad_Idempotent(t *testing.T) {
	user := "GREETING: \"Howdy\"\n"

	first, err := Load(parse(t, compiledFixture), parse(t, user))
	require.NoError(t, err)
	second, err := Load(parse(t, compiledFixture), parse(t, user))
	require.NoError(t, err)

	assert.Equal(t, first.Variables(), second.Variables())
	assert.Equal(t, first.Prompts(), second.Prompts())
	assert.Equal(t, first.SubchatOverrides(), second.SubchatOverrides())
	assert.Equal(t, first.ToolboxCommands(), second.ToolboxCommands())
	assert.Equal(t, first.CodeLensActions(), second.CodeLensActions())
	assert.NotEqual(t, first.Version(), second.Version(), "snapshots keep distinct identities")
}

func TestSetPrompt(t *testing.T) {
	user := NewDocument()
	user.SetPrompt("reviewer", custom.PromptEntry{Text: "review carefully", Show: custom.VisibilityNever})

	merged, err := Load(parse(t, compiledFixture), user)
	require.NoError(t, err)

	entry, ok := merged.Prompt("reviewer")
	require.True(t, ok)
	assert.Equal(t, "review carefully", entry.Text)
	assert.Equal(t, custom.VisibilityNever, entry.Show)
}
