package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	out, err := Schema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(out, &schema))

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	for _, section := range []string{"system_prompts", "subchat_tool_parameters", "toolbox_commands", "code_lens"} {
		assert.Contains(t, props, section)
	}

	// Non-section top-level keys are macro template strings.
	additional, ok := schema["additionalProperties"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "string", additional["type"])
}
