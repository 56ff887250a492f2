package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"

	"github.com/weftworks/weft/pkg/types/custom"
)

// FileSchema mirrors the on-disk shape of a customization document for
// schema generation. Top-level keys outside the reserved sections are
// macro variables, covered by additionalProperties below.
type FileSchema struct {
	SystemPrompts         map[string]custom.PromptEntry   `json:"system_prompts,omitempty"`
	SubchatToolParameters map[string]custom.SubchatParams `json:"subchat_tool_parameters,omitempty"`
	ToolboxCommands       map[string]custom.CommandEntry  `json:"toolbox_commands,omitempty"`
	CodeLens              map[string]custom.CommandEntry  `json:"code_lens,omitempty"`
}

// JSONSchemaExtend marks every non-section top-level key as a macro
// template string.
func (FileSchema) JSONSchemaExtend(s *jsonschema.Schema) {
	s.AdditionalProperties = &jsonschema.Schema{
		Type:        "string",
		Description: "macro variable holding a %KEY% template",
	}
}

// Schema returns the JSON Schema for user customization documents,
// suitable for editor-side validation.
func Schema() ([]byte, error) {
	reflector := &jsonschema.Reflector{ExpandedStruct: true}
	schema := reflector.Reflect(&FileSchema{})
	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal customization schema")
	}
	return out, nil
}
