// Package config loads customization documents and merges the
// compiled-in defaults with an optional user override into one
// immutable snapshot. Snapshots are swapped atomically on reload so
// concurrent readers never observe a half-merged configuration.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/weftworks/weft/pkg/types/custom"
)

// Reserved top-level sections of a customization document. Every other
// top-level key is a macro variable holding a template string.
const (
	sectionSystemPrompts = "system_prompts"
	sectionSubchatParams = "subchat_tool_parameters"
	sectionToolbox       = "toolbox_commands"
	sectionCodeLens      = "code_lens"
)

func reservedSection(key string) bool {
	switch key {
	case sectionSystemPrompts, sectionSubchatParams, sectionToolbox, sectionCodeLens:
		return true
	}
	return false
}

// valueKind classifies a raw YAML value for cross-document kind checks.
type valueKind int

const (
	kindScalar valueKind = iota
	kindMapping
	kindSequence
)

func (k valueKind) String() string {
	switch k {
	case kindMapping:
		return "mapping"
	case kindSequence:
		return "sequence"
	default:
		return "scalar"
	}
}

func kindOf(v any) valueKind {
	switch v.(type) {
	case map[string]any:
		return kindMapping
	case []any:
		return kindSequence
	default:
		return kindScalar
	}
}

// Document is a parsed but loosely typed customization document. Kind
// and shape errors surface at Load time, where both documents are in
// hand and a mismatch can be attributed to the right one.
type Document struct {
	raw map[string]any
}

// NewDocument returns an empty document, useful as a base for
// programmatic overlays when the user has no override file.
func NewDocument() *Document {
	return &Document{raw: map[string]any{}}
}

// ParseDocument parses YAML bytes into a Document. The top level must
// be a mapping.
func ParseDocument(data []byte) (*Document, error) {
	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &MalformedError{Err: errors.Wrap(err, "invalid yaml")}
	}
	return &Document{raw: raw}, nil
}

// ReadDocument reads and parses a customization file.
func ReadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read customization file %s", path)
	}
	return ParseDocument(data)
}

// SetPrompt injects or replaces a system prompt entry. Used for
// markdown prompt overlays, which have the highest precedence.
func (d *Document) SetPrompt(id string, entry custom.PromptEntry) {
	sec, _ := d.raw[sectionSystemPrompts].(map[string]any)
	if sec == nil {
		sec = map[string]any{}
		d.raw[sectionSystemPrompts] = sec
	}
	m := map[string]any{"text": entry.Text}
	if entry.Show != "" {
		m["show"] = string(entry.Show)
	}
	sec[id] = m
}
