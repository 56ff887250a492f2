package config

import (
	"fmt"
	"maps"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/weftworks/weft/pkg/types/custom"
)

// Merged is one immutable configuration snapshot. All lookups used by
// the expander and resolvers go through read-only accessors; a reload
// produces a fresh snapshot rather than mutating this one.
type Merged struct {
	version   string
	variables map[string]string
	prompts   map[string]custom.PromptEntry
	subchat   map[string]custom.SubchatParams
	toolbox   map[string]custom.CommandEntry
	codeLens  map[string]custom.CommandEntry
}

// Load shadow-merges the user document over the compiled-in one and
// decodes the result into a typed snapshot. A nil user document loads
// the compiled-in defaults alone.
//
// Merge rules: a top-level macro key present in user replaces the
// compiled value wholesale. The reserved sections are override
// containers: their entries merge per id, each user entry replacing the
// compiled entry of the same id entirely.
func Load(compiled, user *Document) (*Merged, error) {
	if compiled == nil {
		return nil, errors.New("compiled-in document is required")
	}
	var userRaw map[string]any
	if user != nil {
		userRaw = user.raw
	}
	mergedRaw, err := shadowMerge(compiled.raw, userRaw)
	if err != nil {
		return nil, err
	}
	return build(mergedRaw)
}

func shadowMerge(compiled, user map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(compiled))
	maps.Copy(out, compiled)

	for key, userVal := range user {
		compiledVal, exists := out[key]
		if !exists {
			out[key] = userVal
			continue
		}
		ck, uk := kindOf(compiledVal), kindOf(userVal)
		if ck != uk {
			return nil, &TypeMismatchError{Key: key, CompiledKind: ck.String(), UserKind: uk.String()}
		}
		if reservedSection(key) && uk == kindMapping {
			merged, err := mergeSection(key, compiledVal.(map[string]any), userVal.(map[string]any))
			if err != nil {
				return nil, err
			}
			out[key] = merged
			continue
		}
		out[key] = userVal
	}
	return out, nil
}

func mergeSection(section string, compiled, user map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(compiled))
	maps.Copy(out, compiled)

	for id, userVal := range user {
		if compiledVal, exists := out[id]; exists {
			ck, uk := kindOf(compiledVal), kindOf(userVal)
			if ck != uk {
				return nil, &TypeMismatchError{
					Key:          section + "." + id,
					CompiledKind: ck.String(),
					UserKind:     uk.String(),
				}
			}
		}
		out[id] = userVal
	}
	return out, nil
}

func build(raw map[string]any) (*Merged, error) {
	m := &Merged{
		version:   uuid.NewString(),
		variables: map[string]string{},
		prompts:   map[string]custom.PromptEntry{},
		subchat:   map[string]custom.SubchatParams{},
		toolbox:   map[string]custom.CommandEntry{},
		codeLens:  map[string]custom.CommandEntry{},
	}

	var errs *multierror.Error
	for key, val := range raw {
		switch key {
		case sectionSystemPrompts:
			decodeSection(key, val, m.prompts, custom.PromptEntry.Validate, &errs)
		case sectionSubchatParams:
			decodeSection(key, val, m.subchat, custom.SubchatParams.Validate, &errs)
		case sectionToolbox:
			decodeSection(key, val, m.toolbox, custom.CommandEntry.Validate, &errs)
		case sectionCodeLens:
			decodeSection(key, val, m.codeLens, custom.CommandEntry.Validate, &errs)
		default:
			if kindOf(val) != kindScalar {
				errs = multierror.Append(errs, errors.Errorf("key %q: expected a template string, got a %s", key, kindOf(val)))
				continue
			}
			m.variables[key] = fmt.Sprint(val)
		}
	}

	for id, entry := range m.prompts {
		if entry.Show == "" {
			entry.Show = custom.VisibilityAlways
			m.prompts[id] = entry
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, &MalformedError{Err: err}
	}
	return m, nil
}

// decodeSection decodes every entry of a reserved section into its
// typed form, collecting one error per bad entry instead of stopping at
// the first.
func decodeSection[T any](section string, val any, out map[string]T, validate func(T) error, errs **multierror.Error) {
	entries, ok := val.(map[string]any)
	if !ok {
		*errs = multierror.Append(*errs, errors.Errorf("section %q: expected a mapping of entries, got a %s", section, kindOf(val)))
		return
	}

	for id, entryVal := range entries {
		var entry T
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &entry,
			WeaklyTypedInput: true,
			ErrorUnused:      true,
		})
		if err != nil {
			*errs = multierror.Append(*errs, errors.Wrapf(err, "section %q entry %q", section, id))
			continue
		}
		if err := decoder.Decode(entryVal); err != nil {
			*errs = multierror.Append(*errs, errors.Wrapf(err, "section %q entry %q", section, id))
			continue
		}
		if err := validate(entry); err != nil {
			*errs = multierror.Append(*errs, errors.Wrapf(err, "section %q entry %q", section, id))
			continue
		}
		out[id] = entry
	}
}

// Version identifies this snapshot, mainly for reload logging.
func (m *Merged) Version() string { return m.version }

// Variable looks up a top-level macro key.
func (m *Merged) Variable(name string) (string, bool) {
	v, ok := m.variables[name]
	return v, ok
}

// Prompt looks up a system prompt entry by id.
func (m *Merged) Prompt(id string) (custom.PromptEntry, bool) {
	p, ok := m.prompts[id]
	return p, ok
}

// SubchatOverride looks up a per-tool subchat parameter override.
// Absence is normal; callers fall back to the default record.
func (m *Merged) SubchatOverride(tool string) (custom.SubchatParams, bool) {
	p, ok := m.subchat[tool]
	return p, ok
}

// ToolboxCommand looks up a toolbox command entry by id.
func (m *Merged) ToolboxCommand(id string) (custom.CommandEntry, bool) {
	c, ok := m.toolbox[id]
	return c, ok
}

// CodeLensAction looks up a code-lens action entry by id.
func (m *Merged) CodeLensAction(id string) (custom.CommandEntry, bool) {
	c, ok := m.codeLens[id]
	return c, ok
}

// Variables returns a copy of the macro table.
func (m *Merged) Variables() map[string]string { return maps.Clone(m.variables) }

// Prompts returns a copy of the system prompt table.
func (m *Merged) Prompts() map[string]custom.PromptEntry { return maps.Clone(m.prompts) }

// SubchatOverrides returns a copy of the per-tool override table.
func (m *Merged) SubchatOverrides() map[string]custom.SubchatParams { return maps.Clone(m.subchat) }

// ToolboxCommands returns a copy of the toolbox command table.
func (m *Merged) ToolboxCommands() map[string]custom.CommandEntry { return maps.Clone(m.toolbox) }

// CodeLensActions returns a copy of the code-lens action table.
func (m *Merged) CodeLensActions() map[string]custom.CommandEntry { return maps.Clone(m.codeLens) }
