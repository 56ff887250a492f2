// Package expand resolves %NAME% placeholders in template strings.
// Context values are terminal literals; configuration keys expand
// recursively with cycle detection and a fixed depth ceiling. All
// non-placeholder text, whitespace included, passes through verbatim.
package expand

import (
	"regexp"
	"slices"
	"strings"
)

// MaxDepth bounds the nesting of configuration key expansions.
const MaxDepth = 32

// Well-known context keys supplied by the editor integration layer.
// A context may carry arbitrary further keys (named instruction
// fragments assembled by the surrounding agent); the expander treats
// all of them uniformly.
const (
	KeyCurrentFile   = "CURRENT_FILE"
	KeyCursorLine    = "CURSOR_LINE"
	KeyCodeSelection = "CODE_SELECTION"
	KeyArgs          = "ARGS"
	KeyWorkspaceInfo = "WORKSPACE_INFO"
)

// Context maps magic-key names to literal values for one resolution
// call. Values are never re-expanded, so user-selected code containing
// %NAME% tokens stays verbatim.
type Context map[string]string

// Source looks up configuration keys as template strings. Implemented
// by config.Merged.
type Source interface {
	Variable(name string) (string, bool)
}

var placeholderRe = regexp.MustCompile(`%[A-Za-z_][A-Za-z0-9_]*%`)

// Expand substitutes every placeholder in template. It fails without
// partial output: either the whole string expands or an error comes
// back.
func Expand(template string, ctx Context, src Source) (string, error) {
	return expand(template, ctx, src, nil)
}

func expand(template string, ctx Context, src Source, chain []string) (string, error) {
	matches := placeholderRe.FindAllStringIndex(template, -1)
	if len(matches) == 0 {
		return template, nil
	}

	var out strings.Builder
	last := 0
	for _, match := range matches {
		out.WriteString(template[last:match[0]])
		last = match[1]

		name := template[match[0]+1 : match[1]-1]
		if value, ok := ctx[name]; ok {
			out.WriteString(value)
			continue
		}

		sub, ok := src.Variable(name)
		if !ok {
			return "", &UnknownKeyError{Key: name}
		}
		if slices.Contains(chain, name) {
			return "", &CycleError{Path: append(slices.Clone(chain), name)}
		}
		if len(chain) >= MaxDepth {
			return "", &DepthExceededError{Limit: MaxDepth}
		}
		expanded, err := expand(sub, ctx, src, append(chain, name))
		if err != nil {
			return "", err
		}
		out.WriteString(expanded)
	}
	out.WriteString(template[last:])
	return out.String(), nil
}
