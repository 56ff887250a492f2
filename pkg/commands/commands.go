// Package commands routes toolbox commands and code-lens actions into
// fully expanded message lists.
package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/weftworks/weft/pkg/config"
	"github.com/weftworks/weft/pkg/expand"
	"github.com/weftworks/weft/pkg/types/custom"
)

// NotFoundError reports a command id that is neither a toolbox command
// nor a code-lens action.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("command %q not found", e.ID)
}

// SelectionOutOfRangeError reports a code selection whose line count
// falls outside the command's declared bounds.
type SelectionOutOfRangeError struct {
	Min    int
	Max    int
	Actual int
}

func (e *SelectionOutOfRangeError) Error() string {
	return fmt.Sprintf("selection is %d lines, command accepts %d to %d", e.Actual, e.Min, e.Max)
}

// Run expands the messages of the given command. Toolbox commands are
// looked up first, then code-lens actions. The selection constraint is
// checked before any expansion, and expansion is all-or-nothing: a
// failed template never yields a partial message list.
//
// An empty returned slice is success: the command carries no messages
// and the caller should take a presentation path instead of calling a
// model.
func Run(id string, ctx expand.Context, cfg *config.Merged) ([]custom.ResolvedMessage, error) {
	entry, ok := cfg.ToolboxCommand(id)
	if !ok {
		entry, ok = cfg.CodeLensAction(id)
	}
	if !ok {
		return nil, &NotFoundError{ID: id}
	}

	if c := entry.Selection; c != nil {
		lines := lineCount(ctx[expand.KeyCodeSelection])
		if lines < c.MinLines || lines > c.MaxLines {
			return nil, &SelectionOutOfRangeError{Min: c.MinLines, Max: c.MaxLines, Actual: lines}
		}
	}

	resolved := make([]custom.ResolvedMessage, 0, len(entry.Messages))
	for i, msg := range entry.Messages {
		content, err := expand.Expand(msg.Content, ctx, cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "command %q message %d", id, i)
		}
		resolved = append(resolved, custom.ResolvedMessage{Role: msg.Role, Content: content})
	}
	return resolved, nil
}

// IDs returns every toolbox command and code-lens action id, sorted.
// Toolbox ids shadow code-lens ids the same way lookup does.
func IDs(cfg *config.Merged) []string {
	seen := map[string]bool{}
	for id := range cfg.ToolboxCommands() {
		seen[id] = true
	}
	for id := range cfg.CodeLensActions() {
		seen[id] = true
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// lineCount counts selection lines the way an editor does: a trailing
// newline does not start a new line, and an empty selection is zero
// lines.
func lineCount(s string) int {
	if s == "" {
		return 0
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Count(s, "\n") + 1
}
