// Package prompts resolves named system prompts into fully expanded
// text plus their visibility metadata.
package prompts

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"

	"github.com/weftworks/weft/pkg/config"
	"github.com/weftworks/weft/pkg/expand"
	"github.com/weftworks/weft/pkg/types/custom"
)

// NotFoundError reports a prompt id absent from the merged
// configuration.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("system prompt %q not found", e.ID)
}

// Resolve expands the prompt with the given id. The returned visibility
// is informational: whether a "never" prompt is shown raw is the
// caller's policy, not enforced here.
func Resolve(id string, ctx expand.Context, cfg *config.Merged) (string, custom.Visibility, error) {
	entry, ok := cfg.Prompt(id)
	if !ok {
		return "", "", &NotFoundError{ID: id}
	}
	text, err := expand.Expand(entry.Text, ctx, cfg)
	if err != nil {
		return "", "", errors.Wrapf(err, "system prompt %q", id)
	}
	return text, entry.Show, nil
}

// IDs returns every prompt id in the snapshot, sorted.
func IDs(cfg *config.Merged) []string {
	all := cfg.Prompts()
	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
