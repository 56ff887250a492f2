package expand

import (
	"fmt"
	"strings"
)

// UnknownKeyError reports a placeholder that resolves to neither the
// expansion context nor a configuration key.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key %%%s%%", e.Key)
}

// CycleError reports a configuration key that transitively re-enters
// itself during expansion. Path is the active key chain ending at the
// repeated key.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return "expansion cycle: " + strings.Join(e.Path, " -> ")
}

// DepthExceededError reports expansion deeper than the fixed ceiling,
// which guards against malformed configuration blowing the stack.
type DepthExceededError struct {
	Limit int
}

func (e *DepthExceededError) Error() string {
	return fmt.Sprintf("expansion deeper than %d levels", e.Limit)
}
