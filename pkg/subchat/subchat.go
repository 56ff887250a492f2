// Package subchat resolves the model-routing parameters a tool uses
// when it spins up a nested subchat.
package subchat

import (
	"github.com/weftworks/weft/pkg/config"
	"github.com/weftworks/weft/pkg/types/custom"
)

// DefaultParams is the record used for tools without an explicit
// override: a conservative token budget on a non-thinking model with
// low reasoning effort. Absence of an override is the common case, not
// an error.
var DefaultParams = custom.SubchatParams{
	ModelType:       "light",
	TokensForRAG:    8000,
	ContextWindow:   32000,
	MaxNewTokens:    4096,
	ReasoningEffort: custom.ReasoningEffortLow,
}

// Resolve returns the subchat parameters for toolName. Fields left
// zero in an override fall back to the corresponding default, so a
// tool can raise just its token budget without restating the rest.
func Resolve(toolName string, cfg *config.Merged) custom.SubchatParams {
	override, ok := cfg.SubchatOverride(toolName)
	if !ok {
		return DefaultParams
	}
	params := DefaultParams
	if override.ModelType != "" {
		params.ModelType = override.ModelType
	}
	if override.TokensForRAG != 0 {
		params.TokensForRAG = override.TokensForRAG
	}
	if override.ContextWindow != 0 {
		params.ContextWindow = override.ContextWindow
	}
	if override.MaxNewTokens != 0 {
		params.MaxNewTokens = override.MaxNewTokens
	}
	if override.ReasoningEffort != "" {
		params.ReasoningEffort = override.ReasoningEffort
	}
	return params
}
