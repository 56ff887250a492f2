// Package custom defines the shared types of the customization engine:
// the entry shapes that appear in a customization document and the
// resolved forms handed to the surrounding agent engine.
package custom

import (
	"fmt"

	"github.com/pkg/errors"
)

// Role identifies who a command message speaks as.
type Role string

const (
	RoleUser Role = "user"
	// RoleCdInstruction carries steering text injected by the engine
	// between user turns.
	RoleCdInstruction Role = "cd_instruction"
	RoleAssistant     Role = "assistant"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleCdInstruction, RoleAssistant:
		return true
	}
	return false
}

// Visibility is policy metadata attached to a system prompt. It is
// returned alongside the rendered text and never enforced by the engine;
// whether a "never" prompt is hidden from a picker is the caller's call.
type Visibility string

const (
	VisibilityAlways    Visibility = "always"
	VisibilityNever     Visibility = "never"
	VisibilityOnRequest Visibility = "on_request"
)

// Valid reports whether v is a known visibility value. The empty string
// is accepted and normalized to VisibilityAlways at load time.
func (v Visibility) Valid() bool {
	switch v {
	case VisibilityAlways, VisibilityNever, VisibilityOnRequest, "":
		return true
	}
	return false
}

// ReasoningEffort selects how much deliberation a thinking-capable model
// should spend inside a subchat.
type ReasoningEffort string

const (
	ReasoningEffortLow    ReasoningEffort = "low"
	ReasoningEffortMedium ReasoningEffort = "medium"
	ReasoningEffortHigh   ReasoningEffort = "high"
)

// Valid reports whether e is a known effort level or empty.
func (e ReasoningEffort) Valid() bool {
	switch e {
	case ReasoningEffortLow, ReasoningEffortMedium, ReasoningEffortHigh, "":
		return true
	}
	return false
}

// PromptEntry is one named system prompt. Text is a template that may
// reference other configuration keys via %KEY% placeholders.
type PromptEntry struct {
	Text string     `yaml:"text" json:"text" mapstructure:"text"`
	Show Visibility `yaml:"show,omitempty" json:"show,omitempty" mapstructure:"show"`
}

// Validate checks the entry shape without expanding the template.
func (p PromptEntry) Validate() error {
	if p.Text == "" {
		return errors.New("prompt entry has no text")
	}
	if !p.Show.Valid() {
		return errors.Errorf("unknown visibility %q", p.Show)
	}
	return nil
}

// SubchatParams are the model-routing parameters used when a tool spins
// up a nested subchat.
type SubchatParams struct {
	ModelType       string          `yaml:"model_type,omitempty" json:"model_type,omitempty" mapstructure:"model_type"`
	TokensForRAG    int             `yaml:"tokens_for_rag,omitempty" json:"tokens_for_rag,omitempty" mapstructure:"tokens_for_rag"`
	ContextWindow   int             `yaml:"context_window,omitempty" json:"context_window,omitempty" mapstructure:"context_window"`
	MaxNewTokens    int             `yaml:"max_new_tokens,omitempty" json:"max_new_tokens,omitempty" mapstructure:"max_new_tokens"`
	ReasoningEffort ReasoningEffort `yaml:"reasoning_effort,omitempty" json:"reasoning_effort,omitempty" mapstructure:"reasoning_effort"`
}

// Validate checks field ranges and enum values.
func (s SubchatParams) Validate() error {
	if s.TokensForRAG < 0 || s.ContextWindow < 0 || s.MaxNewTokens < 0 {
		return errors.New("subchat token budgets must be non-negative")
	}
	if !s.ReasoningEffort.Valid() {
		return errors.Errorf("unknown reasoning effort %q", s.ReasoningEffort)
	}
	return nil
}

// SelectionConstraint bounds the line count of the code selection a
// command is willing to operate on.
type SelectionConstraint struct {
	MinLines int `yaml:"min_lines" json:"min_lines" mapstructure:"min_lines"`
	MaxLines int `yaml:"max_lines" json:"max_lines" mapstructure:"max_lines"`
}

func (s SelectionConstraint) String() string {
	return fmt.Sprintf("[%d, %d]", s.MinLines, s.MaxLines)
}

// MessageTemplate is one unexpanded message of a command.
type MessageTemplate struct {
	Role    Role   `yaml:"role" json:"role" mapstructure:"role"`
	Content string `yaml:"content" json:"content" mapstructure:"content"`
}

// CommandEntry is a toolbox command or code-lens action. An entry with
// no messages is legal: it tells the caller to take a presentation path
// (open an empty chat, show a help listing) instead of calling a model.
type CommandEntry struct {
	Description string               `yaml:"description,omitempty" json:"description,omitempty" mapstructure:"description"`
	Selection   *SelectionConstraint `yaml:"selection,omitempty" json:"selection,omitempty" mapstructure:"selection"`
	Messages    []MessageTemplate    `yaml:"messages,omitempty" json:"messages,omitempty" mapstructure:"messages"`
}

// Validate checks roles and selection bounds without expanding content.
func (c CommandEntry) Validate() error {
	if c.Selection != nil {
		if c.Selection.MinLines < 0 {
			return errors.Errorf("selection min_lines %d is negative", c.Selection.MinLines)
		}
		if c.Selection.MaxLines < c.Selection.MinLines {
			return errors.Errorf("selection bounds %s are inverted", c.Selection)
		}
	}
	for i, m := range c.Messages {
		if !m.Role.Valid() {
			return errors.Errorf("message %d has unknown role %q", i, m.Role)
		}
	}
	return nil
}

// ResolvedMessage is a fully expanded message ready for the model
// backend. Content contains no placeholders.
type ResolvedMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
