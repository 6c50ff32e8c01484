// Package llm talks to hosted language models for content suggestions.
package llm

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrDisabled      = errors.New("llm: provider disabled")
	ErrEmptyResponse = errors.New("llm: empty response")
	ErrRateLimited   = errors.New("llm: rate limit exceeded")
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Generate performs a single completion request
	Generate(ctx context.Context, req *Request) (*Response, error)
}

// Request represents an LLM request
type Request struct {
	Model       string
	System      string
	Messages    []Message
	MaxTokens   int
	Temperature float64

	// JSONSchema asks for a JSON object reply. Providers without schema
	// support fall back to plain JSON mode.
	JSONSchema map[string]any
}

// Message represents a chat message
type Message struct {
	Role    Role
	Content string
}

// Role represents the role of a message sender
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response represents an LLM response
type Response struct {
	Content      string
	FinishReason string
	Usage        Usage
}

// Usage tracks token usage
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// StatusError is returned when the upstream API answers with a non-2xx status.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s API error (status %d): %s", e.Provider, e.StatusCode, e.Body)
}

// UserPrompt builds a request holding one user message.
func UserPrompt(prompt string) *Request {
	return &Request{Messages: []Message{{Role: RoleUser, Content: prompt}}}
}

type disabledProvider struct{}

// NewDisabledProvider returns a provider whose calls always fail with ErrDisabled.
func NewDisabledProvider() Provider {
	return disabledProvider{}
}

func (disabledProvider) Name() string { return "none" }

func (disabledProvider) Generate(context.Context, *Request) (*Response, error) {
	return nil, ErrDisabled
}
