package generation

import (
	"context"
	"fmt"
)

// Client sends a composed prompt to an external text-generation service.
// Implementations make exactly one attempt; transient failures surface to the
// caller as *Error instead of being retried internally.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Error is a generation failure: network, auth, rate limit or a malformed
// response from the provider.
type Error struct {
	Provider string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s generation: %v", e.Provider, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Mock is a stand-in client for local runs and tests. It never touches the
// network.
type Mock struct {
	Response string
	Err      error
}

func (m *Mock) Generate(_ context.Context, prompt string) (string, error) {
	if m.Err != nil {
		return "", &Error{Provider: "mock", Err: m.Err}
	}
	if m.Response != "" {
		return m.Response, nil
	}
	return fmt.Sprintf("[mock post for prompt of %d bytes]", len(prompt)), nil
}
