// Copyright Venturely Inc., 2026. All rights reserved.

// Package inference wraps the language-model capability behind a single
// interface. The engine treats the model as opaque: callers pass a prompt
// and a response shape and get text back, or a classified error that the
// narrative synthesizer maps to its heuristic fallback.
package inference

import (
	"context"
	"errors"
)

// ResponseShape tells the backend what output format the prompt expects.
type ResponseShape string

const (
	ShapeText ResponseShape = "text"
	ShapeJSON ResponseShape = "json"
)

// Classified failure modes. Callers must treat both as ordinary failures
// that trigger the documented fallback path, never as fatal errors.
var (
	// ErrUnavailable means the capability is down, unreachable, or
	// unconfigured (no API key).
	ErrUnavailable = errors.New("inference capability unavailable")

	// ErrRateLimited means the provider rejected the call for quota reasons.
	ErrRateLimited = errors.New("inference rate limited")
)

// Client is the opaque language-model inference capability.
type Client interface {
	// Infer sends prompt to the model and returns the raw response text.
	// shape ShapeJSON asks the model to emit a bare JSON document.
	Infer(ctx context.Context, prompt string, shape ResponseShape) (string, error)
}

// Disabled is a Client that always reports the capability unavailable.
// Used when no API key is configured so the synthesizer exercises its
// heuristic path deterministically.
type Disabled struct{}

// Infer always returns ErrUnavailable.
func (Disabled) Infer(context.Context, string, ResponseShape) (string, error) {
	return "", ErrUnavailable
}
