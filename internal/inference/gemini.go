// Copyright Venturely Inc., 2026. All rights reserved.

package inference

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/genai"

	"github.com/venturely/intel-engine/pkg/types"
)

// retryBaseDelay is the backoff unit between rate-limited attempts.
// Package var so tests can shrink it.
var retryBaseDelay = 2 * time.Second

// GeminiClient implements Client on the Gemini API.
type GeminiClient struct {
	client     *genai.Client
	model      string
	maxRetries int
}

// NewGeminiClient builds a Gemini-backed inference client from cfg. An empty
// API key is an error; use Disabled instead when inference is not configured.
func NewGeminiClient(ctx context.Context, cfg types.InferenceConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("inference API key is required")
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 2
	}

	return &GeminiClient{client: client, model: model, maxRetries: maxRetries}, nil
}

// Infer sends prompt to the model. Rate-limited calls are retried with
// backoff up to the configured attempt count. Provider errors are classified
// into ErrRateLimited (HTTP 429) and ErrUnavailable (everything else) so
// callers can branch with errors.Is.
func (c *GeminiClient) Infer(ctx context.Context, prompt string, shape ResponseShape) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.2),
	}
	if shape == ShapeJSON {
		config.ResponseMIMEType = "application/json"
	}

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
			case <-time.After(retryBaseDelay * time.Duration(attempt)):
			}
		}

		resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
		if err != nil {
			lastErr = classify(err)
			if errors.Is(lastErr, ErrRateLimited) {
				continue
			}
			return "", lastErr
		}

		text := resp.Text()
		if text == "" {
			return "", fmt.Errorf("%w: empty model response", ErrUnavailable)
		}
		return text, nil
	}
	return "", lastErr
}

// classify maps provider errors onto the package's failure taxonomy.
func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusTooManyRequests {
			return fmt.Errorf("%w: %s", ErrRateLimited, apiErr.Message)
		}
		return fmt.Errorf("%w: %s", ErrUnavailable, apiErr.Message)
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
