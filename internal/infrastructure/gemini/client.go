// Package gemini wraps the Google GenAI SDK as the storefront's
// text-generation collaborator.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/cochlearspare/backend/internal/domain"
)

// Client generates assistant replies using Google's Gemini API
type Client struct {
	client            *genai.Client
	model             string
	systemInstruction string
	rateLimiter       *rate.Limiter
}

// NewClient creates a Gemini client. The API key is required; callers that
// have no key configured must not construct a client at all.
func NewClient(ctx context.Context, apiKey, model, systemInstruction string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	// One chat turn at a time per widget keeps traffic low; the limiter
	// guards the whole process across sessions
	limiter := rate.NewLimiter(rate.Limit(1), 5)

	return &Client{
		client:            client,
		model:             model,
		systemInstruction: systemInstruction,
		rateLimiter:       limiter,
	}, nil
}

// Generate sends one prompt with the fixed persona instruction and returns
// the reply text verbatim. Exactly one response is awaited; there is no
// streaming and no retry.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error: %w", err)
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(c.systemInstruction, genai.RoleUser),
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", fmt.Errorf("%w: empty response", domain.ErrGenerationFailed)
	}
	return text, nil
}
