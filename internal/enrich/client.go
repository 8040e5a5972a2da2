// Package enrich queries a language model for a lemma's word forms,
// definitions, synonyms, and antonyms.
package enrich

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net"
	"os"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/lexistack/lexibuild/internal/types"
)

const (
	// DefaultModel is used when no model is configured.
	DefaultModel   = "claude-3-5-haiku-20241022"
	maxRetries     = 3
	initialBackoff = 1 * time.Second
	maxTokens      = 2048
)

// ErrAPIKeyRequired is returned when no API key is available.
var ErrAPIKeyRequired = errors.New("API key required")

// LookupError reports a lemma lookup that failed after exhausting all
// retries. Err carries the last API or validation diagnostic.
type LookupError struct {
	Lemma    string
	POS      types.PartOfSpeech
	Attempts int
	Err      error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("enriching %s/%s failed after %d attempts: %v", e.Lemma, e.POS, e.Attempts, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

// Client wraps the Anthropic API for dictionary lookups.
type Client struct {
	client         anthropic.Client
	model          anthropic.Model
	maxRetries     int
	initialBackoff time.Duration

	// callModel is swapped out in tests; production code always goes
	// through the Messages API.
	callModel func(ctx context.Context, prompt string) (string, error)
}

// NewClient creates a dictionary lookup client. Env var
// ANTHROPIC_API_KEY takes precedence over the explicit apiKey. An
// empty model selects DefaultModel.
func NewClient(apiKey, model string) (*Client, error) {
	envKey := os.Getenv("ANTHROPIC_API_KEY")
	if envKey != "" {
		apiKey = envKey
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: set ANTHROPIC_API_KEY or provide via config", ErrAPIKeyRequired)
	}
	if model == "" {
		model = DefaultModel
	}

	c := &Client{
		client:         anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:          anthropic.Model(model),
		maxRetries:     maxRetries,
		initialBackoff: initialBackoff,
	}
	c.callModel = c.callMessages
	return c, nil
}

// Lookup builds one DictionaryRecord for the given lemma. A response
// that fails schema validation counts as a transient fault and is
// retried with the same backoff as API errors; after the retry bound
// the last diagnostic is surfaced in a *LookupError.
func (c *Client) Lookup(ctx context.Context, entry types.LemmaEntry) (*types.DictionaryRecord, error) {
	prompt, err := renderPrompt(entry)
	if err != nil {
		return nil, fmt.Errorf("rendering prompt: %w", err)
	}

	var lastErr error
	attempts := 0
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := c.initialBackoff * time.Duration(math.Pow(2, float64(attempt-1)))
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		attempts++

		raw, err := c.callModel(ctx, prompt)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if !isRetryable(err) {
				return nil, &LookupError{Lemma: entry.Lemma, POS: entry.POS, Attempts: attempts, Err: err}
			}
			lastErr = err
			continue
		}

		record, err := parseResponse(entry, raw)
		if err != nil {
			// Malformed model output; retrying usually clears it.
			lastErr = err
			continue
		}
		return record, nil
	}

	return nil, &LookupError{Lemma: entry.Lemma, POS: entry.POS, Attempts: attempts, Err: lastErr}
}

func (c *Client) callMessages(ctx context.Context, prompt string) (string, error) {
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", err
	}

	if len(message.Content) == 0 {
		return "", fmt.Errorf("unexpected response format: no content blocks")
	}
	content := message.Content[0]
	if content.Type != "text" {
		return "", fmt.Errorf("unexpected response format: not a text block (type=%s)", content.Type)
	}
	return content.Text, nil
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		statusCode := apiErr.StatusCode
		if statusCode == 429 || statusCode >= 500 {
			return true
		}
		return false
	}

	return false
}
