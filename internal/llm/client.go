// Package llm is a small client for OpenAI-compatible chat completion
// endpoints.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"
	"github.com/tidwall/gjson"
)

// Defaults.
const (
	DefaultBaseURL   = "https://api.openai.com/v1"
	DefaultModel     = "gpt-3.5-turbo"
	DefaultTimeout   = 30 * time.Second
	DefaultMaxTokens = 512
	DefaultRetries   = 2
	defaultBackoff   = 500 * time.Millisecond
	completionsPath  = "/chat/completions"
	contentPath      = "choices.0.message.content"
)

// Sentinel errors.
var (
	ErrMissingAPIKey = errors.New("missing API key")
	ErrStatus        = errors.New("unexpected provider status")
	ErrRequest       = errors.New("provider request failed")
	ErrEmptyReply    = errors.New("provider returned empty content")
)

// Roles.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Options configures a Client.
type Options struct {
	BaseURL   string
	APIKey    string
	Model     string
	Timeout   time.Duration
	MaxTokens int
	Retries   int
	// Backoff is the first retry delay; it doubles on each attempt.
	Backoff time.Duration
}

func (o Options) withDefaults() Options {
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.Model == "" {
		o.Model = DefaultModel
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.MaxTokens <= 0 {
		o.MaxTokens = DefaultMaxTokens
	}
	if o.Retries < 0 {
		o.Retries = 0
	}
	if o.Backoff <= 0 {
		o.Backoff = defaultBackoff
	}
	return o
}

// Client calls a chat completions endpoint.
type Client struct {
	http *resty.Client
	opts Options
}

// New creates a Client. An API key is required.
func New(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}
	opts = opts.withDefaults()

	c := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetAuthToken(opts.APIKey)

	return &Client{http: c, opts: opts}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.opts.Model
}

type completionRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens"`
}

// Complete sends messages and returns the assistant content, trimmed.
// maxTokens <= 0 uses the client default. When the reply has no content
// field the raw body is returned so callers can still normalize it.
// Rate limits, server errors and network failures are retried.
func (c *Client) Complete(ctx context.Context, messages []Message, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		maxTokens = c.opts.MaxTokens
	}
	body := completionRequest{Model: c.opts.Model, Messages: messages, MaxTokens: maxTokens}

	backoff := retry.WithMaxRetries(uint64(c.opts.Retries), retry.NewExponential(c.opts.Backoff)) // #nosec G115 -- Retries clamped at zero

	var raw []byte
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		resp, err := c.http.R().SetContext(ctx).SetBody(body).Post(completionsPath)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return retry.RetryableError(fmt.Errorf("%w: %v", ErrRequest, err))
		}
		if resp.IsError() {
			statusErr := fmt.Errorf("%w: %d %s", ErrStatus, resp.StatusCode(), errorMessage(resp.Body()))
			if retryableStatus(resp.StatusCode()) {
				return retry.RetryableError(statusErr)
			}
			return statusErr
		}
		raw = resp.Body()
		return nil
	})
	if err != nil {
		return "", err
	}

	content := gjson.GetBytes(raw, contentPath)
	if !content.Exists() {
		if len(strings.TrimSpace(string(raw))) == 0 {
			return "", ErrEmptyReply
		}
		return string(raw), nil
	}
	text := strings.TrimSpace(content.String())
	if text == "" {
		return "", ErrEmptyReply
	}
	return text, nil
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code == http.StatusRequestTimeout || code >= 500
}

// errorMessage extracts the provider's error message, if any.
func errorMessage(body []byte) string {
	if msg := gjson.GetBytes(body, "error.message"); msg.Exists() {
		return msg.String()
	}
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}
