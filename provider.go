package deckgen

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/alnah/go-deckgen/internal/llm"
)

// Task says what a prompt asks for.
type Task string

// Tasks.
const (
	TaskContent Task = "content"
	TaskRefine  Task = "refine"
	TaskOutline Task = "outline"
)

// Prompt is one request to a text generation backend.
type Prompt struct {
	Task   Task
	Kind   DocumentKind
	System string
	User   string
	// Subject is the section title or topic the prompt is about. Offline
	// providers title their output with it.
	Subject string
	// Source and Instruction carry the inputs of a refine task.
	Source      string
	Instruction string
	MaxTokens   int
}

// Provider returns raw text for a prompt. Output may be JSON, HTML,
// markdown or prose; callers normalize it.
type Provider interface {
	Name() string
	Generate(ctx context.Context, p Prompt) (string, error)
}

// Provider names recorded in provenance.
const (
	ProviderMock   = "mock"
	ProviderOpenAI = "openai"
)

var (
	_ Provider = (*MockProvider)(nil)
	_ Provider = (*OpenAIProvider)(nil)
)

// ---------------------------------------------------------------------------
// Mock
// ---------------------------------------------------------------------------

// mockOutlineSize is the number of titles the mock suggests.
const mockOutlineSize = 5

// MockProvider returns deterministic sample content. It never fails and is
// the fallback whenever a real provider does.
type MockProvider struct{}

// NewMockProvider creates a MockProvider.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (*MockProvider) Name() string { return ProviderMock }

func (*MockProvider) Generate(_ context.Context, p Prompt) (string, error) {
	switch p.Task {
	case TaskRefine:
		return p.Source + "\n\nRefined with prompt: " + p.Instruction + "\n\n(Note: returned by mock fallback)", nil
	case TaskOutline:
		return mockOutline(p.Subject, p.Kind), nil
	default:
		return mockContent(p.Subject, p.Kind), nil
	}
}

func mockContent(subject string, kind DocumentKind) string {
	var sb strings.Builder
	if kind == DocumentSlide {
		title := html.EscapeString(first(strings.TrimSpace(subject), "Slide"))
		sb.WriteString("<h2>" + title + "</h2><ul>")
		for i := 1; i <= 3; i++ {
			fmt.Fprintf(&sb, "<li>%s point %d</li>", title, i)
		}
		sb.WriteString("</ul>")
		return sb.String()
	}

	title := html.EscapeString(first(strings.TrimSpace(subject), "Section"))
	sb.WriteString("<h2>" + title + "</h2>")
	for i := 1; i <= 3; i++ {
		fmt.Fprintf(&sb, "<p>This is a sample paragraph %d for %s.</p>", i, title)
	}
	return sb.String()
}

func mockOutline(topic string, kind DocumentKind) string {
	unit := "Section"
	if kind == DocumentSlide {
		unit = "Slide"
	}
	titles := make([]string, mockOutlineSize)
	for i := range titles {
		titles[i] = fmt.Sprintf("%s - %s %d", topic, unit, i+1)
	}
	out, _ := json.Marshal(titles)
	return string(out)
}

// ---------------------------------------------------------------------------
// OpenAI
// ---------------------------------------------------------------------------

// OpenAIConfig configures an OpenAIProvider. Zero values select defaults:
// the public endpoint, gpt-3.5-turbo, 512 tokens, a 30s timeout and two
// retries. A negative Retries disables retrying.
type OpenAIConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	Timeout   time.Duration
	MaxTokens int
	Retries   int
}

// OpenAIProvider calls an OpenAI-compatible chat completions endpoint.
type OpenAIProvider struct {
	client *llm.Client
}

// NewOpenAIProvider creates a provider. An API key is required.
func NewOpenAIProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	retries := cfg.Retries
	if retries == 0 {
		retries = llm.DefaultRetries
	}
	client, err := llm.New(llm.Options{
		BaseURL:   cfg.BaseURL,
		APIKey:    cfg.APIKey,
		Model:     cfg.Model,
		Timeout:   cfg.Timeout,
		MaxTokens: cfg.MaxTokens,
		Retries:   retries,
	})
	if err != nil {
		return nil, fmt.Errorf("creating OpenAI provider: %w", err)
	}
	return &OpenAIProvider{client: client}, nil
}

func (*OpenAIProvider) Name() string { return ProviderOpenAI }

// Model returns the configured model name.
func (p *OpenAIProvider) Model() string { return p.client.Model() }

func (p *OpenAIProvider) Generate(ctx context.Context, pr Prompt) (string, error) {
	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: pr.System},
		{Role: llm.RoleUser, Content: pr.User},
	}
	return p.client.Complete(ctx, messages, pr.MaxTokens)
}
