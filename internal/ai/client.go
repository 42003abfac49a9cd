package ai

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"text/template"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/Harshal279/chatbot/prompts"
)

// Defaults for the Groq OpenAI-compatible endpoint.
const (
	DefaultBaseURL   = "https://api.groq.com/openai/v1"
	DefaultModel     = "llama-3.3-70b-versatile"
	DefaultMaxTokens = 150
	DefaultTimeout   = 8 * time.Second
)

// Config configures a Client.
type Config struct {
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// Client is a Summarizer backed by a chat-completion API. One request is made
// per call; there are no retries.
type Client struct {
	cfg    Config
	prompt *template.Template
	logger *slog.Logger
}

// NewClient returns a Client, filling unset Config fields with the defaults.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	tmpl, err := template.New("phase_summary").Parse(prompts.PhaseSummaryTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse summary prompt: %w", err)
	}

	return &Client{cfg: cfg, prompt: tmpl, logger: logger}, nil
}

// Summarize asks the model for a 2-3 sentence summary of req. Missing
// credentials, transport and API failures, and empty replies all yield Absent.
func (c *Client) Summarize(ctx context.Context, req Request, credential string) Result {
	if strings.TrimSpace(credential) == "" || len(req.Items) == 0 {
		return Absent()
	}

	prompt, err := c.buildPrompt(req)
	if err != nil {
		c.logger.Debug("summary prompt failed", "phase", req.Phase, "error", err)
		return Absent()
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	resp, err := c.newAPIClient(credential).CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: c.cfg.MaxTokens,
	})
	if err != nil {
		c.logger.Debug("summary request failed", "phase", req.Phase, "error", err)
		return Absent()
	}
	if len(resp.Choices) == 0 {
		c.logger.Debug("summary response had no choices", "phase", req.Phase)
		return Absent()
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return Absent()
	}
	return Present(text)
}

func (c *Client) buildPrompt(req Request) (string, error) {
	data, err := req.JSON()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if err := c.prompt.Execute(&b, struct{ Data string }{Data: data}); err != nil {
		return "", fmt.Errorf("execute summary prompt: %w", err)
	}
	return strings.TrimSpace(b.String()), nil
}

func (c *Client) newAPIClient(credential string) *openai.Client {
	cfg := openai.DefaultConfig(credential)
	cfg.BaseURL = c.cfg.BaseURL
	if c.cfg.HTTPClient != nil {
		cfg.HTTPClient = c.cfg.HTTPClient
	}
	return openai.NewClientWithConfig(cfg)
}
