package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"quiz-forge/internal/config"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// ErrEmptyCompletion is returned when the model answers with no choices.
var ErrEmptyCompletion = errors.New("llm returned no choices")

// LangchainClient implements domain.GenerationClient on top of any langchaingo model.
type LangchainClient struct {
	model       llms.Model
	modelName   string
	temperature float64
	timeout     time.Duration
}

// NewLangchainClient wraps an already constructed model.
func NewLangchainClient(model llms.Model, modelName string, defaultTemperature float64, timeout time.Duration) *LangchainClient {
	return &LangchainClient{
		model:       model,
		modelName:   modelName,
		temperature: defaultTemperature,
		timeout:     timeout,
	}
}

// NewFromConfig builds the provider selected in cfg.
func NewFromConfig(cfg config.LLMConfig) (*LangchainClient, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("llm model name cannot be empty")
	}

	var (
		model llms.Model
		err   error
	)
	switch cfg.Provider {
	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("openai API key cannot be empty")
		}
		opts := []openai.Option{openai.WithToken(cfg.APIKey), openai.WithModel(cfg.Model)}
		if cfg.ServerURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.ServerURL))
		}
		model, err = openai.New(opts...)
	case "ollama":
		if cfg.ServerURL == "" {
			return nil, fmt.Errorf("ollama server URL cannot be empty")
		}
		httpClient := &http.Client{Timeout: cfg.Timeout}
		model, err = ollama.New(
			ollama.WithServerURL(cfg.ServerURL),
			ollama.WithModel(cfg.Model),
			ollama.WithHTTPClient(httpClient),
		)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.Provider, err)
	}

	return NewLangchainClient(model, cfg.Model, cfg.GenerationTemperature, cfg.Timeout), nil
}

// Complete sends prompt, preceded by an optional system message, and returns the
// first choice's text.
func (c *LangchainClient) Complete(ctx context.Context, prompt string, opts ...domain.CompletionOption) (string, error) {
	l := logger.Get()
	o := domain.ApplyCompletionOptions(opts...)

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	messages := make([]llms.MessageContent, 0, 2)
	if o.SystemPrompt != "" {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, o.SystemPrompt))
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, prompt))

	temperature := c.temperature
	if o.Temperature != nil {
		temperature = *o.Temperature
	}
	callOpts := []llms.CallOption{llms.WithTemperature(temperature)}
	if o.TopP != nil {
		callOpts = append(callOpts, llms.WithTopP(*o.TopP))
	}

	start := time.Now()
	resp, err := c.model.GenerateContent(ctx, messages, callOpts...)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			l.Error("LLM request timed out", zap.String("model", c.modelName), zap.Error(err))
			return "", fmt.Errorf("LLM request timed out: %w", err)
		}
		l.Error("Failed to get response from LLM", zap.String("model", c.modelName), zap.Error(err))
		return "", fmt.Errorf("LLM call failed: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	content := resp.Choices[0].Content
	l.Debug("LLM response received",
		zap.String("model", c.modelName),
		zap.Int("response_length", len(content)),
		zap.Duration("duration", time.Since(start)))
	return content, nil
}

var _ domain.GenerationClient = (*LangchainClient)(nil)
