package domain

import "context"

// CompletionOptions tunes a single generation call. Nil fields keep the
// client's configured defaults.
type CompletionOptions struct {
	SystemPrompt string
	Temperature  *float64
	TopP         *float64
}

// CompletionOption mutates CompletionOptions.
type CompletionOption func(*CompletionOptions)

// WithSystemPrompt sets the system message sent before the prompt.
func WithSystemPrompt(system string) CompletionOption {
	return func(o *CompletionOptions) {
		o.SystemPrompt = system
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) CompletionOption {
	return func(o *CompletionOptions) {
		o.Temperature = &t
	}
}

// WithTopP sets nucleus sampling.
func WithTopP(p float64) CompletionOption {
	return func(o *CompletionOptions) {
		o.TopP = &p
	}
}

// ApplyCompletionOptions folds opts into a CompletionOptions value.
func ApplyCompletionOptions(opts ...CompletionOption) CompletionOptions {
	var o CompletionOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// GenerationClient sends a prompt to a text-generation service and returns the raw
// text. Implementations must honour ctx cancellation and deadlines.
type GenerationClient interface {
	Complete(ctx context.Context, prompt string, opts ...CompletionOption) (string, error)
}
