// Package advisor holds the per-feature request builders. Each builder
// phrases a prompt, attaches the response schema, calls the Gemini client,
// and on any failure silently substitutes synthesized data with the same
// shape. Nothing above this layer ever observes an error for AI-backed
// reads.
package advisor

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"careerpulse/internal/gemini"
	"careerpulse/internal/synth"
)

// Service is the consumer-facing entry point for every AI-backed feature.
type Service struct {
	client gemini.Completer
	synth  *synth.Synthesizer
	log    *zap.Logger
}

// Option customizes a Service.
type Option func(*Service)

// WithLogger attaches a logger. Default is a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Service) { s.log = log }
}

// WithSynthesizer swaps the fallback synthesizer. Tests inject a seeded one.
func WithSynthesizer(sy *synth.Synthesizer) Option {
	return func(s *Service) { s.synth = sy }
}

// New creates a Service around the given client.
func New(client gemini.Completer, opts ...Option) *Service {
	s := &Service{
		client: client,
		synth:  synth.New(),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// decode moves a parsed generic JSON object into a typed entity.
func decode(data map[string]any, v any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("re-encode response: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
