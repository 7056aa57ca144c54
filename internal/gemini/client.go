// Package gemini implements a schema-constrained client for the Gemini
// generateContent REST API. A call walks an explicit chain of attempt tiers
// (primary model on v1, same model on v1beta, larger model with the schema
// inlined into the prompt) and stops at the first tier that yields valid
// JSON. The client holds no cross-call state beyond the shared http.Client.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"careerpulse/internal/schema"
)

// Completer is the surface the advisor builders depend on.
type Completer interface {
	Generate(ctx context.Context, prompt string, sd *schema.Descriptor) (map[string]any, error)
}

// Config holds everything the client needs. Construct it once at process
// start and inject it; the client reads no environment variables itself.
type Config struct {
	APIKey          string
	BaseURL         string
	Model           string
	FallbackModel   string
	Timeout         time.Duration
	MaxOutputTokens int
}

// DefaultConfig returns sensible defaults around the given key.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:          apiKey,
		BaseURL:         "https://generativelanguage.googleapis.com",
		Model:           "gemini-1.5-flash",
		FallbackModel:   "gemini-1.5-pro",
		Timeout:         90 * time.Second,
		MaxOutputTokens: 8192,
	}
}

// tier is one backend configuration in the escalation chain. When structured
// is false the schema rides inside the prompt text instead of the request's
// generationConfig.
type tier struct {
	name       string
	apiVersion string
	model      string
	structured bool
}

// Client issues schema-constrained generateContent calls.
type Client struct {
	cfg        Config
	tiers      []tier
	httpClient *http.Client
	log        *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithLogger attaches a logger. Default is a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithHTTPClient swaps the transport. Tests use this to stub the backend.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client from an injected config.
func New(cfg Config, opts ...Option) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com"
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-1.5-flash"
	}
	if cfg.FallbackModel == "" {
		cfg.FallbackModel = "gemini-1.5-pro"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 90 * time.Second
	}
	if cfg.MaxOutputTokens <= 0 {
		cfg.MaxOutputTokens = 8192
	}

	c := &Client{
		cfg: cfg,
		tiers: []tier{
			{name: "primary-v1", apiVersion: "v1", model: cfg.Model, structured: true},
			{name: "primary-v1beta", apiVersion: "v1beta", model: cfg.Model, structured: true},
			{name: "pro-inline", apiVersion: "v1beta", model: cfg.FallbackModel, structured: false},
		},
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Generate asks the backend for JSON conforming to sd. Tiers are tried in
// order; each is attempted only after the prior one failed. Auth failures
// abort the chain since no later tier can recover a bad credential.
func (c *Client) Generate(ctx context.Context, prompt string, sd *schema.Descriptor) (map[string]any, error) {
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return nil, fmt.Errorf("%w: no credential configured", ErrAuth)
	}

	// Apply the configured timeout when the caller imposed no deadline.
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	var lastErr error
	for _, t := range c.tiers {
		data, err := c.attempt(ctx, t, prompt, sd)
		if err == nil {
			c.log.Debug("generate succeeded",
				zap.String("tier", t.name),
				zap.String("model", t.model))
			return data, nil
		}
		c.log.Debug("tier failed",
			zap.String("tier", t.name),
			zap.String("model", t.model),
			zap.Error(err))
		lastErr = err
		if errors.Is(err, ErrAuth) {
			return nil, err
		}
	}
	return nil, lastErr
}

func (c *Client) attempt(ctx context.Context, t tier, prompt string, sd *schema.Descriptor) (map[string]any, error) {
	if !t.structured && sd != nil {
		inline, err := sd.MarshalText()
		if err != nil {
			return nil, fmt.Errorf("serialize schema: %w", err)
		}
		prompt = prompt + "\n\nIMPORTANT: Respond with VALID JSON matching this schema: " + string(inline)
	}

	genCfg := generationConfig{
		ResponseMIMEType: "application/json",
		MaxOutputTokens:  c.cfg.MaxOutputTokens,
	}
	if t.structured && sd != nil {
		genCfg.ResponseSchema = sd.Wire()
	}

	reqBody := generateRequest{
		Contents:         []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: genCfg,
		SafetySettings:   defaultSafetySettings(),
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s/models/%s:generateContent?key=%s",
		c.cfg.BaseURL, t.apiVersion, t.model, c.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("%w: status %d", ErrAuth, resp.StatusCode)
	default:
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var genResp generateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return nil, fmt.Errorf("parse response envelope: %w", err)
	}

	if genResp.Error != nil {
		if genResp.Error.Status == "PERMISSION_DENIED" || strings.Contains(genResp.Error.Message, "API_KEY_INVALID") {
			return nil, fmt.Errorf("%w: %s", ErrAuth, genResp.Error.Message)
		}
		return nil, fmt.Errorf("API error: %s", genResp.Error.Message)
	}

	text := genResp.text()
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyResponse
	}

	if err := classifyMarkers(text); err != nil {
		return nil, err
	}

	data, err := ExtractJSON(text)
	if err != nil {
		return nil, err
	}

	if sd != nil {
		if err := sd.Validate(data); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}
	return data, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
