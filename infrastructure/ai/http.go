// Package ai provides the HTTP client for the AI inference backend,
// wrapped with retry and circuit breaker patterns.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/felixgeelhaar/fortify/circuitbreaker"
	"github.com/felixgeelhaar/fortify/retry"

	"github.com/Nether404/theWebKnot-sub006/domain/ai"
	"github.com/Nether404/theWebKnot-sub006/domain/request"
)

// Config configures the HTTP provider.
type Config struct {
	// BaseURL is the inference endpoint base.
	BaseURL string

	// APIKey is the bearer credential. An empty key fails every call
	// with INVALID_API_KEY before any network work.
	APIKey string

	// Model is the default model.
	Model string

	// Temperature is the default sampling temperature.
	Temperature float64

	// MaxOutputTokens is the default output bound.
	MaxOutputTokens int

	// Timeouts bounds each call per operation; chat is shorter than
	// prompt enhancement. Missing operations use DefaultTimeout.
	Timeouts map[request.Operation]time.Duration

	// DefaultTimeout applies when no per-operation timeout is set.
	DefaultTimeout time.Duration

	// MaxRetries is the number of retry attempts for transient failures.
	MaxRetries int

	// RetryDelay is the initial delay between retries.
	RetryDelay time.Duration

	// BreakerThreshold is consecutive failures before the circuit opens.
	BreakerThreshold int

	// BreakerTimeout is how long the circuit stays open.
	BreakerTimeout time.Duration
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Model:           "webknot-default",
		Temperature:     0.7,
		MaxOutputTokens: 2048,
		Timeouts: map[request.Operation]time.Duration{
			request.OpChat:        10 * time.Second,
			request.OpAnalysis:    20 * time.Second,
			request.OpSuggestions: 20 * time.Second,
			request.OpEnhancement: 30 * time.Second,
		},
		DefaultTimeout:   20 * time.Second,
		MaxRetries:       2,
		RetryDelay:       200 * time.Millisecond,
		BreakerThreshold: 5,
		BreakerTimeout:   30 * time.Second,
	}
}

// HTTPProvider is the production ai.Provider.
type HTTPProvider struct {
	cfg     Config
	client  *http.Client
	retrier retry.Retry[ai.GenerateResponse]
	breaker circuitbreaker.CircuitBreaker[ai.GenerateResponse]
}

// NewHTTPProvider creates a provider with the given configuration.
func NewHTTPProvider(cfg Config) *HTTPProvider {
	def := DefaultConfig()
	if cfg.Model == "" {
		cfg.Model = def.Model
	}
	if cfg.MaxOutputTokens <= 0 {
		cfg.MaxOutputTokens = def.MaxOutputTokens
	}
	if cfg.DefaultTimeout <= 0 {
		cfg.DefaultTimeout = def.DefaultTimeout
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = def.MaxRetries
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = def.RetryDelay
	}
	if cfg.BreakerThreshold <= 0 {
		cfg.BreakerThreshold = def.BreakerThreshold
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = def.BreakerTimeout
	}

	threshold := uint32(cfg.BreakerThreshold) // #nosec G115 -- bounds checked above

	return &HTTPProvider{
		cfg:    cfg,
		client: &http.Client{},
		retrier: retry.New[ai.GenerateResponse](retry.Config{
			MaxAttempts:   cfg.MaxRetries + 1,
			InitialDelay:  cfg.RetryDelay,
			BackoffPolicy: retry.BackoffExponential,
			Multiplier:    2.0,
			// A rejected credential never heals by retrying.
			NonRetryableErrors: []error{
				request.NewError(request.ErrInvalidAPIKey, "credential rejected"),
			},
		}),
		breaker: circuitbreaker.New[ai.GenerateResponse](circuitbreaker.Config{
			MaxRequests: threshold,
			Interval:    cfg.BreakerTimeout,
			Timeout:     cfg.BreakerTimeout,
			ReadyToTrip: func(counts circuitbreaker.Counts) bool {
				return counts.ConsecutiveFailures >= threshold
			},
		}),
	}
}

// Name returns the provider identifier.
func (p *HTTPProvider) Name() string {
	return "webknot-http"
}

// Available reports whether the provider is configured.
func (p *HTTPProvider) Available(_ context.Context) bool {
	return p.cfg.APIKey != "" && p.cfg.BaseURL != ""
}

// Generate performs one inference call. Returned errors are always
// *request.Error so the orchestrator can route on the kind.
func (p *HTTPProvider) Generate(ctx context.Context, req ai.GenerateRequest) (ai.GenerateResponse, error) {
	if p.cfg.APIKey == "" {
		return ai.GenerateResponse{}, request.NewError(request.ErrInvalidAPIKey, "no API key configured")
	}
	if p.cfg.BaseURL == "" {
		return ai.GenerateResponse{}, request.NewError(request.ErrNetwork, "no backend URL configured")
	}

	p.applyDefaults(&req)

	return p.breaker.Execute(ctx, func(ctx context.Context) (ai.GenerateResponse, error) {
		return p.retrier.Do(ctx, func(ctx context.Context) (ai.GenerateResponse, error) {
			return p.call(ctx, req)
		})
	})
}

func (p *HTTPProvider) applyDefaults(req *ai.GenerateRequest) {
	if req.Model == "" {
		req.Model = p.cfg.Model
	}
	if req.Temperature == 0 {
		req.Temperature = p.cfg.Temperature
	}
	if req.MaxOutputTokens == 0 {
		req.MaxOutputTokens = p.cfg.MaxOutputTokens
	}
}

// timeoutFor returns the per-operation deadline.
func (p *HTTPProvider) timeoutFor(op request.Operation) time.Duration {
	if d, ok := p.cfg.Timeouts[op]; ok && d > 0 {
		return d
	}
	return p.cfg.DefaultTimeout
}

// call performs a single bounded attempt. The context timeout cancels
// the in-flight request on expiry, not merely the wait for it.
func (p *HTTPProvider) call(ctx context.Context, req ai.GenerateRequest) (ai.GenerateResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeoutFor(req.Operation))
	defer cancel()

	body, err := json.Marshal(req)
	if err != nil {
		return ai.GenerateResponse{}, request.NewError(request.ErrInvalidResponse, "encode request: %v", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+"/v1/generate", bytes.NewReader(body))
	if err != nil {
		return ai.GenerateResponse{}, request.NewError(request.ErrNetwork, "build request: %v", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)

	start := time.Now()
	resp, err := p.client.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return ai.GenerateResponse{}, request.NewError(request.ErrTimeout,
				"backend call exceeded %s", p.timeoutFor(req.Operation))
		}
		return ai.GenerateResponse{}, request.NewError(request.ErrNetwork, "backend unreachable: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return ai.GenerateResponse{}, request.NewError(request.ErrNetwork, "read response: %v", err)
	}

	if err := statusError(resp.StatusCode, raw); err != nil {
		return ai.GenerateResponse{}, err
	}

	var out ai.GenerateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return ai.GenerateResponse{}, request.NewError(request.ErrInvalidResponse, "malformed success body: %v", err)
	}
	if len(out.Content) == 0 {
		return ai.GenerateResponse{}, request.NewError(request.ErrInvalidResponse, "success body missing content")
	}
	out.Latency = time.Since(start)
	return out, nil
}

// statusError maps a non-2xx status onto the error taxonomy.
func statusError(status int, body []byte) *request.Error {
	if status >= 200 && status < 300 {
		return nil
	}
	msg := apiMessage(body)
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return request.NewError(request.ErrInvalidAPIKey, "credential rejected (%d): %s", status, msg)
	default:
		return request.NewError(request.ErrAPI, "backend status %d: %s", status, msg)
	}
}

// apiMessage extracts the backend's error message when it sent one.
func apiMessage(body []byte) string {
	var e struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &e); err == nil {
		if e.Error != "" {
			return e.Error
		}
		if e.Message != "" {
			return e.Message
		}
	}
	return fmt.Sprintf("%.128s", string(body))
}

var _ ai.Provider = (*HTTPProvider)(nil)
