// Package remote submits visualization payloads to the remote launch service
// over HTTP.
//
// The service accepts a JSON body {language, code} and answers either with
// {visualization} on success or with an error body on any non-2xx status.
// The client never retries.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/jonwraymond/vizexec/payload"
)

// DefaultEndpoint is the launch endpoint of a locally running backend.
const DefaultEndpoint = "http://localhost:8080/launch-container"

// DefaultTimeout bounds a single launch, including container start-up on the
// backend side.
const DefaultTimeout = 60 * time.Second

// RequestIDHeader carries the per-launch request ID.
const RequestIDHeader = "X-Request-ID"

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 32 << 20

// Errors for remote operations.
var (
	// ErrConfiguration is returned for an invalid client configuration.
	ErrConfiguration = errors.New("remote: configuration error")

	// ErrConnectionFailed is returned when the service cannot be reached.
	ErrConnectionFailed = errors.New("connection to remote service failed")

	// ErrRequestFailed is matched by *StatusError for non-2xx responses.
	ErrRequestFailed = errors.New("remote request failed")

	// ErrMissingVisualization is returned when a successful response carries
	// no visualization.
	ErrMissingVisualization = errors.New("no visualization returned")

	// ErrInvalidResponse is returned when a successful response body cannot be
	// decoded. Such errors also match ErrMissingVisualization.
	ErrInvalidResponse = errors.New("invalid response from remote service")
)

// Logger is the interface for logging.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: logging must be best-effort and must not panic.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Client launches a visualization job.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: Launch must honor cancellation and deadlines.
// - Errors: non-2xx responses are reported as *StatusError; a success without
//   a visualization is reported as ErrMissingVisualization.
type Client interface {
	Launch(ctx context.Context, req payload.Final) (string, error)
}

// EndpointProvider optionally exposes the configured endpoint for diagnostics.
type EndpointProvider interface {
	Endpoint() string
}

// Config configures an HTTP client.
type Config struct {
	// Endpoint is the launch URL.
	// Default: DefaultEndpoint
	Endpoint string

	// HTTPClient performs requests.
	// Default: a new http.Client.
	HTTPClient *http.Client

	// Timeout bounds each launch. Negative disables the client-side bound.
	// Default: DefaultTimeout
	Timeout time.Duration

	// Logger is an optional logger for client events.
	Logger Logger
}

// Validate checks the endpoint, if set, is an absolute http(s) URL.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return nil
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("%w: endpoint: %v", ErrConfiguration, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: endpoint scheme must be http or https, got %q", ErrConfiguration, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: endpoint host is required", ErrConfiguration)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{}
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
}

// HTTPClient launches visualization jobs over HTTP.
type HTTPClient struct {
	endpoint string
	http     *http.Client
	timeout  time.Duration
	logger   Logger
}

// New creates a new HTTP client with the given configuration.
func New(cfg Config) (*HTTPClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return &HTTPClient{
		endpoint: cfg.Endpoint,
		http:     cfg.HTTPClient,
		timeout:  cfg.Timeout,
		logger:   cfg.Logger,
	}, nil
}

// Endpoint returns the configured launch URL.
func (c *HTTPClient) Endpoint() string {
	return c.endpoint
}

// Launch posts req and returns the visualization artifact.
func (c *HTTPClient) Launch(ctx context.Context, req payload.Final) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := json.Marshal(LaunchRequest(req))
	if err != nil {
		return "", fmt.Errorf("encode launch request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	httpReq.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logError("launch failed", "request_id", requestID, "endpoint", c.endpoint, "error", err)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("%w: %w", ErrConnectionFailed, ctxErr)
		}
		return "", fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", ErrConnectionFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{
			StatusCode: resp.StatusCode,
			Message:    NormalizeErrorBody(raw),
		}
		c.logWarn("launch rejected", "request_id", requestID, "status", resp.StatusCode, "message", statusErr.Message)
		return "", statusErr
	}

	var out LaunchResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		c.logWarn("launch returned undecodable body", "request_id", requestID, "status", resp.StatusCode, "error", err)
		return "", fmt.Errorf("%w: %w: %v", ErrMissingVisualization, ErrInvalidResponse, err)
	}
	if out.Visualization == nil || *out.Visualization == "" {
		c.logWarn("launch returned no visualization", "request_id", requestID, "status", resp.StatusCode)
		return "", ErrMissingVisualization
	}

	c.logInfo("launch succeeded",
		"request_id", requestID,
		"language", req.Language,
		"bytes", len(*out.Visualization),
		"duration", time.Since(start))
	return *out.Visualization, nil
}

var _ Client = (*HTTPClient)(nil)

// LaunchRequest is the wire request to the launch service.
type LaunchRequest struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

// LaunchResponse is the wire response from the launch service.
type LaunchResponse struct {
	Visualization *string `json:"visualization,omitempty"`
	Error         string  `json:"error,omitempty"`
}

func (c *HTTPClient) logInfo(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Info(msg, args...)
	}
}

func (c *HTTPClient) logWarn(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Warn(msg, args...)
	}
}

func (c *HTTPClient) logError(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Error(msg, args...)
	}
}
