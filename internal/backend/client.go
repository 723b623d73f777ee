// Package backend provides the typed HTTP client for the external document
// API. The console owns no document state; every inventory page, workflow
// transition and tenant record goes through this client.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bsimkins11/project-agent-admin/internal/config"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// CallObserver receives backend call outcomes and breaker transitions.
// Implemented by the metrics registry; nil disables observation.
type CallObserver interface {
	RecordBackendCall(service, operation string, duration time.Duration, err error)
	RecordBreakerTransition(service, from, to string)
}

const observerService = "document-api"

// apiResponse is the decoded outcome of one backend call
type apiResponse struct {
	status int
	body   []byte
}

// Client talks to the document API. Calls are wrapped in a circuit breaker so
// a dead backend sheds load quickly instead of tying up console requests.
// There is no retry-with-backoff on mutations; retries are user-initiated.
type Client struct {
	baseURL  string
	apiKey   string
	httpc    *http.Client
	breaker  *gobreaker.CircuitBreaker[*apiResponse]
	logger   *zap.Logger
	observer CallObserver
}

// SetObserver attaches a call observer. Must be called before the client is
// shared across goroutines.
func (c *Client) SetObserver(obs CallObserver) {
	c.observer = obs
}

// NewClient creates a backend client from configuration
func NewClient(cfg *config.BackendConfig, logger *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("backend base URL is required")
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpc: &http.Client{
			Timeout: cfg.RequestTimeoutDuration(),
		},
		logger: logger,
	}

	if cfg.BreakerEnabled {
		maxFailures := uint32(cfg.BreakerMaxFailures)
		settings := gobreaker.Settings{
			Name:    "document-api",
			Timeout: cfg.BreakerCooldownDuration(),
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= maxFailures
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("backend circuit breaker state change",
					zap.String("name", name),
					zap.String("from", from.String()),
					zap.String("to", to.String()),
				)
				if c.observer != nil {
					c.observer.RecordBreakerTransition(observerService, from.String(), to.String())
				}
			},
		}
		c.breaker = gobreaker.NewCircuitBreaker[*apiResponse](settings)
	}

	logger.Info("Backend client initialized",
		zap.String("base_url", c.baseURL),
		zap.Bool("breaker_enabled", cfg.BreakerEnabled),
	)

	return c, nil
}

// do executes one backend call and returns the raw response. Only transport
// failures and 5xx responses count against the breaker; 4xx responses are
// the caller's problem and pass through.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*apiResponse, error) {
	call := func() (*apiResponse, error) {
		u := c.baseURL + path
		if len(query) > 0 {
			u += "?" + query.Encode()
		}

		req, err := http.NewRequestWithContext(ctx, method, u, body)
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		req.Header.Set("Accept", "application/json")
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err := c.httpc.Do(req)
		if err != nil {
			return nil, fmt.Errorf("backend request failed: %w", err)
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
		if err != nil {
			return nil, fmt.Errorf("failed to read backend response: %w", err)
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, decodeError(resp.StatusCode, respBody)
		}

		return &apiResponse{status: resp.StatusCode, body: respBody}, nil
	}

	start := time.Now()
	var resp *apiResponse
	var err error
	if c.breaker != nil {
		resp, err = c.breaker.Execute(call)
	} else {
		resp, err = call()
	}

	if err == nil && resp.status >= http.StatusBadRequest {
		err = decodeError(resp.status, resp.body)
	}

	if c.observer != nil {
		c.observer.RecordBackendCall(observerService, method+" "+normalizeOperation(path), time.Since(start), err)
	}

	if err != nil {
		return nil, err
	}
	return resp, nil
}

// normalizeOperation collapses per-document paths so metric label cardinality
// stays bounded
func normalizeOperation(path string) string {
	if strings.HasPrefix(path, "/documents/") {
		rest := strings.TrimPrefix(path, "/documents/")
		if idx := strings.Index(rest, "/"); idx != -1 {
			return "/documents/{id}/" + rest[idx+1:]
		}
		return "/documents/{id}"
	}
	return path
}

// doJSON executes a call with a JSON payload and decodes a JSON result.
// A nil out discards the response body.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, payload, out interface{}) error {
	var body io.Reader
	contentType := ""
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode payload: %w", err)
		}
		body = bytes.NewReader(buf)
		contentType = "application/json"
	}

	resp, err := c.do(ctx, method, path, query, body, contentType)
	if err != nil {
		return err
	}

	if out != nil && len(resp.body) > 0 {
		if err := json.Unmarshal(resp.body, out); err != nil {
			return fmt.Errorf("failed to decode backend response: %w", err)
		}
	}
	return nil
}

// doMultipart executes a multipart upload with optional extra form fields
func (c *Client) doMultipart(ctx context.Context, path string, fields map[string]string, fileField, filename string, file io.Reader, out interface{}) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := mw.WriteField(key, value); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", key, err)
		}
	}

	part, err := mw.CreateFormFile(fileField, filename)
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to copy file contents: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, path, nil, &buf, mw.FormDataContentType())
	if err != nil {
		return err
	}

	if out != nil && len(resp.body) > 0 {
		if err := json.Unmarshal(resp.body, out); err != nil {
			return fmt.Errorf("failed to decode backend response: %w", err)
		}
	}
	return nil
}

// Health checks backend liveness
func (c *Client) Health(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/health", nil, nil, "")
	return err
}
