package hcapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net/http"
	"time"

	"go.uber.org/zap"

	"hc-bulk/internal/config"
)

const (
	// baseRetryDelay is the first backoff step for retryable failures.
	baseRetryDelay = 1 * time.Second
	// maxRetryDelay caps the backoff growth.
	maxRetryDelay = 8 * time.Second
)

// Client talks to the Healthchecks management API (v3). Rate limiting and
// transient server errors are retried here with exponential backoff so the
// layers above never deal with 429s.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	maxRetries int
	retryDelay time.Duration
	logger     *zap.Logger
}

// New creates a Client from the loaded configuration.
func New(cfg *config.Config, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:    cfg.APIURL,
		apiKey:     cfg.APIKey,
		maxRetries: cfg.MaxRetries,
		retryDelay: baseRetryDelay,
		logger:     logger.With(zap.String("component", "hcapi")),
	}
}

// doRequest performs one API call, retrying 429/5xx responses and network
// errors. Context cancellation stops the retry loop immediately.
func (c *Client) doRequest(ctx context.Context, method, path string, body any, result any) error {
	var bodyReader io.Reader
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	url := c.baseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(math.Pow(2, float64(attempt-1))) * c.retryDelay
			if delay > maxRetryDelay {
				delay = maxRetryDelay
			}
			delay += time.Duration(rand.Int63n(int64(delay/2) + 1))

			c.logger.Debug("retrying request",
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay),
				zap.String("url", url),
				zap.Error(lastErr))

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		if payload != nil {
			bodyReader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("X-Api-Key", c.apiKey)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "hc-bulk")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			continue
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("failed to read response body: %w", err)
			continue
		}

		if resp.StatusCode >= 400 {
			apiErr := &APIError{
				StatusCode: resp.StatusCode,
				Body:       string(respBody),
			}

			var errResp struct {
				Error   string `json:"error"`
				Message string `json:"message"`
			}
			if json.Unmarshal(respBody, &errResp) == nil {
				if errResp.Error != "" {
					apiErr.Message = errResp.Error
				} else if errResp.Message != "" {
					apiErr.Message = errResp.Message
				}
			}

			if IsRetryable(apiErr) && attempt < c.maxRetries {
				lastErr = apiErr
				continue
			}

			return apiErr
		}

		if result != nil && len(respBody) > 0 {
			if err := json.Unmarshal(respBody, result); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}
		}

		return nil
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}
