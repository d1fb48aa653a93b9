// Package gateway is the typed façade over the Tatya backend REST
// API. Every operation is a single request/response against the
// {success, message, data} envelope; there are no retries and no
// partial successes. Callers treat any returned error as the failure
// signal and own the user-facing messaging.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tatya/models"
	"tatya/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// APIError carries the backend's message verbatim. When the backend
// returns no message, the call site's fallback string is used.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client talks to the backend REST API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient returns a gateway client rooted at baseURL (".../api").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		logger:  utils.GetLogger(),
	}
}

// do performs one request and decodes the response envelope into out
// (when out is non-nil). A non-2xx status or success=false becomes an
// *APIError carrying the backend message, or fallbackMsg if absent.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}, fallbackMsg string) error {
	var reqBody *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("Request failed", zap.String("path", path), zap.Error(err))
		return &APIError{Message: fallbackMsg}
	}
	defer resp.Body.Close()

	var env models.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.logger.Warn("Failed to decode response envelope", zap.String("path", path), zap.Error(err))
		return &APIError{StatusCode: resp.StatusCode, Message: fallbackMsg}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fallbackMsg
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

// doRaw performs one request against an endpoint that answers with a
// bare JSON object instead of the envelope (the payment endpoints).
func (c *Client) doRaw(ctx context.Context, method, path string, body interface{}, out interface{}, fallbackMsg string) error {
	var reqBody *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("Request failed", zap.String("path", path), zap.Error(err))
		return &APIError{Message: fallbackMsg}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var failure struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		msg := fallbackMsg
		if err := json.NewDecoder(resp.Body).Decode(&failure); err == nil {
			if failure.Message != "" {
				msg = failure.Message
			} else if failure.Error != "" {
				msg = failure.Error
			}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

// download performs one GET against an endpoint that answers with a
// raw byte stream (the admin Excel exports). Non-2xx responses carry
// no decodable body.
func (c *Client) download(ctx context.Context, path, fallbackMsg string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("Request failed", zap.String("path", path), zap.Error(err))
		return nil, &APIError{Message: fallbackMsg}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: fallbackMsg}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read download: %w", err)
	}
	return data, nil
}

// Health pings the backend.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/otp/health", nil, nil, "API is not available")
}
