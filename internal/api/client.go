package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"veluxe-store/internal/logger"
	"veluxe-store/internal/session"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Mutation rate limits. Rapid repeated clicks used to race straight to the
// server; the bucket smooths them without queueing reads.
const (
	limitMutation = rate.Limit(10)
	burstMutation = 20
)

// Config holds the client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Session *session.Session
}

// Client is the shared HTTP/JSON client every domain package talks to the
// storefront API through. It owns base-URL resolution, bearer-token
// injection, error decoding and mutation rate limiting.
type Client struct {
	httpClient *http.Client
	baseURL    string
	sess       *session.Session
	limiter    *rate.Limiter
}

// New creates a storefront API client with the given configuration.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if cfg.Session == nil {
		return nil, fmt.Errorf("session is required")
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		sess:       cfg.Session,
		limiter:    rate.NewLimiter(limitMutation, burstMutation),
	}, nil
}

// BaseURL returns the configured API root, for building asset URLs.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET and decodes the 2xx response into out (may be nil).
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

// Post issues a POST with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	rd, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, rd, "application/json", out)
}

// Put issues a PUT with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	rd, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, rd, "application/json", out)
}

// Patch issues a PATCH with a JSON body and decodes the response into out.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	rd, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPatch, path, rd, "application/json", out)
}

// Delete issues a DELETE and decodes the response into out (may be nil).
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, path, nil, "", out)
}

// PostForm issues a POST with a multipart body (admin uploads).
func (c *Client) PostForm(ctx context.Context, path string, form *Form, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	body, contentType, err := form.encode()
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, body, contentType, out)
}

// PutForm issues a PUT with a multipart body (admin updates).
func (c *Client) PutForm(ctx context.Context, path string, form *Form, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	body, contentType, err := form.encode()
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, body, contentType, out)
}

func encodeJSON(body any) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(body); err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return buf, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	ctx = logger.WithRequestID(ctx, logger.RequestIDFrom(ctx))

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.sess.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.FromCtx(ctx).Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	logger.FromCtx(ctx).Debug("request done",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var b errorBody
		_ = json.NewDecoder(resp.Body).Decode(&b)
		return newAPIError(resp.StatusCode, b)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
