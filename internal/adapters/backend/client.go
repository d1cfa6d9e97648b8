// Package backend talks JSON over HTTP to the product API.
package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"horizonx-storefront/internal/config"
	"horizonx-storefront/internal/domain"
	"horizonx-storefront/internal/logger"

	jsoniter "github.com/json-iterator/go"
)

const maxResponseSize = 4 << 20

var codec = jsoniter.Config{
	EscapeHTML:             true,
	CaseSensitive:          false,
	ValidateJsonRawMessage: true,
}.Froze()

type Client struct {
	baseURL *url.URL
	http    *http.Client
	log     logger.Logger
}

func NewClient(cfg *config.Config, log logger.Logger) (*Client, error) {
	base, err := url.Parse(cfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid api base url %q: scheme and host are required", cfg.APIBaseURL)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: cfg.APITimeout},
		log:     log,
	}, nil
}

func (c *Client) Get(ctx context.Context, endpoint, token string, out any) error {
	return c.do(ctx, http.MethodGet, endpoint, token, nil, out)
}

func (c *Client) Post(ctx context.Context, endpoint, token string, body, out any) error {
	return c.do(ctx, http.MethodPost, endpoint, token, body, out)
}

func (c *Client) do(ctx context.Context, method, endpoint, token string, body, out any) error {
	target, err := c.baseURL.Parse(strings.TrimPrefix(endpoint, "/"))
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", domain.ErrTransport, method, endpoint, err)
	}

	var payload io.Reader
	if body != nil {
		data, err := codec.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: %s %s: %w", domain.ErrEncodeFailed, method, endpoint, err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), payload)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", domain.ErrTransport, method, endpoint, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	} else {
		c.log.Debug("backend: request without bearer token", "method", method, "endpoint", endpoint)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("backend: request failed", "method", method, "endpoint", endpoint, "error", err)
		return fmt.Errorf("%w: %s %s: %w", domain.ErrTransport, method, endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%w: read %s response: %w", domain.ErrTransport, endpoint, err)
	}

	c.log.Debug("backend: response",
		"method", method,
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized {
			c.log.Warn("backend: unauthorized, token may be invalid or expired", "endpoint", endpoint)
		}
		return &domain.StatusError{
			Method:     method,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       string(data),
		}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := codec.Unmarshal(data, out); err != nil {
		c.log.Error("backend: decode failed", "endpoint", endpoint, "error", err)
		return fmt.Errorf("%w: %s: %w", domain.ErrDecodeFailed, endpoint, err)
	}

	return nil
}
