// Package pdfrender calls the external invoice PDF-rendering endpoint.
package pdfrender

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Config represents the configuration for the PDF rendering client
type Config struct {
	// BaseURL is the base URL of the rendering service
	BaseURL string
	// HTTPClient is an optional custom HTTP client
	HTTPClient *http.Client
	// Timeout is the default request timeout
	Timeout time.Duration
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:    "http://localhost:4781",
		HTTPClient: http.DefaultClient,
		Timeout:    30 * time.Second,
	}
}

// Client renders invoices to PDF through the remote service.
type Client struct {
	config *Config
	client *http.Client
}

// NewClient creates a new rendering client with the given configuration
func NewClient(config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		config: config,
		client: client,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// Render fetches the binary PDF payload for an invoice. The caller's bearer
// token is forwarded as-is. On a non-success status the remote-provided error
// message is surfaced when one is available.
func (c *Client) Render(ctx context.Context, invoiceID, bearerToken string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/org-billing/invoice/%s/download", c.config.BaseURL, invoiceID)

	reqCtx := ctx
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating render request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+bearerToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling render service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var remote errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&remote); err == nil && remote.Error != "" {
			return nil, fmt.Errorf("render service: %s", remote.Error)
		}
		return nil, fmt.Errorf("failed to download invoice: status %d", resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading rendered invoice: %w", err)
	}
	return payload, nil
}
