// SPDX-License-Identifier: AGPL-3.0-or-later

package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Upstream is the slice of the generation service the relay depends on.
type Upstream interface {
	QueryVectors(ctx context.Context, query string, topK int) ([]string, error)
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// Client talks JSON over HTTP to the upstream generation service.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient builds a client from cfg. The configuration is not validated
// here; callers decide when a missing credential becomes an error.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.timeout()},
	}
}

// QueryVectors returns the text of the topK closest matches for query.
func (c *Client) QueryVectors(ctx context.Context, query string, topK int) ([]string, error) {
	payload := map[string]any{"query": query, "top_k": topK}
	var out struct {
		Matches []struct {
			Text string `json:"text"`
		} `json:"matches"`
	}
	if err := c.post(ctx, "/v1/vectors/query", payload, &out); err != nil {
		return nil, err
	}
	matches := make([]string, 0, len(out.Matches))
	for _, m := range out.Matches {
		matches = append(matches, m.Text)
	}
	return matches, nil
}

// Generate runs prompt through the named model and returns its output.
func (c *Client) Generate(ctx context.Context, model, prompt string) (string, error) {
	payload := map[string]string{"model": model, "prompt": prompt}
	var out struct {
		Text string `json:"text"`
	}
	if err := c.post(ctx, "/v1/generate", payload, &out); err != nil {
		return "", err
	}
	return out.Text, nil
}

func (c *Client) post(ctx context.Context, path string, payload, result any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding %s request: %w", path, err)
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling upstream %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("upstream %s returned %d: %s", path, resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}
