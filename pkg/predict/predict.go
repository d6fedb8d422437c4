// Package predict provides a minimal HTTP client for the external skin
// lesion analysis service.
package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shushrut/shushrut_backend/config"
)

// UpstreamError carries a non-2xx response from the analysis service.
// The status code and raw body are preserved so callers can relay them.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("predict: upstream returned %d: %s", e.StatusCode, e.Body)
}

// Request is the payload sent to the analysis service.
type Request struct {
	ObjID    string `json:"obj_id"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Response is the analysis result. Prediction is a comma-separated
// "label,confidence%,remarks" string the caller parses.
type Response struct {
	ImageURL   string `json:"image_url"`
	Verify     string `json:"verify"`
	Prediction string `json:"prediction"`
	Report     string `json:"report"`
	Jarvis     string `json:"jarvis"`
}

// Client is a lightweight analysis service HTTP client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client from config.
func New(cfg config.PredictConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Analyze submits a patient record reference for analysis and returns
// the service's result. Non-2xx responses come back as *UpstreamError.
func (c *Client) Analyze(ctx context.Context, reqBody Request) (*Response, error) {
	b, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("predict: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("predict: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("predict: do request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 64<<10))
		return nil, &UpstreamError{StatusCode: res.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var out Response
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("predict: decode response: %w", err)
	}
	return &out, nil
}
