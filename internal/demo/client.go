package demo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"alfredoptarigan/resume-optimizer/internal/models"
)

// Client talks to the optimizer API and the document converter over HTTP.
type Client struct {
	apiURL       string
	converterURL string
	httpClient   *http.Client
}

func NewClient(apiURL, converterURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		apiURL:       strings.TrimRight(apiURL, "/"),
		converterURL: strings.TrimRight(converterURL, "/"),
		httpClient:   httpClient,
	}
}

// WaitForHealth polls baseURL/api/v1/health every interval until it answers
// 200 or timeout elapses.
func (c *Client) WaitForHealth(ctx context.Context, baseURL string, interval, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	url := strings.TrimRight(baseURL, "/") + "/api/v1/health"
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if c.healthy(ctx, url) {
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("server at %s not ready after %s", baseURL, timeout)
		case <-ticker.C:
		}
	}
}

func (c *Client) healthy(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusOK
}

// Convert uploads the file at path to the converter and returns its text.
func (c *Client) Convert(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("copy document: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.converterURL+"/api/v1/convert", &body)
	if err != nil {
		return "", fmt.Errorf("create convert request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var converted models.ConvertResponse
	if _, err := c.do(req, &converted); err != nil {
		return "", fmt.Errorf("convert document: %w", err)
	}

	return converted.Data.Text, nil
}

// Optimize posts payload to /optimize. The raw body is returned alongside the
// decoded response for debug output.
func (c *Client) Optimize(ctx context.Context, payload OptimizePayload) (*models.OptimizeResponse, []byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal optimize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/api/v1/optimize", bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("create optimize request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var optimized models.OptimizeResponse
	raw, err := c.do(req, &optimized)
	if err != nil {
		return nil, raw, fmt.Errorf("optimize resume: %w", err)
	}

	return &optimized, raw, nil
}

// do executes req and decodes a 200 JSON body into out. Non-200 responses
// are turned into errors carrying the server's error message.
func (c *Client) do(req *http.Request, out any) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr models.ErrorResponse
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error != "" {
			return raw, fmt.Errorf("HTTP %d: %s", resp.StatusCode, apiErr.Error)
		}
		return raw, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return raw, fmt.Errorf("parse response: %w", err)
	}

	return raw, nil
}

// OptimizePayload is the JSON body the demo sends to /optimize.
type OptimizePayload struct {
	ResumeContent  string `json:"resume_content"`
	Guidelines     string `json:"guidelines,omitempty"`
	JobDescription string `json:"job_description,omitempty"`
	CustomPrompt   string `json:"custom_prompt,omitempty"`
	AIProvider     string `json:"ai_provider,omitempty"`
	Model          string `json:"model,omitempty"`
}
