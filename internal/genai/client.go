// Package genai talks to the external text-generation service used for
// advisory bullets. The caller treats it as a black box: prompt in,
// plain text out, fails sometimes.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

var (
	// ErrRateLimited classifies quota and rate-limit rejections, the
	// only failure class worth retrying.
	ErrRateLimited = errors.New("generation rate limited")
	// ErrEmptyResponse signals a well-formed reply with no usable text.
	ErrEmptyResponse = errors.New("generation returned no text")
)

const defaultTemperature = 0.1

type Client struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	model     string
	apiKey    string
	userAgent string
}

func NewClient(baseURL, model, apiKey string, log *slog.Logger) *Client {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &Client{
		client:    client,
		log:       log.With("component", "genai_client"),
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		model:     model,
		apiKey:    apiKey,
		userAgent: "BioSync-Client/1.0",
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate issues one low-temperature generation request and returns
// the produced text. Rate-limit rejections map to ErrRateLimited.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{Temperature: defaultTemperature},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal generation request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("create generation request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.apiKey != "" {
		req.Header.Set("x-goog-api-key", c.apiKey)
	}

	c.log.Debug("sending generation request", "model", c.model, "prompt_len", len(prompt))

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read generation response: %w", err)
	}

	c.log.Debug("generation response received", "status", resp.StatusCode)

	if err := classifyStatus(resp.StatusCode, body); err != nil {
		return "", err
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("parse generation response: %w", err)
	}

	text := extractText(parsed)
	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}

func classifyStatus(status int, body []byte) error {
	if status < 400 {
		return nil
	}
	if status == http.StatusTooManyRequests || strings.Contains(strings.ToUpper(string(body)), "RESOURCE_EXHAUSTED") {
		return fmt.Errorf("%w: status %d", ErrRateLimited, status)
	}
	return fmt.Errorf("generation service returned status %d", status)
}

func extractText(resp generateResponse) string {
	for _, cand := range resp.Candidates {
		var sb strings.Builder
		for _, p := range cand.Content.Parts {
			sb.WriteString(p.Text)
		}
		if text := strings.TrimSpace(sb.String()); text != "" {
			return text
		}
	}
	return ""
}
