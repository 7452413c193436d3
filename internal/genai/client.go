// Package genai talks to the Google generative language REST API. One
// client is constructed at process start and injected into the
// handlers; each call tries the candidate models in order, each attempt
// bounded by its own deadline.
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

	"mapmygap/internal/logger"

	"go.uber.org/zap"
)

// Invoker is the surface handlers depend on; tests substitute a fake.
type Invoker interface {
	Generate(ctx context.Context, prompt string, timeout time.Duration) (string, error)
}

type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	models     []string
}

// New builds a client. models is the candidate chain, primary first.
func New(endpoint, apiKey string, models []string) *Client {
	return &Client{
		httpClient: &http.Client{},
		endpoint:   strings.TrimRight(endpoint, "/"),
		apiKey:     apiKey,
		models:     models,
	}
}

// request/response mirror the provider wire format.

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Generate sends the prompt to each candidate model in turn. Every
// attempt gets its own deadline derived from ctx, so the whole call
// resolves within len(models) * timeout in the worst case. The first
// success wins; the last failure is returned typed.
func (c *Client) Generate(ctx context.Context, prompt string, timeout time.Duration) (string, error) {
	var lastErr error
	for _, model := range c.models {
		text, err := c.generateOnce(ctx, model, prompt, timeout)
		if err == nil {
			return text, nil
		}
		lastErr = err
		logger.L().Warn("model attempt failed",
			zap.String("model", model),
			zap.String("kind", KindOf(err).String()),
			zap.Error(err))
		if ctx.Err() != nil {
			// caller cancelled, stop trying
			break
		}
	}
	if lastErr == nil {
		lastErr = &APIError{Kind: KindServer, Message: "no candidate models configured"}
	}
	return "", lastErr
}

func (c *Client) generateOnce(ctx context.Context, model, prompt string, timeout time.Duration) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", &APIError{Kind: KindServer, Model: model, Message: err.Error()}
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.endpoint, model, c.apiKey)
	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &APIError{Kind: KindServer, Model: model, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || attemptCtx.Err() == context.DeadlineExceeded {
			return "", &APIError{Kind: KindTimeout, Model: model, Message: "request exceeded deadline"}
		}
		return "", &APIError{Kind: KindUnavailable, Model: model, Message: err.Error()}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", &APIError{Kind: KindServer, Model: model, Message: err.Error()}
	}

	var parsed generateResponse
	_ = json.Unmarshal(payload, &parsed)

	if resp.StatusCode != http.StatusOK {
		return "", c.classifyHTTP(resp.StatusCode, model, &parsed)
	}
	if parsed.PromptFeedback.BlockReason != "" {
		return "", &APIError{Kind: KindContentBlocked, Model: model,
			Message: "prompt blocked: " + parsed.PromptFeedback.BlockReason}
	}
	if len(parsed.Candidates) == 0 {
		return "", &APIError{Kind: KindServer, Model: model, Message: "response contained no candidates"}
	}
	if reason := parsed.Candidates[0].FinishReason; reason == "SAFETY" || reason == "PROHIBITED_CONTENT" {
		return "", &APIError{Kind: KindContentBlocked, Model: model, Message: "candidate blocked: " + reason}
	}

	var text strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}
	if text.Len() == 0 {
		return "", &APIError{Kind: KindServer, Model: model, Message: "candidate contained no text"}
	}
	return text.String(), nil
}

func (c *Client) classifyHTTP(status int, model string, parsed *generateResponse) *APIError {
	msg := parsed.Error.Message
	if msg == "" {
		msg = http.StatusText(status)
	}
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &APIError{Kind: KindAuthFailed, Model: model, Message: msg}
	case status == http.StatusTooManyRequests:
		return &APIError{Kind: KindRateLimited, Model: model, Message: msg}
	case status == http.StatusServiceUnavailable || status == http.StatusBadGateway:
		return &APIError{Kind: KindUnavailable, Model: model, Message: msg}
	case status == http.StatusBadRequest && strings.Contains(strings.ToUpper(parsed.Error.Status), "BLOCKED"):
		return &APIError{Kind: KindContentBlocked, Model: model, Message: msg}
	default:
		return &APIError{Kind: KindServer, Model: model, Message: msg}
	}
}

// Ping verifies connectivity by listing the first model. Used by the
// diagnostic endpoint only.
func (c *Client) Ping(ctx context.Context) error {
	if len(c.models) == 0 {
		return &APIError{Kind: KindServer, Message: "no models configured"}
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	url := fmt.Sprintf("%s/models/%s?key=%s", c.endpoint, c.models[0], c.apiKey)
	req, err := http.NewRequestWithContext(pingCtx, http.MethodGet, url, nil)
	if err != nil {
		return &APIError{Kind: KindServer, Model: c.models[0], Message: err.Error()}
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if pingCtx.Err() == context.DeadlineExceeded {
			return &APIError{Kind: KindTimeout, Model: c.models[0], Message: "ping exceeded deadline"}
		}
		return &APIError{Kind: KindUnavailable, Model: c.models[0], Message: err.Error()}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		var parsed generateResponse
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		_ = json.Unmarshal(payload, &parsed)
		return c.classifyHTTP(resp.StatusCode, c.models[0], &parsed)
	}
	return nil
}
