// Package openai implements the scoring engine port against the OpenAI
// chat completions API using strict JSON-schema structured outputs.
package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/hireline/hireline/internal/adapter/ai/tokencount"
	"github.com/hireline/hireline/internal/adapter/observability"
	"github.com/hireline/hireline/internal/config"
	"github.com/hireline/hireline/internal/domain"
)

// attachmentFilename is the name the scoring engine sees for the uploaded CV.
const attachmentFilename = "CV.pdf"

// Client implements domain.ScoringClient.
type Client struct {
	cfg     config.Config
	hc      *http.Client
	counter *tokencount.Counter
}

// New constructs a Client with the configured request timeout.
func New(cfg config.Config) *Client {
	return &Client{
		cfg: cfg,
		hc: &http.Client{
			Timeout:   cfg.AITimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		counter: tokencount.NewCounter(),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type string    `json:"type"`
	Text string    `json:"text,omitempty"`
	File *filePart `json:"file,omitempty"`
}

type filePart struct {
	Filename string `json:"filename"`
	FileData string `json:"file_data"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
			Refusal string `json:"refusal"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

func (c *Client) backoffConfig() *backoff.ExponentialBackOff {
	expo := backoff.NewExponentialBackOff()
	initial, maxInterval, multiplier := c.cfg.AIBackoffConfig()
	expo.InitialInterval = initial
	expo.MaxInterval = maxInterval
	expo.Multiplier = multiplier
	expo.MaxElapsedTime = 2 * c.cfg.AITimeout
	return expo
}

// ScoreJSON submits the prompts plus attachments and returns the raw JSON
// object the model produced under the strict schema. Rate limits and 5xx
// responses are retried with exponential backoff; other 4xx responses fail
// immediately.
func (c *Client) ScoreJSON(ctx domain.Context, req domain.ScoreRequest) (json.RawMessage, error) {
	if c.cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY missing", domain.ErrInvalidArgument)
	}

	userContent := make([]contentPart, 0, 1+len(req.Attachments))
	userContent = append(userContent, contentPart{Type: "text", Text: req.User})
	for _, att := range req.Attachments {
		name := att.Filename
		if name == "" {
			name = attachmentFilename
		}
		userContent = append(userContent, contentPart{
			Type: "file",
			File: &filePart{
				Filename: name,
				FileData: fmt.Sprintf("data:%s;base64,%s", att.MIME, base64.StdEncoding.EncodeToString(att.Data)),
			},
		})
	}

	body := map[string]any{
		"model":       c.cfg.ScoringModel,
		"temperature": 0,
		"messages": []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: userContent},
		},
		"response_format": map[string]any{
			"type": "json_schema",
			"json_schema": map[string]any{
				"name":   req.SchemaName,
				"strict": true,
				"schema": req.Schema,
			},
		},
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("op=openai.marshal: %w", err)
	}

	var out chatResponse
	op := func() error {
		start := time.Now()
		// Recreate the request each attempt to avoid reusing consumed bodies.
		r, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.OpenAIBaseURL+"/chat/completions", bytes.NewReader(b))
		if err != nil {
			return backoff.Permanent(err)
		}
		r.Header.Set("Authorization", "Bearer "+c.cfg.OpenAIAPIKey)
		r.Header.Set("Content-Type", "application/json")

		resp, err := c.hc.Do(r)
		observability.AIRequestsTotal.WithLabelValues("openai", "score").Inc()
		observability.AIRequestDuration.WithLabelValues("openai", "score").Observe(time.Since(start).Seconds())
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			slog.Warn("scoring engine rate limited",
				slog.String("schema", req.SchemaName),
				slog.String("x_request_id", resp.Header.Get("X-Request-Id")))
			return fmt.Errorf("rate limited: 429")
		case resp.StatusCode >= 400 && resp.StatusCode < 500:
			slog.Error("scoring engine 4xx",
				slog.Int("status", resp.StatusCode),
				slog.String("schema", req.SchemaName),
				slog.String("body", snippet(respBody, 512)))
			return backoff.Permanent(fmt.Errorf("score status %d", resp.StatusCode))
		case resp.StatusCode < 200 || resp.StatusCode >= 300:
			slog.Error("scoring engine non-2xx",
				slog.Int("status", resp.StatusCode),
				slog.String("schema", req.SchemaName),
				slog.String("body", snippet(respBody, 512)))
			return fmt.Errorf("score status %d", resp.StatusCode)
		}

		if err := json.Unmarshal(respBody, &out); err != nil {
			return backoff.Permanent(fmt.Errorf("op=openai.decode: %w", err))
		}
		return nil
	}

	if err := backoff.Retry(op, backoff.WithContext(c.backoffConfig(), ctx)); err != nil {
		if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamTimeout, err)
		}
		return nil, fmt.Errorf("op=openai.score: %w", err)
	}

	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty choices", domain.ErrSchemaInvalid)
	}
	choice := out.Choices[0].Message
	if choice.Refusal != "" {
		return nil, fmt.Errorf("%w: model refused: %s", domain.ErrSchemaInvalid, snippet([]byte(choice.Refusal), 256))
	}

	raw := cleanJSONContent(choice.Content)
	if !json.Valid([]byte(raw)) {
		return nil, fmt.Errorf("%w: response is not valid JSON", domain.ErrSchemaInvalid)
	}

	c.recordUsage(req, choice.Content, out)
	return json.RawMessage(raw), nil
}

func (c *Client) recordUsage(req domain.ScoreRequest, completion string, out chatResponse) {
	prompt := out.Usage.PromptTokens
	comp := out.Usage.CompletionTokens
	if prompt == 0 && comp == 0 {
		u := c.counter.CalculateUsage(req.System, req.User, completion, c.cfg.ScoringModel)
		prompt, comp = u.PromptTokens, u.CompletionTokens
	}
	observability.AITokensTotal.WithLabelValues("openai", "prompt").Add(float64(prompt))
	observability.AITokensTotal.WithLabelValues("openai", "completion").Add(float64(comp))
	slog.Debug("scoring call token usage",
		slog.String("schema", req.SchemaName),
		slog.Int("prompt_tokens", prompt),
		slog.Int("completion_tokens", comp))
}

// cleanJSONContent strips markdown code fences some models wrap around JSON
// output even under structured response formats.
func cleanJSONContent(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func snippet(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}
