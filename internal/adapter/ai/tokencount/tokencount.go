// Package tokencount provides token counting for scoring API calls.
//
// It uses tiktoken-go, a Go port of OpenAI's tiktoken library, so token
// usage can be tracked even when a provider response omits usage figures.
package tokencount

import (
	"log/slog"
	"strings"
	"sync"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

// Usage represents token counts for one scoring call.
type Usage struct {
	PromptTokens     int    `json:"prompt_tokens"`
	CompletionTokens int    `json:"completion_tokens"`
	TotalTokens      int    `json:"total_tokens"`
	Model            string `json:"model"`
}

// Counter provides thread-safe token counting with cached encodings.
type Counter struct {
	encodingCache map[string]*tiktoken.Tiktoken
	mu            sync.RWMutex
}

// NewCounter creates a new token counter instance.
func NewCounter() *Counter {
	return &Counter{
		encodingCache: make(map[string]*tiktoken.Tiktoken),
	}
}

func (c *Counter) getEncodingForModel(model string) (*tiktoken.Tiktoken, error) {
	normalized := normalizeModelName(model)

	c.mu.RLock()
	if enc, ok := c.encodingCache[normalized]; ok {
		c.mu.RUnlock()
		return enc, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if enc, ok := c.encodingCache[normalized]; ok {
		return enc, nil
	}

	enc, err := tiktoken.EncodingForModel(normalized)
	if err != nil {
		// cl100k_base covers GPT-4-era models well enough for accounting.
		slog.Debug("falling back to cl100k_base encoding",
			slog.String("model", model),
			slog.Any("error", err))
		enc, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return nil, err
		}
	}

	c.encodingCache[normalized] = enc
	return enc, nil
}

// normalizeModelName maps dated model IDs such as "gpt-4o-2024-08-06" to
// tiktoken-compatible family names.
func normalizeModelName(model string) string {
	model = strings.ToLower(model)
	switch {
	case strings.Contains(model, "gpt-4o"):
		return "gpt-4o"
	case strings.Contains(model, "gpt-4"):
		return "gpt-4"
	case strings.Contains(model, "gpt-3.5"):
		return "gpt-3.5-turbo"
	default:
		return "gpt-4o"
	}
}

// CountTokens counts the number of tokens in text for a given model.
func (c *Counter) CountTokens(text, model string) (int, error) {
	enc, err := c.getEncodingForModel(model)
	if err != nil {
		return 0, err
	}
	return len(enc.Encode(text, nil, nil)), nil
}

// CountChatTokens counts prompt tokens for a two-message chat completion,
// including the per-message framing overhead of OpenAI-compatible APIs.
func (c *Counter) CountChatTokens(systemPrompt, userPrompt, model string) (int, error) {
	enc, err := c.getEncodingForModel(model)
	if err != nil {
		return 0, err
	}

	// 3 tokens per message plus 1 for the role, and every reply is primed
	// with <|start|>assistant<|message|>.
	const tokensPerMessage = 3
	const tokensPerRole = 1

	n := 0
	n += tokensPerMessage + tokensPerRole
	n += len(enc.Encode("system", nil, nil))
	n += len(enc.Encode(systemPrompt, nil, nil))
	n += tokensPerMessage + tokensPerRole
	n += len(enc.Encode("user", nil, nil))
	n += len(enc.Encode(userPrompt, nil, nil))
	n += 3
	return n, nil
}

// CalculateUsage computes full token usage for a chat completion, estimating
// roughly 4 characters per token when encoding fails.
func (c *Counter) CalculateUsage(systemPrompt, userPrompt, completion, model string) *Usage {
	promptTokens, err := c.CountChatTokens(systemPrompt, userPrompt, model)
	if err != nil {
		slog.Warn("failed to count prompt tokens, using estimate",
			slog.String("model", model),
			slog.Any("error", err))
		promptTokens = (len(systemPrompt) + len(userPrompt)) / 4
	}

	completionTokens, err := c.CountTokens(completion, model)
	if err != nil {
		slog.Warn("failed to count completion tokens, using estimate",
			slog.String("model", model),
			slog.Any("error", err))
		completionTokens = len(completion) / 4
	}

	return &Usage{
		PromptTokens:     promptTokens,
		CompletionTokens: completionTokens,
		TotalTokens:      promptTokens + completionTokens,
		Model:            model,
	}
}
