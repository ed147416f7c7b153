package aigen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lcampos/notedeck/internal/logger"
)

// SummaryLevel controls how condensed a summary is.
type SummaryLevel string

const (
	SummaryBrief    SummaryLevel = "brief"
	SummaryMedium   SummaryLevel = "medium"
	SummaryDetailed SummaryLevel = "detailed"
)

// EnhanceKind selects the rewrite applied to note content.
type EnhanceKind string

const (
	EnhanceClarity   EnhanceKind = "clarity"
	EnhanceStructure EnhanceKind = "structure"
	EnhanceExamples  EnhanceKind = "examples"
)

// Client calls an Ollama-compatible text-generation endpoint. One request,
// one response; no streaming. The generation behavior itself is opaque,
// only the boundary contract matters here.
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
	log        *logger.Logger
}

func New(baseURL, model string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.Default().WithPrefix("aigen"),
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContext(ctx).WithPrefix("aigen")

	body, err := json.Marshal(generateRequest{Model: c.model, Prompt: prompt})
	if err != nil {
		return "", err
	}

	url := c.baseURL + "/api/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		log.Error("failed to create request: %v", err)
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("generation request failed: %v", err)
		return "", err
	}
	defer resp.Body.Close()

	log.Debug("generation response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error("generation request failed: status=%d, body=%s", resp.StatusCode, string(errBody))
		return "", fmt.Errorf("generate status %d: %s", resp.StatusCode, string(errBody))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Error("failed to decode generation response: %v", err)
		return "", err
	}
	return strings.TrimSpace(out.Response), nil
}

// Summarize produces a summary of content at the requested level.
func (c *Client) Summarize(ctx context.Context, content string, level SummaryLevel) (string, error) {
	prompt := fmt.Sprintf(
		"Summarize the following study notes at a %s level of detail. Return only the summary.\n\n%s",
		level, content)
	return c.generate(ctx, prompt)
}

// Enhance rewrites content according to kind.
func (c *Client) Enhance(ctx context.Context, content string, kind EnhanceKind) (string, error) {
	var instruction string
	switch kind {
	case EnhanceStructure:
		instruction = "Restructure the following study notes with clear headings and bullet points."
	case EnhanceExamples:
		instruction = "Rewrite the following study notes, adding short concrete examples where they help."
	default:
		instruction = "Rewrite the following study notes for clarity without changing their meaning."
	}
	return c.generate(ctx, instruction+" Return only the rewritten notes.\n\n"+content)
}

// GeneratedOption is one multiple-choice option produced for a card.
type GeneratedOption struct {
	Content     string `json:"content"`
	IsCorrect   bool   `json:"is_correct"`
	Explanation string `json:"explanation"`
}

// GenerateOptions produces a multiple-choice option set for a card: the
// correct answer plus plausible distractors, exactly one marked correct.
func (c *Client) GenerateOptions(ctx context.Context, question, answer string) ([]GeneratedOption, error) {
	prompt := fmt.Sprintf(`Create four multiple-choice options for this flashcard.
Question: %s
Correct answer: %s
Respond with only a JSON array of objects with fields "content", "is_correct" and "explanation".
Exactly one option must have "is_correct": true and its content must match the correct answer.`,
		question, answer)

	raw, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var options []GeneratedOption
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &options); err != nil {
		return nil, fmt.Errorf("malformed options payload: %w", err)
	}

	correct := 0
	for _, opt := range options {
		if opt.IsCorrect {
			correct++
		}
	}
	if len(options) < 2 || correct != 1 {
		return nil, fmt.Errorf("invalid option set: %d options, %d marked correct", len(options), correct)
	}
	return options, nil
}

// stripCodeFence removes a surrounding markdown fence some models insist on.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
