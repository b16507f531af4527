// Package genai calls an external text-generation API to score tasks. It
// speaks either the Google Generative Language REST surface or an
// OpenAI-compatible chat-completions endpoint, selected by configuration.
// Callers must treat any error as "model unavailable" and fall back to the
// heuristic; nothing here retries.
package genai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/iamnithyaramesh/project-manager/internal/core/domain"
	"github.com/iamnithyaramesh/project-manager/internal/infrastructure/resilience"
)

const (
	ProviderGoogle = "google"
	ProviderOpenAI = "openai"
)

// Options is the explicit configuration object for the scoring integration.
// Nothing in this package reads ambient environment state.
type Options struct {
	Provider          string
	APIKey            string
	Model             string
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
}

func (o Options) withDefaults() Options {
	out := o
	if out.Provider == "" {
		out.Provider = ProviderGoogle
	}
	out.Provider = strings.ToLower(out.Provider)
	if out.Model == "" {
		if out.Provider == ProviderGoogle {
			out.Model = "text-bison-001"
		} else {
			out.Model = "gpt-4o-mini"
		}
	}
	if out.BaseURL == "" {
		if out.Provider == ProviderGoogle {
			out.BaseURL = "https://generativelanguage.googleapis.com"
		} else {
			out.BaseURL = "https://api.openai.com"
		}
	}
	out.BaseURL = strings.TrimRight(out.BaseURL, "/")
	if out.Timeout <= 0 {
		out.Timeout = 60 * time.Second
	}
	if out.RequestsPerSecond <= 0 {
		out.RequestsPerSecond = 1
	}
	return out
}

type Client struct {
	opts       Options
	httpClient *http.Client
	limiter    *rate.Limiter
	executor   *resilience.Executor
}

func New(opts Options, executor *resilience.Executor) *Client {
	opts = opts.withDefaults()
	return &Client{
		opts:       opts,
		httpClient: &http.Client{Timeout: opts.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1),
		executor:   executor,
	}
}

type scoreEntry struct {
	ID     string  `json:"id"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// ScoreTasks makes a single model call for the whole batch and parses the
// strict JSON array it demands. An unparseable response is an error, not a
// partial result.
func (c *Client) ScoreTasks(ctx context.Context, tasks []domain.TaskRef) ([]domain.PriorityResult, error) {
	if len(tasks) == 0 {
		return []domain.PriorityResult{}, nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	prompt := BuildPriorityPrompt(tasks)

	var raw string
	call := func(callCtx context.Context) error {
		var err error
		raw, err = c.complete(callCtx, prompt)
		return err
	}

	var err error
	if c.executor != nil {
		err = c.executor.Execute(ctx, "genai.score", call, classifyModelError)
	} else {
		err = call(ctx)
	}
	if err != nil {
		return nil, err
	}

	entries, err := parseScoreArray(raw)
	if err != nil {
		return nil, err
	}

	results := make([]domain.PriorityResult, 0, len(entries))
	for _, e := range entries {
		results = append(results, domain.PriorityResult{
			ID:     e.ID,
			Score:  e.Score,
			Reason: e.Reason,
			Source: domain.ScoredByModel,
		})
	}
	return results, nil
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	switch c.opts.Provider {
	case ProviderGoogle:
		return c.completeGoogle(ctx, prompt)
	default:
		return c.completeOpenAI(ctx, prompt)
	}
}

func (c *Client) completeGoogle(ctx context.Context, prompt string) (string, error) {
	endpoint := fmt.Sprintf("%s/v1beta2/models/%s:generateText?key=%s",
		c.opts.BaseURL, c.opts.Model, url.QueryEscape(c.opts.APIKey))
	payload := map[string]any{
		"prompt":          map[string]string{"text": prompt},
		"maxOutputTokens": 1024,
	}

	var response struct {
		Candidates []struct {
			Output string `json:"output"`
		} `json:"candidates"`
	}
	if err := c.postJSON(ctx, endpoint, nil, payload, &response, "generateText"); err != nil {
		return "", err
	}
	if len(response.Candidates) == 0 {
		return "", errors.New("generateText: empty candidate list")
	}
	return response.Candidates[0].Output, nil
}

func (c *Client) completeOpenAI(ctx context.Context, prompt string) (string, error) {
	endpoint := c.opts.BaseURL + "/v1/chat/completions"
	payload := map[string]any{
		"model": c.opts.Model,
		"messages": []map[string]string{
			{"role": "system", "content": "You are an assistant that ranks tasks by priority."},
			{"role": "user", "content": prompt},
		},
		"max_tokens":  1024,
		"temperature": 0.0,
	}
	headers := map[string]string{"Authorization": "Bearer " + c.opts.APIKey}

	var response struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := c.postJSON(ctx, endpoint, headers, payload, &response, "chat completion"); err != nil {
		return "", err
	}
	if len(response.Choices) == 0 {
		return "", errors.New("chat completion: empty choice list")
	}
	return response.Choices[0].Message.Content, nil
}

var arrayRe = regexp.MustCompile(`(?s)(\[.*\])`)

// parseScoreArray parses the model output as a JSON array; when direct
// parsing fails it locates the first bracketed array substring and retries.
func parseScoreArray(raw string) ([]scoreEntry, error) {
	var entries []scoreEntry
	if err := json.Unmarshal([]byte(raw), &entries); err == nil {
		return entries, nil
	}

	match := arrayRe.FindStringSubmatch(raw)
	if match == nil {
		return nil, fmt.Errorf("model output is not a JSON array: %.120q", raw)
	}
	if err := json.Unmarshal([]byte(match[1]), &entries); err != nil {
		return nil, fmt.Errorf("parse embedded score array: %w", err)
	}
	return entries, nil
}
