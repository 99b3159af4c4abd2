// Package dictionary looks words up in the public dictionaryapi.dev service.
package dictionary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"studyenglish/internal/domain"
	"studyenglish/internal/escape"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries"
	DefaultLocale  = "en"

	// maxErrorBody caps how much of a failed response is kept for the message
	maxErrorBody = 4 << 10
)

// Client fetches entries for single words. Every call issues exactly one
// request: no retries, no caching, no de-duplication of concurrent calls.
type Client struct {
	baseURL    string
	locale     string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a Client
type Option func(*Client)

// WithLocale sets the locale path segment (default "en")
func WithLocale(locale string) Option {
	return func(c *Client) {
		if locale != "" {
			c.locale = locale
		}
	}
}

// WithTimeout bounds each request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a new dictionary client. An empty baseURL selects
// DefaultBaseURL.
func NewClient(baseURL string, logger *zap.Logger, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		locale:     DefaultLocale,
		httpClient: &http.Client{},
		logger:     logger.With(zap.String("component", "dictionary")),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the request URL for word
func (c *Client) URL(word string) string {
	return c.baseURL + "/" + c.locale + "/" + escape.Component(word)
}

// Lookup fetches word and classifies the result. word must already be
// validated as non-empty.
func (c *Client) Lookup(ctx context.Context, word string) domain.Outcome {
	reqURL := c.URL(word)

	c.logger.Debug("Dictionary request", zap.String("word", word), zap.String("url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return c.fail(word, &domain.NetworkError{Err: fmt.Errorf("create request: %w", err)})
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fail(word, &domain.NetworkError{Err: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// A body read error must not hide the status.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return c.fail(word, &domain.HTTPError{
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(body)),
		})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(word, &domain.NetworkError{Err: fmt.Errorf("read body: %w", err)})
	}

	outcome := decode(body)
	switch outcome.Kind {
	case domain.OutcomeFailure:
		return c.fail(word, outcome.Err)
	case domain.OutcomeNotFound:
		c.logger.Debug("Dictionary returned no entries", zap.String("word", word))
	default:
		c.logger.Debug("Dictionary response",
			zap.String("word", word),
			zap.Int("meanings", len(outcome.Entry.Meanings)),
			zap.Int("phonetics", len(outcome.Entry.Phonetics)),
			zap.Int("discarded_entries", outcome.Alternates),
		)
	}
	return outcome
}

func (c *Client) fail(word string, err error) domain.Outcome {
	c.logger.Warn("Dictionary lookup failed", zap.String("word", word), zap.Error(err))
	return domain.Failure(err)
}

// decode classifies a 2xx body. Invalid JSON is a parse failure; valid JSON
// that is not an array, or an empty array, is not found. Only the first
// entry is kept.
func decode(body []byte) domain.Outcome {
	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return domain.Failure(&domain.ParseError{Err: err})
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return domain.NotFound()
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return domain.Failure(&domain.ParseError{Err: err})
	}
	if len(items) == 0 {
		return domain.NotFound()
	}

	var first apiEntry
	if err := json.Unmarshal(items[0], &first); err != nil {
		return domain.Failure(&domain.ParseError{Err: err})
	}

	outcome := domain.Success(first.toDomain())
	outcome.Alternates = len(items) - 1
	return outcome
}
