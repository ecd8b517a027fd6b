// Package bibleapi fetches English verse translations from the
// bible-api.com service.
package bibleapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/koinevocab/curator/internal/domain"
	"github.com/koinevocab/curator/internal/provider"
)

const defaultBaseURL = "https://bible-api.com"

const defaultUserAgent = "koinevocab-curator/1.0"

// Provider fetches verse translations from bible-api.com.
type Provider struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider with the default bible-api.com URL.
func NewProvider(logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	return NewProviderWithOptions(baseURL, 10*time.Second, logger)
}

// NewProviderWithOptions creates a Provider with a custom base URL and
// request timeout.
func NewProviderWithOptions(baseURL string, timeout time.Duration, logger *slog.Logger) *Provider {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Provider{
		baseURL:    baseURL,
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "bibleapi"),
	}
}

// FetchVerse fetches the translation for a single verse reference such
// as "John 3:16". Returns nil, nil if the service does not know the
// reference (HTTP 404). Failures are not retried; the caller decides
// whether to keep the placeholder text.
func (p *Provider) FetchVerse(ctx context.Context, bookName string, chapter, verse int) (*provider.TranslationResult, error) {
	ref := fmt.Sprintf("%s %d:%d", bookName, chapter, verse)
	reqURL := p.baseURL + "/" + url.PathEscape(ref)

	p.log.DebugContext(ctx, "bibleapi request", slog.String("reference", ref))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("bibleapi: create request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "bibleapi request failed", slog.String("reference", ref), slog.String("error", err.Error()))
		return nil, fmt.Errorf("bibleapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bibleapi: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("bibleapi: read body: %w", err)
	}

	var payload apiResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("bibleapi: decode json: %w", err)
	}

	text := domain.CollapseWhitespace(payload.Text)
	if text == "" {
		return nil, nil
	}

	return &provider.TranslationResult{
		Reference:   payload.Reference,
		Text:        text,
		Translation: payload.TranslationID,
		Source:      "bible-api.com",
	}, nil
}
