// Package contentdb reads meal and drink records from TheMealDB and
// TheCocktailDB. Both services share one URL layout and payload shape,
// differing only in the list key and field prefix.
package contentdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-querystring/query"

	"github.com/heartmarshall/traveleats-backend/internal/domain"
)

const (
	defaultTimeout = 10 * time.Second
	retryDelay     = 500 * time.Millisecond
	maxBodyBytes   = 4 << 20
)

type searchQuery struct {
	Keyword string `url:"s"`
}

type lookupQuery struct {
	ID string `url:"i"`
}

// Provider fetches records of one content kind.
type Provider struct {
	kind       domain.ContentKind
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProviderWithURL creates a Provider with a custom base URL and timeout.
// A non-positive timeout falls back to 10s.
func NewProviderWithURL(kind domain.ContentKind, baseURL string, timeout time.Duration, logger *slog.Logger) *Provider {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Provider{
		kind:       kind,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "contentdb", "kind", string(kind)),
	}
}

// Search returns the records whose name matches keyword. A blank keyword
// returns an empty list without contacting the API.
func (p *Provider) Search(ctx context.Context, keyword string) ([]domain.ContentSummary, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return []domain.ContentSummary{}, nil
	}

	records, err := p.fetch(ctx, "search.php", searchQuery{Keyword: keyword})
	if err != nil {
		return nil, err
	}

	out := make([]domain.ContentSummary, 0, len(records))
	for _, r := range records {
		if item := r.toItem(p.kind); item.ID != "" {
			out = append(out, item.Summary())
		}
	}

	p.log.DebugContext(ctx, "contentdb search",
		slog.String("keyword", keyword),
		slog.Int("results", len(out)))

	return out, nil
}

// Lookup returns the record with the given id.
// Returns nil, nil if the id is unknown (empty list or HTTP 404).
func (p *Provider) Lookup(ctx context.Context, id string) (*domain.ContentItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, nil
	}

	records, err := p.fetch(ctx, "lookup.php", lookupQuery{ID: id})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	item := records[0].toItem(p.kind)
	if item.ID == "" {
		return nil, nil
	}
	return &item, nil
}

// fetch performs GET {baseURL}/{path}?{params} and returns the record list.
// A 404 is reported as an empty list.
func (p *Provider) fetch(ctx context.Context, path string, params any) ([]apiRecord, error) {
	values, err := query.Values(params)
	if err != nil {
		return nil, fmt.Errorf("contentdb: encode query: %w", err)
	}
	reqURL := p.baseURL + "/" + path + "?" + values.Encode()

	p.log.DebugContext(ctx, "contentdb request", slog.String("path", path), slog.String("query", values.Encode()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("contentdb: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.doWithRetry(ctx, req, path)
	if err != nil {
		p.log.ErrorContext(ctx, "contentdb request failed", slog.String("path", path), slog.String("error", err.Error()))
		return nil, fmt.Errorf("contentdb: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("contentdb: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("contentdb: read body: %w", err)
	}

	var payload apiResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("contentdb: decode json: %w", err)
	}

	return payload.records(p.kind)
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, path string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "contentdb retry", slog.String("path", path), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(retryDelay):
	}

	return p.httpClient.Do(req)
}
