package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strattonbot/internal/core/domain"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	searchLimit   = 10
	linkLimit     = 20
	clientTimeout = 10 * time.Second
)

// MediaWiki resolves lookup queries against a MediaWiki Action API endpoint.
type MediaWiki struct {
	client *http.Client
	apiURL string
}

func NewMediaWiki(apiURL string) *MediaWiki {
	return &MediaWiki{
		client: &http.Client{Timeout: clientTimeout},
		apiURL: apiURL,
	}
}

// Resolve runs a title search followed by a page fetch for the best match.
// Failures never surface as errors, they come back as a LookupFailed result.
func (w *MediaWiki) Resolve(ctx context.Context, query string) domain.LookupResult {
	titles, err := w.search(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("lookup search failed")
		return domain.LookupResult{Kind: domain.LookupFailed, Reason: err.Error()}
	}

	if len(titles) == 0 {
		return domain.LookupResult{Kind: domain.PageNotFound}
	}

	page, err := w.fetchPage(ctx, titles[0])
	if err != nil {
		log.Error().Err(err).Str("title", titles[0]).Msg("lookup page fetch failed")
		return domain.LookupResult{Kind: domain.LookupFailed, Reason: err.Error()}
	}

	if page == nil || page.Missing != nil {
		return domain.LookupResult{Kind: domain.PageNotFound}
	}

	if _, ok := page.PageProps["disambiguation"]; ok {
		candidates := make([]string, 0, len(page.Links))
		for _, link := range page.Links {
			candidates = append(candidates, link.Title)
		}
		if len(candidates) == 0 {
			candidates = titles[1:]
		}

		return domain.LookupResult{
			Kind:       domain.Disambiguation,
			Title:      page.Title,
			Candidates: candidates,
		}
	}

	return domain.LookupResult{
		Kind:    domain.PageFound,
		Title:   page.Title,
		Summary: strings.TrimSpace(page.Extract),
		URL:     page.FullURL,
	}
}

// search returns matching page titles, best match first. The search term
// always carries a trailing question mark, which MediaWiki tolerates and
// which keeps conversational queries like "что такое граф" matching the
// same way whether or not the user typed one.
func (w *MediaWiki) search(ctx context.Context, query string) ([]string, error) {
	term := strings.TrimSpace(query)
	if !strings.HasSuffix(term, "?") {
		term += "?"
	}

	params := url.Values{}
	params.Set("action", "opensearch")
	params.Set("format", "json")
	params.Set("search", term)
	params.Set("limit", fmt.Sprint(searchLimit))

	body, err := w.get(ctx, params)
	if err != nil {
		return nil, err
	}

	// opensearch responds with a positional array:
	// [query, titles, descriptions, urls]
	var sections []json.RawMessage
	if err := json.Unmarshal(body, &sections); err != nil {
		return nil, fmt.Errorf("malformed opensearch response: %w", err)
	}
	if len(sections) < 2 {
		return nil, fmt.Errorf("opensearch response has %d sections", len(sections))
	}

	var titles []string
	if err := json.Unmarshal(sections[1], &titles); err != nil {
		return nil, fmt.Errorf("malformed opensearch titles: %w", err)
	}

	return titles, nil
}

type wikiPage struct {
	Title     string            `json:"title"`
	Extract   string            `json:"extract"`
	FullURL   string            `json:"fullurl"`
	Missing   json.RawMessage   `json:"missing"`
	PageProps map[string]string `json:"pageprops"`
	Links     []struct {
		Title string `json:"title"`
	} `json:"links"`
}

type queryResponse struct {
	Query struct {
		Pages map[string]wikiPage `json:"pages"`
	} `json:"query"`
}

func (w *MediaWiki) fetchPage(ctx context.Context, title string) (*wikiPage, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("prop", "extracts|info|pageprops|links")
	params.Set("titles", title)
	params.Set("explaintext", "1")
	params.Set("exsentences", "5")
	params.Set("redirects", "1")
	params.Set("inprop", "url")
	params.Set("pllimit", fmt.Sprint(linkLimit))

	body, err := w.get(ctx, params)
	if err != nil {
		return nil, err
	}

	var resp queryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("malformed query response: %w", err)
	}

	for _, page := range resp.Query.Pages {
		return &page, nil
	}

	return nil, nil
}

func (w *MediaWiki) get(ctx context.Context, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return body, nil
}
