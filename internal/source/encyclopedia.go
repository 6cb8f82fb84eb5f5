// Copyright Venturely Inc., 2026. All rights reserved.

package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/venturely/intel-engine/internal/httputil"
	"github.com/venturely/intel-engine/pkg/types"
)

// encyclopediaAPIBase is the MediaWiki search endpoint. Declared as a var so
// tests can substitute an httptest server.
var encyclopediaAPIBase = "https://en.wikipedia.org/w/api.php"

// encyclopediaArticleBase is the article URL prefix results link to.
var encyclopediaArticleBase = "https://en.wikipedia.org/wiki/"

// EncyclopediaClient queries the MediaWiki full-text search API for
// encyclopedic summaries. Highest-priority source.
type EncyclopediaClient struct {
	Client  *http.Client
	Breaker *httputil.Breaker
}

// Name returns the source identifier.
func (c *EncyclopediaClient) Name() string { return "encyclopedia" }

// Lookup runs a full-text search and returns title/URL/snippet results.
func (c *EncyclopediaClient) Lookup(ctx context.Context, q types.ResearchQuery, cfg types.ResearchConfig) ([]types.SourceResult, error) {
	limit := q.ResultLimit
	if limit <= 0 {
		limit = 10
	}

	params := url.Values{
		"action":   {"query"},
		"list":     {"search"},
		"srsearch": {q.Text},
		"srlimit":  {fmt.Sprintf("%d", limit)},
		"format":   {"json"},
		"utf8":     {"1"},
	}
	reqURL := encyclopediaAPIBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := do(ctx, c.Breaker, c.Client, req)
	if err != nil {
		return nil, fmt.Errorf("encyclopedia request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("encyclopedia API returned HTTP %d", resp.StatusCode)
	}

	var er encyclopediaResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return nil, fmt.Errorf("parsing encyclopedia response: %w", err)
	}

	var results []types.SourceResult
	for _, page := range er.Query.Search {
		title := strings.TrimSpace(page.Title)
		if title == "" {
			continue
		}
		results = append(results, types.SourceResult{
			Title:    title,
			URL:      encyclopediaArticleBase + url.PathEscape(strings.ReplaceAll(title, " ", "_")),
			Snippet:  stripTags(page.Snippet),
			SourceID: c.Name(),
		})
	}
	return results, nil
}

// MediaWiki search response structures.
type encyclopediaResponse struct {
	Query struct {
		Search []encyclopediaPage `json:"search"`
	} `json:"query"`
}

type encyclopediaPage struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}
