// Copyright Venturely Inc., 2026. All rights reserved.

package source

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/venturely/intel-engine/internal/httputil"
	"github.com/venturely/intel-engine/pkg/types"
)

// newsFeedAPIBase is the news syndication search endpoint. Declared as a var
// so tests can substitute an httptest server.
var newsFeedAPIBase = "https://news.google.com/rss/search"

// NewsFeedClient queries a news RSS search feed. Second-priority source.
type NewsFeedClient struct {
	Client  *http.Client
	Breaker *httputil.Breaker
}

// Name returns the source identifier.
func (c *NewsFeedClient) Name() string { return "newsfeed" }

// Lookup fetches the RSS feed for the query and returns one result per item.
func (c *NewsFeedClient) Lookup(ctx context.Context, q types.ResearchQuery, cfg types.ResearchConfig) ([]types.SourceResult, error) {
	params := url.Values{
		"q":  {q.Text},
		"hl": {"en-US"},
	}
	reqURL := newsFeedAPIBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := do(ctx, c.Breaker, c.Client, req)
	if err != nil {
		return nil, fmt.Errorf("news feed request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news feed returned HTTP %d", resp.StatusCode)
	}

	var feed rssFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing news feed: %w", err)
	}

	limit := q.ResultLimit
	if limit <= 0 {
		limit = 10
	}

	var results []types.SourceResult
	for _, item := range feed.Channel.Items {
		if len(results) >= limit {
			break
		}
		title := strings.TrimSpace(item.Title)
		link := strings.TrimSpace(item.Link)
		if title == "" || link == "" {
			continue
		}
		results = append(results, types.SourceResult{
			Title:    title,
			URL:      link,
			Snippet:  stripTags(item.Description),
			SourceID: c.Name(),
		})
	}
	return results, nil
}

// RSS feed XML structures.
type rssFeed struct {
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Items []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
}
