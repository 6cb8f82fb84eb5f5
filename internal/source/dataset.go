// Copyright Venturely Inc., 2026. All rights reserved.

package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/venturely/intel-engine/internal/httputil"
	"github.com/venturely/intel-engine/pkg/types"
)

// datasetAPIBase is the public industry-dataset index endpoint. The endpoint
// serves a static lookup table; the client filters it locally. Declared as a
// var so tests can substitute an httptest server.
var datasetAPIBase = "https://data.venturely.io/industry-index.json"

// DatasetClient fetches a static public-dataset lookup table and returns
// entries whose keywords appear in the query text. Lowest-priority source.
type DatasetClient struct {
	Client  *http.Client
	Breaker *httputil.Breaker
}

// Name returns the source identifier.
func (c *DatasetClient) Name() string { return "dataset" }

// Lookup downloads the lookup table and filters it against the query.
func (c *DatasetClient) Lookup(ctx context.Context, q types.ResearchQuery, cfg types.ResearchConfig) ([]types.SourceResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, datasetAPIBase, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := do(ctx, c.Breaker, c.Client, req)
	if err != nil {
		return nil, fmt.Errorf("dataset request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dataset endpoint returned HTTP %d", resp.StatusCode)
	}

	var table datasetTable
	if err := json.NewDecoder(resp.Body).Decode(&table); err != nil {
		return nil, fmt.Errorf("parsing dataset table: %w", err)
	}

	text := strings.ToLower(q.Text)

	var results []types.SourceResult
	for _, entry := range table.Entries {
		if entry.Title == "" || !entry.matches(text) {
			continue
		}
		results = append(results, types.SourceResult{
			Title:    entry.Title,
			URL:      entry.URL,
			Snippet:  entry.Summary,
			SourceID: c.Name(),
		})
	}
	return results, nil
}

// Dataset lookup-table structures.
type datasetTable struct {
	Entries []datasetEntry `json:"entries"`
}

type datasetEntry struct {
	Industry string   `json:"industry"`
	Keywords []string `json:"keywords"`
	Title    string   `json:"title"`
	URL      string   `json:"url"`
	Summary  string   `json:"summary"`
}

// matches reports whether any of the entry's keywords (or its industry name)
// occurs in the lowercased query text.
func (e datasetEntry) matches(queryText string) bool {
	if e.Industry != "" && strings.Contains(queryText, strings.ToLower(e.Industry)) {
		return true
	}
	for _, kw := range e.Keywords {
		if kw != "" && strings.Contains(queryText, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
