// Copyright Venturely Inc., 2026. All rights reserved.

// Package source adapts external read-only data providers to a uniform
// client interface. Each client queries one endpoint and parses one response
// format; the aggregator never inspects source-specific shapes.
package source

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"github.com/venturely/intel-engine/internal/httputil"
	"github.com/venturely/intel-engine/pkg/types"
)

// Client looks up one external data source. Implementations follow the
// Strategy pattern: encyclopedia, news feed, and static-dataset clients all
// return the same normalized SourceResult.
type Client interface {
	Name() string
	Lookup(ctx context.Context, q types.ResearchQuery, cfg types.ResearchConfig) ([]types.SourceResult, error)
}

// do issues the request through the client's breaker when one is set,
// otherwise straight through the retry helper.
func do(ctx context.Context, b *httputil.Breaker, client *http.Client, req *http.Request) (*http.Response, error) {
	if b != nil {
		return b.Do(ctx, client, req, 0)
	}
	return httputil.DoWithRetry(ctx, client, req, 0)
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// stripTags removes HTML markup from provider snippets and collapses the
// remaining whitespace.
func stripTags(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "&quot;", `"`)
	s = strings.ReplaceAll(s, "&amp;", "&")
	s = strings.ReplaceAll(s, "&#39;", "'")
	return strings.Join(strings.Fields(s), " ")
}
