package orchestrator

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/albapepper/footscout/internal/domain"
	"github.com/albapepper/footscout/internal/fetch"
)

// DefaultSite builds URLs against the configured source site base URL.
// The exact path shapes are the source site's own convention; kept here
// rather than in config so a change to them doesn't ripple into every
// caller that just wants a URL for a resolved player.
type DefaultSite struct {
	BaseURL string
}

func (s DefaultSite) StatsURL(externalID string) string {
	return fmt.Sprintf("%s/players/%s/all-competitions", strings.TrimRight(s.BaseURL, "/"), externalID)
}

func (s DefaultSite) MatchlogURL(externalID string, season domain.Season) string {
	return fmt.Sprintf("%s/players/%s/matchlogs/%s/all-competitions", strings.TrimRight(s.BaseURL, "/"), externalID, season.Canonical())
}

// SearchResolver resolves a player name to an external id by fetching the
// source site's search page and taking the first player result.
type SearchResolver struct {
	BaseURL string
}

func (r SearchResolver) Resolve(ctx context.Context, batch *fetch.Batch, name string) (string, error) {
	searchURL := fmt.Sprintf("%s/search/?search=%s", strings.TrimRight(r.BaseURL, "/"), url.QueryEscape(name))

	html, err := batch.Fetch(ctx, searchURL)
	if err != nil {
		return "", fmt.Errorf("fetch search results: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parse search results: %w", err)
	}

	var externalID string
	doc.Find("div.search-item-name a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		id := externalIDFromHref(href)
		if id != "" {
			externalID = id
			return false
		}
		return true
	})

	if externalID == "" {
		return "", fmt.Errorf("no search results for %q", name)
	}
	return externalID, nil
}

// externalIDFromHref extracts the id segment from a player profile link
// of the form "/players/{id}/{slug}".
func externalIDFromHref(href string) string {
	parts := strings.Split(strings.Trim(href, "/"), "/")
	for i, p := range parts {
		if p == "players" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}
