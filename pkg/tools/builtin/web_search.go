package builtin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/praxislabs/praxis/pkg/models"
	"github.com/praxislabs/praxis/pkg/tools"
)

const (
	searchTimeout  = 30 * time.Second
	searchCacheTTL = 5 * time.Minute
	defaultResults = 10
	maxResults     = 25

	braveEndpoint = "https://api.search.brave.com/res/v1/web/search"
	ddgEndpoint   = "https://html.duckduckgo.com/html/"
)

// SearchResult is one hit returned to the agent.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

type cachedSearch struct {
	results []SearchResult
	expires time.Time
}

// WebSearchTool queries the web. The Brave Search API is the primary
// provider; on any failure (including a missing API key) it falls back to
// scraping DuckDuckGo's HTML results. A short TTL cache deduplicates
// repeated queries within a session.
type WebSearchTool struct {
	client   *http.Client
	braveKey string
	braveURL string
	ddgURL   string

	mu    sync.Mutex
	cache map[string]cachedSearch
}

// NewWebSearchTool creates the web_search tool. The Brave API key is read
// from BRAVE_API_KEY; without it every search uses the scraping fallback.
func NewWebSearchTool() *WebSearchTool {
	return &WebSearchTool{
		client:   &http.Client{Timeout: searchTimeout},
		braveKey: os.Getenv("BRAVE_API_KEY"),
		braveURL: braveEndpoint,
		ddgURL:   ddgEndpoint,
		cache:    make(map[string]cachedSearch),
	}
}

func (t *WebSearchTool) Definition() models.ToolDefinition {
	return models.ToolDefinition{
		Name:        "web_search",
		Description: "Search the web and return result titles, URLs, and snippets.",
		Category:    models.CategoryNetwork,
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "Search query",
				},
				"max_results": map[string]any{
					"type":        "integer",
					"minimum":     1,
					"maximum":     maxResults,
					"description": "Maximum number of results (default 10)",
				},
				"time_filter": map[string]any{
					"type":        "string",
					"enum":        []string{"day", "week", "month", "year"},
					"description": "Restrict results to a recency window",
				},
				"site": map[string]any{
					"type":        "string",
					"description": "Restrict results to one site, e.g. github.com",
				},
			},
			"required": []string{"query"},
		},
	}
}

func (t *WebSearchTool) Execute(ctx context.Context, params map[string]any, _ *tools.AgentContext) (*models.ToolResult, error) {
	var args struct {
		Query      string `json:"query"`
		MaxResults int    `json:"max_results"`
		TimeFilter string `json:"time_filter"`
		Site       string `json:"site"`
	}
	if err := decodeParams(params, &args); err != nil {
		return nil, err
	}
	if args.MaxResults <= 0 {
		args.MaxResults = defaultResults
	}
	if args.MaxResults > maxResults {
		args.MaxResults = maxResults
	}
	query := strings.TrimSpace(args.Query)
	if args.Site != "" {
		query = fmt.Sprintf("%s site:%s", query, args.Site)
	}

	cacheKey := fmt.Sprintf("%s|%d|%s", query, args.MaxResults, args.TimeFilter)
	if results, ok := t.cached(cacheKey); ok {
		return success(map[string]any{"results": results, "cached": true}), nil
	}

	results, primaryErr := t.searchBrave(ctx, query, args.MaxResults, args.TimeFilter)
	if primaryErr != nil {
		slog.Debug("Primary search provider failed, falling back to scraper",
			"error", primaryErr)
		var fallbackErr error
		results, fallbackErr = t.searchDuckDuckGo(ctx, query, args.MaxResults, args.TimeFilter)
		if fallbackErr != nil {
			return nil, fmt.Errorf("web search failed: primary: %v; fallback: %w", primaryErr, fallbackErr)
		}
	}

	t.store(cacheKey, results)
	return success(map[string]any{"results": results, "cached": false}), nil
}

func (t *WebSearchTool) cached(key string) ([]SearchResult, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	entry, ok := t.cache[key]
	if !ok || time.Now().After(entry.expires) {
		delete(t.cache, key)
		return nil, false
	}
	return entry.results, true
}

func (t *WebSearchTool) store(key string, results []SearchResult) {
	t.mu.Lock()
	defer t.mu.Unlock()
	// Lazy sweep keeps the map from growing without a background goroutine.
	now := time.Now()
	for k, e := range t.cache {
		if now.After(e.expires) {
			delete(t.cache, k)
		}
	}
	t.cache[key] = cachedSearch{results: results, expires: now.Add(searchCacheTTL)}
}

// searchBrave queries the Brave Search API.
func (t *WebSearchTool) searchBrave(ctx context.Context, query string, limit int, timeFilter string) ([]SearchResult, error) {
	if t.braveKey == "" {
		return nil, fmt.Errorf("BRAVE_API_KEY not set")
	}
	q := url.Values{}
	q.Set("q", query)
	q.Set("count", fmt.Sprintf("%d", limit))
	switch timeFilter {
	case "day":
		q.Set("freshness", "pd")
	case "week":
		q.Set("freshness", "pw")
	case "month":
		q.Set("freshness", "pm")
	case "year":
		q.Set("freshness", "py")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.braveURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", t.braveKey)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("brave search returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		Web struct {
			Results []struct {
				Title       string `json:"title"`
				URL         string `json:"url"`
				Description string `json:"description"`
			} `json:"results"`
		} `json:"web"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode brave response: %w", err)
	}

	results := make([]SearchResult, 0, len(payload.Web.Results))
	for _, r := range payload.Web.Results {
		results = append(results, SearchResult{Title: r.Title, URL: r.URL, Snippet: r.Description})
		if len(results) >= limit {
			break
		}
	}
	return results, nil
}

// searchDuckDuckGo scrapes the DuckDuckGo HTML results page.
func (t *WebSearchTool) searchDuckDuckGo(ctx context.Context, query string, limit int, timeFilter string) ([]SearchResult, error) {
	form := url.Values{}
	form.Set("q", query)
	switch timeFilter {
	case "day":
		form.Set("df", "d")
	case "week":
		form.Set("df", "w")
	case "month":
		form.Set("df", "m")
	case "year":
		form.Set("df", "y")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.ddgURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) praxis-agent")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo returned %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse duckduckgo html: %w", err)
	}

	results := make([]SearchResult, 0, limit)
	doc.Find("div.result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		link := sel.Find("a.result__a")
		href, _ := link.Attr("href")
		result := SearchResult{
			Title:   strings.TrimSpace(link.Text()),
			URL:     decodeDDGRedirect(href),
			Snippet: strings.TrimSpace(sel.Find(".result__snippet").Text()),
		}
		if result.Title == "" || result.URL == "" {
			return true
		}
		results = append(results, result)
		return len(results) < limit
	})
	if len(results) == 0 {
		return nil, fmt.Errorf("no results parsed from duckduckgo html")
	}
	return results, nil
}

// decodeDDGRedirect unwraps DuckDuckGo's /l/?uddg=<target> redirect links.
func decodeDDGRedirect(href string) string {
	if href == "" {
		return ""
	}
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	if u.Scheme == "" {
		return "https:" + href
	}
	return href
}
