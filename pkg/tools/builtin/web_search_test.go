package builtin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ddgPage = `<html><body>
<div class="result">
  <a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fone&rut=abc">First Result</a>
  <a class="result__snippet">First snippet text</a>
</div>
<div class="result">
  <a class="result__a" href="https://example.com/two">Second Result</a>
  <a class="result__snippet">Second snippet</a>
</div>
</body></html>`

func testSearchTool(braveHandler, ddgHandler http.HandlerFunc) (*WebSearchTool, func()) {
	brave := httptest.NewServer(braveHandler)
	ddg := httptest.NewServer(ddgHandler)
	tool := NewWebSearchTool()
	tool.braveKey = "test-key"
	tool.braveURL = brave.URL
	tool.ddgURL = ddg.URL
	return tool, func() {
		brave.Close()
		ddg.Close()
	}
}

func TestWebSearchPrimaryProvider(t *testing.T) {
	tool, cleanup := testSearchTool(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test-key", r.Header.Get("X-Subscription-Token"))
			assert.Equal(t, "pd", r.URL.Query().Get("freshness"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"web":{"results":[{"title":"Hit","url":"https://example.com","description":"snippet"}]}}`))
		},
		func(w http.ResponseWriter, r *http.Request) {
			t.Error("fallback must not be called when primary succeeds")
		},
	)
	defer cleanup()

	res, err := tool.Execute(context.Background(), map[string]any{"query": "golang", "time_filter": "day"}, nil)
	require.NoError(t, err)
	data := resultData(t, res)
	results := data["results"].([]SearchResult)
	require.Len(t, results, 1)
	assert.Equal(t, "Hit", results[0].Title)
	assert.Equal(t, false, data["cached"])
}

func TestWebSearchFallsBackToScraper(t *testing.T) {
	tool, cleanup := testSearchTool(
		func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		},
		func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "golang concurrency", r.Form.Get("q"))
			w.Write([]byte(ddgPage))
		},
	)
	defer cleanup()

	res, err := tool.Execute(context.Background(), map[string]any{"query": "golang concurrency"}, nil)
	require.NoError(t, err)
	data := resultData(t, res)
	results := data["results"].([]SearchResult)
	require.Len(t, results, 2)
	assert.Equal(t, "First Result", results[0].Title)
	assert.Equal(t, "https://example.com/one", results[0].URL, "redirect links must be unwrapped")
	assert.Equal(t, "First snippet text", results[0].Snippet)
	assert.Equal(t, "https://example.com/two", results[1].URL)
}

func TestWebSearchMissingKeyUsesFallback(t *testing.T) {
	tool, cleanup := testSearchTool(
		func(w http.ResponseWriter, r *http.Request) {
			t.Error("primary must not be called without a key")
		},
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(ddgPage))
		},
	)
	defer cleanup()
	tool.braveKey = ""

	res, err := tool.Execute(context.Background(), map[string]any{"query": "x"}, nil)
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestWebSearchCacheDeduplicates(t *testing.T) {
	var calls atomic.Int32
	tool, cleanup := testSearchTool(
		func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.Write([]byte(`{"web":{"results":[{"title":"A","url":"https://a","description":"d"}]}}`))
		},
		func(w http.ResponseWriter, r *http.Request) {},
	)
	defer cleanup()
	ctx := context.Background()

	_, err := tool.Execute(ctx, map[string]any{"query": "same", "max_results": 5}, nil)
	require.NoError(t, err)
	res, err := tool.Execute(ctx, map[string]any{"query": "same", "max_results": 5}, nil)
	require.NoError(t, err)
	data := resultData(t, res)
	assert.Equal(t, true, data["cached"])
	assert.Equal(t, int32(1), calls.Load())

	// Different max_results is a different cache key.
	_, err = tool.Execute(ctx, map[string]any{"query": "same", "max_results": 7}, nil)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestWebSearchBothProvidersFail(t *testing.T) {
	tool, cleanup := testSearchTool(
		func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusInternalServerError)
		},
		func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusServiceUnavailable)
		},
	)
	defer cleanup()

	_, err := tool.Execute(context.Background(), map[string]any{"query": "x"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "web search failed")
}

func TestDecodeDDGRedirect(t *testing.T) {
	assert.Equal(t, "https://example.com/page",
		decodeDDGRedirect("//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fpage&rut=x"))
	assert.Equal(t, "https://direct.example.com", decodeDDGRedirect("https://direct.example.com"))
	assert.Equal(t, "", decodeDDGRedirect(""))
}
