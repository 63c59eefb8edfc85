package news

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func newTestSerpServer(t *testing.T, status int, payload interface{}, seen *url.Values) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			*seen = r.URL.Query()
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSerpAPISearch(t *testing.T) {
	payload := map[string]interface{}{
		"search_metadata": map[string]interface{}{"status": "Success"},
		"news_results": []map[string]interface{}{
			{
				"position": 1,
				"title":    "Polls Open Across the Country",
				"source":   "The Hindu",
				"snippet":  "Voters queued from early morning.",
				"date":     "2 hours ago",
				"link":     "https://example.com/polls",
			},
			{
				"position": 2,
				"title":    "Markets Steady Ahead of Results",
			},
		},
	}

	var seen url.Values
	srv := newTestSerpServer(t, http.StatusOK, payload, &seen)
	client := NewSerpAPIClient("test-key", srv.URL, 5*time.Second)

	results, err := client.Search(context.Background(), "elections economy 2024-01-15", 15)

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(results))

	assert.Equal(t, "google", seen.Get("engine"))
	assert.Equal(t, "elections economy 2024-01-15", seen.Get("q"))
	assert.Equal(t, "nws", seen.Get("tbm"))
	assert.Equal(t, "15", seen.Get("num"))
	assert.Equal(t, "test-key", seen.Get("api_key"))

	r := results[0]
	assert.Equal(t, "Polls Open Across the Country", r.Title)
	assert.Equal(t, "The Hindu", r.Source)
	assert.Equal(t, "Voters queued from early morning.", r.Snippet)
	assert.Equal(t, "2 hours ago", r.Date)
	assert.Equal(t, "https://example.com/polls", r.Link)

	assert.Equal(t, "Markets Steady Ahead of Results", results[1].Title)
	assert.Equal(t, "", results[1].Source)
	assert.Equal(t, "", results[1].Date)
}

func TestSerpAPISearchSourceObject(t *testing.T) {
	payload := map[string]interface{}{
		"news_results": []map[string]interface{}{
			{
				"title":  "Budget Session Begins",
				"source": map[string]interface{}{"name": "Reuters", "icon": "https://example.com/icon.png"},
			},
		},
	}

	srv := newTestSerpServer(t, http.StatusOK, payload, nil)
	client := NewSerpAPIClient("test-key", srv.URL, 5*time.Second)

	results, err := client.Search(context.Background(), "budget 2024-02-01", 15)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(results))
	assert.Equal(t, "Reuters", results[0].Source)
}

func TestSerpAPISearchNoResultsField(t *testing.T) {
	payload := map[string]interface{}{
		"search_metadata": map[string]interface{}{"status": "Success"},
	}

	srv := newTestSerpServer(t, http.StatusOK, payload, nil)
	client := NewSerpAPIClient("test-key", srv.URL, 5*time.Second)

	results, err := client.Search(context.Background(), "nothing 2024-01-15", 15)

	assert.Equal(t, nil, err)
	assert.Equal(t, true, results == nil)
}

func TestSerpAPISearchEmptyResults(t *testing.T) {
	payload := map[string]interface{}{
		"news_results": []map[string]interface{}{},
	}

	srv := newTestSerpServer(t, http.StatusOK, payload, nil)
	client := NewSerpAPIClient("test-key", srv.URL, 5*time.Second)

	results, err := client.Search(context.Background(), "quiet 2024-01-15", 15)

	assert.Equal(t, nil, err)
	assert.Equal(t, false, results == nil)
	assert.Equal(t, 0, len(results))
}

func TestSerpAPISearchProviderError(t *testing.T) {
	payload := map[string]interface{}{
		"error": "Invalid API key. Your API key should be here: https://serpapi.com/manage-api-key",
	}

	srv := newTestSerpServer(t, http.StatusUnauthorized, payload, nil)
	client := NewSerpAPIClient("bad-key", srv.URL, 5*time.Second)

	_, err := client.Search(context.Background(), "elections 2024-01-15", 15)

	var perr *ProviderError
	assert.Equal(t, true, errors.As(err, &perr))
	assert.Equal(t, "Invalid API key. Your API key should be here: https://serpapi.com/manage-api-key", perr.Message)
}

func TestSerpAPISearchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	client := NewSerpAPIClient("test-key", srv.URL, 5*time.Second)

	_, err := client.Search(context.Background(), "elections 2024-01-15", 15)

	assert.NotEqual(t, nil, err)
	var perr *ProviderError
	assert.Equal(t, false, errors.As(err, &perr))
}

func TestSerpAPISearchEmptyKey(t *testing.T) {
	client := NewSerpAPIClient("", "", time.Second)

	_, err := client.Search(context.Background(), "elections 2024-01-15", 15)

	assert.Equal(t, ErrEmptyKey, err)
}

func TestResponseSnippet(t *testing.T) {
	assert.Equal(t, "<empty>", responseSnippet([]byte("   ")))
	assert.Equal(t, "short", responseSnippet([]byte(" short ")))

	long := make([]byte, 300)
	for i := range long {
		long[i] = 'a'
	}
	got := responseSnippet(long)
	assert.Equal(t, 259, len(got))
}
