package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"newsagent/internal/model"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeDigestStore struct {
	digests []model.Digest
	total   int
	limit   int
	offset  int
	err     error
}

func (f *fakeDigestStore) GetDigests(ctx context.Context, limit, offset int) ([]model.Digest, error) {
	f.limit = limit
	f.offset = offset
	return f.digests, f.err
}

func (f *fakeDigestStore) GetDigestTotal(ctx context.Context) (int, error) {
	return f.total, f.err
}

func newTestDigestRouter(store DigestStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewDigestHandler(store)
	r.GET("/digests", h.GetDigests)
	return r
}

func TestGetDigests_DBError(t *testing.T) {
	store := &fakeDigestStore{err: errors.New("DB down")}
	r := newTestDigestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/digests", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetDigests_NotConfigured(t *testing.T) {
	r := newTestDigestRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/digests", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetDigests_Empty(t *testing.T) {
	store := &fakeDigestStore{}
	r := newTestDigestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/digests", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res DigestsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 0, len(res.Digests))
	assert.Equal(t, 0, res.Total)
	assert.Equal(t, 10, res.Limit)
	assert.Equal(t, 0, res.Offset)
}

func TestGetDigests_WithResults(t *testing.T) {
	now := time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC)
	store := &fakeDigestStore{
		digests: []model.Digest{
			{
				ID:        2,
				Date:      "2024-01-15",
				Topics:    []string{"elections", "economy"},
				Headline:  "Economy Sways Vote",
				Summary:   "Latest summary",
				Articles:  []model.Article{{Title: "Polls Open", Source: "The Hindu", Date: "2024-01-15"}},
				ModelUsed: "gemini-1.5-pro",
				CreatedAt: now,
			},
			{
				ID:        1,
				Date:      "2024-01-14",
				Headline:  "Rains Lash Coast",
				Summary:   "Older summary",
				CreatedAt: now.Add(-24 * time.Hour),
			},
		},
		total: 2,
	}
	r := newTestDigestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/digests?limit=500&offset=-3", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 100, store.limit)
	assert.Equal(t, 0, store.offset)

	var res DigestsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 2, len(res.Digests))

	latest := res.Digests[0]
	assert.Equal(t, int64(2), latest.ID)
	assert.Equal(t, "Economy Sways Vote", latest.Headline)
	assert.Equal(t, []string{"elections", "economy"}, latest.Topics)
	assert.Equal(t, 1, len(latest.Articles))
	assert.Equal(t, "Polls Open", latest.Articles[0].Title)
	assert.Equal(t, "2024-01-15T09:30:00Z", latest.CreatedAt)

	assert.Equal(t, "Older summary", res.Digests[1].Summary)
	assert.Equal(t, 0, len(res.Digests[1].Topics))
}

func TestGetDigests_InvalidLimitUsesDefault(t *testing.T) {
	store := &fakeDigestStore{}
	r := newTestDigestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/digests?limit=abc&offset=5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, store.limit)
	assert.Equal(t, 5, store.offset)
}
