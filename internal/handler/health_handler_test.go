package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(ctx context.Context) error {
	return f.err
}

func newTestHealthRouter(checks map[string]Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHealthHandler(checks)
	r.GET("/health", h.GetHealth)
	return r
}

func TestGetHealth_NoStores(t *testing.T) {
	r := newTestHealthRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "healthy", res["status"])
}

func TestGetHealth_Healthy(t *testing.T) {
	r := newTestHealthRouter(map[string]Pinger{
		"database": &fakePinger{},
		"redis":    &fakePinger{},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "healthy", res["status"])
	assert.Equal(t, "connected", res["database"])
	assert.Equal(t, "connected", res["redis"])
}

func TestGetHealth_Unhealthy(t *testing.T) {
	r := newTestHealthRouter(map[string]Pinger{
		"database": &fakePinger{err: errors.New("DB down")},
		"redis":    &fakePinger{},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "unhealthy", res["status"])
	assert.Equal(t, "disconnected", res["database"])
	assert.Equal(t, "connected", res["redis"])
}
