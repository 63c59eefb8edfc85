package handler

import (
	"context"
	"log/slog"
	"net/http"
	"newsagent/internal/model"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type DigestStore interface {
	GetDigests(ctx context.Context, limit, offset int) ([]model.Digest, error)
	GetDigestTotal(ctx context.Context) (int, error)
}

type DigestHandler struct {
	repository DigestStore
}

// NewDigestHandler accepts a nil store when no archive is configured.
func NewDigestHandler(repository DigestStore) *DigestHandler {
	return &DigestHandler{repository: repository}
}

func toDigestResponse(d model.Digest) DigestResponse {
	articles := make([]ArticleResponse, len(d.Articles))
	for i, a := range d.Articles {
		articles[i] = ArticleResponse{
			Title:   a.Title,
			Source:  a.Source,
			Snippet: a.Snippet,
			Date:    a.Date,
			URL:     a.URL,
		}
	}

	topics := d.Topics
	if topics == nil {
		topics = []string{}
	}

	return DigestResponse{
		ID:        d.ID,
		Date:      d.Date,
		Topics:    topics,
		Headline:  d.Headline,
		Summary:   d.Summary,
		Articles:  articles,
		ModelUsed: d.ModelUsed,
		CreatedAt: d.CreatedAt.Format(time.RFC3339),
	}
}

func (h *DigestHandler) GetDigests(c *gin.Context) {
	if h.repository == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Detail: "Digest archive not configured"})
		return
	}

	limit := getQueryLimit(c)
	offset := getQueryOffset(c)
	ctx := c.Request.Context()

	digests, err := h.repository.GetDigests(ctx, limit, offset)
	if err != nil {
		slog.Error("error fetching digests", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Database error"})
		return
	}

	total, err := h.repository.GetDigestTotal(ctx)
	if err != nil {
		slog.Error("error fetching digest total", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Database error"})
		return
	}

	res := DigestsResponse{
		Digests: make([]DigestResponse, 0, len(digests)),
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}
	for _, d := range digests {
		res.Digests = append(res.Digests, toDigestResponse(d))
	}

	c.JSON(http.StatusOK, res)
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)

	if param == "" {
		return defaultValue
	}

	parsedValue, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}

	return parsedValue
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 10
		maxLimit     = 100
	)

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}

func getQueryOffset(c *gin.Context) int {
	offset := getQueryInt("offset", 0, c)
	if offset < 0 {
		slog.Warn("invalid query parameter, using default", "param", "offset", "value", offset, "default", 0)
		return 0
	}
	return offset
}
