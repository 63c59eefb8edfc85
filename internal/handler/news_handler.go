package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"newsagent/internal/agent"
	"newsagent/internal/model"

	"github.com/gin-gonic/gin"
)

const welcomeMessage = "Welcome to the News Agent API"

type NewsFetcher interface {
	FetchNews(ctx context.Context, q model.NewsQuery) (*model.NewsResult, error)
}

type NewsHandler struct {
	fetcher NewsFetcher
}

func NewNewsHandler(fetcher NewsFetcher) *NewsHandler {
	return &NewsHandler{fetcher: fetcher}
}

func (h *NewsHandler) GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: welcomeMessage})
}

func (h *NewsHandler) FetchNews(c *gin.Context) {
	requestID := GetRequestID(c)

	var req FetchNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid fetch-news body", "error", err, "request_id", requestID)
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Invalid request body"})
		return
	}

	if req.Topics == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "topics is required"})
		return
	}

	slog.Debug("received fetch-news request", "date", req.Date, "topics", req.Topics, "request_id", requestID)

	res, err := h.fetcher.FetchNews(c.Request.Context(), model.NewsQuery{
		Date:   req.Date,
		Topics: req.Topics,
	})
	if err != nil {
		status, detail := errorStatus(err)
		if status >= http.StatusInternalServerError {
			slog.Error("error fetching news", "error", err, "request_id", requestID)
		} else {
			slog.Warn("fetch-news rejected", "error", err, "request_id", requestID)
		}
		c.JSON(status, ErrorResponse{Detail: detail})
		return
	}

	slog.Info("fetch-news served", "date", req.Date, "articles", len(res.Articles), "request_id", requestID)
	c.JSON(http.StatusOK, res)
}

func errorStatus(err error) (int, string) {
	var aerr *agent.Error
	if !errors.As(err, &aerr) {
		return http.StatusInternalServerError, "Error fetching news: " + err.Error()
	}

	switch aerr.Kind {
	case agent.KindInvalidInput, agent.KindUpstream:
		return http.StatusBadRequest, aerr.Message
	case agent.KindMissingConfiguration:
		return http.StatusInternalServerError, aerr.Message
	default:
		return http.StatusInternalServerError, "Error fetching news: " + aerr.Message
	}
}
