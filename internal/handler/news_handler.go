package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vishureddy24/safelens/internal/model"
)

type ArticleStore interface {
	GetVerifiedFeed(limit, offset int) ([]model.FeedArticle, error)
	GetVerifiedFeedTotal() (int, error)
	GetSymbolsByArticleIDs(ids []int64) (map[int64][]string, error)
}

type NewsHandler struct {
	repository ArticleStore
}

func NewNewsHandler(repository ArticleStore) *NewsHandler {
	return &NewsHandler{repository: repository}
}

func (h *NewsHandler) GetFeed(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	articles, err := h.repository.GetVerifiedFeed(limit, offset)
	if err != nil {
		slog.Error("error fetching news feed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.GetVerifiedFeedTotal()
	if err != nil {
		slog.Error("error fetching news feed total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var ids []int64
	for _, a := range articles {
		ids = append(ids, a.ID)
	}

	symbolMap, err := h.repository.GetSymbolsByArticleIDs(ids)
	if err != nil {
		slog.Error("error fetching symbols", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	articleRes := make([]ArticleResponse, 0, len(articles))
	for _, a := range articles {
		symbols := symbolMap[a.ID]
		if symbols == nil {
			symbols = []string{}
		}

		articleRes = append(articleRes, ArticleResponse{
			ID:                 a.ID,
			Headline:           a.Headline,
			Detail:             a.Detail,
			URL:                a.URL,
			Source:             a.Source,
			Publisher:          a.Publisher,
			PublishedAt:        a.PublishedAt.Format(time.RFC3339),
			VerificationStatus: a.VerificationStatus,
			Confidence:         a.Confidence,
			Symbols:            symbols,
		})
	}

	c.JSON(http.StatusOK, FeedResponse{
		Articles: articleRes,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	})
}

func (h *NewsHandler) GetHealth(c *gin.Context) {
	_, err := h.repository.GetVerifiedFeedTotal()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
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
