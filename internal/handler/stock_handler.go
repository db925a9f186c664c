package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vishureddy24/safelens/pkg/news"
)

type QuoteProvider interface {
	Quote(ctx context.Context, symbol string) (*news.Quote, error)
}

type StockHandler struct {
	quotes QuoteProvider
}

func NewStockHandler(quotes QuoteProvider) *StockHandler {
	return &StockHandler{quotes: quotes}
}

func (h *StockHandler) GetQuote(c *gin.Context) {
	symbol := strings.ToUpper(strings.TrimSpace(c.Query("symbol")))
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Symbol is required"})
		return
	}

	quote, err := h.quotes.Quote(c.Request.Context(), symbol)
	if err != nil {
		slog.Error("error fetching stock quote", "error", err, "symbol", symbol)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch stock quote"})
		return
	}

	c.JSON(http.StatusOK, quote)
}
