package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vishureddy24/safelens/internal/analysis"
)

type MessageScorer interface {
	Analyze(text string) analysis.Result
}

type AnalysisHandler struct {
	scorer MessageScorer
}

func NewAnalysisHandler(scorer MessageScorer) *AnalysisHandler {
	return &AnalysisHandler{scorer: scorer}
}

func (h *AnalysisHandler) AnalyzeMessage(c *gin.Context) {
	var req AnalyzeMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text is required for analysis"})
		return
	}

	result := h.scorer.Analyze(req.Text)

	slog.Info("message analyzed", "user_id", req.UserID, "is_fraud", result.IsFraud, "confidence", result.Confidence)

	c.JSON(http.StatusOK, AnalyzeMessageResponse{
		IsFraud:    result.IsFraud,
		Reason:     result.Reason,
		Confidence: result.Confidence,
	})
}
