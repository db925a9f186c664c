package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vishureddy24/safelens/internal/model"
	"github.com/vishureddy24/safelens/internal/verify"
)

type NewsVerifier interface {
	Verify(ctx context.Context, headline, content string) verify.VerificationResult
}

type VerificationStore interface {
	SaveRecord(record *model.VerificationRecord) error
	GetRecent(limit, offset int) ([]model.VerificationRecord, error)
	GetTotal() (int, error)
}

type VerificationHandler struct {
	verifier   NewsVerifier
	repository VerificationStore
}

func NewVerificationHandler(verifier NewsVerifier, repository VerificationStore) *VerificationHandler {
	return &VerificationHandler{verifier: verifier, repository: repository}
}

func (h *VerificationHandler) VerifyNews(c *gin.Context) {
	var req VerifyNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Headline == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Headline is required"})
		return
	}

	result := h.verifier.Verify(c.Request.Context(), req.Headline, req.Content)

	record := model.VerificationRecord{
		Headline:   req.Headline,
		Status:     result.Status,
		Confidence: result.Confidence,
		Reasons:    result.Reasons,
		Sources:    result.Sources,
	}
	if err := h.repository.SaveRecord(&record); err != nil {
		// History is best-effort; the verdict is still returned.
		slog.Error("error saving verification record", "error", err, "headline", req.Headline)
	}

	c.JSON(http.StatusOK, VerifyNewsResponse{
		Status:     result.Status,
		Confidence: result.Confidence,
		Sources:    result.Sources,
		Reasons:    result.Reasons,
	})
}

func (h *VerificationHandler) GetHistory(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	records, err := h.repository.GetRecent(limit, offset)
	if err != nil {
		slog.Error("error fetching verification history", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.GetTotal()
	if err != nil {
		slog.Error("error fetching verification total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	recordRes := make([]VerificationRecordResponse, 0, len(records))
	for _, record := range records {
		recordRes = append(recordRes, VerificationRecordResponse{
			ID:         record.ID,
			Headline:   record.Headline,
			Status:     record.Status,
			Confidence: record.Confidence,
			Reasons:    record.Reasons,
			Sources:    record.Sources,
			CreatedAt:  record.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, HistoryResponse{
		Records: recordRes,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	})
}
