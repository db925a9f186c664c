package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/vishureddy24/safelens/db"
	"github.com/vishureddy24/safelens/internal/model"
	"github.com/vishureddy24/safelens/internal/repository"
	"github.com/vishureddy24/safelens/internal/verify"
	"github.com/vishureddy24/safelens/pkg/news"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	const maxRetries = 3

	err := db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	err = db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	articleRepository := repository.NewArticleRepository(db.DB)
	verificationRepository := repository.NewVerificationRepository(db.DB)

	verifier := verify.NewVerifier(news.NewNewsAPIClient(os.Getenv("NEWS_API_KEY")))

	for {
		id, err := db.PopFromQueue(db.VerifyQueueKey, 0)
		if err != nil {
			slog.Error("error popping from Redis queue", "error", err)
			break
		}

		articleID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			slog.Error("invalid article id in queue", "id", id, "error", err)
			continue
		}

		errorCount, err := articleRepository.GetErrorCount(articleID)
		if err != nil {
			slog.Error("error getting error count", "error", err, "article_id", articleID)
			continue
		}

		if errorCount >= maxRetries {
			slog.Warn("article exceeded max retries, marking as failed", "article_id", articleID, "error_count", errorCount)
			articleRepository.UpdateStatus(articleID, model.StatusFailed)
			db.PushToQueue(db.DeadLetterKey, id)
			continue
		}

		article, err := articleRepository.GetByID(articleID)
		if err != nil {
			slog.Error("error getting article from DB", "error", err, "article_id", articleID)
			continue
		}

		if article == nil {
			slog.Warn("article not found in DB", "article_id", articleID)
			continue
		}

		result := verifier.Verify(context.Background(), article.Headline, article.Detail)

		record := model.VerificationRecord{
			Headline:   article.Headline,
			Status:     result.Status,
			Confidence: result.Confidence,
			Reasons:    result.Reasons,
			Sources:    result.Sources,
		}

		err = verificationRepository.SaveRecordAndComplete(&record, article.ID)
		if err != nil {
			slog.Error("error saving verification record", "error", err, "article_id", articleID)

			articleRepository.SaveError(articleID, err.Error(), "db_error")

			db.PushToQueue(db.VerifyQueueKey, strconv.FormatInt(articleID, 10))

			time.Sleep(5 * time.Second)
			continue
		}

		slog.Info("article verified", "article_id", article.ID, "status", result.Status, "confidence", result.Confidence)
	}

}
