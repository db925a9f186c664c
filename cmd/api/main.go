package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/vishureddy24/safelens/db"
	"github.com/vishureddy24/safelens/internal/analysis"
	"github.com/vishureddy24/safelens/internal/handler"
	"github.com/vishureddy24/safelens/internal/repository"
	"github.com/vishureddy24/safelens/internal/verify"
	"github.com/vishureddy24/safelens/pkg/news"
)

func main() {

	godotenv.Load()

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	articleRepo := repository.NewArticleRepository(db.DB)
	newsHandler := handler.NewNewsHandler(articleRepo)

	analysisHandler := handler.NewAnalysisHandler(analysis.NewAnalyzer())

	verificationRepo := repository.NewVerificationRepository(db.DB)
	verifier := verify.NewVerifier(news.NewNewsAPIClient(os.Getenv("NEWS_API_KEY")))
	verificationHandler := handler.NewVerificationHandler(verifier, verificationRepo)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:5173"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.POST("/api/analysis", analysisHandler.AnalyzeMessage)
	r.POST("/api/news-verification/verify", verificationHandler.VerifyNews)
	r.GET("/api/news-verification/history", verificationHandler.GetHistory)
	r.GET("/api/news", newsHandler.GetFeed)
	r.GET("/health", newsHandler.GetHealth)

	if key := os.Getenv("FINNHUB_API_KEY"); key != "" {
		stockHandler := handler.NewStockHandler(news.NewFinnhubClient(key))
		r.GET("/api/stocks/quote", stockHandler.GetQuote)
	} else {
		slog.Warn("FINNHUB_API_KEY not set, stock quotes disabled")
	}

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	err = r.Run(addr)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
