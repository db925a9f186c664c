package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/vishureddy24/safelens/internal/analysis"
	"github.com/vishureddy24/safelens/internal/bot"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN environment variable is not set")
	}

	b, err := bot.New(token, analysis.NewAnalyzer())
	if err != nil {
		log.Fatalf("error creating bot: %v", err)
	}

	if err := b.Start(); err != nil {
		log.Fatalf("error running bot: %v", err)
	}
}
