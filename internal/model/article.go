package model

import "time"

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

type Article struct {
	ID          int64
	Headline    string
	Detail      string
	URL         string
	Source      string
	Publisher   string
	PublishedAt time.Time
	FetchedAt   time.Time
	ExternalID  string
	Status      string
}

// FeedArticle is an article joined with its verification verdict for the
// dashboard feed.
type FeedArticle struct {
	ID                 int64
	Headline           string
	Detail             string
	URL                string
	Source             string
	Publisher          string
	PublishedAt        time.Time
	VerificationStatus string
	Confidence         int
}

type ArticleSymbol struct {
	ID        int64
	ArticleID int64
	Symbol    string
	CreatedAt time.Time
}

type ProcessingError struct {
	ID           int64
	ArticleID    int64
	ErrorMessage string
	ErrorType    string
	AttemptCount int
	CreatedAt    time.Time
}
