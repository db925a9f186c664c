package handler

import "github.com/vishureddy24/safelens/pkg/news"

type AnalyzeMessageRequest struct {
	Text     string `json:"text"`
	UserID   string `json:"userId"`
	ChatID   string `json:"chatId"`
	Username string `json:"username"`
}

type AnalyzeMessageResponse struct {
	IsFraud    bool    `json:"isFraud"`
	Reason     string  `json:"reason"`
	Confidence float64 `json:"confidence"`
}

type VerifyNewsRequest struct {
	Headline string `json:"headline"`
	Content  string `json:"content"`
}

type VerifyNewsResponse struct {
	Status     string        `json:"status"`
	Confidence int           `json:"confidence"`
	Sources    []news.Source `json:"sources"`
	Reasons    []string      `json:"reasons"`
}

type VerificationRecordResponse struct {
	ID         int64         `json:"id"`
	Headline   string        `json:"headline"`
	Status     string        `json:"status"`
	Confidence int           `json:"confidence"`
	Reasons    []string      `json:"reasons"`
	Sources    []news.Source `json:"sources"`
	CreatedAt  string        `json:"created_at"`
}

type HistoryResponse struct {
	Records []VerificationRecordResponse `json:"records"`
	Total   int                          `json:"total"`
	Limit   int                          `json:"limit"`
	Offset  int                          `json:"offset"`
}

type ArticleResponse struct {
	ID                 int64    `json:"id"`
	Headline           string   `json:"headline"`
	Detail             string   `json:"detail"`
	URL                string   `json:"url"`
	Source             string   `json:"source"`
	Publisher          string   `json:"publisher"`
	PublishedAt        string   `json:"published_at"`
	VerificationStatus string   `json:"verification_status"`
	Confidence         int      `json:"confidence"`
	Symbols            []string `json:"symbols"`
}

type FeedResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}
