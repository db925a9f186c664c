package model

import (
	"time"

	"github.com/vishureddy24/safelens/pkg/news"
)

// VerificationRecord is a persisted outcome of a headline verification,
// either for a fetched article or an ad hoc dashboard request.
type VerificationRecord struct {
	ID         int64
	ArticleID  int64
	Headline   string
	Status     string
	Confidence int
	Reasons    []string
	Sources    []news.Source
	CreatedAt  time.Time
}
