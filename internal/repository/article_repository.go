package repository

import (
	"database/sql"

	"github.com/lib/pq"
	"github.com/vishureddy24/safelens/internal/model"
)

type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// SaveOriginalWithSymbols stores a fetched article and its ticker symbols.
// Returns false when the URL was already seen.
func (r *ArticleRepository) SaveOriginalWithSymbols(article *model.Article, symbols []string) (bool, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRow(`
		INSERT INTO article(headline, detail, url, source, publisher, published_at, external_id, status)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (url) DO NOTHING
		RETURNING id
	`, article.Headline, article.Detail, article.URL, article.Source, article.Publisher, article.PublishedAt, article.ExternalID, model.StatusPending).Scan(&id)

	if err == sql.ErrNoRows {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	article.ID = id

	if len(symbols) > 0 {
		_, err = tx.Exec(`
			INSERT INTO article_symbol(article_id, symbol)
			SELECT $1, unnest($2::text[])
		`, id, pq.Array(symbols))
		if err != nil {
			return false, err
		}
	}

	return true, tx.Commit()
}

func (r *ArticleRepository) GetByID(id int64) (*model.Article, error) {
	var a model.Article
	err := r.db.QueryRow(`
		SELECT id, headline, detail, url, source, publisher, published_at, fetched_at, external_id, status
		FROM article
		WHERE id = $1
	`, id).Scan(&a.ID, &a.Headline, &a.Detail, &a.URL, &a.Source, &a.Publisher, &a.PublishedAt, &a.FetchedAt, &a.ExternalID, &a.Status)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &a, nil
}

func (r *ArticleRepository) UpdateStatus(id int64, status string) error {
	_, err := r.db.Exec(`
		UPDATE article SET status = $1 WHERE id = $2
	`, status, id)
	return err
}

func (r *ArticleRepository) GetErrorCount(id int64) (int, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM processing_error WHERE article_id = $1
	`, id).Scan(&count)
	return count, err
}

func (r *ArticleRepository) SaveError(id int64, message, errorType string) error {
	_, err := r.db.Exec(`
		INSERT INTO processing_error(article_id, error_message, error_type)
		VALUES($1, $2, $3)
	`, id, message, errorType)
	return err
}

// GetVerifiedFeed returns articles that have a stored verification verdict,
// newest first.
func (r *ArticleRepository) GetVerifiedFeed(limit, offset int) ([]model.FeedArticle, error) {
	rows, err := r.db.Query(`
		SELECT a.id, a.headline, a.detail, a.url, a.source, a.publisher, a.published_at, v.status, v.confidence
		FROM article a
		JOIN verification v ON v.article_id = a.id
		ORDER BY a.published_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []model.FeedArticle
	for rows.Next() {
		var a model.FeedArticle
		err := rows.Scan(&a.ID, &a.Headline, &a.Detail, &a.URL, &a.Source, &a.Publisher, &a.PublishedAt, &a.VerificationStatus, &a.Confidence)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}

func (r *ArticleRepository) GetVerifiedFeedTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM article a JOIN verification v ON v.article_id = a.id
	`).Scan(&total)
	return total, err
}

func (r *ArticleRepository) GetSymbolsByArticleIDs(ids []int64) (map[int64][]string, error) {
	symbolMap := make(map[int64][]string)
	if len(ids) == 0 {
		return symbolMap, nil
	}

	rows, err := r.db.Query(`
		SELECT article_id, symbol FROM article_symbol WHERE article_id = ANY($1)
	`, pq.Array(ids))

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var articleID int64
		var symbol string
		if err := rows.Scan(&articleID, &symbol); err != nil {
			return nil, err
		}
		symbolMap[articleID] = append(symbolMap[articleID], symbol)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return symbolMap, nil
}
