package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/vishureddy24/safelens/internal/model"
	"github.com/vishureddy24/safelens/pkg/news"
)

type VerificationRepository struct {
	db *sql.DB
}

func NewVerificationRepository(db *sql.DB) *VerificationRepository {
	return &VerificationRepository{db: db}
}

func (r *VerificationRepository) SaveRecord(record *model.VerificationRecord) error {
	reasons, sources, err := marshalRecord(record)
	if err != nil {
		return err
	}

	return r.db.QueryRow(`
		INSERT INTO verification(article_id, headline, status, confidence, reasons, sources)
		VALUES($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, nullableID(record.ArticleID), record.Headline, record.Status, record.Confidence, reasons, sources).Scan(&record.ID)
}

// SaveRecordAndComplete stores the verdict and marks the source article
// completed in one transaction.
func (r *VerificationRepository) SaveRecordAndComplete(record *model.VerificationRecord, articleID int64) error {
	reasons, sources, err := marshalRecord(record)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO verification(article_id, headline, status, confidence, reasons, sources)
		VALUES($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, articleID, record.Headline, record.Status, record.Confidence, reasons, sources).Scan(&record.ID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		UPDATE article SET status = $1 WHERE id = $2
	`, model.StatusCompleted, articleID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *VerificationRepository) GetRecent(limit, offset int) ([]model.VerificationRecord, error) {
	rows, err := r.db.Query(`
		SELECT id, COALESCE(article_id, 0), headline, status, confidence, reasons, sources, created_at
		FROM verification
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.VerificationRecord
	for rows.Next() {
		var record model.VerificationRecord
		var reasons, sources []byte
		err := rows.Scan(&record.ID, &record.ArticleID, &record.Headline, &record.Status, &record.Confidence, &reasons, &sources, &record.CreatedAt)
		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal(reasons, &record.Reasons); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(sources, &record.Sources); err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *VerificationRepository) GetTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM verification
	`).Scan(&total)
	return total, err
}

func marshalRecord(record *model.VerificationRecord) ([]byte, []byte, error) {
	if record.Reasons == nil {
		record.Reasons = []string{}
	}
	if record.Sources == nil {
		record.Sources = []news.Source{}
	}

	reasons, err := json.Marshal(record.Reasons)
	if err != nil {
		return nil, nil, err
	}

	sources, err := json.Marshal(record.Sources)
	if err != nil {
		return nil, nil, err
	}

	return reasons, sources, nil
}

func nullableID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id != 0}
}
