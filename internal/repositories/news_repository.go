package repositories

import (
	"database/sql"
	"time"

	"novaapp/internal/models"
)

type NewsRepository interface {
	Create(item *models.News) error
	ListAll() ([]*models.News, error)
	// GetByNewsID looks up by the public UUID, (nil, nil) when absent.
	GetByNewsID(newsID string) (*models.News, error)
	Update(newsID, name, description string, updatedAt time.Time) error
	Delete(newsID string) error
}

type newsRepository struct {
	DB *sql.DB
}

func NewNewsRepository(db *sql.DB) NewsRepository {
	return &newsRepository{DB: db}
}

func (r *newsRepository) Create(item *models.News) error {
	const q = `
		INSERT INTO news (news_id, name, description, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRow(q, item.NewsID, item.Name, item.Description, item.ImageURL, item.CreatedAt).Scan(&item.ID)
}

func (r *newsRepository) ListAll() ([]*models.News, error) {
	const q = `
		SELECT id, news_id, name, description, image_url, created_at, updated_at
		FROM news
		ORDER BY created_at DESC
	`
	rows, err := r.DB.Query(q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.News
	for rows.Next() {
		item, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

func (r *newsRepository) GetByNewsID(newsID string) (*models.News, error) {
	const q = `
		SELECT id, news_id, name, description, image_url, created_at, updated_at
		FROM news
		WHERE news_id = $1
	`
	row := r.DB.QueryRow(q, newsID)
	item, err := scanNews(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *newsRepository) Update(newsID, name, description string, updatedAt time.Time) error {
	const q = `
		UPDATE news
		SET name = COALESCE(NULLIF($1, ''), name),
		    description = COALESCE(NULLIF($2, ''), description),
		    updated_at = $3
		WHERE news_id = $4
	`
	_, err := r.DB.Exec(q, name, description, updatedAt, newsID)
	return err
}

func (r *newsRepository) Delete(newsID string) error {
	const q = `DELETE FROM news WHERE news_id = $1`
	_, err := r.DB.Exec(q, newsID)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanNews(row rowScanner) (*models.News, error) {
	var (
		item      models.News
		updatedAt sql.NullTime
	)
	if err := row.Scan(&item.ID, &item.NewsID, &item.Name, &item.Description, &item.ImageURL, &item.CreatedAt, &updatedAt); err != nil {
		return nil, err
	}
	if updatedAt.Valid {
		item.UpdatedAt = &updatedAt.Time
	}
	return &item, nil
}
