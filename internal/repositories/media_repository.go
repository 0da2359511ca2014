package repositories

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	"novaapp/internal/models"
)

type MediaRepository interface {
	// GetByEmail returns (nil, nil) when the user has no media record yet.
	GetByEmail(email string) (*models.MediaLibrary, error)

	// AppendFile adds a URL to either the images or videos array, creating
	// the record on first upload. kind is "image" or "video".
	AppendFile(email, kind, url string) error

	SetQRCode(email, url string, updatedAt time.Time) error
}

type mediaRepository struct {
	DB *sql.DB
}

func NewMediaRepository(db *sql.DB) MediaRepository {
	return &mediaRepository{DB: db}
}

func (r *mediaRepository) GetByEmail(email string) (*models.MediaLibrary, error) {
	const q = `
		SELECT email, images, videos, qr_code_url, updated_at
		FROM media
		WHERE email = $1
	`
	var (
		m         models.MediaLibrary
		qrCodeURL sql.NullString
		updatedAt sql.NullTime
	)
	err := r.DB.QueryRow(q, email).Scan(&m.Email, pq.Array(&m.Images), pq.Array(&m.Videos), &qrCodeURL, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if qrCodeURL.Valid {
		m.QRCodeURL = &qrCodeURL.String
	}
	if updatedAt.Valid {
		m.UpdatedAt = &updatedAt.Time
	}
	return &m, nil
}

func (r *mediaRepository) AppendFile(email, kind, url string) error {
	column := "images"
	if kind == "video" {
		column = "videos"
	}
	q := `
		INSERT INTO media (email, ` + column + `, updated_at)
		VALUES ($1, ARRAY[$2::text], NOW())
		ON CONFLICT (email)
		DO UPDATE SET ` + column + ` = array_append(media.` + column + `, $2), updated_at = NOW()
	`
	_, err := r.DB.Exec(q, email, url)
	return err
}

func (r *mediaRepository) SetQRCode(email, url string, updatedAt time.Time) error {
	const q = `
		INSERT INTO media (email, qr_code_url, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (email)
		DO UPDATE SET qr_code_url = $2, updated_at = $3
	`
	_, err := r.DB.Exec(q, email, url, updatedAt)
	return err
}
