package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"novaapp/internal/repositories"
)

var (
	ErrMediaNotFound   = errors.New("no media for this email")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrImageTooLarge   = errors.New("image size exceeds 5MB limit")
	ErrVideoTooLarge   = errors.New("video size exceeds 50MB limit")
)

const (
	maxImageSize = 5 * 1024 * 1024
	maxVideoSize = 50 * 1024 * 1024

	qrImageSize = 256
)

type MediaService struct {
	Repo repositories.MediaRepository
	CDN  CDNUploader
}

func NewMediaService(repo repositories.MediaRepository, cdn CDNUploader) *MediaService {
	return &MediaService{Repo: repo, CDN: cdn}
}

// Upload pushes the file to the CDN and records the URL on the user's media
// row. fileType must be "image" or "video".
func (s *MediaService) Upload(email, fileType string, data []byte) (string, error) {
	switch fileType {
	case "image":
		if len(data) > maxImageSize {
			return "", ErrImageTooLarge
		}
	case "video":
		if len(data) > maxVideoSize {
			return "", ErrVideoTooLarge
		}
	default:
		return "", ErrInvalidFileType
	}

	url, err := s.CDN.Upload(data, "uploads", uuid.NewString(), fileType)
	if err != nil {
		return "", fmt.Errorf("cdn upload: %w", err)
	}
	if err := s.Repo.AppendFile(email, fileType, url); err != nil {
		return "", fmt.Errorf("db error after upload: %w", err)
	}

	log.Printf("[media][upload] ok: email=%s type=%s", email, fileType)
	return url, nil
}

// GetFiles lists one user's uploads of the given type.
func (s *MediaService) GetFiles(email, fileType string) ([]string, error) {
	if fileType != "image" && fileType != "video" {
		return nil, ErrInvalidFileType
	}

	m, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMediaNotFound
	}

	files := m.Images
	if fileType == "video" {
		files = m.Videos
	}
	if files == nil {
		files = []string{}
	}
	return files, nil
}

// GenerateQRCode renders the email as a QR PNG, uploads it to the CDN and
// persists the URL on the media row (creating the row if needed).
func (s *MediaService) GenerateQRCode(email string) (string, error) {
	png, err := qrcode.Encode(email, qrcode.Medium, qrImageSize)
	if err != nil {
		return "", fmt.Errorf("qr encode: %w", err)
	}

	url, err := s.CDN.Upload(png, "qrcodes", uuid.NewString(), "image")
	if err != nil {
		return "", fmt.Errorf("cdn upload: %w", err)
	}
	if err := s.Repo.SetQRCode(email, url, time.Now()); err != nil {
		return "", fmt.Errorf("db error after upload: %w", err)
	}

	log.Printf("[media][qr] ok: email=%s", email)
	return url, nil
}
