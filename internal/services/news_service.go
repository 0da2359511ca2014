package services

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"novaapp/internal/models"
	"novaapp/internal/repositories"
)

var ErrNewsNotFound = errors.New("news not found")

// CDNUploader pushes an asset to the CDN and returns its served URL.
// utils.CDNClient is the production implementation.
type CDNUploader interface {
	Upload(data []byte, folder, publicID, resourceType string) (string, error)
}

type NewsService struct {
	Repo repositories.NewsRepository
	CDN  CDNUploader
}

func NewNewsService(repo repositories.NewsRepository, cdn CDNUploader) *NewsService {
	return &NewsService{Repo: repo, CDN: cdn}
}

func (s *NewsService) Create(name, description string, image []byte) (*models.News, error) {
	imageURL, err := s.CDN.Upload(image, "news", uuid.NewString(), "image")
	if err != nil {
		return nil, err
	}

	item := &models.News{
		NewsID:      uuid.NewString(),
		Name:        name,
		Description: description,
		ImageURL:    imageURL,
		CreatedAt:   time.Now(),
	}
	if err := s.Repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *NewsService) List() ([]*models.News, error) {
	list, err := s.Repo.ListAll()
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []*models.News{}
	}
	return list, nil
}

// Update applies a partial edit by public UUID; empty fields keep their
// current value.
func (s *NewsService) Update(newsID, name, description string) (*models.News, error) {
	current, err := s.Repo.GetByNewsID(newsID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNewsNotFound
	}
	if err := s.Repo.Update(newsID, name, description, time.Now()); err != nil {
		return nil, err
	}
	updated, err := s.Repo.GetByNewsID(newsID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// row deleted between the write and the re-read
		return nil, ErrNewsNotFound
	}
	return updated, nil
}

func (s *NewsService) Delete(newsID string) error {
	current, err := s.Repo.GetByNewsID(newsID)
	if err != nil {
		return err
	}
	if current == nil {
		return ErrNewsNotFound
	}
	return s.Repo.Delete(newsID)
}
