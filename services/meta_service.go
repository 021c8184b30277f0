package services

import (
	"encoding/json"

	"github.com/jwoo-dev/tripnote-backend/models"
	"github.com/jwoo-dev/tripnote-backend/repository"
	"github.com/jwoo-dev/tripnote-backend/utils"
)

// MetaService handles the application-wide key/value store
type MetaService struct {
	metaRepo *repository.MetaRepository
}

// NewMetaService creates a new MetaService
func NewMetaService() *MetaService {
	return &MetaService{metaRepo: repository.NewMetaRepository()}
}

// GetMeta returns the entry for a key, or 404 when absent.
func (s *MetaService) GetMeta(key string) (*models.MetaItem, error) {
	item, err := s.metaRepo.GetMeta(key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, utils.NewNotFoundError("Meta key")
	}
	return item, nil
}

// PutMeta upserts an arbitrary JSON value under a key. The body must carry a
// "value" field; any JSON type is accepted, including null.
func (s *MetaService) PutMeta(key string, body utils.Body) (*models.MetaItem, error) {
	value, ok := body["value"]
	if !ok {
		return nil, utils.NewFieldError("value", "is required")
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return nil, utils.NewFieldError("value", "must be valid JSON")
	}

	if err := s.metaRepo.UpsertMeta(key, raw, models.Now()); err != nil {
		return nil, utils.MapStorageError(err)
	}
	return s.GetMeta(key)
}
