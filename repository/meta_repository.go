package repository

import (
	"database/sql"
	"fmt"

	"github.com/jwoo-dev/tripnote-backend/models"
)

// MetaRepository handles the key/value store backed by the app_meta table
type MetaRepository struct {
	DB *sql.DB
}

// NewMetaRepository creates a new MetaRepository
func NewMetaRepository() *MetaRepository {
	return &MetaRepository{DB: GetDB()}
}

// GetMeta retrieves one entry. Returns (nil, nil) when the key is absent.
func (r *MetaRepository) GetMeta(key string) (*models.MetaItem, error) {
	var item models.MetaItem
	err := r.DB.QueryRow(
		"SELECT key, value, updated_at FROM app_meta WHERE key = $1", key,
	).Scan(&item.Key, &item.Value, &item.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get meta: %v", err)
	}
	return &item, nil
}

// UpsertMeta inserts or replaces the value for a key.
func (r *MetaRepository) UpsertMeta(key string, value []byte, updatedAt models.Timestamp) error {
	_, err := r.DB.Exec(
		`INSERT INTO app_meta (key, value, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, value, updatedAt,
	)
	return err
}
