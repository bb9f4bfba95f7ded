package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/SineMag/Eatery/entity"
)

// SQLiteStore keeps the blobs in the same database as the user accounts, one
// row per key.
type SQLiteStore struct {
	DB *gorm.DB
}

func NewSQLiteStore(db *gorm.DB) *SQLiteStore {
	return &SQLiteStore{DB: db}
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var rec entity.KVRecord
	err := s.DB.WithContext(ctx).First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec.Value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	rec := entity.KVRecord{Key: key, Value: value}
	return s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&rec).Error
}
