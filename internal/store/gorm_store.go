package store

import (
	"context"
	"errors"

	"github.com/nandraak/siakad/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormStore struct {
	db *gorm.DB
}

// NewGormStore returns a RecordStore persisting each key as a single row in
// the stored_records table. The upsert keeps a Write down to one statement.
func NewGormStore(db *gorm.DB) RecordStore {
	return &gormStore{db: db}
}

func (s *gormStore) Read(ctx context.Context, key string) ([]byte, bool, error) {
	var rec model.StoredRecord
	err := s.db.WithContext(ctx).First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return rec.Data, true, nil
}

func (s *gormStore) Write(ctx context.Context, key string, data []byte) error {
	rec := model.StoredRecord{Key: key, Data: data}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&rec).Error
}
