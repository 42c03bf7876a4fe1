package repository

import (
	"context"
	"encoding/json"

	"github.com/nandraak/siakad/internal/apperrors"
	"github.com/nandraak/siakad/internal/model"
	"github.com/nandraak/siakad/internal/store"
)

// TranscriptRepository stores KHS rows per student, one record key per NIM.
// Put replaces the whole semester sheet; there is no per-row mutation.
type TranscriptRepository interface {
	Put(ctx context.Context, nim string, rows []model.CourseGrade) error
	// Get returns an empty slice for students with no transcript yet.
	Get(ctx context.Context, nim string) ([]model.CourseGrade, error)
}

type transcriptRepository struct {
	store store.RecordStore
}

func NewTranscriptRepository(rs store.RecordStore) TranscriptRepository {
	return &transcriptRepository{store: rs}
}

func (r *transcriptRepository) Put(ctx context.Context, nim string, rows []model.CourseGrade) error {
	key := store.TranscriptKey(nim)
	data, err := json.Marshal(rows)
	if err != nil {
		return apperrors.NewStoreError("encode "+key, err)
	}
	if err := r.store.Write(ctx, key, data); err != nil {
		return apperrors.NewStoreError("write "+key, err)
	}
	return nil
}

func (r *transcriptRepository) Get(ctx context.Context, nim string) ([]model.CourseGrade, error) {
	key := store.TranscriptKey(nim)
	data, found, err := r.store.Read(ctx, key)
	if err != nil {
		return nil, apperrors.NewStoreError("read "+key, err)
	}
	if !found {
		return nil, nil
	}
	var rows []model.CourseGrade
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, apperrors.NewStoreError("decode "+key, err)
	}
	return rows, nil
}
