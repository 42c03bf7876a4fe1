package repository

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/nandraak/siakad/internal/apperrors"
	"github.com/nandraak/siakad/internal/model"
	"github.com/nandraak/siakad/internal/store"
)

// NoticeRepository keeps the feed of dispatched notices, newest first.
type NoticeRepository interface {
	Append(ctx context.Context, notice model.Notice) error
	List(ctx context.Context) ([]model.Notice, error)
}

type noticeRepository struct {
	store store.RecordStore
	mu    sync.Mutex
}

func NewNoticeRepository(rs store.RecordStore) NoticeRepository {
	return &noticeRepository{store: rs}
}

func (r *noticeRepository) load(ctx context.Context) ([]model.Notice, error) {
	data, found, err := r.store.Read(ctx, store.KeyNotices)
	if err != nil {
		return nil, apperrors.NewStoreError("read "+store.KeyNotices, err)
	}
	if !found {
		return nil, nil
	}
	var notices []model.Notice
	if err := json.Unmarshal(data, &notices); err != nil {
		return nil, apperrors.NewStoreError("decode "+store.KeyNotices, err)
	}
	return notices, nil
}

func (r *noticeRepository) Append(ctx context.Context, notice model.Notice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	notices, err := r.load(ctx)
	if err != nil {
		return err
	}
	notices = append([]model.Notice{notice}, notices...)

	data, err := json.Marshal(notices)
	if err != nil {
		return apperrors.NewStoreError("encode "+store.KeyNotices, err)
	}
	if err := r.store.Write(ctx, store.KeyNotices, data); err != nil {
		return apperrors.NewStoreError("write "+store.KeyNotices, err)
	}
	return nil
}

func (r *noticeRepository) List(ctx context.Context) ([]model.Notice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}
