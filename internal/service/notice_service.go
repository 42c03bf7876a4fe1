package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/nandraak/siakad/internal/dto"
	"github.com/nandraak/siakad/internal/repository"
)

// NoticeService reads back the feed of dispatched notices for the
// notification screen and the dashboard badge count.
type NoticeService interface {
	List(ctx context.Context) ([]dto.NoticeResponse, error)
}

type noticeService struct {
	noticeRepo repository.NoticeRepository
}

func NewNoticeService(noticeRepo repository.NoticeRepository) NoticeService {
	return &noticeService{noticeRepo: noticeRepo}
}

func (s *noticeService) List(ctx context.Context) ([]dto.NoticeResponse, error) {
	notices, err := s.noticeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing notices: %w", err)
	}
	out := make([]dto.NoticeResponse, 0, len(notices))
	for _, n := range notices {
		var resp dto.NoticeResponse
		copier.Copy(&resp, &n)
		out = append(out, resp)
	}
	return out, nil
}
