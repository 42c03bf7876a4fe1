package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/nandraak/siakad/internal/apperrors"
	"github.com/nandraak/siakad/internal/dto"
	"github.com/nandraak/siakad/internal/model"
	"github.com/nandraak/siakad/internal/repository"
)

// A semester IP at or above this earns the cum laude banner on the KHS.
const cumlaudeThreshold = 3.5

// TranscriptService serves the KHS sheet: transcript rows plus the
// IP computed over their quality points.
type TranscriptService interface {
	Get(ctx context.Context, nim string) (*dto.TranscriptResponse, error)
	Put(ctx context.Context, nim string, req dto.TranscriptPutRequest) error
}

type transcriptService struct {
	transcriptRepo repository.TranscriptRepository
}

func NewTranscriptService(transcriptRepo repository.TranscriptRepository) TranscriptService {
	return &transcriptService{transcriptRepo: transcriptRepo}
}

func (s *transcriptService) Get(ctx context.Context, nim string) (*dto.TranscriptResponse, error) {
	rows, err := s.transcriptRepo.Get(ctx, nim)
	if err != nil {
		return nil, fmt.Errorf("loading transcript for %s: %w", nim, err)
	}

	resp := dto.TranscriptResponse{NIM: nim, Rows: make([]dto.CourseGradeDTO, 0, len(rows))}
	var totalQuality float64
	for _, row := range rows {
		var rowDTO dto.CourseGradeDTO
		copier.Copy(&rowDTO, &row)
		resp.Rows = append(resp.Rows, rowDTO)
		totalQuality += row.Quality
	}
	if len(rows) > 0 {
		resp.IP = totalQuality / float64(len(rows))
		resp.Cumlaude = resp.IP >= cumlaudeThreshold
	}
	return &resp, nil
}

func (s *transcriptService) Put(ctx context.Context, nim string, req dto.TranscriptPutRequest) error {
	if nim == "" {
		return apperrors.NewValidationError("NIM is required")
	}
	if len(req.Rows) == 0 {
		return apperrors.NewValidationError("transcript must contain at least one row")
	}

	rows := make([]model.CourseGrade, 0, len(req.Rows))
	for _, rowDTO := range req.Rows {
		var row model.CourseGrade
		copier.Copy(&row, &rowDTO)
		rows = append(rows, row)
	}
	return s.transcriptRepo.Put(ctx, nim, rows)
}
