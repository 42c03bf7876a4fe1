package service

import (
	"context"
	"fmt"
	"math"

	"github.com/nandraak/siakad/internal/apperrors"
	"github.com/nandraak/siakad/internal/dto"
	"github.com/nandraak/siakad/internal/repository"
	"github.com/rs/zerolog/log"
)

// GradingService records scores onto submissions and aggregates them per
// assignment.
type GradingService interface {
	// RecordGrade validates and applies one grading request. Grading a pair
	// with no submission fails with not-found.
	RecordGrade(ctx context.Context, assignmentID, studentID string, req dto.GradeRequest) error
	// Summarize aggregates the scored submissions of an assignment. Returns
	// nil when none carry a score yet; callers branch on absence, never on
	// a zeroed struct.
	Summarize(ctx context.Context, assignmentID string) (*dto.GradeSummary, error)
}

type gradingService struct {
	submissionRepo repository.SubmissionRepository
}

func NewGradingService(submissionRepo repository.SubmissionRepository) GradingService {
	return &gradingService{submissionRepo: submissionRepo}
}

func (s *gradingService) RecordGrade(ctx context.Context, assignmentID, studentID string, req dto.GradeRequest) error {
	if req.Score == nil {
		return apperrors.NewValidationError("score is required")
	}
	score := *req.Score
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return apperrors.NewValidationError("score must be a finite number")
	}

	if err := s.submissionRepo.SetGrade(ctx, assignmentID, studentID, score, req.Comment); err != nil {
		return err
	}
	log.Info().
		Str("assignmentID", assignmentID).
		Str("studentID", studentID).
		Float64("score", score).
		Msg("Grade recorded")
	return nil
}

func (s *gradingService) Summarize(ctx context.Context, assignmentID string) (*dto.GradeSummary, error) {
	subs, err := s.submissionRepo.ListByAssignment(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("listing submissions for assignment %s: %w", assignmentID, err)
	}

	var scores []float64
	for _, sub := range subs {
		if sub.Graded() {
			scores = append(scores, *sub.Score)
		}
	}
	if len(scores) == 0 {
		return nil, nil
	}

	summary := dto.GradeSummary{
		Count: len(scores),
		Max:   scores[0],
		Min:   scores[0],
	}
	var sum float64
	for _, v := range scores {
		sum += v
		if v > summary.Max {
			summary.Max = v
		}
		if v < summary.Min {
			summary.Min = v
		}
	}
	// Arithmetic mean, unrounded; presentation rounding is the display
	// layer's job.
	summary.Average = sum / float64(len(scores))
	return &summary, nil
}
