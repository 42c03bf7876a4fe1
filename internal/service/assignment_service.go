package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/nandraak/siakad/internal/apperrors"
	"github.com/nandraak/siakad/internal/dto"
	"github.com/nandraak/siakad/internal/model"
	"github.com/nandraak/siakad/internal/notify"
	"github.com/nandraak/siakad/internal/repository"
	"github.com/rs/zerolog/log"
)

// AssignmentService is the lecturer side of the assignment lifecycle:
// create/edit/delete plus the detailed view with submissions and grade
// recaps.
type AssignmentService interface {
	Create(ctx context.Context, req dto.AssignmentUpsertRequest) (*dto.AssignmentResponse, error)
	Update(ctx context.Context, id string, req dto.AssignmentUpsertRequest) (*dto.AssignmentResponse, error)
	Delete(ctx context.Context, id string) error
	ListDetailed(ctx context.Context) ([]dto.AssignmentDetailResponse, error)
}

type assignmentService struct {
	assignmentRepo repository.AssignmentRepository
	submissionRepo repository.SubmissionRepository
	noticeRepo     repository.NoticeRepository
	gradingService GradingService
	notifier       notify.Notifier
}

func NewAssignmentService(
	assignmentRepo repository.AssignmentRepository,
	submissionRepo repository.SubmissionRepository,
	noticeRepo repository.NoticeRepository,
	gradingService GradingService,
	notifier notify.Notifier,
) AssignmentService {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		submissionRepo: submissionRepo,
		noticeRepo:     noticeRepo,
		gradingService: gradingService,
		notifier:       notifier,
	}
}

func validateAssignmentInput(req dto.AssignmentUpsertRequest) error {
	if req.Title == "" {
		return apperrors.NewValidationError("title is required")
	}
	if req.Deadline.IsZero() {
		return apperrors.NewValidationError("deadline is required")
	}
	return nil
}

func toAssignmentInput(req dto.AssignmentUpsertRequest) repository.AssignmentInput {
	input := repository.AssignmentInput{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
	}
	if req.Attachment != nil {
		var att model.Attachment
		copier.Copy(&att, req.Attachment)
		input.Attachment = &att
	}
	return input
}

func (s *assignmentService) Create(ctx context.Context, req dto.AssignmentUpsertRequest) (*dto.AssignmentResponse, error) {
	if err := validateAssignmentInput(req); err != nil {
		return nil, err
	}

	assignment, err := s.assignmentRepo.Create(ctx, toAssignmentInput(req))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create assignment")
		return nil, fmt.Errorf("creating assignment: %w", err)
	}

	// Content is built here; delivery is the dispatcher's problem and its
	// outcome is not surfaced back.
	notice := notify.BuildAssignmentNotice(*assignment)
	s.notifier.Dispatch(ctx, notice)
	if err := s.noticeRepo.Append(ctx, notice); err != nil {
		log.Warn().Err(err).Str("assignmentID", assignment.ID).Msg("Failed to record notice in feed")
	}

	var resp dto.AssignmentResponse
	if err := copier.Copy(&resp, assignment); err != nil {
		return nil, fmt.Errorf("preparing assignment response: %w", err)
	}
	return &resp, nil
}

func (s *assignmentService) Update(ctx context.Context, id string, req dto.AssignmentUpsertRequest) (*dto.AssignmentResponse, error) {
	if err := validateAssignmentInput(req); err != nil {
		return nil, err
	}

	assignment, err := s.assignmentRepo.Update(ctx, id, toAssignmentInput(req))
	if err != nil {
		return nil, err
	}

	var resp dto.AssignmentResponse
	if err := copier.Copy(&resp, assignment); err != nil {
		return nil, fmt.Errorf("preparing assignment response: %w", err)
	}
	return &resp, nil
}

// Delete removes the assignment only. Submissions for it are deliberately
// left in place and stay reachable through ListByAssignment.
func (s *assignmentService) Delete(ctx context.Context, id string) error {
	return s.assignmentRepo.Delete(ctx, id)
}

func (s *assignmentService) ListDetailed(ctx context.Context) ([]dto.AssignmentDetailResponse, error) {
	assignments, err := s.assignmentRepo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list assignments")
		return nil, fmt.Errorf("listing assignments: %w", err)
	}

	out := make([]dto.AssignmentDetailResponse, 0, len(assignments))
	for _, a := range assignments {
		var detail dto.AssignmentDetailResponse
		if err := copier.Copy(&detail.AssignmentResponse, &a); err != nil {
			return nil, fmt.Errorf("preparing assignment response: %w", err)
		}

		subs, err := s.submissionRepo.ListByAssignment(ctx, a.ID)
		if err != nil {
			return nil, fmt.Errorf("listing submissions for assignment %s: %w", a.ID, err)
		}
		detail.Submissions = make([]dto.SubmissionResponse, 0, len(subs))
		for _, sub := range subs {
			var subResp dto.SubmissionResponse
			copier.Copy(&subResp, &sub)
			detail.Submissions = append(detail.Submissions, subResp)
		}

		summary, err := s.gradingService.Summarize(ctx, a.ID)
		if err != nil {
			return nil, fmt.Errorf("summarizing assignment %s: %w", a.ID, err)
		}
		detail.Summary = summary

		out = append(out, detail)
	}
	return out, nil
}
