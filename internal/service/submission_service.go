package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/nandraak/siakad/internal/dto"
	"github.com/nandraak/siakad/internal/model"
	"github.com/nandraak/siakad/internal/policy"
	"github.com/nandraak/siakad/internal/repository"
	"github.com/rs/zerolog/log"
)

// SubmissionService is the student side: the assignment board with own
// submission status, upload/replace, and withdraw.
type SubmissionService interface {
	ListForStudent(ctx context.Context, studentID string) ([]dto.StudentAssignmentView, error)
	Upload(ctx context.Context, assignmentID, studentID, studentName string, req dto.SubmissionUploadRequest) (*dto.SubmissionResponse, error)
	Delete(ctx context.Context, assignmentID, studentID string) error
}

type submissionService struct {
	assignmentRepo repository.AssignmentRepository
	submissionRepo repository.SubmissionRepository
}

func NewSubmissionService(
	assignmentRepo repository.AssignmentRepository,
	submissionRepo repository.SubmissionRepository,
) SubmissionService {
	return &submissionService{
		assignmentRepo: assignmentRepo,
		submissionRepo: submissionRepo,
	}
}

func (s *submissionService) ListForStudent(ctx context.Context, studentID string) ([]dto.StudentAssignmentView, error) {
	assignments, err := s.assignmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing assignments: %w", err)
	}

	now := time.Now()
	views := make([]dto.StudentAssignmentView, 0, len(assignments))
	for _, a := range assignments {
		var view dto.StudentAssignmentView
		if err := copier.Copy(&view.AssignmentResponse, &a); err != nil {
			return nil, fmt.Errorf("preparing assignment view: %w", err)
		}
		// Display-only: whether the deadline has passed right now. The
		// stored Late flag on a submission is a separate, recorded fact.
		view.PastDeadline = policy.IsLate(a.Deadline, now)

		sub, found, err := s.submissionRepo.Get(ctx, a.ID, studentID)
		if err != nil {
			return nil, fmt.Errorf("looking up submission for assignment %s: %w", a.ID, err)
		}
		if found {
			view.Submitted = true
			var subResp dto.SubmissionResponse
			copier.Copy(&subResp, sub)
			view.Submission = &subResp
		}
		views = append(views, view)
	}
	return views, nil
}

// Upload creates or replaces the student's submission for an assignment.
// The assignment must exist: unknown ids are rejected instead of silently
// creating an orphan. Lateness is fixed here, once, against the deadline as
// it stands at upload time.
func (s *submissionService) Upload(ctx context.Context, assignmentID, studentID, studentName string, req dto.SubmissionUploadRequest) (*dto.SubmissionResponse, error) {
	assignment, err := s.assignmentRepo.Get(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sub := model.Submission{
		AssignmentID: assignment.ID,
		StudentID:    studentID,
		StudentName:  studentName,
		FileURI:      req.FileURI,
		FileName:     req.FileName,
		SubmittedAt:  now,
		Late:         policy.IsLate(assignment.Deadline, now),
	}

	if err := s.submissionRepo.Upsert(ctx, sub); err != nil {
		log.Error().Err(err).Str("assignmentID", assignmentID).Str("studentID", studentID).Msg("Failed to upsert submission")
		return nil, fmt.Errorf("saving submission: %w", err)
	}

	var resp dto.SubmissionResponse
	if err := copier.Copy(&resp, &sub); err != nil {
		return nil, fmt.Errorf("preparing submission response: %w", err)
	}
	return &resp, nil
}

func (s *submissionService) Delete(ctx context.Context, assignmentID, studentID string) error {
	return s.submissionRepo.Delete(ctx, assignmentID, studentID)
}
