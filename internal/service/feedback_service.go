package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/nandraak/siakad/config"
	"github.com/nandraak/siakad/internal/apperrors"
	"github.com/nandraak/siakad/internal/repository"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// FeedbackService drafts a grading comment for a submission. The draft is a
// suggestion only: it goes back to the lecturer for editing, never straight
// onto the submission.
type FeedbackService interface {
	DraftComment(ctx context.Context, assignmentID, studentID string) (string, error)
}

type feedbackService struct {
	model          *genai.GenerativeModel
	assignmentRepo repository.AssignmentRepository
	submissionRepo repository.SubmissionRepository
}

func NewFeedbackService(
	cfg *config.Config,
	assignmentRepo repository.AssignmentRepository,
	submissionRepo repository.SubmissionRepository,
) (FeedbackService, error) {
	svc := &feedbackService{
		assignmentRepo: assignmentRepo,
		submissionRepo: submissionRepo,
	}
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. FeedbackService will be non-functional.")
		return svc, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	svc.model = client.GenerativeModel("gemini-1.5-flash")
	return svc, nil
}

func (s *feedbackService) DraftComment(ctx context.Context, assignmentID, studentID string) (string, error) {
	if s.model == nil {
		return "", apperrors.NewValidationError("feedback assistant is not configured")
	}

	assignment, err := s.assignmentRepo.Get(ctx, assignmentID)
	if err != nil {
		return "", err
	}
	sub, found, err := s.submissionRepo.Get(ctx, assignmentID, studentID)
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("submission %s/%s: %w", assignmentID, studentID, apperrors.ErrNotFound)
	}

	var prompt strings.Builder
	fmt.Fprintf(&prompt, "You are a university lecturer writing short feedback for a student's assignment submission.\n")
	fmt.Fprintf(&prompt, "Assignment: %s\n", assignment.Title)
	if assignment.Description != "" {
		fmt.Fprintf(&prompt, "Description: %s\n", assignment.Description)
	}
	fmt.Fprintf(&prompt, "Student: %s\n", sub.StudentName)
	fmt.Fprintf(&prompt, "Submitted file: %s\n", sub.FileName)
	if sub.Late {
		fmt.Fprintf(&prompt, "The submission was late.\n")
	}
	if sub.Graded() {
		fmt.Fprintf(&prompt, "Provisional score: %.1f\n", *sub.Score)
	}
	fmt.Fprintf(&prompt, "Write 2-3 encouraging sentences of feedback in Indonesian. Do not mention the file name.")

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		log.Error().Err(err).Str("assignmentID", assignmentID).Str("studentID", studentID).Msg("Gemini feedback request failed")
		return "", fmt.Errorf("generating feedback draft: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from feedback model")
	}
	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}
	return strings.TrimSpace(out.String()), nil
}
