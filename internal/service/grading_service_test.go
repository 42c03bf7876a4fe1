package service

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/nandraak/siakad/internal/apperrors"
	"github.com/nandraak/siakad/internal/dto"
	"github.com/nandraak/siakad/internal/model"
	"github.com/nandraak/siakad/internal/repository"
	"github.com/nandraak/siakad/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func seedSubmission(t *testing.T, repo repository.SubmissionRepository, assignmentID, studentID string) {
	t.Helper()
	err := repo.Upsert(context.Background(), model.Submission{
		AssignmentID: assignmentID,
		StudentID:    studentID,
		StudentName:  "Budi",
		FileURI:      "file:///jawaban.pdf",
		FileName:     "jawaban.pdf",
		SubmittedAt:  time.Now(),
	})
	require.NoError(t, err)
}

func TestRecordGrade(t *testing.T) {
	subRepo := repository.NewSubmissionRepository(store.NewMemoryStore())
	svc := NewGradingService(subRepo)
	ctx := context.Background()

	seedSubmission(t, subRepo, "a1", "2301001")

	err := svc.RecordGrade(ctx, "a1", "2301001", dto.GradeRequest{Score: floatPtr(85), Comment: "bagus"})
	require.NoError(t, err)

	sub, found, err := subRepo.Get(ctx, "a1", "2301001")
	require.NoError(t, err)
	require.True(t, found)
	require.NotNil(t, sub.Score)
	assert.Equal(t, 85.0, *sub.Score)
	assert.Equal(t, "bagus", sub.Comment)
}

func TestRecordGradeZeroIsAGrade(t *testing.T) {
	subRepo := repository.NewSubmissionRepository(store.NewMemoryStore())
	svc := NewGradingService(subRepo)
	ctx := context.Background()

	seedSubmission(t, subRepo, "a1", "2301001")
	require.NoError(t, svc.RecordGrade(ctx, "a1", "2301001", dto.GradeRequest{Score: floatPtr(0)}))

	summary, err := svc.Summarize(ctx, "a1")
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, 1, summary.Count)
	assert.Equal(t, 0.0, summary.Average)
}

func TestRecordGradeRejectsNonFiniteScore(t *testing.T) {
	subRepo := repository.NewSubmissionRepository(store.NewMemoryStore())
	svc := NewGradingService(subRepo)
	ctx := context.Background()

	seedSubmission(t, subRepo, "a1", "2301001")

	assert.True(t, apperrors.IsValidation(svc.RecordGrade(ctx, "a1", "2301001", dto.GradeRequest{Score: nil})))
	assert.True(t, apperrors.IsValidation(svc.RecordGrade(ctx, "a1", "2301001", dto.GradeRequest{Score: floatPtr(math.NaN())})))
	assert.True(t, apperrors.IsValidation(svc.RecordGrade(ctx, "a1", "2301001", dto.GradeRequest{Score: floatPtr(math.Inf(1))})))
}

func TestRecordGradeWithoutSubmission(t *testing.T) {
	svc := NewGradingService(repository.NewSubmissionRepository(store.NewMemoryStore()))

	err := svc.RecordGrade(context.Background(), "a1", "2301001", dto.GradeRequest{Score: floatPtr(85)})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSummarizeNothingScored(t *testing.T) {
	subRepo := repository.NewSubmissionRepository(store.NewMemoryStore())
	svc := NewGradingService(subRepo)
	ctx := context.Background()

	// Two submissions, neither scored: absence, not a zeroed recap.
	seedSubmission(t, subRepo, "a1", "2301001")
	seedSubmission(t, subRepo, "a1", "2301002")

	summary, err := svc.Summarize(ctx, "a1")
	require.NoError(t, err)
	assert.Nil(t, summary)
}

func TestSummarizeScoredOnly(t *testing.T) {
	subRepo := repository.NewSubmissionRepository(store.NewMemoryStore())
	svc := NewGradingService(subRepo)
	ctx := context.Background()

	for i, nim := range []string{"2301001", "2301002", "2301003", "2301004"} {
		seedSubmission(t, subRepo, "a1", nim)
		if i < 3 {
			score := []float64{70, 80, 90}[i]
			require.NoError(t, svc.RecordGrade(ctx, "a1", nim, dto.GradeRequest{Score: &score}))
		}
	}

	summary, err := svc.Summarize(ctx, "a1")
	require.NoError(t, err)
	require.NotNil(t, summary)
	// The ungraded fourth submission does not dilute the recap.
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, 80.0, summary.Average)
	assert.Equal(t, 90.0, summary.Max)
	assert.Equal(t, 70.0, summary.Min)
}
