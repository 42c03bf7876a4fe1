package repository

import (
	"context"
	"testing"
	"time"

	"github.com/nandraak/siakad/internal/apperrors"
	"github.com/nandraak/siakad/internal/model"
	"github.com/nandraak/siakad/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSubmission(assignmentID, studentID, fileName string) model.Submission {
	return model.Submission{
		AssignmentID: assignmentID,
		StudentID:    studentID,
		StudentName:  "Budi",
		FileURI:      "file:///" + fileName,
		FileName:     fileName,
		SubmittedAt:  time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestSubmissionUpsertReplacesPair(t *testing.T) {
	repo := NewSubmissionRepository(store.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testSubmission("a1", "2301001", "v1.pdf")))
	require.NoError(t, repo.Upsert(ctx, testSubmission("a1", "2301001", "v2.pdf")))

	subs, err := repo.ListByAssignment(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "v2.pdf", subs[0].FileName)
}

func TestSubmissionUpsertKeyedByPairNotStudent(t *testing.T) {
	repo := NewSubmissionRepository(store.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testSubmission("a1", "2301001", "a.pdf")))
	require.NoError(t, repo.Upsert(ctx, testSubmission("a2", "2301001", "b.pdf")))
	require.NoError(t, repo.Upsert(ctx, testSubmission("a1", "2301002", "c.pdf")))

	subs, err := repo.ListByAssignment(ctx, "a1")
	require.NoError(t, err)
	assert.Len(t, subs, 2)
}

func TestSubmissionDeleteIdempotent(t *testing.T) {
	repo := NewSubmissionRepository(store.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testSubmission("a1", "2301001", "a.pdf")))

	require.NoError(t, repo.Delete(ctx, "a1", "2301001"))
	require.NoError(t, repo.Delete(ctx, "a1", "2301001"))

	_, found, err := repo.Get(ctx, "a1", "2301001")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSubmissionSetGrade(t *testing.T) {
	repo := NewSubmissionRepository(store.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testSubmission("a1", "2301001", "a.pdf")))
	require.NoError(t, repo.SetGrade(ctx, "a1", "2301001", 85, "rapi"))

	sub, found, err := repo.Get(ctx, "a1", "2301001")
	require.NoError(t, err)
	require.True(t, found)
	require.NotNil(t, sub.Score)
	assert.Equal(t, 85.0, *sub.Score)
	assert.Equal(t, "rapi", sub.Comment)
}

func TestSubmissionSetGradeUnknownPair(t *testing.T) {
	repo := NewSubmissionRepository(store.NewMemoryStore())

	err := repo.SetGrade(context.Background(), "a1", "2301001", 85, "")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSubmissionsSurviveAssignmentDelete(t *testing.T) {
	rs := store.NewMemoryStore()
	assignments := NewAssignmentRepository(rs)
	submissions := NewSubmissionRepository(rs)
	ctx := context.Background()

	created, err := assignments.Create(ctx, AssignmentInput{Title: "Tugas 1", Deadline: testDeadline()})
	require.NoError(t, err)
	require.NoError(t, submissions.Upsert(ctx, testSubmission(created.ID, "2301001", "a.pdf")))

	require.NoError(t, assignments.Delete(ctx, created.ID))

	// No cascade: the submission is still reachable under the old id.
	subs, err := submissions.ListByAssignment(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, subs, 1)
}
