package service

import (
	"context"
	"testing"
	"time"

	"github.com/nandraak/siakad/internal/apperrors"
	"github.com/nandraak/siakad/internal/dto"
	"github.com/nandraak/siakad/internal/repository"
	"github.com/nandraak/siakad/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSubmissionFixture(t *testing.T) (SubmissionService, repository.AssignmentRepository, repository.SubmissionRepository) {
	t.Helper()
	rs := store.NewMemoryStore()
	assignmentRepo := repository.NewAssignmentRepository(rs)
	submissionRepo := repository.NewSubmissionRepository(rs)
	return NewSubmissionService(assignmentRepo, submissionRepo), assignmentRepo, submissionRepo
}

func uploadReq() dto.SubmissionUploadRequest {
	return dto.SubmissionUploadRequest{FileURI: "file:///jawaban.pdf", FileName: "jawaban.pdf"}
}

func TestUploadOnTime(t *testing.T) {
	svc, assignmentRepo, _ := newSubmissionFixture(t)
	ctx := context.Background()

	a, err := assignmentRepo.Create(ctx, repository.AssignmentInput{
		Title:    "Tugas 1",
		Deadline: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	resp, err := svc.Upload(ctx, a.ID, "2301001", "Budi", uploadReq())
	require.NoError(t, err)
	assert.False(t, resp.Late)
	assert.Equal(t, "2301001", resp.StudentID)
	assert.Equal(t, "Budi", resp.StudentName)
	assert.Nil(t, resp.Score)
}

func TestUploadAfterDeadlineIsLate(t *testing.T) {
	svc, assignmentRepo, _ := newSubmissionFixture(t)
	ctx := context.Background()

	a, err := assignmentRepo.Create(ctx, repository.AssignmentInput{
		Title:    "Tugas 1",
		Deadline: time.Now().Add(-time.Hour),
	})
	require.NoError(t, err)

	resp, err := svc.Upload(ctx, a.ID, "2301001", "Budi", uploadReq())
	require.NoError(t, err)
	assert.True(t, resp.Late)
}

func TestUploadUnknownAssignmentRejected(t *testing.T) {
	svc, _, submissionRepo := newSubmissionFixture(t)
	ctx := context.Background()

	_, err := svc.Upload(ctx, "missing", "2301001", "Budi", uploadReq())
	assert.True(t, apperrors.IsNotFound(err))

	// No orphan was created.
	_, found, err := submissionRepo.Get(ctx, "missing", "2301001")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLatenessSurvivesDeadlineEdit(t *testing.T) {
	svc, assignmentRepo, submissionRepo := newSubmissionFixture(t)
	ctx := context.Background()

	a, err := assignmentRepo.Create(ctx, repository.AssignmentInput{
		Title:    "Tugas 1",
		Deadline: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	_, err = svc.Upload(ctx, a.ID, "2301001", "Budi", uploadReq())
	require.NoError(t, err)

	// Pull the deadline into the past; the on-time flag is a recorded fact
	// and must not flip.
	_, err = assignmentRepo.Update(ctx, a.ID, repository.AssignmentInput{
		Title:    a.Title,
		Deadline: time.Now().Add(-48 * time.Hour),
	})
	require.NoError(t, err)

	sub, found, err := submissionRepo.Get(ctx, a.ID, "2301001")
	require.NoError(t, err)
	require.True(t, found)
	assert.False(t, sub.Late)
}

func TestUploadReplacementRecomputesLateness(t *testing.T) {
	svc, assignmentRepo, submissionRepo := newSubmissionFixture(t)
	ctx := context.Background()

	a, err := assignmentRepo.Create(ctx, repository.AssignmentInput{
		Title:    "Tugas 1",
		Deadline: time.Now().Add(-time.Hour),
	})
	require.NoError(t, err)

	first, err := svc.Upload(ctx, a.ID, "2301001", "Budi", uploadReq())
	require.NoError(t, err)
	require.True(t, first.Late)

	// A replacement is a fresh upload event with its own lateness.
	second, err := svc.Upload(ctx, a.ID, "2301001", "Budi", dto.SubmissionUploadRequest{
		FileURI: "file:///jawaban_v2.pdf", FileName: "jawaban_v2.pdf",
	})
	require.NoError(t, err)
	assert.True(t, second.Late)

	sub, found, err := submissionRepo.Get(ctx, a.ID, "2301001")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "jawaban_v2.pdf", sub.FileName)
}

func TestListForStudent(t *testing.T) {
	svc, assignmentRepo, _ := newSubmissionFixture(t)
	ctx := context.Background()

	open, err := assignmentRepo.Create(ctx, repository.AssignmentInput{
		Title:    "Tugas 1",
		Deadline: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)
	closed, err := assignmentRepo.Create(ctx, repository.AssignmentInput{
		Title:    "Tugas 2",
		Deadline: time.Now().Add(-24 * time.Hour),
	})
	require.NoError(t, err)

	_, err = svc.Upload(ctx, open.ID, "2301001", "Budi", uploadReq())
	require.NoError(t, err)

	views, err := svc.ListForStudent(ctx, "2301001")
	require.NoError(t, err)
	require.Len(t, views, 2)

	byID := map[string]dto.StudentAssignmentView{}
	for _, v := range views {
		byID[v.ID] = v
	}

	assert.True(t, byID[open.ID].Submitted)
	assert.False(t, byID[open.ID].PastDeadline)
	require.NotNil(t, byID[open.ID].Submission)

	assert.False(t, byID[closed.ID].Submitted)
	assert.True(t, byID[closed.ID].PastDeadline)
	assert.Nil(t, byID[closed.ID].Submission)
}

func TestListForStudentDoesNotLeakOthers(t *testing.T) {
	svc, assignmentRepo, _ := newSubmissionFixture(t)
	ctx := context.Background()

	a, err := assignmentRepo.Create(ctx, repository.AssignmentInput{
		Title:    "Tugas 1",
		Deadline: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	_, err = svc.Upload(ctx, a.ID, "2301002", "Siti", uploadReq())
	require.NoError(t, err)

	views, err := svc.ListForStudent(ctx, "2301001")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.False(t, views[0].Submitted)
	assert.Nil(t, views[0].Submission)
}

func TestWithdrawSubmission(t *testing.T) {
	svc, assignmentRepo, submissionRepo := newSubmissionFixture(t)
	ctx := context.Background()

	a, err := assignmentRepo.Create(ctx, repository.AssignmentInput{
		Title:    "Tugas 1",
		Deadline: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	_, err = svc.Upload(ctx, a.ID, "2301001", "Budi", uploadReq())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, a.ID, "2301001"))
	require.NoError(t, svc.Delete(ctx, a.ID, "2301001"))

	_, found, err := submissionRepo.Get(ctx, a.ID, "2301001")
	require.NoError(t, err)
	assert.False(t, found)
}
