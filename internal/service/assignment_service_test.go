package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/nandraak/siakad/internal/apperrors"
	"github.com/nandraak/siakad/internal/dto"
	"github.com/nandraak/siakad/internal/model"
	"github.com/nandraak/siakad/internal/notify"
	"github.com/nandraak/siakad/internal/repository"
	"github.com/nandraak/siakad/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingNotifier captures dispatched notices for assertions.
type recordingNotifier struct {
	mu      sync.Mutex
	notices []model.Notice
}

func (n *recordingNotifier) Dispatch(_ context.Context, notice model.Notice) {
	n.mu.Lock()
	n.notices = append(n.notices, notice)
	n.mu.Unlock()
}

type assignmentFixture struct {
	svc            AssignmentService
	gradingSvc     GradingService
	submissionRepo repository.SubmissionRepository
	noticeRepo     repository.NoticeRepository
	notifier       *recordingNotifier
}

func newAssignmentFixture(t *testing.T) assignmentFixture {
	t.Helper()
	rs := store.NewMemoryStore()
	assignmentRepo := repository.NewAssignmentRepository(rs)
	submissionRepo := repository.NewSubmissionRepository(rs)
	noticeRepo := repository.NewNoticeRepository(rs)
	gradingSvc := NewGradingService(submissionRepo)
	notifier := &recordingNotifier{}
	return assignmentFixture{
		svc:            NewAssignmentService(assignmentRepo, submissionRepo, noticeRepo, gradingSvc, notifier),
		gradingSvc:     gradingSvc,
		submissionRepo: submissionRepo,
		noticeRepo:     noticeRepo,
		notifier:       notifier,
	}
}

func upsertReq(title string) dto.AssignmentUpsertRequest {
	return dto.AssignmentUpsertRequest{
		Title:    title,
		Deadline: time.Now().Add(24 * time.Hour),
	}
}

func TestCreateAssignmentDispatchesNotice(t *testing.T) {
	f := newAssignmentFixture(t)
	ctx := context.Background()

	resp, err := f.svc.Create(ctx, upsertReq("Tugas 1"))
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)

	require.Len(t, f.notifier.notices, 1)
	assert.Equal(t, notify.BuildAssignmentNotice(model.Assignment{Title: "Tugas 1"}).Body, f.notifier.notices[0].Body)

	// The same notice lands in the student-visible feed.
	feed, err := f.noticeRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "Tugas Baru", feed[0].Title)
}

func TestCreateAssignmentValidation(t *testing.T) {
	f := newAssignmentFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, dto.AssignmentUpsertRequest{Deadline: time.Now()})
	assert.True(t, apperrors.IsValidation(err))

	_, err = f.svc.Create(ctx, dto.AssignmentUpsertRequest{Title: "Tugas 1"})
	assert.True(t, apperrors.IsValidation(err))

	// Nothing was dispatched for rejected input.
	assert.Empty(t, f.notifier.notices)
}

func TestUpdateAssignmentDoesNotNotify(t *testing.T) {
	f := newAssignmentFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, upsertReq("Tugas 1"))
	require.NoError(t, err)
	require.Len(t, f.notifier.notices, 1)

	updated, err := f.svc.Update(ctx, created.ID, upsertReq("Tugas 1 (revisi)"))
	require.NoError(t, err)
	assert.Equal(t, "Tugas 1 (revisi)", updated.Title)
	// Only creation announces.
	assert.Len(t, f.notifier.notices, 1)
}

func TestUpdateUnknownAssignment(t *testing.T) {
	f := newAssignmentFixture(t)

	_, err := f.svc.Update(context.Background(), "missing", upsertReq("x"))
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteAssignmentLeavesSubmissions(t *testing.T) {
	f := newAssignmentFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, upsertReq("Tugas 1"))
	require.NoError(t, err)
	require.NoError(t, f.submissionRepo.Upsert(ctx, model.Submission{
		AssignmentID: created.ID,
		StudentID:    "2301001",
		FileName:     "jawaban.pdf",
		SubmittedAt:  time.Now(),
	}))

	require.NoError(t, f.svc.Delete(ctx, created.ID))

	subs, err := f.submissionRepo.ListByAssignment(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, subs, 1)
}

func TestListDetailed(t *testing.T) {
	f := newAssignmentFixture(t)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, upsertReq("Tugas 1"))
	require.NoError(t, err)
	second, err := f.svc.Create(ctx, upsertReq("Tugas 2"))
	require.NoError(t, err)

	require.NoError(t, f.submissionRepo.Upsert(ctx, model.Submission{
		AssignmentID: first.ID,
		StudentID:    "2301001",
		FileName:     "jawaban.pdf",
		SubmittedAt:  time.Now(),
	}))
	score := 88.0
	require.NoError(t, f.gradingSvc.RecordGrade(ctx, first.ID, "2301001", dto.GradeRequest{Score: &score}))

	details, err := f.svc.ListDetailed(ctx)
	require.NoError(t, err)
	require.Len(t, details, 2)

	// Newest creation first.
	assert.Equal(t, second.ID, details[0].ID)
	assert.Empty(t, details[0].Submissions)
	assert.Nil(t, details[0].Summary)

	assert.Equal(t, first.ID, details[1].ID)
	require.Len(t, details[1].Submissions, 1)
	require.NotNil(t, details[1].Summary)
	assert.Equal(t, 1, details[1].Summary.Count)
	assert.Equal(t, 88.0, details[1].Summary.Average)
}
