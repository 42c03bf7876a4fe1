package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/nandraak/siakad/internal/apperrors"
	"github.com/nandraak/siakad/internal/model"
	"github.com/nandraak/siakad/internal/store"
)

type SubmissionRepository interface {
	// Upsert replaces any prior submission for the (assignment, student)
	// pair. The Late flag must already be set by the caller; the repository
	// never computes lateness.
	Upsert(ctx context.Context, sub model.Submission) error
	// Delete is idempotent.
	Delete(ctx context.Context, assignmentID, studentID string) error
	// ListByAssignment filters the whole collection, insertion order.
	ListByAssignment(ctx context.Context, assignmentID string) ([]model.Submission, error)
	Get(ctx context.Context, assignmentID, studentID string) (*model.Submission, bool, error)
	// SetGrade attaches score and comment to the matching submission in
	// place, preserving its position.
	SetGrade(ctx context.Context, assignmentID, studentID string, score float64, comment string) error
}

type submissionRepository struct {
	store store.RecordStore
	mu    sync.Mutex
}

func NewSubmissionRepository(rs store.RecordStore) SubmissionRepository {
	return &submissionRepository{store: rs}
}

func (r *submissionRepository) load(ctx context.Context) ([]model.Submission, error) {
	data, found, err := r.store.Read(ctx, store.KeySubmissions)
	if err != nil {
		return nil, apperrors.NewStoreError("read "+store.KeySubmissions, err)
	}
	if !found {
		return nil, nil
	}
	var subs []model.Submission
	if err := json.Unmarshal(data, &subs); err != nil {
		return nil, apperrors.NewStoreError("decode "+store.KeySubmissions, err)
	}
	return subs, nil
}

func (r *submissionRepository) save(ctx context.Context, subs []model.Submission) error {
	data, err := json.Marshal(subs)
	if err != nil {
		return apperrors.NewStoreError("encode "+store.KeySubmissions, err)
	}
	if err := r.store.Write(ctx, store.KeySubmissions, data); err != nil {
		return apperrors.NewStoreError("write "+store.KeySubmissions, err)
	}
	return nil
}

func (r *submissionRepository) Upsert(ctx context.Context, sub model.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := subs[:0]
	for _, s := range subs {
		if s.AssignmentID != sub.AssignmentID || s.StudentID != sub.StudentID {
			kept = append(kept, s)
		}
	}
	kept = append(kept, sub)
	return r.save(ctx, kept)
}

func (r *submissionRepository) Delete(ctx context.Context, assignmentID, studentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := subs[:0]
	for _, s := range subs {
		if s.AssignmentID != assignmentID || s.StudentID != studentID {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(subs) {
		return nil
	}
	return r.save(ctx, kept)
}

func (r *submissionRepository) ListByAssignment(ctx context.Context, assignmentID string) ([]model.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []model.Submission
	for _, s := range subs {
		if s.AssignmentID == assignmentID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *submissionRepository) Get(ctx context.Context, assignmentID, studentID string) (*model.Submission, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs, err := r.load(ctx)
	if err != nil {
		return nil, false, err
	}
	for i := range subs {
		if subs[i].AssignmentID == assignmentID && subs[i].StudentID == studentID {
			s := subs[i]
			return &s, true, nil
		}
	}
	return nil, false, nil
}

func (r *submissionRepository) SetGrade(ctx context.Context, assignmentID, studentID string, score float64, comment string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range subs {
		if subs[i].AssignmentID == assignmentID && subs[i].StudentID == studentID {
			subs[i].Score = &score
			subs[i].Comment = comment
			return r.save(ctx, subs)
		}
	}
	return fmt.Errorf("submission %s/%s: %w", assignmentID, studentID, apperrors.ErrNotFound)
}
