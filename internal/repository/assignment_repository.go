package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nandraak/siakad/internal/apperrors"
	"github.com/nandraak/siakad/internal/model"
	"github.com/nandraak/siakad/internal/store"
)

// AssignmentInput carries the mutable fields of an assignment. Update is a
// full replacement of these fields, matching how the lecturer edit form
// works.
type AssignmentInput struct {
	Title       string
	Description string
	Deadline    time.Time
	Attachment  *model.Attachment
}

type AssignmentRepository interface {
	Create(ctx context.Context, input AssignmentInput) (*model.Assignment, error)
	Update(ctx context.Context, id string, input AssignmentInput) (*model.Assignment, error)
	// Delete is idempotent; removing an unknown id is a no-op. It never
	// cascades to submissions.
	Delete(ctx context.Context, id string) error
	// List returns assignments most-recently-created first.
	List(ctx context.Context) ([]model.Assignment, error)
	Get(ctx context.Context, id string) (*model.Assignment, error)
}

type assignmentRepository struct {
	store store.RecordStore
	// Serializes read-modify-write cycles within this process. Writers in
	// other processes remain last-writer-wins.
	mu sync.Mutex
}

func NewAssignmentRepository(rs store.RecordStore) AssignmentRepository {
	return &assignmentRepository{store: rs}
}

func (r *assignmentRepository) load(ctx context.Context) ([]model.Assignment, error) {
	data, found, err := r.store.Read(ctx, store.KeyAssignments)
	if err != nil {
		return nil, apperrors.NewStoreError("read "+store.KeyAssignments, err)
	}
	if !found {
		return nil, nil
	}
	var assignments []model.Assignment
	if err := json.Unmarshal(data, &assignments); err != nil {
		return nil, apperrors.NewStoreError("decode "+store.KeyAssignments, err)
	}
	return assignments, nil
}

func (r *assignmentRepository) save(ctx context.Context, assignments []model.Assignment) error {
	data, err := json.Marshal(assignments)
	if err != nil {
		return apperrors.NewStoreError("encode "+store.KeyAssignments, err)
	}
	if err := r.store.Write(ctx, store.KeyAssignments, data); err != nil {
		return apperrors.NewStoreError("write "+store.KeyAssignments, err)
	}
	return nil
}

func (r *assignmentRepository) Create(ctx context.Context, input AssignmentInput) (*model.Assignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	assignments, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	assignment := model.Assignment{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Deadline:    input.Deadline,
		Attachment:  input.Attachment,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Prepend: List order is most-recent-first by position, not by id.
	assignments = append([]model.Assignment{assignment}, assignments...)
	if err := r.save(ctx, assignments); err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) Update(ctx context.Context, id string, input AssignmentInput) (*model.Assignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	assignments, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range assignments {
		if assignments[i].ID != id {
			continue
		}
		assignments[i].Title = input.Title
		assignments[i].Description = input.Description
		assignments[i].Deadline = input.Deadline
		assignments[i].Attachment = input.Attachment
		assignments[i].UpdatedAt = time.Now()
		if err := r.save(ctx, assignments); err != nil {
			return nil, err
		}
		updated := assignments[i]
		return &updated, nil
	}
	return nil, fmt.Errorf("assignment %s: %w", id, apperrors.ErrNotFound)
}

func (r *assignmentRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	assignments, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := assignments[:0]
	for _, a := range assignments {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(assignments) {
		return nil
	}
	return r.save(ctx, kept)
}

func (r *assignmentRepository) List(ctx context.Context) ([]model.Assignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

func (r *assignmentRepository) Get(ctx context.Context, id string) (*model.Assignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	assignments, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range assignments {
		if assignments[i].ID == id {
			a := assignments[i]
			return &a, nil
		}
	}
	return nil, fmt.Errorf("assignment %s: %w", id, apperrors.ErrNotFound)
}
