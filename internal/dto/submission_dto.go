package dto

import "time"

type SubmissionUploadRequest struct {
	FileURI  string `json:"file_uri" binding:"required"`
	FileName string `json:"file_name" binding:"required"`
}

type SubmissionResponse struct {
	AssignmentID string    `json:"assignment_id"`
	StudentID    string    `json:"student_id"`
	StudentName  string    `json:"student_name"`
	FileURI      string    `json:"file_uri"`
	FileName     string    `json:"file_name"`
	SubmittedAt  time.Time `json:"submitted_at"`
	Late         bool      `json:"late"`
	Score        *float64  `json:"score,omitempty"`
	Comment      string    `json:"comment,omitempty"`
}

// GradeRequest is the explicit grading message: validated before it reaches
// the grading engine, decoupled from however the score was collected.
type GradeRequest struct {
	Score   *float64 `json:"score" binding:"required"`
	Comment string   `json:"comment"`
}

// GradeSummary aggregates the scored submissions of one assignment. Callers
// receive nil, not a zeroed struct, when nothing is scored yet.
type GradeSummary struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	Max     float64 `json:"max"`
	Min     float64 `json:"min"`
}
