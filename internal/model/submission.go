package model

import "time"

// Submission is a student's answer to one assignment. Identity is the
// (AssignmentID, StudentID) pair; the repository keeps at most one record
// per pair. AssignmentID is a value association only, never an ownership
// pointer: deleting the assignment leaves its submissions behind.
type Submission struct {
	AssignmentID string `json:"assignment_id"`
	StudentID    string `json:"student_id"`
	StudentName  string `json:"student_name"`

	FileURI  string `json:"file_uri"`
	FileName string `json:"file_name"`

	SubmittedAt time.Time `json:"submitted_at"`
	// Late is fixed at upload time by comparing SubmittedAt against the
	// deadline as it stood then. Deadline edits never rewrite it.
	Late bool `json:"late"`

	Score   *float64 `json:"score,omitempty"`
	Comment string   `json:"comment,omitempty"` // may exist without a score
}

// Graded reports whether a lecturer has recorded a score.
func (s Submission) Graded() bool { return s.Score != nil }
