package dto

import "time"

// AttachmentDTO mirrors model.Attachment: either URI-referenced or an
// inline base64 payload.
type AttachmentDTO struct {
	URI      string `json:"uri,omitempty"`
	FileName string `json:"file_name,omitempty"`
	Data     string `json:"data,omitempty"`
	MimeType string `json:"mime_type,omitempty"`
}

// AssignmentUpsertRequest is used for both create and edit; an edit replaces
// all mutable fields, including the attachment.
type AssignmentUpsertRequest struct {
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description"`
	Deadline    time.Time      `json:"deadline" binding:"required"`
	Attachment  *AttachmentDTO `json:"attachment,omitempty"`
}

type AssignmentResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Deadline    time.Time      `json:"deadline"`
	Attachment  *AttachmentDTO `json:"attachment,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// AssignmentDetailResponse is the lecturer view: every submission plus the
// grade recap (nil until at least one submission is scored).
type AssignmentDetailResponse struct {
	AssignmentResponse
	Submissions []SubmissionResponse `json:"submissions"`
	Summary     *GradeSummary        `json:"summary,omitempty"`
}

// StudentAssignmentView is the student view of one assignment: whether they
// have submitted, and their own submission if so.
type StudentAssignmentView struct {
	AssignmentResponse
	Submitted    bool                `json:"submitted"`
	PastDeadline bool                `json:"past_deadline"`
	Submission   *SubmissionResponse `json:"submission,omitempty"`
}
