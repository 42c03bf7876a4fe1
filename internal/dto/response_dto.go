package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type NoticeResponse struct {
	Title  string    `json:"title"`
	Body   string    `json:"body"`
	SentAt time.Time `json:"sent_at"`
}

type FeedbackDraftResponse struct {
	AssignmentID string `json:"assignment_id"`
	StudentID    string `json:"student_id"`
	Draft        string `json:"draft"`
}
