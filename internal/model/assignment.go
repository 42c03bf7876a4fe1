package model

import "time"

// Attachment references a problem-statement file. Exactly one representation
// is in force at a time: a device-local URI (session-scoped, not portable)
// or an embedded base64 payload (portable, memory-heavy). The two are not
// interchangeable without explicit conversion.
type Attachment struct {
	URI      string `json:"uri,omitempty"`
	FileName string `json:"file_name,omitempty"`
	Data     string `json:"data,omitempty"` // base64 payload
	MimeType string `json:"mime_type,omitempty"`
}

// Portable reports whether the attachment carries its content inline and
// therefore survives across sessions and devices.
func (a Attachment) Portable() bool { return a.Data != "" }

type Assignment struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Deadline    time.Time   `json:"deadline"`
	Attachment  *Attachment `json:"attachment,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
