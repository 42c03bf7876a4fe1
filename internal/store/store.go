package store

import "context"

// Well-known keys partitioning the repositories. Each key holds one whole
// JSON-serialized collection.
const (
	KeyAssignments = "assignments"
	KeySubmissions = "submissions"
	KeyNotices     = "notices"
)

// TranscriptKey returns the per-student key holding KHS rows.
func TranscriptKey(nim string) string { return "transcript/" + nim }

// RecordStore is the persistence port: named blobs, read and written whole.
// Implementations must make Write a single logical operation; a reader never
// observes a partially written collection. There is no version check or
// merge: concurrent writers from separate processes are last-writer-wins by
// design.
type RecordStore interface {
	// Read returns the blob under key, or found=false when the key has
	// never been written.
	Read(ctx context.Context, key string) (data []byte, found bool, err error)
	// Write replaces the blob under key.
	Write(ctx context.Context, key string, data []byte) error
}
