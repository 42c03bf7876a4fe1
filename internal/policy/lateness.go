package policy

import "time"

// IsLate reports whether now falls strictly after the deadline.
//
// The result is evaluated once at upload time and stored on the submission;
// it is a recorded fact, never re-derived from the (possibly edited)
// deadline afterwards.
func IsLate(deadline, now time.Time) bool {
	return now.After(deadline)
}
