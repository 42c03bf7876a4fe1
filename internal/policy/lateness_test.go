package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsLate(t *testing.T) {
	deadline := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)

	assert.False(t, IsLate(deadline, deadline.Add(-time.Minute)))
	assert.True(t, IsLate(deadline, deadline.Add(time.Minute)))
}

func TestIsLateExactDeadlineIsOnTime(t *testing.T) {
	// Strictly after: submitting at the deadline instant is not late.
	deadline := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)

	assert.False(t, IsLate(deadline, deadline))
}
