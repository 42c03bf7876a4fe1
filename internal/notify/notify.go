package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/nandraak/siakad/internal/model"
)

// Notifier delivers a notice. Delivery success or failure is not surfaced
// back to callers: the core produces content and hands it off. The variant
// is picked once at startup from config, never branched at call sites.
type Notifier interface {
	Dispatch(ctx context.Context, notice model.Notice)
}

// BuildAssignmentNotice formats the notification content for a newly
// created assignment. Deterministic: a fixed title, the assignment title
// interpolated into the body.
func BuildAssignmentNotice(a model.Assignment) model.Notice {
	return model.Notice{
		Title:  "Tugas Baru",
		Body:   fmt.Sprintf("Tugas baru: %s. Kumpulkan sebelum deadline.", a.Title),
		SentAt: time.Now(),
	}
}
