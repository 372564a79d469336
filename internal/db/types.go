package db

import (
	"time"

	"github.com/google/uuid"
)

// ResumeSummary is the dashboard projection of a stored resume: enough to
// render a card with its progress bar, without loading the full snapshot.
type ResumeSummary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Progression int       `json:"progression"`
	CreatedAt   time.Time `json:"created_at"`
}
