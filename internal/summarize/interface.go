package summarize

import (
	"context"

	"shownotes/internal/store"
)

// Engine turns raw transcript text into a narrative summary via a
// generative backend. The repository handle is read-only context: the
// engine pulls recent headlines from it as house-style hints and never
// writes through it.
type Engine interface {
	Summarize(ctx context.Context, transcript string, repo store.Repository) (string, error)
}
