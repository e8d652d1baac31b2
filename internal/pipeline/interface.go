package pipeline

import (
	"context"

	"shownotes/internal/store"
)

// Result holds one generation's in-memory metadata. Nothing is
// persisted until the caller explicitly asks for it.
type Result struct {
	Headline string
	Summary  string
	Keywords []string
}

// Orchestrator composes catalog, summarization and metadata extraction
// into the generate / persist / export workflows.
type Orchestrator interface {
	// Generate runs summary -> headline -> keywords over literal
	// transcript text. Any stage failure aborts the rest.
	Generate(ctx context.Context, transcript string) (Result, error)

	// GenerateByName resolves a transcript from the catalog first.
	GenerateByName(ctx context.Context, name string) (Result, error)

	// Persist upserts a result under the given filename. A nil
	// imageFilename keeps whatever image the record already carries.
	Persist(ctx context.Context, filename string, res Result, imageFilename *string) error

	// FindForShow lists persisted records for one show feed, newest first.
	FindForShow(ctx context.Context, showPattern string) []store.SummaryRecord

	// ExportText renders a result as the flat three-section document.
	ExportText(res Result) string

	// ExportDocx writes a result as a styled docx file.
	ExportDocx(res Result, title, outputPath string) error
}
