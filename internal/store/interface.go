package store

import "context"

// Repository persists summary metadata keyed by transcript filename.
//
// FindByShow deliberately swallows database errors: it backs display
// listings, so a broken connection degrades to an empty page instead of
// taking the caller down. Write paths always propagate.
type Repository interface {
	// FindByShow returns records whose filename contains the show
	// substring, newest first.
	FindByShow(ctx context.Context, showPattern string) []SummaryRecord

	// FindByFilename returns the record for an exact filename, or
	// domain.ErrNotFound.
	FindByFilename(ctx context.Context, filename string) (SummaryRecord, error)

	// Upsert inserts or updates the record for filename. created_at is
	// written once, on insert. A nil imageFilename preserves whatever
	// image the record already has.
	Upsert(ctx context.Context, filename, headline, summary string, keywords []string, imageFilename *string) error

	// UpdateEdit applies a manual edit: headline, summary and keywords
	// are always overwritten; image_filename only when supplied.
	UpdateEdit(ctx context.Context, filename, headline, summary string, keywords []string, imageFilename *string) error
}
