package catalog

import "context"

// Catalog enumerates and reads raw transcript files. Read-only; the
// transcript store is owned by the recording side.
type Catalog interface {
	// List returns transcript names (without extension). With byRecency
	// the newest file comes first; otherwise order is lexicographic.
	List(ctx context.Context, byRecency bool) ([]string, error)

	// Read returns the full transcript text for a name from List.
	Read(ctx context.Context, name string) (string, error)
}
