package catalog

import (
	"shownotes/internal/logger"
)

type implCatalog struct {
	dir    string
	logger logger.Logger
}

// New creates a Catalog over a flat directory of .txt transcripts.
func New(dir string, log logger.Logger) Catalog {
	return &implCatalog{
		dir:    dir,
		logger: log,
	}
}
