package pipeline

import (
	"shownotes/internal/catalog"
	"shownotes/internal/logger"
	"shownotes/internal/store"
	"shownotes/internal/summarize"
)

type implOrchestrator struct {
	catalog catalog.Catalog
	engine  summarize.Engine
	repo    store.Repository
	logger  logger.Logger
}

// New wires the orchestrator. repo may be nil when running without a
// database (generate/export only); Persist and FindForShow then fail fast.
func New(cat catalog.Catalog, engine summarize.Engine, repo store.Repository, log logger.Logger) Orchestrator {
	return &implOrchestrator{
		catalog: cat,
		engine:  engine,
		repo:    repo,
		logger:  log,
	}
}
