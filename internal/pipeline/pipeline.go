package pipeline

import (
	"context"
	"fmt"
	"strings"

	"shownotes/internal/domain"
	"shownotes/internal/metadata"
	"shownotes/internal/store"
)

func (o *implOrchestrator) Generate(ctx context.Context, transcript string) (Result, error) {
	if strings.TrimSpace(transcript) == "" {
		return Result{}, fmt.Errorf("generate: empty transcript: %w", domain.ErrInvalidInput)
	}

	// Fixed stage order: the headline depends on the summary, the
	// keywords on both. A failed stage aborts the ones after it.
	summary, err := o.engine.Summarize(ctx, transcript, o.repo)
	if err != nil {
		return Result{}, fmt.Errorf("summarize stage: %w", err)
	}

	headline, err := metadata.Headline(summary)
	if err != nil {
		return Result{}, fmt.Errorf("headline stage: %w", err)
	}

	keywords := metadata.Keywords(transcript, summary)

	o.logger.Info(ctx, "Generated metadata: headline %q, %d keywords", headline, len(keywords))
	return Result{
		Headline: headline,
		Summary:  summary,
		Keywords: keywords,
	}, nil
}

func (o *implOrchestrator) GenerateByName(ctx context.Context, name string) (Result, error) {
	transcript, err := o.catalog.Read(ctx, name)
	if err != nil {
		return Result{}, err
	}
	return o.Generate(ctx, transcript)
}

func (o *implOrchestrator) Persist(ctx context.Context, filename string, res Result, imageFilename *string) error {
	if o.repo == nil {
		return fmt.Errorf("persist %q: no repository configured: %w", filename, domain.ErrStoreUnavailable)
	}
	if filename == "" {
		return fmt.Errorf("persist: empty filename: %w", domain.ErrInvalidInput)
	}
	return o.repo.Upsert(ctx, filename, res.Headline, res.Summary, res.Keywords, imageFilename)
}

func (o *implOrchestrator) FindForShow(ctx context.Context, showPattern string) []store.SummaryRecord {
	if o.repo == nil {
		o.logger.Warn(ctx, "FindForShow %q: no repository configured", showPattern)
		return nil
	}
	return o.repo.FindByShow(ctx, showPattern)
}
