package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shownotes/internal/domain"
)

func (r *implRepository) FindByShow(ctx context.Context, showPattern string) []SummaryRecord {
	const query = `
		SELECT filename, headline, summary, keywords, mp3_filename, created_at, image_filename
		FROM summaries
		WHERE filename LIKE '%' || $1 || '%'
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, showPattern)
	if err != nil {
		r.logger.Error(ctx, "FindByShow %q query failed: %v", showPattern, err)
		return nil
	}
	defer rows.Close()

	var records []SummaryRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			r.logger.Error(ctx, "FindByShow %q scan failed: %v", showPattern, err)
			return nil
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error(ctx, "FindByShow %q rows failed: %v", showPattern, err)
		return nil
	}

	return records
}

func (r *implRepository) FindByFilename(ctx context.Context, filename string) (SummaryRecord, error) {
	const query = `
		SELECT filename, headline, summary, keywords, mp3_filename, created_at, image_filename
		FROM summaries
		WHERE filename = $1`

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, filename))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SummaryRecord{}, fmt.Errorf("summary %q: %w", filename, domain.ErrNotFound)
		}
		return SummaryRecord{}, fmt.Errorf("find summary %q: %w", filename, err)
	}

	return rec, nil
}

func (r *implRepository) Upsert(ctx context.Context, filename, headline, summary string, keywords []string, imageFilename *string) error {
	// Single statement so concurrent writers for the same filename
	// cannot interleave partial field writes. created_at is only set by
	// the INSERT arm; COALESCE keeps the stored image when none is given.
	const query = `
		INSERT INTO summaries (filename, headline, summary, keywords, mp3_filename, created_at, image_filename)
		VALUES ($1, $2, $3, $4, $1, NOW(), $5)
		ON CONFLICT (filename) DO UPDATE SET
			headline       = EXCLUDED.headline,
			summary        = EXCLUDED.summary,
			keywords       = EXCLUDED.keywords,
			image_filename = COALESCE(EXCLUDED.image_filename, summaries.image_filename)`

	_, err := r.db.ExecContext(ctx, query, filename, headline, summary, joinKeywords(keywords), imageFilename)
	if err != nil {
		return fmt.Errorf("upsert summary %q: %w", filename, err)
	}
	return nil
}

func (r *implRepository) UpdateEdit(ctx context.Context, filename, headline, summary string, keywords []string, imageFilename *string) error {
	const query = `
		UPDATE summaries SET
			headline       = $2,
			summary        = $3,
			keywords       = $4,
			image_filename = COALESCE($5, image_filename)
		WHERE filename = $1`

	res, err := r.db.ExecContext(ctx, query, filename, headline, summary, joinKeywords(keywords), imageFilename)
	if err != nil {
		return fmt.Errorf("update summary %q: %w", filename, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update summary %q: %w", filename, err)
	}
	if affected == 0 {
		return fmt.Errorf("summary %q: %w", filename, domain.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row rowScanner) (SummaryRecord, error) {
	var rec SummaryRecord
	var keywords sql.NullString
	var headline, summary, mp3 sql.NullString
	var image sql.NullString

	if err := row.Scan(&rec.Filename, &headline, &summary, &keywords, &mp3, &rec.CreatedAt, &image); err != nil {
		return SummaryRecord{}, err
	}

	rec.Headline = headline.String
	rec.Summary = summary.String
	rec.Keywords = splitKeywords(keywords.String)
	rec.MP3Filename = mp3.String
	if image.Valid {
		rec.ImageFilename = &image.String
	}
	return rec, nil
}
