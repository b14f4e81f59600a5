package extractions

import (
	"context"
	"database/sql"
	"errors"
)

// SQLRepo persists extractions in the shared *sql.DB. The $n placeholder
// style is native to Postgres and accepted by sqlite, so one repo serves
// both drivers.
type SQLRepo struct {
	DB *sql.DB
}

func (r *SQLRepo) Create(ctx context.Context, e *Extraction) error {
	const query = `
INSERT INTO extractions (filename, original_filename, extracted_text, confidence_score, file_size, image_width, image_height)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at`
	return r.DB.QueryRowContext(ctx, query,
		e.Filename,
		e.OriginalFilename,
		e.ExtractedText,
		e.ConfidenceScore,
		e.FileSize,
		e.ImageWidth,
		e.ImageHeight,
	).Scan(&e.ID, &e.CreatedAt)
}

func (r *SQLRepo) GetByID(ctx context.Context, id int64) (Extraction, error) {
	const query = `
SELECT id, filename, original_filename, extracted_text, confidence_score, file_size, image_width, image_height, created_at
FROM extractions
WHERE id = $1
LIMIT 1`
	e, err := scanExtraction(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Extraction{}, ErrNotFound
		}
		return Extraction{}, err
	}
	return e, nil
}

func (r *SQLRepo) ListAll(ctx context.Context) ([]Extraction, error) {
	const query = `
SELECT id, filename, original_filename, extracted_text, confidence_score, file_size, image_width, image_height, created_at
FROM extractions
ORDER BY created_at DESC, id DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Extraction
	for rows.Next() {
		e, err := scanExtraction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExtraction(row rowScanner) (Extraction, error) {
	var e Extraction
	var confidence sql.NullFloat64
	var fileSize, width, height sql.NullInt64
	err := row.Scan(
		&e.ID,
		&e.Filename,
		&e.OriginalFilename,
		&e.ExtractedText,
		&confidence,
		&fileSize,
		&width,
		&height,
		&e.CreatedAt,
	)
	if err != nil {
		return Extraction{}, err
	}
	if confidence.Valid {
		e.ConfidenceScore = &confidence.Float64
	}
	if fileSize.Valid {
		e.FileSize = &fileSize.Int64
	}
	if width.Valid {
		e.ImageWidth = &width.Int64
	}
	if height.Valid {
		e.ImageHeight = &height.Int64
	}
	return e, nil
}
