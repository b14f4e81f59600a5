package extractions

import "context"

// Repo is the append-only store for extraction records.
type Repo interface {
	// Create inserts the record and fills in the assigned ID and CreatedAt.
	Create(ctx context.Context, e *Extraction) error
	GetByID(ctx context.Context, id int64) (Extraction, error)
	// ListAll returns every record, newest first.
	ListAll(ctx context.Context) ([]Extraction, error)
}
