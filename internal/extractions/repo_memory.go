package extractions

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Repo used by tests.
type MemoryRepo struct {
	mu      sync.Mutex
	nextID  int64
	records []Extraction
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: 1}
}

func (r *MemoryRepo) Create(ctx context.Context, e *Extraction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = r.nextID
	r.nextID++
	e.CreatedAt = time.Now().UTC()
	r.records = append(r.records, *e)
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Extraction, error) {
	if err := ctx.Err(); err != nil {
		return Extraction{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.records {
		if e.ID == id {
			return e, nil
		}
	}
	return Extraction{}, ErrNotFound
}

func (r *MemoryRepo) ListAll(ctx context.Context) ([]Extraction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]Extraction(nil), r.records...)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}
