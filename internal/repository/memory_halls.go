package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/oarslan/cinema-backoffice/internal/domain"
)

type InMemoryHallRepository struct {
	mu    sync.RWMutex
	halls []domain.Hall
	ids   *domain.IDSource
}

func NewInMemoryHallRepository(seed []domain.Hall, ids *domain.IDSource) *InMemoryHallRepository {
	ids.Seed(maxID(seed, func(h domain.Hall) int64 { return h.ID }))

	return &InMemoryHallRepository{
		halls: slices.Clone(seed),
		ids:   ids,
	}
}

func (r *InMemoryHallRepository) GetAll(ctx context.Context) ([]domain.Hall, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.halls, nil
}

func (r *InMemoryHallRepository) GetById(ctx context.Context, id int64) (domain.Hall, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.halls {
		if h.ID == id {
			return h, nil
		}
	}

	return domain.Hall{}, domain.ErrRecordNotFound
}

// GetByName looks a hall up by its name, the key screenings and bookings
// reference halls with.
func (r *InMemoryHallRepository) GetByName(ctx context.Context, name string) (domain.Hall, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.halls {
		if h.Name == name {
			return h, nil
		}
	}

	return domain.Hall{}, domain.ErrRecordNotFound
}

func (r *InMemoryHallRepository) Create(ctx context.Context, hall domain.Hall) (domain.Hall, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, h := range r.halls {
		if h.Name == hall.Name {
			return domain.Hall{}, domain.ErrDuplicateRecord
		}
	}

	hall.ID = r.ids.Next()

	next := make([]domain.Hall, 0, len(r.halls)+1)
	next = append(next, r.halls...)
	next = append(next, hall)
	r.halls = next

	return hall, nil
}

func (r *InMemoryHallRepository) Update(ctx context.Context, hall domain.Hall) (domain.Hall, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, h := range r.halls {
		if h.Name == hall.Name && h.ID != hall.ID {
			return domain.Hall{}, domain.ErrDuplicateRecord
		}
	}

	next := slices.Clone(r.halls)
	for i := range next {
		if next[i].ID == hall.ID {
			next[i] = hall
			r.halls = next
			return hall, nil
		}
	}

	return domain.Hall{}, domain.ErrRecordNotFound
}
