package repository

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/oarslan/cinema-backoffice/internal/domain"
)

type InMemoryScreeningRepository struct {
	mu         sync.RWMutex
	screenings []domain.Screening
	ids        *domain.IDSource
}

func NewInMemoryScreeningRepository(seed []domain.Screening, ids *domain.IDSource) *InMemoryScreeningRepository {
	ids.Seed(maxID(seed, func(s domain.Screening) int64 { return s.ID }))

	return &InMemoryScreeningRepository{
		screenings: slices.Clone(seed),
		ids:        ids,
	}
}

func (r *InMemoryScreeningRepository) GetAll(ctx context.Context, filters domain.Filters) ([]domain.Screening, *domain.Metadata, error) {
	r.mu.RLock()
	snapshot := r.screenings
	r.mu.RUnlock()

	matched := make([]domain.Screening, 0, len(snapshot))
	for _, s := range snapshot {
		if filters.Term == "" || containsFold(s.MovieTitle, filters.Term) || containsFold(s.Hall, filters.Term) {
			matched = append(matched, s)
		}
	}

	slices.SortStableFunc(matched, func(a, b domain.Screening) int {
		return sortScreenings(a, b, filters)
	})
	matched = domain.SortDeletedLast(matched)

	page, metadata := paginate(matched, filters)

	return page, metadata, nil
}

func sortScreenings(a, b domain.Screening, filters domain.Filters) int {
	var c int

	switch filters.SortField() {
	case "date":
		if c = strings.Compare(a.Date, b.Date); c == 0 {
			c = strings.Compare(a.Time, b.Time)
		}
	case "time":
		c = strings.Compare(a.Time, b.Time)
	case "movieTitle":
		c = strings.Compare(a.MovieTitle, b.MovieTitle)
	case "hall":
		c = strings.Compare(a.Hall, b.Hall)
	default:
		c = int(a.ID - b.ID)
	}

	if filters.SortDescending() {
		c = -c
	}

	return c
}

func (r *InMemoryScreeningRepository) GetById(ctx context.Context, id int64) (domain.Screening, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.screenings {
		if s.ID == id {
			return s, nil
		}
	}

	return domain.Screening{}, domain.ErrRecordNotFound
}

// GetBySlot returns every screening occupying the (hall, date, time) slot,
// deleted ones included. Matching is exact string equality.
func (r *InMemoryScreeningRepository) GetBySlot(ctx context.Context, hall, date, time string) ([]domain.Screening, error) {
	r.mu.RLock()
	snapshot := r.screenings
	r.mu.RUnlock()

	var matched []domain.Screening
	for _, s := range snapshot {
		if s.Hall == hall && s.Date == date && s.Time == time {
			matched = append(matched, s)
		}
	}

	return matched, nil
}

func (r *InMemoryScreeningRepository) Create(ctx context.Context, screening domain.Screening) (domain.Screening, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	screening.ID = r.ids.Next()

	next := make([]domain.Screening, 0, len(r.screenings)+1)
	next = append(next, r.screenings...)
	next = append(next, screening)
	r.screenings = next

	return screening, nil
}

func (r *InMemoryScreeningRepository) Update(ctx context.Context, screening domain.Screening) (domain.Screening, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := slices.Clone(r.screenings)
	for i := range next {
		if next[i].ID == screening.ID {
			next[i] = screening
			r.screenings = next
			return screening, nil
		}
	}

	return domain.Screening{}, domain.ErrRecordNotFound
}

func (r *InMemoryScreeningRepository) SoftDelete(ctx context.Context, id int64) (domain.Screening, error) {
	return r.setDeleted(id, true)
}

func (r *InMemoryScreeningRepository) Restore(ctx context.Context, id int64) (domain.Screening, error) {
	return r.setDeleted(id, false)
}

func (r *InMemoryScreeningRepository) setDeleted(id int64, deleted bool) (domain.Screening, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := slices.Clone(r.screenings)
	for i := range next {
		if next[i].ID == id {
			next[i].Deleted = deleted
			r.screenings = next
			return next[i], nil
		}
	}

	return domain.Screening{}, domain.ErrRecordNotFound
}
