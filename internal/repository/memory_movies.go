package repository

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/oarslan/cinema-backoffice/internal/domain"
)

type InMemoryMovieRepository struct {
	mu     sync.RWMutex
	movies []domain.Movie
	ids    *domain.IDSource
}

func NewInMemoryMovieRepository(seed []domain.Movie, ids *domain.IDSource) *InMemoryMovieRepository {
	ids.Seed(maxID(seed, func(m domain.Movie) int64 { return m.ID }))

	return &InMemoryMovieRepository{
		movies: slices.Clone(seed),
		ids:    ids,
	}
}

func (r *InMemoryMovieRepository) GetAll(ctx context.Context, filters domain.Filters) ([]domain.Movie, *domain.Metadata, error) {
	r.mu.RLock()
	snapshot := r.movies
	r.mu.RUnlock()

	matched := make([]domain.Movie, 0, len(snapshot))
	for _, m := range snapshot {
		if filters.Term == "" || containsFold(m.Title, filters.Term) || containsFold(m.Genre, filters.Term) {
			matched = append(matched, m)
		}
	}

	slices.SortStableFunc(matched, func(a, b domain.Movie) int {
		return sortMovies(a, b, filters)
	})
	matched = domain.SortDeletedLast(matched)

	page, metadata := paginate(matched, filters)

	return page, metadata, nil
}

func sortMovies(a, b domain.Movie, filters domain.Filters) int {
	var c int

	switch filters.SortField() {
	case "title":
		c = strings.Compare(a.Title, b.Title)
	case "releaseDate":
		c = strings.Compare(a.ReleaseDate, b.ReleaseDate)
	case "duration":
		c = a.Duration - b.Duration
	default:
		c = int(a.ID - b.ID)
	}

	if filters.SortDescending() {
		c = -c
	}

	return c
}

func (r *InMemoryMovieRepository) GetById(ctx context.Context, id int64) (domain.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.movies {
		if m.ID == id {
			return m, nil
		}
	}

	return domain.Movie{}, domain.ErrRecordNotFound
}

func (r *InMemoryMovieRepository) Create(ctx context.Context, movie domain.Movie) (domain.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	movie.ID = r.ids.Next()

	next := make([]domain.Movie, 0, len(r.movies)+1)
	next = append(next, r.movies...)
	next = append(next, movie)
	r.movies = next

	return movie, nil
}

func (r *InMemoryMovieRepository) Update(ctx context.Context, movie domain.Movie) (domain.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := slices.Clone(r.movies)
	for i := range next {
		if next[i].ID == movie.ID {
			next[i] = movie
			r.movies = next
			return movie, nil
		}
	}

	return domain.Movie{}, domain.ErrRecordNotFound
}

func (r *InMemoryMovieRepository) SoftDelete(ctx context.Context, id int64) (domain.Movie, error) {
	return r.setDeleted(id, true)
}

func (r *InMemoryMovieRepository) Restore(ctx context.Context, id int64) (domain.Movie, error) {
	return r.setDeleted(id, false)
}

func (r *InMemoryMovieRepository) setDeleted(id int64, deleted bool) (domain.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := slices.Clone(r.movies)
	for i := range next {
		if next[i].ID == id {
			next[i].Deleted = deleted
			r.movies = next
			return next[i], nil
		}
	}

	return domain.Movie{}, domain.ErrRecordNotFound
}
