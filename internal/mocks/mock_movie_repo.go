package mocks

import (
	"context"

	"github.com/oarslan/cinema-backoffice/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	GetAllFunc     func(ctx context.Context, filters domain.Filters) ([]domain.Movie, *domain.Metadata, error)
	GetByIdFunc    func(ctx context.Context, id int64) (domain.Movie, error)
	CreateFunc     func(ctx context.Context, movie domain.Movie) (domain.Movie, error)
	UpdateFunc     func(ctx context.Context, movie domain.Movie) (domain.Movie, error)
	SoftDeleteFunc func(ctx context.Context, id int64) (domain.Movie, error)
	RestoreFunc    func(ctx context.Context, id int64) (domain.Movie, error)
}

func (m *MockMovieRepo) GetAll(ctx context.Context, filters domain.Filters) ([]domain.Movie, *domain.Metadata, error) {
	return m.GetAllFunc(ctx, filters)
}

func (m *MockMovieRepo) GetById(ctx context.Context, id int64) (domain.Movie, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockMovieRepo) Create(ctx context.Context, movie domain.Movie) (domain.Movie, error) {
	return m.CreateFunc(ctx, movie)
}

func (m *MockMovieRepo) Update(ctx context.Context, movie domain.Movie) (domain.Movie, error) {
	return m.UpdateFunc(ctx, movie)
}

func (m *MockMovieRepo) SoftDelete(ctx context.Context, id int64) (domain.Movie, error) {
	return m.SoftDeleteFunc(ctx, id)
}

func (m *MockMovieRepo) Restore(ctx context.Context, id int64) (domain.Movie, error) {
	return m.RestoreFunc(ctx, id)
}
