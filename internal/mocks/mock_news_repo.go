package mocks

import (
	"context"

	"github.com/oarslan/cinema-backoffice/internal/domain"
)

type MockNewsRepo struct {
	domain.NewsRepository
	GetAllFunc  func(ctx context.Context) ([]domain.News, error)
	GetByIdFunc func(ctx context.Context, id int64) (domain.News, error)
}

func (m *MockNewsRepo) GetAll(ctx context.Context) ([]domain.News, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockNewsRepo) GetById(ctx context.Context, id int64) (domain.News, error) {
	return m.GetByIdFunc(ctx, id)
}
