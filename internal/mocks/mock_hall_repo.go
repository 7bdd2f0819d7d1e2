package mocks

import (
	"context"

	"github.com/oarslan/cinema-backoffice/internal/domain"
)

type MockHallRepo struct {
	domain.HallRepository
	GetAllFunc    func(ctx context.Context) ([]domain.Hall, error)
	GetByIdFunc   func(ctx context.Context, id int64) (domain.Hall, error)
	GetByNameFunc func(ctx context.Context, name string) (domain.Hall, error)
	CreateFunc    func(ctx context.Context, hall domain.Hall) (domain.Hall, error)
	UpdateFunc    func(ctx context.Context, hall domain.Hall) (domain.Hall, error)
}

func (m *MockHallRepo) GetAll(ctx context.Context) ([]domain.Hall, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockHallRepo) GetById(ctx context.Context, id int64) (domain.Hall, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockHallRepo) GetByName(ctx context.Context, name string) (domain.Hall, error) {
	return m.GetByNameFunc(ctx, name)
}

func (m *MockHallRepo) Create(ctx context.Context, hall domain.Hall) (domain.Hall, error) {
	return m.CreateFunc(ctx, hall)
}

func (m *MockHallRepo) Update(ctx context.Context, hall domain.Hall) (domain.Hall, error) {
	return m.UpdateFunc(ctx, hall)
}
