package mocks

import (
	"context"

	"github.com/oarslan/cinema-backoffice/internal/domain"
)

type MockScreeningRepo struct {
	domain.ScreeningRepository
	GetAllFunc     func(ctx context.Context, filters domain.Filters) ([]domain.Screening, *domain.Metadata, error)
	GetByIdFunc    func(ctx context.Context, id int64) (domain.Screening, error)
	GetBySlotFunc  func(ctx context.Context, hall, date, time string) ([]domain.Screening, error)
	CreateFunc     func(ctx context.Context, screening domain.Screening) (domain.Screening, error)
	UpdateFunc     func(ctx context.Context, screening domain.Screening) (domain.Screening, error)
	SoftDeleteFunc func(ctx context.Context, id int64) (domain.Screening, error)
	RestoreFunc    func(ctx context.Context, id int64) (domain.Screening, error)
}

func (m *MockScreeningRepo) GetAll(ctx context.Context, filters domain.Filters) ([]domain.Screening, *domain.Metadata, error) {
	return m.GetAllFunc(ctx, filters)
}

func (m *MockScreeningRepo) GetById(ctx context.Context, id int64) (domain.Screening, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockScreeningRepo) GetBySlot(ctx context.Context, hall, date, time string) ([]domain.Screening, error) {
	return m.GetBySlotFunc(ctx, hall, date, time)
}

func (m *MockScreeningRepo) Create(ctx context.Context, screening domain.Screening) (domain.Screening, error) {
	return m.CreateFunc(ctx, screening)
}

func (m *MockScreeningRepo) Update(ctx context.Context, screening domain.Screening) (domain.Screening, error) {
	return m.UpdateFunc(ctx, screening)
}

func (m *MockScreeningRepo) SoftDelete(ctx context.Context, id int64) (domain.Screening, error) {
	return m.SoftDeleteFunc(ctx, id)
}

func (m *MockScreeningRepo) Restore(ctx context.Context, id int64) (domain.Screening, error) {
	return m.RestoreFunc(ctx, id)
}
