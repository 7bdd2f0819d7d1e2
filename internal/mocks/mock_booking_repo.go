package mocks

import (
	"context"

	"github.com/oarslan/cinema-backoffice/internal/domain"
)

type MockBookingRepo struct {
	domain.BookingRepository
	GetAllFunc        func(ctx context.Context, filters domain.Filters) ([]domain.Booking, *domain.Metadata, error)
	GetByIdFunc       func(ctx context.Context, id int64) (domain.Booking, error)
	GetByShowtimeFunc func(ctx context.Context, key domain.ShowtimeKey) ([]domain.Booking, error)
	CreateFunc        func(ctx context.Context, booking domain.Booking) (domain.Booking, error)
	UpdateFunc        func(ctx context.Context, booking domain.Booking) (domain.Booking, error)
	SoftDeleteFunc    func(ctx context.Context, id int64) (domain.Booking, error)
	RestoreFunc       func(ctx context.Context, id int64) (domain.Booking, error)
}

func (m *MockBookingRepo) GetAll(ctx context.Context, filters domain.Filters) ([]domain.Booking, *domain.Metadata, error) {
	return m.GetAllFunc(ctx, filters)
}

func (m *MockBookingRepo) GetById(ctx context.Context, id int64) (domain.Booking, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockBookingRepo) GetByShowtime(ctx context.Context, key domain.ShowtimeKey) ([]domain.Booking, error) {
	return m.GetByShowtimeFunc(ctx, key)
}

func (m *MockBookingRepo) Create(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	return m.CreateFunc(ctx, booking)
}

func (m *MockBookingRepo) Update(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	return m.UpdateFunc(ctx, booking)
}

func (m *MockBookingRepo) SoftDelete(ctx context.Context, id int64) (domain.Booking, error) {
	return m.SoftDeleteFunc(ctx, id)
}

func (m *MockBookingRepo) Restore(ctx context.Context, id int64) (domain.Booking, error) {
	return m.RestoreFunc(ctx, id)
}
