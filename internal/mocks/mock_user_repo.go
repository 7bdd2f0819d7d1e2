package mocks

import (
	"context"

	"github.com/oarslan/cinema-backoffice/internal/domain"
)

type MockUserRepo struct {
	domain.UserRepository
	GetAllFunc     func(ctx context.Context, filters domain.Filters) ([]domain.User, *domain.Metadata, error)
	GetByIdFunc    func(ctx context.Context, id int64) (domain.User, error)
	CreateFunc     func(ctx context.Context, user domain.User) (domain.User, error)
	UpdateFunc     func(ctx context.Context, user domain.User) (domain.User, error)
	SoftDeleteFunc func(ctx context.Context, id int64) (domain.User, error)
	RestoreFunc    func(ctx context.Context, id int64) (domain.User, error)
}

func (m *MockUserRepo) GetAll(ctx context.Context, filters domain.Filters) ([]domain.User, *domain.Metadata, error) {
	return m.GetAllFunc(ctx, filters)
}

func (m *MockUserRepo) GetById(ctx context.Context, id int64) (domain.User, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	return m.CreateFunc(ctx, user)
}

func (m *MockUserRepo) Update(ctx context.Context, user domain.User) (domain.User, error) {
	return m.UpdateFunc(ctx, user)
}

func (m *MockUserRepo) SoftDelete(ctx context.Context, id int64) (domain.User, error) {
	return m.SoftDeleteFunc(ctx, id)
}

func (m *MockUserRepo) Restore(ctx context.Context, id int64) (domain.User, error) {
	return m.RestoreFunc(ctx, id)
}
