package repository

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/oarslan/cinema-backoffice/internal/domain"
)

type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users []domain.User
	ids   *domain.IDSource
}

func NewInMemoryUserRepository(seed []domain.User, ids *domain.IDSource) *InMemoryUserRepository {
	ids.Seed(maxID(seed, func(u domain.User) int64 { return u.ID }))

	return &InMemoryUserRepository{
		users: slices.Clone(seed),
		ids:   ids,
	}
}

func (r *InMemoryUserRepository) GetAll(ctx context.Context, filters domain.Filters) ([]domain.User, *domain.Metadata, error) {
	r.mu.RLock()
	snapshot := r.users
	r.mu.RUnlock()

	matched := make([]domain.User, 0, len(snapshot))
	for _, u := range snapshot {
		if filters.Term == "" || containsFold(u.Name, filters.Term) || containsFold(u.Email, filters.Term) {
			matched = append(matched, u)
		}
	}

	slices.SortStableFunc(matched, func(a, b domain.User) int {
		return sortUsers(a, b, filters)
	})
	matched = domain.SortDeletedLast(matched)

	page, metadata := paginate(matched, filters)

	return page, metadata, nil
}

func sortUsers(a, b domain.User, filters domain.Filters) int {
	var c int

	switch filters.SortField() {
	case "name":
		c = strings.Compare(a.Name, b.Name)
	case "registrationDate":
		c = strings.Compare(a.RegistrationDate, b.RegistrationDate)
	default:
		c = int(a.ID - b.ID)
	}

	if filters.SortDescending() {
		c = -c
	}

	return c
}

func (r *InMemoryUserRepository) GetById(ctx context.Context, id int64) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}

	return domain.User{}, domain.ErrRecordNotFound
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email && !u.IsDeleted() {
			return domain.User{}, domain.ErrDuplicateRecord
		}
	}

	user.ID = r.ids.Next()

	next := make([]domain.User, 0, len(r.users)+1)
	next = append(next, r.users...)
	next = append(next, user)
	r.users = next

	return user, nil
}

func (r *InMemoryUserRepository) Update(ctx context.Context, user domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := slices.Clone(r.users)
	for i := range next {
		if next[i].ID == user.ID {
			next[i] = user
			r.users = next
			return user, nil
		}
	}

	return domain.User{}, domain.ErrRecordNotFound
}

func (r *InMemoryUserRepository) SoftDelete(ctx context.Context, id int64) (domain.User, error) {
	return r.setDeleted(id, true)
}

func (r *InMemoryUserRepository) Restore(ctx context.Context, id int64) (domain.User, error) {
	return r.setDeleted(id, false)
}

func (r *InMemoryUserRepository) setDeleted(id int64, deleted bool) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := slices.Clone(r.users)
	for i := range next {
		if next[i].ID == id {
			next[i].Deleted = deleted
			r.users = next
			return next[i], nil
		}
	}

	return domain.User{}, domain.ErrRecordNotFound
}
