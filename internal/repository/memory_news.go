package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/oarslan/cinema-backoffice/internal/domain"
)

type InMemoryNewsRepository struct {
	mu   sync.RWMutex
	news []domain.News
}

func NewInMemoryNewsRepository(seed []domain.News) *InMemoryNewsRepository {
	return &InMemoryNewsRepository{news: slices.Clone(seed)}
}

func (r *InMemoryNewsRepository) GetAll(ctx context.Context) ([]domain.News, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.news, nil
}

func (r *InMemoryNewsRepository) GetById(ctx context.Context, id int64) (domain.News, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, n := range r.news {
		if n.ID == id {
			return n, nil
		}
	}

	return domain.News{}, domain.ErrRecordNotFound
}
