package repository

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/oarslan/cinema-backoffice/internal/domain"
)

type InMemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings []domain.Booking
	ids      *domain.IDSource
}

func NewInMemoryBookingRepository(seed []domain.Booking, ids *domain.IDSource) *InMemoryBookingRepository {
	ids.Seed(maxID(seed, func(b domain.Booking) int64 { return b.ID }))

	return &InMemoryBookingRepository{
		bookings: slices.Clone(seed),
		ids:      ids,
	}
}

func (r *InMemoryBookingRepository) GetAll(ctx context.Context, filters domain.Filters) ([]domain.Booking, *domain.Metadata, error) {
	r.mu.RLock()
	snapshot := r.bookings
	r.mu.RUnlock()

	matched := make([]domain.Booking, 0, len(snapshot))
	for _, b := range snapshot {
		if filters.Term == "" ||
			containsFold(b.CustomerName, filters.Term) ||
			containsFold(b.CustomerEmail, filters.Term) ||
			containsFold(b.MovieTitle, filters.Term) {
			matched = append(matched, b)
		}
	}

	slices.SortStableFunc(matched, func(a, b domain.Booking) int {
		return sortBookings(a, b, filters)
	})
	matched = domain.SortDeletedLast(matched)

	page, metadata := paginate(matched, filters)

	return page, metadata, nil
}

func sortBookings(a, b domain.Booking, filters domain.Filters) int {
	var c int

	switch filters.SortField() {
	case "bookingDate":
		c = strings.Compare(a.BookingDate, b.BookingDate)
	case "customerName":
		c = strings.Compare(a.CustomerName, b.CustomerName)
	case "showtime":
		c = strings.Compare(a.Showtime, b.Showtime)
	case "totalPrice":
		c = a.TotalPrice.Cmp(b.TotalPrice)
	default:
		c = int(a.ID - b.ID)
	}

	if filters.SortDescending() {
		c = -c
	}

	return c
}

func (r *InMemoryBookingRepository) GetById(ctx context.Context, id int64) (domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bookings {
		if b.ID == id {
			return b, nil
		}
	}

	return domain.Booking{}, domain.ErrRecordNotFound
}

// GetByShowtime returns every booking (deleted included) matching the
// showtime key. Callers filter by lifecycle as needed; the occupancy resolver
// skips deleted records itself.
func (r *InMemoryBookingRepository) GetByShowtime(ctx context.Context, key domain.ShowtimeKey) ([]domain.Booking, error) {
	r.mu.RLock()
	snapshot := r.bookings
	r.mu.RUnlock()

	matched := make([]domain.Booking, 0, len(snapshot))
	for _, b := range snapshot {
		if b.Key() == key {
			matched = append(matched, b)
		}
	}

	return matched, nil
}

func (r *InMemoryBookingRepository) Create(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking.ID = r.ids.Next()

	next := make([]domain.Booking, 0, len(r.bookings)+1)
	next = append(next, r.bookings...)
	next = append(next, booking)
	r.bookings = next

	return booking, nil
}

func (r *InMemoryBookingRepository) Update(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := slices.Clone(r.bookings)
	for i := range next {
		if next[i].ID == booking.ID {
			next[i] = booking
			r.bookings = next
			return booking, nil
		}
	}

	return domain.Booking{}, domain.ErrRecordNotFound
}

func (r *InMemoryBookingRepository) SoftDelete(ctx context.Context, id int64) (domain.Booking, error) {
	return r.setDeleted(id, true)
}

func (r *InMemoryBookingRepository) Restore(ctx context.Context, id int64) (domain.Booking, error) {
	return r.setDeleted(id, false)
}

func (r *InMemoryBookingRepository) setDeleted(id int64, deleted bool) (domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := slices.Clone(r.bookings)
	for i := range next {
		if next[i].ID == id {
			next[i].Deleted = deleted
			r.bookings = next
			return next[i], nil
		}
	}

	return domain.Booking{}, domain.ErrRecordNotFound
}
