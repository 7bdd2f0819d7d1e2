package domain

import (
	"context"
	"slices"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	// StatusBooked is a reservation recorded but not yet paid.
	StatusBooked BookingStatus = "booked"
	// StatusBought is a reservation recorded and paid.
	StatusBought BookingStatus = "bought"
)

type Booking struct {
	ID            int64           `json:"id"`
	MovieID       int64           `json:"movieId"`
	MovieTitle    string          `json:"movieTitle"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	CustomerPhone string          `json:"customerPhone"`
	Hall          string          `json:"hall"`
	Seats         []string        `json:"seats"`
	Status        BookingStatus   `json:"status"`
	BookingDate   string          `json:"bookingDate"`
	Showtime      string          `json:"showtime"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	Lifecycle
}

func (b Booking) Key() ShowtimeKey {
	return ShowtimeKey{
		MovieTitle: b.MovieTitle,
		Hall:       b.Hall,
		Showtime:   b.Showtime,
	}
}

func (b Booking) HasSeat(seatID string) bool {
	return slices.Contains(b.Seats, seatID)
}

// FindBookingForSeat finds the non-deleted booking covering seatID for the
// given showtime. At most one such booking should exist; when duplicate data
// makes several match, the lowest-id one is returned so the result is
// deterministic, and matches carries the full count so callers can flag the
// anomaly instead of silently dropping records.
func FindBookingForSeat(key ShowtimeKey, seatID string, bookings []Booking) (match Booking, matches int) {
	for _, b := range bookings {
		if b.IsDeleted() || b.Key() != key || !b.HasSeat(seatID) {
			continue
		}

		matches++
		if matches == 1 || b.ID < match.ID {
			match = b
		}
	}

	return match, matches
}

type BookingRepository interface {
	GetAll(ctx context.Context, filters Filters) ([]Booking, *Metadata, error)
	GetById(ctx context.Context, id int64) (Booking, error)
	GetByShowtime(ctx context.Context, key ShowtimeKey) ([]Booking, error)
	Create(ctx context.Context, booking Booking) (Booking, error)
	Update(ctx context.Context, booking Booking) (Booking, error)
	SoftDelete(ctx context.Context, id int64) (Booking, error)
	Restore(ctx context.Context, id int64) (Booking, error)
}
