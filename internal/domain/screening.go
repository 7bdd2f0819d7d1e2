package domain

import "context"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Screening struct {
	ID         int64  `json:"id"`
	MovieID    int64  `json:"movieId"`
	MovieTitle string `json:"movieTitle"`
	Hall       string `json:"hall"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Lifecycle
}

// Showtime is the combined "2006-01-02 15:04" string bookings are keyed by.
func (s Screening) Showtime() string {
	return s.Date + " " + s.Time
}

func (s Screening) Key() ShowtimeKey {
	return ShowtimeKey{
		MovieTitle: s.MovieTitle,
		Hall:       s.Hall,
		Showtime:   s.Showtime(),
	}
}

// ShowtimeKey identifies a showtime instance the way bookings reference it:
// by denormalized movie title, hall name, and combined date-time string, not
// by screening id. Matching is exact and case-sensitive.
type ShowtimeKey struct {
	MovieTitle string
	Hall       string
	Showtime   string
}

type ScreeningRepository interface {
	GetAll(ctx context.Context, filters Filters) ([]Screening, *Metadata, error)
	GetById(ctx context.Context, id int64) (Screening, error)
	GetBySlot(ctx context.Context, hall, date, time string) ([]Screening, error)
	Create(ctx context.Context, screening Screening) (Screening, error)
	Update(ctx context.Context, screening Screening) (Screening, error)
	SoftDelete(ctx context.Context, id int64) (Screening, error)
	Restore(ctx context.Context, id int64) (Screening, error)
}
