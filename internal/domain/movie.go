package domain

import "context"

type MovieStatus string

const (
	MovieInProgress MovieStatus = "progress"
	MovieComingSoon MovieStatus = "soon"
)

type MovieFormat string

const (
	Format2D MovieFormat = "2D"
	Format3D MovieFormat = "3D"
)

type ScreeningPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Movie struct {
	ID              int64           `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Poster          string          `json:"poster"`
	Href            string          `json:"href"`
	Format          MovieFormat     `json:"format"`
	Languages       []string        `json:"languages"`
	Status          MovieStatus     `json:"status"`
	TopTier         bool            `json:"toptier"`
	Duration        int             `json:"duration"`
	Genre           string          `json:"genre"`
	ReleaseDate     string          `json:"releaseDate"`
	ScreeningPeriod ScreeningPeriod `json:"screeningPeriod"`
	Lifecycle
}

type MovieRepository interface {
	GetAll(ctx context.Context, filters Filters) ([]Movie, *Metadata, error)
	GetById(ctx context.Context, id int64) (Movie, error)
	Create(ctx context.Context, movie Movie) (Movie, error)
	Update(ctx context.Context, movie Movie) (Movie, error)
	SoftDelete(ctx context.Context, id int64) (Movie, error)
	Restore(ctx context.Context, id int64) (Movie, error)
}
