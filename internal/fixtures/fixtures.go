// Package fixtures holds the embedded seed data the back office starts from.
// There is no backing store: every process start resets to this data.
package fixtures

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/oarslan/cinema-backoffice/internal/domain"
)

//go:embed data
var dataFS embed.FS

type Data struct {
	Movies     []domain.Movie
	Halls      []domain.Hall
	Screenings []domain.Screening
	Bookings   []domain.Booking
	Users      []domain.User
	News       []domain.News
}

func Load() (*Data, error) {
	var data Data

	if err := load("data/movies.json", &data.Movies); err != nil {
		return nil, err
	}
	if err := load("data/halls.json", &data.Halls); err != nil {
		return nil, err
	}
	if err := load("data/screenings.json", &data.Screenings); err != nil {
		return nil, err
	}
	if err := load("data/bookings.json", &data.Bookings); err != nil {
		return nil, err
	}
	if err := load("data/users.json", &data.Users); err != nil {
		return nil, err
	}
	if err := load("data/news.json", &data.News); err != nil {
		return nil, err
	}

	return &data, nil
}

func load[T any](name string, out *[]T) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read fixture %s: %w", name, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse fixture %s: %w", name, err)
	}

	return nil
}
