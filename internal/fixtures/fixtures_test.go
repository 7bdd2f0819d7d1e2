package fixtures

import (
	"testing"

	"github.com/oarslan/cinema-backoffice/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	data, err := Load()
	require.NoError(t, err)

	require.NotEmpty(t, data.Movies)
	require.NotEmpty(t, data.Halls)
	require.NotEmpty(t, data.Screenings)
	require.NotEmpty(t, data.Bookings)
	require.NotEmpty(t, data.Users)
	require.NotEmpty(t, data.News)
}

// Screenings and bookings reference halls and movies by name and title, so a
// typo in one fixture file silently orphans records. Keep them consistent.
func TestFixtureReferences(t *testing.T) {
	data, err := Load()
	require.NoError(t, err)

	hallNames := make(map[string]bool)
	for _, h := range data.Halls {
		hallNames[h.Name] = true
	}

	movieTitles := make(map[string]bool)
	for _, m := range data.Movies {
		movieTitles[m.Title] = true
	}

	for _, s := range data.Screenings {
		require.True(t, hallNames[s.Hall], "screening %d references unknown hall %q", s.ID, s.Hall)
		require.True(t, movieTitles[s.MovieTitle], "screening %d references unknown movie %q", s.ID, s.MovieTitle)
	}

	for _, b := range data.Bookings {
		require.True(t, hallNames[b.Hall], "booking %d references unknown hall %q", b.ID, b.Hall)
		require.True(t, movieTitles[b.MovieTitle], "booking %d references unknown movie %q", b.ID, b.MovieTitle)
		require.NotEmpty(t, b.Seats, "booking %d has no seats", b.ID)
	}
}

func TestFixtureSeatsExistInHalls(t *testing.T) {
	data, err := Load()
	require.NoError(t, err)

	halls := make(map[string]domain.Hall)
	for _, h := range data.Halls {
		halls[h.Name] = h
	}

	for _, b := range data.Bookings {
		hall := halls[b.Hall]
		for _, seat := range b.Seats {
			require.True(t, hall.SeatMap.Contains(seat), "booking %d seat %q not in hall %q", b.ID, seat, b.Hall)
		}
	}
}
