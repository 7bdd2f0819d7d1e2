package repository

import (
	"context"
	"testing"

	"github.com/oarslan/cinema-backoffice/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func seedBookings() []domain.Booking {
	return []domain.Booking{
		{
			ID:           10,
			MovieTitle:   "Dune: Part Two",
			CustomerName: "Elif Kaya",
			Hall:         "Hall 1",
			Seats:        []string{"A5"},
			Status:       domain.StatusBought,
			Showtime:     "2026-03-05 19:00",
			TotalPrice:   decimal.NewFromFloat(14),
		},
		{
			ID:           20,
			MovieTitle:   "Dune: Part Two",
			CustomerName: "Mark Jensen",
			Hall:         "Hall 1",
			Seats:        []string{"C3"},
			Status:       domain.StatusBooked,
			Showtime:     "2026-03-05 19:00",
			TotalPrice:   decimal.NewFromFloat(14),
		},
	}
}

func TestBookingRepositoryCopyOnWrite(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryBookingRepository(seedBookings(), domain.NewIDSource())

	before, err := repo.GetByShowtime(ctx, domain.ShowtimeKey{
		MovieTitle: "Dune: Part Two",
		Hall:       "Hall 1",
		Showtime:   "2026-03-05 19:00",
	})
	require.NoError(t, err)
	require.Len(t, before, 2)

	updated := before[1]
	updated.Status = domain.StatusBought
	_, err = repo.Update(ctx, updated)
	require.NoError(t, err)

	// the snapshot taken before the mutation must be unchanged
	require.Equal(t, domain.StatusBooked, before[1].Status)

	after, err := repo.GetById(ctx, 20)
	require.NoError(t, err)
	require.Equal(t, domain.StatusBought, after.Status)
}

func TestBookingRepositoryCreateAssignsFreshIds(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryBookingRepository(seedBookings(), domain.NewIDSource())

	first, err := repo.Create(ctx, domain.Booking{CustomerName: "New", Seats: []string{"B1"}})
	require.NoError(t, err)
	second, err := repo.Create(ctx, domain.Booking{CustomerName: "Newer", Seats: []string{"B2"}})
	require.NoError(t, err)

	require.Greater(t, first.ID, int64(20), "ids must not collide with seed data")
	require.Greater(t, second.ID, first.ID)
}

func TestBookingRepositorySoftDeleteAndRestore(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryBookingRepository(seedBookings(), domain.NewIDSource())

	original, err := repo.GetById(ctx, 10)
	require.NoError(t, err)

	deleted, err := repo.SoftDelete(ctx, 10)
	require.NoError(t, err)
	require.True(t, deleted.IsDeleted())

	// still present in the collection
	got, err := repo.GetById(ctx, 10)
	require.NoError(t, err)
	require.True(t, got.IsDeleted())

	restored, err := repo.Restore(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, original, restored)
}

func TestBookingRepositoryNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryBookingRepository(nil, domain.NewIDSource())

	_, err := repo.GetById(ctx, 404)
	require.ErrorIs(t, err, domain.ErrRecordNotFound)

	_, err = repo.Update(ctx, domain.Booking{ID: 404})
	require.ErrorIs(t, err, domain.ErrRecordNotFound)

	_, err = repo.SoftDelete(ctx, 404)
	require.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestBookingRepositoryGetAllSortsDeletedLast(t *testing.T) {
	ctx := context.Background()

	seed := seedBookings()
	seed[0].Deleted = true

	repo := NewInMemoryBookingRepository(seed, domain.NewIDSource())

	all, metadata, err := repo.GetAll(ctx, domain.Filters{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Equal(t, 2, metadata.TotalRecords)
	require.False(t, all[0].IsDeleted())
	require.True(t, all[1].IsDeleted())
}

func TestBookingRepositoryGetAllTermFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryBookingRepository(seedBookings(), domain.NewIDSource())

	all, metadata, err := repo.GetAll(ctx, domain.Filters{Page: 1, PageSize: 10, Term: "jensen"})
	require.NoError(t, err)
	require.Equal(t, 1, metadata.TotalRecords)
	require.Equal(t, "Mark Jensen", all[0].CustomerName)
}
