package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLifecycleDeleteRestoreRoundTrip(t *testing.T) {
	original := Booking{
		ID:           1,
		MovieTitle:   "Dune: Part Two",
		CustomerName: "Ada Lovelace",
		Hall:         "Hall 1",
		Seats:        []string{"A5"},
		Status:       StatusBooked,
		Showtime:     "2026-01-01 19:00",
	}

	b := original
	b.MarkDeleted()

	if !b.IsDeleted() || b.State() != StateDeleted {
		t.Fatal("expected booking to be in deleted state")
	}

	b.Restore()

	if b.State() != StateActive {
		t.Fatal("expected booking to be active after restore")
	}
	if diff := cmp.Diff(original, b); diff != "" {
		t.Errorf("restored booking differs from original (-want +got):\n%s", diff)
	}
}

func TestSortDeletedLast(t *testing.T) {
	movies := []Movie{
		{ID: 1, Title: "a", Lifecycle: Lifecycle{Deleted: true}},
		{ID: 2, Title: "b"},
		{ID: 3, Title: "c", Lifecycle: Lifecycle{Deleted: true}},
		{ID: 4, Title: "d"},
	}

	sorted := SortDeletedLast(movies)

	wantOrder := []int64{2, 4, 1, 3}
	for i, want := range wantOrder {
		if sorted[i].ID != want {
			t.Fatalf("position %d: id = %d, want %d", i, sorted[i].ID, want)
		}
	}

	// input order must be untouched
	if movies[0].ID != 1 {
		t.Error("SortDeletedLast mutated its input")
	}
}

func TestActiveOnly(t *testing.T) {
	screenings := []Screening{
		{ID: 1},
		{ID: 2, Lifecycle: Lifecycle{Deleted: true}},
		{ID: 3},
	}

	active := ActiveOnly(screenings)

	if len(active) != 2 {
		t.Fatalf("got %d active screenings, want 2", len(active))
	}
	if active[0].ID != 1 || active[1].ID != 3 {
		t.Errorf("unexpected active set: %+v", active)
	}
}
