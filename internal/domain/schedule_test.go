package domain

import "testing"

func TestFindScheduleConflict(t *testing.T) {
	existing := []Screening{
		{ID: 1, MovieTitle: "Dune: Part Two", Hall: "Hall 1", Date: "2026-01-01", Time: "19:00"},
		{ID: 2, MovieTitle: "Oppenheimer", Hall: "Hall 2", Date: "2026-01-01", Time: "19:00"},
		{ID: 3, MovieTitle: "Oppenheimer", Hall: "Hall 1", Date: "2026-01-02", Time: "21:30", Lifecycle: Lifecycle{Deleted: true}},
	}

	tests := []struct {
		name         string
		candidate    Screening
		wantConflict bool
		wantID       int64
	}{
		{
			name:         "same hall, date and time conflicts even for a different movie",
			candidate:    Screening{ID: 99, MovieTitle: "The Batman", Hall: "Hall 1", Date: "2026-01-01", Time: "19:00"},
			wantConflict: true,
			wantID:       1,
		},
		{
			name:      "same slot in a different hall does not conflict",
			candidate: Screening{ID: 99, Hall: "Hall 3", Date: "2026-01-01", Time: "19:00"},
		},
		{
			name:      "same hall and date at a different time does not conflict",
			candidate: Screening{ID: 99, Hall: "Hall 1", Date: "2026-01-01", Time: "21:00"},
		},
		{
			name:      "editing a screening does not conflict with itself",
			candidate: Screening{ID: 1, Hall: "Hall 1", Date: "2026-01-01", Time: "19:00"},
		},
		{
			name:      "deleted screenings do not occupy their slot",
			candidate: Screening{ID: 99, Hall: "Hall 1", Date: "2026-01-02", Time: "21:30"},
		},
		{
			name:      "empty collection never conflicts",
			candidate: Screening{ID: 99, Hall: "Hall 1", Date: "2026-01-01", Time: "19:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screenings := existing
			if tt.name == "empty collection never conflicts" {
				screenings = nil
			}

			conflict, found := FindScheduleConflict(tt.candidate, screenings)

			if found != tt.wantConflict {
				t.Fatalf("conflict = %v, want %v", found, tt.wantConflict)
			}
			if found && conflict.ID != tt.wantID {
				t.Errorf("conflicting screening id = %d, want %d", conflict.ID, tt.wantID)
			}
		})
	}
}
