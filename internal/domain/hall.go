package domain

import (
	"context"
	"fmt"
)

// Hall has no lifecycle wrapper: halls are referenced by name from screenings
// and bookings and are never deleted, only renamed or resized.
type Hall struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Capacity int      `json:"capacity"`
	Features []string `json:"features"`
	SeatMap  SeatMap  `json:"seatMap"`
}

type SeatMap struct {
	Rows []SeatRow `json:"rows"`
}

type SeatRow struct {
	Row   string `json:"row"`
	Seats []int  `json:"seats"`
}

// SeatID combines a row label and seat number into the id format bookings
// store, e.g. ("A", 5) -> "A5".
func SeatID(row string, number int) string {
	return fmt.Sprintf("%s%d", row, number)
}

func (m SeatMap) Contains(seatID string) bool {
	for _, row := range m.Rows {
		for _, n := range row.Seats {
			if SeatID(row.Row, n) == seatID {
				return true
			}
		}
	}

	return false
}

type HallRepository interface {
	GetAll(ctx context.Context) ([]Hall, error)
	GetById(ctx context.Context, id int64) (Hall, error)
	GetByName(ctx context.Context, name string) (Hall, error)
	Create(ctx context.Context, hall Hall) (Hall, error)
	Update(ctx context.Context, hall Hall) (Hall, error)
}
