package domain

import "slices"

// Occupancy partitions the occupied seats of one showtime by booking status.
// Seat ids inside each set are sorted so results compare stably.
type Occupancy struct {
	Booked []string
	Bought []string

	// Anomalies lists seats that appeared under both statuses. That is bad
	// data, not a supported configuration; such seats are reported as bought.
	Anomalies []string
}

func (o Occupancy) IsOccupied(seatID string) bool {
	return slices.Contains(o.Booked, seatID) || slices.Contains(o.Bought, seatID)
}

// ResolveOccupancy filters bookings down to the non-deleted ones matching key
// exactly and splits their seats into booked and bought sets. Bought takes
// precedence when a seat is present under both statuses. The input slice is
// never mutated; zero matches yield empty sets.
func ResolveOccupancy(key ShowtimeKey, bookings []Booking) Occupancy {
	booked := make(map[string]bool)
	bought := make(map[string]bool)

	for _, b := range bookings {
		if b.IsDeleted() || b.Key() != key {
			continue
		}

		for _, seat := range b.Seats {
			switch b.Status {
			case StatusBought:
				bought[seat] = true
			case StatusBooked:
				booked[seat] = true
			}
		}
	}

	var occ Occupancy

	for seat := range booked {
		if bought[seat] {
			occ.Anomalies = append(occ.Anomalies, seat)
			continue
		}
		occ.Booked = append(occ.Booked, seat)
	}
	for seat := range bought {
		occ.Bought = append(occ.Bought, seat)
	}

	slices.Sort(occ.Booked)
	slices.Sort(occ.Bought)
	slices.Sort(occ.Anomalies)

	return occ
}
