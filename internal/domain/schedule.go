package domain

// FindScheduleConflict reports whether another non-deleted screening already
// occupies the candidate's (hall, date, time) slot. The candidate's own id is
// excluded so that editing a screening does not conflict with itself.
//
// Date and time must be normalized to DateLayout and TimeLayout before the
// call; the comparison is plain string equality.
func FindScheduleConflict(candidate Screening, screenings []Screening) (Screening, bool) {
	for _, s := range screenings {
		if s.IsDeleted() || s.ID == candidate.ID {
			continue
		}

		if s.Hall == candidate.Hall && s.Date == candidate.Date && s.Time == candidate.Time {
			return s, true
		}
	}

	return Screening{}, false
}
