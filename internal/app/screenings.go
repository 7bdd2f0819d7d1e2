package app

import (
	"errors"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/oarslan/cinema-backoffice/api"
	"github.com/oarslan/cinema-backoffice/internal/domain"
)

func (app *application) GetScreenings(w http.ResponseWriter, r *http.Request) {
	params := app.readListParams(r)

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	screenings, metadata, err := app.screeningRepo.GetAll(r.Context(), toFilters(params))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ScreeningListResponse{
		Screenings: make([]api.ScreeningResponse, len(screenings)),
		Metadata:   toApiMetadata(metadata),
	}
	for i, s := range screenings {
		resp.Screenings[i] = toScreeningResponse(s)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetScreening(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "screeningId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	screening, err := app.screeningRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toScreeningResponse(screening), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateScreening(w http.ResponseWriter, r *http.Request) {
	var input api.CreateScreeningRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), input.MovieId)
	if err != nil || movie.IsDeleted() {
		if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
			app.serverErrorResponse(w, r, err)
			return
		}
		app.errorResponse(w, r, http.StatusUnprocessableEntity, "referenced movie does not exist")
		return
	}

	_, err = app.hallRepo.GetByName(r.Context(), input.Hall)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.errorResponse(w, r, http.StatusUnprocessableEntity, "referenced hall does not exist")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	screening := domain.Screening{
		MovieID:    movie.ID,
		MovieTitle: movie.Title,
		Hall:       input.Hall,
		Date:       input.Date,
		Time:       input.Time,
	}

	if !app.clearScheduleConflict(w, r, screening) {
		return
	}

	screening, err = app.screeningRepo.Create(r.Context(), screening)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.auditLog(r, "screening.create",
		"screening_id", screening.ID,
		"hall", screening.Hall,
		"showtime", screening.Showtime(),
		"override", confirmed(r),
	)

	err = app.writeJSON(w, http.StatusCreated, toScreeningResponse(screening), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) UpdateScreening(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "screeningId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.UpdateScreeningRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	screening, err := app.screeningRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if input.MovieId != nil {
		movie, err := app.movieRepo.GetById(r.Context(), *input.MovieId)
		if err != nil || movie.IsDeleted() {
			if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
				app.serverErrorResponse(w, r, err)
				return
			}
			app.errorResponse(w, r, http.StatusUnprocessableEntity, "referenced movie does not exist")
			return
		}
		screening.MovieID = movie.ID
		screening.MovieTitle = movie.Title
	}
	if input.Hall != nil {
		_, err := app.hallRepo.GetByName(r.Context(), *input.Hall)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrRecordNotFound):
				app.errorResponse(w, r, http.StatusUnprocessableEntity, "referenced hall does not exist")
			default:
				app.serverErrorResponse(w, r, err)
			}
			return
		}
		screening.Hall = *input.Hall
	}
	if input.Date != nil {
		screening.Date = *input.Date
	}
	if input.Time != nil {
		screening.Time = *input.Time
	}

	if !app.clearScheduleConflict(w, r, screening) {
		return
	}

	screening, err = app.screeningRepo.Update(r.Context(), screening)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.auditLog(r, "screening.update",
		"screening_id", screening.ID,
		"hall", screening.Hall,
		"showtime", screening.Showtime(),
		"override", confirmed(r),
	)

	err = app.writeJSON(w, http.StatusOK, toScreeningResponse(screening), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// clearScheduleConflict checks the candidate's slot against the other active
// screenings. A clash is a soft warning, not a hard rule: the operator can
// force the write by re-submitting with confirm=true. Reports whether the
// caller may proceed; the 409 response has already been written when not.
func (app *application) clearScheduleConflict(w http.ResponseWriter, r *http.Request, candidate domain.Screening) bool {
	slot, err := app.screeningRepo.GetBySlot(r.Context(), candidate.Hall, candidate.Date, candidate.Time)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return false
	}

	conflict, found := domain.FindScheduleConflict(candidate, slot)
	if !found || confirmed(r) {
		return true
	}

	app.metrics.scheduleConflicts.Add(r.Context(), 1)
	app.contextGetLogger(r).Warn("schedule conflict",
		"hall", candidate.Hall,
		"showtime", candidate.Showtime(),
		"conflicting_screening_id", conflict.ID,
	)

	resp := api.ScheduleConflictResponse{
		Message:   "another screening is already scheduled in this hall at this time; repeat the request with confirm=true to schedule it anyway",
		Conflict:  toScreeningResponse(conflict),
		RequestId: middleware.GetReqID(r.Context()),
	}

	writeErr := app.writeJSON(w, http.StatusConflict, resp, nil)
	if writeErr != nil {
		app.serverErrorResponse(w, r, writeErr)
	}

	return false
}

func (app *application) DeleteScreening(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "screeningId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	screening, err := app.screeningRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	bookings, err := app.bookingRepo.GetByShowtime(r.Context(), screening.Key())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	active := len(domain.ActiveOnly(bookings))
	if active > 0 && !confirmed(r) {
		resp := api.DeleteWarningResponse{
			Message:        "this screening still has active bookings; they will be kept as-is, repeat the request with confirm=true to delete the screening anyway",
			ActiveBookings: active,
			RequestId:      middleware.GetReqID(r.Context()),
		}

		writeErr := app.writeJSON(w, http.StatusConflict, resp, nil)
		if writeErr != nil {
			app.serverErrorResponse(w, r, writeErr)
		}
		return
	}

	screening, err = app.screeningRepo.SoftDelete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.auditLog(r, "screening.delete",
		"screening_id", screening.ID,
		"active_bookings", active,
		"override", confirmed(r),
	)

	err = app.writeJSON(w, http.StatusOK, toScreeningResponse(screening), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) RestoreScreening(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "screeningId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	screening, err := app.screeningRepo.Restore(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.auditLog(r, "screening.restore", "screening_id", screening.ID)

	err = app.writeJSON(w, http.StatusOK, toScreeningResponse(screening), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetScreeningSeatMap(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "screeningId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	screening, err := app.screeningRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	hall, err := app.hallRepo.GetByName(r.Context(), screening.Hall)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	occ, err := app.resolveOccupancy(r, screening.Key())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.SeatMapResponse{
		ScreeningId: screening.ID,
		Hall:        hall.Name,
		Showtime:    screening.Showtime(),
		SeatRows:    make([]api.SeatRow, len(hall.SeatMap.Rows)),
		Booked:      occ.Booked,
		Bought:      occ.Bought,
	}

	for i, row := range hall.SeatMap.Rows {
		seats := make([]api.Seat, len(row.Seats))
		for j, n := range row.Seats {
			seatID := domain.SeatID(row.Row, n)
			seats[j] = api.Seat{
				Id:     seatID,
				Number: n,
				Status: seatStatus(occ, seatID),
			}
		}
		resp.SeatRows[i] = api.SeatRow{Row: row.Row, Seats: seats}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// resolveOccupancy loads the bookings for a showtime and resolves who holds
// which seat, logging any seat that shows up as both booked and bought.
func (app *application) resolveOccupancy(r *http.Request, key domain.ShowtimeKey) (domain.Occupancy, error) {
	bookings, err := app.bookingRepo.GetByShowtime(r.Context(), key)
	if err != nil {
		return domain.Occupancy{}, err
	}

	occ := domain.ResolveOccupancy(key, bookings)

	if len(occ.Anomalies) > 0 {
		app.metrics.occupancyAnomalies.Add(r.Context(), int64(len(occ.Anomalies)))
		app.contextGetLogger(r).Error("seats booked and bought at once",
			"hall", key.Hall,
			"showtime", key.Showtime,
			"seats", occ.Anomalies,
		)
	}

	return occ, nil
}

func seatStatus(occ domain.Occupancy, seatID string) string {
	switch {
	case slices.Contains(occ.Bought, seatID):
		return "bought"
	case slices.Contains(occ.Booked, seatID):
		return "booked"
	default:
		return "free"
	}
}

func toScreeningResponse(s domain.Screening) api.ScreeningResponse {
	return api.ScreeningResponse{
		Id:         s.ID,
		MovieId:    s.MovieID,
		MovieTitle: s.MovieTitle,
		Hall:       s.Hall,
		Date:       s.Date,
		Time:       s.Time,
		Showtime:   s.Showtime(),
		Deleted:    s.IsDeleted(),
	}
}
