package app

import (
	"errors"
	"net/http"

	"github.com/oarslan/cinema-backoffice/api"
	"github.com/oarslan/cinema-backoffice/internal/domain"
)

func (app *application) GetHalls(w http.ResponseWriter, r *http.Request) {
	halls, err := app.hallRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.HallListResponse{Halls: make([]api.HallResponse, len(halls))}
	for i, h := range halls {
		resp.Halls[i] = toHallResponse(h)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetHall(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "hallId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	hall, err := app.hallRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toHallResponse(hall), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateHall(w http.ResponseWriter, r *http.Request) {
	var input api.CreateHallRequest

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

	hall := domain.Hall{
		Name:     input.Name,
		Capacity: input.Capacity,
		Features: input.Features,
		SeatMap:  toSeatMap(input.SeatMap),
	}

	hall, err = app.hallRepo.Create(r.Context(), hall)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateRecord):
			app.errorResponse(w, r, http.StatusConflict, "a hall with this name already exists")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.auditLog(r, "hall.create", "hall_id", hall.ID, "hall", hall.Name)

	err = app.writeJSON(w, http.StatusCreated, toHallResponse(hall), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) UpdateHall(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "hallId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.UpdateHallRequest

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

	hall, err := app.hallRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if input.Name != nil {
		hall.Name = *input.Name
	}
	if input.Capacity != nil {
		hall.Capacity = *input.Capacity
	}
	if input.Features != nil {
		hall.Features = *input.Features
	}
	if input.SeatMap != nil {
		hall.SeatMap = toSeatMap(*input.SeatMap)
	}

	hall, err = app.hallRepo.Update(r.Context(), hall)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateRecord):
			app.errorResponse(w, r, http.StatusConflict, "a hall with this name already exists")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.auditLog(r, "hall.update", "hall_id", hall.ID, "hall", hall.Name)

	err = app.writeJSON(w, http.StatusOK, toHallResponse(hall), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toSeatMap(rows []api.SeatRowRequest) domain.SeatMap {
	seatMap := domain.SeatMap{Rows: make([]domain.SeatRow, len(rows))}
	for i, row := range rows {
		seatMap.Rows[i] = domain.SeatRow{Row: row.Row, Seats: row.Seats}
	}

	return seatMap
}

func toHallResponse(h domain.Hall) api.HallResponse {
	resp := api.HallResponse{
		Id:       h.ID,
		Name:     h.Name,
		Capacity: h.Capacity,
		Features: h.Features,
		SeatMap:  make([]api.SeatRow, len(h.SeatMap.Rows)),
	}

	for i, row := range h.SeatMap.Rows {
		seats := make([]api.Seat, len(row.Seats))
		for j, n := range row.Seats {
			seats[j] = api.Seat{
				Id:     domain.SeatID(row.Row, n),
				Number: n,
				Status: "free",
			}
		}
		resp.SeatMap[i] = api.SeatRow{Row: row.Row, Seats: seats}
	}

	return resp
}
