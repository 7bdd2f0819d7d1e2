package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oarslan/cinema-backoffice/api"
	"github.com/oarslan/cinema-backoffice/internal/domain"
	"github.com/shopspring/decimal"
)

// defaultTicketPrice is charged per seat when the operator leaves the price
// blank.
var defaultTicketPrice = decimal.NewFromInt(14)

func (app *application) GetBookings(w http.ResponseWriter, r *http.Request) {
	params := app.readListParams(r)

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	bookings, metadata, err := app.bookingRepo.GetAll(r.Context(), toFilters(params))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.BookingListResponse{
		Bookings: make([]api.BookingResponse, len(bookings)),
		Metadata: toApiMetadata(metadata),
	}
	for i, b := range bookings {
		resp.Bookings[i] = toBookingResponse(b)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	booking, err := app.bookingRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toBookingResponse(booking), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetBookingForSeat resolves the booking currently holding one seat of a
// screening. Bookings reference showtimes by (movie title, hall, showtime),
// not by screening id, so the lookup goes through the screening's key.
func (app *application) GetBookingForSeat(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "screeningId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	seatID := chi.URLParam(r, "seatId")

	err = app.validator.Var(seatID, "required,seatid")
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

	key := screening.Key()

	bookings, err := app.bookingRepo.GetByShowtime(r.Context(), key)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	match, matches := domain.FindBookingForSeat(key, seatID, bookings)
	if matches == 0 {
		app.notFoundResponse(w, r)
		return
	}

	if matches > 1 {
		app.metrics.occupancyAnomalies.Add(r.Context(), 1)
		app.contextGetLogger(r).Error("seat held by multiple bookings",
			"hall", key.Hall,
			"showtime", key.Showtime,
			"seat", seatID,
			"matches", matches,
			"resolved_booking_id", match.ID,
		)
	}

	err = app.writeJSON(w, http.StatusOK, toBookingResponse(match), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "screeningId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.CreateBookingRequest

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

	if screening.IsDeleted() {
		app.errorResponse(w, r, http.StatusUnprocessableEntity, "cannot book a seat for a deleted screening")
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

	if !hall.SeatMap.Contains(input.Seat) {
		app.errorResponse(w, r, http.StatusUnprocessableEntity, "this seat does not exist in the hall")
		return
	}

	occ, err := app.resolveOccupancy(r, screening.Key())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if occ.IsOccupied(input.Seat) {
		app.errorResponse(w, r, http.StatusConflict, "this seat is already taken for this showtime")
		return
	}

	status := domain.BookingStatus(input.Status)
	if status == "" {
		status = domain.StatusBooked
	}

	price := input.TotalPrice
	if price.IsZero() {
		price = defaultTicketPrice
	}

	booking := domain.Booking{
		MovieID:       screening.MovieID,
		MovieTitle:    screening.MovieTitle,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		Hall:          screening.Hall,
		Seats:         []string{input.Seat},
		Status:        status,
		BookingDate:   time.Now().Format(domain.DateLayout),
		Showtime:      screening.Showtime(),
		TotalPrice:    price,
	}

	booking, err = app.bookingRepo.Create(r.Context(), booking)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.metrics.bookingsCreated.Add(r.Context(), 1)
	app.auditLog(r, "booking.create",
		"booking_id", booking.ID,
		"hall", booking.Hall,
		"showtime", booking.Showtime,
		"seat", input.Seat,
	)

	app.sendBookingConfirmation(booking)

	err = app.writeJSON(w, http.StatusCreated, toBookingResponse(booking), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// sendBookingConfirmation emails the customer in the background so a slow or
// unreachable SMTP server never delays the response.
func (app *application) sendBookingConfirmation(booking domain.Booking) {
	go func() {
		defer func() {
			if err := recover(); err != nil {
				app.logger.Error("booking confirmation panicked", "err", err)
			}
		}()

		data := map[string]any{
			"customerName": booking.CustomerName,
			"movieTitle":   booking.MovieTitle,
			"hall":         booking.Hall,
			"showtime":     booking.Showtime,
			"seats":        booking.Seats,
			"totalPrice":   booking.TotalPrice,
		}

		err := app.mailer.Send(booking.CustomerEmail, "booking_confirmation.tmpl", data)
		if err != nil {
			app.logger.Error("failed to send booking confirmation", "booking_id", booking.ID, "err", err)
		}
	}()
}

func (app *application) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.UpdateBookingRequest

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

	booking, err := app.bookingRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	// Customer and payment details are editable; the seats and the showtime
	// reference are not. Moving a customer means cancelling and rebooking.
	if input.CustomerName != nil {
		booking.CustomerName = *input.CustomerName
	}
	if input.CustomerEmail != nil {
		booking.CustomerEmail = *input.CustomerEmail
	}
	if input.CustomerPhone != nil {
		booking.CustomerPhone = *input.CustomerPhone
	}
	if input.Status != nil {
		booking.Status = domain.BookingStatus(*input.Status)
	}
	if input.TotalPrice != nil {
		booking.TotalPrice = *input.TotalPrice
	}

	booking, err = app.bookingRepo.Update(r.Context(), booking)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.auditLog(r, "booking.update", "booking_id", booking.ID)

	err = app.writeJSON(w, http.StatusOK, toBookingResponse(booking), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CancelBooking(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	booking, err := app.bookingRepo.SoftDelete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.auditLog(r, "booking.cancel", "booking_id", booking.ID)

	err = app.writeJSON(w, http.StatusOK, toBookingResponse(booking), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) RestoreBooking(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	booking, err := app.bookingRepo.Restore(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.auditLog(r, "booking.restore", "booking_id", booking.ID)

	err = app.writeJSON(w, http.StatusOK, toBookingResponse(booking), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toBookingResponse(b domain.Booking) api.BookingResponse {
	return api.BookingResponse{
		Id:            b.ID,
		MovieId:       b.MovieID,
		MovieTitle:    b.MovieTitle,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		Hall:          b.Hall,
		Seats:         b.Seats,
		Status:        string(b.Status),
		BookingDate:   b.BookingDate,
		Showtime:      b.Showtime,
		TotalPrice:    b.TotalPrice,
		Deleted:       b.IsDeleted(),
	}
}
