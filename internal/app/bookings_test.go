package app

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/oarslan/cinema-backoffice/api"
	"github.com/oarslan/cinema-backoffice/internal/domain"
	"github.com/oarslan/cinema-backoffice/internal/mailer"
	"github.com/oarslan/cinema-backoffice/internal/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func validBookingInput() api.CreateBookingRequest {
	return api.CreateBookingRequest{
		Seat:          "B1",
		CustomerName:  "Nora Lindqvist",
		CustomerEmail: "nora.lindqvist@example.com",
		CustomerPhone: "+46 70 123 45 67",
		Status:        "bought",
		TotalPrice:    decimal.NewFromFloat(14),
	}
}

func TestCreateBooking(t *testing.T) {
	app := newFixtureApplication(t)
	session := loginOperator(t, app)

	input := validBookingInput()

	rr := executeRequest(t, app, newJSONRequest(t, http.MethodPost, "/screenings/101/bookings", input), session)
	require.Equal(t, http.StatusCreated, rr.Code)

	created := decodeJSON[api.BookingResponse](t, rr)
	require.Greater(t, created.Id, int64(1004), "fresh ids must not collide with seed data")
	require.Equal(t, []string{"B1"}, created.Seats)
	require.Equal(t, "bought", created.Status)
	require.Equal(t, time.Now().Format(domain.DateLayout), created.BookingDate)

	// showtime reference is denormalized from the screening
	require.Equal(t, "Dune: Part Two", created.MovieTitle)
	require.Equal(t, "Hall 1", created.Hall)
	require.Equal(t, "2026-03-05 19:00", created.Showtime)

	// seat map reflects the new booking
	rr = executeRequest(t, app, newJSONRequest(t, http.MethodGet, "/screenings/101/seats", nil), session)
	require.Contains(t, decodeJSON[api.SeatMapResponse](t, rr).Bought, "B1")

	// confirmation email goes out in the background
	mock := app.mailer.(*mailer.MockMailer)
	require.Eventually(t, func() bool {
		return len(mock.GetSentEmails()) == 1
	}, time.Second, 10*time.Millisecond)

	sent := mock.GetSentEmails()[0]
	require.Equal(t, input.CustomerEmail, sent.Recipient)
	require.Equal(t, "booking_confirmation.tmpl", sent.TemplateFile)
}

func TestCreateBookingDefaults(t *testing.T) {
	app := newFixtureApplication(t)
	session := loginOperator(t, app)

	input := validBookingInput()
	input.Status = ""
	input.TotalPrice = decimal.Decimal{}

	rr := executeRequest(t, app, newJSONRequest(t, http.MethodPost, "/screenings/101/bookings", input), session)
	require.Equal(t, http.StatusCreated, rr.Code)

	created := decodeJSON[api.BookingResponse](t, rr)
	require.Equal(t, "booked", created.Status)
	require.True(t, decimal.NewFromInt(14).Equal(created.TotalPrice), "blank price falls back to the standard ticket price")
}

func TestCreateBookingRejectsTakenSeat(t *testing.T) {
	app := newFixtureApplication(t)
	session := loginOperator(t, app)

	for _, seat := range []string{"A5", "C3"} {
		input := validBookingInput()
		input.Seat = seat

		rr := executeRequest(t, app, newJSONRequest(t, http.MethodPost, "/screenings/101/bookings", input), session)
		require.Equal(t, http.StatusConflict, rr.Code, "seat %s is occupied", seat)
	}
}

func TestCreateBookingRejectsSeatOutsideHall(t *testing.T) {
	app := newFixtureApplication(t)
	session := loginOperator(t, app)

	input := validBookingInput()
	input.Seat = "Z9"

	rr := executeRequest(t, app, newJSONRequest(t, http.MethodPost, "/screenings/101/bookings", input), session)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestCreateBookingRejectsDeletedScreening(t *testing.T) {
	app := newFixtureApplication(t)
	session := loginOperator(t, app)

	// screening 105 is soft-deleted in the fixtures
	rr := executeRequest(t, app, newJSONRequest(t, http.MethodPost, "/screenings/105/bookings", validBookingInput()), session)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestCreateBookingValidation(t *testing.T) {
	app := newFixtureApplication(t)
	session := loginOperator(t, app)

	input := validBookingInput()
	input.CustomerEmail = "not-an-email"
	input.TotalPrice = decimal.NewFromFloat(-1)

	rr := executeRequest(t, app, newJSONRequest(t, http.MethodPost, "/screenings/101/bookings", input), session)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	resp := decodeJSON[api.ValidationErrorResponse](t, rr)
	require.Len(t, resp.ValidationErrors, 2)
}

func TestGetBookingForSeat(t *testing.T) {
	app := newFixtureApplication(t)
	session := loginOperator(t, app)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantId     int64
	}{
		{
			name:       "seat held by a booking",
			target:     "/screenings/101/seats/C3/booking",
			wantStatus: http.StatusOK,
			wantId:     1002,
		},
		{
			name:       "free seat",
			target:     "/screenings/101/seats/B4/booking",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "seat of a cancelled booking",
			target:     "/screenings/103/seats/D1/booking",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid seat id",
			target:     "/screenings/101/seats/5A/booking",
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := executeRequest(t, app, newJSONRequest(t, http.MethodGet, tt.target, nil), session)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantId != 0 {
				require.Equal(t, tt.wantId, decodeJSON[api.BookingResponse](t, rr).Id)
			}
		})
	}
}

func TestGetBookingForSeatResolvesDuplicatesDeterministically(t *testing.T) {
	app := newFixtureApplication(t)
	session := loginOperator(t, app)

	// plant a second active booking covering C3 for the same showtime; the
	// lookup must keep returning the older record
	screening, err := app.screeningRepo.GetById(context.Background(), 101)
	require.NoError(t, err)

	_, err = app.bookingRepo.Create(context.Background(), domain.Booking{
		MovieID:    screening.MovieID,
		MovieTitle: screening.MovieTitle,
		Hall:       screening.Hall,
		Seats:      []string{"C3"},
		Status:     domain.StatusBooked,
		Showtime:   screening.Showtime(),
	})
	require.NoError(t, err)

	for range 3 {
		rr := executeRequest(t, app, newJSONRequest(t, http.MethodGet, "/screenings/101/seats/C3/booking", nil), session)
		require.Equal(t, http.StatusOK, rr.Code)
		require.Equal(t, int64(1002), decodeJSON[api.BookingResponse](t, rr).Id)
	}
}

func TestUpdateBookingMergesCustomerFields(t *testing.T) {
	app := newFixtureApplication(t)
	session := loginOperator(t, app)

	input := api.UpdateBookingRequest{
		Status:     ptr("bought"),
		TotalPrice: ptr(decimal.NewFromFloat(16)),
	}

	rr := executeRequest(t, app, newJSONRequest(t, http.MethodPatch, "/bookings/1002", input), session)
	require.Equal(t, http.StatusOK, rr.Code)

	updated := decodeJSON[api.BookingResponse](t, rr)
	require.Equal(t, "bought", updated.Status)
	require.True(t, decimal.NewFromFloat(16).Equal(updated.TotalPrice))

	// seats and the showtime reference are immutable
	require.Equal(t, []string{"C3"}, updated.Seats)
	require.Equal(t, "2026-03-05 19:00", updated.Showtime)
	require.Equal(t, "Mark Jensen", updated.CustomerName)
}

func TestCancelAndRestoreBooking(t *testing.T) {
	app := newFixtureApplication(t)
	session := loginOperator(t, app)

	rr := executeRequest(t, app, newJSONRequest(t, http.MethodDelete, "/bookings/1001", nil), session)
	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, decodeJSON[api.BookingResponse](t, rr).Deleted)

	// the cancelled seats are free again
	rr = executeRequest(t, app, newJSONRequest(t, http.MethodGet, "/screenings/101/seats", nil), session)
	seatMap := decodeJSON[api.SeatMapResponse](t, rr)
	require.NotContains(t, seatMap.Bought, "A5")
	require.NotContains(t, seatMap.Bought, "A6")

	rr = executeRequest(t, app, newJSONRequest(t, http.MethodPut, "/bookings/1001/restore", nil), session)
	require.Equal(t, http.StatusOK, rr.Code)
	require.False(t, decodeJSON[api.BookingResponse](t, rr).Deleted)

	rr = executeRequest(t, app, newJSONRequest(t, http.MethodGet, "/screenings/101/seats", nil), session)
	require.Contains(t, decodeJSON[api.SeatMapResponse](t, rr).Bought, "A5")
}

func TestBookingsRepositoryError(t *testing.T) {
	app := newFixtureApplication(t)
	session := loginOperator(t, app)

	app.bookingRepo = &mocks.MockBookingRepo{
		GetAllFunc: func(ctx context.Context, filters domain.Filters) ([]domain.Booking, *domain.Metadata, error) {
			return nil, nil, errors.New("boom")
		},
		GetByShowtimeFunc: func(ctx context.Context, key domain.ShowtimeKey) ([]domain.Booking, error) {
			return nil, errors.New("boom")
		},
	}

	// listing and the occupancy lookup behind the seat map both surface the
	// repository failure as a 500 envelope
	for _, target := range []string{"/bookings", "/screenings/101/seats"} {
		rr := executeRequest(t, app, newJSONRequest(t, http.MethodGet, target, nil), session)
		require.Equal(t, http.StatusInternalServerError, rr.Code, target)
		require.Equal(t, ErrInternalServer, decodeJSON[api.ErrorResponse](t, rr).Message)
	}
}

func TestGetBookingsFiltersByTerm(t *testing.T) {
	app := newFixtureApplication(t)
	session := loginOperator(t, app)

	rr := executeRequest(t, app, newJSONRequest(t, http.MethodGet, "/bookings?term=jensen", nil), session)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeJSON[api.BookingListResponse](t, rr)
	require.Len(t, resp.Bookings, 1)
	require.Equal(t, int64(1002), resp.Bookings[0].Id)
}
