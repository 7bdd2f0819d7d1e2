package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware("cinema-backoffice", otelchi.WithChiRoutes(r)))
	r.Use(app.requestLogger)
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/health", app.GetHealth)

	r.Post("/auth/login", app.Login)
	r.Post("/auth/logout", app.Logout)

	// public catalog
	r.Get("/movies", app.GetMovies)
	r.Get("/movies/{movieId}", app.GetMovie)
	r.Get("/news", app.GetNewsList)
	r.Get("/news/{newsId}", app.GetNewsItem)

	// operator back office
	r.Group(func(r chi.Router) {
		r.Use(app.requireOperator)

		r.Post("/movies", app.CreateMovie)
		r.Patch("/movies/{movieId}", app.UpdateMovie)
		r.Delete("/movies/{movieId}", app.DeleteMovie)
		r.Put("/movies/{movieId}/restore", app.RestoreMovie)

		r.Get("/halls", app.GetHalls)
		r.Post("/halls", app.CreateHall)
		r.Get("/halls/{hallId}", app.GetHall)
		r.Patch("/halls/{hallId}", app.UpdateHall)

		r.Get("/screenings", app.GetScreenings)
		r.Post("/screenings", app.CreateScreening)
		r.Get("/screenings/{screeningId}", app.GetScreening)
		r.Patch("/screenings/{screeningId}", app.UpdateScreening)
		r.Delete("/screenings/{screeningId}", app.DeleteScreening)
		r.Put("/screenings/{screeningId}/restore", app.RestoreScreening)

		r.Get("/screenings/{screeningId}/seats", app.GetScreeningSeatMap)
		r.Get("/screenings/{screeningId}/seats/{seatId}/booking", app.GetBookingForSeat)
		r.Post("/screenings/{screeningId}/bookings", app.CreateBooking)

		r.Get("/bookings", app.GetBookings)
		r.Get("/bookings/{bookingId}", app.GetBooking)
		r.Patch("/bookings/{bookingId}", app.UpdateBooking)
		r.Delete("/bookings/{bookingId}", app.CancelBooking)
		r.Put("/bookings/{bookingId}/restore", app.RestoreBooking)

		r.Get("/users", app.GetUsers)
		r.Post("/users", app.CreateUser)
		r.Get("/users/{userId}", app.GetUser)
		r.Patch("/users/{userId}", app.UpdateUser)
		r.Delete("/users/{userId}", app.DeleteUser)
		r.Put("/users/{userId}/restore", app.RestoreUser)
	})

	return r
}
