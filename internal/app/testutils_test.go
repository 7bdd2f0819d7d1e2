package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/oarslan/cinema-backoffice/api"
	"github.com/oarslan/cinema-backoffice/internal/domain"
	"github.com/oarslan/cinema-backoffice/internal/fixtures"
	"github.com/oarslan/cinema-backoffice/internal/mailer"
	"github.com/oarslan/cinema-backoffice/internal/repository"
	appvalidator "github.com/oarslan/cinema-backoffice/internal/validator"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	"golang.org/x/crypto/bcrypt"
)

const (
	testOperatorEmail    = "admin@cinema.local"
	testOperatorPassword = "pa55word"
)

func newTestApplication(t *testing.T) *application {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testOperatorPassword), bcrypt.MinCost)
	require.NoError(t, err)

	m, err := newMetrics(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	app := &application{
		config:            config{env: "test"},
		logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		validator:         appvalidator.NewValidator(),
		mailer:            mailer.NewMockMailer(),
		sessionManager:    newSessionManager(),
		metrics:           m,
		adminPasswordHash: hash,
	}
	app.config.admin.email = testOperatorEmail

	return app
}

// newFixtureApplication wires the application against in-memory repositories
// seeded with the embedded fixture data.
func newFixtureApplication(t *testing.T) *application {
	t.Helper()

	app := newTestApplication(t)

	data, err := fixtures.Load()
	require.NoError(t, err)

	ids := domain.NewIDSource()
	app.movieRepo = repository.NewInMemoryMovieRepository(data.Movies, ids)
	app.hallRepo = repository.NewInMemoryHallRepository(data.Halls, ids)
	app.screeningRepo = repository.NewInMemoryScreeningRepository(data.Screenings, ids)
	app.bookingRepo = repository.NewInMemoryBookingRepository(data.Bookings, ids)
	app.userRepo = repository.NewInMemoryUserRepository(data.Users, ids)
	app.newsRepo = repository.NewInMemoryNewsRepository(data.News)

	return app
}

func executeRequest(t *testing.T, app *application, req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	for _, c := range cookies {
		req.AddCookie(c)
	}

	rr := httptest.NewRecorder()
	app.routes().ServeHTTP(rr, req)

	return rr
}

func newJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	if body == nil {
		return httptest.NewRequest(method, target, nil)
	}

	buf, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")

	return req
}

func loginOperator(t *testing.T, app *application) *http.Cookie {
	t.Helper()

	req := newJSONRequest(t, http.MethodPost, "/auth/login", api.LoginRequest{
		Email:    testOperatorEmail,
		Password: testOperatorPassword,
	})

	rr := executeRequest(t, app, req)
	require.Equal(t, http.StatusNoContent, rr.Code)

	for _, c := range rr.Result().Cookies() {
		if c.Name == "session_id" {
			return c
		}
	}

	t.Fatal("login did not set a session cookie")
	return nil
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))

	return v
}

func ptr[T any](v T) *T {
	return &v
}
