package app

import (
	"net/http"
	"testing"

	"github.com/oarslan/cinema-backoffice/api"
	"github.com/stretchr/testify/require"
)

func TestLoginRejectsWrongCredentials(t *testing.T) {
	app := newFixtureApplication(t)

	tests := []struct {
		name  string
		input api.LoginRequest
	}{
		{
			name:  "unknown email",
			input: api.LoginRequest{Email: "someone@else.com", Password: testOperatorPassword},
		},
		{
			name:  "wrong password",
			input: api.LoginRequest{Email: testOperatorEmail, Password: "nope"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newJSONRequest(t, http.MethodPost, "/auth/login", tt.input)
			rr := executeRequest(t, app, req)

			require.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestLoginValidatesInput(t *testing.T) {
	app := newFixtureApplication(t)

	req := newJSONRequest(t, http.MethodPost, "/auth/login", api.LoginRequest{Email: "not-an-email"})
	rr := executeRequest(t, app, req)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	resp := decodeJSON[api.ValidationErrorResponse](t, rr)
	require.NotEmpty(t, resp.ValidationErrors)
}

func TestOperatorRoutesRequireSession(t *testing.T) {
	app := newFixtureApplication(t)

	req := newJSONRequest(t, http.MethodGet, "/screenings", nil)
	rr := executeRequest(t, app, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLoginGrantsAccessAndLogoutRevokesIt(t *testing.T) {
	app := newFixtureApplication(t)
	session := loginOperator(t, app)

	rr := executeRequest(t, app, newJSONRequest(t, http.MethodGet, "/screenings", nil), session)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = executeRequest(t, app, newJSONRequest(t, http.MethodPost, "/auth/logout", nil), session)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = executeRequest(t, app, newJSONRequest(t, http.MethodGet, "/screenings", nil), session)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}
