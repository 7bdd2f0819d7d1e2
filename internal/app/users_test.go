package app

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/oarslan/cinema-backoffice/api"
	"github.com/oarslan/cinema-backoffice/internal/domain"
	"github.com/oarslan/cinema-backoffice/internal/mocks"
	"github.com/stretchr/testify/require"
)

func TestCreateUserDefaultsToActive(t *testing.T) {
	app := newFixtureApplication(t)
	session := loginOperator(t, app)

	input := api.CreateUserRequest{
		Name:  "Nora Lindqvist",
		Email: "nora.lindqvist@example.com",
		Phone: "+46 70 123 45 67",
	}

	rr := executeRequest(t, app, newJSONRequest(t, http.MethodPost, "/users", input), session)
	require.Equal(t, http.StatusCreated, rr.Code)

	created := decodeJSON[api.UserResponse](t, rr)
	require.Equal(t, "active", created.Status)
	require.NotEmpty(t, created.RegistrationDate)
}

func TestCreateUserRejectsActiveDuplicateEmail(t *testing.T) {
	app := newFixtureApplication(t)
	session := loginOperator(t, app)

	input := api.CreateUserRequest{
		Name:  "Elif Again",
		Email: "elif.kaya@example.com",
		Phone: "+90 532 111 2233",
	}

	rr := executeRequest(t, app, newJSONRequest(t, http.MethodPost, "/users", input), session)
	require.Equal(t, http.StatusConflict, rr.Code)

	// a deleted account does not block its email from being reused
	input.Name = "New Account"
	input.Email = "old.account@example.com"

	rr = executeRequest(t, app, newJSONRequest(t, http.MethodPost, "/users", input), session)
	require.Equal(t, http.StatusCreated, rr.Code)
}

func TestUpdateUserMergesFields(t *testing.T) {
	app := newFixtureApplication(t)
	session := loginOperator(t, app)

	input := api.UpdateUserRequest{Status: ptr("inactive")}

	rr := executeRequest(t, app, newJSONRequest(t, http.MethodPatch, "/users/2", input), session)
	require.Equal(t, http.StatusOK, rr.Code)

	updated := decodeJSON[api.UserResponse](t, rr)
	require.Equal(t, "inactive", updated.Status)
	require.Equal(t, "Mark Jensen", updated.Name)
	require.Equal(t, "2025-12-18", updated.RegistrationDate)
}

func TestDeleteAndRestoreUser(t *testing.T) {
	app := newFixtureApplication(t)
	session := loginOperator(t, app)

	rr := executeRequest(t, app, newJSONRequest(t, http.MethodGet, "/users/3", nil), session)
	original := decodeJSON[api.UserResponse](t, rr)

	rr = executeRequest(t, app, newJSONRequest(t, http.MethodDelete, "/users/3", nil), session)
	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, decodeJSON[api.UserResponse](t, rr).Deleted)

	rr = executeRequest(t, app, newJSONRequest(t, http.MethodPut, "/users/3/restore", nil), session)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, original, decodeJSON[api.UserResponse](t, rr))
}

func TestUsersRepositoryError(t *testing.T) {
	app := newFixtureApplication(t)
	session := loginOperator(t, app)

	app.userRepo = &mocks.MockUserRepo{
		GetAllFunc: func(ctx context.Context, filters domain.Filters) ([]domain.User, *domain.Metadata, error) {
			return nil, nil, errors.New("boom")
		},
	}

	rr := executeRequest(t, app, newJSONRequest(t, http.MethodGet, "/users", nil), session)
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, ErrInternalServer, decodeJSON[api.ErrorResponse](t, rr).Message)
}

func TestGetUsersFiltersByTerm(t *testing.T) {
	app := newFixtureApplication(t)
	session := loginOperator(t, app)

	rr := executeRequest(t, app, newJSONRequest(t, http.MethodGet, "/users?term=marini", nil), session)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeJSON[api.UserListResponse](t, rr)
	require.Len(t, resp.Users, 1)
	require.Equal(t, "Sofia Marini", resp.Users[0].Name)
}
