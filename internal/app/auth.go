package app

import (
	"net/http"

	"github.com/oarslan/cinema-backoffice/api"
	"golang.org/x/crypto/bcrypt"
)

func (app *application) Login(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.LoginRequest

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

	if input.Email != app.config.admin.email {
		logger.Warn("login attempt with unknown email")
		app.unauthorizedResponse(w, r)
		return
	}

	err = bcrypt.CompareHashAndPassword(app.adminPasswordHash, []byte(input.Password))
	if err != nil {
		logger.Warn("login attempt with wrong password")
		app.unauthorizedResponse(w, r)
		return
	}

	// rotate the session token on privilege change
	err = app.sessionManager.RenewToken(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.sessionManager.Put(r.Context(), SessionKeyOperator.String(), input.Email)

	w.WriteHeader(http.StatusNoContent)
}

func (app *application) Logout(w http.ResponseWriter, r *http.Request) {
	err := app.sessionManager.Destroy(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
