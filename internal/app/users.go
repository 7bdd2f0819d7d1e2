package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/oarslan/cinema-backoffice/api"
	"github.com/oarslan/cinema-backoffice/internal/domain"
)

func (app *application) GetUsers(w http.ResponseWriter, r *http.Request) {
	params := app.readListParams(r)

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	users, metadata, err := app.userRepo.GetAll(r.Context(), toFilters(params))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.UserListResponse{
		Users:    make([]api.UserResponse, len(users)),
		Metadata: toApiMetadata(metadata),
	}
	for i, u := range users {
		resp.Users[i] = toUserResponse(u)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "userId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user, err := app.userRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toUserResponse(user), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateUser(w http.ResponseWriter, r *http.Request) {
	var input api.CreateUserRequest

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

	status := domain.UserStatus(input.Status)
	if status == "" {
		status = domain.UserActive
	}

	user := domain.User{
		Name:             input.Name,
		Email:            input.Email,
		Phone:            input.Phone,
		Status:           status,
		RegistrationDate: time.Now().Format(domain.DateLayout),
	}

	user, err = app.userRepo.Create(r.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateRecord):
			app.errorResponse(w, r, http.StatusConflict, "a user with this email already exists")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.auditLog(r, "user.create", "user_id", user.ID)

	err = app.writeJSON(w, http.StatusCreated, toUserResponse(user), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "userId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.UpdateUserRequest

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

	user, err := app.userRepo.GetById(r.Context(), id)
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
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Status != nil {
		user.Status = domain.UserStatus(*input.Status)
	}

	user, err = app.userRepo.Update(r.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateRecord):
			app.errorResponse(w, r, http.StatusConflict, "a user with this email already exists")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.auditLog(r, "user.update", "user_id", user.ID)

	err = app.writeJSON(w, http.StatusOK, toUserResponse(user), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "userId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user, err := app.userRepo.SoftDelete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.auditLog(r, "user.delete", "user_id", user.ID)

	err = app.writeJSON(w, http.StatusOK, toUserResponse(user), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) RestoreUser(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "userId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user, err := app.userRepo.Restore(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.auditLog(r, "user.restore", "user_id", user.ID)

	err = app.writeJSON(w, http.StatusOK, toUserResponse(user), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toUserResponse(u domain.User) api.UserResponse {
	return api.UserResponse{
		Id:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Phone:            u.Phone,
		Status:           string(u.Status),
		RegistrationDate: u.RegistrationDate,
		Deleted:          u.IsDeleted(),
	}
}
