package app

import (
	"errors"
	"net/http"

	"github.com/oarslan/cinema-backoffice/api"
	"github.com/oarslan/cinema-backoffice/internal/domain"
)

func (app *application) GetMovies(w http.ResponseWriter, r *http.Request) {
	params := app.readListParams(r)

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movies, metadata, err := app.movieRepo.GetAll(r.Context(), toFilters(params))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies:   toMovieResponses(movies),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var input api.CreateMovieRequest

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

	movie := domain.Movie{
		Title:       input.Title,
		Description: input.Description,
		Poster:      input.Poster,
		Href:        input.Href,
		Format:      domain.MovieFormat(input.Format),
		Languages:   input.Languages,
		Status:      domain.MovieStatus(input.Status),
		TopTier:     input.TopTier,
		Duration:    input.Duration,
		Genre:       input.Genre,
		ReleaseDate: input.ReleaseDate,
		ScreeningPeriod: domain.ScreeningPeriod{
			Start: input.ScreeningPeriod.Start,
			End:   input.ScreeningPeriod.End,
		},
	}

	movie, err = app.movieRepo.Create(r.Context(), movie)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.auditLog(r, "movie.create", "movie_id", movie.ID)

	err = app.writeJSON(w, http.StatusCreated, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.UpdateMovieRequest

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

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	mergeMovieUpdate(&movie, input)

	movie, err = app.movieRepo.Update(r.Context(), movie)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.auditLog(r, "movie.update", "movie_id", movie.ID)

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func mergeMovieUpdate(movie *domain.Movie, input api.UpdateMovieRequest) {
	if input.Title != nil {
		movie.Title = *input.Title
	}
	if input.Description != nil {
		movie.Description = *input.Description
	}
	if input.Poster != nil {
		movie.Poster = *input.Poster
	}
	if input.Href != nil {
		movie.Href = *input.Href
	}
	if input.Format != nil {
		movie.Format = domain.MovieFormat(*input.Format)
	}
	if input.Languages != nil {
		movie.Languages = *input.Languages
	}
	if input.Status != nil {
		movie.Status = domain.MovieStatus(*input.Status)
	}
	if input.TopTier != nil {
		movie.TopTier = *input.TopTier
	}
	if input.Duration != nil {
		movie.Duration = *input.Duration
	}
	if input.Genre != nil {
		movie.Genre = *input.Genre
	}
	if input.ReleaseDate != nil {
		movie.ReleaseDate = *input.ReleaseDate
	}
	if input.ScreeningPeriod != nil {
		movie.ScreeningPeriod = domain.ScreeningPeriod{
			Start: input.ScreeningPeriod.Start,
			End:   input.ScreeningPeriod.End,
		}
	}
}

func (app *application) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.SoftDelete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.auditLog(r, "movie.delete", "movie_id", movie.ID)

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) RestoreMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.Restore(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.auditLog(r, "movie.restore", "movie_id", movie.ID)

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toMovieResponses(movies []domain.Movie) []api.MovieResponse {
	responses := make([]api.MovieResponse, len(movies))
	for i, m := range movies {
		responses[i] = toMovieResponse(m)
	}

	return responses
}

func toMovieResponse(m domain.Movie) api.MovieResponse {
	return api.MovieResponse{
		Id:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Poster:      m.Poster,
		Href:        m.Href,
		Format:      string(m.Format),
		Languages:   m.Languages,
		Status:      string(m.Status),
		TopTier:     m.TopTier,
		Duration:    m.Duration,
		Genre:       m.Genre,
		ReleaseDate: m.ReleaseDate,
		ScreeningPeriod: api.ScreeningPeriod{
			Start: m.ScreeningPeriod.Start,
			End:   m.ScreeningPeriod.End,
		},
		Deleted: m.IsDeleted(),
	}
}
