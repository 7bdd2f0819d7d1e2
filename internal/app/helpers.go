package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oarslan/cinema-backoffice/api"
	"github.com/oarslan/cinema-backoffice/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	DefaultSort     = "id"
)

func (app *application) writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}

	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)

	return nil
}

func (app *application) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	maxBytes := 1_048_576
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)
		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

func (app *application) readIDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s parameter", name)
	}

	return id, nil
}

func (app *application) readListParams(r *http.Request) api.ListParams {
	var params api.ListParams

	q := r.URL.Query()

	if page := q.Get("page"); page != "" {
		if n, err := strconv.Atoi(page); err == nil {
			params.Page = &n
		}
	}
	if pageSize := q.Get("pageSize"); pageSize != "" {
		if n, err := strconv.Atoi(pageSize); err == nil {
			params.PageSize = &n
		}
	}
	if term := q.Get("term"); term != "" {
		params.Term = &term
	}
	if sort := q.Get("sort"); sort != "" {
		params.Sort = &sort
	}

	return params
}

func toFilters(params api.ListParams) domain.Filters {
	filters := domain.Filters{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
		Sort:     DefaultSort,
	}

	if params.Page != nil {
		filters.Page = *params.Page
	}
	if params.PageSize != nil {
		filters.PageSize = *params.PageSize
	}
	if params.Term != nil {
		filters.Term = *params.Term
	}
	if params.Sort != nil {
		filters.Sort = *params.Sort
	}

	return filters
}

func toApiMetadata(metadata *domain.Metadata) *api.Metadata {
	if metadata == nil {
		return nil
	}

	return &api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}

// confirmed reports whether the operator re-submitted past a soft warning.
func confirmed(r *http.Request) bool {
	return r.URL.Query().Get("confirm") == "true"
}

// auditLog records a back-office mutation under a unique event id.
func (app *application) auditLog(r *http.Request, action string, attrs ...any) {
	logger := app.contextGetLogger(r)

	attrs = append([]any{
		"event_id", uuid.NewString(),
		"action", action,
		"operator", app.contextGetOperator(r),
	}, attrs...)
	logger.Info("back-office mutation", attrs...)
}
