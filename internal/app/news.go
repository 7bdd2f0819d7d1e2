package app

import (
	"errors"
	"net/http"

	"github.com/oarslan/cinema-backoffice/api"
	"github.com/oarslan/cinema-backoffice/internal/domain"
)

func (app *application) GetNewsList(w http.ResponseWriter, r *http.Request) {
	news, err := app.newsRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.NewsListResponse{News: make([]api.NewsResponse, len(news))}
	for i, n := range news {
		resp.News[i] = toNewsResponse(n)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetNewsItem(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "newsId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	item, err := app.newsRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toNewsResponse(item), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toNewsResponse(n domain.News) api.NewsResponse {
	return api.NewsResponse{
		Id:          n.ID,
		Title:       n.Title,
		Date:        n.Date,
		Category:    n.Category,
		Content:     n.Content,
		FullContent: n.FullContent,
		Image:       n.Image,
	}
}
