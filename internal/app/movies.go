package app

import (
	"errors"
	"net/http"

	"github.com/cinetix/booking-api/api"
	"github.com/cinetix/booking-api/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := app.movieRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies: toMovieResponses(movies),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
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

	movie := &domain.Movie{
		Title:       input.Title,
		Genre:       input.Genre,
		Duration:    input.Duration,
		Rating:      input.Rating,
		ReleaseYear: input.ReleaseYear,
	}

	err = app.movieRepo.Create(r.Context(), movie)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMovieAlreadyExists):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "movieTitle")

	var input api.UpdateMovieRequest

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

	movie, err := app.movieRepo.GetByTitle(r.Context(), title)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if input.Title != nil {
		movie.Title = *input.Title
	}
	if input.Genre != nil {
		movie.Genre = *input.Genre
	}
	if input.Duration != nil {
		movie.Duration = *input.Duration
	}
	if input.Rating != nil {
		movie.Rating = *input.Rating
	}
	if input.ReleaseYear != nil {
		movie.ReleaseYear = *input.ReleaseYear
	}

	err = app.movieRepo.Update(r.Context(), movie)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMovieAlreadyExists):
			app.conflictResponse(w, r, err)
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

func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "movieTitle")

	err := app.movieRepo.Delete(r.Context(), title)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toMovieResponses(movies []*domain.Movie) []api.MovieResponse {
	responses := make([]api.MovieResponse, len(movies))
	for i, movie := range movies {
		responses[i] = toMovieResponse(movie)
	}

	return responses
}

func toMovieResponse(movie *domain.Movie) api.MovieResponse {
	return api.MovieResponse{
		Id:          movie.ID,
		Title:       movie.Title,
		Genre:       movie.Genre,
		Duration:    movie.Duration,
		Rating:      decimal.NewFromFloat(movie.Rating),
		ReleaseYear: movie.ReleaseYear,
	}
}
