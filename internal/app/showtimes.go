package app

import (
	"errors"
	"net/http"

	"github.com/cinetix/booking-api/api"
	"github.com/cinetix/booking-api/internal/domain"
	"github.com/cinetix/booking-api/internal/scheduler"
	"github.com/shopspring/decimal"
)

func (app *Application) GetShowtimes(w http.ResponseWriter, r *http.Request) {
	showtimes, err := app.scheduler.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowtimeListResponse{
		Showtimes: toShowtimeResponses(showtimes),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetShowtimeById(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	showtime, err := app.scheduler.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toShowtimeResponse(showtime), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateShowtime(w http.ResponseWriter, r *http.Request) {
	var input api.CreateShowtimeRequest

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

	showtime, err := app.scheduler.Create(r.Context(), scheduler.CreateShowtimeParams{
		MovieID:   input.MovieId,
		Theater:   input.Theater,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Price:     input.Price,
	})

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrShowtimeConflict):
			app.conflictResponse(w, r, err)
		case errors.Is(err, domain.ErrInvalidShowtimeInterval):
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toShowtimeResponse(showtime), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateShowtime(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.UpdateShowtimeRequest

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

	showtime, err := app.scheduler.Update(r.Context(), id, scheduler.UpdateShowtimeParams{
		MovieID:   input.MovieId,
		Theater:   input.Theater,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Price:     input.Price,
	})

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrShowtimeConflict):
			app.conflictResponse(w, r, err)
		case errors.Is(err, domain.ErrInvalidShowtimeInterval):
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.invalidateSeatMap(r.Context(), id)

	err = app.writeJSON(w, http.StatusOK, toShowtimeResponse(showtime), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteShowtime(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.scheduler.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.invalidateSeatMap(r.Context(), id)

	w.WriteHeader(http.StatusNoContent)
}

func toShowtimeResponses(showtimes []*domain.Showtime) []api.ShowtimeResponse {
	responses := make([]api.ShowtimeResponse, len(showtimes))
	for i, showtime := range showtimes {
		responses[i] = toShowtimeResponse(showtime)
	}

	return responses
}

func toShowtimeResponse(showtime *domain.Showtime) api.ShowtimeResponse {
	return api.ShowtimeResponse{
		Id:             showtime.ID,
		MovieId:        showtime.MovieID,
		Theater:        showtime.Theater,
		StartTime:      showtime.StartTime,
		EndTime:        showtime.EndTime,
		Price:          decimal.NewFromFloat(showtime.Price),
		SeatsAvailable: showtime.Seats.FreeCount(),
	}
}
