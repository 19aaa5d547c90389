package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cinetix/booking-api/api"
	"github.com/cinetix/booking-api/internal/domain"
	"github.com/redis/go-redis/v9"
)

// Seat maps change on every reservation, so the cache TTL is short; explicit
// invalidation on bookings and showtime writes keeps it honest in between.
const seatMapTTL = 10 * time.Second

func seatMapKey(showtimeID int) string {
	return fmt.Sprintf("seatmap:%d", showtimeID)
}

func (app *Application) GetShowtimeSeatMap(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if resp, ok := app.cachedSeatMap(r.Context(), id); ok {
		err = app.writeJSON(w, http.StatusOK, resp, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}

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

	resp := toSeatMapResponse(showtime)

	app.cacheSeatMap(r.Context(), id, resp)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) cachedSeatMap(ctx context.Context, showtimeID int) (api.SeatMapResponse, bool) {
	var resp api.SeatMapResponse

	if app.redis == nil {
		return resp, false
	}

	data, err := app.redis.Get(ctx, seatMapKey(showtimeID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			app.logger.Warn("seat map cache read failed", "showtime_id", showtimeID, "error", err)
		}

		return resp, false
	}

	if err := json.Unmarshal(data, &resp); err != nil {
		return resp, false
	}

	return resp, true
}

func (app *Application) cacheSeatMap(ctx context.Context, showtimeID int, resp api.SeatMapResponse) {
	if app.redis == nil {
		return
	}

	data, err := json.Marshal(resp)
	if err != nil {
		return
	}

	err = app.redis.Set(ctx, seatMapKey(showtimeID), data, seatMapTTL).Err()
	if err != nil {
		app.logger.Warn("seat map cache write failed", "showtime_id", showtimeID, "error", err)
	}
}

func (app *Application) invalidateSeatMap(ctx context.Context, showtimeID int) {
	if app.redis == nil {
		return
	}

	err := app.redis.Del(ctx, seatMapKey(showtimeID)).Err()
	if err != nil {
		app.logger.Warn("seat map cache invalidation failed", "showtime_id", showtimeID, "error", err)
	}
}

func toSeatMapResponse(showtime *domain.Showtime) api.SeatMapResponse {
	seats := make([]api.Seat, showtime.Seats.Capacity())
	for i := range seats {
		number := i + 1
		seats[i] = api.Seat{
			Number:    number,
			Available: showtime.Seats.IsFree(number),
		}
	}

	return api.SeatMapResponse{
		ShowtimeId: showtime.ID,
		Capacity:   showtime.Seats.Capacity(),
		Seats:      seats,
	}
}
