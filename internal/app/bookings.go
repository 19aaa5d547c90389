package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/cinetix/booking-api/api"
	"github.com/cinetix/booking-api/internal/domain"
	"github.com/cinetix/booking-api/internal/reservation"
)

func (app *Application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var input api.CreateBookingRequest

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

	params := reservation.CreateBookingParams{
		ShowtimeID: input.ShowtimeId,
		SeatNumber: input.SeatNumber,
		UserID:     input.UserId,
	}

	booking, err := app.ledger.CreateBooking(r.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrSeatUnavailable):
			app.badRequestResponse(w, r, err)
		case errors.Is(err, domain.ErrReservationFailed):
			app.reservationFailedResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.invalidateSeatMap(r.Context(), input.ShowtimeId)

	if input.CustomerEmail != "" {
		app.sendBookingConfirmation(input.CustomerEmail, booking)
	}

	resp := api.BookingResponse{
		BookingId: booking.ID.String(),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// sendBookingConfirmation emails the receipt off the request path. Lookup or
// delivery failures are logged and never surfaced to the client; the booking
// already exists at this point.
func (app *Application) sendBookingConfirmation(recipient string, booking *domain.Booking) {
	app.background(func() {
		ctx := context.Background()

		showtime, err := app.scheduler.GetByID(ctx, booking.ShowtimeID)
		if err != nil {
			app.logger.Error("failed to resolve showtime for confirmation email", "booking_id", booking.ID, "error", err)
			return
		}

		movie, err := app.movieRepo.GetByID(ctx, showtime.MovieID)
		if err != nil {
			app.logger.Error("failed to resolve movie for confirmation email", "booking_id", booking.ID, "error", err)
			return
		}

		data := map[string]any{
			"BookingID":  booking.ID.String(),
			"MovieTitle": movie.Title,
			"Theater":    showtime.Theater,
			"StartTime":  showtime.StartTime.Format("Mon, 02 Jan 2006 15:04"),
			"SeatNumber": booking.SeatNumber,
		}

		err = app.mailer.Send(recipient, "booking_confirmation.tmpl", data)
		if err != nil {
			app.logger.Error("failed to send booking confirmation email", "booking_id", booking.ID, "error", err)
		}
	})
}
