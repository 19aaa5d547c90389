// Package reservation tracks per-showtime seat occupancy and performs atomic
// seat reservation against the persistence gateway.
package reservation

import (
	"context"
	"errors"
	"time"

	"github.com/cinetix/booking-api/internal/domain"
	"github.com/google/uuid"
)

// ShowtimeResolver is how the ledger looks up showtimes. The scheduler
// satisfies it.
type ShowtimeResolver interface {
	GetByID(ctx context.Context, id int) (*domain.Showtime, error)
}

type CreateBookingParams struct {
	ShowtimeID int
	SeatNumber int
	UserID     string
}

type Ledger struct {
	resolver  ShowtimeResolver
	showtimes domain.ShowtimeRepository
	bookings  domain.BookingRepository
}

func NewLedger(resolver ShowtimeResolver, showtimes domain.ShowtimeRepository, bookings domain.BookingRepository) *Ledger {
	return &Ledger{
		resolver:  resolver,
		showtimes: showtimes,
		bookings:  bookings,
	}
}

// IsSeatAvailable reports whether the seat is currently free. Unknown
// showtimes and out-of-range seat numbers read as unavailable rather than as
// errors.
func (l *Ledger) IsSeatAvailable(ctx context.Context, showtimeID, seatNumber int) bool {
	showtime, err := l.showtimes.GetByID(ctx, showtimeID)
	if err != nil {
		return false
	}

	return showtime.Seats.IsFree(seatNumber)
}

// ReserveSeat flips one seat from free to reserved in a single
// read-modify-write cycle. The write goes through the gateway's conditional
// UpdateSeats, so of any number of concurrent attempts for the same seat
// exactly one observes the expected state and wins. It returns (false, nil)
// when the seat is taken, out of range, the showtime is unknown, or the
// conditional write was beaten by a concurrent reserver. The ledger never
// retries; retry policy belongs to the caller.
func (l *Ledger) ReserveSeat(ctx context.Context, showtimeID, seatNumber int) (bool, error) {
	showtime, err := l.showtimes.GetByID(ctx, showtimeID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return false, nil
		}

		return false, err
	}

	expected := showtime.Seats
	updated := expected.Clone()

	if !updated.Reserve(seatNumber) {
		return false, nil
	}

	return l.showtimes.UpdateSeats(ctx, showtimeID, expected, updated)
}

// CreateBooking runs the full reservation sequence: resolve the showtime,
// check availability, reserve the seat, then persist the booking record. Each
// step short-circuits to a typed error, leaving no partial booking behind.
func (l *Ledger) CreateBooking(ctx context.Context, params CreateBookingParams) (*domain.Booking, error) {
	showtime, err := l.resolver.GetByID(ctx, params.ShowtimeID)
	if err != nil {
		return nil, err
	}

	if !showtime.Seats.IsFree(params.SeatNumber) {
		return nil, domain.ErrSeatUnavailable
	}

	reserved, err := l.ReserveSeat(ctx, params.ShowtimeID, params.SeatNumber)
	if err != nil {
		return nil, err
	}
	if !reserved {
		// The seat read as free a moment ago, so a concurrent reserver won
		// the conditional write in between.
		return nil, domain.ErrReservationFailed
	}

	booking := &domain.Booking{
		ID:         uuid.New(),
		UserID:     params.UserID,
		ShowtimeID: params.ShowtimeID,
		SeatNumber: params.SeatNumber,
		CreatedAt:  time.Now().UTC(),
	}

	err = l.bookings.Create(ctx, booking)
	if err != nil {
		l.releaseSeat(ctx, params.ShowtimeID, params.SeatNumber)
		return nil, err
	}

	return booking, nil
}

// releaseSeat compensates a reservation whose booking record failed to
// persist. Best effort: if the conditional write loses, the seat stays
// reserved and the mismatch is left to operator reconciliation.
func (l *Ledger) releaseSeat(ctx context.Context, showtimeID, seatNumber int) {
	showtime, err := l.showtimes.GetByID(ctx, showtimeID)
	if err != nil {
		return
	}

	expected := showtime.Seats
	updated := expected.Clone()
	updated.Release(seatNumber)

	_, _ = l.showtimes.UpdateSeats(ctx, showtimeID, expected, updated)
}
