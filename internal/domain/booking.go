package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Booking links a user to one reserved seat of one showtime. Rows are an audit
// log; seat occupancy authority lives in the showtime's SeatMap.
type Booking struct {
	ID         uuid.UUID
	UserID     string
	ShowtimeID int
	SeatNumber int
	CreatedAt  time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
}
