package domain

import (
	"context"
	"time"
)

type Showtime struct {
	ID        int
	MovieID   int
	Theater   string
	StartTime time.Time
	EndTime   time.Time
	Price     float64
	Seats     SeatMap
	CreatedAt time.Time
}

// Overlaps reports whether the showtime's half-open interval [StartTime, EndTime)
// intersects [start, end).
func (s *Showtime) Overlaps(start, end time.Time) bool {
	return s.StartTime.Before(end) && s.EndTime.After(start)
}

type ShowtimeRepository interface {
	GetAll(ctx context.Context) ([]*Showtime, error)
	GetByID(ctx context.Context, id int) (*Showtime, error)

	// FindOverlapping returns a showtime in the given theater whose interval
	// intersects [start, end), or nil when there is none. A non-zero excludeID
	// leaves that showtime out of the search.
	FindOverlapping(ctx context.Context, theater string, start, end time.Time, excludeID int) (*Showtime, error)

	Create(ctx context.Context, showtime *Showtime) error
	Update(ctx context.Context, showtime *Showtime) error
	Delete(ctx context.Context, id int) error

	// UpdateSeats conditionally replaces the stored seat map of a showtime.
	// The write succeeds only if the stored state still equals expected,
	// so concurrent reservers cannot both win the same seat.
	UpdateSeats(ctx context.Context, id int, expected, updated SeatMap) (bool, error)
}
