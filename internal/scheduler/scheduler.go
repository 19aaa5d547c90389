// Package scheduler validates and stores showtime records, keeping the
// per-theater calendar free of overlapping screenings.
package scheduler

import (
	"context"
	"time"

	"github.com/cinetix/booking-api/internal/domain"
)

const DefaultTheaterCapacity = 50

type CreateShowtimeParams struct {
	MovieID   int
	Theater   string
	StartTime time.Time
	EndTime   time.Time
	Price     float64
}

// UpdateShowtimeParams carries a partial update; nil fields keep their stored
// value. Seat state is deliberately absent: occupancy is mutated only through
// the reservation ledger, never through an administrative update.
type UpdateShowtimeParams struct {
	MovieID   *int
	Theater   *string
	StartTime *time.Time
	EndTime   *time.Time
	Price     *float64
}

type Scheduler struct {
	showtimes domain.ShowtimeRepository
	movies    domain.MovieRepository
	capacity  int
}

func New(showtimes domain.ShowtimeRepository, movies domain.MovieRepository, theaterCapacity int) *Scheduler {
	if theaterCapacity <= 0 {
		theaterCapacity = DefaultTheaterCapacity
	}

	return &Scheduler{
		showtimes: showtimes,
		movies:    movies,
		capacity:  theaterCapacity,
	}
}

// Create stores a new showtime with every seat free. It fails with
// domain.ErrRecordNotFound when the movie is unknown and with
// domain.ErrShowtimeConflict when [StartTime, EndTime) intersects another
// showtime in the same theater.
func (s *Scheduler) Create(ctx context.Context, params CreateShowtimeParams) (*domain.Showtime, error) {
	if !params.EndTime.After(params.StartTime) {
		return nil, domain.ErrInvalidShowtimeInterval
	}

	if _, err := s.movies.GetByID(ctx, params.MovieID); err != nil {
		return nil, err
	}

	conflict, err := s.showtimes.FindOverlapping(ctx, params.Theater, params.StartTime, params.EndTime, 0)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		return nil, domain.ErrShowtimeConflict
	}

	showtime := &domain.Showtime{
		MovieID:   params.MovieID,
		Theater:   params.Theater,
		StartTime: params.StartTime,
		EndTime:   params.EndTime,
		Price:     params.Price,
		Seats:     domain.NewSeatMap(s.capacity),
	}

	err = s.showtimes.Create(ctx, showtime)
	if err != nil {
		return nil, err
	}

	return showtime, nil
}

// Update applies a partial update after re-validating the movie reference and
// re-running the overlap check against the merged theater and interval. The
// showtime being updated is excluded from the check so it cannot conflict
// with its own previous slot.
func (s *Scheduler) Update(ctx context.Context, id int, params UpdateShowtimeParams) (*domain.Showtime, error) {
	showtime, err := s.showtimes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.MovieID != nil {
		if _, err := s.movies.GetByID(ctx, *params.MovieID); err != nil {
			return nil, err
		}
		showtime.MovieID = *params.MovieID
	}
	if params.Theater != nil {
		showtime.Theater = *params.Theater
	}
	if params.StartTime != nil {
		showtime.StartTime = *params.StartTime
	}
	if params.EndTime != nil {
		showtime.EndTime = *params.EndTime
	}
	if params.Price != nil {
		showtime.Price = *params.Price
	}

	// The merged interval can be invalid even when each field passed request
	// validation on its own.
	if !showtime.EndTime.After(showtime.StartTime) {
		return nil, domain.ErrInvalidShowtimeInterval
	}

	conflict, err := s.showtimes.FindOverlapping(ctx, showtime.Theater, showtime.StartTime, showtime.EndTime, id)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		return nil, domain.ErrShowtimeConflict
	}

	err = s.showtimes.Update(ctx, showtime)
	if err != nil {
		return nil, err
	}

	return showtime, nil
}

func (s *Scheduler) Delete(ctx context.Context, id int) error {
	return s.showtimes.Delete(ctx, id)
}

func (s *Scheduler) GetByID(ctx context.Context, id int) (*domain.Showtime, error) {
	return s.showtimes.GetByID(ctx, id)
}

func (s *Scheduler) GetAll(ctx context.Context) ([]*domain.Showtime, error) {
	return s.showtimes.GetAll(ctx)
}

// TheaterCapacity returns the configured seat count per theater.
func (s *Scheduler) TheaterCapacity() int {
	return s.capacity
}
