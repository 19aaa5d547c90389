package mocks

import (
	"context"
	"time"

	"github.com/cinetix/booking-api/internal/domain"
)

type MockShowtimeRepo struct {
	GetAllFunc          func(ctx context.Context) ([]*domain.Showtime, error)
	GetByIDFunc         func(ctx context.Context, id int) (*domain.Showtime, error)
	FindOverlappingFunc func(ctx context.Context, theater string, start, end time.Time, excludeID int) (*domain.Showtime, error)
	CreateFunc          func(ctx context.Context, showtime *domain.Showtime) error
	UpdateFunc          func(ctx context.Context, showtime *domain.Showtime) error
	DeleteFunc          func(ctx context.Context, id int) error
	UpdateSeatsFunc     func(ctx context.Context, id int, expected, updated domain.SeatMap) (bool, error)
}

func (m *MockShowtimeRepo) GetAll(ctx context.Context) ([]*domain.Showtime, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockShowtimeRepo) GetByID(ctx context.Context, id int) (*domain.Showtime, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *MockShowtimeRepo) FindOverlapping(
	ctx context.Context,
	theater string,
	start, end time.Time,
	excludeID int) (*domain.Showtime, error) {

	return m.FindOverlappingFunc(ctx, theater, start, end, excludeID)
}

func (m *MockShowtimeRepo) Create(ctx context.Context, showtime *domain.Showtime) error {
	return m.CreateFunc(ctx, showtime)
}

func (m *MockShowtimeRepo) Update(ctx context.Context, showtime *domain.Showtime) error {
	return m.UpdateFunc(ctx, showtime)
}

func (m *MockShowtimeRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}

func (m *MockShowtimeRepo) UpdateSeats(
	ctx context.Context,
	id int,
	expected, updated domain.SeatMap) (bool, error) {

	return m.UpdateSeatsFunc(ctx, id, expected, updated)
}
