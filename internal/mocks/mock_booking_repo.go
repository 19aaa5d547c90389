package mocks

import (
	"context"

	"github.com/cinetix/booking-api/internal/domain"
)

type MockBookingRepo struct {
	CreateFunc func(ctx context.Context, booking *domain.Booking) error
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	return m.CreateFunc(ctx, booking)
}
