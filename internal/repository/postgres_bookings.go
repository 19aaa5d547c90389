package repository

import (
	"context"
	"errors"

	"github.com/cinetix/booking-api/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, showtime_id, seat_number, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := p.db.Exec(
		ctx,
		query,
		booking.ID,
		booking.UserID,
		booking.ShowtimeID,
		booking.SeatNumber,
		booking.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}
