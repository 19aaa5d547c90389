package repository

import (
	"context"
	"errors"
	"time"

	"github.com/cinetix/booking-api/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresShowtimeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowtimeRepository(db *pgxpool.Pool) *PostgresShowtimeRepository {
	return &PostgresShowtimeRepository{
		db: db,
	}
}

func (p *PostgresShowtimeRepository) GetAll(ctx context.Context) ([]*domain.Showtime, error) {
	query := `
		SELECT id, movie_id, theater, start_time, end_time, price, seats_available, created_at
		FROM showtimes
		ORDER BY theater, start_time
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	showtimes := []*domain.Showtime{}

	for rows.Next() {
		showtime, err := scanShowtime(rows)
		if err != nil {
			return nil, err
		}

		showtimes = append(showtimes, showtime)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return showtimes, nil
}

func (p *PostgresShowtimeRepository) GetByID(ctx context.Context, id int) (*domain.Showtime, error) {
	query := `
		SELECT id, movie_id, theater, start_time, end_time, price, seats_available, created_at
		FROM showtimes
		WHERE id = $1
	`

	showtime, err := scanShowtime(p.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return showtime, nil
}

// FindOverlapping uses the half-open interval test: an existing showtime
// conflicts when it starts before the new end and ends after the new start.
func (p *PostgresShowtimeRepository) FindOverlapping(
	ctx context.Context,
	theater string,
	start, end time.Time,
	excludeID int) (*domain.Showtime, error) {

	query := `
		SELECT id, movie_id, theater, start_time, end_time, price, seats_available, created_at
		FROM showtimes
		WHERE theater = $1
			AND start_time < $3
			AND end_time > $2
			AND ($4 = 0 OR id <> $4)
		LIMIT 1
	`

	showtime, err := scanShowtime(p.db.QueryRow(ctx, query, theater, start, end, excludeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return showtime, nil
}

func (p *PostgresShowtimeRepository) Create(ctx context.Context, showtime *domain.Showtime) error {
	query := `
		INSERT INTO showtimes (movie_id, theater, start_time, end_time, price, seats_available)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		showtime.MovieID,
		showtime.Theater,
		showtime.StartTime,
		showtime.EndTime,
		showtime.Price,
		showtime.Seats.Flags()).Scan(&showtime.ID, &showtime.CreatedAt)

	if err != nil {
		return mapShowtimeWriteError(err)
	}

	return nil
}

// Update never touches the seats_available column; seat state is mutated only
// through UpdateSeats.
func (p *PostgresShowtimeRepository) Update(ctx context.Context, showtime *domain.Showtime) error {
	query := `
		UPDATE showtimes
		SET movie_id = $1, theater = $2, start_time = $3, end_time = $4, price = $5
		WHERE id = $6
	`

	tag, err := p.db.Exec(
		ctx,
		query,
		showtime.MovieID,
		showtime.Theater,
		showtime.StartTime,
		showtime.EndTime,
		showtime.Price,
		showtime.ID)

	if err != nil {
		return mapShowtimeWriteError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresShowtimeRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM showtimes WHERE id = $1`

	tag, err := p.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

// UpdateSeats is a compare-and-swap on the stored seat flags. The row is only
// written when the stored array still equals the expected one, so two
// concurrent reservers for the same seat cannot both succeed.
func (p *PostgresShowtimeRepository) UpdateSeats(
	ctx context.Context,
	id int,
	expected, updated domain.SeatMap) (bool, error) {

	query := `
		UPDATE showtimes
		SET seats_available = $3
		WHERE id = $1 AND seats_available = $2
	`

	tag, err := p.db.Exec(ctx, query, id, expected.Flags(), updated.Flags())
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() == 1, nil
}

type row interface {
	Scan(dest ...any) error
}

func scanShowtime(r row) (*domain.Showtime, error) {
	var showtime domain.Showtime
	var flags []int16

	err := r.Scan(
		&showtime.ID,
		&showtime.MovieID,
		&showtime.Theater,
		&showtime.StartTime,
		&showtime.EndTime,
		&showtime.Price,
		&flags,
		&showtime.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	showtime.Seats = domain.SeatMapFromFlags(flags)

	return &showtime, nil
}

// mapShowtimeWriteError translates constraint violations into domain errors:
// the movie foreign key into a missing movie, the theater interval exclusion
// constraint into an overlap conflict.
func mapShowtimeWriteError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.ForeignKeyViolation:
		return domain.ErrRecordNotFound
	case pgerrcode.ExclusionViolation:
		return domain.ErrShowtimeConflict
	default:
		return err
	}
}
