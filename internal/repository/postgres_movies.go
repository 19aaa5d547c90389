package repository

import (
	"context"
	"errors"

	"github.com/cinetix/booking-api/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	query := `
		SELECT id, title, genre, duration, rating, release_year, created_at, version
		FROM movies
		ORDER BY title
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []*domain.Movie{}

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Genre,
			&movie.Duration,
			&movie.Rating,
			&movie.ReleaseYear,
			&movie.CreatedAt,
			&movie.Version,
		)
		if err != nil {
			return nil, err
		}

		movies = append(movies, &movie)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

func (p *PostgresMovieRepository) GetByID(ctx context.Context, id int) (*domain.Movie, error) {
	query := `
		SELECT id, title, genre, duration, rating, release_year, created_at, version
		FROM movies
		WHERE id = $1
	`

	return p.getOne(ctx, query, id)
}

func (p *PostgresMovieRepository) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	query := `
		SELECT id, title, genre, duration, rating, release_year, created_at, version
		FROM movies
		WHERE title = $1
	`

	return p.getOne(ctx, query, title)
}

func (p *PostgresMovieRepository) getOne(ctx context.Context, query string, arg any) (*domain.Movie, error) {
	var movie domain.Movie

	err := p.db.QueryRow(ctx, query, arg).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Genre,
		&movie.Duration,
		&movie.Rating,
		&movie.ReleaseYear,
		&movie.CreatedAt,
		&movie.Version,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &movie, nil
}

func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `
		INSERT INTO movies (title, genre, duration, rating, release_year)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version
	`

	err := p.db.QueryRow(
		ctx,
		query,
		movie.Title,
		movie.Genre,
		movie.Duration,
		movie.Rating,
		movie.ReleaseYear).Scan(&movie.ID, &movie.CreatedAt, &movie.Version)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrMovieAlreadyExists
		}

		return err
	}

	return nil
}

func (p *PostgresMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	query := `
		UPDATE movies
		SET title = $1, genre = $2, duration = $3, rating = $4, release_year = $5, version = version + 1
		WHERE id = $6
		RETURNING version
	`

	err := p.db.QueryRow(
		ctx,
		query,
		movie.Title,
		movie.Genre,
		movie.Duration,
		movie.Rating,
		movie.ReleaseYear,
		movie.ID).Scan(&movie.Version)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrMovieAlreadyExists
		}

		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}

func (p *PostgresMovieRepository) Delete(ctx context.Context, title string) error {
	query := `DELETE FROM movies WHERE title = $1`

	tag, err := p.db.Exec(ctx, query, title)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
