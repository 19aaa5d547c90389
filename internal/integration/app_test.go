package integration_test

import (
	"log/slog"
	"os"

	"github.com/cinetix/booking-api/internal/app"
	"github.com/cinetix/booking-api/internal/mailer"
	"github.com/cinetix/booking-api/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TestApp struct {
	App    *app.Application
	DB     *pgxpool.Pool
	Mailer *mailer.MockMailer
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	mockMailer := mailer.NewMockMailer()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	movieRepo := repository.NewPostgresMovieRepository(db)
	showtimeRepo := repository.NewPostgresShowtimeRepository(db)
	bookingRepo := repository.NewPostgresBookingRepository(db)

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		mockMailer,
		movieRepo,
		showtimeRepo,
		bookingRepo,
	)

	return &TestApp{
		App:    application,
		DB:     db,
		Mailer: mockMailer,
	}, nil
}
