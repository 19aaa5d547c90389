package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/cinetix/booking-api/internal/domain"
	"github.com/cinetix/booking-api/internal/mailer"
	"github.com/cinetix/booking-api/internal/repository"
	"github.com/cinetix/booking-api/internal/reservation"
	"github.com/cinetix/booking-api/internal/scheduler"
	appvalidator "github.com/cinetix/booking-api/internal/validator"
	"github.com/cinetix/booking-api/internal/vcs"
	"github.com/exaring/otelpgx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
)

var (
	version = vcs.Version()
)

type Application struct {
	config    Config
	logger    *slog.Logger
	db        *pgxpool.Pool
	redis     redis.UniversalClient
	validator *validator.Validate
	mailer    mailer.Mailer
	wg        sync.WaitGroup

	movieRepo domain.MovieRepository
	scheduler *scheduler.Scheduler
	ledger    *reservation.Ledger
}

type Config struct {
	Port             int
	Env              string
	TheaterCapacity  int
	OtelCollectorUrl string
	DB               DBConfig
	Redis            RedisConfig
	SMTP             SMTPConfig
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

func Run() error {
	var cfg Config

	flag.IntVar(&cfg.Port, "port", 3000, "server port")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")
	flag.IntVar(&cfg.TheaterCapacity, "seats-per-theater", scheduler.DefaultTheaterCapacity, "Seat count per theater")
	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector URL")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", "", "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	flag.StringVar(&cfg.Redis.URL, "redis-url", "", "Redis URL")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.StringVar(&cfg.SMTP.Host, "smtp-host", "sandbox.smtp.mailtrap.io", "SMTP host")
	flag.IntVar(&cfg.SMTP.Port, "smtp-port", 2525, "SMTP port")
	flag.StringVar(&cfg.SMTP.Username, "smtp-username", "", "SMTP username")
	flag.StringVar(&cfg.SMTP.Password, "smtp-password", "", "SMTP password")
	flag.StringVar(&cfg.SMTP.Sender, "smtp-sender", "CineTix <no-reply@cinetix.example.com>", "SMTP sender")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	app, err := New(cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	return app.serve()
}

// New wires the application together: database pool, redis client, the
// persistence gateway, and the scheduler and reservation ledger on top of it.
func New(cfg Config, logger *slog.Logger) (*Application, error) {
	db, err := NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	movieRepo := repository.NewPostgresMovieRepository(db)
	showtimeRepo := repository.NewPostgresShowtimeRepository(db)
	bookingRepo := repository.NewPostgresBookingRepository(db)

	smtpMailer := mailer.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Sender)

	return NewApp(cfg, logger, db, redisClient, smtpMailer, movieRepo, showtimeRepo, bookingRepo), nil
}

// NewApp assembles an Application from already-constructed dependencies. The
// scheduler and reservation ledger are built here so every caller gets the
// same wiring between them.
func NewApp(
	cfg Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	redisClient redis.UniversalClient,
	appMailer mailer.Mailer,
	movieRepo domain.MovieRepository,
	showtimeRepo domain.ShowtimeRepository,
	bookingRepo domain.BookingRepository,
) *Application {
	showtimeScheduler := scheduler.New(showtimeRepo, movieRepo, cfg.TheaterCapacity)

	return &Application{
		config:    cfg,
		logger:    logger,
		db:        db,
		redis:     redisClient,
		validator: appvalidator.NewValidator(),
		mailer:    appMailer,
		movieRepo: movieRepo,
		scheduler: showtimeScheduler,
		ledger:    reservation.NewLedger(showtimeScheduler, showtimeRepo, bookingRepo),
	}
}

// Close releases the connection pools after waiting for background tasks.
func (app *Application) Close() {
	app.wg.Wait()

	if app.redis != nil {
		app.redis.Close()
	}
	if app.db != nil {
		app.db.Close()
	}
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	if err := redisotel.InstrumentTracing(rdb); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) serve() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		app.wg.Wait()
		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(otelchi.Middleware("booking-api", otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)

	r.Get("/healthcheck", app.GetHealth)

	r.Route("/movies", func(r chi.Router) {
		r.Get("/all", app.GetMovies)
		r.Post("/", app.CreateMovie)
		r.Post("/update/{movieTitle}", app.UpdateMovie)
		r.Delete("/{movieTitle}", app.DeleteMovie)
	})

	r.Route("/showtimes", func(r chi.Router) {
		r.Get("/", app.GetShowtimes)
		r.Post("/", app.CreateShowtime)
		r.Get("/{id}", app.GetShowtimeById)
		r.Get("/{id}/seats", app.GetShowtimeSeatMap)
		r.Post("/update/{id}", app.UpdateShowtime)
		r.Delete("/{id}", app.DeleteShowtime)
	})

	r.Post("/bookings", app.CreateBooking)

	return r
}
