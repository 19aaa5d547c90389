package repository

import (
	"context"
	"sync"
	"time"

	"github.com/cinetix/booking-api/internal/domain"
)

// The in-memory gateway mirrors the Postgres one closely enough to stand in
// for it in tests: same sentinel errors, and the same compare-and-swap
// semantics on seat state. All methods are safe for concurrent use.

type MemoryMovieRepository struct {
	mu     sync.Mutex
	movies map[int]domain.Movie
	nextID int
}

func NewMemoryMovieRepository() *MemoryMovieRepository {
	return &MemoryMovieRepository{
		movies: make(map[int]domain.Movie),
		nextID: 1,
	}
}

func (m *MemoryMovieRepository) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	movies := make([]*domain.Movie, 0, len(m.movies))
	for _, movie := range m.movies {
		copied := movie
		movies = append(movies, &copied)
	}

	return movies, nil
}

func (m *MemoryMovieRepository) GetByID(ctx context.Context, id int) (*domain.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	movie, ok := m.movies[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return &movie, nil
}

func (m *MemoryMovieRepository) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, movie := range m.movies {
		if movie.Title == title {
			copied := movie
			return &copied, nil
		}
	}

	return nil, domain.ErrRecordNotFound
}

func (m *MemoryMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.movies {
		if existing.Title == movie.Title {
			return domain.ErrMovieAlreadyExists
		}
	}

	movie.ID = m.nextID
	m.nextID++
	movie.CreatedAt = time.Now().UTC()
	movie.Version = 1
	m.movies[movie.ID] = *movie

	return nil
}

func (m *MemoryMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.movies[movie.ID]; !ok {
		return domain.ErrRecordNotFound
	}

	for id, existing := range m.movies {
		if id != movie.ID && existing.Title == movie.Title {
			return domain.ErrMovieAlreadyExists
		}
	}

	movie.Version++
	m.movies[movie.ID] = *movie

	return nil
}

func (m *MemoryMovieRepository) Delete(ctx context.Context, title string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, movie := range m.movies {
		if movie.Title == title {
			delete(m.movies, id)
			return nil
		}
	}

	return domain.ErrRecordNotFound
}

type MemoryShowtimeRepository struct {
	mu        sync.Mutex
	showtimes map[int]domain.Showtime
	nextID    int
}

func NewMemoryShowtimeRepository() *MemoryShowtimeRepository {
	return &MemoryShowtimeRepository{
		showtimes: make(map[int]domain.Showtime),
		nextID:    1,
	}
}

func (m *MemoryShowtimeRepository) GetAll(ctx context.Context) ([]*domain.Showtime, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	showtimes := make([]*domain.Showtime, 0, len(m.showtimes))
	for _, showtime := range m.showtimes {
		showtimes = append(showtimes, cloneShowtime(showtime))
	}

	return showtimes, nil
}

func (m *MemoryShowtimeRepository) GetByID(ctx context.Context, id int) (*domain.Showtime, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	showtime, ok := m.showtimes[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return cloneShowtime(showtime), nil
}

func (m *MemoryShowtimeRepository) FindOverlapping(
	ctx context.Context,
	theater string,
	start, end time.Time,
	excludeID int) (*domain.Showtime, error) {

	m.mu.Lock()
	defer m.mu.Unlock()

	for id, showtime := range m.showtimes {
		if id == excludeID || showtime.Theater != theater {
			continue
		}

		if showtime.Overlaps(start, end) {
			return cloneShowtime(showtime), nil
		}
	}

	return nil, nil
}

func (m *MemoryShowtimeRepository) Create(ctx context.Context, showtime *domain.Showtime) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	showtime.ID = m.nextID
	m.nextID++
	showtime.CreatedAt = time.Now().UTC()
	m.showtimes[showtime.ID] = *cloneShowtime(*showtime)

	return nil
}

func (m *MemoryShowtimeRepository) Update(ctx context.Context, showtime *domain.Showtime) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.showtimes[showtime.ID]
	if !ok {
		return domain.ErrRecordNotFound
	}

	// Seat state is owned by UpdateSeats; keep whatever is stored.
	updated := *showtime
	updated.Seats = stored.Seats
	m.showtimes[showtime.ID] = *cloneShowtime(updated)

	return nil
}

func (m *MemoryShowtimeRepository) Delete(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.showtimes[id]; !ok {
		return domain.ErrRecordNotFound
	}

	delete(m.showtimes, id)

	return nil
}

func (m *MemoryShowtimeRepository) UpdateSeats(
	ctx context.Context,
	id int,
	expected, updated domain.SeatMap) (bool, error) {

	m.mu.Lock()
	defer m.mu.Unlock()

	showtime, ok := m.showtimes[id]
	if !ok {
		return false, nil
	}

	if !showtime.Seats.Equal(expected) {
		return false, nil
	}

	showtime.Seats = updated.Clone()
	m.showtimes[id] = showtime

	return true, nil
}

func cloneShowtime(showtime domain.Showtime) *domain.Showtime {
	copied := showtime
	copied.Seats = showtime.Seats.Clone()

	return &copied
}

type MemoryBookingRepository struct {
	mu       sync.Mutex
	bookings []domain.Booking
	failNext error
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{}
}

func (m *MemoryBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return err
	}

	m.bookings = append(m.bookings, *booking)

	return nil
}

// FailNextCreate makes the next Create call return err, for exercising the
// ledger's compensation path.
func (m *MemoryBookingRepository) FailNextCreate(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.failNext = err
}

// All returns a snapshot of the stored bookings.
func (m *MemoryBookingRepository) All() []domain.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()

	bookings := make([]domain.Booking, len(m.bookings))
	copy(bookings, m.bookings)

	return bookings
}
