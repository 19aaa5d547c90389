package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cinetix/booking-api/api"
	"github.com/cinetix/booking-api/internal/domain"
	"github.com/cinetix/booking-api/internal/mailer"
	"github.com/cinetix/booking-api/internal/mocks"
	"github.com/cinetix/booking-api/internal/reservation"
	"github.com/cinetix/booking-api/internal/scheduler"
	appvalidator "github.com/cinetix/booking-api/internal/validator"
)

type testRepos struct {
	movies    *mocks.MockMovieRepo
	showtimes *mocks.MockShowtimeRepo
	bookings  *mocks.MockBookingRepo
}

func newTestApplication(opts ...func(*testRepos)) *Application {
	repos := &testRepos{
		movies:    &mocks.MockMovieRepo{},
		showtimes: &mocks.MockShowtimeRepo{},
		bookings:  &mocks.MockBookingRepo{},
	}

	for _, opt := range opts {
		opt(repos)
	}

	showtimeScheduler := scheduler.New(repos.showtimes, repos.movies, scheduler.DefaultTheaterCapacity)

	return &Application{
		validator: appvalidator.NewValidator(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		mailer:    mailer.NewMockMailer(),
		movieRepo: repos.movies,
		scheduler: showtimeScheduler,
		ledger:    reservation.NewLedger(showtimeScheduler, repos.showtimes, repos.bookings),
	}
}

func withMovieRepo(movies *mocks.MockMovieRepo) func(*testRepos) {
	return func(r *testRepos) {
		r.movies = movies
	}
}

func withShowtimeRepo(showtimes *mocks.MockShowtimeRepo) func(*testRepos) {
	return func(r *testRepos) {
		r.showtimes = showtimes
	}
}

func withBookingRepo(bookings *mocks.MockBookingRepo) func(*testRepos) {
	return func(r *testRepos) {
		r.bookings = bookings
	}
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantErrMessage string) {
	t.Helper()

	if wantStatus >= 200 && wantStatus < 300 {
		return
	}

	switch wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if wantErrMessage != "" && errorResp.Message != wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, wantErrMessage)
		}
	}
}

func testMovie() *domain.Movie {
	return &domain.Movie{
		ID:          1,
		Title:       "Inception",
		Genre:       "Sci-Fi",
		Duration:    148,
		Rating:      8.8,
		ReleaseYear: 2010,
		Version:     1,
	}
}

func ptr[T any](v T) *T {
	return &v
}
