package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indeterministic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		return k == "timestamp" || k == "requestId" || k == "createdAt" || k == "bookingId"
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func truncateAll(t testing.TB, db *pgxpool.Pool) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"TRUNCATE bookings, showtimes, movies RESTART IDENTITY CASCADE")
	require.NoError(t, err)
}

func insertTestMovie(t testing.TB, db *pgxpool.Pool) int {
	t.Helper()

	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO movies (title, genre, duration, rating, release_year)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		TestMovieTitle, TestMovieGenre, TestMovieDuration, TestMovieRating, TestMovieReleaseYear,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertTestShowtime(t testing.TB, db *pgxpool.Pool, movieID int, theater string, start, end time.Time) int {
	t.Helper()

	seats := make([]int16, TestTheaterCapacity)

	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO showtimes (movie_id, theater, start_time, end_time, price, seats_available)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		movieID, theater, start, end, TestShowtimePrice, seats,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func countReservedSeats(t testing.TB, db *pgxpool.Pool, showtimeID int) int {
	t.Helper()

	var flags []int16
	err := db.QueryRow(context.Background(),
		"SELECT seats_available FROM showtimes WHERE id = $1", showtimeID).Scan(&flags)
	require.NoError(t, err)

	reserved := 0
	for _, flag := range flags {
		if flag != 0 {
			reserved++
		}
	}

	return reserved
}

func countBookings(t testing.TB, db *pgxpool.Pool, showtimeID int) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE showtime_id = $1", showtimeID).Scan(&count)
	require.NoError(t, err)

	return count
}
