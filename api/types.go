// Package api holds the request and response types of the HTTP surface.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Rating and price fields go over the wire as JSON numbers, not quoted
	// strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type CreateMovieRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Genre       string  `json:"genre" validate:"required,max=100"`
	Duration    int     `json:"duration" validate:"required,min=1"`
	Rating      float64 `json:"rating" validate:"min=0,max=10"`
	ReleaseYear int     `json:"releaseYear" validate:"required,min=1900,release_year"`
}

type UpdateMovieRequest struct {
	Title       *string  `json:"title" validate:"omitempty,max=255"`
	Genre       *string  `json:"genre" validate:"omitempty,max=100"`
	Duration    *int     `json:"duration" validate:"omitempty,min=1"`
	Rating      *float64 `json:"rating" validate:"omitempty,min=0,max=10"`
	ReleaseYear *int     `json:"releaseYear" validate:"omitempty,min=1900,release_year"`
}

type MovieResponse struct {
	Id          int             `json:"id"`
	Title       string          `json:"title"`
	Genre       string          `json:"genre"`
	Duration    int             `json:"duration"`
	Rating      decimal.Decimal `json:"rating"`
	ReleaseYear int             `json:"releaseYear"`
}

type MovieListResponse struct {
	Movies []MovieResponse `json:"movies"`
}

type CreateShowtimeRequest struct {
	MovieId   int       `json:"movieId" validate:"required,min=1"`
	Theater   string    `json:"theater" validate:"required,max=255"`
	StartTime time.Time `json:"startTime" validate:"required"`
	EndTime   time.Time `json:"endTime" validate:"required,gtfield=StartTime"`
	Price     float64   `json:"price" validate:"required,gt=0"`
}

type UpdateShowtimeRequest struct {
	MovieId   *int       `json:"movieId" validate:"omitempty,min=1"`
	Theater   *string    `json:"theater" validate:"omitempty,max=255"`
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Price     *float64   `json:"price" validate:"omitempty,gt=0"`
}

type ShowtimeResponse struct {
	Id             int             `json:"id"`
	MovieId        int             `json:"movieId"`
	Theater        string          `json:"theater"`
	StartTime      time.Time       `json:"startTime"`
	EndTime        time.Time       `json:"endTime"`
	Price          decimal.Decimal `json:"price"`
	SeatsAvailable int             `json:"seatsAvailable"`
}

type ShowtimeListResponse struct {
	Showtimes []ShowtimeResponse `json:"showtimes"`
}

type SeatMapResponse struct {
	ShowtimeId int    `json:"showtimeId"`
	Capacity   int    `json:"capacity"`
	Seats      []Seat `json:"seats"`
}

type Seat struct {
	Number    int  `json:"number"`
	Available bool `json:"available"`
}

type CreateBookingRequest struct {
	ShowtimeId    int    `json:"showtimeId" validate:"required,min=1"`
	SeatNumber    int    `json:"seatNumber" validate:"required,min=1"`
	UserId        string `json:"userId" validate:"required,uuid4"`
	CustomerEmail string `json:"customerEmail" validate:"omitempty,email"`
}

type BookingResponse struct {
	BookingId string `json:"bookingId"`
}
