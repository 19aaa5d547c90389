package domain

import "errors"

var (
	ErrRecordNotFound          = errors.New("record not found")
	ErrMovieAlreadyExists      = errors.New("movie already exists with this title")
	ErrShowtimeConflict        = errors.New("showtime overlaps with an existing showtime in the same theater")
	ErrInvalidShowtimeInterval = errors.New("showtime end time must be after start time")
	ErrSeatUnavailable         = errors.New("seat is already reserved or out of range")
	ErrReservationFailed       = errors.New("seat reservation lost to a concurrent booking")
)
