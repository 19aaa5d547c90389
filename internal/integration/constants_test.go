package integration_test

const (
	// Movie related constants
	TestMovieTitle       = "Inception"
	TestMovieGenre       = "Sci-Fi"
	TestMovieDuration    = 148
	TestMovieRating      = 8.8
	TestMovieReleaseYear = 2010

	// Showtime related constants
	TestTheater         = "Theater 1"
	TestShowtimePrice   = 14.99
	TestTheaterCapacity = 50

	// Booking related constants
	TestUserId = "84aa5ba9-e1c4-4fc7-9be0-2fefa2e3d50a"
)
