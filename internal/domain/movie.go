package domain

import (
	"context"
	"time"
)

type Movie struct {
	ID          int
	Title       string
	Genre       string
	Duration    int
	Rating      float64
	ReleaseYear int
	CreatedAt   time.Time
	Version     int
}

type MovieRepository interface {
	GetAll(ctx context.Context) ([]*Movie, error)
	GetByID(ctx context.Context, id int) (*Movie, error)
	GetByTitle(ctx context.Context, title string) (*Movie, error)
	Create(ctx context.Context, movie *Movie) error
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, title string) error
}
