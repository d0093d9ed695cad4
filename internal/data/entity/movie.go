package entity

import (
	"time"
)

type Movie struct {
	Base
	Title       string    `db:"title"`
	ReleaseDate time.Time `db:"release_date"` // date only, time part is zero
	Language    string    `db:"language"`
}
