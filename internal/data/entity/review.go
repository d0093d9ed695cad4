package entity

// Review is stored in user_reviews. Movie is populated by joined reads.
type Review struct {
	Base
	UserID  int64  `db:"user_id"`
	MovieID int64  `db:"movie_id"`
	Review  string `db:"review"`
	Score   int    `db:"score"` // 1-5
	Movie   *Movie `db:"-"`
}
