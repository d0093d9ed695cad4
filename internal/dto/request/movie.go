package request

// MovieRequest is the body of both movie creation and PUT updates.
type MovieRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=50"`
	ReleaseDate string `json:"release_date" validate:"required,datetime=2006-01-02"`
	Language    string `json:"language" validate:"max=20"`
}
