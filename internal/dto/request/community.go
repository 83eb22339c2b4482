package request

type CreateFAQRequest struct {
	Question string `json:"question" validate:"required,min=10,max=500"`
	Category string `json:"category" validate:"required,max=50"`
}

type CreateArticleRequest struct {
	Title    string   `json:"title" validate:"required,min=10,max=200"`
	Excerpt  string   `json:"excerpt" validate:"required,min=20,max=500"`
	Content  string   `json:"content" validate:"required,min=100"`
	Category string   `json:"category" validate:"required,max=50"`
	Tags     []string `json:"tags,omitempty" validate:"omitempty,dive,required,max=30"`
}

type CreateReviewRequest struct {
	BookingID string  `json:"booking_id" validate:"required,uuid"`
	Rating    int     `json:"rating" validate:"required,min=1,max=5"`
	Comment   *string `json:"comment,omitempty" validate:"omitempty,max=1000"`
}

type CreateNoteRequest struct {
	Notes     string `json:"notes" validate:"required,min=10,max=5000"`
	IsPrivate bool   `json:"is_private"`
}
