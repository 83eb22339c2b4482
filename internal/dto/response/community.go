package response

import (
	"time"

	"mentor-booking/internal/data/entity"
)

type FAQResponse struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Category  string    `json:"category"`
	IsCommon  bool      `json:"is_common"`
	MentorID  *string   `json:"mentor_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type FAQGroupResponse struct {
	Category string        `json:"category"`
	FAQs     []FAQResponse `json:"faqs"`
}

type ArticleResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Excerpt    string    `json:"excerpt"`
	Content    string    `json:"content,omitempty"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Category   string    `json:"category"`
	Tags       []string  `json:"tags"`
	ReadTime   int       `json:"read_time"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReviewResponse struct {
	ID         string    `json:"id"`
	MentorID   string    `json:"mentor_id"`
	MenteeID   string    `json:"mentee_id"`
	MenteeName string    `json:"mentee_name"`
	BookingID  string    `json:"booking_id"`
	Rating     int       `json:"rating"`
	Comment    *string   `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type MentorReviewsResponse struct {
	Reviews       []ReviewResponse `json:"reviews"`
	AverageRating float64          `json:"average_rating"`
	TotalReviews  int              `json:"total_reviews"`
}

type NoteResponse struct {
	ID         string          `json:"id"`
	BookingID  string          `json:"booking_id"`
	AuthorID   string          `json:"author_id"`
	AuthorName string          `json:"author_name"`
	AuthorRole entity.UserRole `json:"author_role"`
	Notes      string          `json:"notes"`
	IsPrivate  bool            `json:"is_private"`
	CreatedAt  time.Time       `json:"created_at"`
}

func FAQToResponse(faq *entity.FAQ) FAQResponse {
	resp := FAQResponse{
		ID:        faq.ID.String(),
		Question:  faq.Question,
		Category:  faq.Category,
		IsCommon:  faq.IsCommon,
		CreatedAt: faq.CreatedAt,
	}
	if faq.MentorID != nil {
		id := faq.MentorID.String()
		resp.MentorID = &id
	}
	return resp
}

// GroupFAQs keeps the first-seen order of categories.
func GroupFAQs(faqs []*entity.FAQ) []FAQGroupResponse {
	groups := []FAQGroupResponse{}
	index := map[string]int{}
	for _, faq := range faqs {
		i, ok := index[faq.Category]
		if !ok {
			i = len(groups)
			index[faq.Category] = i
			groups = append(groups, FAQGroupResponse{Category: faq.Category})
		}
		groups[i].FAQs = append(groups[i].FAQs, FAQToResponse(faq))
	}
	return groups
}

// ArticleToResponse drops the body unless full is set, as list views only need the excerpt.
func ArticleToResponse(article *entity.Article, full bool) ArticleResponse {
	resp := ArticleResponse{
		ID:         article.ID.String(),
		Title:      article.Title,
		Excerpt:    article.Excerpt,
		AuthorID:   article.AuthorID.String(),
		AuthorName: article.AuthorName,
		Category:   article.Category,
		Tags:       nonNil(article.Tags),
		ReadTime:   article.ReadTime,
		CreatedAt:  article.CreatedAt,
	}
	if full {
		resp.Content = article.Content
	}
	return resp
}

func ArticlesToResponse(articles []*entity.Article) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(articles))
	for _, article := range articles {
		out = append(out, ArticleToResponse(article, false))
	}
	return out
}

func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:         review.ID.String(),
		MentorID:   review.MentorID.String(),
		MenteeID:   review.MenteeID.String(),
		MenteeName: review.MenteeName,
		BookingID:  review.BookingID.String(),
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt,
	}
}

func NoteToResponse(note *entity.MeetingNote) NoteResponse {
	return NoteResponse{
		ID:         note.ID.String(),
		BookingID:  note.BookingID.String(),
		AuthorID:   note.AuthorID.String(),
		AuthorName: note.AuthorName,
		AuthorRole: note.AuthorRole,
		Notes:      note.Notes,
		IsPrivate:  note.IsPrivate,
		CreatedAt:  note.CreatedAt,
	}
}

func NotesToResponse(notes []*entity.MeetingNote) []NoteResponse {
	out := make([]NoteResponse, 0, len(notes))
	for _, note := range notes {
		out = append(out, NoteToResponse(note))
	}
	return out
}
