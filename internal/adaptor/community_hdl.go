package adaptor

import (
	"net/http"

	"mentor-booking/internal/dto/request"
	"mentor-booking/internal/usecase"
	"mentor-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CommunityHandler struct {
	service usecase.CommunityService
	reviews usecase.ReviewService
	log     *zap.Logger
}

func NewCommunityHandler(service usecase.CommunityService, reviews usecase.ReviewService, log *zap.Logger) *CommunityHandler {
	return &CommunityHandler{
		service: service,
		reviews: reviews,
		log:     log.With(zap.String("handler", "community")),
	}
}

// ListFAQs handles GET /api/community/faqs?mentor_id=&category=
func (h *CommunityHandler) ListFAQs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	groups, err := h.service.ListFAQs(r.Context(), query.Get("mentor_id"), query.Get("category"))
	if err != nil {
		handleServiceError(w, h.log, err, "list faqs")
		return
	}

	utils.ResponseSuccess(w, "success", groups)
}

// AddFAQ handles POST /api/community/faqs (mentor)
func (h *CommunityHandler) AddFAQ(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	var req request.CreateFAQRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	faq, err := h.service.AddFAQ(r.Context(), caller, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add faq")
		return
	}

	utils.ResponseCreated(w, "FAQ added", faq)
}

// ListArticles handles GET /api/community/articles?category=&author_id=&limit=
func (h *CommunityHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	articles, err := h.service.ListArticles(r.Context(),
		query.Get("category"),
		query.Get("author_id"),
		utils.ParseInt(query.Get("limit"), 0),
	)
	if err != nil {
		handleServiceError(w, h.log, err, "list articles")
		return
	}

	utils.ResponseSuccess(w, "success", articles)
}

// GetArticle handles GET /api/community/articles/{id}
func (h *CommunityHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	article, err := h.service.GetArticle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get article")
		return
	}

	utils.ResponseSuccess(w, "success", article)
}

// CreateArticle handles POST /api/community/articles (mentor)
func (h *CommunityHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	var req request.CreateArticleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	article, err := h.service.CreateArticle(r.Context(), caller, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create article")
		return
	}

	utils.ResponseCreated(w, "Article published", article)
}

// AddReview handles POST /api/community/reviews (mentee)
func (h *CommunityHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	var req request.CreateReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	review, err := h.reviews.AddReview(r.Context(), caller, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add review")
		return
	}

	utils.ResponseCreated(w, "Review added", review)
}
