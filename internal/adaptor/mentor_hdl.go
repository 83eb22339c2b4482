package adaptor

import (
	"net/http"

	"mentor-booking/internal/data/entity"
	"mentor-booking/internal/usecase"
	"mentor-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MentorHandler struct {
	service usecase.MentorService
	reviews usecase.ReviewService
	log     *zap.Logger
}

func NewMentorHandler(service usecase.MentorService, reviews usecase.ReviewService, log *zap.Logger) *MentorHandler {
	return &MentorHandler{
		service: service,
		reviews: reviews,
		log:     log.With(zap.String("handler", "mentor")),
	}
}

// ListMentors handles GET /api/mentors?search=&industry=&expertise=&location=&min_rating=&sort_by=
func (h *MentorHandler) ListMentors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := entity.MentorFilter{
		Search:    query.Get("search"),
		Industry:  query.Get("industry"),
		Expertise: query.Get("expertise"),
		Location:  query.Get("location"),
		MinRating: utils.ParseFloatPtr(query.Get("min_rating")),
		SortBy:    entity.MentorSort(query.Get("sort_by")),
	}

	mentors, err := h.service.ListMentors(r.Context(), filter)
	if err != nil {
		handleServiceError(w, h.log, err, "list mentors")
		return
	}

	utils.ResponseSuccess(w, "success", mentors)
}

// GetMentor handles GET /api/mentors/{id}
func (h *MentorHandler) GetMentor(w http.ResponseWriter, r *http.Request) {
	mentor, err := h.service.GetMentor(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get mentor")
		return
	}

	utils.ResponseSuccess(w, "success", mentor)
}

// Recommended handles GET /api/mentors/recommended?interests=a,b&limit=3
func (h *MentorHandler) Recommended(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	mentors, err := h.service.RecommendMentors(r.Context(),
		utils.SplitList(query.Get("interests")),
		utils.ParseInt(query.Get("limit"), 0),
	)
	if err != nil {
		handleServiceError(w, h.log, err, "recommend mentors")
		return
	}

	utils.ResponseSuccess(w, "success", mentors)
}

// FilterOptions handles GET /api/mentors/filters
func (h *MentorHandler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.service.FilterOptions(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get filter options")
		return
	}

	utils.ResponseSuccess(w, "success", options)
}

// Reviews handles GET /api/mentors/{id}/reviews
func (h *MentorHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.MentorReviews(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get mentor reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}
