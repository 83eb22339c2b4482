package wire

import (
	"net/http"

	"mentor-booking/internal/adaptor"
	"mentor-booking/internal/data/entity"
	"mentor-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCommunity(r chi.Router, communityHandler *adaptor.CommunityHandler, auth func(http.Handler) http.Handler, log *zap.Logger) {
	r.Get("/api/community/faqs", communityHandler.ListFAQs)
	r.Get("/api/community/articles", communityHandler.ListArticles)
	r.Get("/api/community/articles/{id}", communityHandler.GetArticle)

	r.Group(func(r chi.Router) {
		r.Use(auth)

		mentorOnly := middleware.RequireRole(entity.RoleMentor, log)

		r.With(mentorOnly).Post("/api/community/faqs", communityHandler.AddFAQ)
		r.With(mentorOnly).Post("/api/community/articles", communityHandler.CreateArticle)
		r.With(middleware.RequireRole(entity.RoleMentee, log)).Post("/api/community/reviews", communityHandler.AddReview)
	})
}
