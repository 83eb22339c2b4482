package wire

import (
	"net/http"

	"mentor-booking/internal/adaptor"
	"mentor-booking/internal/data/entity"
	"mentor-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, auth func(http.Handler) http.Handler, log *zap.Logger) {
	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Get("/api/user/profile", userHandler.GetProfile)
		r.With(middleware.RequireRole(entity.RoleMentor, log)).Put("/api/user/profile", userHandler.UpdateProfile)
	})
}
