package wire

import (
	"net/http"

	"mentor-booking/internal/adaptor"
	"mentor-booking/internal/data/entity"
	"mentor-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSlot(r chi.Router, slotHandler *adaptor.SlotHandler, auth func(http.Handler) http.Handler, log *zap.Logger) {
	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Get("/api/slots/available", slotHandler.Available)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(entity.RoleMentor, log))

			r.Post("/api/slots", slotHandler.CreateSlot)
			r.Get("/api/slots/mine", slotHandler.MySlots)
		})
	})
}
