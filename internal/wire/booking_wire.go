package wire

import (
	"net/http"

	"mentor-booking/internal/adaptor"
	"mentor-booking/internal/data/entity"
	"mentor-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, auth func(http.Handler) http.Handler, log *zap.Logger) {
	r.Group(func(r chi.Router) {
		r.Use(auth)

		menteeOnly := middleware.RequireRole(entity.RoleMentee, log)

		r.With(menteeOnly).Post("/api/bookings", bookingHandler.CreateBooking)
		r.Get("/api/bookings/mine", bookingHandler.MyBookings)
		r.Get("/api/bookings/{id}", bookingHandler.GetBooking)
		r.Put("/api/bookings/{id}/status", bookingHandler.UpdateStatus)
		r.With(menteeOnly).Post("/api/bookings/{id}/pay", bookingHandler.Pay)

		r.Get("/api/bookings/{id}/notes", bookingHandler.ListNotes)
		r.Post("/api/bookings/{id}/notes", bookingHandler.AddNote)
	})
}
