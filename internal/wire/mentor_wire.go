package wire

import (
	"net/http"

	"mentor-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMentor(r chi.Router, mentorHandler *adaptor.MentorHandler, auth func(http.Handler) http.Handler) {
	// static segments are matched before {id}
	r.Get("/api/mentors", mentorHandler.ListMentors)
	r.Get("/api/mentors/filters", mentorHandler.FilterOptions)
	r.With(auth).Get("/api/mentors/recommended", mentorHandler.Recommended)
	r.Get("/api/mentors/{id}", mentorHandler.GetMentor)
	r.Get("/api/mentors/{id}/reviews", mentorHandler.Reviews)
}
