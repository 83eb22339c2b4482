package wire

import (
	"net/http"

	"mentor-booking/internal/adaptor"
	"mentor-booking/internal/data/repository"
	"mentor-booking/internal/usecase"
	"mentor-booking/pkg/middleware"
	"mentor-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services, handlers and the router on top of the repositories.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger, opts ...usecase.Option) *App {
	service := usecase.NewService(repo, config, logger, opts...)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router:  setupRouter(handler, service, logger),
		Service: service,
	}
}

func setupRouter(handler *adaptor.Handler, service *usecase.Service, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	auth := middleware.AuthSession(service.Auth, logger)

	wireAuth(r, handler.Auth, auth)
	wireUser(r, handler.User, auth, logger)
	wireMentor(r, handler.Mentor, auth)
	wireSlot(r, handler.Slot, auth, logger)
	wireBooking(r, handler.Booking, auth, logger)
	wireCommunity(r, handler.Community, auth, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "OK", nil)
	})

	return r
}
