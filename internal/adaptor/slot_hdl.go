package adaptor

import (
	"net/http"

	"mentor-booking/internal/dto/request"
	"mentor-booking/internal/usecase"
	"mentor-booking/pkg/utils"

	"go.uber.org/zap"
)

type SlotHandler struct {
	service usecase.SlotService
	log     *zap.Logger
}

func NewSlotHandler(service usecase.SlotService, log *zap.Logger) *SlotHandler {
	return &SlotHandler{
		service: service,
		log:     log.With(zap.String("handler", "slot")),
	}
}

// CreateSlot handles POST /api/slots (mentor)
func (h *SlotHandler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	var req request.CreateSlotRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	slot, err := h.service.CreateSlot(r.Context(), caller, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create slot")
		return
	}

	utils.ResponseCreated(w, "Slot created", slot)
}

// MySlots handles GET /api/slots/mine (mentor)
func (h *SlotHandler) MySlots(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	slots, err := h.service.ListMentorSlots(r.Context(), caller)
	if err != nil {
		handleServiceError(w, h.log, err, "list mentor slots")
		return
	}

	utils.ResponseSuccess(w, "success", slots)
}

// Available handles GET /api/slots/available?mentor_id=&date=
func (h *SlotHandler) Available(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	slots, err := h.service.ListAvailableSlots(r.Context(), &request.AvailableSlotsQuery{
		MentorID: query.Get("mentor_id"),
		Date:     query.Get("date"),
	})
	if err != nil {
		handleServiceError(w, h.log, err, "list available slots")
		return
	}

	utils.ResponseSuccess(w, "success", slots)
}
