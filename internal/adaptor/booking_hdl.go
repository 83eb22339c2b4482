package adaptor

import (
	"net/http"

	"mentor-booking/internal/dto/request"
	"mentor-booking/internal/usecase"
	"mentor-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	notes   usecase.NoteService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, notes usecase.NoteService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		notes:   notes,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings (mentee)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	var req request.CreateBookingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	booking, err := h.service.BookSlot(r.Context(), caller, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "book slot")
		return
	}

	utils.ResponseCreated(w, "Booking created", booking)
}

// MyBookings handles GET /api/bookings/mine
func (h *BookingHandler) MyBookings(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	bookings, err := h.service.ListMyBookings(r.Context(), caller)
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBooking handles GET /api/bookings/{id}
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	booking, err := h.service.GetBooking(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// UpdateStatus handles PUT /api/bookings/{id}/status
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	var req request.UpdateBookingStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), caller, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update booking status")
		return
	}

	utils.ResponseSuccess(w, "Booking status updated", booking)
}

// Pay handles POST /api/bookings/{id}/pay (mentee)
func (h *BookingHandler) Pay(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	booking, err := h.service.MarkPaid(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "mark booking paid")
		return
	}

	utils.ResponseSuccess(w, "Payment recorded", booking)
}

// AddNote handles POST /api/bookings/{id}/notes
func (h *BookingHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	var req request.CreateNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	note, err := h.notes.AddNote(r.Context(), caller, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add meeting note")
		return
	}

	utils.ResponseCreated(w, "Note added", note)
}

// ListNotes handles GET /api/bookings/{id}/notes
func (h *BookingHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	notes, err := h.notes.ListNotes(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "list meeting notes")
		return
	}

	utils.ResponseSuccess(w, "success", notes)
}
