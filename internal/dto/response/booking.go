package response

import (
	"time"

	"mentor-booking/internal/data/entity"
)

type BookingResponse struct {
	ID            string               `json:"id"`
	SlotID        string               `json:"slot_id"`
	MenteeID      string               `json:"mentee_id"`
	MenteeName    string               `json:"mentee_name"`
	MentorID      string               `json:"mentor_id"`
	MentorName    string               `json:"mentor_name"`
	Date          string               `json:"date"`
	StartTime     string               `json:"start_time"`
	EndTime       string               `json:"end_time"`
	Price         float64              `json:"price"`
	Title         string               `json:"title"`
	Message       *string              `json:"message,omitempty"`
	Status        entity.BookingStatus `json:"status"`
	PaymentStatus entity.PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:            booking.ID.String(),
		SlotID:        booking.SlotID.String(),
		MenteeID:      booking.MenteeID.String(),
		MenteeName:    booking.MenteeName,
		MentorID:      booking.MentorID.String(),
		MentorName:    booking.MentorName,
		Date:          booking.Date,
		StartTime:     booking.StartTime,
		EndTime:       booking.EndTime,
		Price:         booking.Price,
		Title:         booking.Title,
		Message:       booking.Message,
		Status:        booking.Status,
		PaymentStatus: booking.PaymentStatus,
		CreatedAt:     booking.CreatedAt,
		UpdatedAt:     booking.UpdatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		out = append(out, BookingToResponse(booking))
	}
	return out
}
