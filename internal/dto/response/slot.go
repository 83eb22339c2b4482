package response

import (
	"time"

	"mentor-booking/internal/data/entity"
)

type SlotResponse struct {
	ID          string    `json:"id"`
	MentorID    string    `json:"mentor_id"`
	MentorName  string    `json:"mentor_name"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Price       float64   `json:"price"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	IsBooked    bool      `json:"is_booked"`
	BookingID   *string   `json:"booking_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func SlotToResponse(slot *entity.Slot) SlotResponse {
	resp := SlotResponse{
		ID:          slot.ID.String(),
		MentorID:    slot.MentorID.String(),
		MentorName:  slot.MentorName,
		Date:        slot.Date,
		StartTime:   slot.StartTime,
		EndTime:     slot.EndTime,
		Price:       slot.Price,
		Title:       slot.Title,
		Description: slot.Description,
		IsBooked:    slot.IsBooked,
		CreatedAt:   slot.CreatedAt,
	}
	if slot.BookingID != nil {
		id := slot.BookingID.String()
		resp.BookingID = &id
	}
	return resp
}

func SlotsToResponse(slots []*entity.Slot) []SlotResponse {
	out := make([]SlotResponse, 0, len(slots))
	for _, slot := range slots {
		out = append(out, SlotToResponse(slot))
	}
	return out
}
