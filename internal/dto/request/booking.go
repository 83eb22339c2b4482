package request

type CreateBookingRequest struct {
	SlotID  string  `json:"slot_id" validate:"required,uuid"`
	Message *string `json:"message,omitempty" validate:"omitempty,max=1000"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}
