package request

type CreateSlotRequest struct {
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string  `json:"start_time" validate:"required,hhmm"`
	EndTime     string  `json:"end_time" validate:"required,hhmm"`
	Price       float64 `json:"price" validate:"gte=0"`
	Title       string  `json:"title" validate:"required,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

type AvailableSlotsQuery struct {
	MentorID string `validate:"omitempty,uuid"`
	Date     string `validate:"omitempty,datetime=2006-01-02"`
}
