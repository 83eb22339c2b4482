package request

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Role     string `json:"role" validate:"required,oneof=mentor mentee"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest only touches the fields that are set.
type UpdateProfileRequest struct {
	Name       *string  `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Bio        *string  `json:"bio,omitempty" validate:"omitempty,max=2000"`
	Expertise  []string `json:"expertise,omitempty" validate:"omitempty,dive,required,max=50"`
	MeetingFee *float64 `json:"meeting_fee,omitempty" validate:"omitempty,gte=0"`
	JobTitle   *string  `json:"job_title,omitempty" validate:"omitempty,max=100"`
	Company    *string  `json:"company,omitempty" validate:"omitempty,max=100"`
	Industry   *string  `json:"industry,omitempty" validate:"omitempty,max=100"`
	Location   *string  `json:"location,omitempty" validate:"omitempty,max=100"`
}
