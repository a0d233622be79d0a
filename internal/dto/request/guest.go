package request

type CreateGuestRequest struct {
	Name  string  `json:"name" validate:"required,min=2,max=100"`
	Phone *string `json:"phone,omitempty"`
	Email string  `json:"email" validate:"required,email"`
}
