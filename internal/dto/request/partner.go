package request

type PartnerApplicationRequest struct {
	CompanyName  string  `json:"company_name" validate:"required,min=2,max=200"`
	ContactEmail string  `json:"contact_email" validate:"required,email"`
	ContactPhone *string `json:"contact_phone,omitempty" validate:"omitempty,min=10,max=15"`
	Message      *string `json:"message,omitempty" validate:"omitempty,max=2000"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}
