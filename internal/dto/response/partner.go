package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type PartnerApplicationResponse struct {
	ID           string                   `json:"id"`
	CompanyName  string                   `json:"company_name"`
	ContactEmail string                   `json:"contact_email"`
	ContactPhone *string                  `json:"contact_phone,omitempty"`
	Message      *string                  `json:"message,omitempty"`
	Status       entity.ApplicationStatus `json:"status"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}

func PartnerApplicationToResponse(app *entity.PartnerApplication) PartnerApplicationResponse {
	return PartnerApplicationResponse{
		ID:           app.ID.String(),
		CompanyName:  app.CompanyName,
		ContactEmail: app.ContactEmail,
		ContactPhone: app.ContactPhone,
		Message:      app.Message,
		Status:       app.Status,
		CreatedAt:    app.CreatedAt,
		UpdatedAt:    app.UpdatedAt,
	}
}
