package entity

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

type PartnerApplication struct {
	BaseNoDelete
	CompanyName  string            `db:"company_name"`
	ContactEmail string            `db:"contact_email"`
	ContactPhone *string           `db:"contact_phone"`
	Message      *string           `db:"message"`
	Status       ApplicationStatus `db:"status"`
}
