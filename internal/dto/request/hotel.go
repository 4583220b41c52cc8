package request

type HotelRequest struct {
	Name          string   `json:"name" validate:"required,min=2,max=200"`
	Category      string   `json:"category" validate:"required,oneof=luxury business budget resort boutique"`
	City          string   `json:"city" validate:"required,min=2,max=100"`
	Address       string   `json:"address" validate:"required,max=300"`
	PricePerNight float64  `json:"price_per_night" validate:"required,gt=0"`
	Rating        float64  `json:"rating" validate:"min=0,max=5"`
	ImageURL      *string  `json:"image_url,omitempty" validate:"omitempty,url"`
	Description   *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Amenities     []string `json:"amenities,omitempty" validate:"omitempty,dive,min=1,max=50"`
}

type HotelUpdateRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Category      *string  `json:"category,omitempty" validate:"omitempty,oneof=luxury business budget resort boutique"`
	City          *string  `json:"city,omitempty" validate:"omitempty,min=2,max=100"`
	Address       *string  `json:"address,omitempty" validate:"omitempty,max=300"`
	PricePerNight *float64 `json:"price_per_night,omitempty" validate:"omitempty,gt=0"`
	Rating        *float64 `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	ImageURL      *string  `json:"image_url,omitempty" validate:"omitempty,url"`
	Description   *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Amenities     []string `json:"amenities,omitempty" validate:"omitempty,dive,min=1,max=50"`
}

// SearchHotelsRequest comes from query parameters; empty fields do not filter.
type SearchHotelsRequest struct {
	Query    string `json:"query"`
	Category string `json:"category" validate:"omitempty,oneof=luxury business budget resort boutique"`
	City     string `json:"city"`
}
