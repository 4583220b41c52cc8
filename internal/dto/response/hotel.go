package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type HotelResponse struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Category      entity.HotelCategory `json:"category"`
	City          string               `json:"city"`
	Address       string               `json:"address"`
	PricePerNight float64              `json:"price_per_night"`
	Rating        float64              `json:"rating"`
	ImageURL      *string              `json:"image_url,omitempty"`
	Description   *string              `json:"description,omitempty"`
	Amenities     []string             `json:"amenities"`
	CreatedAt     time.Time            `json:"created_at"`
}

func HotelToResponse(hotel *entity.Hotel) HotelResponse {
	amenities := hotel.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return HotelResponse{
		ID:            hotel.ID.String(),
		Name:          hotel.Name,
		Category:      hotel.Category,
		City:          hotel.City,
		Address:       hotel.Address,
		PricePerNight: hotel.PricePerNight,
		Rating:        hotel.Rating,
		ImageURL:      hotel.ImageURL,
		Description:   hotel.Description,
		Amenities:     amenities,
		CreatedAt:     hotel.CreatedAt,
	}
}
