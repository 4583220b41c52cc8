package entity

type HotelCategory string

const (
	CategoryLuxury   HotelCategory = "luxury"
	CategoryBusiness HotelCategory = "business"
	CategoryBudget   HotelCategory = "budget"
	CategoryResort   HotelCategory = "resort"
	CategoryBoutique HotelCategory = "boutique"
)

func (c HotelCategory) Valid() bool {
	switch c {
	case CategoryLuxury, CategoryBusiness, CategoryBudget, CategoryResort, CategoryBoutique:
		return true
	}
	return false
}

type Hotel struct {
	BaseNoDelete
	Name          string        `db:"name"`
	Category      HotelCategory `db:"category"`
	City          string        `db:"city"`
	Address       string        `db:"address"`
	PricePerNight float64       `db:"price_per_night"`
	Rating        float64       `db:"rating"`
	ImageURL      *string       `db:"image_url"`
	Description   *string       `db:"description"`
	Amenities     []string      `db:"amenities"`
}
