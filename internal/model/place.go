package model

import (
	"time"

	"github.com/google/uuid"
)

// Place represents a rentable listing owned by a single user. The owner
// reference is set at creation and never changes afterwards.
type Place struct {
	ID          string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Title       string    `json:"title" gorm:"type:varchar(128);not null"`
	Description string    `json:"description" gorm:"type:varchar(1024)"`
	Price       float64   `json:"price" gorm:"not null"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	OwnerID     string    `json:"owner_id" gorm:"type:varchar(36);index;not null"`
	Amenities   []Amenity `json:"amenities" gorm:"many2many:place_amenities"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewPlace builds a place with a generated ID and creation timestamps.
// Field validation happens in the facade before this is called.
func NewPlace(title, description string, price, latitude, longitude float64, ownerID string, amenities []Amenity) *Place {
	now := time.Now().UTC()
	return &Place{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Price:       price,
		Latitude:    latitude,
		Longitude:   longitude,
		OwnerID:     ownerID,
		Amenities:   amenities,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// HasAmenity reports whether the place references the given amenity.
func (p *Place) HasAmenity(amenityID string) bool {
	for _, a := range p.Amenities {
		if a.ID == amenityID {
			return true
		}
	}
	return false
}
