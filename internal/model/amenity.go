package model

import (
	"time"

	"github.com/google/uuid"
)

// Amenity is a named feature that places can reference. Names are unique
// across the whole store.
type Amenity struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(128);uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AmenitySummary is the nested id/name shape embedded in place payloads.
type AmenitySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewAmenity builds an amenity with a generated ID.
func NewAmenity(name string) *Amenity {
	now := time.Now().UTC()
	return &Amenity{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Summary returns the nested representation of the amenity.
func (a *Amenity) Summary() AmenitySummary {
	return AmenitySummary{ID: a.ID, Name: a.Name}
}
