package model

import (
	"time"

	"github.com/google/uuid"
)

// Review is a rated comment a user leaves on a place. A user may review a
// given place at most once, which the stores enforce with a unique index on
// the (user_id, place_id) pair.
type Review struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Text      string    `json:"text" gorm:"type:varchar(1024);not null"`
	Rating    int       `json:"rating" gorm:"not null"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);uniqueIndex:idx_reviews_user_place;not null"`
	PlaceID   string    `json:"place_id" gorm:"type:varchar(36);uniqueIndex:idx_reviews_user_place;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewReview builds a review with a generated ID and creation timestamps.
func NewReview(text string, rating int, userID, placeID string) *Review {
	now := time.Now().UTC()
	return &Review{
		ID:        uuid.NewString(),
		Text:      text,
		Rating:    rating,
		UserID:    userID,
		PlaceID:   placeID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
