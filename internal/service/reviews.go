package service

import (
	"fmt"
	"strings"

	"github.com/OWNALGARNI/holbertonschool-hbnb/internal/model"
	"github.com/OWNALGARNI/holbertonschool-hbnb/internal/storage"
)

// CreateReviewInput carries the fields accepted when posting a review.
// UserID is the already-authenticated caller, resolved by the handler.
type CreateReviewInput struct {
	Text    string
	Rating  int
	UserID  string
	PlaceID string
}

// UpdateReviewInput carries the fields a review update may touch. The user
// and place references are immutable and deliberately absent.
type UpdateReviewInput struct {
	Text   *string
	Rating *int
}

// ReviewDetail is the serialized review shape with the author's summary
// nested in.
type ReviewDetail struct {
	model.Review
	User model.UserSummary `json:"user"`
}

// CreateReview validates the fields, resolves both references, rejects
// self-reviews, and stores the review. The one-review-per-user-per-place
// rule is a store constraint applied atomically with the insert, so two
// concurrent creates for the same pair cannot both succeed.
func (f *Facade) CreateReview(in CreateReviewInput) (*model.Review, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, invalid("text", "is required")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, invalid("rating", "must be between 1 and 5")
	}
	if _, err := f.users.Get(in.UserID); err != nil {
		return nil, fmt.Errorf("user %s: %w", in.UserID, err)
	}
	place, err := f.places.Get(in.PlaceID)
	if err != nil {
		return nil, fmt.Errorf("place %s: %w", in.PlaceID, err)
	}
	if place.OwnerID == in.UserID {
		return nil, ErrSelfReview
	}
	r := model.NewReview(strings.TrimSpace(in.Text), in.Rating, in.UserID, in.PlaceID)
	if err := f.reviews.Add(r); err != nil {
		return nil, err
	}
	return r, nil
}

// GetReview fetches a review by ID.
func (f *Facade) GetReview(id string) (*model.Review, error) {
	r, err := f.reviews.Get(id)
	if err != nil {
		return nil, fmt.Errorf("review %s: %w", id, err)
	}
	return r, nil
}

// ListReviews returns all reviews in insertion order.
func (f *Facade) ListReviews() ([]model.Review, error) {
	return f.reviews.List()
}

// ListReviewsByPlace returns the reviews for one place, in insertion order,
// each carrying its author's summary. Authors deleted mid-iteration fall
// back to an empty summary rather than failing the whole listing.
func (f *Facade) ListReviewsByPlace(placeID string) ([]ReviewDetail, error) {
	if _, err := f.places.Get(placeID); err != nil {
		return nil, fmt.Errorf("place %s: %w", placeID, err)
	}
	reviews, err := f.reviews.ListByPlace(placeID)
	if err != nil {
		return nil, err
	}
	out := make([]ReviewDetail, 0, len(reviews))
	for _, r := range reviews {
		detail := ReviewDetail{Review: r}
		if u, err := f.users.Get(r.UserID); err == nil {
			detail.User = u.Summary()
		}
		out = append(out, detail)
	}
	return out, nil
}

// UpdateReview validates and applies a partial update to text and rating.
func (f *Facade) UpdateReview(id string, in UpdateReviewInput) (*model.Review, error) {
	if in.Text != nil && strings.TrimSpace(*in.Text) == "" {
		return nil, invalid("text", "is required")
	}
	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5) {
		return nil, invalid("rating", "must be between 1 and 5")
	}
	r, err := f.reviews.Update(id, storage.ReviewPatch{Text: in.Text, Rating: in.Rating})
	if err != nil {
		return nil, fmt.Errorf("review %s: %w", id, err)
	}
	return r, nil
}

// DeleteReview removes a review.
func (f *Facade) DeleteReview(id string) (bool, error) {
	return f.reviews.Delete(id)
}
