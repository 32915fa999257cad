package service

import (
	"fmt"
	"strings"

	"github.com/OWNALGARNI/holbertonschool-hbnb/internal/model"
	"github.com/OWNALGARNI/holbertonschool-hbnb/internal/storage"
)

// CreatePlaceInput carries the fields accepted when registering a place.
// OwnerID is the already-authenticated caller, resolved by the handler.
type CreatePlaceInput struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	OwnerID     string
	AmenityIDs  []string
}

// UpdatePlaceInput carries the fields a place update may touch. The owner
// reference is immutable and deliberately absent.
type UpdatePlaceInput struct {
	Title       *string
	Description *string
	Price       *float64
	Latitude    *float64
	Longitude   *float64
	AmenityIDs  *[]string
}

// PlaceDetail is the serialized place shape with nested owner, amenity and
// review summaries.
type PlaceDetail struct {
	model.Place
	Amenities []model.AmenitySummary `json:"amenities"`
	Owner     model.UserSummary      `json:"owner"`
	Reviews   []ReviewDetail         `json:"reviews"`
}

func validatePlaceFields(title string, price, latitude, longitude float64) error {
	if strings.TrimSpace(title) == "" {
		return invalid("title", "is required")
	}
	if price < 0 {
		return invalid("price", "must not be negative")
	}
	if latitude < -90 || latitude > 90 {
		return invalid("latitude", "must be between -90 and 90")
	}
	if longitude < -180 || longitude > 180 {
		return invalid("longitude", "must be between -180 and 180")
	}
	return nil
}

func (f *Facade) resolveAmenities(ids []string) ([]model.Amenity, error) {
	amenities := make([]model.Amenity, 0, len(ids))
	for _, id := range ids {
		a, err := f.amenities.Get(id)
		if err != nil {
			return nil, fmt.Errorf("amenity %s: %w", id, err)
		}
		amenities = append(amenities, *a)
	}
	return amenities, nil
}

// CreatePlace validates the fields, resolves the owner and the referenced
// amenities, and stores the place. Nothing is written if any check fails.
func (f *Facade) CreatePlace(in CreatePlaceInput) (*model.Place, error) {
	if err := validatePlaceFields(in.Title, in.Price, in.Latitude, in.Longitude); err != nil {
		return nil, err
	}
	if _, err := f.users.Get(in.OwnerID); err != nil {
		return nil, fmt.Errorf("owner %s: %w", in.OwnerID, err)
	}
	amenities, err := f.resolveAmenities(in.AmenityIDs)
	if err != nil {
		return nil, err
	}
	p := model.NewPlace(strings.TrimSpace(in.Title), in.Description, in.Price, in.Latitude, in.Longitude, in.OwnerID, amenities)
	if err := f.places.Add(p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetPlace fetches a place by ID.
func (f *Facade) GetPlace(id string) (*model.Place, error) {
	p, err := f.places.Get(id)
	if err != nil {
		return nil, fmt.Errorf("place %s: %w", id, err)
	}
	return p, nil
}

// GetPlaceDetail assembles the place with its owner summary, amenity
// summaries and reviews (each carrying the author's summary).
func (f *Facade) GetPlaceDetail(id string) (*PlaceDetail, error) {
	p, err := f.GetPlace(id)
	if err != nil {
		return nil, err
	}
	owner, err := f.users.Get(p.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("owner %s: %w", p.OwnerID, err)
	}
	reviews, err := f.ListReviewsByPlace(id)
	if err != nil {
		return nil, err
	}
	detail := &PlaceDetail{
		Place:     *p,
		Amenities: make([]model.AmenitySummary, 0, len(p.Amenities)),
		Owner:     owner.Summary(),
		Reviews:   reviews,
	}
	for _, a := range p.Amenities {
		detail.Amenities = append(detail.Amenities, a.Summary())
	}
	return detail, nil
}

// ListPlaces returns all places in insertion order.
func (f *Facade) ListPlaces() ([]model.Place, error) {
	return f.places.List()
}

// UpdatePlace validates and applies a partial update. A changed amenity set
// is resolved against the amenity store first.
func (f *Facade) UpdatePlace(id string, in UpdatePlaceInput) (*model.Place, error) {
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, invalid("title", "is required")
	}
	if in.Price != nil && *in.Price < 0 {
		return nil, invalid("price", "must not be negative")
	}
	if in.Latitude != nil && (*in.Latitude < -90 || *in.Latitude > 90) {
		return nil, invalid("latitude", "must be between -90 and 90")
	}
	if in.Longitude != nil && (*in.Longitude < -180 || *in.Longitude > 180) {
		return nil, invalid("longitude", "must be between -180 and 180")
	}
	patch := storage.PlacePatch{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
	}
	if in.AmenityIDs != nil {
		amenities, err := f.resolveAmenities(*in.AmenityIDs)
		if err != nil {
			return nil, err
		}
		patch.Amenities = &amenities
	}
	p, err := f.places.Update(id, patch)
	if err != nil {
		return nil, fmt.Errorf("place %s: %w", id, err)
	}
	return p, nil
}

// DeletePlace removes a place and cascades deletion of its reviews.
func (f *Facade) DeletePlace(id string) (bool, error) {
	if _, err := f.reviews.DeleteByPlace(id); err != nil {
		return false, err
	}
	return f.places.Delete(id)
}
