package service

import (
	"fmt"
	"strings"

	"github.com/OWNALGARNI/holbertonschool-hbnb/internal/model"
	"github.com/OWNALGARNI/holbertonschool-hbnb/internal/storage"
)

// CreateAmenity validates the name and stores a new amenity. Name
// uniqueness is enforced by the store.
func (f *Facade) CreateAmenity(name string) (*model.Amenity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("name", "is required")
	}
	a := model.NewAmenity(name)
	if err := f.amenities.Add(a); err != nil {
		return nil, err
	}
	return a, nil
}

// GetAmenity fetches an amenity by ID.
func (f *Facade) GetAmenity(id string) (*model.Amenity, error) {
	a, err := f.amenities.Get(id)
	if err != nil {
		return nil, fmt.Errorf("amenity %s: %w", id, err)
	}
	return a, nil
}

// ListAmenities returns all amenities in insertion order.
func (f *Facade) ListAmenities() ([]model.Amenity, error) {
	return f.amenities.List()
}

// UpdateAmenity renames an amenity; the new name must be non-empty and
// unused.
func (f *Facade) UpdateAmenity(id, name string) (*model.Amenity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("name", "is required")
	}
	a, err := f.amenities.Update(id, storage.AmenityPatch{Name: &name})
	if err != nil {
		return nil, fmt.Errorf("amenity %s: %w", id, err)
	}
	return a, nil
}

// DeleteAmenity removes an amenity after detaching it from every place that
// references it.
func (f *Facade) DeleteAmenity(id string) (bool, error) {
	places, err := f.places.List()
	if err != nil {
		return false, err
	}
	for _, p := range places {
		if !p.HasAmenity(id) {
			continue
		}
		remaining := make([]model.Amenity, 0, len(p.Amenities)-1)
		for _, a := range p.Amenities {
			if a.ID != id {
				remaining = append(remaining, a)
			}
		}
		if _, err := f.places.Update(p.ID, storage.PlacePatch{Amenities: &remaining}); err != nil {
			return false, err
		}
	}
	return f.amenities.Delete(id)
}
