// Package storage defines the per-entity stores behind the facade. Two
// implementations exist: an in-memory variant guarded by locks, and a
// gorm/postgres variant. Uniqueness rules (user email, amenity name, one
// review per user and place) are enforced by the stores atomically with the
// insert, so concurrent creates cannot both slip past a pre-check.
package storage

import (
	"errors"

	"github.com/OWNALGARNI/holbertonschool-hbnb/internal/model"
)

var (
	// ErrNotFound is returned when an identity does not resolve to a
	// stored entity. Callers decide whether absence is an error.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateID is returned by Add when the generated identity is
	// already taken. With UUID identities this should never happen.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrDuplicateEmail is returned when a user insert or update would
	// reuse another user's email.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrDuplicateName is returned when an amenity insert or update would
	// reuse another amenity's name.
	ErrDuplicateName = errors.New("name already exists")

	// ErrDuplicateReview is returned when a user already has a review for
	// the same place.
	ErrDuplicateReview = errors.New("review already exists for this user and place")
)

// UserPatch carries the fields a user update is allowed to touch. Nil fields
// are left untouched. Identity and timestamps are not patchable; Email is
// expected to arrive normalized and pre-validated by the facade, and
// PasswordHash must already be a bcrypt hash.
type UserPatch struct {
	Email        *string
	PasswordHash *string
	FirstName    *string
	LastName     *string
	IsAdmin      *bool
}

// PlacePatch carries the fields a place update is allowed to touch.
// OwnerID is immutable and deliberately absent.
type PlacePatch struct {
	Title       *string
	Description *string
	Price       *float64
	Latitude    *float64
	Longitude   *float64
	Amenities   *[]model.Amenity
}

// AmenityPatch carries the fields an amenity update is allowed to touch.
type AmenityPatch struct {
	Name *string
}

// ReviewPatch carries the fields a review update is allowed to touch.
// UserID and PlaceID are immutable and deliberately absent.
type ReviewPatch struct {
	Text   *string
	Rating *int
}

// UserStore persists users. List returns a snapshot in insertion order.
type UserStore interface {
	Add(u *model.User) error
	Get(id string) (*model.User, error)
	GetByEmail(email string) (*model.User, error)
	List() ([]model.User, error)
	Update(id string, patch UserPatch) (*model.User, error)
	Delete(id string) (bool, error)
}

// PlaceStore persists places.
type PlaceStore interface {
	Add(p *model.Place) error
	Get(id string) (*model.Place, error)
	List() ([]model.Place, error)
	ListByOwner(ownerID string) ([]model.Place, error)
	Update(id string, patch PlacePatch) (*model.Place, error)
	Delete(id string) (bool, error)
	DeleteByOwner(ownerID string) (int, error)
}

// AmenityStore persists amenities.
type AmenityStore interface {
	Add(a *model.Amenity) error
	Get(id string) (*model.Amenity, error)
	GetByName(name string) (*model.Amenity, error)
	List() ([]model.Amenity, error)
	Update(id string, patch AmenityPatch) (*model.Amenity, error)
	Delete(id string) (bool, error)
}

// ReviewStore persists reviews.
type ReviewStore interface {
	Add(r *model.Review) error
	Get(id string) (*model.Review, error)
	List() ([]model.Review, error)
	ListByPlace(placeID string) ([]model.Review, error)
	ListByUser(userID string) ([]model.Review, error)
	Update(id string, patch ReviewPatch) (*model.Review, error)
	Delete(id string) (bool, error)
	DeleteByPlace(placeID string) (int, error)
	DeleteByUser(userID string) (int, error)
}

// Stores bundles the four per-kind stores a facade needs.
type Stores struct {
	Users     UserStore
	Places    PlaceStore
	Amenities AmenityStore
	Reviews   ReviewStore
}
