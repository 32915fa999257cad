// Package service implements the HBnB facade: one coordinating surface per
// entity kind layering validation and cross-entity invariants (existence
// checks, self-review rejection, cascades) on top of the bare stores.
package service

import (
	"regexp"

	"github.com/OWNALGARNI/holbertonschool-hbnb/internal/storage"
)

// MinPasswordLength is the minimum accepted plaintext password length.
const MinPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Facade coordinates the four entity stores. It is constructed once at
// process start and passed by reference to the handler layer; it holds no
// package-level state.
type Facade struct {
	users     storage.UserStore
	places    storage.PlaceStore
	amenities storage.AmenityStore
	reviews   storage.ReviewStore
}

// NewFacade builds a facade over the given stores.
func NewFacade(stores *storage.Stores) *Facade {
	return &Facade{
		users:     stores.Users,
		places:    stores.Places,
		amenities: stores.Amenities,
		reviews:   stores.Reviews,
	}
}

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}
