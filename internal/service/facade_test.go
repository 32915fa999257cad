package service

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OWNALGARNI/holbertonschool-hbnb/internal/model"
	"github.com/OWNALGARNI/holbertonschool-hbnb/internal/storage"
)

func newTestFacade() *Facade {
	return NewFacade(storage.NewMemoryStores())
}

func mustCreateUser(t *testing.T, f *Facade, email string) *model.User {
	t.Helper()
	u, err := f.CreateUser(CreateUserInput{
		Email:     email,
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
	})
	require.NoError(t, err)
	return u
}

func mustCreatePlace(t *testing.T, f *Facade, ownerID string) *model.Place {
	t.Helper()
	p, err := f.CreatePlace(CreatePlaceInput{
		Title:     "Cabin",
		Price:     50,
		Latitude:  46.2,
		Longitude: 6.1,
		OwnerID:   ownerID,
	})
	require.NoError(t, err)
	return p
}

func TestCreateUserValidation(t *testing.T) {
	f := newTestFacade()

	_, err := f.CreateUser(CreateUserInput{Email: "not-an-email", Password: "password123"})
	assert.True(t, IsValidation(err), "expected validation error, got %v", err)

	_, err = f.CreateUser(CreateUserInput{Email: "a@x.com", Password: "short"})
	assert.True(t, IsValidation(err), "expected validation error, got %v", err)

	_, err = f.CreateUser(CreateUserInput{Email: "", Password: "password123"})
	assert.True(t, IsValidation(err))
}

func TestCreateUserNormalizesAndHashes(t *testing.T) {
	f := newTestFacade()

	u, err := f.CreateUser(CreateUserInput{
		Email:    "  Alice@Example.COM ",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.NotEqual(t, "password123", u.Password)
	assert.True(t, u.CheckPassword("password123"))

	got, err := f.GetUserByEmail("ALICE@example.com  ")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestUserSerializationOmitsPassword(t *testing.T) {
	f := newTestFacade()
	u := mustCreateUser(t, f, "a@x.com")

	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "password")
	assert.NotContains(t, string(data), u.Password)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	f := newTestFacade()
	mustCreateUser(t, f, "a@x.com")

	_, err := f.CreateUser(CreateUserInput{Email: "A@X.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestCreatePlaceUnknownOwner(t *testing.T) {
	f := newTestFacade()

	_, err := f.CreatePlace(CreatePlaceInput{
		Title:   "Cabin",
		Price:   50,
		OwnerID: "no-such-user",
	})
	assert.ErrorIs(t, err, ErrNotFound)

	// Nothing was stored
	places, err := f.ListPlaces()
	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestCreatePlaceValidation(t *testing.T) {
	f := newTestFacade()
	owner := mustCreateUser(t, f, "a@x.com")

	cases := []struct {
		name string
		in   CreatePlaceInput
	}{
		{"empty title", CreatePlaceInput{Title: "  ", Price: 10, OwnerID: owner.ID}},
		{"negative price", CreatePlaceInput{Title: "Cabin", Price: -1, OwnerID: owner.ID}},
		{"latitude out of range", CreatePlaceInput{Title: "Cabin", Price: 10, Latitude: 91, OwnerID: owner.ID}},
		{"longitude out of range", CreatePlaceInput{Title: "Cabin", Price: 10, Longitude: -181, OwnerID: owner.ID}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.CreatePlace(tc.in)
			assert.True(t, IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestCreatePlaceUnknownAmenity(t *testing.T) {
	f := newTestFacade()
	owner := mustCreateUser(t, f, "a@x.com")

	_, err := f.CreatePlace(CreatePlaceInput{
		Title:      "Cabin",
		Price:      50,
		OwnerID:    owner.ID,
		AmenityIDs: []string{"no-such-amenity"},
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdatePlaceKeepsOwner(t *testing.T) {
	f := newTestFacade()
	owner := mustCreateUser(t, f, "a@x.com")
	p := mustCreatePlace(t, f, owner.ID)

	title := "Renamed"
	updated, err := f.UpdatePlace(p.ID, UpdatePlaceInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, owner.ID, updated.OwnerID)
	assert.Equal(t, p.Price, updated.Price)
}

func TestReviewScenario(t *testing.T) {
	f := newTestFacade()

	// create User A, a Place owned by A, and User B
	a, err := f.CreateUser(CreateUserInput{Email: "a@x.com", Password: "secret1pass"})
	require.NoError(t, err)
	p := mustCreatePlace(t, f, a.ID)
	b, err := f.CreateUser(CreateUserInput{Email: "b@x.com", Password: "secret2pass"})
	require.NoError(t, err)

	// B reviews P -> success
	review, err := f.CreateReview(CreateReviewInput{Text: "Nice", Rating: 5, UserID: b.ID, PlaceID: p.ID})
	require.NoError(t, err)
	assert.NotEmpty(t, review.ID)

	// B reviews P again -> duplicate
	_, err = f.CreateReview(CreateReviewInput{Text: "Again", Rating: 4, UserID: b.ID, PlaceID: p.ID})
	assert.ErrorIs(t, err, ErrDuplicateReview)

	// A reviews own place -> rejected
	_, err = f.CreateReview(CreateReviewInput{Text: "Mine", Rating: 5, UserID: a.ID, PlaceID: p.ID})
	assert.ErrorIs(t, err, ErrSelfReview)

	// a third distinct (user, place) pair succeeds
	c := mustCreateUser(t, f, "c@x.com")
	_, err = f.CreateReview(CreateReviewInput{Text: "Great", Rating: 4, UserID: c.ID, PlaceID: p.ID})
	require.NoError(t, err)
}

func TestCreateReviewValidation(t *testing.T) {
	f := newTestFacade()
	a := mustCreateUser(t, f, "a@x.com")
	b := mustCreateUser(t, f, "b@x.com")
	p := mustCreatePlace(t, f, a.ID)

	_, err := f.CreateReview(CreateReviewInput{Text: " ", Rating: 5, UserID: b.ID, PlaceID: p.ID})
	assert.True(t, IsValidation(err))

	_, err = f.CreateReview(CreateReviewInput{Text: "ok", Rating: 0, UserID: b.ID, PlaceID: p.ID})
	assert.True(t, IsValidation(err))

	_, err = f.CreateReview(CreateReviewInput{Text: "ok", Rating: 6, UserID: b.ID, PlaceID: p.ID})
	assert.True(t, IsValidation(err))

	_, err = f.CreateReview(CreateReviewInput{Text: "ok", Rating: 5, UserID: "ghost", PlaceID: p.ID})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.CreateReview(CreateReviewInput{Text: "ok", Rating: 5, UserID: b.ID, PlaceID: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeletePlaceCascadesReviews(t *testing.T) {
	f := newTestFacade()
	a := mustCreateUser(t, f, "a@x.com")
	b := mustCreateUser(t, f, "b@x.com")
	p := mustCreatePlace(t, f, a.ID)
	other := mustCreatePlace(t, f, b.ID)

	_, err := f.CreateReview(CreateReviewInput{Text: "Nice", Rating: 5, UserID: b.ID, PlaceID: p.ID})
	require.NoError(t, err)
	keep, err := f.CreateReview(CreateReviewInput{Text: "Other", Rating: 3, UserID: a.ID, PlaceID: other.ID})
	require.NoError(t, err)

	deleted, err := f.DeletePlace(p.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	places, err := f.ListPlaces()
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, other.ID, places[0].ID)

	reviews, err := f.ListReviews()
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, keep.ID, reviews[0].ID)
}

func TestDeleteUserCascades(t *testing.T) {
	f := newTestFacade()
	a := mustCreateUser(t, f, "a@x.com")
	b := mustCreateUser(t, f, "b@x.com")
	ap := mustCreatePlace(t, f, a.ID)
	bp := mustCreatePlace(t, f, b.ID)

	// review on A's place by B, and A's review on B's place
	_, err := f.CreateReview(CreateReviewInput{Text: "On A's place", Rating: 4, UserID: b.ID, PlaceID: ap.ID})
	require.NoError(t, err)
	_, err = f.CreateReview(CreateReviewInput{Text: "By A", Rating: 5, UserID: a.ID, PlaceID: bp.ID})
	require.NoError(t, err)

	deleted, err := f.DeleteUser(a.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = f.GetUser(a.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	places, err := f.ListPlaces()
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, bp.ID, places[0].ID)

	reviews, err := f.ListReviews()
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestRoundTrip(t *testing.T) {
	f := newTestFacade()
	u := mustCreateUser(t, f, "a@x.com")

	got, err := f.GetUser(u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, u.Email, got.Email)
	assert.Equal(t, u.CreatedAt, got.CreatedAt)
	assert.Equal(t, u.UpdatedAt, got.UpdatedAt)

	name := "Alice"
	updated, err := f.UpdateUser(u.ID, UpdateUserInput{FirstName: &name})
	require.NoError(t, err)
	assert.Equal(t, u.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(u.UpdatedAt))
}

func TestAdminUpdateUser(t *testing.T) {
	f := newTestFacade()
	u := mustCreateUser(t, f, "a@x.com")
	mustCreateUser(t, f, "b@x.com")

	bad := "still-not-an-email"
	_, err := f.AdminUpdateUser(u.ID, AdminUpdateUserInput{Email: &bad})
	assert.True(t, IsValidation(err))

	taken := "b@x.com"
	_, err = f.AdminUpdateUser(u.ID, AdminUpdateUserInput{Email: &taken})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	fresh := "A2@x.com"
	updated, err := f.AdminUpdateUser(u.ID, AdminUpdateUserInput{Email: &fresh})
	require.NoError(t, err)
	assert.Equal(t, "a2@x.com", updated.Email)
}

func TestAuthenticate(t *testing.T) {
	f := newTestFacade()
	mustCreateUser(t, f, "a@x.com")

	u, err := f.Authenticate("A@x.com ", "password123")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", u.Email)

	_, err = f.Authenticate("a@x.com", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.Authenticate("ghost@x.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	f := newTestFacade()
	u := mustCreateUser(t, f, "a@x.com")

	err := f.ChangePassword(u.ID, "wrong", "newpassword1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = f.ChangePassword(u.ID, "password123", "short")
	assert.True(t, IsValidation(err))

	require.NoError(t, f.ChangePassword(u.ID, "password123", "newpassword1"))
	_, err = f.Authenticate("a@x.com", "newpassword1")
	require.NoError(t, err)
}

func TestAmenityLifecycle(t *testing.T) {
	f := newTestFacade()

	wifi, err := f.CreateAmenity("  WiFi ")
	require.NoError(t, err)
	assert.Equal(t, "WiFi", wifi.Name)

	_, err = f.CreateAmenity("WiFi")
	assert.ErrorIs(t, err, ErrDuplicateName)

	_, err = f.CreateAmenity("   ")
	assert.True(t, IsValidation(err))

	owner := mustCreateUser(t, f, "a@x.com")
	p, err := f.CreatePlace(CreatePlaceInput{
		Title:      "Cabin",
		Price:      50,
		OwnerID:    owner.ID,
		AmenityIDs: []string{wifi.ID},
	})
	require.NoError(t, err)
	require.Len(t, p.Amenities, 1)

	// Deleting the amenity detaches it from the place
	deleted, err := f.DeleteAmenity(wifi.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := f.GetPlace(p.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Amenities)
}

func TestGetPlaceDetail(t *testing.T) {
	f := newTestFacade()
	owner := mustCreateUser(t, f, "owner@x.com")
	guest := mustCreateUser(t, f, "guest@x.com")
	pool, err := f.CreateAmenity("Pool")
	require.NoError(t, err)

	p, err := f.CreatePlace(CreatePlaceInput{
		Title:      "Villa",
		Price:      200,
		OwnerID:    owner.ID,
		AmenityIDs: []string{pool.ID},
	})
	require.NoError(t, err)

	_, err = f.CreateReview(CreateReviewInput{Text: "Lovely", Rating: 5, UserID: guest.ID, PlaceID: p.ID})
	require.NoError(t, err)

	detail, err := f.GetPlaceDetail(p.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, detail.Owner.ID)
	require.Len(t, detail.Amenities, 1)
	assert.Equal(t, "Pool", detail.Amenities[0].Name)
	require.Len(t, detail.Reviews, 1)
	assert.Equal(t, guest.ID, detail.Reviews[0].User.ID)

	// The nested owner summary must not leak the password
	data, err := json.Marshal(detail)
	require.NoError(t, err)
	assert.NotContains(t, string(data), owner.Password)
}

func TestListReviewsByPlaceUnknownPlace(t *testing.T) {
	f := newTestFacade()
	_, err := f.ListReviewsByPlace("ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateReview(t *testing.T) {
	f := newTestFacade()
	a := mustCreateUser(t, f, "a@x.com")
	b := mustCreateUser(t, f, "b@x.com")
	p := mustCreatePlace(t, f, a.ID)
	r, err := f.CreateReview(CreateReviewInput{Text: "Nice", Rating: 4, UserID: b.ID, PlaceID: p.ID})
	require.NoError(t, err)

	rating := 6
	_, err = f.UpdateReview(r.ID, UpdateReviewInput{Rating: &rating})
	assert.True(t, IsValidation(err))

	text := "Even better"
	rating = 5
	updated, err := f.UpdateReview(r.ID, UpdateReviewInput{Text: &text, Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, "Even better", updated.Text)
	assert.Equal(t, 5, updated.Rating)
	assert.Equal(t, b.ID, updated.UserID)
	assert.Equal(t, p.ID, updated.PlaceID)
}

func TestValidationErrorFields(t *testing.T) {
	f := newTestFacade()
	_, err := f.CreateUser(CreateUserInput{Email: "bad", Password: "password123"})
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "email", ve.Field)
}
