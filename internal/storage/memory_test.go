package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OWNALGARNI/holbertonschool-hbnb/internal/model"
)

func newTestUser(t *testing.T, email string) *model.User {
	t.Helper()
	u, err := model.NewUser(email, "password123", "Test", "User", false)
	require.NoError(t, err)
	return u
}

func TestMemoryUserStoreInsertionOrder(t *testing.T) {
	store := NewMemoryUserStore()
	emails := []string{"a@x.com", "b@x.com", "c@x.com"}
	for _, e := range emails {
		require.NoError(t, store.Add(newTestUser(t, e)))
	}

	users, err := store.List()
	require.NoError(t, err)
	require.Len(t, users, 3)
	for i, e := range emails {
		assert.Equal(t, e, users[i].Email)
	}
}

func TestMemoryUserStoreSnapshotIsolation(t *testing.T) {
	store := NewMemoryUserStore()
	u := newTestUser(t, "a@x.com")
	require.NoError(t, store.Add(u))

	snapshot, err := store.List()
	require.NoError(t, err)

	// Mutating the store after the read must not affect the snapshot
	_, err = store.Delete(u.ID)
	require.NoError(t, err)
	require.Len(t, snapshot, 1)
	assert.Equal(t, "a@x.com", snapshot[0].Email)

	// Mutating the snapshot must not affect the store
	other := newTestUser(t, "b@x.com")
	require.NoError(t, store.Add(other))
	snapshot, err = store.List()
	require.NoError(t, err)
	snapshot[0].Email = "hacked@x.com"
	fresh, err := store.Get(other.ID)
	require.NoError(t, err)
	assert.Equal(t, "b@x.com", fresh.Email)
}

func TestMemoryUserStoreDuplicateID(t *testing.T) {
	store := NewMemoryUserStore()
	u := newTestUser(t, "a@x.com")
	require.NoError(t, store.Add(u))

	dup := newTestUser(t, "other@x.com")
	dup.ID = u.ID
	assert.ErrorIs(t, store.Add(dup), ErrDuplicateID)
}

func TestMemoryUserStoreEmailUnique(t *testing.T) {
	store := NewMemoryUserStore()
	require.NoError(t, store.Add(newTestUser(t, "a@x.com")))

	assert.ErrorIs(t, store.Add(newTestUser(t, "a@x.com")), ErrDuplicateEmail)

	// Updating onto a taken email also fails
	b := newTestUser(t, "b@x.com")
	require.NoError(t, store.Add(b))
	taken := "a@x.com"
	_, err := store.Update(b.ID, UserPatch{Email: &taken})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// The old email is released after an update
	moved := "c@x.com"
	_, err = store.Update(b.ID, UserPatch{Email: &moved})
	require.NoError(t, err)
	_, err = store.GetByEmail("b@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
	got, err := store.GetByEmail("c@x.com")
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
}

func TestMemoryUserStoreGetByEmailNormalizes(t *testing.T) {
	store := NewMemoryUserStore()
	u := newTestUser(t, "a@x.com")
	require.NoError(t, store.Add(u))

	got, err := store.GetByEmail("  A@X.COM  ")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestMemoryUserStoreUpdatePartial(t *testing.T) {
	store := NewMemoryUserStore()
	u := newTestUser(t, "a@x.com")
	require.NoError(t, store.Add(u))

	first := "Alice"
	updated, err := store.Update(u.ID, UserPatch{FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.FirstName)
	assert.Equal(t, u.LastName, updated.LastName)
	assert.Equal(t, u.Email, updated.Email)
	assert.True(t, updated.UpdatedAt.After(u.UpdatedAt) || updated.UpdatedAt.Equal(u.UpdatedAt))

	_, err = store.Update("missing", UserPatch{FirstName: &first})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryUserStoreDelete(t *testing.T) {
	store := NewMemoryUserStore()
	u := newTestUser(t, "a@x.com")
	require.NoError(t, store.Add(u))

	deleted, err := store.Delete(u.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.Delete(u.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	// The email is free for reuse after deletion
	require.NoError(t, store.Add(newTestUser(t, "a@x.com")))
}

func TestMemoryPlaceStoreOwnerQueries(t *testing.T) {
	store := NewMemoryPlaceStore()
	p1 := model.NewPlace("Cabin", "", 50, 10, 10, "owner-1", nil)
	p2 := model.NewPlace("Loft", "", 80, 20, 20, "owner-2", nil)
	p3 := model.NewPlace("Villa", "", 200, 30, 30, "owner-1", nil)
	for _, p := range []*model.Place{p1, p2, p3} {
		require.NoError(t, store.Add(p))
	}

	owned, err := store.ListByOwner("owner-1")
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, "Cabin", owned[0].Title)
	assert.Equal(t, "Villa", owned[1].Title)

	removed, err := store.DeleteByOwner("owner-1")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	all, err := store.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Loft", all[0].Title)
}

func TestMemoryPlaceStoreAmenityCopy(t *testing.T) {
	store := NewMemoryPlaceStore()
	wifi := model.NewAmenity("WiFi")
	p := model.NewPlace("Cabin", "", 50, 10, 10, "owner-1", []model.Amenity{*wifi})
	require.NoError(t, store.Add(p))

	got, err := store.Get(p.ID)
	require.NoError(t, err)
	got.Amenities[0].Name = "changed"

	again, err := store.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "WiFi", again.Amenities[0].Name)
}

func TestMemoryAmenityStoreNameUnique(t *testing.T) {
	store := NewMemoryAmenityStore()
	require.NoError(t, store.Add(model.NewAmenity("WiFi")))
	assert.ErrorIs(t, store.Add(model.NewAmenity("WiFi")), ErrDuplicateName)

	pool := model.NewAmenity("Pool")
	require.NoError(t, store.Add(pool))
	taken := "WiFi"
	_, err := store.Update(pool.ID, AmenityPatch{Name: &taken})
	assert.ErrorIs(t, err, ErrDuplicateName)

	got, err := store.GetByName("Pool")
	require.NoError(t, err)
	assert.Equal(t, pool.ID, got.ID)
}

func TestMemoryReviewStorePairUnique(t *testing.T) {
	store := NewMemoryReviewStore()
	require.NoError(t, store.Add(model.NewReview("Nice", 5, "user-1", "place-1")))

	dup := model.NewReview("Again", 4, "user-1", "place-1")
	assert.ErrorIs(t, store.Add(dup), ErrDuplicateReview)

	// Other pairs are fine
	require.NoError(t, store.Add(model.NewReview("Ok", 3, "user-1", "place-2")))
	require.NoError(t, store.Add(model.NewReview("Good", 4, "user-2", "place-1")))

	// Deleting releases the pair
	reviews, err := store.ListByPlace("place-1")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	deleted, err := store.Delete(reviews[0].ID)
	require.NoError(t, err)
	require.True(t, deleted)
	require.NoError(t, store.Add(model.NewReview("Back", 5, "user-1", "place-1")))
}

func TestMemoryReviewStoreBulkDeletes(t *testing.T) {
	store := NewMemoryReviewStore()
	require.NoError(t, store.Add(model.NewReview("a", 1, "user-1", "place-1")))
	require.NoError(t, store.Add(model.NewReview("b", 2, "user-2", "place-1")))
	require.NoError(t, store.Add(model.NewReview("c", 3, "user-1", "place-2")))

	removed, err := store.DeleteByPlace("place-1")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	removed, err = store.DeleteByUser("user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	all, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, all)
}
