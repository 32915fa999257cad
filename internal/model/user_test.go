package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserHashesPassword(t *testing.T) {
	u, err := NewUser(" Alice@Example.COM ", "password123", "Alice", "Liddell", false)
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.NotEqual(t, "password123", u.Password)
	assert.True(t, u.CheckPassword("password123"))
	assert.False(t, u.CheckPassword("password124"))
	assert.Equal(t, u.CreatedAt, u.UpdatedAt)
}

func TestUserJSONOmitsPassword(t *testing.T) {
	u, err := NewUser("a@x.com", "password123", "", "", false)
	require.NoError(t, err)

	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(data), u.Password)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	_, exists := decoded["password"]
	assert.False(t, exists)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", NormalizeEmail("  A@X.COM "))
	assert.Equal(t, "a@x.com", NormalizeEmail("a@x.com"))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestSummaryIsPasswordFree(t *testing.T) {
	u, err := NewUser("a@x.com", "password123", "Alice", "Liddell", true)
	require.NoError(t, err)

	s := u.Summary()
	assert.Equal(t, u.ID, s.ID)
	assert.Equal(t, "Alice", s.FirstName)
	assert.Equal(t, "a@x.com", s.Email)
}

func TestHasAmenity(t *testing.T) {
	wifi := NewAmenity("WiFi")
	p := NewPlace("Cabin", "", 10, 0, 0, "owner-1", []Amenity{*wifi})

	assert.True(t, p.HasAmenity(wifi.ID))
	assert.False(t, p.HasAmenity("other"))
}

func TestNewReviewDefaults(t *testing.T) {
	r := NewReview("Nice", 5, "user-1", "place-1")
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, 5, r.Rating)
	assert.Equal(t, "user-1", r.UserID)
	assert.Equal(t, "place-1", r.PlaceID)
	assert.Equal(t, r.CreatedAt, r.UpdatedAt)
}
