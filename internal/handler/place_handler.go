package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/OWNALGARNI/holbertonschool-hbnb/internal/middleware"
	"github.com/OWNALGARNI/holbertonschool-hbnb/internal/service"
	"github.com/OWNALGARNI/holbertonschool-hbnb/pkg/logger"
	"github.com/OWNALGARNI/holbertonschool-hbnb/prometheus"
)

// PlaceHandler serves the /api/v1/places resource.
type PlaceHandler struct {
	facade *service.Facade
}

func NewPlaceHandler(facade *service.Facade) *PlaceHandler {
	return &PlaceHandler{facade: facade}
}

// Create registers a place. The owner is always the authenticated caller; a
// caller-supplied owner_id is an unknown field and rejected by the strict
// decoder.
func (h *PlaceHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Price       float64  `json:"price"`
		Latitude    float64  `json:"latitude"`
		Longitude   float64  `json:"longitude"`
		AmenityIDs  []string `json:"amenity_ids"`
	}
	if err := bindStrict(c, &req); err != nil {
		log.Error("Invalid place payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	place, err := h.facade.CreatePlace(service.CreatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		OwnerID:     middleware.CallerID(c),
		AmenityIDs:  req.AmenityIDs,
	})
	if err != nil {
		log.Error("Failed to create place", zap.Error(err))
		return writeError(c, err)
	}

	prometheus.RecordEntityOperation("place", "create")
	log.Info("Place created", zap.String("place_id", place.ID), zap.String("owner_id", place.OwnerID))
	return c.JSON(http.StatusCreated, place)
}

// List returns all places.
func (h *PlaceHandler) List(c echo.Context) error {
	places, err := h.facade.ListPlaces()
	if err != nil {
		logger.FromContext(c).Error("Failed to list places", zap.Error(err))
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, places)
}

// Get returns one place with nested owner, amenity and review summaries.
func (h *PlaceHandler) Get(c echo.Context) error {
	detail, err := h.facade.GetPlaceDetail(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

// Update applies a partial update. Only the owner (or an admin) may update;
// owner_id is not an accepted field, so ownership never changes.
func (h *PlaceHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	place, err := h.facade.GetPlace(id)
	if err != nil {
		return writeError(c, err)
	}
	if place.OwnerID != middleware.CallerID(c) && !middleware.IsAdmin(c) {
		log.Warn("Place update rejected", zap.String("place_id", id))
		return c.JSON(http.StatusForbidden, echo.Map{"error": "unauthorized action"})
	}

	var req struct {
		Title       *string   `json:"title"`
		Description *string   `json:"description"`
		Price       *float64  `json:"price"`
		Latitude    *float64  `json:"latitude"`
		Longitude   *float64  `json:"longitude"`
		AmenityIDs  *[]string `json:"amenity_ids"`
	}
	if err := bindStrict(c, &req); err != nil {
		log.Error("Invalid place update payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	updated, err := h.facade.UpdatePlace(id, service.UpdatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		AmenityIDs:  req.AmenityIDs,
	})
	if err != nil {
		return writeError(c, err)
	}

	prometheus.RecordEntityOperation("place", "update")
	log.Info("Place updated", zap.String("place_id", id))
	return c.JSON(http.StatusOK, updated)
}

// Delete removes a place and its reviews. Owner or admin only.
func (h *PlaceHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	place, err := h.facade.GetPlace(id)
	if err != nil {
		return writeError(c, err)
	}
	if place.OwnerID != middleware.CallerID(c) && !middleware.IsAdmin(c) {
		log.Warn("Place delete rejected", zap.String("place_id", id))
		return c.JSON(http.StatusForbidden, echo.Map{"error": "unauthorized action"})
	}

	deleted, err := h.facade.DeletePlace(id)
	if err != nil {
		log.Error("Failed to delete place", zap.String("place_id", id), zap.Error(err))
		return writeError(c, err)
	}
	if !deleted {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "place not found"})
	}

	prometheus.RecordEntityOperation("place", "delete")
	log.Info("Place deleted", zap.String("place_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "place deleted"})
}

// ListReviews returns the reviews for one place.
func (h *PlaceHandler) ListReviews(c echo.Context) error {
	reviews, err := h.facade.ListReviewsByPlace(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, reviews)
}
