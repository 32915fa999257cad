package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/OWNALGARNI/holbertonschool-hbnb/internal/service"
	"github.com/OWNALGARNI/holbertonschool-hbnb/pkg/logger"
	"github.com/OWNALGARNI/holbertonschool-hbnb/prometheus"
)

// AmenityHandler serves the /api/v1/amenities resource. Mutations are
// admin-only, wired through the RequireAdmin middleware.
type AmenityHandler struct {
	facade *service.Facade
}

func NewAmenityHandler(facade *service.Facade) *AmenityHandler {
	return &AmenityHandler{facade: facade}
}

type amenityRequest struct {
	Name string `json:"name"`
}

// Create registers an amenity.
func (h *AmenityHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req amenityRequest
	if err := bindStrict(c, &req); err != nil {
		log.Error("Invalid amenity payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	amenity, err := h.facade.CreateAmenity(req.Name)
	if err != nil {
		log.Error("Failed to create amenity", zap.String("name", req.Name), zap.Error(err))
		return writeError(c, err)
	}

	prometheus.RecordEntityOperation("amenity", "create")
	log.Info("Amenity created", zap.String("amenity_id", amenity.ID), zap.String("name", amenity.Name))
	return c.JSON(http.StatusCreated, amenity)
}

// List returns all amenities.
func (h *AmenityHandler) List(c echo.Context) error {
	amenities, err := h.facade.ListAmenities()
	if err != nil {
		logger.FromContext(c).Error("Failed to list amenities", zap.Error(err))
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, amenities)
}

// Get returns one amenity by ID.
func (h *AmenityHandler) Get(c echo.Context) error {
	amenity, err := h.facade.GetAmenity(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, amenity)
}

// Update renames an amenity.
func (h *AmenityHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req amenityRequest
	if err := bindStrict(c, &req); err != nil {
		log.Error("Invalid amenity payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	amenity, err := h.facade.UpdateAmenity(id, req.Name)
	if err != nil {
		return writeError(c, err)
	}

	prometheus.RecordEntityOperation("amenity", "update")
	log.Info("Amenity updated", zap.String("amenity_id", id))
	return c.JSON(http.StatusOK, amenity)
}

// Delete removes an amenity, detaching it from any places first.
func (h *AmenityHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	deleted, err := h.facade.DeleteAmenity(id)
	if err != nil {
		log.Error("Failed to delete amenity", zap.String("amenity_id", id), zap.Error(err))
		return writeError(c, err)
	}
	if !deleted {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "amenity not found"})
	}

	prometheus.RecordEntityOperation("amenity", "delete")
	log.Info("Amenity deleted", zap.String("amenity_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "amenity deleted"})
}
