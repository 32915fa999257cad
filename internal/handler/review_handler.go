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

// ReviewHandler serves the /api/v1/reviews resource.
type ReviewHandler struct {
	facade *service.Facade
}

func NewReviewHandler(facade *service.Facade) *ReviewHandler {
	return &ReviewHandler{facade: facade}
}

// Create posts a review. The author is always the authenticated caller; a
// caller-supplied user_id is an unknown field and rejected by the strict
// decoder.
func (h *ReviewHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req struct {
		Text    string `json:"text"`
		Rating  int    `json:"rating"`
		PlaceID string `json:"place_id"`
	}
	if err := bindStrict(c, &req); err != nil {
		log.Error("Invalid review payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	review, err := h.facade.CreateReview(service.CreateReviewInput{
		Text:    req.Text,
		Rating:  req.Rating,
		UserID:  middleware.CallerID(c),
		PlaceID: req.PlaceID,
	})
	if err != nil {
		log.Error("Failed to create review", zap.String("place_id", req.PlaceID), zap.Error(err))
		return writeError(c, err)
	}

	prometheus.RecordEntityOperation("review", "create")
	log.Info("Review created", zap.String("review_id", review.ID), zap.String("place_id", review.PlaceID))
	return c.JSON(http.StatusCreated, review)
}

// List returns all reviews.
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.facade.ListReviews()
	if err != nil {
		logger.FromContext(c).Error("Failed to list reviews", zap.Error(err))
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, reviews)
}

// Get returns one review by ID.
func (h *ReviewHandler) Get(c echo.Context) error {
	review, err := h.facade.GetReview(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, review)
}

// Update edits text and rating. Author or admin only; the user and place
// references are not accepted fields, so they never change.
func (h *ReviewHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	review, err := h.facade.GetReview(id)
	if err != nil {
		return writeError(c, err)
	}
	if review.UserID != middleware.CallerID(c) && !middleware.IsAdmin(c) {
		log.Warn("Review update rejected", zap.String("review_id", id))
		return c.JSON(http.StatusForbidden, echo.Map{"error": "unauthorized action"})
	}

	var req struct {
		Text   *string `json:"text"`
		Rating *int    `json:"rating"`
	}
	if err := bindStrict(c, &req); err != nil {
		log.Error("Invalid review update payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	updated, err := h.facade.UpdateReview(id, service.UpdateReviewInput{
		Text:   req.Text,
		Rating: req.Rating,
	})
	if err != nil {
		return writeError(c, err)
	}

	prometheus.RecordEntityOperation("review", "update")
	log.Info("Review updated", zap.String("review_id", id))
	return c.JSON(http.StatusOK, updated)
}

// Delete removes a review. Author or admin only.
func (h *ReviewHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	review, err := h.facade.GetReview(id)
	if err != nil {
		return writeError(c, err)
	}
	if review.UserID != middleware.CallerID(c) && !middleware.IsAdmin(c) {
		log.Warn("Review delete rejected", zap.String("review_id", id))
		return c.JSON(http.StatusForbidden, echo.Map{"error": "unauthorized action"})
	}

	deleted, err := h.facade.DeleteReview(id)
	if err != nil {
		log.Error("Failed to delete review", zap.String("review_id", id), zap.Error(err))
		return writeError(c, err)
	}
	if !deleted {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "review not found"})
	}

	prometheus.RecordEntityOperation("review", "delete")
	log.Info("Review deleted", zap.String("review_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "review deleted"})
}
