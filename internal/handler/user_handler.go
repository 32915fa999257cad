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

// UserHandler serves the /api/v1/users resource.
type UserHandler struct {
	facade *service.Facade
}

func NewUserHandler(facade *service.Facade) *UserHandler {
	return &UserHandler{facade: facade}
}

// Create registers a user on behalf of an administrator, who may set the
// admin flag.
func (h *UserHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		IsAdmin   bool   `json:"is_admin"`
	}
	if err := bindStrict(c, &req); err != nil {
		log.Error("Invalid user payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	user, err := h.facade.CreateUser(service.CreateUserInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		log.Error("Failed to create user", zap.String("email", req.Email), zap.Error(err))
		return writeError(c, err)
	}

	prometheus.RecordEntityOperation("user", "create")
	log.Info("User created", zap.String("user_id", user.ID))
	return c.JSON(http.StatusCreated, user)
}

// List returns all users.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.facade.ListUsers()
	if err != nil {
		logger.FromContext(c).Error("Failed to list users", zap.Error(err))
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// Get returns one user by ID.
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.facade.GetUser(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// Update applies a profile update. Callers may update their own profile
// (first and last name only); administrators may update any account
// including email, password and the admin flag.
func (h *UserHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	if middleware.IsAdmin(c) {
		var req struct {
			Email     *string `json:"email"`
			Password  *string `json:"password"`
			FirstName *string `json:"first_name"`
			LastName  *string `json:"last_name"`
			IsAdmin   *bool   `json:"is_admin"`
		}
		if err := bindStrict(c, &req); err != nil {
			log.Error("Invalid user update payload", zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		user, err := h.facade.AdminUpdateUser(id, service.AdminUpdateUserInput{
			Email:     req.Email,
			Password:  req.Password,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			IsAdmin:   req.IsAdmin,
		})
		if err != nil {
			return writeError(c, err)
		}
		prometheus.RecordEntityOperation("user", "update")
		return c.JSON(http.StatusOK, user)
	}

	if middleware.CallerID(c) != id {
		log.Warn("User update rejected", zap.String("target", id))
		return c.JSON(http.StatusForbidden, echo.Map{"error": "unauthorized action"})
	}

	var req struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
	}
	if err := bindStrict(c, &req); err != nil {
		log.Error("Invalid user update payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	user, err := h.facade.UpdateUser(id, service.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return writeError(c, err)
	}

	prometheus.RecordEntityOperation("user", "update")
	log.Info("User updated", zap.String("user_id", id))
	return c.JSON(http.StatusOK, user)
}

// ChangePassword verifies the caller's current password and sets a new one.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	log := logger.FromContext(c)

	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := bindStrict(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if err := h.facade.ChangePassword(middleware.CallerID(c), req.CurrentPassword, req.NewPassword); err != nil {
		log.Error("Password change failed", zap.Error(err))
		return writeError(c, err)
	}

	log.Info("Password changed", zap.String("user_id", middleware.CallerID(c)))
	return c.JSON(http.StatusOK, echo.Map{"message": "password updated"})
}

// Delete removes a user; their places and reviews go with them.
func (h *UserHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	deleted, err := h.facade.DeleteUser(id)
	if err != nil {
		log.Error("Failed to delete user", zap.String("user_id", id), zap.Error(err))
		return writeError(c, err)
	}
	if !deleted {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}

	prometheus.RecordEntityOperation("user", "delete")
	log.Info("User deleted", zap.String("user_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "user deleted"})
}
