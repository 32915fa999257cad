package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/OWNALGARNI/holbertonschool-hbnb/internal/service"
	"github.com/OWNALGARNI/holbertonschool-hbnb/pkg/jwtutil"
	"github.com/OWNALGARNI/holbertonschool-hbnb/pkg/logger"
	"github.com/OWNALGARNI/holbertonschool-hbnb/prometheus"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	facade *service.Facade
}

func NewAuthHandler(facade *service.Facade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register creates a non-admin account and returns its password-free form.
func (h *AuthHandler) Register(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RegisterCounter.Inc()

	var req struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := bindStrict(c, &req); err != nil {
		log.Error("Failed to parse registration request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	user, err := h.facade.CreateUser(service.CreateUserInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		log.Error("Registration failed", zap.String("email", req.Email), zap.Error(err))
		prometheus.RecordAuthError("registration_failed")
		return writeError(c, err)
	}

	prometheus.RecordEntityOperation("user", "create")
	log.Info("User registered", zap.String("email", user.Email))
	return c.JSON(http.StatusCreated, user)
}

// Login verifies the credentials and returns a signed JWT.
func (h *AuthHandler) Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.LoginCounter.Inc()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := bindStrict(c, &req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if req.Email == "" || req.Password == "" {
		prometheus.RecordAuthError("incomplete_login")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
	}

	user, err := h.facade.Authenticate(req.Email, req.Password)
	if err != nil {
		log.Error("Login failed", zap.String("email", req.Email))
		prometheus.RecordAuthError("invalid_credentials")
		return writeError(c, err)
	}

	token, err := jwtutil.GenerateToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		prometheus.RecordAuthError("token_generation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}

	log.Info("User logged in", zap.String("email", user.Email))
	return c.JSON(http.StatusOK, echo.Map{
		"access_token": token,
		"user":         user.Summary(),
	})
}
