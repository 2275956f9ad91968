package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"matrimony_server/middleware"
	"matrimony_server/models"
	"matrimony_server/services"
	"matrimony_server/utils"
)

// AuthController handles registration, login and identity lookup.
type AuthController struct {
	UserService  *services.UserService
	TokenService *services.TokenService
}

// NewAuthController initializes the auth controller
func NewAuthController(users *services.UserService, tokens *services.TokenService) *AuthController {
	return &AuthController{UserService: users, TokenService: tokens}
}

func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	return json.NewDecoder(r.Body).Decode(v)
}

// Register handles POST /api/auth/register.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	err := c.UserService.Register(r.Context(), req.Name, req.Email, req.Password)
	switch {
	case err == nil:
		utils.JSON(w, http.StatusOK, map[string]string{"message": "User registered"})
	case errors.Is(err, services.ErrMissingFields):
		utils.Error(w, http.StatusBadRequest, "Name, email and password required")
	case errors.Is(err, services.ErrDuplicateEmail):
		utils.Error(w, http.StatusConflict, "User already exists")
	default:
		log.Printf("register failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Failed to register user")
	}
}

// Login handles POST /api/auth/login.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := c.UserService.Login(r.Context(), req.Email, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrMissingFields):
		utils.Error(w, http.StatusBadRequest, "Email and password required")
		return
	case errors.Is(err, services.ErrUserNotFound):
		utils.Error(w, http.StatusUnauthorized, "User not found")
		return
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	default:
		log.Printf("login failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	token, err := c.TokenService.Issue(user.ID)
	if err != nil {
		log.Printf("issuing token failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Failed to log in")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"token": token})
}

// Me handles GET /api/auth/me.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFrom(r.Context())

	me, err := c.UserService.GetMe(r.Context(), userID)
	switch {
	case err == nil:
		utils.JSON(w, http.StatusOK, me)
	case errors.Is(err, services.ErrUserNotFound):
		utils.Error(w, http.StatusNotFound, "User not found")
	default:
		log.Printf("fetch me failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch user")
	}
}
