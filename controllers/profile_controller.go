package controllers

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"matrimony_server/middleware"
	"matrimony_server/models"
	"matrimony_server/services"
	"matrimony_server/utils"
)

const maxPhotoSize = 10 << 20 // 10 MiB

// ProfileController handles profile updates and photo upload.
type ProfileController struct {
	UserService *services.UserService
	PhotoStore  services.PhotoStore
}

// NewProfileController initializes the profile controller
func NewProfileController(users *services.UserService, photos services.PhotoStore) *ProfileController {
	return &ProfileController{UserService: users, PhotoStore: photos}
}

// UpdateProfile handles PUT /api/auth/profile. Fields absent from the
// payload are left untouched.
func (c *ProfileController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFrom(r.Context())

	var req models.UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	err := c.UserService.UpdateProfile(r.Context(), userID, req)
	switch {
	case err == nil:
		utils.JSON(w, http.StatusOK, map[string]string{"message": "Profile updated"})
	case errors.Is(err, services.ErrUserNotFound):
		utils.Error(w, http.StatusNotFound, "User not found")
	default:
		log.Printf("update profile failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Update failed")
	}
}

// UploadPhoto handles POST /api/auth/upload-photo (multipart field
// "photo"). The blob goes to the photo store keyed by user id; only the
// returned reference path lands on the User row.
func (c *ProfileController) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFrom(r.Context())

	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		utils.Error(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	file, header, err := r.FormFile("photo")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	contentType := header.Header.Get("Content-Type")
	path, err := c.PhotoStore.Save(r.Context(), userID, ext, contentType, file)
	if err != nil {
		log.Printf("storing photo failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Failed to save photo")
		return
	}

	if err := c.UserService.SetPhoto(r.Context(), userID, path); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.Error(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("saving photo reference failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Failed to save photo")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"message": "Photo uploaded successfully", "photo": path})
}
