package routes

import (
	"matrimony_server/controllers"
	"matrimony_server/services"

	"github.com/gorilla/mux"
)

// RegisterProfileRoutes sets up profile update and photo upload routes
// under /api/auth.
func RegisterProfileRoutes(r *mux.Router, users *services.UserService, photos services.PhotoStore, authenticate mux.MiddlewareFunc) {
	controller := controllers.NewProfileController(users, photos)

	profileRouter := r.PathPrefix("/api/auth").Subrouter()
	profileRouter.Use(authenticate)
	profileRouter.HandleFunc("/profile", controller.UpdateProfile).Methods("PUT")
	profileRouter.HandleFunc("/upload-photo", controller.UploadPhoto).Methods("POST")
}
