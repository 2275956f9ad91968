package routes

import (
	"matrimony_server/controllers"
	"matrimony_server/services"

	"github.com/gorilla/mux"
)

// RegisterAuthRoutes sets up registration, login and identity routes under
// /api/auth. Register and login are the only unauthenticated endpoints.
func RegisterAuthRoutes(r *mux.Router, users *services.UserService, tokens *services.TokenService, authenticate mux.MiddlewareFunc) {
	controller := controllers.NewAuthController(users, tokens)

	open := r.PathPrefix("/api/auth").Subrouter()
	open.HandleFunc("/register", controller.Register).Methods("POST")
	open.HandleFunc("/login", controller.Login).Methods("POST")

	secured := r.PathPrefix("/api/auth").Subrouter()
	secured.Use(authenticate)
	secured.HandleFunc("/me", controller.Me).Methods("GET")
}
