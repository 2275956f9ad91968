package routes

import (
	"matrimony_server/controllers"
	"matrimony_server/services"

	"github.com/gorilla/mux"
)

// RegisterSearchRoutes sets up the directory search route under /api/auth.
func RegisterSearchRoutes(r *mux.Router, search *services.SearchService, authenticate mux.MiddlewareFunc) {
	controller := controllers.NewSearchController(search)

	searchRouter := r.PathPrefix("/api/auth").Subrouter()
	searchRouter.Use(authenticate)
	searchRouter.HandleFunc("/search", controller.Search).Methods("POST")
}
