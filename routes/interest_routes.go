package routes

import (
	"matrimony_server/controllers"
	"matrimony_server/services"

	"github.com/gorilla/mux"
)

// RegisterInterestRoutes sets up the interest workflow routes under
// /api/auth.
func RegisterInterestRoutes(r *mux.Router, interests *services.InterestService, authenticate mux.MiddlewareFunc) {
	controller := controllers.NewInterestController(interests)

	interestRouter := r.PathPrefix("/api/auth").Subrouter()
	interestRouter.Use(authenticate)
	interestRouter.HandleFunc("/interest", controller.Send).Methods("POST")
	interestRouter.HandleFunc("/interests", controller.List).Methods("GET")
	interestRouter.HandleFunc("/interest/{id}/status", controller.UpdateStatus).Methods("PUT")
}
