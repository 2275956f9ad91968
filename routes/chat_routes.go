package routes

import (
	"matrimony_server/controllers"
	"matrimony_server/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up the messaging routes under /api/auth.
func RegisterChatRoutes(r *mux.Router, chat *services.ChatService, authenticate mux.MiddlewareFunc) {
	controller := controllers.NewChatController(chat)

	chatRouter := r.PathPrefix("/api/auth").Subrouter()
	chatRouter.Use(authenticate)
	chatRouter.HandleFunc("/message", controller.SendMessage).Methods("POST")
	chatRouter.HandleFunc("/messages/{userId}", controller.GetHistory).Methods("GET")
}
