package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"matrimony_server/middleware"
	"matrimony_server/models"
	"matrimony_server/services"
	"matrimony_server/utils"

	"github.com/gorilla/mux"
)

// ChatController handles direct messaging between two users.
type ChatController struct {
	ChatService *services.ChatService
}

// NewChatController initializes the chat controller
func NewChatController(service *services.ChatService) *ChatController {
	return &ChatController{ChatService: service}
}

// SendMessage handles POST /api/auth/message.
func (c *ChatController) SendMessage(w http.ResponseWriter, r *http.Request) {
	senderID, _ := middleware.UserIDFrom(r.Context())

	var req models.SendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	err := c.ChatService.SendMessage(r.Context(), senderID, req.ReceiverID, req.Body)
	switch {
	case err == nil:
		utils.JSON(w, http.StatusOK, map[string]string{"message": "Message sent"})
	case errors.Is(err, services.ErrMissingFields):
		utils.Error(w, http.StatusBadRequest, "Receiver and message required")
	case errors.Is(err, services.ErrUserNotFound):
		utils.Error(w, http.StatusNotFound, "Receiver not found")
	default:
		log.Printf("send message failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Failed to send message")
	}
}

// GetHistory handles GET /api/auth/messages/{userId}.
func (c *ChatController) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFrom(r.Context())

	otherID, err := strconv.ParseUint(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	history, err := c.ChatService.GetHistory(r.Context(), userID, uint(otherID))
	if err != nil {
		log.Printf("fetch messages failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}
	utils.JSON(w, http.StatusOK, history)
}
