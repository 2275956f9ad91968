package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"matrimony_server/middleware"
	"matrimony_server/models"
	"matrimony_server/services"
	"matrimony_server/utils"

	"github.com/gorilla/mux"
)

// InterestController handles the like/accept/reject workflow.
type InterestController struct {
	InterestService *services.InterestService
}

// NewInterestController initializes the interest controller
func NewInterestController(service *services.InterestService) *InterestController {
	return &InterestController{InterestService: service}
}

// Send handles POST /api/auth/interest. A duplicate (sender, receiver)
// pair is a 409 conflict.
func (c *InterestController) Send(w http.ResponseWriter, r *http.Request) {
	senderID, _ := middleware.UserIDFrom(r.Context())

	var req models.SendInterestRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	err := c.InterestService.Send(r.Context(), senderID, req.ReceiverID)
	switch {
	case err == nil:
		utils.JSON(w, http.StatusOK, map[string]string{"message": "Interest sent successfully"})
	case errors.Is(err, services.ErrMissingFields):
		utils.Error(w, http.StatusBadRequest, "Receiver required")
	case errors.Is(err, services.ErrSelfInterest):
		utils.Error(w, http.StatusBadRequest, "Cannot send interest to yourself")
	case errors.Is(err, services.ErrUserNotFound):
		utils.Error(w, http.StatusNotFound, "Receiver not found")
	case errors.Is(err, services.ErrDuplicateInterest):
		utils.Error(w, http.StatusConflict, "Interest already sent")
	default:
		log.Printf("send interest failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Failed to send interest")
	}
}

// UpdateStatus handles PUT /api/auth/interest/{id}/status. Only the
// receiver may accept or reject.
func (c *InterestController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	callerID, _ := middleware.UserIDFrom(r.Context())

	interestID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid interest id")
		return
	}

	var req models.UpdateInterestStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	err = c.InterestService.UpdateStatus(r.Context(), uint(interestID), callerID, req.Status)
	switch {
	case err == nil:
		utils.JSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("Interest %s", req.Status)})
	case errors.Is(err, services.ErrInvalidStatus):
		utils.Error(w, http.StatusBadRequest, "Status must be accepted or rejected")
	case errors.Is(err, services.ErrInterestNotFound):
		utils.Error(w, http.StatusNotFound, "Interest not found")
	case errors.Is(err, services.ErrNotReceiver):
		utils.Error(w, http.StatusForbidden, "Only the receiver can update this interest")
	default:
		log.Printf("update interest status failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Failed to update interest status")
	}
}

// List handles GET /api/auth/interests.
func (c *InterestController) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFrom(r.Context())

	list, err := c.InterestService.List(r.Context(), userID)
	if err != nil {
		log.Printf("list interests failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch interests")
		return
	}
	utils.JSON(w, http.StatusOK, list)
}
