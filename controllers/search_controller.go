package controllers

import (
	"log"
	"net/http"

	"matrimony_server/models"
	"matrimony_server/services"
	"matrimony_server/utils"
)

// SearchController handles filtered search over the user directory.
type SearchController struct {
	SearchService *services.SearchService
}

// NewSearchController initializes the search controller
func NewSearchController(service *services.SearchService) *SearchController {
	return &SearchController{SearchService: service}
}

// Search handles POST /api/auth/search. An empty filter set returns the
// full directory; no matches is an empty array, not an error.
func (c *SearchController) Search(w http.ResponseWriter, r *http.Request) {
	var filters models.SearchFilters
	if err := decodeJSON(r, &filters); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	results, err := c.SearchService.Search(r.Context(), filters)
	if err != nil {
		log.Printf("search failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Search failed")
		return
	}
	utils.JSON(w, http.StatusOK, results)
}
