package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfare/internal/models/request_models"
	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

type LocationController struct {
	geocodeService    services.GeocodeServiceInterface
	suggestionService services.SuggestionServiceInterface
}

func NewLocationController(
	geocodeService services.GeocodeServiceInterface,
	suggestionService services.SuggestionServiceInterface,
) *LocationController {
	return &LocationController{
		geocodeService:    geocodeService,
		suggestionService: suggestionService,
	}
}

// Search godoc
// @Summary Resolve a search string to coordinates and an address
// @Tags Location
// @Produce json
// @Param q query string true "Search string"
// @Success 200 {object} services.GeocodeResult
// @Security BearerAuth
// @Router /locations/search [get]
func (l *LocationController) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query parameter q is required")
		return
	}

	result, err := l.geocodeService.Search(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Location resolved successfully")
}

// Suggest godoc
// @Summary Suggest activities for a destination
// @Tags Location
// @Accept json
// @Produce json
// @Param request body request_models.SuggestionRequest true "Destination and trip length in days"
// @Success 200 {array} response_models.SuggestedActivity
// @Security BearerAuth
// @Router /locations/suggest [post]
func (l *LocationController) Suggest(c *gin.Context) {
	var req request_models.SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Location is required")
		return
	}

	suggestions, err := l.suggestionService.SuggestActivities(c.Request.Context(), req.Location, req.Days)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, suggestions, "Suggestions generated successfully")
}
