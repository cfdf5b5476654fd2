package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wayfare/internal/models/request_models"
	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// ListByUser godoc
// @Summary List the authenticated user's itineraries
// @Tags Itinerary
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {array} response_models.ItineraryResponse
// @Security BearerAuth
// @Router /itineraries [get]
func (i *ItineraryController) ListByUser(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	userID := c.GetString("user_id")
	itineraries, err := i.itineraryService.ListByUser(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Itineraries fetched successfully")
}

// GetById godoc
// @Summary Get one itinerary
// @Tags Itinerary
// @Produce json
// @Param itineraryId path int true "Itinerary ID"
// @Success 200 {object} response_models.ItineraryResponse
// @Security BearerAuth
// @Router /itineraries/{itineraryId} [get]
func (i *ItineraryController) GetById(c *gin.Context) {
	id, ok := pathID(c, "itineraryId")
	if !ok {
		return
	}

	itinerary, err := i.itineraryService.GetById(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

// Create godoc
// @Summary Create an itinerary
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.CreateItineraryRequest true "Name, location, inclusive date range"
// @Success 200 {object} response_models.ItineraryResponse
// @Security BearerAuth
// @Router /itineraries [post]
func (i *ItineraryController) Create(c *gin.Context) {
	var req request_models.CreateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name, start date and end date are required")
		return
	}

	itinerary, err := i.itineraryService.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary created successfully")
}

// Update godoc
// @Summary Update an itinerary
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param itineraryId path int true "Itinerary ID"
// @Param request body request_models.UpdateItineraryRequest true "Fields to change"
// @Success 200 {object} response_models.ItineraryResponse
// @Security BearerAuth
// @Router /itineraries/{itineraryId} [put]
func (i *ItineraryController) Update(c *gin.Context) {
	id, ok := pathID(c, "itineraryId")
	if !ok {
		return
	}

	var req request_models.UpdateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	itinerary, err := i.itineraryService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary updated successfully")
}

// Delete godoc
// @Summary Delete an itinerary
// @Tags Itinerary
// @Produce json
// @Param itineraryId path int true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{itineraryId} [delete]
func (i *ItineraryController) Delete(c *gin.Context) {
	id, ok := pathID(c, "itineraryId")
	if !ok {
		return
	}

	if err := i.itineraryService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary deleted successfully")
}

// Days godoc
// @Summary List an itinerary's day buckets
// @Tags Itinerary
// @Produce json
// @Param itineraryId path int true "Itinerary ID"
// @Success 200 {array} planner.Day
// @Security BearerAuth
// @Router /itineraries/{itineraryId}/days [get]
func (i *ItineraryController) Days(c *gin.Context) {
	id, ok := pathID(c, "itineraryId")
	if !ok {
		return
	}

	days, err := i.itineraryService.Days(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, days, "Days fetched successfully")
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return id, true
}
