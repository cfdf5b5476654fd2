package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wayfare/internal/models/request_models"
	"wayfare/internal/models/response_models"
	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

type ActivityController struct {
	activityService services.ActivityServiceInterface
	travelService   services.TravelEstimatorService
}

func NewActivityController(
	activityService services.ActivityServiceInterface,
	travelService services.TravelEstimatorService,
) *ActivityController {
	return &ActivityController{
		activityService: activityService,
		travelService:   travelService,
	}
}

// ListByItinerary godoc
// @Summary List an itinerary's activities
// @Tags Activity
// @Produce json
// @Param itineraryId query int true "Itinerary ID"
// @Success 200 {array} response_models.ActivityResponse
// @Security BearerAuth
// @Router /activities [get]
func (a *ActivityController) ListByItinerary(c *gin.Context) {
	itineraryID, err := strconv.ParseInt(c.Query("itineraryId"), 10, 64)
	if err != nil || itineraryID <= 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid itineraryId")
		return
	}

	activities, err := a.activityService.ListByItinerary(c.Request.Context(), itineraryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activities, "Activities fetched successfully")
}

// GetById godoc
// @Summary Get one activity
// @Tags Activity
// @Produce json
// @Param activityId path int true "Activity ID"
// @Success 200 {object} response_models.ActivityResponse
// @Security BearerAuth
// @Router /activities/{activityId} [get]
func (a *ActivityController) GetById(c *gin.Context) {
	id, ok := pathID(c, "activityId")
	if !ok {
		return
	}

	activity, err := a.activityService.GetById(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity fetched successfully")
}

// Create godoc
// @Summary Create an activity
// @Tags Activity
// @Accept json
// @Produce json
// @Param request body request_models.CreateActivityRequest true "Activity draft"
// @Success 200 {object} response_models.ActivityResponse
// @Security BearerAuth
// @Router /activities [post]
func (a *ActivityController) Create(c *gin.Context) {
	var req request_models.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	activity, err := a.activityService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity created successfully")
}

// Update godoc
// @Summary Update an activity
// @Tags Activity
// @Accept json
// @Produce json
// @Param activityId path int true "Activity ID"
// @Param request body request_models.UpdateActivityRequest true "Fields to change"
// @Success 200 {object} response_models.ActivityResponse
// @Security BearerAuth
// @Router /activities/{activityId} [put]
func (a *ActivityController) Update(c *gin.Context) {
	id, ok := pathID(c, "activityId")
	if !ok {
		return
	}

	var req request_models.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	activity, err := a.activityService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity updated successfully")
}

// Delete godoc
// @Summary Delete an activity
// @Tags Activity
// @Produce json
// @Param activityId path int true "Activity ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /activities/{activityId} [delete]
func (a *ActivityController) Delete(c *gin.Context) {
	id, ok := pathID(c, "activityId")
	if !ok {
		return
	}

	if err := a.activityService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Activity deleted successfully")
}

// TravelTime godoc
// @Summary Estimate travel time between two coordinates
// @Tags Activity
// @Produce json
// @Param fromLat query number true "Origin latitude"
// @Param fromLng query number true "Origin longitude"
// @Param toLat query number true "Destination latitude"
// @Param toLng query number true "Destination longitude"
// @Success 200 {object} response_models.TravelTimeResponse
// @Security BearerAuth
// @Router /activities/travel-time [get]
func (a *ActivityController) TravelTime(c *gin.Context) {
	coords := make([]float64, 4)
	for i, name := range []string{"fromLat", "fromLng", "toLat", "toLng"} {
		value, err := strconv.ParseFloat(c.Query(name), 64)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid "+name)
			return
		}
		coords[i] = value
	}

	minutes := a.travelService.TravelMinutes(coords[0], coords[1], coords[2], coords[3])
	distance := a.travelService.DistanceKm(coords[0], coords[1], coords[2], coords[3])

	utils.RespondSuccess(c, response_models.TravelTimeResponse{
		Duration: fmt.Sprintf("%d min", minutes),
		Distance: fmt.Sprintf("%.1f km", distance),
	}, "Travel time estimated successfully")
}

// TotalCost godoc
// @Summary Total cost of an itinerary's scheduled activities
// @Tags Budget
// @Produce json
// @Param itineraryId path int true "Itinerary ID"
// @Success 200 {number} float64
// @Security BearerAuth
// @Router /activities/budget/total/{itineraryId} [get]
func (a *ActivityController) TotalCost(c *gin.Context) {
	id, ok := pathID(c, "itineraryId")
	if !ok {
		return
	}

	total, err := a.activityService.TotalCost(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, total, "Total cost computed successfully")
}

// DailyCosts godoc
// @Summary Per-day cost buckets for an itinerary
// @Tags Budget
// @Produce json
// @Param itineraryId path int true "Itinerary ID"
// @Success 200 {object} response_models.DailyCostsResponse
// @Security BearerAuth
// @Router /activities/budget/daily/{itineraryId} [get]
func (a *ActivityController) DailyCosts(c *gin.Context) {
	id, ok := pathID(c, "itineraryId")
	if !ok {
		return
	}

	costs, err := a.activityService.DailyCosts(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, costs, "Daily costs computed successfully")
}

// CostForDate godoc
// @Summary Cost of one itinerary day
// @Tags Budget
// @Produce json
// @Param itineraryId path int true "Itinerary ID"
// @Param date query string true "Canonical date (YYYY-MM-DD)"
// @Success 200 {number} float64
// @Security BearerAuth
// @Router /activities/budget/date/{itineraryId} [get]
func (a *ActivityController) CostForDate(c *gin.Context) {
	id, ok := pathID(c, "itineraryId")
	if !ok {
		return
	}

	total, err := a.activityService.CostForDate(c.Request.Context(), id, c.Query("date"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, total, "Cost computed successfully")
}
