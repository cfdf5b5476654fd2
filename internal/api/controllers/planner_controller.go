package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wayfare/internal/models/request_models"
	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
}

func NewPlannerController(plannerService services.PlannerServiceInterface) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
	}
}

// LoadSession godoc
// @Summary Load the planning session for an itinerary
// @Description Returns day buckets, scheduled and buffered activities, placed ids and total cost. Pass reload=true to refetch from storage.
// @Tags Planner
// @Produce json
// @Param itineraryId path int true "Itinerary ID"
// @Param reload query bool false "Force a refetch" default(false)
// @Success 200 {object} response_models.PlannerStateResponse
// @Security BearerAuth
// @Router /planner/{itineraryId} [get]
func (p *PlannerController) LoadSession(c *gin.Context) {
	itineraryID, ok := pathID(c, "itineraryId")
	if !ok {
		return
	}
	reload := c.DefaultQuery("reload", "false") == "true"

	state, err := p.plannerService.LoadSession(c.Request.Context(), c.GetString("user_id"), itineraryID, reload)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Planner session loaded successfully")
}

// DayView godoc
// @Summary One day's activities, optionally travel-time adjusted
// @Tags Planner
// @Produce json
// @Param itineraryId path int true "Itinerary ID"
// @Param dayIndex path int true "Zero-based day index"
// @Param optimize query bool false "Push starts forward to honor travel time" default(false)
// @Success 200 {object} response_models.DayViewResponse
// @Security BearerAuth
// @Router /planner/{itineraryId}/days/{dayIndex} [get]
func (p *PlannerController) DayView(c *gin.Context) {
	itineraryID, ok := pathID(c, "itineraryId")
	if !ok {
		return
	}
	dayIndex, err := strconv.Atoi(c.Param("dayIndex"))
	if err != nil || dayIndex < 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid dayIndex")
		return
	}
	optimize := c.DefaultQuery("optimize", "false") == "true"

	view, err := p.plannerService.DayView(c.Request.Context(), c.GetString("user_id"), itineraryID, dayIndex, optimize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, view, "Day fetched successfully")
}

// AddActivity godoc
// @Summary Add a draft to the session
// @Description A draft with a date and start time is conflict-checked and scheduled; otherwise it lands in the buffer.
// @Tags Planner
// @Accept json
// @Produce json
// @Param itineraryId path int true "Itinerary ID"
// @Param request body request_models.PlannerAddRequest true "Activity draft"
// @Success 200 {object} response_models.ActivityResponse
// @Security BearerAuth
// @Router /planner/{itineraryId}/activities [post]
func (p *PlannerController) AddActivity(c *gin.Context) {
	itineraryID, ok := pathID(c, "itineraryId")
	if !ok {
		return
	}

	var req request_models.PlannerAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	activity, err := p.plannerService.AddActivity(c.Request.Context(), c.GetString("user_id"), itineraryID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity added successfully")
}

// ScheduleActivity godoc
// @Summary Place an activity on a day
// @Tags Planner
// @Accept json
// @Produce json
// @Param itineraryId path int true "Itinerary ID"
// @Param activityId path int true "Activity ID"
// @Param request body request_models.PlannerScheduleRequest true "Date and start time"
// @Success 200 {object} response_models.ActivityResponse
// @Failure 409 {object} utils.APIResponse "Overlaps an existing activity"
// @Security BearerAuth
// @Router /planner/{itineraryId}/activities/{activityId}/schedule [post]
func (p *PlannerController) ScheduleActivity(c *gin.Context) {
	itineraryID, ok := pathID(c, "itineraryId")
	if !ok {
		return
	}
	activityID, ok := pathID(c, "activityId")
	if !ok {
		return
	}

	var req request_models.PlannerScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Date is required")
		return
	}

	activity, err := p.plannerService.ScheduleActivity(c.Request.Context(), c.GetString("user_id"), itineraryID, activityID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity scheduled successfully")
}

// UnscheduleActivity godoc
// @Summary Move an activity back to the buffer
// @Tags Planner
// @Produce json
// @Param itineraryId path int true "Itinerary ID"
// @Param activityId path int true "Activity ID"
// @Success 200 {object} response_models.ActivityResponse
// @Security BearerAuth
// @Router /planner/{itineraryId}/activities/{activityId}/unschedule [post]
func (p *PlannerController) UnscheduleActivity(c *gin.Context) {
	itineraryID, ok := pathID(c, "itineraryId")
	if !ok {
		return
	}
	activityID, ok := pathID(c, "activityId")
	if !ok {
		return
	}

	activity, err := p.plannerService.UnscheduleActivity(c.Request.Context(), c.GetString("user_id"), itineraryID, activityID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity moved to buffer successfully")
}

// DeleteActivity godoc
// @Summary Permanently delete a buffered activity
// @Description Rejected with 409 while the activity is scheduled; unschedule first.
// @Tags Planner
// @Produce json
// @Param itineraryId path int true "Itinerary ID"
// @Param activityId path int true "Activity ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /planner/{itineraryId}/activities/{activityId} [delete]
func (p *PlannerController) DeleteActivity(c *gin.Context) {
	itineraryID, ok := pathID(c, "itineraryId")
	if !ok {
		return
	}
	activityID, ok := pathID(c, "activityId")
	if !ok {
		return
	}

	if err := p.plannerService.DeleteActivity(c.Request.Context(), c.GetString("user_id"), itineraryID, activityID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Activity deleted successfully")
}

// EditActivity godoc
// @Summary Edit an activity's details
// @Description Updates name, cost, notes, location and coordinates wherever the activity resides. Scheduling state is untouched.
// @Tags Planner
// @Accept json
// @Produce json
// @Param itineraryId path int true "Itinerary ID"
// @Param activityId path int true "Activity ID"
// @Param request body request_models.PlannerEditRequest true "Fields to change"
// @Success 200 {object} response_models.ActivityResponse
// @Security BearerAuth
// @Router /planner/{itineraryId}/activities/{activityId} [patch]
func (p *PlannerController) EditActivity(c *gin.Context) {
	itineraryID, ok := pathID(c, "itineraryId")
	if !ok {
		return
	}
	activityID, ok := pathID(c, "activityId")
	if !ok {
		return
	}

	var req request_models.PlannerEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	activity, err := p.plannerService.EditActivity(c.Request.Context(), c.GetString("user_id"), itineraryID, activityID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity updated successfully")
}

// Save godoc
// @Summary Flush the session to storage
// @Tags Planner
// @Produce json
// @Param itineraryId path int true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /planner/{itineraryId}/save [post]
func (p *PlannerController) Save(c *gin.Context) {
	itineraryID, ok := pathID(c, "itineraryId")
	if !ok {
		return
	}

	if err := p.plannerService.Save(c.Request.Context(), c.GetString("user_id"), itineraryID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Planner session saved successfully")
}
