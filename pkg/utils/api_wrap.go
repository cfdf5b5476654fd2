package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError translates service-layer sentinel errors into HTTP
// responses. Anything unrecognized is logged and reported as a 500 without
// leaking internals.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNameRequired),
		errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrBadClock),
		errors.Is(err, ErrBadDay),
		errors.Is(err, ErrDayRange):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrScheduleConflict),
		errors.Is(err, ErrStillScheduled),
		errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrActivityNotFound),
		errors.Is(err, ErrItineraryNotFound),
		errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrLocationNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrRemoteUnavailable),
		errors.Is(err, ErrGeocodeUnavailable):
		log.Printf("Upstream unavailable: %v", err)
		RespondError(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, ErrUnexpectedAIOutput):
		log.Printf("Suggestion error: %v", err)
		RespondError(c, http.StatusBadGateway, "Suggestion service returned an unusable answer")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
