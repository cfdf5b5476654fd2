package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNameRequired       = errors.New("name is required")
	ErrBadClock           = errors.New("malformed HH:MM time")
	ErrBadDay             = errors.New("malformed YYYY-MM-DD date")
	ErrDayRange           = errors.New("start date is after end date")
	ErrScheduleConflict   = errors.New("schedule conflict")
	ErrStillScheduled     = errors.New("activity is still scheduled")
	ErrActivityNotFound   = errors.New("activity not found")
	ErrItineraryNotFound  = errors.New("itinerary not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrRemoteUnavailable  = errors.New("remote store unavailable")
	ErrGeocodeUnavailable = errors.New("geocoder unavailable")
	ErrLocationNotFound   = errors.New("location not found")
	ErrUnexpectedAIOutput = errors.New("unexpected AI output")
	ErrDatabaseError      = errors.New("database error")
)
