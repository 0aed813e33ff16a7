package utils

import "errors"

var (
	ErrSessionNotFound    = errors.New("form session not found")
	ErrUnknownField       = errors.New("unknown form field")
	ErrFieldNotEditable   = errors.New("form field is not editable")
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
	ErrInvalidTransition  = errors.New("invalid view transition")
	ErrValidationGap      = errors.New("required field is empty")
	ErrTransportFailure   = errors.New("itinerary service unavailable")
	ErrMalformedResponse  = errors.New("malformed itinerary response")

	ErrArchiveDisabled   = errors.New("itinerary archive is disabled")
	ErrItineraryNotFound = errors.New("itinerary not found")
	ErrInvalidPage       = errors.New("invalid page parameter")
	ErrInvalidPageSize   = errors.New("invalid page size parameter")
	ErrDatabaseError     = errors.New("database error")
)
