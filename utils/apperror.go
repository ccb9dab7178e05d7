package utils

import (
	"errors"
	"net/http"
)

// ErrorKind classifies business-rule failures surfaced to callers.
type ErrorKind string

const (
	KindSlotUnavailable     ErrorKind = "SlotUnavailable"
	KindWebinarFull         ErrorKind = "WebinarFull"
	KindWebinarInPast       ErrorKind = "WebinarInPast"
	KindAlreadyRegistered   ErrorKind = "AlreadyRegistered"
	KindNotRegistered       ErrorKind = "NotRegistered"
	KindInvalidProfessional ErrorKind = "InvalidProfessional"
	KindNoValidSymptoms     ErrorKind = "NoValidSymptoms"
	KindAlreadySeeded       ErrorKind = "AlreadySeeded"
	KindPastRecord          ErrorKind = "PastRecord"
	KindNotAuthorized       ErrorKind = "NotAuthorized"
	KindNotFound            ErrorKind = "NotFound"
	KindInvalidWindow       ErrorKind = "InvalidWindow"
	KindInvalidCapacity     ErrorKind = "InvalidCapacity"
	KindInvalidStatus       ErrorKind = "InvalidStatus"
	KindInvalidInput        ErrorKind = "InvalidInput"
	KindUserExists          ErrorKind = "UserExists"
	KindInvalidCredentials  ErrorKind = "InvalidCredentials"
)

// AppError is a user-facing business error. Two AppErrors match under
// errors.Is when their kinds are equal, so callers compare against the
// sentinels below regardless of the message.
type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// NewAppError builds an error of the given kind with a custom message.
func NewAppError(kind ErrorKind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

var (
	ErrSlotUnavailable     = NewAppError(KindSlotUnavailable, "This time slot is not available")
	ErrWebinarFull         = NewAppError(KindWebinarFull, "Webinar is at full capacity")
	ErrWebinarInPast       = NewAppError(KindWebinarInPast, "Webinar has already started")
	ErrAlreadyRegistered   = NewAppError(KindAlreadyRegistered, "Already registered for this webinar")
	ErrNotRegistered       = NewAppError(KindNotRegistered, "Not registered for this webinar")
	ErrInvalidProfessional = NewAppError(KindInvalidProfessional, "Invalid professional selected")
	ErrNoValidSymptoms     = NewAppError(KindNoValidSymptoms, "Invalid symptoms provided")
	ErrAlreadySeeded       = NewAppError(KindAlreadySeeded, "Symptoms already seeded")
	ErrPastRecord          = NewAppError(KindPastRecord, "Cannot modify a past record")
	ErrNotAuthorized       = NewAppError(KindNotAuthorized, "Not authorized")
	ErrNotFound            = NewAppError(KindNotFound, "Resource not found")
	ErrInvalidWindow       = NewAppError(KindInvalidWindow, "Duration must be a positive number of minutes")
	ErrInvalidCapacity     = NewAppError(KindInvalidCapacity, "Capacity must be positive and not below current registrations")
	ErrInvalidStatus       = NewAppError(KindInvalidStatus, "Invalid status")
	ErrInvalidInput        = NewAppError(KindInvalidInput, "Invalid input")
	ErrUserExists          = NewAppError(KindUserExists, "User already exists")
	ErrInvalidCredentials  = NewAppError(KindInvalidCredentials, "Invalid Credentials")
)

// HTTPStatus maps an error to the response status. Anything that is not an
// AppError is an unexpected failure.
func HTTPStatus(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindNotAuthorized:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindUserExists:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
