package handlers

import (
	"errors"
	"net/http"

	contentRepo "everafter/database/repository/content"
	inquiryRepo "everafter/database/repository/inquiry"
	vendorRepo "everafter/database/repository/vendor"
	"everafter/services/booking"
	"everafter/services/content"
	ai "everafter/services/intelligence"
	"everafter/services/storage"
	"everafter/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var notFoundErrors = []error{
	vendorRepo.ErrVendorNotFound,
	contentRepo.ErrContentNotFound,
	inquiryRepo.ErrInquiryNotFound,
	booking.ErrSessionNotFound,
}

var badRequestErrors = []error{
	booking.ErrInvalidDate,
	booking.ErrInvalidGuestKind,
	content.ErrUnknownSection,
	content.ErrInvalidPatch,
	storage.ErrInvalidSection,
	storage.ErrInvalidEntityID,
	storage.ErrUnsupportedFile,
	ai.ErrEmptyPrompt,
	ai.ErrPromptTooLong,
}

var unprocessableErrors = []error{
	booking.ErrDateInPast,
	booking.ErrDateBooked,
	booking.ErrRangeUnavailable,
	booking.ErrDateRequired,
	booking.ErrGuestsRequired,
	booking.ErrGuestLimit,
}

func matchAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

// statusFor maps a service error onto an HTTP status.
func statusFor(err error) int {
	var stepErr *booking.StepError
	switch {
	case matchAny(err, notFoundErrors):
		return http.StatusNotFound
	case errors.As(err, &stepErr), matchAny(err, unprocessableErrors):
		return http.StatusUnprocessableEntity
	case errors.Is(err, booking.ErrInvalidTransition):
		return http.StatusConflict
	case matchAny(err, badRequestErrors):
		return http.StatusBadRequest
	case errors.Is(err, ai.ErrAIUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with its mapped status. Internal errors are not
// echoed to the client.
func respondError(c *gin.Context, message string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		getLogger(c).Error(message, zap.Error(err))
		utils.JSONError(c, status, message, "")
		return
	}
	utils.JSONError(c, status, message, err.Error())
}
