package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/BankerBot_Go/internal/domain"
	"github.com/osse101/BankerBot_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode into a pooled buffer first so a marshal failure never
	// produces a half-written body
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped
// HTTP error response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	logger.FromContext(r.Context()).Error("Failed to "+opName, "error", err)
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	respondError(w, statusCode, userMsg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgGameNotFoundError      = "Game not found"
	ErrMsgCaseOutOfRangeError    = "Case number must be between 1 and 26"
	ErrMsgCaseReservedError      = "You cannot open your own case"
	ErrMsgDuplicateCaseError     = "The same case was selected more than once"
	ErrMsgTooManyCasesError      = "Too many cases for this round"
	ErrMsgCaseAlreadyOpenedError = "That case is already open"
	ErrMsgGameConcludedError     = "This game is already over"
	ErrMsgNoCaseChosenError      = "Choose your case first"
	ErrMsgCaseAlreadyChosenError = "You have already chosen your case"
	ErrMsgNoOfferPendingError    = "The banker has not made an offer yet"
	ErrMsgOfferPendingError      = "Answer the banker's offer first"
	ErrMsgInvalidInputError      = "Invalid request. Please check your inputs."
	ErrMsgInvalidStateError      = "That move is not allowed right now"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Specific errors are matched before their roots so the most precise message
// wins; the input/state roots act as catch-alls for anything new.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrGameNotFound):
		return http.StatusNotFound, ErrMsgGameNotFoundError
	case errors.Is(err, domain.ErrCaseOutOfRange):
		return http.StatusBadRequest, ErrMsgCaseOutOfRangeError
	case errors.Is(err, domain.ErrCaseReserved):
		return http.StatusBadRequest, ErrMsgCaseReservedError
	case errors.Is(err, domain.ErrDuplicateCase):
		return http.StatusBadRequest, ErrMsgDuplicateCaseError
	case errors.Is(err, domain.ErrTooManyCases):
		return http.StatusBadRequest, ErrMsgTooManyCasesError
	case errors.Is(err, domain.ErrCaseAlreadyOpened):
		return http.StatusConflict, ErrMsgCaseAlreadyOpenedError
	case errors.Is(err, domain.ErrGameConcluded):
		return http.StatusConflict, ErrMsgGameConcludedError
	case errors.Is(err, domain.ErrNoCaseChosen):
		return http.StatusConflict, ErrMsgNoCaseChosenError
	case errors.Is(err, domain.ErrCaseAlreadyChosen):
		return http.StatusConflict, ErrMsgCaseAlreadyChosenError
	case errors.Is(err, domain.ErrNoOfferPending):
		return http.StatusConflict, ErrMsgNoOfferPendingError
	case errors.Is(err, domain.ErrOfferPending):
		return http.StatusConflict, ErrMsgOfferPendingError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrInvalidState):
		return http.StatusConflict, ErrMsgInvalidStateError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
