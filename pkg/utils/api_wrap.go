package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"housebase/internal/questionnaire"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	// Errors carries per-question validation failures so the client can
	// highlight every offending field in one round.
	Errors []questionnaire.FieldError `json:"errors,omitempty"`
}

func traceID(c *gin.Context) string {
	if id, ok := c.Get("trace_id"); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// RespondFieldErrors reports a save attempt rejected by validation.
// Nothing was written; every offending question is listed.
func RespondFieldErrors(c *gin.Context, fieldErrs questionnaire.FieldErrors) {
	c.JSON(http.StatusUnprocessableEntity, APIResponse{
		Status:  "error",
		Code:    http.StatusUnprocessableEntity,
		Message: "some answers were rejected",
		TraceID: traceID(c),
		Errors:  fieldErrs,
	})
}

func HandleServiceError(c *gin.Context, err error) {
	var fieldErrs questionnaire.FieldErrors
	if errors.As(err, &fieldErrs) {
		RespondFieldErrors(c, fieldErrs)
		return
	}
	var storeErr *questionnaire.StoreError
	if errors.As(err, &storeErr) {
		log.Printf("profile store error: %v", storeErr)
		RespondError(c, http.StatusServiceUnavailable, "Could not save answers, please retry")
		return
	}

	switch {
	case errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrInvalidAdminCode):
		RespondError(c, http.StatusForbidden, "Invalid admin code")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already exists")
	case errors.Is(err, ErrSoldierAlreadyExists):
		RespondError(c, http.StatusConflict, "A soldier with this personal number already exists")
	case errors.Is(err, ErrSoldierNotFound):
		RespondError(c, http.StatusNotFound, "Soldier not found")
	case errors.Is(err, ErrEventNotFound):
		RespondError(c, http.StatusNotFound, "Event not found")
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusGone, "Edit session not found or expired")
	case errors.Is(err, questionnaire.ErrSaveInFlight):
		RespondError(c, http.StatusConflict, "A save for this session is already in progress")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrInternalError):
		log.Printf("Internal error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
