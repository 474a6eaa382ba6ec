package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"lot-auction/internal/biddingerrors"
	"lot-auction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, biddingerrors.ErrPersistence):
		return http.StatusInternalServerError, "failed to save auction state"
	case errors.Is(err, biddingerrors.ErrNotRegistered):
		return http.StatusForbidden, "participant not registered"
	case errors.Is(err, biddingerrors.ErrLotNotFound):
		return http.StatusNotFound, "lot not found"
	case errors.Is(err, biddingerrors.ErrSnapshotNotFound):
		return http.StatusNotFound, "snapshot not found"
	case errors.Is(err, biddingerrors.ErrStaleRequest):
		return http.StatusConflict, "bid request expired, open a new bid"
	case errors.Is(err, biddingerrors.ErrContended):
		return http.StatusConflict, "lot is busy, resubmit the bid"
	case errors.Is(err, biddingerrors.ErrMalformedAmount):
		return http.StatusBadRequest, "amount is not a number"
	case errors.Is(err, biddingerrors.ErrBelowMinimum):
		return http.StatusUnprocessableEntity, "bid amount too low"
	case errors.Is(err, biddingerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// HandleServiceError sends the mapped error response. A below-minimum
// rejection also carries the minimum the lot accepts.
func HandleServiceError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)

	var below *biddingerrors.BelowMinimumError
	if errors.As(err, &below) {
		utils.JSONErrorWithData(c, status, err, message, gin.H{"minimum_required": below.Minimum.StringFixed(2)})
	} else {
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	}

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["error"] = err.Error()
	if biddingerrors.IsRecoverable(err) {
		utils.Warn(handlerName+": request rejected", fields)
		return
	}
	utils.Error(handlerName+": request failed", fields)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
