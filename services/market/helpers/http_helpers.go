package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"grain-market/internal/markerrors"
	"grain-market/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusUnprocessableEntity, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, markerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, markerrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, markerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, markerrors.ErrEmailTaken):
		return http.StatusConflict, "email already registered"
	case errors.Is(err, markerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "incorrect email or password"
	case errors.Is(err, markerrors.ErrInvalidToken):
		return http.StatusUnauthorized, "could not validate credentials"
	case errors.Is(err, markerrors.ErrNotAdmin):
		return http.StatusForbidden, "not enough permissions"
	case errors.Is(err, markerrors.ErrNotAccredited):
		return http.StatusForbidden, "accreditation not approved"
	case errors.Is(err, markerrors.ErrAuctionNotActive):
		return http.StatusBadRequest, "auction is not active"
	case errors.Is(err, markerrors.ErrAuctionEnded):
		return http.StatusBadRequest, "auction has ended"
	case errors.Is(err, markerrors.ErrAuctionNotComplete):
		return http.StatusBadRequest, "auction is not completed yet"
	case errors.Is(err, markerrors.ErrBidTooLow):
		return http.StatusBadRequest, bidTooLowMessage(err)
	case errors.Is(err, markerrors.ErrInvalidDecision):
		return http.StatusBadRequest, "invalid accreditation status"
	case errors.Is(err, markerrors.ErrInvalidInput):
		return http.StatusUnprocessableEntity, "invalid input"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// bidTooLowMessage surfaces the computed minimum bid to the caller
func bidTooLowMessage(err error) string {
	var tooLow *markerrors.BidTooLowError
	if errors.As(err, &tooLow) {
		return tooLow.Error()
	}
	return "bid amount too low"
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
