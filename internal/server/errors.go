package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	categorydomain "github.com/tillworks/posledger/internal/category/domain"
	"github.com/tillworks/posledger/internal/export"
	invoicedomain "github.com/tillworks/posledger/internal/invoice/domain"
	saleslogdomain "github.com/tillworks/posledger/internal/saleslog/domain"
	"github.com/tillworks/posledger/pkg/db"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var ErrInvalidRequest = errors.New("invalid_request")

// ErrorHandlingMiddleware translates the error taxonomy into HTTP statuses.
// Handlers push errors via AbortWithError; nothing is swallowed.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	switch {
	case isValidationError(err):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: err.Error(),
		}
	case errors.Is(err, invoicedomain.ErrEmptyInvoice):
		return http.StatusBadRequest, errorPayload{
			Type:    "empty_invoice",
			Message: "add at least one item before checkout",
		}
	case errors.Is(err, categorydomain.ErrNotFound),
		errors.Is(err, saleslogdomain.ErrNotFound):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "resource not found",
		}
	case errors.Is(err, categorydomain.ErrDuplicateName):
		return http.StatusConflict, errorPayload{
			Type:    "duplicate_name",
			Message: "a category with this name already exists",
		}
	case errors.Is(err, saleslogdomain.ErrCorruptRecord):
		return http.StatusUnprocessableEntity, errorPayload{
			Type:    "corrupt_record",
			Message: "sale record cannot be decoded",
		}
	case errors.Is(err, db.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, errorPayload{
			Type:    "store_unavailable",
			Message: "store unavailable, try again",
		}
	case errors.Is(err, export.ErrExport):
		return http.StatusInternalServerError, errorPayload{
			Type:    "export_failed",
			Message: "document export failed",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func isValidationError(err error) bool {
	for _, sentinel := range []error{
		ErrInvalidRequest,
		categorydomain.ErrInvalidName,
		categorydomain.ErrInvalidTaxRate,
		categorydomain.ErrInvalidID,
		invoicedomain.ErrInvalidItemName,
		invoicedomain.ErrInvalidQuantity,
		invoicedomain.ErrInvalidPrice,
		invoicedomain.ErrInvalidCategory,
		saleslogdomain.ErrInvalidID,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
