package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/easyscheduler/admin-backend/internal/domain/writer"
)

// FromError maps a domain error onto the HTTP response. Anything untyped is
// treated as a storage failure for this request.
func FromError(c *gin.Context, err error) {
	var validationErr *writer.ValidationError
	var invalidArgErr *writer.InvalidArgumentError

	switch {
	case errors.As(err, &validationErr):
		Write(c, http.StatusBadRequest, CodeValidation, validationErr.Reason)
	case errors.As(err, &invalidArgErr):
		Write(c, http.StatusBadRequest, CodeInvalidArgument, invalidArgErr.Reason)
	case errors.Is(err, writer.ErrNotFound):
		NotFound(c, CodeNotFound, err.Error())
	default:
		Internal(c, CodeInternal, "the operation could not be completed")
	}
}
