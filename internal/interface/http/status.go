package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/library-management-api/internal/application"
	"github.com/oksasatya/library-management-api/pkg/response"
)

// failure maps a service error onto its HTTP status and writes the error
// envelope. Service messages pass through verbatim; anything unclassified is
// an internal error and the detail stays out of the response.
func failure(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrNotFound):
		response.Fail(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Fail(c, http.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, application.ErrEmailTaken),
		errors.Is(err, application.ErrNameTaken),
		errors.Is(err, application.ErrNotLibrarian):
		response.Fail(c, http.StatusBadRequest, err.Error(), nil)
	default:
		response.Fail(c, http.StatusInternalServerError, "internal server error", nil)
	}
}

// idParam parses the :id segment; on garbage it writes the 400 itself and
// reports false.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid id", nil)
		return 0, false
	}
	return id, true
}
