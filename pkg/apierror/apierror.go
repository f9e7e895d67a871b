// Package apierror carries domain failures across layers as a single
// structured error type and translates them into the response envelope at
// the controller boundary.
package apierror

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alam-gir/agency/internal/domain/repository"
	"github.com/alam-gir/agency/pkg/response"
)

type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *APIError) Error() string { return e.Message }

func New(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}

func BadRequest(msg string) *APIError   { return New(http.StatusBadRequest, msg) }
func Unauthorized(msg string) *APIError { return New(http.StatusUnauthorized, msg) }
func Forbidden(msg string) *APIError    { return New(http.StatusForbidden, msg) }
func NotFound(msg string) *APIError     { return New(http.StatusNotFound, msg) }
func Conflict(msg string) *APIError     { return New(http.StatusConflict, msg) }
func Internal(msg string) *APIError     { return New(http.StatusInternalServerError, msg) }

// UploadFailed covers a remote store rejection; the original surfaced these
// as 403.
func UploadFailed(msg string) *APIError { return New(http.StatusForbidden, msg) }

// FromRepository maps the repository's closed error set onto API errors.
// notFoundMsg customizes the 404 wording per entity.
func FromRepository(err error, notFoundMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return NotFound(notFoundMsg)
	case errors.Is(err, repository.ErrDuplicate):
		return Conflict("duplicate value for a unique field")
	case errors.Is(err, repository.ErrInvalidID):
		return BadRequest("invalid id")
	case errors.Is(err, repository.ErrInvalidRef):
		return BadRequest("referenced record does not exist")
	case errors.Is(err, repository.ErrStaleToken):
		return NotFound("invalid token or token is used")
	default:
		return err
	}
}

// Respond writes err through the envelope. Unknown errors degrade to a
// generic 500; their detail stays server-side.
func Respond(c *gin.Context, err error) {
	var ae *APIError
	if errors.As(err, &ae) {
		response.Error[any](c, ae.Status, ae.Message, nil)
		return
	}
	if translated := FromRepository(err, "record not found"); translated != err {
		Respond(c, translated)
		return
	}
	response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
}
