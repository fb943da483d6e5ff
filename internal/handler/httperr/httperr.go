package httperr

import (
	"net/http"

	"gin-shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusOf maps an error kind to its HTTP status. Unmarked errors are 500.
func StatusOf(err error) int {
	switch errs.KindOf(err) {
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrNotAvailable, errs.ErrValidation:
		return http.StatusBadRequest
	case errs.ErrNotOwner:
		return http.StatusForbidden
	case errs.ErrUnauthorized:
		return http.StatusUnauthorized
	case errs.ErrConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// DomainResponse builds the body for err from its kind. Internal errors
// keep their details out of the response body.
func DomainResponse(err error) Response {
	resp := Response{Status: StatusOf(err)}
	resp.Error.Message = err.Error()
	if resp.Status == http.StatusInternalServerError {
		resp.Error.Message = "Internal server error"
	}
	return resp
}

// AbortWithDomainError answers with the status of err's kind.
func AbortWithDomainError(c *gin.Context, err error) {
	resp := DomainResponse(err)
	AbortWithError(c, resp.Status, err, resp.Error.Message, nil)
}
