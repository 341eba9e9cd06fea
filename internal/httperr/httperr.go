package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/service-orders/internal/domain/client"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

type ValidationError struct {
	HTTPError
	Violations domain.Violations `json:"violations"`
}

const CodeValidationFailed = "validation_failed"

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

// Validation rejects the request listing every violation.
func Validation(c *gin.Context, vs domain.Violations) {
	c.JSON(http.StatusBadRequest, ValidationError{
		HTTPError: HTTPError{
			Code:    CodeValidationFailed,
			Message: "One or more fields are invalid.",
		},
		Violations: vs,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}
