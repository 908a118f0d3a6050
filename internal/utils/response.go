package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the wire shape of every non-2xx response. Missing carries the
// unresolved ids of a failed comparison.
type ErrorBody struct {
	Message string   `json:"message"`
	Missing []string `json:"missing,omitempty"`
}

func BadRequestResponse(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Message: message})
}

func NotFoundResponse(c *gin.Context, message string, missing []string) {
	c.JSON(http.StatusNotFound, ErrorBody{Message: message, Missing: missing})
}

func ServiceUnavailableResponse(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, ErrorBody{Message: ErrStoreUnavailable})
}

// InternalErrorResponse hides failure detail unless the process runs in debug
// mode.
func InternalErrorResponse(c *gin.Context, err error, debug bool) {
	message := ErrInternalServer
	if debug && err != nil {
		message = err.Error()
	}
	c.JSON(http.StatusInternalServerError, ErrorBody{Message: message})
}

func OKResponse(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}
